// internal/interfaces/http/handlers/store.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/pos-backend/internal/config"
	"github.com/your-org/pos-backend/internal/domain/store"
	"gorm.io/gorm"
)

// StoreHandler handles store and dining table endpoints
type StoreHandler struct {
	storeService *store.Service
	config       *config.Config
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(db *gorm.DB, cfg *config.Config) *StoreHandler {
	return &StoreHandler{
		storeService: store.NewService(db, cfg),
		config:       cfg,
	}
}

// ListStores handles GET /stores
func (h *StoreHandler) ListStores(c *gin.Context) {
	stores, err := h.storeService.ListStores()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to list stores",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stores retrieved successfully",
		"data":    stores,
	})
}

// GetStore handles GET /stores/:id
func (h *StoreHandler) GetStore(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	st, err := h.storeService.GetStore(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Store retrieved successfully",
		"data":    st,
	})
}

// CreateStore handles POST /stores
func (h *StoreHandler) CreateStore(c *gin.Context) {
	var req store.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	st, err := h.storeService.CreateStore(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Store created successfully",
		"data":    st,
	})
}

// UpdateStore handles PUT /stores/:id
func (h *StoreHandler) UpdateStore(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req store.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	st, err := h.storeService.UpdateStore(id, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Store updated successfully",
		"data":    st,
	})
}

// DeleteStore handles DELETE /stores/:id
func (h *StoreHandler) DeleteStore(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.storeService.DeleteStore(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete store"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Store deleted successfully",
	})
}

// ListTables handles GET /stores/:id/tables
func (h *StoreHandler) ListTables(c *gin.Context) {
	storeID, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tables, err := h.storeService.ListTables(storeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tables"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Tables retrieved successfully",
		"data":    tables,
	})
}

// CreateTable handles POST /tables
func (h *StoreHandler) CreateTable(c *gin.Context) {
	var req store.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	table, err := h.storeService.CreateTable(&req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Table created successfully",
		"data":    table,
	})
}

// UpdateTable handles PUT /tables/:id
func (h *StoreHandler) UpdateTable(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req store.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	table, err := h.storeService.UpdateTable(id, &req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Table updated successfully",
		"data":    table,
	})
}

// DeleteTable handles DELETE /tables/:id
func (h *StoreHandler) DeleteTable(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.storeService.DeleteTable(id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete table"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Table deleted successfully",
	})
}
