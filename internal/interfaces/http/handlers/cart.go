// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/pos-backend/internal/config"
	"github.com/your-org/pos-backend/internal/domain/cart"
	"gorm.io/gorm"
)

// CartHandler handles terminal cart endpoints
type CartHandler struct {
	cartService *cart.Service
	config      *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *CartHandler {
	return &CartHandler{
		cartService: cart.NewService(db, redisClient, cfg),
		config:      cfg,
	}
}

// AddProductRequest represents the add-to-cart payload. Deduplicate selects
// menu-grid semantics (fold into an existing line for the product).
type AddProductRequest struct {
	ProductID   uint `json:"product_id" binding:"required"`
	Deduplicate bool `json:"deduplicate"`
}

// AddAddOnRequest represents the attach-add-on payload
type AddAddOnRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// StageEntryRequest represents the stage-draft-entry payload
type StageEntryRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// NotesRequest represents the set-line-notes payload
type NotesRequest struct {
	Notes string `json:"notes"`
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	session, err := h.cartService.GetSession(sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve cart",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data":    session,
	})
}

// AddProduct handles POST /cart/items
func (h *CartHandler) AddProduct(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	var req AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	session, err := h.cartService.AddProduct(sessionID, req.ProductID, req.Deduplicate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart successfully",
		"data":    session,
	})
}

// IncrementItem handles POST /cart/items/:itemId/increment
func (h *CartHandler) IncrementItem(c *gin.Context) {
	h.mutateItem(c, h.cartService.IncrementItem, "Item incremented successfully")
}

// DecrementItem handles POST /cart/items/:itemId/decrement
func (h *CartHandler) DecrementItem(c *gin.Context) {
	h.mutateItem(c, h.cartService.DecrementItem, "Item decremented successfully")
}

// RemoveItem handles DELETE /cart/items/:itemId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.mutateItem(c, h.cartService.RemoveItem, "Item removed successfully")
}

// VoidItem handles POST /cart/items/:itemId/void
func (h *CartHandler) VoidItem(c *gin.Context) {
	h.mutateItem(c, h.cartService.VoidItem, "Item voided successfully")
}

// SetItemNotes handles PUT /cart/items/:itemId/notes
func (h *CartHandler) SetItemNotes(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)
	itemID := c.Param("itemId")

	var req NotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		return
	}

	session, err := h.cartService.SetItemNotes(sessionID, itemID, req.Notes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Notes updated successfully",
		"data":    session,
	})
}

// AddAddOn handles POST /cart/items/:itemId/add-ons
func (h *CartHandler) AddAddOn(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)
	itemID := c.Param("itemId")

	var req AddAddOnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	session, err := h.cartService.AddAddOn(sessionID, itemID, req.ProductID)
	if err != nil {
		status := http.StatusBadRequest
		if err == cart.ErrParentNotFound {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Add-on attached successfully",
		"data":    session,
	})
}

// DecrementAddOn handles POST /cart/items/:itemId/add-ons/:productId/decrement
func (h *CartHandler) DecrementAddOn(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)
	itemID := c.Param("itemId")

	productID, err := parseUintParam(c, "productId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	session, err := h.cartService.DecrementAddOn(sessionID, itemID, productID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Add-on decremented successfully",
		"data":    session,
	})
}

// StageEntry handles POST /cart/staged
func (h *CartHandler) StageEntry(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	var req StageEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	session, err := h.cartService.StageEntry(sessionID, req.ProductID, req.Quantity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Entry staged successfully",
		"data":    session,
	})
}

// RemoveStagedEntry handles DELETE /cart/staged/:entryId
func (h *CartHandler) RemoveStagedEntry(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	session, err := h.cartService.RemoveStagedEntry(sessionID, c.Param("entryId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Staged entry removed successfully",
		"data":    session,
	})
}

// ExpandStaged handles POST /cart/staged/expand
func (h *CartHandler) ExpandStaged(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	session, err := h.cartService.ExpandStaged(sessionID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Staged entries added to cart",
		"data":    session,
	})
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	sessionID := h.getOrCreateSessionID(c)

	if err := h.cartService.Clear(sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared successfully",
	})
}

func (h *CartHandler) mutateItem(c *gin.Context, op func(sessionID, itemID string) (*cart.SessionResponse, error), message string) {
	sessionID := h.getOrCreateSessionID(c)
	itemID := c.Param("itemId")

	session, err := op(sessionID, itemID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"data":    session,
	})
}

// getOrCreateSessionID gets the terminal session id from the X-Session-ID
// header or session cookie, creating a new one when absent
func (h *CartHandler) getOrCreateSessionID(c *gin.Context) string {
	if sessionID := c.GetHeader("X-Session-ID"); sessionID != "" {
		return sessionID
	}

	sessionID, err := c.Cookie("session_id")
	if err != nil || sessionID == "" {
		sessionID = uuid.New().String()
		c.SetCookie("session_id", sessionID, int(h.config.Cart.SessionTTL.Seconds()), "/", "", false, true)
	}

	return sessionID
}
