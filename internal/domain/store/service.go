// internal/domain/store/service.go
package store

import (
	"fmt"

	"github.com/your-org/pos-backend/internal/config"
	"gorm.io/gorm"
)

// Service handles store and dining table business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new store service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// CreateStoreRequest represents a store create/update payload
type CreateStoreRequest struct {
	Name       string `json:"name" binding:"required"`
	BranchCode string `json:"branch_code" binding:"required"`
	Address    string `json:"address"`
	Contact    string `json:"contact"`
	IsActive   bool   `json:"is_active"`
}

// CreateTableRequest represents a dining table create/update payload
type CreateTableRequest struct {
	StoreID  uint   `json:"store_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity"`
}

// ListStores returns all stores with their tables
func (s *Service) ListStores() ([]Store, error) {
	var stores []Store
	if err := s.db.Preload("Tables").Order("name asc").Find(&stores).Error; err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	return stores, nil
}

// GetStore returns one store with its tables
func (s *Service) GetStore(id uint) (*Store, error) {
	var st Store
	if err := s.db.Preload("Tables").First(&st, id).Error; err != nil {
		return nil, fmt.Errorf("store not found")
	}
	return &st, nil
}

// CreateStore creates a new store
func (s *Service) CreateStore(req *CreateStoreRequest) (*Store, error) {
	st := Store{
		Name:       req.Name,
		BranchCode: req.BranchCode,
		Address:    req.Address,
		Contact:    req.Contact,
		IsActive:   req.IsActive,
	}
	if err := s.db.Create(&st).Error; err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	return &st, nil
}

// UpdateStore updates an existing store
func (s *Service) UpdateStore(id uint, req *CreateStoreRequest) (*Store, error) {
	var st Store
	if err := s.db.First(&st, id).Error; err != nil {
		return nil, fmt.Errorf("store not found")
	}

	st.Name = req.Name
	st.BranchCode = req.BranchCode
	st.Address = req.Address
	st.Contact = req.Contact
	st.IsActive = req.IsActive

	if err := s.db.Save(&st).Error; err != nil {
		return nil, fmt.Errorf("failed to update store: %w", err)
	}
	return &st, nil
}

// DeleteStore soft-deletes a store
func (s *Service) DeleteStore(id uint) error {
	return s.db.Delete(&Store{}, id).Error
}

// ListTables returns the dining tables of a store
func (s *Service) ListTables(storeID uint) ([]DiningTable, error) {
	var tables []DiningTable
	err := s.db.Where("store_id = ?", storeID).Order("name asc").Find(&tables).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	return tables, nil
}

// CreateTable creates a dining table in a store
func (s *Service) CreateTable(req *CreateTableRequest) (*DiningTable, error) {
	if err := s.db.First(&Store{}, req.StoreID).Error; err != nil {
		return nil, fmt.Errorf("store not found")
	}

	table := DiningTable{
		StoreID:  req.StoreID,
		Name:     req.Name,
		Capacity: req.Capacity,
	}
	if err := s.db.Create(&table).Error; err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	return &table, nil
}

// UpdateTable updates a dining table
func (s *Service) UpdateTable(id uint, req *CreateTableRequest) (*DiningTable, error) {
	var table DiningTable
	if err := s.db.First(&table, id).Error; err != nil {
		return nil, fmt.Errorf("table not found")
	}

	table.StoreID = req.StoreID
	table.Name = req.Name
	table.Capacity = req.Capacity

	if err := s.db.Save(&table).Error; err != nil {
		return nil, fmt.Errorf("failed to update table: %w", err)
	}
	return &table, nil
}

// SetTableOccupied flags a table occupied or free
func (s *Service) SetTableOccupied(id uint, occupied bool) error {
	return s.db.Model(&DiningTable{}).Where("id = ?", id).
		Update("is_occupied", occupied).Error
}

// DeleteTable soft-deletes a dining table
func (s *Service) DeleteTable(id uint) error {
	return s.db.Delete(&DiningTable{}, id).Error
}
