// internal/domain/expense/service.go
package expense

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/pos-backend/internal/config"
	"gorm.io/gorm"
)

// Service handles expense business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new expense service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// CreateExpenseRequest represents an expense create/update payload
type CreateExpenseRequest struct {
	StoreID       uint            `json:"store_id" binding:"required"`
	CategoryID    *uint           `json:"category_id"`
	OtherCategory string          `json:"other_category"`
	Particulars   string          `json:"particulars" binding:"required"`
	Unit          string          `json:"unit"`
	Quantity      int             `json:"quantity" binding:"required,min=1"`
	UnitPrice     decimal.Decimal `json:"unit_price" binding:"required"`
	Status        Status          `json:"status" binding:"required,oneof=settled unsettled"`
	PaymentDue    *time.Time      `json:"payment_due"`
}

// ListCategories returns all expense categories
func (s *Service) ListCategories() ([]ExpenseCategory, error) {
	var categories []ExpenseCategory
	if err := s.db.Order("name asc").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list expense categories: %w", err)
	}
	return categories, nil
}

// CreateCategory creates an expense category
func (s *Service) CreateCategory(name string) (*ExpenseCategory, error) {
	category := ExpenseCategory{Name: name}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create expense category: %w", err)
	}
	return &category, nil
}

// ListRecords returns a store's expenses within the date range
func (s *Service) ListRecords(storeID uint, from, to time.Time) ([]ExpenseRecord, error) {
	var records []ExpenseRecord
	err := s.db.Preload("Category").
		Where("store_id = ? AND created_at BETWEEN ? AND ?", storeID, from, to).
		Order("created_at desc").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return records, nil
}

// CreateRecord creates an expense record
func (s *Service) CreateRecord(req *CreateExpenseRequest) (*ExpenseRecord, error) {
	record := s.fromRequest(req)
	if err := record.ValidateCategory(); err != nil {
		return nil, err
	}

	if err := s.db.Create(record).Error; err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return record, nil
}

// UpdateRecord updates an expense record
func (s *Service) UpdateRecord(id uint, req *CreateExpenseRequest) (*ExpenseRecord, error) {
	var record ExpenseRecord
	if err := s.db.First(&record, id).Error; err != nil {
		return nil, fmt.Errorf("expense not found")
	}

	updated := s.fromRequest(req)
	updated.ID = record.ID
	updated.CreatedAt = record.CreatedAt
	if err := updated.ValidateCategory(); err != nil {
		return nil, err
	}

	if err := s.db.Save(updated).Error; err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	return updated, nil
}

// Settle marks an expense as settled and drops its payment-due date
func (s *Service) Settle(id uint) (*ExpenseRecord, error) {
	var record ExpenseRecord
	if err := s.db.First(&record, id).Error; err != nil {
		return nil, fmt.Errorf("expense not found")
	}

	record.Status = StatusSettled
	record.PaymentDue = nil
	if err := s.db.Save(&record).Error; err != nil {
		return nil, fmt.Errorf("failed to settle expense: %w", err)
	}
	return &record, nil
}

// DeleteRecord soft-deletes an expense record
func (s *Service) DeleteRecord(id uint) error {
	return s.db.Delete(&ExpenseRecord{}, id).Error
}

func (s *Service) fromRequest(req *CreateExpenseRequest) *ExpenseRecord {
	record := &ExpenseRecord{
		StoreID:       req.StoreID,
		CategoryID:    req.CategoryID,
		OtherCategory: req.OtherCategory,
		Particulars:   req.Particulars,
		Unit:          req.Unit,
		Quantity:      req.Quantity,
		UnitPrice:     req.UnitPrice,
		Status:        req.Status,
		PaymentDue:    req.PaymentDue,
	}
	// Payment due only applies while unsettled
	if record.Status == StatusSettled {
		record.PaymentDue = nil
	}
	return record
}
