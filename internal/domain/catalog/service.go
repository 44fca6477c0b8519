// internal/domain/catalog/service.go
package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/your-org/pos-backend/internal/config"
	"gorm.io/gorm"
)

// Service handles catalog business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new catalog service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// CreateProductRequest represents a product create/update payload
type CreateProductRequest struct {
	Code        string          `json:"code" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	Abbrev      string          `json:"abbrev" binding:"required"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
	CategoryID  uint            `json:"category_id" binding:"required"`
	IsAddOn     bool            `json:"is_add_on"`
	IsAvailable bool            `json:"is_available"`
	AddOnIDs    []uint          `json:"add_on_ids"`
}

// CreateCategoryRequest represents a category create/update payload
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sort_order"`
	IsActive    bool   `json:"is_active"`
}

// ListCategories returns all categories ordered for display
func (s *Service) ListCategories() ([]Category, error) {
	var categories []Category
	err := s.db.Order("sort_order asc, name asc").Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory creates a new category
func (s *Service) CreateCategory(req *CreateCategoryRequest) (*Category, error) {
	category := Category{
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		IsActive:    req.IsActive,
	}
	if err := s.db.Create(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &category, nil
}

// UpdateCategory updates an existing category
func (s *Service) UpdateCategory(id uint, req *CreateCategoryRequest) (*Category, error) {
	var category Category
	if err := s.db.First(&category, id).Error; err != nil {
		return nil, fmt.Errorf("category not found")
	}

	category.Name = req.Name
	category.Description = req.Description
	category.SortOrder = req.SortOrder
	category.IsActive = req.IsActive

	if err := s.db.Save(&category).Error; err != nil {
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return &category, nil
}

// DeleteCategory soft-deletes a category
func (s *Service) DeleteCategory(id uint) error {
	return s.db.Delete(&Category{}, id).Error
}

// ListProducts returns products, optionally filtered by category and
// availability. Add-on submenus are preloaded so the order-entry screen can
// render the full grid from one query.
func (s *Service) ListProducts(categoryID *uint, availableOnly bool) ([]Product, error) {
	query := s.db.Preload("Category").Preload("AddOns")

	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if availableOnly {
		query = query.Where("is_available = ?", true)
	}

	var products []Product
	if err := query.Order("name asc").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// GetProduct returns a single product with its add-on submenu
func (s *Service) GetProduct(id uint) (*Product, error) {
	var product Product
	err := s.db.Preload("Category").Preload("AddOns").First(&product, id).Error
	if err != nil {
		return nil, fmt.Errorf("product not found")
	}
	return &product, nil
}

// CreateProduct creates a new product and wires its add-on submenu
func (s *Service) CreateProduct(req *CreateProductRequest) (*Product, error) {
	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("unit price cannot be negative")
	}

	product := Product{
		Code:        req.Code,
		Name:        req.Name,
		Abbrev:      req.Abbrev,
		Description: req.Description,
		UnitPrice:   req.UnitPrice,
		CategoryID:  req.CategoryID,
		IsAddOn:     req.IsAddOn,
		IsAvailable: req.IsAvailable,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		return s.replaceAddOns(tx, &product, req.AddOnIDs)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return s.GetProduct(product.ID)
}

// UpdateProduct updates a product. The availability flag is set from the
// request's own field, never derived from the add-on flag.
func (s *Service) UpdateProduct(id uint, req *CreateProductRequest) (*Product, error) {
	if req.UnitPrice.IsNegative() {
		return nil, fmt.Errorf("unit price cannot be negative")
	}

	var product Product
	if err := s.db.First(&product, id).Error; err != nil {
		return nil, fmt.Errorf("product not found")
	}

	product.Code = req.Code
	product.Name = req.Name
	product.Abbrev = req.Abbrev
	product.Description = req.Description
	product.UnitPrice = req.UnitPrice
	product.CategoryID = req.CategoryID
	product.IsAddOn = req.IsAddOn
	product.IsAvailable = req.IsAvailable

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&product).Error; err != nil {
			return err
		}
		return s.replaceAddOns(tx, &product, req.AddOnIDs)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return s.GetProduct(product.ID)
}

// DeleteProduct soft-deletes a product
func (s *Service) DeleteProduct(id uint) error {
	return s.db.Delete(&Product{}, id).Error
}

// replaceAddOns replaces the product's add-on submenu with the given set.
// Every referenced product must carry the add-on flag.
func (s *Service) replaceAddOns(tx *gorm.DB, product *Product, addOnIDs []uint) error {
	if addOnIDs == nil {
		return nil
	}

	var addOns []Product
	if len(addOnIDs) > 0 {
		if err := tx.Where("id IN ? AND is_add_on = ?", addOnIDs, true).Find(&addOns).Error; err != nil {
			return err
		}
		if len(addOns) != len(addOnIDs) {
			return fmt.Errorf("one or more add-on products not found or not flagged as add-ons")
		}
	}

	return tx.Model(product).Association("AddOns").Replace(addOns)
}
