// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"github.com/your-org/pos-backend/internal/domain/catalog"
	"github.com/your-org/pos-backend/internal/domain/expense"
	"github.com/your-org/pos-backend/internal/domain/order"
	"github.com/your-org/pos-backend/internal/domain/store"
	"github.com/your-org/pos-backend/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Models in dependency order
	models := []interface{}{
		// Store domain - base tables
		&store.Store{},
		&store.DiningTable{},

		// Staff accounts
		&user.User{},

		// Catalog domain
		&catalog.Category{},
		&catalog.Product{},

		// Order domain
		&order.Order{},
		&order.OrderHistory{},

		// Expense domain
		&expense.ExpenseCategory{},
		&expense.ExpenseRecord{},
	}

	for _, model := range models {
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed")
	return nil
}

// CreateIndexes creates additional indexes for reporting queries
func (m *Migration) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_orders_store_status_created ON orders (store_id, status, created_at)",
		"CREATE INDEX IF NOT EXISTS idx_expense_records_store_created ON expense_records (store_id, created_at)",
		"CREATE INDEX IF NOT EXISTS idx_products_category_available ON products (category_id, is_available)",
	}

	for _, stmt := range indexes {
		if err := m.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// SeedInitialData seeds a development database with a store, an admin
// account, and a small menu.
func (m *Migration) SeedInitialData() error {
	var count int64
	m.db.Model(&store.Store{}).Count(&count)
	if count > 0 {
		return nil // Already seeded
	}

	log.Println("🌱 Seeding initial data...")

	branch := store.Store{
		Name:       "Main Branch",
		BranchCode: "MAIN",
		Address:    "123 Kape Street",
		IsActive:   true,
	}
	if err := m.db.Create(&branch).Error; err != nil {
		return err
	}

	tables := []store.DiningTable{
		{StoreID: branch.ID, Name: "T1", Capacity: 2},
		{StoreID: branch.ID, Name: "T2", Capacity: 4},
		{StoreID: branch.ID, Name: "T3", Capacity: 6},
	}
	if err := m.db.Create(&tables).Error; err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("Admin1234!"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := user.User{
		Email:    "admin@example.com",
		Password: string(hashed),
		Name:     "Administrator",
		Role:     user.RoleAdmin,
		IsActive: true,
	}
	if err := m.db.Create(&admin).Error; err != nil {
		return err
	}

	beverages := catalog.Category{Name: "Beverages", SortOrder: 1, IsActive: true}
	extras := catalog.Category{Name: "Extras", SortOrder: 9, IsActive: true}
	if err := m.db.Create(&beverages).Error; err != nil {
		return err
	}
	if err := m.db.Create(&extras).Error; err != nil {
		return err
	}

	espressoShot := catalog.Product{
		Code:        "XTR-001",
		Name:        "Extra Espresso Shot",
		Abbrev:      "XSHOT",
		UnitPrice:   decimal.NewFromInt(20),
		CategoryID:  extras.ID,
		IsAddOn:     true,
		IsAvailable: true,
	}
	if err := m.db.Create(&espressoShot).Error; err != nil {
		return err
	}

	latte := catalog.Product{
		Code:        "BEV-001",
		Name:        "Café Latte",
		Abbrev:      "LATTE",
		UnitPrice:   decimal.NewFromInt(120),
		CategoryID:  beverages.ID,
		IsAvailable: true,
		AddOns:      []catalog.Product{espressoShot},
	}
	if err := m.db.Create(&latte).Error; err != nil {
		return err
	}

	log.Println("✅ Initial data seeded")
	return nil
}
