// internal/domain/expense/entity.go
package expense

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Status represents the settlement status of an expense
type Status string

const (
	StatusSettled   Status = "settled"
	StatusUnsettled Status = "unsettled"
)

// ExpenseCategory represents a back-office expense category
type ExpenseCategory struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null;size:255" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// ExpenseRecord represents one expense line for a store. It is categorized
// either by a known category or by a free-text other-category label, never
// both. PaymentDue is carried only while the record is unsettled.
type ExpenseRecord struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	StoreID       uint            `gorm:"not null;index" json:"store_id"`
	CategoryID    *uint           `gorm:"index" json:"category_id"`
	OtherCategory string          `gorm:"size:255" json:"other_category"`
	Particulars   string          `gorm:"not null;size:500" json:"particulars"`
	Unit          string          `gorm:"size:50" json:"unit"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	Status        Status          `gorm:"not null;default:'unsettled';size:20" json:"status"`
	PaymentDue    *time.Time      `json:"payment_due"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Category *ExpenseCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName overrides
func (ExpenseCategory) TableName() string { return "expense_categories" }
func (ExpenseRecord) TableName() string   { return "expense_records" }

// Amount returns quantity x unit price
func (e *ExpenseRecord) Amount() decimal.Decimal {
	return e.UnitPrice.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// ValidateCategory enforces the category XOR other-category rule
func (e *ExpenseRecord) ValidateCategory() error {
	hasCategory := e.CategoryID != nil
	hasOther := e.OtherCategory != ""
	if hasCategory == hasOther {
		return fmt.Errorf("exactly one of category or other-category must be set")
	}
	return nil
}
