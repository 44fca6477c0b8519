// internal/domain/store/entity.go
package store

import (
	"time"

	"gorm.io/gorm"
)

// Store represents one branch of the chain
type Store struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	Name       string         `gorm:"not null;size:255" json:"name"`
	BranchCode string         `gorm:"uniqueIndex;not null;size:50" json:"branch_code"`
	Address    string         `gorm:"size:500" json:"address"`
	Contact    string         `gorm:"size:50" json:"contact"`
	IsActive   bool           `gorm:"default:true" json:"is_active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Tables []DiningTable `gorm:"foreignKey:StoreID" json:"tables,omitempty"`
}

// DiningTable represents a table in a store's dining area
type DiningTable struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	StoreID    uint           `gorm:"not null;index" json:"store_id"`
	Name       string         `gorm:"not null;size:100" json:"name"`
	Capacity   int            `gorm:"default:2" json:"capacity"`
	IsOccupied bool           `gorm:"default:false" json:"is_occupied"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides
func (Store) TableName() string       { return "stores" }
func (DiningTable) TableName() string { return "dining_tables" }
