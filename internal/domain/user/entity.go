// internal/domain/user/entity.go
package user

import (
	"time"

	"gorm.io/gorm"
)

// Role represents a staff role
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleCashier Role = "cashier"
)

// User represents a staff account. Cashiers and managers are assigned to a
// store; admins are chain-wide.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Email     string         `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Password  string         `gorm:"not null;size:255" json:"-"`
	Name      string         `gorm:"not null;size:255" json:"name"`
	Role      Role           `gorm:"not null;default:'cashier';size:20" json:"role"`
	StoreID   *uint          `gorm:"index" json:"store_id"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	LastLogin *time.Time     `json:"last_login"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName overrides the table name
func (User) TableName() string { return "users" }

// IsAdmin reports whether the account has chain-wide admin rights
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
