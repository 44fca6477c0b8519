// internal/domain/order/entity.go
package order

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/pos-backend/internal/domain/cart"
	"gorm.io/gorm"
)

// OrderType represents how the order is served
type OrderType string

const (
	OrderTypeDineIn  OrderType = "dine_in"
	OrderTypeTakeOut OrderType = "take_out"
)

// OrderStatus represents the order lifecycle state
type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusServed    OrderStatus = "served"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusDeclined  OrderStatus = "declined"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// PaymentStatus represents payment status
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// Order represents a persisted order. CartItems is the immutable snapshot
// of the terminal cart taken at submission; only the payment fields are
// patched afterwards.
type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	OrderNumber   string        `gorm:"uniqueIndex;not null;size:50" json:"order_number"`
	StoreID       uint          `gorm:"not null;index" json:"store_id"`
	TableID       *uint         `gorm:"index" json:"table_id"`
	Type          OrderType     `gorm:"not null;size:20" json:"type"`
	Notes         string        `gorm:"type:text" json:"notes"`
	CustomerNotes string        `gorm:"type:text" json:"customer_notes"`
	CartItems     cart.Cart     `gorm:"serializer:json;type:jsonb" json:"cart_items"`
	PaymentMethod string        `gorm:"size:50" json:"payment_method"`
	PaymentStatus PaymentStatus `gorm:"not null;default:'unpaid';size:20" json:"payment_status"`
	Status        OrderStatus   `gorm:"not null;default:'confirmed';size:20" json:"status"`

	TotalAmount decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total_amount"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	History []OrderHistory `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"history,omitempty"`
}

// OrderHistory records one lifecycle action on an order
type OrderHistory struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	Action    string    `gorm:"not null;size:50" json:"action"`
	Actor     string    `gorm:"not null;size:255" json:"actor"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName overrides
func (Order) TableName() string        { return "orders" }
func (OrderHistory) TableName() string { return "order_history" }

// GenerateOrderNumber generates a unique order number.
// Format: ORD-YYYYMMDD-XXXXX
func (o *Order) GenerateOrderNumber() string {
	return fmt.Sprintf("ORD-%s-%05d", time.Now().Format("20060102"), o.ID)
}

var transitions = map[OrderStatus][]OrderStatus{
	OrderStatusConfirmed: {OrderStatusPreparing, OrderStatusDeclined, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusServed, OrderStatusCancelled},
	OrderStatusServed:    {OrderStatusCompleted},
}

// CanTransitionTo reports whether the lifecycle allows moving to next
func (o *Order) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range transitions[o.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether the order has reached a final state
func (o *Order) IsTerminal() bool {
	return o.Status == OrderStatusCompleted ||
		o.Status == OrderStatusDeclined ||
		o.Status == OrderStatusCancelled
}

// AddHistory appends a lifecycle entry to the order
func (o *Order) AddHistory(action, actor string) {
	o.History = append(o.History, OrderHistory{
		OrderID:   o.ID,
		Action:    action,
		Actor:     actor,
		CreatedAt: time.Now().UTC(),
	})
}
