// internal/domain/order/service.go
package order

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/pos-backend/internal/config"
	"github.com/your-org/pos-backend/internal/domain/cart"
	"github.com/your-org/pos-backend/internal/domain/store"
	"gorm.io/gorm"
)

// Service handles order business logic
type Service struct {
	db          *gorm.DB
	config      *config.Config
	cartService *cart.Service
}

// NewService creates a new order service
func NewService(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		db:          db,
		config:      cfg,
		cartService: cart.NewService(db, redisClient, cfg),
	}
}

// SubmitOrderRequest represents an order submission payload
type SubmitOrderRequest struct {
	StoreID       uint      `json:"store_id" binding:"required"`
	TableID       *uint     `json:"table_id"`
	Type          OrderType `json:"type" binding:"required,oneof=dine_in take_out"`
	Notes         string    `json:"notes"`
	CustomerNotes string    `json:"customer_notes"`
}

// UpdateStatusRequest represents a lifecycle transition payload
type UpdateStatusRequest struct {
	Status OrderStatus `json:"status" binding:"required,oneof=preparing served completed declined cancelled"`
}

// SettlePaymentRequest represents the settlement patch applied after an
// order is created; nothing else on the order is mutable.
type SettlePaymentRequest struct {
	PaymentMethod string `json:"payment_method" binding:"required"`
}

// Submit snapshots the terminal's cart into a persisted order. An empty
// cart, or a dine-in order without a table, refuses to produce an order.
func (s *Service) Submit(sessionID string, req *SubmitOrderRequest, actor string) (*Order, error) {
	snapshot, err := s.cartService.Snapshot(sessionID)
	if err != nil {
		return nil, err
	}
	if len(snapshot) == 0 {
		return nil, fmt.Errorf("cannot submit an empty cart")
	}
	if req.Type == OrderTypeDineIn && req.TableID == nil {
		return nil, fmt.Errorf("dine-in orders require a table")
	}

	o := Order{
		StoreID:       req.StoreID,
		TableID:       req.TableID,
		Type:          req.Type,
		Notes:         req.Notes,
		CustomerNotes: req.CustomerNotes,
		CartItems:     snapshot,
		PaymentStatus: PaymentStatusUnpaid,
		Status:        OrderStatusConfirmed,
		TotalAmount:   snapshot.Total(),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&store.Store{}, req.StoreID).Error; err != nil {
			return fmt.Errorf("store not found")
		}
		if req.TableID != nil {
			if err := tx.Where("id = ? AND store_id = ?", *req.TableID, req.StoreID).
				First(&store.DiningTable{}).Error; err != nil {
				return fmt.Errorf("table not found in store")
			}
		}

		if err := tx.Create(&o).Error; err != nil {
			return err
		}

		o.OrderNumber = o.GenerateOrderNumber()
		if err := tx.Model(&o).Update("order_number", o.OrderNumber).Error; err != nil {
			return err
		}

		history := OrderHistory{
			OrderID:   o.ID,
			Action:    string(OrderStatusConfirmed),
			Actor:     actor,
			CreatedAt: time.Now().UTC(),
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		if req.TableID != nil {
			if err := tx.Model(&store.DiningTable{}).Where("id = ?", *req.TableID).
				Update("is_occupied", true).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to submit order: %w", err)
	}

	// Cart is discarded once its contents are copied into the order
	if err := s.cartService.Clear(sessionID); err != nil {
		return nil, fmt.Errorf("order %s created but cart session not cleared: %w", o.OrderNumber, err)
	}

	return s.Get(o.ID)
}

// Get returns one order with its history
func (s *Service) Get(id uint) (*Order, error) {
	var o Order
	err := s.db.Preload("History", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at asc")
	}).First(&o, id).Error
	if err != nil {
		return nil, fmt.Errorf("order not found")
	}
	return &o, nil
}

// List returns a store's orders within the date range, newest first,
// optionally filtered by status.
func (s *Service) List(storeID uint, from, to time.Time, status *OrderStatus) ([]Order, error) {
	query := s.db.Where("store_id = ? AND created_at BETWEEN ? AND ?", storeID, from, to)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var orders []Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus applies a lifecycle transition and records it in history
func (s *Service) UpdateStatus(id uint, next OrderStatus, actor string) (*Order, error) {
	var o Order
	if err := s.db.First(&o, id).Error; err != nil {
		return nil, fmt.Errorf("order not found")
	}

	if !o.CanTransitionTo(next) {
		return nil, fmt.Errorf("cannot transition order from %s to %s", o.Status, next)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&o).Update("status", next).Error; err != nil {
			return err
		}

		history := OrderHistory{
			OrderID:   o.ID,
			Action:    string(next),
			Actor:     actor,
			CreatedAt: time.Now().UTC(),
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		// Free the table once the order leaves the floor
		terminal := next == OrderStatusCompleted || next == OrderStatusDeclined || next == OrderStatusCancelled
		if terminal && o.TableID != nil {
			if err := tx.Model(&store.DiningTable{}).Where("id = ?", *o.TableID).
				Update("is_occupied", false).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	return s.Get(id)
}

// SettlePayment records the payment method and marks the order paid
func (s *Service) SettlePayment(id uint, req *SettlePaymentRequest, actor string) (*Order, error) {
	var o Order
	if err := s.db.First(&o, id).Error; err != nil {
		return nil, fmt.Errorf("order not found")
	}

	if o.PaymentStatus == PaymentStatusPaid {
		return nil, fmt.Errorf("order is already paid")
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"payment_method": req.PaymentMethod,
			"payment_status": PaymentStatusPaid,
		}
		if err := tx.Model(&o).Updates(updates).Error; err != nil {
			return err
		}

		history := OrderHistory{
			OrderID:   o.ID,
			Action:    "payment_settled",
			Actor:     actor,
			CreatedAt: time.Now().UTC(),
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to settle payment: %w", err)
	}

	return s.Get(id)
}
