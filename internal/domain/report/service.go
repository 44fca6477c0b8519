// internal/domain/report/service.go
package report

import (
	"fmt"
	"time"

	"github.com/your-org/pos-backend/internal/config"
	"github.com/your-org/pos-backend/internal/domain/expense"
	"github.com/your-org/pos-backend/internal/domain/order"
	"gorm.io/gorm"
)

// Service assembles sales/expense reports for back-office screens
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new report service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// SalesReportResponse is a sales report with its query scope echoed back
type SalesReportResponse struct {
	StoreID    uint      `json:"store_id"`
	From       time.Time `json:"from"`
	To         time.Time `json:"to"`
	OrderCount int       `json:"order_count"`
	SalesReport
}

// SalesReport queries completed orders and the store's expenses for the
// date range, then runs the tally reducer over them.
func (s *Service) SalesReport(storeID uint, from, to time.Time) (*SalesReportResponse, error) {
	var orders []order.Order
	err := s.db.
		Where("store_id = ? AND status = ? AND created_at BETWEEN ? AND ?",
			storeID, order.OrderStatusCompleted, from, to).
		Order("created_at asc").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}

	var expenses []expense.ExpenseRecord
	err = s.db.
		Where("store_id = ? AND created_at BETWEEN ? AND ?", storeID, from, to).
		Order("created_at asc").
		Find(&expenses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}

	return &SalesReportResponse{
		StoreID:     storeID,
		From:        from,
		To:          to,
		OrderCount:  len(orders),
		SalesReport: BuildSalesReport(orders, expenses),
	}, nil
}
