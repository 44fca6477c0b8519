// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/your-org/pos-backend/internal/config"
	"github.com/your-org/pos-backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// Session is one terminal's in-progress cart, held in Redis until the order
// is submitted. Staged entries are the order-creation draft list that gets
// expanded into discrete cart units.
type Session struct {
	SessionID string     `json:"session_id"`
	Items     Cart       `json:"items"`
	Staged    []CartItem `json:"staged"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Totals represents calculated cart totals
type Totals struct {
	ItemCount     int             `json:"item_count"`
	TotalQuantity int             `json:"total_quantity"`
	Total         decimal.Decimal `json:"total"`
}

// SessionResponse is a session with its computed totals
type SessionResponse struct {
	SessionID string     `json:"session_id"`
	Items     Cart       `json:"items"`
	Staged    []CartItem `json:"staged"`
	Totals    Totals     `json:"totals"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Service handles cart session business logic. Each session has exactly one
// mutator (its terminal), so mutations are read-apply-write without locking.
type Service struct {
	db          *gorm.DB
	redisClient *redis.Client
	config      *config.Config
	catalog     *catalog.Service
}

// NewService creates a new cart service
func NewService(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		db:          db,
		redisClient: redisClient,
		config:      cfg,
		catalog:     catalog.NewService(db, cfg),
	}
}

// GetSession retrieves the session cart, creating an empty one if absent
func (s *Service) GetSession(sessionID string) (*SessionResponse, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	return s.respond(session), nil
}

// AddProduct adds a product to the session cart. Deduplicating mode folds
// the product into an existing entry (menu grid "+"); otherwise a discrete
// entry is appended.
func (s *Service) AddProduct(sessionID string, productID uint, deduplicate bool) (*SessionResponse, error) {
	product, err := s.availableProduct(productID)
	if err != nil {
		return nil, err
	}

	return s.mutate(sessionID, func(session *Session) error {
		if deduplicate {
			session.Items = AddItem(session.Items, product)
		} else {
			session.Items = AddEntry(session.Items, product)
		}
		return nil
	})
}

// IncrementItem raises a cart line's quantity by one
func (s *Service) IncrementItem(sessionID, itemID string) (*SessionResponse, error) {
	return s.mutate(sessionID, func(session *Session) error {
		session.Items = IncrementItem(session.Items, itemID)
		return nil
	})
}

// DecrementItem lowers a cart line's quantity by one, dropping it at zero
func (s *Service) DecrementItem(sessionID, itemID string) (*SessionResponse, error) {
	return s.mutate(sessionID, func(session *Session) error {
		session.Items = DecrementItem(session.Items, itemID)
		return nil
	})
}

// RemoveItem deletes a cart line outright
func (s *Service) RemoveItem(sessionID, itemID string) (*SessionResponse, error) {
	return s.mutate(sessionID, func(session *Session) error {
		session.Items = RemoveItem(session.Items, itemID)
		return nil
	})
}

// VoidItem flags a cart line as voided
func (s *Service) VoidItem(sessionID, itemID string) (*SessionResponse, error) {
	return s.mutate(sessionID, func(session *Session) error {
		session.Items = VoidItem(session.Items, itemID)
		return nil
	})
}

// SetItemNotes replaces a cart line's notes
func (s *Service) SetItemNotes(sessionID, itemID, notes string) (*SessionResponse, error) {
	return s.mutate(sessionID, func(session *Session) error {
		session.Items = SetItemNotes(session.Items, itemID, notes)
		return nil
	})
}

// AddAddOn attaches an add-on product to a cart line. The product must be
// flagged as an add-on and listed in the parent product's submenu.
func (s *Service) AddAddOn(sessionID, itemID string, addOnProductID uint) (*SessionResponse, error) {
	addOn, err := s.availableProduct(addOnProductID)
	if err != nil {
		return nil, err
	}
	if !addOn.IsAddOn {
		return nil, fmt.Errorf("product '%s' is not an add-on", addOn.Name)
	}

	return s.mutate(sessionID, func(session *Session) error {
		idx := session.Items.IndexOf(itemID)
		if idx < 0 {
			return ErrParentNotFound
		}

		parent, err := s.catalog.GetProduct(session.Items[idx].ProductID)
		if err != nil {
			return err
		}
		allowed := false
		for _, sub := range parent.AddOns {
			if sub.ID == addOnProductID {
				allowed = true
				break
			}
		}
		if !allowed {
			return fmt.Errorf("product '%s' is not in the submenu of '%s'", addOn.Name, parent.Name)
		}

		session.Items, err = AddOrIncrementAddOn(session.Items, itemID, addOn)
		return err
	})
}

// DecrementAddOn lowers an add-on line by one, dropping it at zero
func (s *Service) DecrementAddOn(sessionID, itemID string, addOnProductID uint) (*SessionResponse, error) {
	return s.mutate(sessionID, func(session *Session) error {
		session.Items = DecrementAddOn(session.Items, itemID, addOnProductID)
		return nil
	})
}

// StageEntry appends a draft entry with the given quantity to the staging
// list. Staged entries are not priced into the cart until expanded.
func (s *Service) StageEntry(sessionID string, productID uint, quantity int) (*SessionResponse, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("staged quantity must be at least 1")
	}

	product, err := s.availableProduct(productID)
	if err != nil {
		return nil, err
	}

	return s.mutate(sessionID, func(session *Session) error {
		entry := NewCartItem(product)
		entry.Quantity = quantity
		session.Staged = append(session.Staged, entry)
		return nil
	})
}

// RemoveStagedEntry deletes a draft entry from the staging list
func (s *Service) RemoveStagedEntry(sessionID, entryID string) (*SessionResponse, error) {
	return s.mutate(sessionID, func(session *Session) error {
		for i := range session.Staged {
			if session.Staged[i].ID == entryID {
				session.Staged = append(session.Staged[:i], session.Staged[i+1:]...)
				break
			}
		}
		return nil
	})
}

// ExpandStaged moves every staged entry into the cart as discrete
// quantity-1 units and clears the staging list.
func (s *Service) ExpandStaged(sessionID string) (*SessionResponse, error) {
	return s.mutate(sessionID, func(session *Session) error {
		session.Items = ExpandStagedEntries(session.Staged, session.Items)
		session.Staged = []CartItem{}
		return nil
	})
}

// Clear drops the whole session
func (s *Service) Clear(sessionID string) error {
	ctx := context.Background()
	return s.redisClient.Del(ctx, s.sessionKey(sessionID)).Err()
}

// Snapshot returns the current cart contents for order submission. The
// returned slice is a structural copy; the session itself is untouched and
// must be cleared by the caller once the order is persisted.
func (s *Service) Snapshot(sessionID string) (Cart, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}
	return session.Items.Clone(), nil
}

// Private helper methods

func (s *Service) availableProduct(productID uint) (*catalog.Product, error) {
	product, err := s.catalog.GetProduct(productID)
	if err != nil {
		return nil, err
	}
	if !product.IsAvailable {
		return nil, fmt.Errorf("product '%s' is not available", product.Name)
	}
	return product, nil
}

func (s *Service) mutate(sessionID string, apply func(*Session) error) (*SessionResponse, error) {
	session, err := s.loadSession(sessionID)
	if err != nil {
		return nil, err
	}

	if err := apply(session); err != nil {
		return nil, err
	}

	session.UpdatedAt = time.Now().UTC()
	if err := s.saveSession(sessionID, session); err != nil {
		return nil, err
	}

	return s.respond(session), nil
}

func (s *Service) loadSession(sessionID string) (*Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session ID required")
	}

	ctx := context.Background()
	data, err := s.redisClient.Get(ctx, s.sessionKey(sessionID)).Result()
	if err == redis.Nil {
		now := time.Now().UTC()
		return &Session{
			SessionID: sessionID,
			Items:     Cart{},
			Staged:    []CartItem{},
			CreatedAt: now,
			UpdatedAt: now,
		}, nil
	} else if err != nil {
		return nil, err
	}

	var session Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *Service) saveSession(sessionID string, session *Session) error {
	ctx := context.Background()
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.redisClient.Set(ctx, s.sessionKey(sessionID), data, s.config.Cart.SessionTTL).Err()
}

func (s *Service) sessionKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

func (s *Service) respond(session *Session) *SessionResponse {
	return &SessionResponse{
		SessionID: session.SessionID,
		Items:     session.Items,
		Staged:    session.Staged,
		Totals: Totals{
			ItemCount:     len(session.Items),
			TotalQuantity: session.Items.TotalQuantity(),
			Total:         session.Items.Total(),
		},
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
}
