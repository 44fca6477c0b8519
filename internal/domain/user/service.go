// internal/domain/user/service.go
package user

import (
	"fmt"
	"time"

	"github.com/your-org/pos-backend/internal/config"
	"github.com/your-org/pos-backend/internal/pkg/auth"
	"gorm.io/gorm"
)

// Service handles staff account business logic
type Service struct {
	db              *gorm.DB
	config          *config.Config
	jwtManager      *auth.JWTManager
	passwordManager *auth.PasswordManager
}

// NewService creates a new user service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:              db,
		config:          cfg,
		jwtManager:      auth.NewJWTManager(cfg),
		passwordManager: auth.NewPasswordManager(cfg),
	}
}

// RegisterRequest represents a staff account creation payload
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required"`
	Role     Role   `json:"role" binding:"required,oneof=admin manager cashier"`
	StoreID  *uint  `json:"store_id"`
}

// LoginRequest represents a login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenPair represents an access/refresh token pair
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginResponse represents a successful login
type LoginResponse struct {
	User   User      `json:"user"`
	Tokens TokenPair `json:"tokens"`
}

// Register creates a new staff account
func (s *Service) Register(req *RegisterRequest) (*User, error) {
	var existing User
	if err := s.db.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		return nil, fmt.Errorf("email already registered")
	}

	hashed, err := s.passwordManager.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	account := User{
		Email:    req.Email,
		Password: hashed,
		Name:     req.Name,
		Role:     req.Role,
		StoreID:  req.StoreID,
		IsActive: true,
	}
	if err := s.db.Create(&account).Error; err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	return &account, nil
}

// Login authenticates a staff account and issues tokens
func (s *Service) Login(req *LoginRequest) (*LoginResponse, error) {
	var account User
	if err := s.db.Where("email = ? AND is_active = ?", req.Email, true).First(&account).Error; err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	if err := s.passwordManager.VerifyPassword(req.Password, account.Password); err != nil {
		return nil, fmt.Errorf("invalid credentials")
	}

	tokens, err := s.issueTokens(&account)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account.LastLogin = &now
	s.db.Model(&account).Update("last_login", now)

	return &LoginResponse{User: account, Tokens: *tokens}, nil
}

// Refresh exchanges a valid refresh token for a new token pair
func (s *Service) Refresh(refreshToken string) (*TokenPair, error) {
	claims, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("invalid refresh token")
	}

	var account User
	if err := s.db.Where("id = ? AND is_active = ?", claims.UserID, true).First(&account).Error; err != nil {
		return nil, fmt.Errorf("account not found or inactive")
	}

	return s.issueTokens(&account)
}

// GetProfile returns the account for the given id
func (s *Service) GetProfile(id uint) (*User, error) {
	var account User
	if err := s.db.First(&account, id).Error; err != nil {
		return nil, fmt.Errorf("account not found")
	}
	return &account, nil
}

// ListAccounts returns all staff accounts, optionally scoped to a store
func (s *Service) ListAccounts(storeID *uint) ([]User, error) {
	query := s.db.Order("name asc")
	if storeID != nil {
		query = query.Where("store_id = ?", *storeID)
	}

	var accounts []User
	if err := query.Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// Deactivate disables a staff account
func (s *Service) Deactivate(id uint) error {
	return s.db.Model(&User{}).Where("id = ?", id).Update("is_active", false).Error
}

func (s *Service) issueTokens(account *User) (*TokenPair, error) {
	access, err := s.jwtManager.GenerateAccessToken(account.ID, account.Email, string(account.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refresh, err := s.jwtManager.GenerateRefreshToken(account.ID, account.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return &TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
