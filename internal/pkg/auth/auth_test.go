package auth

import (
	"testing"
	"time"

	"github.com/your-org/pos-backend/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "pos-backend-test"
	cfg.JWT.Secret = "test-secret-key-for-unit-tests"
	cfg.JWT.AccessTokenExpiry = 15 * time.Minute
	cfg.JWT.RefreshTokenExpiry = 24 * time.Hour
	cfg.Security.BcryptCost = 4
	return cfg
}

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager(testConfig())

	token, err := manager.GenerateAccessToken(42, "cashier@example.com", "cashier")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	claims, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("failed to validate token: %v", err)
	}

	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
	if claims.Email != "cashier@example.com" {
		t.Errorf("expected email cashier@example.com, got %s", claims.Email)
	}
	if claims.Role != "cashier" {
		t.Errorf("expected role cashier, got %s", claims.Role)
	}
}

func TestRefreshTokenRejectedAsAccess(t *testing.T) {
	manager := NewJWTManager(testConfig())

	token, err := manager.GenerateRefreshToken(42, "cashier@example.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	if _, err := manager.ValidateAccessToken(token); err == nil {
		t.Error("refresh token must not pass access validation")
	}
	if _, err := manager.ValidateRefreshToken(token); err != nil {
		t.Errorf("refresh token failed refresh validation: %v", err)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	manager := NewJWTManager(testConfig())
	token, err := manager.GenerateAccessToken(1, "a@example.com", "admin")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	other := testConfig()
	other.JWT.Secret = "a-different-secret"
	if _, err := NewJWTManager(other).ValidateToken(token); err == nil {
		t.Error("token signed with another secret must not validate")
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	if got := ExtractTokenFromHeader("Bearer abc.def.ghi"); got != "abc.def.ghi" {
		t.Errorf("expected token, got %q", got)
	}
	if got := ExtractTokenFromHeader("abc.def.ghi"); got != "" {
		t.Errorf("expected empty string without Bearer prefix, got %q", got)
	}
	if got := ExtractTokenFromHeader(""); got != "" {
		t.Errorf("expected empty string for empty header, got %q", got)
	}
}

func TestPasswordHashAndVerify(t *testing.T) {
	manager := NewPasswordManager(testConfig())

	hash, err := manager.HashPassword("Secret123")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if hash == "Secret123" {
		t.Error("hash must not equal the plaintext password")
	}

	if err := manager.VerifyPassword("Secret123", hash); err != nil {
		t.Errorf("correct password failed verification: %v", err)
	}
	if err := manager.VerifyPassword("Wrong456", hash); err == nil {
		t.Error("wrong password must not verify")
	}
}

func TestValidatePassword(t *testing.T) {
	manager := NewPasswordManager(testConfig())

	cases := []struct {
		password string
		ok       bool
	}{
		{"Secret123", true},
		{"short1", false},
		{"onlyletters", false},
		{"12345678", false},
	}

	for _, tc := range cases {
		err := manager.ValidatePassword(tc.password)
		if tc.ok && err != nil {
			t.Errorf("%q: unexpected error: %v", tc.password, err)
		}
		if !tc.ok && err == nil {
			t.Errorf("%q: expected error", tc.password)
		}
	}
}
