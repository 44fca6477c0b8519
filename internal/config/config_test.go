package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.App.Environment = "development"
	cfg.Server.Port = "8080"
	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.Name = "pos_db"
	cfg.Database.User = "pos_user"
	cfg.Database.Password = "secret"
	cfg.Database.SSLMode = "disable"
	cfg.Redis.Host = "localhost"
	cfg.Redis.Port = "6379"
	cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
	cfg.Cart.SessionTTL = 12 * time.Hour
	return cfg
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("valid config failed validation: %v", err)
	}

	short := validConfig()
	short.JWT.Secret = "too-short"
	if err := short.Validate(); err == nil {
		t.Error("expected error for short JWT secret")
	}

	noDB := validConfig()
	noDB.Database.Host = ""
	if err := noDB.Validate(); err == nil {
		t.Error("expected error for missing database host")
	}

	noRedis := validConfig()
	noRedis.Redis.Host = ""
	if err := noRedis.Validate(); err == nil {
		t.Error("expected error for missing redis host")
	}
}

func TestGetDatabaseDSN(t *testing.T) {
	got := validConfig().GetDatabaseDSN()
	want := "host=localhost port=5432 user=pos_user password=secret dbname=pos_db sslmode=disable"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestGetRedisAddr(t *testing.T) {
	if got := validConfig().GetRedisAddr(); got != "localhost:6379" {
		t.Errorf("expected localhost:6379, got %q", got)
	}
}

func TestEnvironmentHelpers(t *testing.T) {
	cfg := validConfig()
	if !cfg.IsDevelopment() || cfg.IsProduction() {
		t.Error("expected development mode")
	}

	cfg.App.Environment = "production"
	if cfg.IsDevelopment() || !cfg.IsProduction() {
		t.Error("expected production mode")
	}
}
