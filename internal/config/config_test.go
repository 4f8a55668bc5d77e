package config

import "testing"

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when JWT_SECRET is unset, got nil")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "super-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort: got %d want 8080", cfg.ServerPort)
	}
	if cfg.BcryptCost != 12 {
		t.Errorf("BcryptCost: got %d want 12", cfg.BcryptCost)
	}
	if cfg.JWTExpiresDays != 90 || cfg.CookieExpiresDays != 90 {
		t.Errorf("expiry defaults: got %d/%d want 90/90", cfg.JWTExpiresDays, cfg.CookieExpiresDays)
	}
	if cfg.Production {
		t.Error("Production should default to false")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "super-secret")
	t.Setenv("PORT", "9090")
	t.Setenv("BCRYPT_COST", "10")
	t.Setenv("APP_ENV", "production")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.ServerPort != 9090 {
		t.Errorf("ServerPort: got %d want 9090", cfg.ServerPort)
	}
	if cfg.BcryptCost != 10 {
		t.Errorf("BcryptCost: got %d want 10", cfg.BcryptCost)
	}
	if !cfg.Production {
		t.Error("Production should be true")
	}
}
