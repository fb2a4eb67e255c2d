package config

import (
	"context"
	"testing"
)

func setRequiredSecrets(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredSecrets(t)

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.Password != "" {
		t.Fatalf("unexpected redis defaults: %+v", cfg.Redis)
	}
	if cfg.IsProduction() {
		t.Fatalf("default environment must not be production")
	}
}

func TestLoad_RedisPassword(t *testing.T) {
	setRequiredSecrets(t)
	t.Setenv("REDIS_PASSWORD", "s3cret")

	cfg, err := Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Redis.Password != "s3cret" {
		t.Fatalf("expected redis password from environment, got %q", cfg.Redis.Password)
	}
}

func TestLoad_RequiresSecrets(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	t.Setenv("JWT_REFRESH_SECRET", "")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error when JWT secrets are unset")
	}
}

func TestLoad_SecretsMustDiffer(t *testing.T) {
	t.Setenv("JWT_SECRET", "same-secret")
	t.Setenv("JWT_REFRESH_SECRET", "same-secret")

	if _, err := Load(context.Background()); err == nil {
		t.Fatalf("expected error when both JWT secrets match")
	}
}
