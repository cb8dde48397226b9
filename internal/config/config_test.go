package config

import (
	"testing"
	"time"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SESSION_SECRET", "test-secret")
	t.Setenv("DATABASE_HOST", "db.internal")
	t.Setenv("DATABASE_PORT", "6543")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Session.Secret != "test-secret" {
		t.Errorf("Session.Secret = %q, want %q", cfg.Session.Secret, "test-secret")
	}
	if cfg.Database.Host != "db.internal" || cfg.Database.Port != 6543 {
		t.Errorf("Database = %s:%d, want db.internal:6543", cfg.Database.Host, cfg.Database.Port)
	}
	if cfg.Session.TTL != 168*time.Hour {
		t.Errorf("Session.TTL = %v, want 168h", cfg.Session.TTL)
	}
	if cfg.Session.CookieName != "session" {
		t.Errorf("Session.CookieName = %q, want session", cfg.Session.CookieName)
	}
	if cfg.Session.BcryptCost != 10 {
		t.Errorf("Session.BcryptCost = %d, want 10", cfg.Session.BcryptCost)
	}
	if cfg.RabbitMQ.Enabled || cfg.RabbitMQ.PublishWorkers != 2 || cfg.RabbitMQ.QueueSize != 256 {
		t.Errorf("RabbitMQ = %+v, want disabled with 2 workers and queue 256", cfg.RabbitMQ)
	}
	if len(cfg.CORS.AllowedOrigins) != 1 || cfg.CORS.AllowedOrigins[0] != "*" {
		t.Errorf("CORS.AllowedOrigins = %v, want [*]", cfg.CORS.AllowedOrigins)
	}
}

func TestLoadRequiresSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("Load() without a session secret should fail")
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		Database: DatabaseConfig{Host: "localhost"},
		Session:  SessionConfig{Secret: "s", TTL: time.Hour},
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "empty host", mutate: func(c *Config) { c.Database.Host = "" }, wantErr: true},
		{name: "empty secret", mutate: func(c *Config) { c.Session.Secret = "" }, wantErr: true},
		{name: "zero ttl", mutate: func(c *Config) { c.Session.TTL = 0 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDatabaseDSN(t *testing.T) {
	c := DatabaseConfig{
		Host: "localhost", Port: 5432, User: "u", Password: "p", Name: "tasks", SSLMode: "disable",
	}

	want := "postgres://u:p@localhost:5432/tasks?sslmode=disable"
	if got := c.DSN(); got != want {
		t.Errorf("DSN() = %q, want %q", got, want)
	}
}
