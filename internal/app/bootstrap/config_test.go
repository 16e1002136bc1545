package bootstrap

import (
	"strings"
	"testing"
	"time"

	"github.com/dalemusser/taskhub/internal/app/store/gateway"
	"go.uber.org/zap"
)

func validConfig() AppConfig {
	return AppConfig{
		MongoURI:            "mongodb://localhost:27017",
		MongoDatabase:       gateway.DefaultDatabase,
		MongoMaxPoolSize:    100,
		MongoMinPoolSize:    10,
		MongoConnectTimeout: 10 * time.Second,
		DefaultPageSize:     50,
		MaxPageSize:         500,
		SeedEmployeeTarget:  1000,
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AppConfig)
		wantErr string
	}{
		{"valid", func(*AppConfig) {}, ""},
		{"bad uri scheme", func(c *AppConfig) { c.MongoURI = "http://localhost" }, "invalid MongoDB URI"},
		{"zero max page", func(c *AppConfig) { c.MaxPageSize = 0 }, "max_page_size"},
		{"zero default page", func(c *AppConfig) { c.DefaultPageSize = 0 }, "default_page_size"},
		{"default above max", func(c *AppConfig) { c.DefaultPageSize = 600 }, "exceeds max_page_size"},
		{"pool inverted", func(c *AppConfig) { c.MongoMinPoolSize = 200 }, "mongo_min_pool_size"},
		{"negative seed target", func(c *AppConfig) { c.SeedEmployeeTarget = -1 }, "seed_employee_target"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := ValidateConfig(nil, cfg, zap.NewNop())
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestAppConfig_GatewayConfig(t *testing.T) {
	cfg := validConfig()
	cfg.MongoURI = "mongodb://db.internal:27017/hr"

	gc := cfg.GatewayConfig()
	if gc.URI != cfg.MongoURI || gc.MaxPoolSize != 100 || gc.MinPoolSize != 10 {
		t.Errorf("unexpected gateway config: %+v", gc)
	}
	if gc.ConnectTimeout != 10*time.Second {
		t.Errorf("ConnectTimeout = %v", gc.ConnectTimeout)
	}
	if got := gateway.DatabaseName(gc); got != "hr" {
		t.Errorf("DatabaseName = %q, want hr", got)
	}
}

func TestAppConfig_PageLimits(t *testing.T) {
	cfg := validConfig()
	cfg.DefaultPageSize = 20
	cfg.MaxPageSize = 100

	l := cfg.PageLimits()
	if l.Default != 20 || l.Max != 100 {
		t.Errorf("limits = %+v, want 20/100", l)
	}
	if _, limit := l.Normalize(1, 1000); limit != 100 {
		t.Errorf("Normalize clamp = %d, want 100", limit)
	}
}
