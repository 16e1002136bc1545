// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/taskhub/internal/app/store/gateway"
	"github.com/dalemusser/taskhub/internal/app/system/paging"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for TaskHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, max_page_size, etc.
//   - Environment variables: TASKHUB_MONGO_URI, TASKHUB_MAX_PAGE_SIZE, etc.
//   - Command-line flags: --mongo_uri, --max_page_size, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: gateway.DefaultDatabase, Desc: "MongoDB database name (ignored when the URI names one)"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},
	{Name: "mongo_connect_timeout", Default: "10s", Desc: "MongoDB connect timeout (e.g., 10s, 1m)"},

	// Pagination
	{Name: "default_page_size", Default: paging.DefaultPageSize, Desc: "Page size used when limit is absent or invalid"},
	{Name: "max_page_size", Default: paging.MaxLimit, Desc: "Largest page size a client may request"},

	// Referential checks
	{Name: "verify_assignee_on_update", Default: false, Desc: "Reject task updates whose assignee does not exist"},

	// Store timeouts
	{Name: "timeout_short", Default: "5s", Desc: "Timeout for single-document store calls"},
	{Name: "timeout_medium", Default: "10s", Desc: "Timeout for paged list store calls"},

	// Seeder
	{Name: "seed_employee_target", Default: 1000, Desc: "Employee count cmd/seed fills the collection up to"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, TASKHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "TASKHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:            appValues.String("mongo_uri"),
		MongoDatabase:       appValues.String("mongo_database"),
		MongoMaxPoolSize:    uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize:    uint64(appValues.Int("mongo_min_pool_size")),
		MongoConnectTimeout: appValues.Duration("mongo_connect_timeout", 10*time.Second),

		DefaultPageSize: appValues.Int("default_page_size"),
		MaxPageSize:     appValues.Int("max_page_size"),

		VerifyAssigneeOnUpdate: appValues.Bool("verify_assignee_on_update"),

		TimeoutShort:  appValues.Duration("timeout_short", timeouts.DefaultShort),
		TimeoutMedium: appValues.Duration("timeout_medium", timeouts.DefaultMedium),

		SeedEmployeeTarget: appValues.Int("seed_employee_target"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// TaskHub validates the MongoDB URI format to catch configuration errors
// early, before attempting to connect, and rejects page-size bounds that
// could never produce a page.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if err := validatePaging(appCfg); err != nil {
		return err
	}
	if appCfg.MongoMinPoolSize > appCfg.MongoMaxPoolSize {
		return fmt.Errorf("mongo_min_pool_size (%d) exceeds mongo_max_pool_size (%d)",
			appCfg.MongoMinPoolSize, appCfg.MongoMaxPoolSize)
	}
	if appCfg.SeedEmployeeTarget < 0 {
		return fmt.Errorf("seed_employee_target must not be negative")
	}
	return nil
}

func validatePaging(appCfg AppConfig) error {
	if appCfg.MaxPageSize < 1 {
		return fmt.Errorf("max_page_size must be at least 1, got %d", appCfg.MaxPageSize)
	}
	if appCfg.DefaultPageSize < 1 {
		return fmt.Errorf("default_page_size must be at least 1, got %d", appCfg.DefaultPageSize)
	}
	if appCfg.DefaultPageSize > appCfg.MaxPageSize {
		return fmt.Errorf("default_page_size (%d) exceeds max_page_size (%d)",
			appCfg.DefaultPageSize, appCfg.MaxPageSize)
	}
	return nil
}

// GatewayConfig maps the Mongo settings onto the gateway's config.
func (c AppConfig) GatewayConfig() gateway.Config {
	return gateway.Config{
		URI:            c.MongoURI,
		Database:       c.MongoDatabase,
		MaxPoolSize:    c.MongoMaxPoolSize,
		MinPoolSize:    c.MongoMinPoolSize,
		ConnectTimeout: c.MongoConnectTimeout,
	}
}

// PageLimits returns the configured pagination bounds.
func (c AppConfig) PageLimits() paging.Limits {
	return paging.NewLimits(c.DefaultPageSize, c.MaxPageSize)
}
