package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/sustainalink/platform/internal/core/domain"
)

const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

type Config struct {
	Port            string        `env:"PORT, default=5000"`
	Env             string        `env:"APP_ENV, default=development"`
	LogLevel        string        `env:"LOG_LEVEL, default=info"`
	LogPretty       bool          `env:"LOG_PRETTY, default=false"`
	StoreDriver     string        `env:"STORE_DRIVER, default=memory"`
	SeedDemoData    *bool         `env:"SEED_DEMO_DATA"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Auth   AuthConfig
	HTTP   HTTPConfig
	Mongo  MongoConfig
	Redis  RedisConfig
	Gemini GeminiConfig
	Notify NotifyConfig
}

type AuthConfig struct {
	JWTSecret     string        `env:"JWT_SECRET, required"`
	JWTExpiresIn  time.Duration `env:"JWT_EXPIRES_IN, default=168h"`
	BcryptCost    int           `env:"BCRYPT_COST, default=10"`
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL, default=1h"`
	FrontendURL   string        `env:"FRONTEND_URL, default=http://localhost:3000"`
}

type HTTPConfig struct {
	CORSOrigins  []string `env:"CORS_ORIGINS, default=*"`
	RateLimitRPS float64  `env:"RATE_LIMIT_RPS, default=20"`
	BodyLimit    string   `env:"BODY_LIMIT, default=10M"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB, default=sustainalink"`
}

// RedisConfig is optional; an empty Addr keeps reset tokens in memory.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

type GeminiConfig struct {
	APIKey  string        `env:"GEMINI_API_KEY"`
	Model   string        `env:"GEMINI_MODEL, default=gemini-1.5-flash"`
	BaseURL string        `env:"GEMINI_BASE_URL, default=https://generativelanguage.googleapis.com"`
	Timeout time.Duration `env:"GEMINI_TIMEOUT, default=30s"`
}

type NotifyConfig struct {
	Workers int `env:"NOTIFY_WORKERS, default=4"`
}

// Seed reports whether demo data should be loaded. It defaults to true for
// the memory store and false for MongoDB.
func (c *Config) Seed() bool {
	if c.SeedDemoData != nil {
		return *c.SeedDemoData
	}
	return c.StoreDriver == StoreMemory
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

// Load reads configuration from the process environment.
func Load(ctx context.Context) (*Config, error) {
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration through l and validates it. Any failure wraps
// domain.ErrConfiguration.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrConfiguration, err)
	}

	switch cfg.StoreDriver {
	case StoreMemory, StoreMongo:
	default:
		return nil, fmt.Errorf("%w: unknown STORE_DRIVER %q", domain.ErrConfiguration, cfg.StoreDriver)
	}
	if cfg.Auth.JWTExpiresIn <= 0 {
		return nil, fmt.Errorf("%w: JWT_EXPIRES_IN must be positive", domain.ErrConfiguration)
	}
	return &cfg, nil
}
