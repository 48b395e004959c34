package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"

	LockRedis = "redis"
	LockLocal = "local"
)

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	// Store selects the persistence backend: mongo or memory.
	Store string `env:"STORE, default=mongo"`

	// AuditWorkers is the number of sharded audit writer goroutines.
	AuditWorkers int `env:"AUDIT_WORKERS, default=4"`

	// PartTypes overrides the part type table, e.g. "RAM:false,Printer:true".
	PartTypes map[string]bool `env:"PART_TYPES"`

	Mongo MongoConfig
	Redis RedisConfig
	Lock  LockConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=systrack"`
	// Transactions makes every multi-entity write atomic and needs a replica
	// set; startup fails when the server cannot provide them. Setting it to
	// false keeps entity locking but a write failing partway is not undone.
	Transactions bool `env:"MONGO_TRANSACTIONS, default=true"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type LockConfig struct {
	// Backend is redis for multi-instance deployments or local for one process.
	Backend string        `env:"LOCK_BACKEND, default=redis"`
	Timeout time.Duration `env:"LOCK_TIMEOUT, default=5s"`
	// TTL is how long a redis lock survives a holder that stops renewing it,
	// e.g. after a crash. Live holders renew every TTL/3.
	TTL time.Duration `env:"LOCK_TTL, default=10s"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith reads configuration through lookuper and validates it.
func LoadWith(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Store {
	case StoreMongo, StoreMemory:
	default:
		return fmt.Errorf("STORE must be %q or %q, got %q", StoreMongo, StoreMemory, c.Store)
	}
	switch c.Lock.Backend {
	case LockRedis, LockLocal:
	default:
		return fmt.Errorf("LOCK_BACKEND must be %q or %q, got %q", LockRedis, LockLocal, c.Lock.Backend)
	}
	if c.Env == "production" && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required in production")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
