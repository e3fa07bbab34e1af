package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Upstream UpstreamConfig
	Redis    RedisConfig
	Session  SessionConfig
}

// UpstreamConfig locates the BusyBee REST backend the gateway fronts.
type UpstreamConfig struct {
	BaseURL string        `env:"BUSYBEE_API_URL,     default=http://localhost:5000"`
	Timeout time.Duration `env:"BUSYBEE_API_TIMEOUT, default=10s"`
}

// RedisConfig configures the session store. An empty Addr switches the
// gateway to the in-memory store (single instance, development only).
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

type SessionConfig struct {
	TTL        time.Duration `env:"SESSION_TTL,    default=24h"`
	CookieName string        `env:"SESSION_COOKIE, default=busybee_session"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
