package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server  ServerConfig
	Remote  RemoteConfig
	Redis   RedisConfig
	Session SessionConfig
	Cache   CacheConfig
}

type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"3000"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	StaticDir       string        `env:"SERVER_STATIC_DIR" envDefault:""`
}

type RemoteConfig struct {
	BaseURL string        `env:"REMOTE_API_URL" envDefault:"https://apijhon.onrender.com/api"`
	Timeout time.Duration `env:"REMOTE_API_TIMEOUT" envDefault:"15s"`
}

// Redis is optional; with an empty Addr the console falls back to the
// in-memory session store.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR" envDefault:""`
	Password string `env:"REDIS_PASSWORD" envDefault:""`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

type SessionConfig struct {
	TTL           time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	CookieName    string        `env:"SESSION_COOKIE" envDefault:"admin_session"`
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"60s"`
}

type CacheConfig struct {
	RefreshInterval time.Duration `env:"CACHE_REFRESH_INTERVAL" envDefault:"5m"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
