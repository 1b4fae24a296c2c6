package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	ListenAddr    string `env:"DARKLIFE_LISTEN_ADDR" envDefault:":8080"`
	DatabaseDSN   string `env:"DARKLIFE_DB_DSN"`
	MemoryStore   bool   `env:"DARKLIFE_MEMORY_STORE" envDefault:"false"`
	MigrationsDir string `env:"DARKLIFE_MIGRATIONS_DIR" envDefault:"./migrations"`
	RandSeed      int64  `env:"DARKLIFE_RAND_SEED" envDefault:"0"`

	// Per-player request limiter on the transport adapter.
	RateLimitPerSecond float64 `env:"DARKLIFE_RATE_LIMIT" envDefault:"5"`
	RateLimitBurst     int     `env:"DARKLIFE_RATE_BURST" envDefault:"10"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if !cfg.MemoryStore && cfg.DatabaseDSN == "" {
		return Config{}, fmt.Errorf("DARKLIFE_DB_DSN is required unless DARKLIFE_MEMORY_STORE=true")
	}
	return cfg, nil
}
