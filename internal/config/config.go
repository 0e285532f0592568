package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joeshaw/envdecode"
	errwrap "github.com/pkg/errors"
	"github.com/subosito/gotenv"
)

type Config struct {
	DatabaseURL          string        `env:"DATABASE_URL,required" validate:"required"`
	Port                 int           `env:"PORT,default=8000" validate:"gt=0,lte=65535"`
	LogLevel             string        `env:"LOG_LEVEL,default=info" validate:"oneof=debug info warn error"`
	SlowQueryThreshold   time.Duration `env:"SLOW_QUERY_THRESHOLD,default=500ms" validate:"gt=0"`
	StatsSummaryInterval time.Duration `env:"STATS_SUMMARY_INTERVAL,default=5m" validate:"gt=0"`
	MaxOpenConns         int           `env:"DB_MAX_OPEN_CONNS,default=10" validate:"gt=0"`
}

// Load reads .env if present, decodes the environment and validates the
// result. A missing .env file is not an error.
func Load() (*Config, error) {
	funcName := "config.Load"

	_ = gotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, errwrap.Wrap(err, funcName)
	}

	return &cfg, nil
}
