package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/skipper/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"SKIPPER_RUNTIME_PATH" envDefault:".skipper"`

	// Prefixes that mark a message as a command invocation.
	Prefixes []string `env:"SKIPPER_PREFIXES" envSeparator:"," envDefault:"!"`

	// Transport flags
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"false"`
	EnableConsole  bool `env:"ENABLE_CONSOLE" envDefault:"true"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse app config")
	}
	return c
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "skipper.db")
}
