package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/skipper/pkg/log"
)

type TelegramConfig struct {
	Token string `env:"TELEGRAM_TOKEN,required,notEmpty"`

	// When non-empty, only these user IDs may invoke commands.
	AllowedIDs []int64 `env:"TELEGRAM_ALLOWED_IDS" envSeparator:","`
}

func NewTelegramConfig(ctx context.Context) *TelegramConfig {
	c := &TelegramConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Telegram config")
	}
	return c
}
