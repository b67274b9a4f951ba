package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/skipper/internal/botcmds"
	"github.com/sandevgo/skipper/internal/config"
	"github.com/sandevgo/skipper/internal/storage/sqlite"
	"github.com/sandevgo/skipper/internal/transport/console"
	"github.com/sandevgo/skipper/internal/transport/telegram"
	"github.com/sandevgo/skipper/pkg/command"
	"github.com/sandevgo/skipper/pkg/log"
	"github.com/sandevgo/skipper/pkg/srv"
)

// gatewayService is what a transport must provide: the command gateway
// surface plus a service lifecycle.
type gatewayService interface {
	command.Gateway
	srv.Service
}

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)
	services := make([]srv.Service, 0)

	// init env
	appCfg := config.NewAppConfig(ctx)
	if err := initEnv(ctx, appCfg.RuntimePath); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}
	// Re-read after .env is loaded so file-provided values apply
	appCfg = config.NewAppConfig(ctx)

	// Storage
	db, usageRepo, err := initStorage(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize storage")
	}
	services = append(services, srv.NewCleanup(db.Close))

	// Command registry
	manager := command.NewManager(
		command.WithPrefixes(appCfg.Prefixes...),
		command.WithLogger(*logger),
		command.WithErrorHook(func(ictx *command.Context, err error) {
			_ = ictx.Reply(fmt.Sprintf("⚠️ %v", err))
		}),
	)

	// Transports
	gateways, err := initTransports(ctx, appCfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize transports")
	}
	if len(gateways) == 0 {
		logger.Fatal().Msg("no transport enabled, set ENABLE_TELEGRAM or ENABLE_CONSOLE")
	}

	// Built-in commands
	plugin, err := botcmds.NewPlugin(botcmds.Deps{
		Usage:   usageRepo,
		Manager: manager,
		Logger:  *logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to build command plugin")
	}
	if err := plugin.Load(gateways[0], manager); err != nil {
		logger.Fatal().Err(err).Msg("failed to load command plugin")
	}

	for _, gw := range gateways {
		manager.Bind(gw)
		services = append(services, gw)
	}

	return services
}

func initStorage(ctx context.Context, cfg *config.AppConfig) (*sql.DB, *sqlite.UsageRepo, error) {
	db, err := sqlite.NewDB(ctx, cfg.GetDatabasePath())
	if err != nil {
		return nil, nil, err
	}
	return db, sqlite.NewUsageRepo(db), nil
}

func initTransports(ctx context.Context, cfg *config.AppConfig) ([]gatewayService, error) {
	var gateways []gatewayService

	if cfg.EnableTelegram {
		tgCfg := config.NewTelegramConfig(ctx)
		bot, err := telegram.NewBot(ctx, tgCfg)
		if err != nil {
			return nil, err
		}
		gateways = append(gateways, bot)
	}

	if cfg.EnableConsole {
		rl, err := console.NewReadLine(cfg)
		if err != nil {
			return nil, err
		}
		gateways = append(gateways, rl)
	}

	return gateways, nil
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
