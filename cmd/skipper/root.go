package main

import (
	"context"
	"os"

	"github.com/sandevgo/skipper/internal/config"
	"github.com/sandevgo/skipper/pkg/log"
	"github.com/spf13/cobra"
)

var (
	debug bool
)

var rootCmd = &cobra.Command{
	Use:   "skipper",
	Short: "Skipper - a chat command bot",
	Long:  `Skipper dispatches prefixed chat messages to registered commands over Telegram or the console.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Global flags available to all subcommands
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", config.IsDebug(), "enable debug logging")
}

func setupLogger(ctx context.Context) (context.Context, func()) {
	isDebug := debug || config.IsDebug()
	return log.NewContextWithLogger(ctx, isDebug)
}
