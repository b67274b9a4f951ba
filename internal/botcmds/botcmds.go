// Package botcmds holds the bot's built-in commands, bundled as a plugin
// so the whole set loads and unloads as a unit.
package botcmds

import (
	"github.com/rs/zerolog"
	"github.com/sandevgo/skipper/internal/storage/sqlite"
	"github.com/sandevgo/skipper/pkg/command"
	"github.com/sandevgo/skipper/pkg/log"
)

type Deps struct {
	Usage   *sqlite.UsageRepo
	Manager *command.Manager
	Logger  zerolog.Logger
}

func NewPlugin(deps Deps) (*command.Plugin, error) {
	p := command.NewPlugin("builtin", command.WithPluginLogger(deps.Logger))

	cmds := []*command.Command{
		newEcho(deps),
		newRoll(deps),
		newRemind(deps),
		newStats(deps),
		newHelp(deps),
	}
	for _, c := range cmds {
		if err := p.Add(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// withUsage records a usage row after the handler succeeds. Recording
// failures are logged, not surfaced: stats must never break a command.
func withUsage(deps Deps, h command.HandlerFunc) command.HandlerFunc {
	return func(ctx *command.Context) error {
		if err := h(ctx); err != nil {
			return err
		}
		if deps.Usage != nil {
			msg := ctx.Message()
			if err := deps.Usage.Record(ctx.Context(), ctx.Command().Name(), msg.ChatID, msg.Author); err != nil {
				log.FromCtx(ctx.Context()).Warn().Err(err).Msg("failed to record command usage")
			}
		}
		return nil
	}
}
