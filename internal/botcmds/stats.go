package botcmds

import (
	"fmt"
	"strings"

	"github.com/sandevgo/skipper/pkg/command"
)

func newStats(deps Deps) *command.Command {
	return command.MustNew("stats",
		withUsage(deps, func(ctx *command.Context) error {
			limit := ctx.Int("limit")
			if limit < 1 || limit > 50 {
				return fmt.Errorf("limit must be between 1 and 50")
			}

			counts, err := deps.Usage.TopCommands(ctx.Context(), int(limit))
			if err != nil {
				return fmt.Errorf("failed to load usage stats: %w", err)
			}
			if len(counts) == 0 {
				return ctx.Reply("No commands invoked yet.")
			}

			var b strings.Builder
			b.WriteString("**Most used commands**\n")
			for i, c := range counts {
				fmt.Fprintf(&b, "%d. `%s`: %d\n", i+1, c.Command, c.Count)
			}
			return ctx.Reply(b.String())
		}),
		command.WithDescription("Shows the most invoked commands."),
		command.WithParams(
			command.P("limit", command.Int).Short("l").Default(int64(5)),
		),
	)
}
