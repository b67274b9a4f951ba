package botcmds

import (
	"fmt"
	"strings"
	"time"

	"github.com/sandevgo/skipper/pkg/command"
	"github.com/sandevgo/skipper/pkg/log"
)

const maxReminderDelay = 24 * time.Hour

func newRemind(deps Deps) *command.Command {
	return command.MustNew("remind",
		withUsage(deps, func(ctx *command.Context) error {
			delay := ctx.Duration("in")
			text := strings.Join(ctx.Strings("text"), " ")

			if delay <= 0 || delay > maxReminderDelay {
				return fmt.Errorf("delay must be positive and at most %s", maxReminderDelay)
			}
			if text == "" {
				text = "time is up!"
			}

			// Fire-and-forget: the timer rides on the dispatch context, which
			// lives until the bot shuts down.
			baseCtx := ctx.Context()
			reply := fmt.Sprintf("⏰ @%s: %s", ctx.Author(), text)
			go func() {
				select {
				case <-baseCtx.Done():
				case <-time.After(delay):
					if err := ctx.Reply(reply); err != nil {
						log.FromCtx(baseCtx).Error().Err(err).Msg("failed to deliver reminder")
					}
				}
			}()

			return ctx.Reply(fmt.Sprintf("Will remind you in %s.", delay))
		}),
		command.WithDescription("Sets a reminder, e.g. `remind 10m stretch your legs`."),
		command.WithParams(
			command.P("in", command.Duration),
			command.P("text", command.String).List(),
		),
	)
}
