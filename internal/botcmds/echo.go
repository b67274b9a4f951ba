package botcmds

import (
	"strings"

	"github.com/sandevgo/skipper/pkg/command"
)

func newEcho(deps Deps) *command.Command {
	return command.MustNew("echo",
		withUsage(deps, func(ctx *command.Context) error {
			text := strings.Join(ctx.Strings("words"), " ")
			if ctx.Bool("shout") {
				text = strings.ToUpper(text)
			}
			return ctx.Reply(text)
		}),
		command.WithDescription("Repeats your message back. `--shout` makes it loud."),
		command.WithAliases("say"),
		command.WithParams(
			command.P("words", command.String).List(),
			command.P("shout", command.Bool).Short("s"),
		),
	)
}
