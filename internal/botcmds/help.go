package botcmds

import (
	"fmt"
	"strings"

	"github.com/sandevgo/skipper/pkg/command"
)

func newHelp(deps Deps) *command.Command {
	return command.MustNew("help",
		withUsage(deps, func(ctx *command.Context) error {
			if name := ctx.String("command"); name != "" {
				cmd, ok := deps.Manager.Get(name)
				if !ok {
					return ctx.Reply(fmt.Sprintf("Unknown command: `%s`", name))
				}
				return ctx.Reply(commandHelp(cmd))
			}

			var b strings.Builder
			b.WriteString("**Available commands**\n")
			for _, cmd := range deps.Manager.Commands() {
				fmt.Fprintf(&b, "- `%s`: %s\n", cmd.Name(), cmd.Description())
			}
			b.WriteString("\nUse `help <command>` for details.")
			return ctx.Reply(b.String())
		}),
		command.WithDescription("Lists commands or shows details for one."),
		command.WithAliases("h"),
		command.WithParams(
			command.P("command", command.String).Default(""),
		),
	)
}

func commandHelp(cmd *command.Command) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n%s\n", cmd.Name(), cmd.Description())

	if aliases := cmd.Aliases(); len(aliases) > 0 {
		fmt.Fprintf(&b, "\nAliases: `%s`\n", strings.Join(aliases, "`, `"))
	}

	params := cmd.Params()
	if len(params) == 0 {
		return b.String()
	}

	b.WriteString("\nParameters:\n")
	for _, p := range params {
		if p.IsFlag() {
			fmt.Fprintf(&b, "- `--%s` (%s flag)\n", p.Name(), p.Kind())
		} else {
			fmt.Fprintf(&b, "- `%s` (%s)\n", p.Name(), p.Kind())
		}
	}
	return b.String()
}
