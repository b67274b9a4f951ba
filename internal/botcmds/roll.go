package botcmds

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/sandevgo/skipper/pkg/command"
)

func newRoll(deps Deps) *command.Command {
	return command.MustNew("roll",
		withUsage(deps, func(ctx *command.Context) error {
			sides := ctx.Int("sides")
			count := ctx.Int("count")
			if sides < 1 {
				return fmt.Errorf("a die needs at least one side")
			}
			if count < 1 || count > 20 {
				return fmt.Errorf("count must be between 1 and 20")
			}

			results := make([]string, count)
			var total int64
			for i := range results {
				n := rand.Int63n(sides) + 1
				total += n
				results[i] = fmt.Sprintf("%d", n)
			}

			if count == 1 {
				return ctx.Reply(fmt.Sprintf("🎲 %s", results[0]))
			}
			return ctx.Reply(fmt.Sprintf("🎲 %s = **%d**", strings.Join(results, " + "), total))
		}),
		command.WithDescription("Rolls dice, e.g. `roll 20 --count 3`."),
		command.WithParams(
			command.P("sides", command.Int).Default(int64(6)),
			command.P("count", command.Int).Short("c").Default(int64(1)),
		),
	)
}
