package command

import (
	"sort"

	"github.com/sandevgo/skipper/pkg/split"
)

// bound holds the coerced values of one invocation, both in positional
// order and keyed by parameter name.
type bound struct {
	positional []any
	values     map[string]any
}

func (c *Command) bind(res split.Result) (*bound, error) {
	b := &bound{values: make(map[string]any, len(c.pos)+len(c.flags))}
	if err := c.bindPositional(res.Args, b); err != nil {
		return nil, err
	}
	if err := c.bindFlags(res.Flags, b); err != nil {
		return nil, err
	}
	return b, nil
}

// bindPositional walks the declared positional parameters over the token
// stream. Container parameters consume multiple tokens; a greedy container
// stops at the first token its own parser rejects, a non-greedy one stops
// as soon as the next parameter's parser accepts a token. The value parsed
// during lookahead is carried over to the next parameter so no token is
// coerced twice.
func (c *Command) bindPositional(toks []string, b *bound) error {
	store := func(p Param, v any) {
		b.positional = append(b.positional, v)
		b.values[p.name] = v
	}

	var carry []any
	i := 0
	n := len(c.pos)

loop:
	for idx := 0; idx < n; idx++ {
		p := c.pos[idx]

		switch {
		case p.hasContainer() && idx+1 >= n:
			// Final container parameter: everything left belongs to it.
			for ; i < len(toks); i++ {
				v, err := p.parse(toks[i])
				if err != nil {
					return err
				}
				carry = append(carry, v)
			}
			if len(carry) == 0 && p.hasDefault {
				v, err := defaultFor(p)
				if err != nil {
					return err
				}
				store(p, v)
			} else {
				store(p, containerize(p, carry))
			}
			carry = nil
			break loop

		case p.greedy:
			next := c.pos[idx+1]
			handedOff := false
			for i < len(toks) {
				v, err := p.parse(toks[i])
				if err != nil {
					// The failing token opens the next parameter.
					nv, nerr := next.parse(toks[i])
					if nerr != nil {
						return nerr
					}
					store(p, containerize(p, carry))
					carry = append(carry[:0], nv)
					i++
					handedOff = true
					break
				}
				carry = append(carry, v)
				i++
			}
			if !handedOff {
				store(p, containerize(p, carry))
				carry = nil
			}

		case p.hasContainer():
			next := c.pos[idx+1]
			if i >= len(toks) {
				if len(carry) > 0 {
					store(p, containerize(p, carry))
					carry = nil
				} else {
					v, err := defaultFor(p)
					if err != nil {
						return err
					}
					store(p, v)
				}
				continue
			}

			// The first token always belongs to this parameter.
			v, err := p.parse(toks[i])
			if err != nil {
				return err
			}
			carry = append(carry, v)
			i++

			handedOff := false
			for i < len(toks) {
				if nv, nerr := next.parse(toks[i]); nerr == nil {
					store(p, containerize(p, carry))
					carry = append(carry[:0], nv)
					i++
					handedOff = true
					break
				}
				v, err := p.parse(toks[i])
				if err != nil {
					return err
				}
				carry = append(carry, v)
				i++
			}
			if !handedOff {
				store(p, containerize(p, carry))
				carry = nil
			}

		case len(carry) > 0:
			// A lookahead already parsed this parameter's value.
			store(p, carry[0])
			carry = nil

		default:
			if i < len(toks) {
				v, err := p.parse(toks[i])
				if err != nil {
					return err
				}
				store(p, v)
				i++
				continue
			}
			v, err := defaultFor(p)
			if err != nil {
				return err
			}
			store(p, v)
		}
	}

	if i < len(toks) {
		rest := make([]string, len(toks)-i)
		copy(rest, toks[i:])
		return &TooManyArgumentsError{Args: rest}
	}
	return nil
}

// bindFlags resolves short aliases, rejects unknown flags, and coerces
// flag values. Scalar Bool flags are presence-based: supplying the flag at
// all means true.
func (c *Command) bindFlags(flags map[string][]string, b *bound) error {
	alias := make(map[string]string, len(c.flags)*2)
	for _, p := range c.flags {
		alias[p.name] = p.name
		if p.short != "" {
			alias[p.short] = p.name
		}
	}

	var unknown []string
	supplied := make(map[string][]string, len(flags))
	for name, vals := range flags {
		canon, ok := alias[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		supplied[canon] = append(supplied[canon], vals...)
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return &UnknownFlagError{Names: unknown}
	}

	for _, p := range c.flags {
		if p.kind == Bool && !p.hasContainer() && p.parser == nil {
			_, present := supplied[p.name]
			b.values[p.name] = present
			continue
		}

		vals, ok := supplied[p.name]
		if !ok {
			v, err := defaultFor(p)
			if err != nil {
				return err
			}
			b.values[p.name] = v
			continue
		}

		carry := make([]any, 0, len(vals))
		for _, raw := range vals {
			v, err := p.parse(raw)
			if err != nil {
				return err
			}
			carry = append(carry, v)
		}

		switch {
		case p.hasContainer():
			b.values[p.name] = containerize(p, carry)
		case len(carry) > 1:
			return &TooManyArgumentsError{Name: p.name, Args: vals}
		default:
			b.values[p.name] = carry[0]
		}
	}
	return nil
}

// defaultFor resolves a parameter's fallback value, wrapping it in a
// one-element container for container parameters.
func defaultFor(p Param) (any, error) {
	if !p.hasDefault {
		return nil, &MissingArgumentError{Name: p.name}
	}
	if p.hasContainer() {
		return containerize(p, []any{p.def}), nil
	}
	return p.def, nil
}

// containerize finalizes accumulated values. Sets dedupe by value,
// preserving first occurrence.
func containerize(p Param, vals []any) []any {
	out := make([]any, 0, len(vals))
	if p.container == ContainerSet {
		seen := make(map[any]struct{}, len(vals))
		for _, v := range vals {
			if _, dup := seen[v]; dup {
				continue
			}
			seen[v] = struct{}{}
			out = append(out, v)
		}
		return out
	}
	return append(out, vals...)
}
