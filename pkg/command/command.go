package command

import (
	"fmt"

	"github.com/sandevgo/skipper/pkg/split"
)

const defaultDescription = "No description provided."

// HandlerFunc is the callback invoked for a dispatched command. Coerced
// argument values are read from the context by parameter name.
type HandlerFunc func(ctx *Context) error

// Command is an immutable handler descriptor: a name, optional aliases
// and description, the declared parameters, and the callback. Build one
// with New and register it on a Manager or Plugin.
type Command struct {
	name        string
	description string
	aliases     []string
	pos         []Param
	flags       []Param
	splitter    split.Func
	handler     HandlerFunc
}

// Option configures a Command during construction.
type Option func(*Command)

// WithDescription sets the command's help text.
func WithDescription(desc string) Option {
	return func(c *Command) { c.description = desc }
}

// WithAliases registers alternative names the command can be invoked by.
func WithAliases(aliases ...string) Option {
	return func(c *Command) { c.aliases = append(c.aliases, aliases...) }
}

// WithParams declares the command's parameters. Flag params may appear
// anywhere in the list; positional params keep their declared order.
func WithParams(params ...Param) Option {
	return func(c *Command) {
		for _, p := range params {
			if p.flag {
				c.flags = append(c.flags, p)
			} else {
				c.pos = append(c.pos, p)
			}
		}
	}
}

// WithSplitter overrides the default tokenizer for this command, e.g. to
// pass the raw invocation through as a single argument.
func WithSplitter(fn split.Func) Option {
	return func(c *Command) { c.splitter = fn }
}

// New builds a command and validates its parameter declarations.
func New(name string, handler HandlerFunc, opts ...Option) (*Command, error) {
	if name == "" {
		return nil, fmt.Errorf("command: name must not be empty")
	}
	if handler == nil {
		return nil, fmt.Errorf("command: %q has no handler", name)
	}

	c := &Command{
		name:        name,
		description: defaultDescription,
		splitter:    split.Split,
		handler:     handler,
	}
	for _, opt := range opts {
		opt(c)
	}

	seen := make(map[string]struct{}, len(c.pos)+len(c.flags))
	for _, p := range append(append([]Param(nil), c.pos...), c.flags...) {
		if err := p.validate(); err != nil {
			return nil, err
		}
		if _, dup := seen[p.name]; dup {
			return nil, fmt.Errorf("command: duplicate parameter %q in %q", p.name, name)
		}
		seen[p.name] = struct{}{}
	}

	return c, nil
}

// MustNew is New but panics on invalid declarations. Intended for
// registration at startup, where a bad declaration is a programming error.
func MustNew(name string, handler HandlerFunc, opts ...Option) *Command {
	c, err := New(name, handler, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the command's primary name.
func (c *Command) Name() string { return c.name }

// Description returns the command's help text.
func (c *Command) Description() string { return c.description }

// Aliases returns the command's alternative names.
func (c *Command) Aliases() []string {
	out := make([]string, len(c.aliases))
	copy(out, c.aliases)
	return out
}

// Params returns the declared parameters, positionals first.
func (c *Command) Params() []Param {
	out := make([]Param, 0, len(c.pos)+len(c.flags))
	out = append(out, c.pos...)
	out = append(out, c.flags...)
	return out
}
