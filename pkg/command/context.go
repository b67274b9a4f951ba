package command

import (
	"context"
	"time"
)

// Context is the per-invocation object handed to a handler. It exposes
// the originating message, how the command was invoked, and the coerced
// argument values by parameter name. A Context is built fresh for each
// dispatch and must not be retained after the handler returns.
type Context struct {
	ctx         context.Context
	cmd         *Command
	prefix      string
	invokedWith string
	msg         Message
	gw          Gateway
	args        []any
	values      map[string]any
}

// Context returns the dispatch's context.Context.
func (c *Context) Context() context.Context { return c.ctx }

// Command returns the invoked command.
func (c *Context) Command() *Command { return c.cmd }

// Prefix returns the prefix the invocation matched.
func (c *Context) Prefix() string { return c.prefix }

// InvokedWith returns the name or alias the command was invoked by.
func (c *Context) InvokedWith() string { return c.invokedWith }

// Message returns the originating message.
func (c *Context) Message() Message { return c.msg }

// Author returns the message author.
func (c *Context) Author() string { return c.msg.Author }

// Content returns the full raw message content, prefix included.
func (c *Context) Content() string { return c.msg.Content }

// Args returns the coerced positional values in declaration order.
func (c *Context) Args() []any {
	out := make([]any, len(c.args))
	copy(out, c.args)
	return out
}

// Value returns the coerced value of a parameter by name.
func (c *Context) Value(name string) (any, bool) {
	v, ok := c.values[name]
	return v, ok
}

// String returns a String parameter's value, or "" when absent.
func (c *Context) String(name string) string {
	v, _ := c.values[name].(string)
	return v
}

// Bool returns a Bool parameter's value, or false when absent.
func (c *Context) Bool(name string) bool {
	v, _ := c.values[name].(bool)
	return v
}

// Int returns an Int or Uint parameter's value, or 0 when absent.
func (c *Context) Int(name string) int64 {
	v, _ := c.values[name].(int64)
	return v
}

// Float returns a Float parameter's value, or 0 when absent.
func (c *Context) Float(name string) float64 {
	v, _ := c.values[name].(float64)
	return v
}

// Duration returns a Duration parameter's value, or 0 when absent.
func (c *Context) Duration(name string) time.Duration {
	v, _ := c.values[name].(time.Duration)
	return v
}

// Strings returns a String container parameter's values.
func (c *Context) Strings(name string) []string {
	return containerValues[string](c, name)
}

// Ints returns an Int or Uint container parameter's values.
func (c *Context) Ints(name string) []int64 {
	return containerValues[int64](c, name)
}

// Floats returns a Float container parameter's values.
func (c *Context) Floats(name string) []float64 {
	return containerValues[float64](c, name)
}

func containerValues[T any](c *Context, name string) []T {
	vals, _ := c.values[name].([]any)
	out := make([]T, 0, len(vals))
	for _, v := range vals {
		if t, ok := v.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// Reply sends text back to the chat the invocation came from.
func (c *Context) Reply(text string) error {
	if c.gw == nil {
		return ErrNoGateway
	}
	return c.gw.Send(c.ctx, c.msg.ChatID, text)
}
