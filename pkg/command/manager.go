package command

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// PrepareFunc splits raw message content into the matched prefix, the
// command name, and the remaining invocation. ok reports whether the
// message looks like a command at all; when false the message is ignored.
//
// The returned prefix is informational: a custom PrepareFunc may match on
// something that is not literally a leading string.
type PrepareFunc func(content string) (prefix, name, rest string, ok bool)

// ErrorHook is called when tokenizing, binding, or the handler itself
// fails during dispatch. The context carries the message so the hook can
// reply; its argument values are only populated when binding succeeded.
type ErrorHook func(ctx *Context, err error)

// Manager owns the command registry and dispatches incoming messages to
// handlers. Registration normally happens at startup; the registry is
// guarded so late Add/Remove calls are safe alongside dispatch.
type Manager struct {
	mu       sync.RWMutex
	commands map[string]*Command

	prepare PrepareFunc
	onError ErrorHook
	gw      Gateway
	log     zerolog.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithPrefixes installs the standard prefix matcher: the first matching
// prefix wins, the next word is the command name, the rest is the
// invocation.
func WithPrefixes(prefixes ...string) ManagerOption {
	return func(m *Manager) { m.prepare = PrefixPrepare(prefixes...) }
}

// WithPrepare installs a custom content matcher.
func WithPrepare(fn PrepareFunc) ManagerOption {
	return func(m *Manager) { m.prepare = fn }
}

// WithErrorHook installs a callback for dispatch failures. Without one,
// errors are logged and returned from Dispatch.
func WithErrorHook(fn ErrorHook) ManagerOption {
	return func(m *Manager) { m.onError = fn }
}

// WithLogger sets the manager's logger. Defaults to a no-op logger.
func WithLogger(log zerolog.Logger) ManagerOption {
	return func(m *Manager) { m.log = log }
}

// NewManager builds an empty registry. Without WithPrefixes or
// WithPrepare the manager ignores every message.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{
		commands: make(map[string]*Command),
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// PrefixPrepare builds the standard prefix PrepareFunc used by
// WithPrefixes.
func PrefixPrepare(prefixes ...string) PrepareFunc {
	return func(content string) (string, string, string, bool) {
		content = strings.TrimSpace(content)
		for _, prefix := range prefixes {
			after, found := strings.CutPrefix(content, prefix)
			if !found {
				continue
			}
			after = strings.TrimLeft(after, " \t")
			name, rest, _ := strings.Cut(after, " ")
			if name == "" {
				return "", "", "", false
			}
			return prefix, name, strings.TrimSpace(rest), true
		}
		return "", "", "", false
	}
}

// SetPrepare replaces the content matcher at runtime.
func (m *Manager) SetPrepare(fn PrepareFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.prepare = fn
}

// Add registers a command under its name and every alias. Collisions with
// already registered names roll the whole registration back.
func (m *Manager) Add(cmd *Command) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := append([]string{cmd.name}, cmd.aliases...)
	for _, name := range names {
		if _, exists := m.commands[name]; exists {
			return &AlreadyRegisteredError{Name: name}
		}
	}
	for _, name := range names {
		m.commands[name] = cmd
	}

	m.log.Debug().Strs("names", names).Msg("registered command")
	return nil
}

// Remove deregisters a command and all of its aliases.
func (m *Manager) Remove(cmd *Command) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.commands, cmd.name)
	for _, alias := range cmd.aliases {
		if m.commands[alias] == cmd {
			delete(m.commands, alias)
		}
	}
	m.log.Debug().Str("name", cmd.name).Msg("deregistered command")
}

// Get looks a command up by name or alias.
func (m *Manager) Get(name string) (*Command, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	cmd, ok := m.commands[name]
	return cmd, ok
}

// Commands returns every registered command once, sorted by name.
func (m *Manager) Commands() []*Command {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[*Command]struct{}, len(m.commands))
	out := make([]*Command, 0, len(m.commands))
	for _, cmd := range m.commands {
		if _, dup := seen[cmd]; dup {
			continue
		}
		seen[cmd] = struct{}{}
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

// Bind subscribes the manager's dispatch to a gateway's message event and
// routes handler replies back through it. A manager may be bound to
// several gateways; replies always go to the gateway the message came
// from.
func (m *Manager) Bind(gw Gateway) {
	m.mu.Lock()
	m.gw = gw
	m.mu.Unlock()

	gw.OnMessage(func(ctx context.Context, msg Message) {
		_ = m.dispatch(ctx, msg, gw)
	})
}

// Dispatch parses one message and invokes the matching handler. Messages
// without the prefix or with an unknown command name are ignored and
// return nil. Tokenizer, binding, and handler errors go to the error hook
// when one is set, and are returned either way.
func (m *Manager) Dispatch(ctx context.Context, msg Message) error {
	m.mu.RLock()
	gw := m.gw
	m.mu.RUnlock()
	return m.dispatch(ctx, msg, gw)
}

func (m *Manager) dispatch(ctx context.Context, msg Message, gw Gateway) error {
	m.mu.RLock()
	prepare := m.prepare
	m.mu.RUnlock()

	if prepare == nil {
		return nil
	}
	prefix, name, rest, ok := prepare(msg.Content)
	if !ok {
		return nil
	}

	cmd, found := m.Get(name)
	if !found {
		return nil
	}

	m.log.Debug().
		Str("command", cmd.name).
		Str("invoked_with", name).
		Str("invocation", rest).
		Msg("invoking command")

	ictx := &Context{
		ctx:         ctx,
		cmd:         cmd,
		prefix:      prefix,
		invokedWith: name,
		msg:         msg,
		gw:          gw,
	}

	err := func() error {
		res, err := cmd.splitter(rest)
		if err != nil {
			return err
		}
		b, err := cmd.bind(res)
		if err != nil {
			return err
		}
		ictx.args = b.positional
		ictx.values = b.values
		return cmd.handler(ictx)
	}()

	if err != nil {
		m.log.Debug().Err(err).Str("command", cmd.name).Msg("dispatch failed")
		if m.onError != nil {
			m.onError(ictx, err)
		}
		return err
	}
	return nil
}
