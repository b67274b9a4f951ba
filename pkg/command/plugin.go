package command

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Listener is a raw message listener a plugin can attach to the gateway
// alongside its commands.
type Listener func(ctx context.Context, msg Message)

// Plugin bundles commands and gateway listeners under one name so a bot
// can wire a feature area as a unit. Load registers everything on a
// manager and gateway, Unload takes it back out. Listeners are muted on
// unload rather than removed, since gateways expose no unsubscribe.
type Plugin struct {
	name string
	log  zerolog.Logger

	mu       sync.Mutex
	commands []*Command
	loaded   bool

	listeners []*pluginListener
}

type pluginListener struct {
	fn     Listener
	active atomic.Bool
	bound  bool
}

// PluginOption configures a Plugin.
type PluginOption func(*Plugin)

// WithPluginLogger sets the plugin's logger. Defaults to a no-op logger.
func WithPluginLogger(log zerolog.Logger) PluginOption {
	return func(p *Plugin) { p.log = log }
}

// NewPlugin builds an empty plugin.
func NewPlugin(name string, opts ...PluginOption) *Plugin {
	p := &Plugin{name: name, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the plugin's name.
func (p *Plugin) Name() string { return p.name }

// Add attaches a command to the plugin. Duplicate names are rejected.
func (p *Plugin) Add(cmd *Command) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, existing := range p.commands {
		if existing.name == cmd.name {
			return &AlreadyRegisteredError{Name: cmd.name}
		}
	}
	p.commands = append(p.commands, cmd)
	return nil
}

// Listen attaches a raw message listener to the plugin.
func (p *Plugin) Listen(fn Listener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.listeners = append(p.listeners, &pluginListener{fn: fn})
}

// Commands returns the plugin's commands in attachment order.
func (p *Plugin) Commands() []*Command {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]*Command, len(p.commands))
	copy(out, p.commands)
	return out
}

// Load registers the plugin's commands on the manager and its listeners
// on the gateway. A registration collision rolls back the commands
// already added.
func (p *Plugin) Load(gw Gateway, m *Manager) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.log.Info().Str("plugin", p.name).Msg("loading plugin")

	var added []*Command
	for _, cmd := range p.commands {
		if err := m.Add(cmd); err != nil {
			for _, c := range added {
				m.Remove(c)
			}
			return err
		}
		added = append(added, cmd)
	}

	for _, l := range p.listeners {
		l.active.Store(true)
		if l.bound || gw == nil {
			continue
		}
		l.bound = true
		listener := l
		gw.OnMessage(func(ctx context.Context, msg Message) {
			if listener.active.Load() {
				listener.fn(ctx, msg)
			}
		})
	}

	p.loaded = true
	p.log.Info().Str("plugin", p.name).Int("commands", len(added)).Msg("loaded plugin")
	return nil
}

// Unload removes the plugin's commands from the manager and mutes its
// listeners.
func (p *Plugin) Unload(m *Manager) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.loaded {
		return
	}
	for _, cmd := range p.commands {
		m.Remove(cmd)
	}
	for _, l := range p.listeners {
		l.active.Store(false)
	}
	p.loaded = false
	p.log.Info().Str("plugin", p.name).Msg("unloaded plugin")
}
