package command

import (
	"context"
	"sync/atomic"
	"testing"
)

func TestPluginLoadUnload(t *testing.T) {
	m := NewManager(WithPrefixes("!"))
	gw := &fakeGateway{}

	p := NewPlugin("games")
	if err := p.Add(MustNew("roll", noopHandler)); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := p.Add(MustNew("deal", noopHandler)); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	var seen atomic.Int64
	p.Listen(func(ctx context.Context, msg Message) {
		seen.Add(1)
	})

	if err := p.Load(gw, m); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	for _, name := range []string{"roll", "deal"} {
		if _, ok := m.Get(name); !ok {
			t.Errorf("Get(%q) found nothing after Load", name)
		}
	}

	gw.deliver(Message{Content: "anything"})
	if got := seen.Load(); got != 1 {
		t.Fatalf("listener saw %d messages, want 1", got)
	}

	p.Unload(m)
	for _, name := range []string{"roll", "deal"} {
		if _, ok := m.Get(name); ok {
			t.Errorf("Get(%q) still finds the command after Unload", name)
		}
	}

	// Listeners are muted, not removed.
	gw.deliver(Message{Content: "anything"})
	if got := seen.Load(); got != 1 {
		t.Fatalf("listener saw %d messages after Unload, want 1", got)
	}

	// Reload re-registers commands and unmutes listeners.
	if err := p.Load(gw, m); err != nil {
		t.Fatalf("reload returned error: %v", err)
	}
	if _, ok := m.Get("roll"); !ok {
		t.Error("Get(roll) found nothing after reload")
	}
	gw.deliver(Message{Content: "anything"})
	if got := seen.Load(); got != 2 {
		t.Fatalf("listener saw %d messages after reload, want 2", got)
	}
}

func TestPluginDuplicateCommand(t *testing.T) {
	p := NewPlugin("games")
	if err := p.Add(MustNew("roll", noopHandler)); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := p.Add(MustNew("roll", noopHandler)); err == nil {
		t.Fatal("second Add succeeded, want *AlreadyRegisteredError")
	}
}

func TestPluginLoadRollback(t *testing.T) {
	m := NewManager(WithPrefixes("!"))
	if err := m.Add(MustNew("deal", noopHandler)); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	p := NewPlugin("games")
	if err := p.Add(MustNew("roll", noopHandler)); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := p.Add(MustNew("deal", noopHandler)); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}

	if err := p.Load(nil, m); err == nil {
		t.Fatal("Load succeeded, want registration collision")
	}
	if _, ok := m.Get("roll"); ok {
		t.Error("partial load leaked: Get(roll) found a command")
	}
}
