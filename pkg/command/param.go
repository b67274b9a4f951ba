package command

import (
	"fmt"
	"unicode/utf8"
)

// Container describes how multiple values for one parameter are collected.
type Container int

const (
	ContainerNone Container = iota
	ContainerList
	ContainerSet
)

// Param describes one declared parameter of a command: its name, target
// kind, container, default, and flag properties. Params are built with P
// and its chainable methods, then validated when the command is
// constructed.
type Param struct {
	name       string
	kind       Kind
	container  Container
	short      string
	greedy     bool
	flag       bool
	def        any
	hasDefault bool
	parser     ParseFunc
}

// P starts a parameter declaration.
func P(name string, kind Kind) Param {
	return Param{name: name, kind: kind}
}

// List collects every value for this parameter into a slice.
func (p Param) List() Param {
	p.container = ContainerList
	return p
}

// Set collects values like List but drops duplicates, keeping the first
// occurrence. Element values must be comparable.
func (p Param) Set() Param {
	p.container = ContainerSet
	return p
}

// Greedy makes a positional container consume tokens until one fails to
// coerce; the failing token falls through to the next parameter.
func (p Param) Greedy() Param {
	p.greedy = true
	return p
}

// Flag turns the parameter into a named flag (`--name value`). Scalar Bool
// flags are presence-based.
func (p Param) Flag() Param {
	p.flag = true
	return p
}

// Short registers a one-rune alias for a flag (`-x value`) and implies
// Flag.
func (p Param) Short(s string) Param {
	p.short = s
	p.flag = true
	return p
}

// Default supplies a fallback value used when the invocation omits the
// parameter. Without one the parameter is required.
func (p Param) Default(v any) Param {
	p.def = v
	p.hasDefault = true
	return p
}

// Parser overrides the kind's built-in coercion with a custom one.
func (p Param) Parser(fn ParseFunc) Param {
	p.parser = fn
	return p
}

// Name returns the parameter's name.
func (p Param) Name() string { return p.name }

// Kind returns the parameter's target kind.
func (p Param) Kind() Kind { return p.kind }

// IsFlag reports whether the parameter binds by name rather than position.
func (p Param) IsFlag() bool { return p.flag }

func (p Param) hasContainer() bool { return p.container != ContainerNone }

func (p Param) parse(arg string) (any, error) {
	if p.parser != nil {
		return p.parser(arg)
	}
	return parserFor(p.kind)(arg)
}

func (p Param) validate() error {
	if p.name == "" {
		return fmt.Errorf("command: parameter has no name")
	}
	if p.greedy && !p.hasContainer() {
		return fmt.Errorf("command: greedy parameter %q must have a container", p.name)
	}
	if p.greedy && p.flag {
		return fmt.Errorf("command: flag %q cannot be greedy", p.name)
	}
	if p.short != "" && utf8.RuneCountInString(p.short) != 1 {
		return fmt.Errorf("command: short alias %q of %q must be a single rune", p.short, p.name)
	}
	return nil
}
