package command

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoGateway is returned by Context.Reply when the manager was never
// bound to a gateway, e.g. during direct Dispatch calls in tests.
var ErrNoGateway = errors.New("command: manager is not bound to a gateway")

// ConversionError reports a single argument that could not be coerced to
// its parameter's kind.
type ConversionError struct {
	Arg  string
	Kind Kind
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %q to %s: %v", e.Arg, e.Kind, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }

// MissingArgumentError reports a required parameter that received no value.
type MissingArgumentError struct {
	Name string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("required parameter %q was not supplied a value", e.Name)
}

// TooManyArgumentsError reports surplus values: either leftover positional
// tokens after binding, or multiple values for a scalar flag.
type TooManyArgumentsError struct {
	Name string // non-empty when a scalar flag received multiple values
	Args []string
}

func (e *TooManyArgumentsError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("got %d values for scalar flag %q: %q", len(e.Args), e.Name, e.Args)
	}
	return fmt.Sprintf("got too many positional arguments: %q remain unused", e.Args)
}

// UnknownFlagError reports flags in the invocation that no parameter
// declares.
type UnknownFlagError struct {
	Names []string
}

func (e *UnknownFlagError) Error() string {
	return fmt.Sprintf("got unexpected flag(s): '%s'", strings.Join(e.Names, "', '"))
}

// AlreadyRegisteredError reports a name or alias collision in a manager or
// plugin.
type AlreadyRegisteredError struct {
	Name string
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("a command with name %q has already been registered", e.Name)
}
