package command

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Kind enumerates the target types an argument can be coerced to. The set
// is closed on purpose: dispatch never inspects handler signatures at
// runtime, a parameter declares its kind up front.
type Kind int

const (
	String Kind = iota
	Bool
	Int
	Uint
	Float
	Duration
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Bool:
		return "bool"
	case Int:
		return "int"
	case Uint:
		return "uint"
	case Float:
		return "float"
	case Duration:
		return "duration"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseFunc converts one raw token to a typed value. Parameters may carry
// a custom ParseFunc to override the kind's built-in coercion.
type ParseFunc func(arg string) (any, error)

var boolWords = map[string]bool{
	"yes": true, "y": true, "true": true, "t": true, "1": true,
	"no": false, "n": false, "false": false, "f": false, "0": false,
}

// parserFor returns the built-in coercion for a kind. Int and Uint yield
// int64, Float yields float64.
func parserFor(k Kind) ParseFunc {
	switch k {
	case String:
		return func(arg string) (any, error) { return arg, nil }

	case Bool:
		return func(arg string) (any, error) {
			v, ok := boolWords[strings.ToLower(arg)]
			if !ok {
				return nil, &ConversionError{Arg: arg, Kind: Bool, Err: fmt.Errorf("%q is not a valid boolean", arg)}
			}
			return v, nil
		}

	case Int:
		return func(arg string) (any, error) {
			v, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return nil, &ConversionError{Arg: arg, Kind: Int, Err: err}
			}
			return v, nil
		}

	case Uint:
		return func(arg string) (any, error) {
			v, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return nil, &ConversionError{Arg: arg, Kind: Uint, Err: err}
			}
			if v < 0 {
				return nil, &ConversionError{Arg: arg, Kind: Uint, Err: fmt.Errorf("%d is not a valid unsigned number", v)}
			}
			return v, nil
		}

	case Float:
		return func(arg string) (any, error) {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return nil, &ConversionError{Arg: arg, Kind: Float, Err: err}
			}
			return v, nil
		}

	case Duration:
		return func(arg string) (any, error) {
			v, err := time.ParseDuration(arg)
			if err != nil {
				return nil, &ConversionError{Arg: arg, Kind: Duration, Err: err}
			}
			return v, nil
		}

	default:
		return func(arg string) (any, error) {
			return nil, &ConversionError{Arg: arg, Kind: k, Err: fmt.Errorf("unsupported kind")}
		}
	}
}
