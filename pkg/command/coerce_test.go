package command

import (
	"errors"
	"testing"
	"time"
)

func TestParserFor(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		arg     string
		want    any
		wantErr bool
	}{
		{name: "string passthrough", kind: String, arg: "hello", want: "hello"},
		{name: "string empty", kind: String, arg: "", want: ""},

		{name: "bool yes", kind: Bool, arg: "yes", want: true},
		{name: "bool y", kind: Bool, arg: "y", want: true},
		{name: "bool true", kind: Bool, arg: "true", want: true},
		{name: "bool t", kind: Bool, arg: "t", want: true},
		{name: "bool one", kind: Bool, arg: "1", want: true},
		{name: "bool no", kind: Bool, arg: "no", want: false},
		{name: "bool n", kind: Bool, arg: "n", want: false},
		{name: "bool false", kind: Bool, arg: "false", want: false},
		{name: "bool f", kind: Bool, arg: "f", want: false},
		{name: "bool zero", kind: Bool, arg: "0", want: false},
		{name: "bool mixed case", kind: Bool, arg: "TRUE", want: true},
		{name: "bool garbage", kind: Bool, arg: "maybe", wantErr: true},

		{name: "int", kind: Int, arg: "42", want: int64(42)},
		{name: "int negative", kind: Int, arg: "-7", want: int64(-7)},
		{name: "int garbage", kind: Int, arg: "4.5", wantErr: true},

		{name: "uint", kind: Uint, arg: "42", want: int64(42)},
		{name: "uint rejects negative", kind: Uint, arg: "-7", wantErr: true},

		{name: "float", kind: Float, arg: "3.25", want: 3.25},
		{name: "float integer form", kind: Float, arg: "2", want: 2.0},
		{name: "float garbage", kind: Float, arg: "x", wantErr: true},

		{name: "duration", kind: Duration, arg: "1h30m", want: 90 * time.Minute},
		{name: "duration garbage", kind: Duration, arg: "soon", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parserFor(tt.kind)(tt.arg)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parse(%q) succeeded, want error", tt.arg)
				}
				var conv *ConversionError
				if !errors.As(err, &conv) {
					t.Fatalf("error = %v, want *ConversionError", err)
				}
				if conv.Arg != tt.arg {
					t.Errorf("ConversionError.Arg = %q, want %q", conv.Arg, tt.arg)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse(%q) returned error: %v", tt.arg, err)
			}
			if got != tt.want {
				t.Errorf("parse(%q) = %v (%T), want %v (%T)", tt.arg, got, got, tt.want, tt.want)
			}
		})
	}
}

func TestParamCustomParser(t *testing.T) {
	p := P("number", Float).Parser(func(arg string) (any, error) {
		if arg == "pi" {
			return 3.14159, nil
		}
		return parserFor(Float)(arg)
	})

	got, err := p.parse("pi")
	if err != nil {
		t.Fatalf("parse(pi) returned error: %v", err)
	}
	if got != 3.14159 {
		t.Errorf("parse(pi) = %v, want 3.14159", got)
	}

	got, err = p.parse("2.5")
	if err != nil {
		t.Fatalf("parse(2.5) returned error: %v", err)
	}
	if got != 2.5 {
		t.Errorf("parse(2.5) = %v, want 2.5", got)
	}
}

func TestKindString(t *testing.T) {
	kinds := map[Kind]string{
		String:   "string",
		Bool:     "bool",
		Int:      "int",
		Uint:     "uint",
		Float:    "float",
		Duration: "duration",
	}
	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(kind), got, want)
		}
	}
}
