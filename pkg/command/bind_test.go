package command

import (
	"errors"
	"reflect"
	"testing"

	"github.com/sandevgo/skipper/pkg/split"
)

func noopHandler(ctx *Context) error { return nil }

func mustCmd(t *testing.T, params ...Param) *Command {
	t.Helper()
	c, err := New("test", noopHandler, WithParams(params...))
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return c
}

func TestBindPositional(t *testing.T) {
	tests := []struct {
		name    string
		params  []Param
		args    []string
		want    map[string]any
		wantErr any // pointer to expected error type, nil for success
	}{
		{
			name:   "scalars in order",
			params: []Param{P("a", String), P("b", Int)},
			args:   []string{"x", "3"},
			want:   map[string]any{"a": "x", "b": int64(3)},
		},
		{
			name:   "scalar default used when absent",
			params: []Param{P("a", String), P("b", Int).Default(int64(9))},
			args:   []string{"x"},
			want:   map[string]any{"a": "x", "b": int64(9)},
		},
		{
			name:    "required scalar missing",
			params:  []Param{P("a", String)},
			args:    nil,
			wantErr: &MissingArgumentError{},
		},
		{
			name:    "leftover tokens",
			params:  []Param{P("a", String)},
			args:    []string{"x", "y"},
			wantErr: &TooManyArgumentsError{},
		},
		{
			name:   "final list swallows everything",
			params: []Param{P("nums", Int).List()},
			args:   []string{"1", "2", "3"},
			want:   map[string]any{"nums": []any{int64(1), int64(2), int64(3)}},
		},
		{
			name:   "final list empty without default",
			params: []Param{P("nums", Int).List()},
			args:   nil,
			want:   map[string]any{"nums": []any{}},
		},
		{
			name:   "final list default when empty",
			params: []Param{P("nums", Int).List().Default(int64(0))},
			args:   nil,
			want:   map[string]any{"nums": []any{int64(0)}},
		},
		{
			name:   "greedy hands failing token to next param",
			params: []Param{P("nums", Int).List().Greedy(), P("word", String)},
			args:   []string{"1", "2", "stop"},
			want:   map[string]any{"nums": []any{int64(1), int64(2)}, "word": "stop"},
		},
		{
			name:   "greedy then scalar default",
			params: []Param{P("nums", Int).List().Greedy(), P("word", String).Default("none")},
			args:   []string{"1", "2"},
			want:   map[string]any{"nums": []any{int64(1), int64(2)}, "word": "none"},
		},
		{
			name:    "greedy failing token rejected by next param too",
			params:  []Param{P("nums", Int).List().Greedy(), P("flag", Bool)},
			args:    []string{"1", "oops"},
			wantErr: &ConversionError{},
		},
		{
			name:   "non-greedy stops when next parser accepts",
			params: []Param{P("nums", Int).List(), P("flag", Bool)},
			args:   []string{"1", "2", "yes"},
			want:   map[string]any{"nums": []any{int64(1), int64(2)}, "flag": true},
		},
		{
			name: "non-greedy first token always belongs",
			// "yes" parses as Bool, but the first token is never given away.
			params: []Param{P("words", Bool).List(), P("flag", Bool)},
			args:   []string{"yes", "no"},
			want:   map[string]any{"words": []any{true}, "flag": false},
		},
		{
			name:   "set dedupes preserving first occurrence",
			params: []Param{P("nums", Int).Set()},
			args:   []string{"3", "1", "3", "2", "1"},
			want:   map[string]any{"nums": []any{int64(3), int64(1), int64(2)}},
		},
		{
			name:    "conversion failure surfaces",
			params:  []Param{P("n", Int)},
			args:    []string{"abc"},
			wantErr: &ConversionError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := mustCmd(t, tt.params...)
			b, err := cmd.bind(split.Result{Args: tt.args})

			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("bind succeeded, want %T", tt.wantErr)
				}
				target := reflect.New(reflect.TypeOf(tt.wantErr)).Interface()
				if !errors.As(err, target) {
					t.Fatalf("error = %v (%T), want %T", err, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("bind returned error: %v", err)
			}
			if !reflect.DeepEqual(b.values, tt.want) {
				t.Errorf("values = %v, want %v", b.values, tt.want)
			}
		})
	}
}

func TestBindFlags(t *testing.T) {
	tests := []struct {
		name    string
		params  []Param
		flags   map[string][]string
		want    map[string]any
		wantErr any
	}{
		{
			name:   "bool flag present",
			params: []Param{P("loud", Bool).Flag()},
			flags:  map[string][]string{"loud": {""}},
			want:   map[string]any{"loud": true},
		},
		{
			name:   "bool flag absent",
			params: []Param{P("loud", Bool).Flag()},
			flags:  nil,
			want:   map[string]any{"loud": false},
		},
		{
			name:   "bool flag via short alias",
			params: []Param{P("loud", Bool).Short("l")},
			flags:  map[string][]string{"l": {""}},
			want:   map[string]any{"loud": true},
		},
		{
			name:   "scalar flag coerced",
			params: []Param{P("count", Int).Flag()},
			flags:  map[string][]string{"count": {"5"}},
			want:   map[string]any{"count": int64(5)},
		},
		{
			name:   "scalar flag default when absent",
			params: []Param{P("count", Int).Flag().Default(int64(1))},
			flags:  nil,
			want:   map[string]any{"count": int64(1)},
		},
		{
			name:    "required scalar flag missing",
			params:  []Param{P("count", Int).Flag()},
			flags:   nil,
			wantErr: &MissingArgumentError{},
		},
		{
			name:    "scalar flag with two values",
			params:  []Param{P("count", Int).Flag()},
			flags:   map[string][]string{"count": {"1", "2"}},
			wantErr: &TooManyArgumentsError{},
		},
		{
			name:   "list flag collects values",
			params: []Param{P("tag", String).Flag().List()},
			flags:  map[string][]string{"tag": {"a", "b"}},
			want:   map[string]any{"tag": []any{"a", "b"}},
		},
		{
			name:   "short and long merge to one flag",
			params: []Param{P("tag", String).Short("t").List()},
			flags:  map[string][]string{"tag": {"a"}, "t": {"b"}},
			want:   map[string]any{"tag": []any{"a", "b"}},
		},
		{
			name:    "unknown flag rejected",
			params:  []Param{P("loud", Bool).Flag()},
			flags:   map[string][]string{"quiet": {""}},
			wantErr: &UnknownFlagError{},
		},
		{
			name:    "flag conversion failure",
			params:  []Param{P("count", Int).Flag()},
			flags:   map[string][]string{"count": {"abc"}},
			wantErr: &ConversionError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := mustCmd(t, tt.params...)
			b, err := cmd.bind(split.Result{Flags: tt.flags})

			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("bind succeeded, want %T", tt.wantErr)
				}
				target := reflect.New(reflect.TypeOf(tt.wantErr)).Interface()
				if !errors.As(err, target) {
					t.Fatalf("error = %v (%T), want %T", err, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("bind returned error: %v", err)
			}
			if !reflect.DeepEqual(b.values, tt.want) {
				t.Errorf("values = %v, want %v", b.values, tt.want)
			}
		})
	}
}

func TestNewRejectsBadParams(t *testing.T) {
	tests := []struct {
		name   string
		params []Param
	}{
		{name: "greedy without container", params: []Param{P("x", Int).Greedy()}},
		{name: "duplicate names", params: []Param{P("x", Int), P("x", String)}},
		{name: "multi-rune short alias", params: []Param{P("x", Int).Short("xx")}},
		{name: "unnamed param", params: []Param{P("", Int)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New("bad", noopHandler, WithParams(tt.params...)); err == nil {
				t.Fatal("New succeeded, want error")
			}
		})
	}
}
