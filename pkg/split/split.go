// Package split tokenizes a command invocation string into positional
// arguments and named flag values.
//
// The grammar is shell-like: whitespace separates arguments, backslash
// escapes the next rune, quoted spans keep their content verbatim, and
// dashes introduce flags. `--name value` and `-n value` both yield a flag;
// repeated flags accumulate their values in order of appearance.
package split

import "fmt"

// Result holds the tokenized invocation. Flags map a flag name to every
// value supplied for it, preserving order.
type Result struct {
	Args  []string
	Flags map[string][]string
}

// Func is a pluggable tokenizer. Commands may swap the default out, e.g.
// to hand the raw invocation to the handler as a single argument.
type Func func(content string) (Result, error)

// ErrUnterminatedQuote is returned when a quoted span is never closed.
type ErrUnterminatedQuote struct {
	Quote rune
}

func (e *ErrUnterminatedQuote) Error() string {
	return fmt.Sprintf("unterminated quote: missing closing %q", e.Quote)
}

// quotePairs maps opening quote runes to their closing counterpart.
// Covers the usual ASCII quotes plus common typographic and CJK pairs, so
// users typing on phones with smart quotes are not punished for it.
var quotePairs = map[rune]rune{
	'"':  '"',
	'\'': '\'',
	'‘':  '’',
	'‚':  '‛',
	'“':  '”',
	'„':  '‟',
	'«':  '»',
	'‹':  '›',
	'《':  '》',
	'〈':  '〉',
	'「':  '」',
	'『':  '』',
	'﹁':  '﹂',
	'﹃':  '﹄',
	'＂':  '＂',
	'｢':  '｣',
	'〝':  '〞',
	'⹂':  '⹂',
}

// Split tokenizes content into positional args and flag values.
func Split(content string) (Result, error) {
	runes := []rune(content)

	var (
		name     []rune
		value    []rune
		haveName bool
		args     []string
		flags    map[string][]string
	)

	finalize := func() {
		if haveName {
			if flags == nil {
				flags = make(map[string][]string)
			}
			n := string(name)
			flags[n] = append(flags[n], string(value))
		} else {
			args = append(args, string(value))
		}
		name = name[:0]
		value = value[:0]
		haveName = false
	}

	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch {
		case r == '\\':
			// Escape: take the next rune verbatim, if any.
			if i+1 < len(runes) {
				i++
				value = append(value, runes[i])
			}

		case quotePairs[r] != 0:
			closing := quotePairs[r]
			i++
			for {
				if i >= len(runes) {
					return Result{}, &ErrUnterminatedQuote{Quote: r}
				}
				if runes[i] == closing {
					break
				}
				if runes[i] == '\\' && i+1 < len(runes) {
					i++
				}
				value = append(value, runes[i])
				i++
			}
			finalize()

		case r == '-':
			if haveName {
				// A previous flag is still open; close it first, with
				// whatever value it accumulated (possibly none).
				finalize()
			}

			dashes := 1
			if i+1 < len(runes) && runes[i+1] == '-' {
				dashes = 2
				i += 2
				for i < len(runes) && runes[i] != ' ' {
					name = append(name, runes[i])
					i++
				}
			} else if i+1 < len(runes) {
				i++
				if runes[i] != ' ' {
					name = append(name, runes[i])
				}
			} else {
				i++
			}

			if len(name) == 0 {
				// Dashes without a name are plain positionals.
				if dashes == 2 {
					args = append(args, "--")
				} else {
					args = append(args, "-")
				}
			} else {
				haveName = true
			}

		case r == ' ':
			if len(value) > 0 {
				finalize()
			}

		default:
			value = append(value, r)
		}
	}

	if haveName || len(value) > 0 {
		finalize()
	}

	return Result{Args: args, Flags: flags}, nil
}
