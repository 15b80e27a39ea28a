// Package splitter splits strings on a set of delimiter patterns,
// collapsing every run of delimiters into a single separator.
//
// Delimiters are tried in the order they are declared and the first one
// that matches at the current position is consumed, so with delimiters
// {"a", "ab"} the input "ab" is split after "a", never on "ab".
//
// Tokens returned by Split are substrings of the input and share its memory.
package splitter

import "github.com/badele/multisplit/internal/types"

// Split returns the non-empty tokens of input separated by runs of
// delimiters, in input order.
//
// It fails with types.ErrInvalidArgument when no delimiter is given or one
// of them is empty. An empty input, or one made only of delimiters, yields
// an empty slice.
func Split(input string, delimiters ...types.Pattern) ([]string, error) {
	set, err := NewDelimiterSet(delimiters...)
	if err != nil {
		return nil, err
	}
	return set.Split(input), nil
}

// SplitStrings is Split for literal delimiters given as plain strings.
func SplitStrings(input string, delimiters ...string) ([]string, error) {
	return Split(input, types.Literals(delimiters...)...)
}

// SplitSpans returns the byte ranges of the tokens instead of the tokens.
func SplitSpans(input string, delimiters ...types.Pattern) ([]types.Span, error) {
	set, err := NewDelimiterSet(delimiters...)
	if err != nil {
		return nil, err
	}
	return set.Spans(input), nil
}

// Split splits input on the set.
func (d *DelimiterSet) Split(input string) []string {
	tokens := make([]string, 0, 4)
	if input == "" {
		return tokens
	}

	scan(len(input), func(pos int) int {
		return d.MatchAt(input, pos)
	}, func(span types.Span) bool {
		tokens = append(tokens, input[span.Start:span.End])
		return true
	})

	return tokens
}

// Spans returns the token ranges of input.
func (d *DelimiterSet) Spans(input string) []types.Span {
	return spans(input, d)
}

// SpansWith runs the split loop with a caller supplied matcher. The matcher
// must never report a zero-length match as a delimiter.
func SpansWith(input string, m types.Matcher) []types.Span {
	return spans(input, m)
}
