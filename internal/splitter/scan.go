package splitter

import "github.com/badele/multisplit/internal/types"

// scan is the single tokenizing loop every split variant is built on.
//
// It walks n code units left to right. match(pos) returns the length of
// the delimiter at pos, 0 when none matches. Delimiter runs are skipped as
// a whole, then a token extends one unit at a time until the next match or
// the end of input. yield receives each token span and may stop the scan by
// returning false.
//
// Termination relies on every match being at least one unit long, which
// NewDelimiterSet and validateUnits guarantee.
func scan(n int, match func(pos int) int, yield func(types.Span) bool) {
	pos := 0

	for {
		for pos < n {
			length := match(pos)
			if length == 0 {
				break
			}
			pos += length
		}

		if pos >= n {
			return
		}

		start := pos
		pos++
		for pos < n && match(pos) == 0 {
			pos++
		}

		if !yield(types.Span{Start: start, End: pos}) {
			return
		}
	}
}

// spans collects the token spans of input for any matcher.
func spans(input string, m types.Matcher) []types.Span {
	result := make([]types.Span, 0, 4)
	if input == "" {
		return result
	}

	scan(len(input), func(pos int) int {
		return m.MatchAt(input, pos)
	}, func(span types.Span) bool {
		result = append(result, span)
		return true
	})

	return result
}
