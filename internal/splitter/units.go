package splitter

import (
	"fmt"
	"slices"

	"github.com/badele/multisplit/internal/types"
)

// SplitUnits splits a sequence of code units of any comparable type, for
// example []byte, []rune or []uint16. Tokens are subslices of input: they
// must not outlive changes made to it.
func SplitUnits[U comparable](input []U, delimiters ...[]U) ([][]U, error) {
	if err := validateUnits(delimiters); err != nil {
		return nil, err
	}

	tokens := make([][]U, 0, 4)
	if len(input) == 0 {
		return tokens, nil
	}

	scan(len(input), func(pos int) int {
		return matchUnits(input[pos:], delimiters)
	}, func(span types.Span) bool {
		tokens = append(tokens, input[span.Start:span.End:span.End])
		return true
	})

	return tokens, nil
}

// SplitRunes splits on rune boundaries. Token and delimiter lengths are
// counted in runes rather than bytes.
func SplitRunes(input []rune, delimiters ...types.Pattern) ([][]rune, error) {
	units := make([][]rune, len(delimiters))
	for i, p := range delimiters {
		units[i] = []rune(p.Text())
	}
	return SplitUnits(input, units...)
}

func validateUnits[U comparable](delimiters [][]U) error {
	if len(delimiters) == 0 {
		return types.ErrEmptyDelimiterSet
	}
	for i, d := range delimiters {
		if len(d) == 0 {
			return fmt.Errorf("delimiter #%d: %w", i, types.ErrEmptyDelimiter)
		}
	}
	return nil
}

func matchUnits[U comparable](rest []U, delimiters [][]U) int {
	for _, d := range delimiters {
		if len(d) <= len(rest) && slices.Equal(rest[:len(d)], d) {
			return len(d)
		}
	}
	return 0
}
