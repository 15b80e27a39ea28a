package splitter

import (
	"iter"

	"github.com/badele/multisplit/internal/types"
)

// All returns an iterator over the tokens of input and their index.
// Tokens are produced lazily; breaking out of the loop stops the scan.
//
//	seq, err := All("a, b,,c", types.Char(','), types.Char(' '))
//	for i, tok := range seq {
//		fmt.Println(i, tok)
//	}
func All(input string, delimiters ...types.Pattern) (iter.Seq2[int, string], error) {
	set, err := NewDelimiterSet(delimiters...)
	if err != nil {
		return nil, err
	}
	return set.All(input), nil
}

func (d *DelimiterSet) All(input string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		scan(len(input), func(pos int) int {
			return d.MatchAt(input, pos)
		}, func(span types.Span) bool {
			if !yield(i, input[span.Start:span.End]) {
				return false
			}
			i++
			return true
		})
	}
}
