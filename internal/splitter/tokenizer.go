package splitter

import (
	"github.com/badele/multisplit/internal/types"
)

// Tokenizer splits one input and keeps the resulting tokens with their
// positions and statistics about the delimiters it skipped.
type Tokenizer struct {
	input      string
	pos        int
	done       bool
	delimiters *DelimiterSet
	Tokens     []types.Token    `json:"tokens"`
	Stats      types.TokenStats `json:"stats"`
}

func NewTokenizer(input string, delimiters ...types.Pattern) (*Tokenizer, error) {
	set, err := NewDelimiterSet(delimiters...)
	if err != nil {
		return nil, err
	}
	return NewTokenizerWithSet(input, set), nil
}

func NewTokenizerWithSet(input string, set *DelimiterSet) *Tokenizer {
	return &Tokenizer{
		input:      input,
		pos:        0,
		delimiters: set,
		Tokens:     make([]types.Token, 0),
		Stats:      types.NewTokenStats(len(input)),
	}
}

// Tokenize runs the split once; later calls return the same tokens.
func (t *Tokenizer) Tokenize() []types.Token {
	if t.done {
		return t.Tokens
	}

	for _, span := range t.delimiters.Spans(t.input) {
		t.countDelimiters(t.pos, span.Start)

		t.Tokens = append(t.Tokens, types.Token{
			Index: len(t.Tokens),
			Pos:   span.Start,
			End:   span.End,
			Value: t.input[span.Start:span.End],
		})
		t.pos = span.End
	}

	t.countDelimiters(t.pos, len(t.input))
	t.pos = len(t.input)
	t.done = true

	t.calculateStats()

	return t.Tokens
}

func (t *Tokenizer) GetStats() types.TokenStats {
	return t.Stats
}

func (t *Tokenizer) Input() string {
	return t.input
}

func (t *Tokenizer) Delimiters() *DelimiterSet {
	return t.delimiters
}

// countDelimiters walks the gap [from, to) between two tokens. The gap is
// made only of delimiter matches.
func (t *Tokenizer) countDelimiters(from, to int) {
	if from >= to {
		return
	}

	gap := t.input[:to]
	pos := from
	for pos < to {
		idx, n := t.delimiters.MatchIndexAt(gap, pos)
		if n == 0 {
			break
		}
		t.Stats.DelimiterMatches[t.delimiters.patterns[idx].Text()]++
		pos += n
	}

	t.Stats.DelimiterLength += to - from
	t.Stats.DelimiterRuns++
}

func (t *Tokenizer) calculateStats() {
	t.Stats.TotalTokens = len(t.Tokens)

	for i, token := range t.Tokens {
		length := len(token.Value)
		t.Stats.TotalTokenLength += length
		t.Stats.TokenCounts[token.Value]++

		if length > t.Stats.LongestToken {
			t.Stats.LongestToken = length
		}
		if i == 0 || length < t.Stats.ShortestToken {
			t.Stats.ShortestToken = length
		}
	}

	t.Stats.DistinctTokens = len(t.Stats.TokenCounts)
}
