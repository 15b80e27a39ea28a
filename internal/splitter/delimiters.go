package splitter

import (
	"fmt"
	"strings"

	"github.com/badele/multisplit/internal/types"
)

// DelimiterSet is a validated, ordered list of delimiter patterns. It is
// immutable once built and safe to share between goroutines.
type DelimiterSet struct {
	patterns []types.Pattern
	texts    []string
}

// NewDelimiterSet validates the patterns and normalizes them for matching.
// An empty set or an empty pattern fails with types.ErrInvalidArgument.
func NewDelimiterSet(patterns ...types.Pattern) (*DelimiterSet, error) {
	if len(patterns) == 0 {
		return nil, types.ErrEmptyDelimiterSet
	}

	texts := make([]string, len(patterns))
	for i, p := range patterns {
		if p.IsEmpty() {
			return nil, fmt.Errorf("delimiter #%d: %w", i, types.ErrEmptyDelimiter)
		}
		if !p.IsValidRune() {
			return nil, fmt.Errorf("delimiter #%d: %w", i, types.ErrInvalidRune)
		}
		texts[i] = p.Text()
	}

	return &DelimiterSet{
		patterns: append([]types.Pattern(nil), patterns...),
		texts:    texts,
	}, nil
}

// MustDelimiterSet is like NewDelimiterSet but panics on invalid patterns.
func MustDelimiterSet(patterns ...types.Pattern) *DelimiterSet {
	set, err := NewDelimiterSet(patterns...)
	if err != nil {
		panic(err)
	}
	return set
}

func (d *DelimiterSet) Len() int {
	return len(d.patterns)
}

func (d *DelimiterSet) Patterns() []types.Pattern {
	return append([]types.Pattern(nil), d.patterns...)
}

// MatchAt returns the length of the first declared delimiter that is a
// prefix of s[pos:], or 0. Declaration order wins over match length.
func (d *DelimiterSet) MatchAt(s string, pos int) int {
	_, n := d.MatchIndexAt(s, pos)
	return n
}

// MatchIndexAt is MatchAt that also reports which delimiter matched.
// The index is -1 when nothing matches.
func (d *DelimiterSet) MatchIndexAt(s string, pos int) (int, int) {
	if pos >= len(s) {
		return -1, 0
	}

	rest := s[pos:]
	for i, text := range d.texts {
		if strings.HasPrefix(rest, text) {
			return i, len(text)
		}
	}

	return -1, 0
}

// matchSuffix returns the length of the first declared delimiter that is a
// suffix of s, or 0.
func (d *DelimiterSet) matchSuffix(s string) int {
	for _, text := range d.texts {
		if strings.HasSuffix(s, text) {
			return len(text)
		}
	}
	return 0
}

func (d *DelimiterSet) String() string {
	parts := make([]string, len(d.patterns))
	for i, p := range d.patterns {
		parts[i] = p.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
