package splitter

import "github.com/badele/multisplit/internal/types"

///////////////////////////////////////////////////////////////////////////////
// Set methods
///////////////////////////////////////////////////////////////////////////////

// HasPrefix reports whether s starts with any delimiter of the set.
func (d *DelimiterSet) HasPrefix(s string) bool {
	return d.MatchAt(s, 0) > 0
}

// HasSuffix reports whether s ends with any delimiter of the set.
func (d *DelimiterSet) HasSuffix(s string) bool {
	return d.matchSuffix(s) > 0
}

// TrimLeft removes delimiters from the start of s until none matches.
func (d *DelimiterSet) TrimLeft(s string) string {
	pos := 0
	for {
		n := d.MatchAt(s, pos)
		if n == 0 {
			return s[pos:]
		}
		pos += n
	}
}

// TrimRight removes delimiters from the end of s until none matches.
func (d *DelimiterSet) TrimRight(s string) string {
	for {
		n := d.matchSuffix(s)
		if n == 0 {
			return s
		}
		s = s[:len(s)-n]
	}
}

// Trim is TrimLeft followed by TrimRight.
func (d *DelimiterSet) Trim(s string) string {
	return d.TrimRight(d.TrimLeft(s))
}

// IndexAny returns the byte offset of the first delimiter occurrence in s,
// or -1 when no delimiter occurs.
func (d *DelimiterSet) IndexAny(s string) int {
	for pos := 0; pos < len(s); pos++ {
		if d.MatchAt(s, pos) > 0 {
			return pos
		}
	}
	return -1
}

///////////////////////////////////////////////////////////////////////////////
// Package helpers
///////////////////////////////////////////////////////////////////////////////

func HasPrefixAny(s string, delimiters ...types.Pattern) (bool, error) {
	set, err := NewDelimiterSet(delimiters...)
	if err != nil {
		return false, err
	}
	return set.HasPrefix(s), nil
}

func HasSuffixAny(s string, delimiters ...types.Pattern) (bool, error) {
	set, err := NewDelimiterSet(delimiters...)
	if err != nil {
		return false, err
	}
	return set.HasSuffix(s), nil
}

func TrimLeft(s string, delimiters ...types.Pattern) (string, error) {
	set, err := NewDelimiterSet(delimiters...)
	if err != nil {
		return "", err
	}
	return set.TrimLeft(s), nil
}

func TrimRight(s string, delimiters ...types.Pattern) (string, error) {
	set, err := NewDelimiterSet(delimiters...)
	if err != nil {
		return "", err
	}
	return set.TrimRight(s), nil
}

func IndexAny(s string, delimiters ...types.Pattern) (int, error) {
	set, err := NewDelimiterSet(delimiters...)
	if err != nil {
		return -1, err
	}
	return set.IndexAny(s), nil
}
