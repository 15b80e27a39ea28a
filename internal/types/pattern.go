package types

import (
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

/////////////////////////////////////////////////////////////////////////////
// PATTERN KIND
/////////////////////////////////////////////////////////////////////////////

type PatternKind int

const (
	PatternChar PatternKind = iota
	PatternLiteral
)

func (k PatternKind) String() string {
	switch k {
	case PatternChar:
		return "char"
	case PatternLiteral:
		return "literal"
	default:
		return fmt.Sprintf("PatternKind(%d)", k)
	}
}

func (k PatternKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

func (k *PatternKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	switch s {
	case "char":
		*k = PatternChar
	case "literal":
		*k = PatternLiteral
	default:
		return fmt.Errorf("unknown PatternKind: %s", s)
	}

	return nil
}

/////////////////////////////////////////////////////////////////////////////
// PATTERN
/////////////////////////////////////////////////////////////////////////////

// Pattern is a delimiter: either a single character or a literal substring.
// The zero value is an empty literal, which is never a valid delimiter.
type Pattern struct {
	kind PatternKind
	r    rune
	s    string
}

// Char returns a single character delimiter. A surrogate or out of range
// rune gives a pattern that NewDelimiterSet rejects.
func Char(r rune) Pattern {
	return Pattern{kind: PatternChar, r: r, s: string(r)}
}

// Literal returns a substring delimiter. A one-rune literal matches exactly
// like the equivalent Char.
func Literal(s string) Pattern {
	return Pattern{kind: PatternLiteral, s: s}
}

// Literals converts plain strings to literal patterns.
func Literals(values ...string) []Pattern {
	patterns := make([]Pattern, len(values))
	for i, v := range values {
		patterns[i] = Literal(v)
	}
	return patterns
}

func (p Pattern) Kind() PatternKind {
	return p.kind
}

// Text is the normalized UTF-8 form the matcher compares against.
func (p Pattern) Text() string {
	return p.s
}

// Len is the byte length of the normalized form.
func (p Pattern) Len() int {
	return len(p.s)
}

func (p Pattern) IsEmpty() bool {
	return len(p.s) == 0
}

// IsValidRune is false only for a Char built from an invalid rune.
func (p Pattern) IsValidRune() bool {
	return p.kind != PatternChar || utf8.ValidRune(p.r)
}

func (p Pattern) String() string {
	switch p.kind {
	case PatternChar:
		return fmt.Sprintf("char(%q)", p.r)
	default:
		return fmt.Sprintf("literal(%q)", p.s)
	}
}

type patternJSON struct {
	Kind  PatternKind `json:"kind"`
	Value string      `json:"value"`
}

func (p Pattern) MarshalJSON() ([]byte, error) {
	return json.Marshal(patternJSON{Kind: p.kind, Value: p.s})
}

func (p *Pattern) UnmarshalJSON(data []byte) error {
	var raw patternJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch raw.Kind {
	case PatternChar:
		r, size := utf8.DecodeRuneInString(raw.Value)
		if size == 0 || size != len(raw.Value) {
			return fmt.Errorf("char pattern must hold exactly one rune, got %q", raw.Value)
		}
		*p = Char(r)
	default:
		*p = Literal(raw.Value)
	}

	return nil
}
