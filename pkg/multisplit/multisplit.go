// Package multisplit provides a public API for splitting strings on several
// delimiters at once.
//
// A delimiter is either a single character or a literal substring. Any run
// of delimiters, even mixing different ones, separates two tokens, and
// leading or trailing delimiters produce no empty token:
//
//	import "github.com/badele/multisplit/pkg/multisplit"
//
//	tokens, err := multisplit.Split(" , \tthe quick  fox,",
//		multisplit.Char(' '), multisplit.Char(','), multisplit.Char('\t'))
//	// tokens == []string{"the", "quick", "fox"}
//
// When two delimiters match at the same position, the one declared first
// wins: Split("aaba", Literal("a"), Literal("ab")) returns ["b"].
package multisplit

import (
	"iter"

	"github.com/badele/multisplit/internal/charset"
	"github.com/badele/multisplit/internal/splitter"
	"github.com/badele/multisplit/internal/types"
)

// Type aliases for public API
type (
	// Pattern is a delimiter: a single character or a literal substring
	Pattern = types.Pattern

	// PatternKind tells a Char pattern from a Literal one
	PatternKind = types.PatternKind

	// Token is a split result with its byte offsets in the input
	Token = types.Token

	// Span is the byte range of a token
	Span = types.Span

	// TokenStats contains statistics about a split
	TokenStats = types.TokenStats

	// Matcher finds delimiters for SpansWith
	Matcher = types.Matcher

	// DelimiterSet is a validated delimiter list that can be reused
	DelimiterSet = splitter.DelimiterSet

	// Tokenizer splits one input and collects statistics
	Tokenizer = splitter.Tokenizer
)

// Pattern kind constants
const (
	PatternChar    = types.PatternChar
	PatternLiteral = types.PatternLiteral
)

// ErrInvalidArgument is returned for an empty delimiter set or an empty
// delimiter. Test with errors.Is.
var ErrInvalidArgument = types.ErrInvalidArgument

func Char(r rune) Pattern {
	return types.Char(r)
}

func Literal(s string) Pattern {
	return types.Literal(s)
}

func Literals(values ...string) []Pattern {
	return types.Literals(values...)
}

// NewDelimiterSet validates delimiters once so they can be reused across
// many splits.
func NewDelimiterSet(delimiters ...Pattern) (*DelimiterSet, error) {
	return splitter.NewDelimiterSet(delimiters...)
}

// Split returns the non-empty tokens of input, in order. Tokens share the
// memory of input.
func Split(input string, delimiters ...Pattern) ([]string, error) {
	return splitter.Split(input, delimiters...)
}

// SplitStrings is Split with literal delimiters.
func SplitStrings(input string, delimiters ...string) ([]string, error) {
	return splitter.SplitStrings(input, delimiters...)
}

// SplitSpans returns token byte ranges instead of tokens.
func SplitSpans(input string, delimiters ...Pattern) ([]Span, error) {
	return splitter.SplitSpans(input, delimiters...)
}

// SpansWith splits input with a custom matcher.
func SpansWith(input string, m Matcher) []Span {
	return splitter.SpansWith(input, m)
}

// SplitUnits splits any code unit slice ([]byte, []rune, []uint16...).
func SplitUnits[U comparable](input []U, delimiters ...[]U) ([][]U, error) {
	return splitter.SplitUnits(input, delimiters...)
}

// SplitRunes splits a rune slice.
func SplitRunes(input []rune, delimiters ...Pattern) ([][]rune, error) {
	return splitter.SplitRunes(input, delimiters...)
}

// All returns a lazy iterator over (index, token).
func All(input string, delimiters ...Pattern) (iter.Seq2[int, string], error) {
	return splitter.All(input, delimiters...)
}

// NewTokenizer creates a tokenizer that keeps token positions and stats.
func NewTokenizer(input string, delimiters ...Pattern) (*Tokenizer, error) {
	return splitter.NewTokenizer(input, delimiters...)
}

func TrimLeft(s string, delimiters ...Pattern) (string, error) {
	return splitter.TrimLeft(s, delimiters...)
}

func TrimRight(s string, delimiters ...Pattern) (string, error) {
	return splitter.TrimRight(s, delimiters...)
}

// IndexAny returns the offset of the first delimiter in s, -1 if none.
func IndexAny(s string, delimiters ...Pattern) (int, error) {
	return splitter.IndexAny(s, delimiters...)
}

func HasPrefixAny(s string, delimiters ...Pattern) (bool, error) {
	return splitter.HasPrefixAny(s, delimiters...)
}

func HasSuffixAny(s string, delimiters ...Pattern) (bool, error) {
	return splitter.HasSuffixAny(s, delimiters...)
}

// ParsePattern reads a delimiter written with Go escapes such as `\t`.
func ParsePattern(text string) (Pattern, error) {
	return splitter.ParsePattern(text)
}

// ParsePatterns parses several delimiters and reports every bad one.
func ParsePatterns(texts []string) ([]Pattern, error) {
	return splitter.ParsePatterns(texts)
}

// ConvertToUTF8 converts byte data from a source encoding to UTF-8.
// Supported encodings are listed by Encodings. The UTF-8 BOM is stripped.
func ConvertToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	return charset.ConvertToUTF8(data, sourceEncoding)
}

// ConvertToEncoding converts UTF-8 data to the target encoding.
func ConvertToEncoding(data []byte, targetEncoding string) ([]byte, error) {
	return charset.ConvertToEncoding(data, targetEncoding)
}

func Encodings() []string {
	return charset.Names()
}
