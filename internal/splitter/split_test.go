package splitter

import (
	"errors"
	"reflect"
	"testing"

	"github.com/badele/multisplit/internal/types"
)

func TestSplitSentence(t *testing.T) {
	input := " , \t the quick brown fox jumps over the lazy dog      ,"
	tokens, err := SplitStrings(input, " ", ",", "\t")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"the", "quick", "brown", "fox", "jumps", "over", "the", "lazy", "dog"}
	if !reflect.DeepEqual(tokens, expected) {
		t.Errorf("Expected %q, got %q", expected, tokens)
	}
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		delimiters []types.Pattern
		expected   []string
	}{
		{"FirstDeclaredWins", "aaba", types.Literals("a", "ab"), []string{"b"}},
		{"EmptyInput", "", []types.Pattern{types.Char(' ')}, []string{}},
		{"OnlyDelimiters", ",,,", []types.Pattern{types.Char(',')}, []string{}},
		{"NoDelimiterInInput", "hello", []types.Pattern{types.Char(',')}, []string{"hello"}},
		{"SingleChar", "x", []types.Pattern{types.Char(',')}, []string{"x"}},
		{"LeadingAndTrailing", ",a,", []types.Pattern{types.Char(',')}, []string{"a"}},
		{"MixedRun", "a,, \tb", []types.Pattern{types.Char(','), types.Char(' '), types.Char('\t')}, []string{"a", "b"}},
		{"MixedCharAndLiteral", "one<->two, three", []types.Pattern{types.Literal("<->"), types.Char(','), types.Char(' ')}, []string{"one", "two", "three"}},
		{"LiteralLongerThanInput", "ab", types.Literals("abc"), []string{"ab"}},
		{"PartialLiteralKept", "a-b--c", types.Literals("--"), []string{"a-b", "c"}},
		{"Unicode", "héllo wörld", []types.Pattern{types.Char(' ')}, []string{"héllo", "wörld"}},
		{"UnicodeDelimiter", "a→b→→c", []types.Pattern{types.Char('→')}, []string{"a", "b", "c"}},
		{"UnicodeNeighbours", "café→thé", []types.Pattern{types.Char('é')}, []string{"caf", "→th"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Split(tt.input, tt.delimiters...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tokens == nil {
				t.Fatalf("Expected non-nil slice")
			}

			if !reflect.DeepEqual(tokens, tt.expected) {
				t.Errorf("Expected %q, got %q", tt.expected, tokens)
			}
		})
	}
}

func TestSplitDelimiterOrder(t *testing.T) {
	tests := []struct {
		name       string
		delimiters []string
		expected   []string
	}{
		{"ShortFirst", []string{"a", "ab"}, []string{"x", "by"}},
		{"LongFirst", []string{"ab", "a"}, []string{"x", "y"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := SplitStrings("xaby", tt.delimiters...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !reflect.DeepEqual(tokens, tt.expected) {
				t.Errorf("Expected %q, got %q", tt.expected, tokens)
			}
		})
	}
}

func TestSplitInvalidArgument(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		delimiters []types.Pattern
		expected   error
	}{
		{"NoDelimiters", "hello", nil, types.ErrEmptyDelimiterSet},
		{"NoDelimitersEmptyInput", "", nil, types.ErrEmptyDelimiterSet},
		{"EmptyLiteralAmongOthers", "hello", types.Literals(",", ""), types.ErrEmptyDelimiter},
		{"ZeroPattern", "hello", []types.Pattern{{}}, types.ErrEmptyDelimiter},
		{"SurrogateChar", "a\uFFFDb", []types.Pattern{types.Char(0xD800)}, types.ErrInvalidRune},
		{"OutOfRangeChar", "ab", []types.Pattern{types.Char(','), types.Char(0x110000)}, types.ErrInvalidRune},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Split(tt.input, tt.delimiters...)

			if !errors.Is(err, tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, err)
			}

			if !errors.Is(err, types.ErrInvalidArgument) {
				t.Errorf("Expected error to wrap ErrInvalidArgument, got %v", err)
			}

			if tokens != nil {
				t.Errorf("Expected nil tokens on error, got %q", tokens)
			}
		})
	}
}

func TestSplitSpans(t *testing.T) {
	input := "alpha beta"
	spans, err := SplitSpans(input, types.Char(' '))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []types.Span{{Start: 0, End: 5}, {Start: 6, End: 10}}
	if !reflect.DeepEqual(spans, expected) {
		t.Fatalf("Expected %v, got %v", expected, spans)
	}
}

func TestMatchAt(t *testing.T) {
	set := MustDelimiterSet(types.Literal("a"), types.Literal("ab"), types.Literal("xyz"))

	tests := []struct {
		name     string
		input    string
		pos      int
		index    int
		expected int
	}{
		{"FirstDeclared", "abc", 0, 0, 1},
		{"NoMatch", "bcd", 0, -1, 0},
		{"PatternLongerThanRest", "xy", 0, -1, 0},
		{"Middle", "--xyz", 2, 2, 3},
		{"EndOfInput", "abc", 3, -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := set.MatchAt(tt.input, tt.pos); got != tt.expected {
				t.Errorf("MatchAt: expected %d, got %d", tt.expected, got)
			}

			idx, n := set.MatchIndexAt(tt.input, tt.pos)
			if idx != tt.index || n != tt.expected {
				t.Errorf("MatchIndexAt: expected (%d, %d), got (%d, %d)", tt.index, tt.expected, idx, n)
			}
		})
	}
}

func TestAllStopsEarly(t *testing.T) {
	seq, err := All("a b c d", types.Char(' '))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []string
	for i, tok := range seq {
		if i == 2 {
			break
		}
		got = append(got, tok)
	}

	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Expected [a b], got %q", got)
	}
}

func TestAllMatchesSplit(t *testing.T) {
	input := ";;x;yy;;zzz;"
	seq, err := All(input, types.Char(';'))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got []string
	for i, tok := range seq {
		if i != len(got) {
			t.Fatalf("Expected index %d, got %d", len(got), i)
		}
		got = append(got, tok)
	}

	expected, _ := Split(input, types.Char(';'))
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestAllInvalidArgument(t *testing.T) {
	if _, err := All("abc"); !errors.Is(err, types.ErrInvalidArgument) {
		t.Fatalf("Expected ErrInvalidArgument, got %v", err)
	}
}

type foldMatcher struct{}

// MatchAt matches 'x' and 'X'.
func (foldMatcher) MatchAt(s string, pos int) int {
	if pos < len(s) && (s[pos] == 'x' || s[pos] == 'X') {
		return 1
	}
	return 0
}

func TestSpansWithCustomMatcher(t *testing.T) {
	spans := SpansWith("axbXXc", foldMatcher{})

	expected := []types.Span{{Start: 0, End: 1}, {Start: 2, End: 3}, {Start: 5, End: 6}}
	if !reflect.DeepEqual(spans, expected) {
		t.Errorf("Expected %v, got %v", expected, spans)
	}
}
