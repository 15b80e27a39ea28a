package multisplit

import (
	"errors"
	"reflect"
	"testing"
)

func TestSplitScenarios(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		delimiters []Pattern
		expected   []string
	}{
		{
			"Sentence",
			" , \t the quick brown fox jumps over the lazy dog      ,",
			Literals(" ", ",", "\t"),
			[]string{"the", "quick", "brown", "fox", "jumps", "over", "the", "lazy", "dog"},
		},
		{"FirstDeclared", "aaba", Literals("a", "ab"), []string{"b"}},
		{"Empty", "", Literals(" "), []string{}},
		{"OnlyDelimiters", ",,,", Literals(","), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Split(tt.input, tt.delimiters...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !reflect.DeepEqual(got, tt.expected) {
				t.Fatalf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestSplitWithoutDelimiters(t *testing.T) {
	if _, err := Split("hello"); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestMixedPatterns(t *testing.T) {
	got, err := Split("k1=v1;k2 = v2", Char(';'), Literal(" = "), Char('='))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []string{"k1", "v1", "k2", "v2"}
	if !reflect.DeepEqual(got, expected) {
		t.Fatalf("expected %q, got %q", expected, got)
	}
}

func TestReusableDelimiterSet(t *testing.T) {
	set, err := NewDelimiterSet(Char('/'))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := set.Split("/usr//local/bin/"); !reflect.DeepEqual(got, []string{"usr", "local", "bin"}) {
		t.Fatalf("unexpected tokens %q", got)
	}

	if got := set.Trim("//x//"); got != "x" {
		t.Fatalf("expected x, got %q", got)
	}
}

func TestConvertThenSplit(t *testing.T) {
	data, err := ConvertToUTF8([]byte{'c', 'a', 'f', 0x82, ';', 't', 'h', 0x82}, "cp850")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := Split(string(data), Char(';'))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(got, []string{"café", "thé"}) {
		t.Fatalf("unexpected tokens %q", got)
	}
}
