package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badele/multisplit/internal/types"
)

func TestParsePattern(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected types.Pattern
	}{
		{"Plain", ",", types.Char(',')},
		{"Tab", `\t`, types.Char('\t')},
		{"Hex", `\x2c`, types.Char(',')},
		{"UnicodeEscape", `\u2192`, types.Char('→')},
		{"Unicode", "→", types.Char('→')},
		{"Literal", "<->", types.Literal("<->")},
		{"EscapedLiteral", `\r\n`, types.Literal("\r\n")},
		{"Quotes", `"'`, types.Literal(`"'`)},
		{"Backslash", `\\`, types.Char('\\')},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePattern(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParsePatternInvalid(t *testing.T) {
	for _, text := range []string{"", `\`, `\q`} {
		_, err := ParsePattern(text)
		assert.ErrorIs(t, err, types.ErrInvalidArgument, "text %q", text)
	}
}

func TestParsePatternsCollectsAllErrors(t *testing.T) {
	_, err := ParsePatterns([]string{",", "", `\q`, " "})
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "delimiter #1")
	assert.Contains(t, err.Error(), "delimiter #2")
	assert.NotContains(t, err.Error(), "delimiter #3")
}

func TestParsePatterns(t *testing.T) {
	patterns, err := ParsePatterns([]string{" ", `\t`, "and"})
	require.NoError(t, err)

	tokens, err := Split("a\tb and c", patterns...)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, tokens)
}
