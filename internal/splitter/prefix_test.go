package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/badele/multisplit/internal/types"
)

func sentenceDelimiters() []types.Pattern {
	return []types.Pattern{types.Char(' '), types.Char(','), types.Char('\t'), types.Literal("and")}
}

func TestTrimLeft(t *testing.T) {
	got, err := TrimLeft(" , \t and the quick brown fox", sentenceDelimiters()...)
	require.NoError(t, err)
	assert.Equal(t, "the quick brown fox", got)
}

func TestTrimRight(t *testing.T) {
	got, err := TrimRight("the fox ,and\t ", sentenceDelimiters()...)
	require.NoError(t, err)
	assert.Equal(t, "the fox", got)
}

func TestTrim(t *testing.T) {
	set := MustDelimiterSet(sentenceDelimiters()...)
	assert.Equal(t, "x", set.Trim("and x and"))
	assert.Equal(t, "", set.Trim(" ,, "))
}

func TestIndexAny(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"Space", "the quick", 3},
		{"Literal", "sandbox", 1},
		{"None", "quick", -1},
		{"Empty", "", -1},
		{"Start", ",x", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IndexAny(tt.input, sentenceDelimiters()...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestHasPrefixSuffixAny(t *testing.T) {
	ok, err := HasPrefixAny("android", sentenceDelimiters()...)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = HasPrefixAny("droid", sentenceDelimiters()...)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = HasSuffixAny("band", sentenceDelimiters()...)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = HasSuffixAny("ban", sentenceDelimiters()...)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestHelpersInvalidArgument(t *testing.T) {
	_, err := TrimLeft("x")
	assert.ErrorIs(t, err, types.ErrInvalidArgument)

	_, err = TrimRight("x", types.Literal(""))
	assert.ErrorIs(t, err, types.ErrInvalidArgument)

	idx, err := IndexAny("x")
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
	assert.Equal(t, -1, idx)

	_, err = HasPrefixAny("x")
	assert.ErrorIs(t, err, types.ErrInvalidArgument)

	_, err = HasSuffixAny("x")
	assert.ErrorIs(t, err, types.ErrInvalidArgument)
}
