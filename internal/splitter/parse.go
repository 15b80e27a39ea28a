package splitter

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"

	"github.com/badele/multisplit/internal/types"
)

// ParsePattern reads a delimiter written with Go escapes (`\t`, `\n`,
// `\x2c`, ` `). A single rune gives a Char pattern, anything longer a
// Literal.
func ParsePattern(text string) (types.Pattern, error) {
	if text == "" {
		return types.Pattern{}, types.ErrEmptyDelimiter
	}

	buf := make([]byte, 0, len(text))
	s := text
	for len(s) > 0 {
		r, multibyte, tail, err := strconv.UnquoteChar(s, 0)
		if err != nil {
			return types.Pattern{}, fmt.Errorf("%w: bad escape in %q", types.ErrInvalidArgument, text)
		}
		if r < utf8.RuneSelf || !multibyte {
			buf = append(buf, byte(r))
		} else {
			buf = utf8.AppendRune(buf, r)
		}
		s = tail
	}

	value := string(buf)
	if r, size := utf8.DecodeRuneInString(value); size == len(value) && r != utf8.RuneError {
		return types.Char(r), nil
	}

	return types.Literal(value), nil
}

// ParsePatterns parses every text and reports all failures at once.
func ParsePatterns(texts []string) ([]types.Pattern, error) {
	var result *multierror.Error

	patterns := make([]types.Pattern, 0, len(texts))
	for i, text := range texts {
		p, err := ParsePattern(text)
		if err != nil {
			result = multierror.Append(result, fmt.Errorf("delimiter #%d: %w", i, err))
			continue
		}
		patterns = append(patterns, p)
	}

	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}

	return patterns, nil
}
