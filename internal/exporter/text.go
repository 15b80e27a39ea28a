package exporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/badele/multisplit/internal/types"
)

// ExportLines writes one token per line.
func ExportLines(tokens []types.Token, writer io.Writer) error {
	for _, token := range tokens {
		if _, err := fmt.Fprintln(writer, token.Value); err != nil {
			return fmt.Errorf("error writing token %d: %w", token.Index, err)
		}
	}
	return nil
}

// ExportJoined writes the tokens separated by sep, followed by a newline.
// Splitting the output again on sep gives the same tokens back.
func ExportJoined(tokens []types.Token, sep string, writer io.Writer) error {
	values := make([]string, len(tokens))
	for i, token := range tokens {
		values[i] = token.Value
	}

	if _, err := fmt.Fprintln(writer, strings.Join(values, sep)); err != nil {
		return fmt.Errorf("error writing joined tokens: %w", err)
	}
	return nil
}
