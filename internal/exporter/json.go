package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/badele/multisplit/internal/types"
)

type TokenizerJSONOutput struct {
	Delimiters []types.Pattern  `json:"delimiters,omitempty"`
	Tokens     []types.Token    `json:"tokens"`
	Stats      types.TokenStats `json:"stats"`
}

// ExportJSON writes the tokens, their statistics and the delimiters used.
func ExportJSON(tok types.TokenizerWithStats, delimiters []types.Pattern, writer io.Writer) error {
	output := TokenizerJSONOutput{
		Delimiters: delimiters,
		Tokens:     tok.Tokenize(),
		Stats:      tok.GetStats(),
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(output); err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}

	return nil
}
