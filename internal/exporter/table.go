package exporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/badele/multisplit/internal/types"
)

const tableValueWidth = 40

func ExportTokensToTable(tokens []types.Token, writer io.Writer) error {
	fmt.Fprintln(writer, "┌─────────┬────────┬────────┬────────┬──────────────────────────────────────────┐")
	fmt.Fprintf(writer, "│ %-7s │ %-6s │ %-6s │ %-6s │ %-40s │\n", "Token", "Pos", "End", "Len", "Value")
	fmt.Fprintln(writer, "├─────────┼────────┼────────┼────────┼──────────────────────────────────────────┤")

	for _, token := range tokens {
		_, err := fmt.Fprintf(writer, "│ %-7d │ %-6d │ %-6d │ %-6d │ %s │\n",
			token.Index+1, token.Pos, token.End, token.End-token.Pos, pad(truncate(token.Value, tableValueWidth), tableValueWidth))
		if err != nil {
			return fmt.Errorf("error writing table row %d: %w", token.Index, err)
		}
	}

	fmt.Fprintln(writer, "└─────────┴────────┴────────┴────────┴──────────────────────────────────────────┘")

	return nil
}

// truncate quotes control characters and cuts s to maxLen display
// columns without splitting a grapheme cluster.
func truncate(s string, maxLen int) string {
	s = fmt.Sprintf("%q", s)

	// Remove quote added by %q
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	if uniseg.StringWidth(s) <= maxLen {
		return s
	}

	var b strings.Builder
	width, limit := 0, maxLen-3
	state := -1
	for rest := s; rest != ""; {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if width+w > limit {
			break
		}
		b.WriteString(cluster)
		width += w
	}

	return b.String() + "..."
}

// pad right-fills s with spaces up to width display columns.
func pad(s string, width int) string {
	if w := uniseg.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
