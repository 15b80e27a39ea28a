package exporter

import (
	"fmt"
	"io"
	"sort"

	"github.com/badele/multisplit/internal/types"
)

const topN = 10

func DisplayStats(stats types.TokenStats, writer io.Writer) error {
	fmt.Fprintln(writer, "=== Token Statistics ===")
	fmt.Fprintln(writer)
	fmt.Fprintf(writer, "  Input size: %d bytes\n", stats.InputSize)
	fmt.Fprintf(writer, "  Total tokens: %d (%d distinct)\n", stats.TotalTokens, stats.DistinctTokens)
	fmt.Fprintf(writer, "  Token bytes: %d (%.1f%%)\n", stats.TotalTokenLength, stats.TokenRatio())
	fmt.Fprintf(writer, "  Delimiter bytes: %d in %d runs\n", stats.DelimiterLength, stats.DelimiterRuns)

	if stats.TotalTokens > 0 {
		fmt.Fprintf(writer, "  Token length: min %d, max %d, avg %.2f\n",
			stats.ShortestToken, stats.LongestToken,
			float64(stats.TotalTokenLength)/float64(stats.TotalTokens))
	}

	if len(stats.DelimiterMatches) > 0 {
		fmt.Fprintln(writer, "\n--- Delimiter Matches")
		displayTopN(writer, stats.DelimiterMatches, topN)
	}

	if len(stats.TokenCounts) > 0 {
		fmt.Fprintln(writer, "\n--- Most Frequent Tokens")
		displayTopN(writer, stats.TokenCounts, topN)
	}

	return nil
}

func displayTopN(writer io.Writer, data map[string]int, n int) {
	type entry struct {
		Key   string
		Count int
	}

	var entries []entry
	for k, v := range data {
		entries = append(entries, entry{k, v})
	}

	// ties broken by key so output is stable
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})

	for i, e := range entries {
		if i >= n {
			break
		}

		fmt.Fprintf(writer, "  %s: %5d\n", pad(truncate(e.Key, 30), 30), e.Count)
	}
}
