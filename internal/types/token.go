package types

import "fmt"

/////////////////////////////////////////////////////////////////////////////
// SPAN
/////////////////////////////////////////////////////////////////////////////

// Span is the half-open byte range [Start, End) of a token in its input.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}

/////////////////////////////////////////////////////////////////////////////
// TOKEN
/////////////////////////////////////////////////////////////////////////////

type Token struct {
	Index int    `json:"index"`
	Pos   int    `json:"pos"`
	End   int    `json:"end"`
	Value string `json:"value"`
}

func (t Token) Span() Span {
	return Span{Start: t.Pos, End: t.End}
}

func (t Token) String() string {
	return fmt.Sprintf("TOKEN %d@%d: %s", t.Index, t.Pos, t.Value)
}

/////////////////////////////////////////////////////////////////////////////
// TOKEN STATS
/////////////////////////////////////////////////////////////////////////////

type TokenStats struct {
	TotalTokens      int            `json:"total_tokens"`
	DistinctTokens   int            `json:"distinct_tokens"`
	TotalTokenLength int            `json:"total_token_length"`
	DelimiterLength  int            `json:"delimiter_length"`
	DelimiterRuns    int            `json:"delimiter_runs"`
	DelimiterMatches map[string]int `json:"delimiter_matches"`
	TokenCounts      map[string]int `json:"token_counts"`
	InputSize        int64          `json:"input_size"`
	LongestToken     int            `json:"longest_token"`
	ShortestToken    int            `json:"shortest_token"`
}

func NewTokenStats(inputSize int) TokenStats {
	return TokenStats{
		DelimiterMatches: make(map[string]int),
		TokenCounts:      make(map[string]int),
		InputSize:        int64(inputSize),
	}
}

// TokenRatio is the share of input bytes kept in tokens, in percent.
func (s TokenStats) TokenRatio() float64 {
	if s.InputSize == 0 {
		return 0
	}
	return float64(s.TotalTokenLength) / float64(s.InputSize) * 100
}
