package types

// Tokenizer produces the tokens of the input it was built with.
type Tokenizer interface {
	Tokenize() []Token
}

// Tokenize with statistics
type TokenizerWithStats interface {
	Tokenizer
	GetStats() TokenStats
}

// Matcher reports the length of the delimiter found at pos in s, 0 if none.
type Matcher interface {
	MatchAt(s string, pos int) int
}
