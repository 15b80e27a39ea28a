package types

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is the only error the split algorithm returns. Every
// precondition failure wraps it.
var ErrInvalidArgument = errors.New("invalid argument")

var (
	ErrEmptyDelimiterSet = fmt.Errorf("%w: delimiter set is empty", ErrInvalidArgument)
	ErrEmptyDelimiter    = fmt.Errorf("%w: delimiter is empty", ErrInvalidArgument)
	ErrInvalidRune       = fmt.Errorf("%w: delimiter is not a valid rune", ErrInvalidArgument)
)
