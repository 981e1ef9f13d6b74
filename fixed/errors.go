package fixed

import (
	"errors"

	"github.com/katalvlaran/sevseg/glyph"
)

var (
	// ErrLength indicates empty input or input longer than the slot count.
	ErrLength = errors.New("fixed: input length must be between 1 and the slot count")
	// ErrInvalidRune indicates a rune other than '0'..'9' or '-'.
	ErrInvalidRune = glyph.ErrInvalidRune
	// ErrArity indicates a slot count outside 1..MaxSlots.
	ErrArity = errors.New("fixed: slot count must be between 1 and 4")
)
