package glyph

import "errors"

var (
	// ErrIndexRange indicates a catalogue index outside the catalogue bounds.
	ErrIndexRange = errors.New("glyph: index out of catalogue range")
	// ErrInvalidRune indicates a rune with no basic-catalogue symbol.
	ErrInvalidRune = errors.New("glyph: rune must be a decimal digit or '-'")
	// ErrUnknownCatalogue indicates an undefined Catalogue value.
	ErrUnknownCatalogue = errors.New("glyph: unknown catalogue")
)
