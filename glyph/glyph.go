// SPDX-License-Identifier: MIT

package glyph

import (
	"fmt"

	"golang.org/x/text/width"
)

// Basic returns the basic-catalogue glyph for s.
// It panics if s > Blank.
// Complexity: O(1).
func Basic(s Symbol) Glyph {
	if int(s) >= BasicSize {
		panic(fmt.Sprintf("glyph: basic symbol %d out of range", s))
	}

	return basic[s]
}

// Decorated returns the decorated-catalogue glyph for v.
// It panics if v.Digit > 9.
// Complexity: O(1).
func Decorated(v Variant) Glyph {
	if v.Digit > 9 {
		panic(fmt.Sprintf("glyph: decorated digit %d out of range", v.Digit))
	}

	return decorated[v.Index()]
}

// At is the checked lookup by raw catalogue index.
// Returns ErrIndexRange for an index outside the catalogue and
// ErrUnknownCatalogue for an undefined catalogue.
func At(c Catalogue, index int) (Glyph, error) {
	switch c {
	case BasicCatalogue:
		if index < 0 || index >= BasicSize {
			return Glyph{}, fmt.Errorf("%w: %s index %d", ErrIndexRange, c, index)
		}
		return basic[index], nil
	case DecoratedCatalogue:
		if index < 0 || index >= DecoratedSize {
			return Glyph{}, fmt.Errorf("%w: %s index %d", ErrIndexRange, c, index)
		}
		return decorated[index], nil
	default:
		return Glyph{}, fmt.Errorf("%w: %s", ErrUnknownCatalogue, c)
	}
}

// SymbolOf maps '0'..'9' to digit symbols and '-' to Blank.
func SymbolOf(r rune) (Symbol, error) {
	switch {
	case r >= '0' && r <= '9':
		return Symbol(r - '0'), nil
	case r == '-':
		return Blank, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidRune, r)
	}
}

// StringWidth reports the monospace terminal width of s. East Asian wide
// and fullwidth runes count two columns, everything else one; the
// box-drawing runes used by the catalogues are ambiguous-width and count one.
func StringWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}

	return n
}
