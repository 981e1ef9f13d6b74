package glyph

import (
	"fmt"
	"strings"
)

// Rows is the fixed row count of every glyph.
const Rows = 5

// Glyph is one symbol drawn as five rows of box-drawing runes.
// Rows carry no line terminators.
type Glyph [Rows]string

// Row returns row r (0..4).
func (g Glyph) Row(r int) string {
	return g[r]
}

// String renders the glyph as five "\n"-terminated rows.
func (g Glyph) String() string {
	var sb strings.Builder
	for _, row := range g {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Width reports the terminal column width of the glyph's first row.
func (g Glyph) Width() int {
	return StringWidth(g[0])
}

// Symbol indexes the basic catalogue: 0..9 are digits, Blank is the dash.
type Symbol uint8

// Blank is the "no value" placeholder symbol.
const Blank Symbol = 10

// BasicSize and DecoratedSize are the catalogue lengths.
const (
	BasicSize     = 11
	DecoratedSize = 40
)

// Catalogue selects one of the two glyph tables for At.
type Catalogue int

const (
	// BasicCatalogue holds digits 0..9 and the Blank dash.
	BasicCatalogue Catalogue = iota
	// DecoratedCatalogue holds the 40 digit variants.
	DecoratedCatalogue
)

// String implements fmt.Stringer.
func (c Catalogue) String() string {
	switch c {
	case BasicCatalogue:
		return "basic"
	case DecoratedCatalogue:
		return "decorated"
	default:
		return fmt.Sprintf("Catalogue(%d)", int(c))
	}
}

// Class is the decoration class of a decorated glyph.
type Class uint8

const (
	// Plain is the undecorated digit.
	Plain Class = iota
	// Dot carries a trailing decimal point on the bottom row.
	Dot
	// Sign carries the minus connector on the middle row.
	Sign
	// SignDot carries both decorations.
	SignDot
)

// Variant names one decorated glyph.
type Variant struct {
	Digit uint8 // 0..9
	Dot   bool  // trailing point mark
	Sign  bool  // leading minus connector
}

// Class returns the decoration class of v.
func (v Variant) Class() Class {
	var c Class
	if v.Dot {
		c |= Dot
	}
	if v.Sign {
		c |= Sign
	}

	return c
}

// Index returns the flat decorated-catalogue index class×10+digit.
func (v Variant) Index() int {
	return int(v.Class())*10 + int(v.Digit)
}

// VariantAt is the inverse of Variant.Index.
func VariantAt(i int) (Variant, error) {
	if i < 0 || i >= DecoratedSize {
		return Variant{}, fmt.Errorf("%w: decorated index %d", ErrIndexRange, i)
	}
	c := Class(i / 10)

	return Variant{
		Digit: uint8(i % 10),
		Dot:   c&Dot != 0,
		Sign:  c&Sign != 0,
	}, nil
}
