// Package glyph holds the pseudo seven-segment glyph catalogues used by
// the sevseg renderers.
//
// What:
//
//   - Glyph is a fixed block of five text rows drawn with box-drawing runes.
//   - The basic catalogue maps Symbol 0..9 to digit glyphs and Blank (10)
//     to the "no value" dash.
//   - The decorated catalogue holds 40 digit glyphs: every digit in the four
//     variant classes Plain, Dot, Sign and SignDot. A Variant names one of
//     them by field instead of by flat index; Variant.Index and VariantAt
//     convert to and from the flat class×10+digit layout.
//
// Decorations:
//
//   - Dot appends one column: blank on rows 0..3, a "⦁" point on row 4.
//   - Sign prepends two columns: blank on every row except the middle one,
//     which carries a "━━" bar spliced into the digit's left edge.
//
// Example (Sign+Dot 5 next to plain 1):
//
//	  ┏━━━╸      ╻
//	  ┃          ┃
//	━━┗━━━┓      ┃
//	      ┃      ┃
//	  ╺━━━┛⦁     ╹
//
// Lookups:
//
//   - Basic and Decorated are unchecked and panic on out-of-range input;
//     they serve the resolvers in this module, which never produce one.
//   - At is the checked form for callers holding raw catalogue indices.
//
// All tables are built once at package initialisation and never mutated,
// so every function in this package is safe for concurrent use.
//
// Errors:
//
//   - ErrIndexRange: catalogue index outside the catalogue.
//   - ErrInvalidRune: rune is neither a decimal digit nor '-'.
//   - ErrUnknownCatalogue: Catalogue value is not defined.
package glyph
