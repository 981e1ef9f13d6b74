// Package compose joins glyphs and rendered blocks side by side.
//
// What:
//
//   - Compose lays glyphs out left to right: row r of the result is
//     g0[r] + gap + g1[r] + ... + "\n", for the five glyph rows.
//   - Fragments yields the same text lazily, piece by piece, for callers
//     that frame or further embed the output.
//   - Blocks tiles already rendered multi-line blocks (whole readouts)
//     side by side.
//
// Glyph widths are never aligned or padded by Compose: the decorated
// variants are wider than plain digits on purpose, so the sign bar and
// the decimal point visibly attach to their neighbours.
//
// Options:
//
//   - WithGap(n): blank columns between neighbours (DefaultGap = 1).
//
// Errors:
//
//   - ErrRowMismatch: Blocks received blocks with different row counts.
package compose
