// Package fixed renders short literal digit strings as fixed-width
// pseudo seven-segment readouts of one to four slots.
//
// What:
//
//   - One, Two, Three and Four render exactly 1, 2, 3 and 4 slots.
//   - Format(n, s) is the same renderer with the arity as a parameter.
//   - FourSeq and FormatSeq return the rendering as a lazy fragment
//     sequence instead of a string.
//
// Input:
//
//   - 1..n runes, each '0'..'9' or '-'. A digit renders its digit glyph;
//     '-' renders the "no value" dash.
//   - Shorter input is right-aligned: leftmost unfilled slots show a plain
//     zero, never the dash. Four("7") looks exactly like Four("0007").
//
// Errors (the result is empty whenever an error is returned):
//
//   - ErrLength: empty input or more than n runes.
//   - ErrInvalidRune: a rune other than a digit or '-' (wraps glyph.ErrInvalidRune).
//   - ErrArity: n outside 1..4.
package fixed
