// Package sevseg renders numbers as pseudo seven-segment readouts for
// terminals: five rows of box-drawing runes per digit, one to four digits
// side by side.
//
// What is inside?
//
//	glyph/   — the digit, dash and decorated (point / minus bar) glyph tables
//	compose/ — joins glyphs row by row, eagerly or as a lazy fragment sequence,
//	           and tiles rendered readouts side by side
//	fixed/   — 1..4 slot readouts of literal digit strings, zero-padded on the left
//	signed/  — 4 slot readouts of any integer or float, with the decimal point
//	           and the minus sign drawn into the digits
//	cmd/sevseg — a small CLI that prints readouts for its arguments
//
// Quick example:
//
//	out, err := fixed.Four("8023")
//	// ┏━━━┓ ┏━━━┓ ╺━━━┓ ╺━━━┓
//	// ┃   ┃ ┃   ┃     ┃     ┃
//	// ┣━━━┫ ┃   ┃ ┏━━━┛ ╺━━━┫
//	// ┃   ┃ ┃   ┃ ┃         ┃
//	// ┗━━━┛ ┗━━━┛ ┗━━━╸ ╺━━━┛
//
//	fmt.Print(signed.Four(-5.1))
//	//   ┏━━━╸      ╻ ┏━━━┓ ┏━━━┓
//	//   ┃          ┃ ┃   ┃ ┃   ┃
//	// ━━┗━━━┓      ┃ ┃   ┃ ┃   ┃
//	//       ┃      ┃ ┃   ┃ ┃   ┃
//	//   ╺━━━┛⦁     ╹ ┗━━━┛ ┗━━━┛
//
// Everything is a pure function over read-only tables: safe for
// concurrent use, no logging, no I/O. Framing, colour and redraw loops
// belong to the caller.
//
//	go get github.com/katalvlaran/sevseg
package sevseg
