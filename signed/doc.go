// Package signed renders signed, optionally fractional numbers as
// four-slot pseudo seven-segment readouts.
//
// What:
//
//   - Four renders any integer or floating-point value; it never fails.
//   - FourText renders a literal decimal string of the form -?D+(.D*)?.
//   - Resolve exposes the four decorated-catalogue variants Four draws.
//
// Layout:
//
//   - The first four significant digits of the value's base-10 text fill
//     slots 0..3 left to right; further digits are dropped, never rounded.
//   - The digit right before the decimal point, or the last digit of an
//     integer, carries the trailing point mark when it is on display.
//   - A negative value splices the minus connector into slot 0.
//   - Slots past the last digit show a plain zero.
//
// Example, Four(-51.693):
//
//	  ┏━━━╸     ╻  ┏━━━╸ ┏━━━┓
//	  ┃         ┃  ┃     ┃   ┃
//	━━┗━━━┓     ┃  ┣━━━┓ ┗━━━┫
//	      ┃     ┃  ┃   ┃     ┃
//	  ╺━━━┛     ╹⦁ ┗━━━┛ ╺━━━┛
//
// Errors:
//
//   - ErrSyntax: FourText input is not a plain decimal.
package signed
