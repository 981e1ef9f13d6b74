// SPDX-License-Identifier: MIT

package fixed

import (
	"fmt"
	"iter"
	"unicode/utf8"

	"github.com/katalvlaran/sevseg/compose"
	"github.com/katalvlaran/sevseg/glyph"
)

// MaxSlots is the widest supported readout.
const MaxSlots = 4

// One renders a single slot.
func One(s string) (string, error) { return Format(1, s) }

// Two renders two slots.
func Two(s string) (string, error) { return Format(2, s) }

// Three renders three slots.
func Three(s string) (string, error) { return Format(3, s) }

// Four renders four slots.
func Four(s string) (string, error) { return Format(MaxSlots, s) }

// Format renders s into an n-slot readout.
// Returns "" and ErrArity, ErrLength or ErrInvalidRune on bad input.
// Complexity: O(n).
func Format(n int, s string) (string, error) {
	gs, err := resolve(n, s)
	if err != nil {
		return "", err
	}

	return compose.Compose(gs...), nil
}

// FourSeq is the lazy form of Four.
func FourSeq(s string) (iter.Seq[string], error) { return FormatSeq(MaxSlots, s) }

// FormatSeq validates s like Format and returns the readout as a lazy
// fragment sequence. Fully consumed, the fragments concatenate to
// Format(n, s). On error the sequence is nil.
func FormatSeq(n int, s string) (iter.Seq[string], error) {
	gs, err := resolve(n, s)
	if err != nil {
		return nil, err
	}

	return compose.Fragments(gs...), nil
}

// Slots resolves s into its n basic-catalogue symbols, left to right.
func Slots(n int, s string) ([]glyph.Symbol, error) {
	if n < 1 || n > MaxSlots {
		return nil, fmt.Errorf("%w: got %d", ErrArity, n)
	}
	l := utf8.RuneCountInString(s)
	if l == 0 || l > n {
		return nil, fmt.Errorf("%w: %q has %d runes, want 1..%d", ErrLength, s, l, n)
	}

	// Leading slots stay 0: the plain zero glyph.
	slots := make([]glyph.Symbol, n)
	i := n - l
	for pos, r := range s {
		sym, err := glyph.SymbolOf(r)
		if err != nil {
			return nil, fmt.Errorf("%w at byte %d of %q", err, pos, s)
		}
		slots[i] = sym
		i++
	}

	return slots, nil
}

func resolve(n int, s string) ([]glyph.Glyph, error) {
	slots, err := Slots(n, s)
	if err != nil {
		return nil, err
	}
	gs := make([]glyph.Glyph, len(slots))
	for i, sym := range slots {
		gs[i] = glyph.Basic(sym)
	}

	return gs, nil
}
