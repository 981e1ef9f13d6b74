// SPDX-License-Identifier: MIT

package signed

import (
	"fmt"

	"github.com/katalvlaran/sevseg/compose"
	"github.com/katalvlaran/sevseg/glyph"
)

// Slots is the fixed width of a signed readout.
const Slots = 4

// Four renders n into a four-slot decorated readout. It always succeeds.
// Complexity: O(len(Text(n))).
func Four[T Number](n T) string {
	return render(Resolve(n))
}

// FourText renders a literal decimal string through the same resolver as Four.
// Returns "" and ErrSyntax unless s matches -?D+(.D*)?.
func FourText(s string) (string, error) {
	slots, err := resolveText(s, true)
	if err != nil {
		return "", err
	}

	return render(slots), nil
}

// Resolve returns the four decorated variants Four(n) draws.
func Resolve[T Number](n T) [Slots]glyph.Variant {
	// Text never yields anything the lenient scanner rejects.
	slots, _ := resolveText(Text(n), false)

	return slots
}

func render(slots [Slots]glyph.Variant) string {
	gs := make([]glyph.Glyph, Slots)
	for i, v := range slots {
		gs[i] = glyph.Decorated(v)
	}

	return compose.Compose(gs...)
}

// phase is the scanner state over the decimal text.
type phase int

const (
	phaseSign phase = iota
	phaseInt
	phaseFrac
)

// resolveText scans s in three phases: an optional sign, integer digits,
// then fractional digits after the point. In strict mode anything outside
// -?D+(.D*)? is ErrSyntax; otherwise non-digit runes are skipped, which
// lets NaN and ±Inf resolve to zero slots.
func resolveText(s string, strict bool) ([Slots]glyph.Variant, error) {
	var (
		slots    [Slots]glyph.Variant
		held     int  // digits placed in slots
		intCount int  // integer digits seen, placed or not
		negative bool // leading '-'
		p        = phaseSign
	)
	syntax := func() ([Slots]glyph.Variant, error) {
		return [Slots]glyph.Variant{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}

	for _, r := range s {
		switch {
		case r == '-' && p == phaseSign:
			negative = true
			p = phaseInt
		case r >= '0' && r <= '9':
			if p == phaseSign {
				p = phaseInt
			}
			if p == phaseInt {
				intCount++
			}
			if held < Slots {
				slots[held].Digit = uint8(r - '0')
				held++
			}
		case r == '.' && p != phaseFrac:
			if strict && intCount == 0 {
				return syntax()
			}
			p = phaseFrac
		default:
			if strict {
				return syntax()
			}
		}
	}
	if strict && intCount == 0 {
		return syntax()
	}

	// The point follows the last integer digit; it shows only if that
	// digit made it onto the display.
	if intCount > 0 && intCount <= Slots {
		slots[intCount-1].Dot = true
	}
	slots[0].Sign = negative

	return slots, nil
}
