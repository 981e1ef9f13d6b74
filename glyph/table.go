// SPDX-License-Identifier: MIT

package glyph

import "strings"

// basic is the 11-entry catalogue: digits 0..9 then the Blank dash.
var basic = [BasicSize]Glyph{
	{"┏━━━┓", "┃   ┃", "┃   ┃", "┃   ┃", "┗━━━┛"},
	{"    ╻", "    ┃", "    ┃", "    ┃", "    ╹"},
	{"╺━━━┓", "    ┃", "┏━━━┛", "┃    ", "┗━━━╸"},
	{"╺━━━┓", "    ┃", "╺━━━┫", "    ┃", "╺━━━┛"},
	{"╻   ╻", "┃   ┃", "┗━━━┫", "    ┃", "    ╹"},
	{"┏━━━╸", "┃    ", "┗━━━┓", "    ┃", "╺━━━┛"},
	{"┏━━━╸", "┃    ", "┣━━━┓", "┃   ┃", "┗━━━┛"},
	{"╺━━━┓", "    ┃", "    ┃", "    ┃", "    ╹"},
	{"┏━━━┓", "┃   ┃", "┣━━━┫", "┃   ┃", "┗━━━┛"},
	{"┏━━━┓", "┃   ┃", "┗━━━┫", "    ┃", "╺━━━┛"},
	{"     ", "     ", "╺━━━╸", "     ", "     "},
}

const (
	pointMark  = "⦁"
	signBar    = "━━"
	signMargin = "  "
	barWidth   = 2
	middleRow  = 2
	bottomRow  = Rows - 1
)

// decorated is laid out class-major: index = class×10 + digit.
var decorated = buildDecorated()

func buildDecorated() [DecoratedSize]Glyph {
	var t [DecoratedSize]Glyph
	for i := range t {
		v, _ := VariantAt(i)
		t[i] = decorate(basic[v.Digit], v)
	}

	return t
}

// decorate derives a variant from its plain digit glyph.
func decorate(g Glyph, v Variant) Glyph {
	if v.Dot {
		for r := 0; r < bottomRow; r++ {
			g[r] += " "
		}
		g[bottomRow] += pointMark
	}
	if v.Sign {
		for r := range g {
			if r == middleRow {
				g[r] = spliceBar(g[r])
				continue
			}
			g[r] = signMargin + g[r]
		}
	}

	return g
}

// spliceBar prefixes the sign bar to a middle row. When the row opens
// with blanks the bar slides right until it touches the first stroke.
func spliceBar(row string) string {
	body := strings.TrimLeft(row, " ")
	lead := len(row) - len(body)
	if lead < barWidth {
		return signBar + row
	}
	pad := strings.Repeat(" ", lead-barWidth)

	return signMargin + pad + signBar + body
}
