// SPDX-License-Identifier: MIT

package compose

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/sevseg/glyph"
)

// Blocks tiles rendered blocks side by side with the default gap.
// See BlocksWith.
func Blocks(blocks ...string) (string, error) {
	return BlocksWith(blocks)
}

// BlocksWith tiles "\n"-terminated multi-line blocks left to right, row by
// row. Every block except the last is right-padded to its widest row so
// the columns of later blocks line up.
// Returns ErrRowMismatch if the blocks differ in row count.
// Complexity: O(total runes).
func BlocksWith(blocks []string, opts ...Option) (string, error) {
	if len(blocks) == 0 {
		return "", nil
	}
	o := gatherOptions(opts...)
	gap := strings.Repeat(" ", o.gap)

	split := make([][]string, len(blocks))
	widths := make([]int, len(blocks))
	for i, b := range blocks {
		split[i] = rows(b)
		if len(split[i]) != len(split[0]) {
			return "", fmt.Errorf("%w: block %d has %d rows, block 0 has %d",
				ErrRowMismatch, i, len(split[i]), len(split[0]))
		}
		widths[i] = widest(split[i])
	}

	var sb strings.Builder
	for r := range split[0] {
		for i := range split {
			if i > 0 {
				sb.WriteString(gap)
			}
			cell := split[i][r]
			sb.WriteString(cell)
			if i < len(split)-1 {
				sb.WriteString(strings.Repeat(" ", widths[i]-glyph.StringWidth(cell)))
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String(), nil
}

// Width reports the terminal width of the widest row of block.
func Width(block string) int {
	return widest(rows(block))
}

// rows splits a "\n"-terminated block; the empty block has no rows.
func rows(block string) []string {
	if block == "" {
		return nil
	}

	return strings.Split(strings.TrimSuffix(block, "\n"), "\n")
}

func widest(lines []string) int {
	w := 0
	for _, l := range lines {
		w = max(w, glyph.StringWidth(l))
	}

	return w
}
