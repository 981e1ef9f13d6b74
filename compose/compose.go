package compose

import (
	"iter"
	"strings"

	"github.com/katalvlaran/sevseg/glyph"
)

// Compose joins glyphs left to right separated by one blank column.
// The result always has glyph.Rows "\n"-terminated rows; a single glyph
// composes to its own String form.
// Complexity: O(total runes).
func Compose(glyphs ...glyph.Glyph) string {
	return ComposeWith(glyphs)
}

// ComposeWith is Compose honouring opts.
func ComposeWith(glyphs []glyph.Glyph, opts ...Option) string {
	var sb strings.Builder
	for frag := range FragmentsWith(glyphs, opts...) {
		sb.WriteString(frag)
	}

	return sb.String()
}

// Fragments returns the composed text of glyphs as a lazy sequence of
// fragments: glyph rows, gaps and line terminators in output order.
// Concatenating every fragment yields exactly Compose(glyphs...).
// Nothing is rendered until the sequence is ranged over, and ranging
// stops producing fragments as soon as the loop breaks.
func Fragments(glyphs ...glyph.Glyph) iter.Seq[string] {
	return FragmentsWith(glyphs)
}

// FragmentsWith is Fragments honouring opts.
func FragmentsWith(glyphs []glyph.Glyph, opts ...Option) iter.Seq[string] {
	o := gatherOptions(opts...)
	gap := strings.Repeat(" ", o.gap)

	return func(yield func(string) bool) {
		for r := 0; r < glyph.Rows; r++ {
			for i, g := range glyphs {
				if i > 0 && gap != "" && !yield(gap) {
					return
				}
				if !yield(g.Row(r)) {
					return
				}
			}
			if !yield("\n") {
				return
			}
		}
	}
}
