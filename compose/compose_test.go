package compose_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/sevseg/compose"
	"github.com/katalvlaran/sevseg/glyph"
)

// ComposeSuite exercises eager and lazy glyph composition.
type ComposeSuite struct {
	suite.Suite
}

func digits(ds ...glyph.Symbol) []glyph.Glyph {
	out := make([]glyph.Glyph, len(ds))
	for i, d := range ds {
		out[i] = glyph.Basic(d)
	}

	return out
}

// TestSingleGlyphUnchanged verifies one glyph composes to itself.
func (s *ComposeSuite) TestSingleGlyphUnchanged() {
	for d := glyph.Symbol(0); d <= glyph.Blank; d++ {
		g := glyph.Basic(d)
		require.Equal(s.T(), g.String(), compose.Compose(g))
	}
}

// TestTwoGlyphs pins the separator column.
func (s *ComposeSuite) TestTwoGlyphs() {
	want := "┏━━━┓ ┏━━━┓\n┃   ┃ ┃   ┃\n┣━━━┫ ┗━━━┫\n┃   ┃     ┃\n┗━━━┛ ╺━━━┛\n"
	require.Equal(s.T(), want, compose.Compose(digits(8, 9)...))
}

// TestEmpty yields five empty rows.
func (s *ComposeSuite) TestEmpty() {
	require.Equal(s.T(), "\n\n\n\n\n", compose.Compose())
}

// TestRowShape checks row count and per-row width for a mixed sequence.
func (s *ComposeSuite) TestRowShape() {
	out := compose.Compose(digits(1, glyph.Blank, 7, 0)...)
	require.True(s.T(), strings.HasSuffix(out, "\n"))
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(s.T(), lines, glyph.Rows)
	for _, l := range lines {
		require.Equal(s.T(), 4*5+3, glyph.StringWidth(l))
	}
}

// TestDecoratedWidthsAreKept verifies wider variants are not re-aligned.
func (s *ComposeSuite) TestDecoratedWidthsAreKept() {
	out := compose.Compose(
		glyph.Decorated(glyph.Variant{Digit: 1, Sign: true}),
		glyph.Decorated(glyph.Variant{Digit: 2, Dot: true}),
	)
	want := "      ╻ ╺━━━┓ \n      ┃     ┃ \n    ━━┃ ┏━━━┛ \n      ┃ ┃     \n      ╹ ┗━━━╸⦁\n"
	require.Equal(s.T(), want, out)
}

// TestFragmentsMatchCompose verifies lazy and eager output agree.
func (s *ComposeSuite) TestFragmentsMatchCompose() {
	gs := digits(3, 1, 4, 1)
	var sb strings.Builder
	n := 0
	for frag := range compose.Fragments(gs...) {
		sb.WriteString(frag)
		n++
	}
	require.Equal(s.T(), compose.Compose(gs...), sb.String())
	// 4 rows + 3 gaps + 1 terminator per row.
	require.Equal(s.T(), glyph.Rows*(4+3+1), n)
}

// TestFragmentsStopEarly verifies the sequence honours a false yield.
func (s *ComposeSuite) TestFragmentsStopEarly() {
	var got []string
	for frag := range compose.Fragments(digits(8, 8)...) {
		got = append(got, frag)
		if len(got) == 2 {
			break
		}
	}
	require.Equal(s.T(), []string{"┏━━━┓", " "}, got)
}

// TestWithGap widens the separator.
func (s *ComposeSuite) TestWithGap() {
	out := compose.ComposeWith(digits(1, 1), compose.WithGap(3))
	require.Equal(s.T(), "    ╻       ╻\n", strings.SplitAfter(out, "\n")[0])

	out = compose.ComposeWith(digits(1, 1), compose.WithGap(0))
	require.Equal(s.T(), "    ╻    ╻\n", strings.SplitAfter(out, "\n")[0])
}

func TestComposeSuite(t *testing.T) {
	suite.Run(t, new(ComposeSuite))
}

// TestWithGap_PanicsOnNegative follows the option constructor policy.
func TestWithGap_PanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { compose.WithGap(-1) })
}
