// SPDX-License-Identifier: MIT

package compose

// DefaultGap is the number of blank columns placed between neighbours.
const DefaultGap = 1

const panicGapInvalid = "compose: WithGap: gap must be non-negative"

// Option mutates composition options.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	gap int // >= 0; DefaultGap
}

// WithGap sets the number of blank columns between neighbours.
// Panics if n < 0.
func WithGap(n int) Option {
	if n < 0 {
		panic(panicGapInvalid)
	}

	return func(o *Options) { o.gap = n }
}

// gatherOptions applies opts over the defaults; later options win.
func gatherOptions(opts ...Option) Options {
	o := Options{gap: DefaultGap}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
