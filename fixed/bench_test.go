package fixed_test

import (
	"testing"

	"github.com/katalvlaran/sevseg/fixed"
)

// BenchmarkFour measures the eager four-slot renderer.
func BenchmarkFour(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = fixed.Four("8023")
	}
}

// BenchmarkFourSeq measures building and draining the lazy sequence.
func BenchmarkFourSeq(b *testing.B) {
	for i := 0; i < b.N; i++ {
		seq, _ := fixed.FourSeq("8023")
		for range seq {
		}
	}
}
