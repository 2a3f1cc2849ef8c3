// SPDX-License-Identifier: MIT

package alignment_test

import (
	"testing"

	"github.com/katalvlaran/lvtext/alignment"
	"github.com/katalvlaran/lvtext/sequence"
)

// BenchmarkStrings_300 aligns two 300-element integer sequences.
func BenchmarkStrings_300(b *testing.B) {
	const n = 300
	x := make(sequence.Slice[int], n)
	y := make(sequence.Slice[int], n)
	for i := 0; i < n; i++ {
		x[i] = i % 11
		y[i] = i % 13
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := alignment.Strings[int](x, y, 1, -1); err != nil {
			b.Fatalf("Strings failed: %v", err)
		}
	}
}
