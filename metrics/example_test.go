// SPDX-License-Identifier: MIT

package metrics_test

import (
	"fmt"

	"github.com/katalvlaran/lvtext/graphemes"
	"github.com/katalvlaran/lvtext/metrics"
)

// ExampleWordErrorRate scores a one-word substitution.
func ExampleWordErrorRate() {
	wer, err := metrics.WordErrorRate(graphemes.New("the cat sat on the mat"), graphemes.New("the cat sit on the mat"))
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.4f\n", wer)
	// Output:
	// 0.1667
}
