// SPDX-License-Identifier: MIT

package alignment_test

import (
	"fmt"

	"github.com/katalvlaran/lvtext/alignment"
	"github.com/katalvlaran/lvtext/graphemes"
)

// ExampleStrings prints the classic intention/execution alignment.
func ExampleStrings() {
	top, bottom, err := alignment.Strings[string](graphemes.New("intention"), graphemes.New("execution"), 1, graphemes.Space)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%q\n%q\n", graphemes.FromSlice(top), graphemes.FromSlice(bottom))
	// Output:
	// "inten tion"
	// "ex ecution"
}

// ExamplePath shows a path where ties resolve towards the left neighbour.
func ExamplePath() {
	p, _ := alignment.Path[string](graphemes.New("ab"), graphemes.New("ba"), 1)
	fmt.Println(p)
	// Output:
	// [{0 0} {1 0} {2 1} {2 2}]
}

// ExampleOperations summarizes an edit script.
func ExampleOperations() {
	ops, _ := alignment.Operations[string](graphemes.New("kitten"), graphemes.New("sitting"), 1)
	fmt.Printf("%+v\n", alignment.Summarize(ops))
	// Output:
	// {Matches:4 Substitutions:2 Insertions:1 Deletions:0}
}
