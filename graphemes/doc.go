// SPDX-License-Identifier: MIT

// Package graphemes splits text into user-perceived characters and exposes
// them as a sequence the comparison engines can consume.
//
// A Graphemes value is a []string where every element is one extended
// grapheme cluster (UAX #29), so "é" written as e + U+0301, a flag emoji,
// or a Hangul syllable block each count as a single element. Segmentation
// is delegated to github.com/rivo/uniseg.
//
// Equal rendered text always yields an equal, deterministically ordered
// Graphemes value, which is what dictionaries and metrics rely on.
//
// Usage:
//
//	g := graphemes.New("他特别喜欢北京烤鸭")
//	fmt.Println(g.Len()) // 9
//	words := graphemes.New("we can see").Words() // sequence.Slice[string]{"we","can","see"}
package graphemes
