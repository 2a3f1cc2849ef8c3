// SPDX-License-Identifier: MIT

package graphemes

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/katalvlaran/lvtext/sequence"
)

// Space is the word delimiter and the default alignment placeholder.
const Space = " "

// Graphemes is an ordered sequence of grapheme clusters.
// The zero value is empty and ready to use.
type Graphemes []string

var _ sequence.Sequence[string] = Graphemes(nil)

// New segments text into extended grapheme clusters.
func New(text string) Graphemes {
	out := make(Graphemes, 0, len(text))
	state := -1
	var cluster string
	for len(text) > 0 {
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		out = append(out, cluster)
	}

	return out
}

// FromSlice converts a string sequence (for example an alignment output)
// back into Graphemes without copying.
func FromSlice(s sequence.Slice[string]) Graphemes { return Graphemes(s) }

// Len returns the number of grapheme clusters.
func (g Graphemes) Len() int { return len(g) }

// At returns the cluster at i.
func (g Graphemes) At(i int) string { return g[i] }

// Set overwrites the cluster at i.
func (g Graphemes) Set(i int, cluster string) { g[i] = cluster }

// Push appends one cluster in place.
func (g *Graphemes) Push(cluster string) { *g = append(*g, cluster) }

// Append appends every cluster of other in place.
func (g *Graphemes) Append(other Graphemes) { *g = append(*g, other...) }

// Slice returns a copy of the half-open range [i, j).
func (g Graphemes) Slice(i, j int) Graphemes {
	return Graphemes(sequence.Slice[string](g).Sub(i, j))
}

// Split cuts g around every delim cluster; see sequence.Slice.Split.
func (g Graphemes) Split(delim string) []Graphemes {
	parts := sequence.Slice[string](g).Split(delim)
	out := make([]Graphemes, len(parts))
	for i, p := range parts {
		out[i] = Graphemes(p)
	}

	return out
}

// Words splits g on Space and renders every word as a single element,
// giving a word-level sequence for the comparison engines.
func (g Graphemes) Words() sequence.Slice[string] {
	parts := g.Split(Space)
	out := make(sequence.Slice[string], len(parts))
	for i, p := range parts {
		out[i] = p.String()
	}

	return out
}

// Reverse reverses the clusters in place.
func (g Graphemes) Reverse() { sequence.Slice[string](g).Reverse() }

// Clone returns an independent copy.
func (g Graphemes) Clone() Graphemes { return g.Slice(0, len(g)) }

// Equal reports element-wise equality.
func (g Graphemes) Equal(other Graphemes) bool {
	return sequence.Slice[string](g).Equal(sequence.Slice[string](other))
}

// Key returns the rendered text, used as the hash key in dictionaries.
func (g Graphemes) Key() string { return g.String() }

// String concatenates the clusters.
func (g Graphemes) String() string { return strings.Join(g, "") }
