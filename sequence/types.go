// SPDX-License-Identifier: MIT

package sequence

// Sequence is the capability set consumed by the comparison engines.
//
// Implementations must be zero-indexed and stable: At(i) for the same i
// returns the same element for the lifetime of one engine call.
type Sequence[E comparable] interface {
	// Len returns the number of elements.
	Len() int
	// At returns the element at position i, 0 ≤ i < Len().
	At(i int) E
}

// Slice is an ordered, owned collection of elements.
// The zero value is an empty sequence ready to use.
type Slice[E comparable] []E

// Compile-time assertion.
var _ Sequence[string] = Slice[string](nil)
