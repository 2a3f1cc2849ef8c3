// SPDX-License-Identifier: MIT

package sequence

import "fmt"

// Of builds a Slice from the given elements. The arguments are copied.
func Of[E comparable](xs ...E) Slice[E] {
	out := make(Slice[E], len(xs))
	copy(out, xs)

	return out
}

// Collect materializes any Sequence into an owned Slice.
func Collect[E comparable](s Sequence[E]) Slice[E] {
	if s == nil {
		return Slice[E]{}
	}
	n := s.Len()
	out := make(Slice[E], n)
	for i := 0; i < n; i++ {
		out[i] = s.At(i)
	}

	return out
}

// Len returns the number of elements.
func (s Slice[E]) Len() int { return len(s) }

// At returns the element at i. It panics when i is out of range, as slice
// indexing does.
func (s Slice[E]) At(i int) E { return s[i] }

// Set overwrites the element at i.
func (s Slice[E]) Set(i int, e E) { s[i] = e }

// Push appends a single element in place.
func (s *Slice[E]) Push(e E) { *s = append(*s, e) }

// Append appends every element of other in place.
func (s *Slice[E]) Append(other Slice[E]) { *s = append(*s, other...) }

// Sub returns a copy of the half-open range [i, j).
// The result never aliases the receiver's backing array.
func (s Slice[E]) Sub(i, j int) Slice[E] {
	out := make(Slice[E], j-i)
	copy(out, s[i:j])

	return out
}

// Split cuts s around every occurrence of delim. Delimiters are consumed;
// empty segments between adjacent delimiters are kept, so an empty input
// yields exactly one empty segment and n delimiters yield n+1 segments.
func (s Slice[E]) Split(delim E) []Slice[E] {
	parts := make([]Slice[E], 0, 1)
	start := 0
	for i, e := range s {
		if e == delim {
			parts = append(parts, s.Sub(start, i))
			start = i + 1
		}
	}

	return append(parts, s.Sub(start, len(s)))
}

// Reverse reverses the elements in place.
func (s Slice[E]) Reverse() {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}

// Clone returns an independent copy.
func (s Slice[E]) Clone() Slice[E] { return s.Sub(0, len(s)) }

// Equal reports whether s and other hold the same elements in the same
// order. A nil and an empty Slice are equal.
func (s Slice[E]) Equal(other Slice[E]) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}

	return true
}

// Key renders the full contents as a string usable as a map key. Slices
// that are Equal share a Key; a nil and an empty Slice both render as
// the empty literal.
func (s Slice[E]) Key() string {
	if len(s) == 0 {
		return fmt.Sprintf("%#v", []E{})
	}

	return fmt.Sprintf("%#v", []E(s))
}
