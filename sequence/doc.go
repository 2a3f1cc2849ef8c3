// SPDX-License-Identifier: MIT

// Package sequence defines the capability set every comparison engine in
// lvtext is written against, plus a generic slice-backed container.
//
// What:
//
//   - Sequence[E] is the read-only view the DP engines consume:
//     length + indexed read, with E comparable so elements can be tested
//     for whole-element equality.
//   - Slice[E] is the concrete container: push, append, copying sub-slices,
//     split on a delimiter element, in-place reversal, clone and equality.
//
// Why:
//
//	The same edit-distance and alignment code runs over graphemes, words,
//	or any other token type. Engines never see a concrete container, only
//	the Sequence capability set.
//
// Complexity:
//
//   - Len/At/Set/Push: O(1) (Push amortized).
//   - Sub/Clone/Split/Equal/Reverse: O(n).
package sequence
