// SPDX-License-Identifier: MIT

// Package editdistance computes Levenshtein distances between arbitrary
// sequences of comparable elements: graphemes, words, or any token type.
//
// 🚀 What is edit distance?
//
//	The minimum total cost of single-element insertions, deletions and
//	substitutions that turns one sequence into another. Insertion and
//	deletion always cost 1; substitution costs a configurable C, and
//	replacing an element by an equal one is never charged.
//	It is used in:
//	  • Spell checking & fuzzy lookup
//	  • ASR / OCR evaluation (word and character error rates)
//	  • Diffing tokenized text
//
// ✨ Key features:
//   - generic over sequence.Sequence[E], E comparable
//   - full-matrix mode: O(N·M) time & memory, matrix available via CostMatrix
//   - two-rows mode: O(M) memory when only the scalar is needed
//   - configurable substitution cost (C=2 gives the "Levenshtein with
//     substitution as delete+insert" variant)
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvtext/editdistance"
//
//	opts := editdistance.DefaultOptions()
//	opts.SubstitutionCost = 2
//	d, err := editdistance.Distance(graphemes.New("book"), graphemes.New("back"), &opts)
//
// Performance:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) (FullMatrix) or O(M) (TwoRows)
//
// Costs are plain ints. Sums past the platform int range are not detected,
// which only matters for sequences near that length or a huge C.
package editdistance
