// SPDX-License-Identifier: MIT

// Package metrics scores a predicted sentence against a reference.
//
//   - WordErrorRate: word-level edit distance (substitution cost 1) divided
//     by the number of reference words. Words are separated by
//     graphemes.Space.
//   - WordAccuracy:  1 − WordErrorRate.
//   - WordErrors:    the same rate with substitution/insertion/deletion counts.
//   - CharacterErrorRate: grapheme-level distance over reference length.
//
// An empty reference has no defined rate; every function returns
// ErrEmptyReference instead of NaN or ±Inf.
package metrics
