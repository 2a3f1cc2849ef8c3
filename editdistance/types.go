// SPDX-License-Identifier: MIT

package editdistance

import "errors"

// MemoryMode controls how Distance stores its DP matrix.
//
//   - FullMatrix: keep the entire (n+1)x(m+1) matrix in memory. Memory: O(n·m).
//   - TwoRows   : keep only the previous and the current row. Memory: O(m).
//     The distance is identical; only the matrix is not retained.
type MemoryMode int

const (
	// FullMatrix stores every row.
	FullMatrix MemoryMode = iota

	// TwoRows keeps two rolling rows.
	TwoRows
)

// Options configures Distance.
//
// Fields:
//   - SubstitutionCost: cost of replacing one element by a different one.
//     Must be ≥ 0. Equal elements are never charged.
//   - MemoryMode      : FullMatrix or TwoRows.
type Options struct {
	SubstitutionCost int
	MemoryMode       MemoryMode
}

// DefaultOptions returns unit substitution cost and FullMatrix storage.
func DefaultOptions() Options {
	return Options{
		SubstitutionCost: 1,
		MemoryMode:       FullMatrix,
	}
}

var (
	// ErrNegativeCost indicates a substitution cost below zero.
	ErrNegativeCost = errors.New("editdistance: substitution cost must be non-negative")

	// ErrBadMemoryMode indicates an unknown MemoryMode value.
	ErrBadMemoryMode = errors.New("editdistance: unknown memory mode")
)
