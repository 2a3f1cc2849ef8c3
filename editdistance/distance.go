// SPDX-License-Identifier: MIT

package editdistance

import "github.com/katalvlaran/lvtext/sequence"

// Distance returns the Levenshtein distance between a and b.
//
// Algorithm Outline (Wagner–Fischer):
//  1. Let n = a.Len(), m = b.Len(). Conceptually allocate D of (n+1)x(m+1).
//  2. Borders: D[i][0] = i (pure deletions), D[0][j] = j (pure insertions).
//  3. For i = 1..n, j = 1..m:
//     sub = 0 if a[i-1] == b[j-1] else SubstitutionCost
//     D[i][j] = min(D[i-1][j]+1, D[i][j-1]+1, D[i-1][j-1]+sub)
//  4. distance = D[n][m].
//
// Empty inputs are not special-cased: the borders already give len(other).
// A nil opts means DefaultOptions().
//
// Errors:
//   - ErrNegativeCost : SubstitutionCost < 0.
//   - ErrBadMemoryMode: MemoryMode is neither FullMatrix nor TwoRows.
func Distance[E comparable](a, b sequence.Sequence[E], opts *Options) (int, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.SubstitutionCost < 0 {
		return 0, ErrNegativeCost
	}

	switch o.MemoryMode {
	case FullMatrix:
		return fill(a, b, o.SubstitutionCost).Distance(), nil
	case TwoRows:
		return rolling(a, b, o.SubstitutionCost), nil
	default:
		return 0, ErrBadMemoryMode
	}
}

// CostMatrix builds and returns the full DP matrix for a and b.
// The alignment package backtracks through it.
func CostMatrix[E comparable](a, b sequence.Sequence[E], subCost int) (*Matrix, error) {
	if subCost < 0 {
		return nil, ErrNegativeCost
	}

	return fill(a, b, subCost), nil
}

// SubCost returns the substitution charge for one aligned pair.
func SubCost[E comparable](x, y E, subCost int) int {
	if x == y {
		return 0
	}

	return subCost
}

// fill computes the whole matrix in row-major order.
func fill[E comparable](a, b sequence.Sequence[E], subCost int) *Matrix {
	n, m := a.Len(), b.Len()
	cols := m + 1
	mat := &Matrix{rows: n + 1, cols: cols, data: make([]int, (n+1)*cols)}
	d := mat.data

	for j := 1; j <= m; j++ {
		d[j] = j
	}
	for i := 1; i <= n; i++ {
		row, prev := i*cols, (i-1)*cols
		d[row] = i
		ai := a.At(i - 1)
		for j := 1; j <= m; j++ {
			d[row+j] = min(
				d[prev+j]+1,
				d[row+j-1]+1,
				d[prev+j-1]+SubCost(ai, b.At(j-1), subCost),
			)
		}
	}

	return mat
}

// rolling is fill with two rows; only the terminal value survives.
func rolling[E comparable](a, b sequence.Sequence[E], subCost int) int {
	n, m := a.Len(), b.Len()
	prev := make([]int, m+1)
	curr := make([]int, m+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= n; i++ {
		curr[0] = i
		ai := a.At(i - 1)
		for j := 1; j <= m; j++ {
			curr[j] = min(
				prev[j]+1,
				curr[j-1]+1,
				prev[j-1]+SubCost(ai, b.At(j-1), subCost),
			)
		}
		prev, curr = curr, prev
	}

	return prev[m]
}
