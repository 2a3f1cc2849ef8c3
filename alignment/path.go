// SPDX-License-Identifier: MIT

package alignment

import (
	"github.com/katalvlaran/lvtext/editdistance"
	"github.com/katalvlaran/lvtext/sequence"
)

// Path returns one optimal alignment path between a and b, ordered from
// (0,0) to (a.Len(), b.Len()) inclusive.
//
// Steps:
//  1. Build the cost matrix (editdistance.CostMatrix).
//  2. Record a predecessor for every cell (see backtrace).
//  3. Follow predecessors from the terminal cell back to the origin.
//  4. Reverse so coordinates ascend.
//
// Every step advances I, J or both by exactly one, so the path holds
// between max(n,m)+1 and n+m+1 coordinates. Two empty inputs give the
// single-cell path [{0 0}].
//
// Errors:
//   - editdistance.ErrNegativeCost: subCost < 0.
func Path[E comparable](a, b sequence.Sequence[E], subCost int) ([]Coord, error) {
	mat, err := editdistance.CostMatrix(a, b, subCost)
	if err != nil {
		return nil, err
	}

	return walk(backtrace(mat, a, b, subCost), a.Len(), b.Len()), nil
}

// backtrace picks the predecessor of every cell in the fixed priority
// left, up, diagonal. Border cells point along the border.
// The result is dense and row-major like the matrix itself.
func backtrace[E comparable](mat *editdistance.Matrix, a, b sequence.Sequence[E], subCost int) []dir {
	rows, cols := mat.Rows(), mat.Cols()
	bt := make([]dir, rows*cols)

	for j := 1; j < cols; j++ {
		bt[j] = dirLeft
	}
	for i := 1; i < rows; i++ {
		bt[i*cols] = dirUp
		ai := a.At(i - 1)
		for j := 1; j < cols; j++ {
			best := mat.At(i, j)
			switch {
			case mat.At(i, j-1)+1 == best:
				bt[i*cols+j] = dirLeft
			case mat.At(i-1, j)+1 == best:
				bt[i*cols+j] = dirUp
			case mat.At(i-1, j-1)+editdistance.SubCost(ai, b.At(j-1), subCost) == best:
				bt[i*cols+j] = dirDiag
			default:
				panic("alignment: cost matrix cell has no minimizing predecessor")
			}
		}
	}

	return bt
}

// walk follows bt from (n,m) to (0,0) and returns the reversed trail.
func walk(bt []dir, n, m int) []Coord {
	cols := m + 1
	path := make([]Coord, 0, n+m+1)
	i, j := n, m
	for {
		path = append(path, Coord{I: i, J: j})
		switch bt[i*cols+j] {
		case dirOrigin:
			for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
				path[l], path[r] = path[r], path[l]
			}

			return path
		case dirLeft:
			j--
		case dirUp:
			i--
		case dirDiag:
			i--
			j--
		}
	}
}
