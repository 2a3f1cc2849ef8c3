// SPDX-License-Identifier: MIT

package editdistance

import (
	"strconv"
	"strings"
)

// Matrix is the dense (rows x cols) Wagner–Fischer cost grid.
// Row i indexes the first sequence (0..len(a)), column j the second
// (0..len(b)). Storage is row-major: offset = i*cols + j.
//
// A Matrix is built once per call and never mutated afterwards.
type Matrix struct {
	rows, cols int
	data       []int
}

// Rows returns len(a)+1.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns len(b)+1.
func (m *Matrix) Cols() int { return m.cols }

// At returns cell (i, j). It panics when the coordinate is outside the grid.
func (m *Matrix) At(i, j int) int {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic("editdistance: Matrix.At(" + strconv.Itoa(i) + "," + strconv.Itoa(j) + ") out of range")
	}

	return m.data[i*m.cols+j]
}

// Distance returns the terminal cell (len(a), len(b)).
func (m *Matrix) Distance() int { return m.data[len(m.data)-1] }

// String renders the grid one row per line, e.g. "[0, 1, 2]\n[1, 0, 1]\n".
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteString("[")
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(strconv.Itoa(m.data[i*m.cols+j]))
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
