// SPDX-License-Identifier: MIT

package alignment

import (
	"fmt"

	"github.com/katalvlaran/lvtext/sequence"
)

// Strings aligns a against b and returns two equal-length sequences in
// left-to-right order. Where one side consumes no element (an insertion
// into a, or a deletion from a) that side carries placeholder.
//
// For every step (r0,c0) → (r1,c1) of Path:
//   - both advance  → (a[r1-1], b[c1-1])   match or substitution
//   - column only   → (placeholder, b[c1-1])
//   - row only      → (a[r1-1], placeholder)
//
// Any other step shape means the path is corrupt and Strings panics.
// Two empty inputs give two empty sequences.
func Strings[E comparable](a, b sequence.Sequence[E], subCost int, placeholder E) (sequence.Slice[E], sequence.Slice[E], error) {
	path, err := Path(a, b, subCost)
	if err != nil {
		return nil, nil, err
	}

	top := make(sequence.Slice[E], 0, len(path))
	bottom := make(sequence.Slice[E], 0, len(path))
	for k := 1; k < len(path); k++ {
		cur := path[k]
		switch stepKind(path[k-1], cur) {
		case dirDiag:
			top.Push(a.At(cur.I - 1))
			bottom.Push(b.At(cur.J - 1))
		case dirLeft:
			top.Push(placeholder)
			bottom.Push(b.At(cur.J - 1))
		case dirUp:
			top.Push(a.At(cur.I - 1))
			bottom.Push(placeholder)
		}
	}

	return top, bottom, nil
}

// Operations returns the edit script along Path.
func Operations[E comparable](a, b sequence.Sequence[E], subCost int) ([]Op, error) {
	path, err := Path(a, b, subCost)
	if err != nil {
		return nil, err
	}

	ops := make([]Op, 0, len(path))
	for k := 1; k < len(path); k++ {
		cur := path[k]
		switch stepKind(path[k-1], cur) {
		case dirDiag:
			kind := Match
			if a.At(cur.I-1) != b.At(cur.J-1) {
				kind = Substitute
			}
			ops = append(ops, Op{Kind: kind, I: cur.I - 1, J: cur.J - 1})
		case dirLeft:
			ops = append(ops, Op{Kind: Insert, I: -1, J: cur.J - 1})
		case dirUp:
			ops = append(ops, Op{Kind: Delete, I: cur.I - 1, J: -1})
		}
	}

	return ops, nil
}

// Summarize counts the operations in ops.
func Summarize(ops []Op) Summary {
	var s Summary
	for _, op := range ops {
		switch op.Kind {
		case Match:
			s.Matches++
		case Substitute:
			s.Substitutions++
		case Insert:
			s.Insertions++
		case Delete:
			s.Deletions++
		}
	}

	return s
}

// stepKind classifies prev → cur as dirDiag, dirLeft (column only) or
// dirUp (row only). Anything else is an invariant violation.
func stepKind(prev, cur Coord) dir {
	di, dj := cur.I-prev.I, cur.J-prev.J
	switch {
	case di == 1 && dj == 1:
		return dirDiag
	case di == 0 && dj == 1:
		return dirLeft
	case di == 1 && dj == 0:
		return dirUp
	default:
		panic(fmt.Sprintf("alignment: invalid step %v -> %v", prev, cur))
	}
}
