// SPDX-License-Identifier: MIT

package alignment

import "fmt"

// Coord addresses a DP cell. I indexes the first sequence (0..len(a)),
// J the second (0..len(b)); (0,0) stands for "both empty".
type Coord struct {
	I, J int
}

// OpKind classifies one alignment step.
type OpKind int

const (
	// Match pairs two equal elements.
	Match OpKind = iota
	// Substitute pairs two different elements.
	Substitute
	// Insert consumes an element of b only.
	Insert
	// Delete consumes an element of a only.
	Delete
)

// String implements fmt.Stringer.
func (k OpKind) String() string {
	switch k {
	case Match:
		return "match"
	case Substitute:
		return "substitute"
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	default:
		return fmt.Sprintf("OpKind(%d)", int(k))
	}
}

// Op is one step of an edit script.
// I and J are zero-based positions in a and b; the side that consumes
// nothing (J for Delete, I for Insert) is -1.
type Op struct {
	Kind OpKind
	I, J int
}

// Summary counts the operations of an edit script.
type Summary struct {
	Matches       int
	Substitutions int
	Insertions    int
	Deletions     int
}

// Errors returns substitutions + insertions + deletions.
func (s Summary) Errors() int { return s.Substitutions + s.Insertions + s.Deletions }

// Cost re-prices the script: unit insertions and deletions, subCost per
// substitution. For a script returned by Operations it equals the
// edit distance computed with the same subCost.
func (s Summary) Cost(subCost int) int {
	return s.Insertions + s.Deletions + s.Substitutions*subCost
}

// dir is the predecessor recorded for one DP cell.
type dir uint8

const (
	dirOrigin dir = iota
	dirLeft
	dirUp
	dirDiag
)
