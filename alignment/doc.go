// SPDX-License-Identifier: MIT

// Package alignment recovers one optimal edit sequence between two
// sequences and renders it as two parallel, equal-length sequences.
//
// What:
//
//   - Path: the DP matrix from editdistance plus a dense backtrace that
//     records, for every cell, which neighbour produced its minimum.
//     The path runs from the origin (0,0) to (len(a), len(b)).
//   - Strings: walks the path and emits aligned pairs, padding the side
//     that consumed nothing with a caller-supplied placeholder.
//   - Operations: the same walk as an edit script (match, substitute,
//     insert, delete), which metrics use for error breakdowns.
//
// Tie-break:
//
//	When several predecessors reach the same minimum, the winner is fixed:
//	  1. insertion from the left   (i,   j-1)
//	  2. deletion from above       (i-1, j)
//	  3. diagonal match/substitute (i-1, j-1)
//	This order decides which of several equal-cost alignments comes back,
//	so golden outputs depend on it.
//
// Example ("intention" vs "execution", C=1, placeholder " "):
//
//	inten tion
//	ex ecution
//
// Complexity:
//
//   - Time:   O(N·M)
//   - Memory: O(N·M) for the cost matrix and the backtrace.
package alignment
