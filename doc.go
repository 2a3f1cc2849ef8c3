// Package lvtext is your in-memory toolkit for comparing and segmenting
// human-readable text, one user-perceived character at a time.
//
// 🚀 What is lvtext?
//
//	A small, dependency-light library that brings together:
//		• Grapheme sequences: "é", "🇯🇵" and "北" are one element each
//		• Edit distance: Wagner–Fischer over any comparable token type
//		• Alignment: optimal path, padded parallel strings, edit scripts
//		• Max-match: greedy longest-first dictionary segmentation
//		• Metrics: word error rate, word accuracy, character error rate
//
// ✨ Why choose lvtext?
//
//   - Grapheme-aware – never splits a visible character
//   - Generic – one DP engine for graphemes, words or your own tokens
//   - Deterministic – fixed tie-breaking, golden-file friendly
//   - Pure functions – no global state, safe to call concurrently
//
// Under the hood, everything is organized in subpackages:
//
//	sequence/    : Sequence[E] capability set & generic Slice container
//	graphemes/   : UAX #29 grapheme clusters (github.com/rivo/uniseg)
//	editdistance/: Levenshtein distance & cost matrix
//	alignment/   : backtrace, aligned strings, edit operations
//	maxmatch/    : dictionary segmenter + file / redis dictionary sources
//	metrics/     : WER, word accuracy, CER
//	cmd/lvtext   : command-line demo
//
// Quick example:
//
//	inten tion
//	ex ecution
//
//	is the alignment of "intention" and "execution" (distance 5).
//
//	go get github.com/katalvlaran/lvtext
package lvtext
