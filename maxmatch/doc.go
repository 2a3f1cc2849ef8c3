// SPDX-License-Identifier: MIT

// Package maxmatch segments unspaced text into dictionary words with the
// greedy longest-match-first (MaxMatch) algorithm.
//
// Algorithm:
//
//	At each position take the longest prefix of the remaining graphemes
//	that is a dictionary word. If no prefix of any length matches, take a
//	single grapheme as its own token. Repeat on the remainder. Tokens are
//	joined with a single graphemes.Space element.
//
//	"他特别喜欢北京烤鸭" + {他, 特别, 喜欢, 北京烤鸭} → "他 特别 喜欢 北京烤鸭"
//	"english" + same dictionary                      → "e n g l i s h"
//
// The loop is iterative: stack depth does not grow with input length, and
// SegmentContext can stop between tokens. Removing the spaces from the
// output always gives back the input.
//
// Dictionaries:
//
//   - Set: in-memory, keyed by rendered text.
//   - ReadSet / LoadFile: one word per line; LoadFile memory-maps the file.
//   - LoadRedis: snapshot of a Redis set (SMEMBERS).
//
// Complexity: O(k·L) dictionary probes for k graphemes, where L is the
// longest dictionary word (or k when the dictionary does not report one).
package maxmatch
