// SPDX-License-Identifier: MIT

package maxmatch

import "github.com/katalvlaran/lvtext/graphemes"

// Dictionary answers membership queries for candidate words.
type Dictionary interface {
	Contains(word graphemes.Graphemes) bool
}

// Bounded is implemented by dictionaries that know their longest entry,
// measured in graphemes. Segment never probes longer prefixes.
type Bounded interface {
	MaxWordLen() int
}

// Set is an in-memory Dictionary keyed by rendered text. The zero value is
// an empty set ready to use.
type Set struct {
	words  map[string]struct{}
	maxLen int
}

var (
	_ Dictionary = (*Set)(nil)
	_ Bounded    = (*Set)(nil)
)

// NewSet builds a Set from plain strings.
func NewSet(words ...string) *Set {
	s := &Set{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		s.Add(w)
	}

	return s
}

// Add inserts word. Empty words are ignored.
func (s *Set) Add(word string) {
	s.AddGraphemes(graphemes.New(word))
}

// AddGraphemes inserts an already segmented word.
func (s *Set) AddGraphemes(word graphemes.Graphemes) {
	if word.Len() == 0 {
		return
	}
	if s.words == nil {
		s.words = make(map[string]struct{})
	}
	s.words[word.Key()] = struct{}{}
	if word.Len() > s.maxLen {
		s.maxLen = word.Len()
	}
}

// Contains reports whether word is in the set.
func (s *Set) Contains(word graphemes.Graphemes) bool {
	_, ok := s.words[word.Key()]

	return ok
}

// Merge adds every word of other to s.
func (s *Set) Merge(other *Set) {
	if len(other.words) == 0 {
		return
	}
	if s.words == nil {
		s.words = make(map[string]struct{}, len(other.words))
	}
	for w := range other.words {
		s.words[w] = struct{}{}
	}
	s.maxLen = max(s.maxLen, other.maxLen)
}

// Len returns the number of distinct words.
func (s *Set) Len() int { return len(s.words) }

// MaxWordLen returns the grapheme length of the longest word.
func (s *Set) MaxWordLen() int { return s.maxLen }
