// SPDX-License-Identifier: MIT

package maxmatch

import (
	"context"

	"github.com/katalvlaran/lvtext/graphemes"
)

// Segment splits sentence into dictionary words, longest match first,
// falling back to single graphemes, and joins the tokens with
// graphemes.Space. Spaces already present in sentence are word boundaries:
// no match crosses them and they are not emitted as tokens, so segmenting
// the output again returns it unchanged. An empty sentence yields an
// empty result.
func Segment(sentence graphemes.Graphemes, dict Dictionary) graphemes.Graphemes {
	out, _ := SegmentContext(context.Background(), sentence, dict)

	return out
}

// SegmentContext is Segment with cancellation checked before each token.
// On cancellation it returns nil and ctx.Err().
func SegmentContext(ctx context.Context, sentence graphemes.Graphemes, dict Dictionary) (graphemes.Graphemes, error) {
	toks, err := collect(ctx, sentence, dict)
	if err != nil {
		return nil, err
	}

	return Join(toks), nil
}

// Tokens returns the tokens Segment would join.
func Tokens(sentence graphemes.Graphemes, dict Dictionary) []graphemes.Graphemes {
	out, _ := collect(context.Background(), sentence, dict)

	return out
}

// Join concatenates tokens with one graphemes.Space between neighbours.
func Join(tokens []graphemes.Graphemes) graphemes.Graphemes {
	out := make(graphemes.Graphemes, 0, 2*len(tokens))
	for i, tok := range tokens {
		if i > 0 {
			out.Push(graphemes.Space)
		}
		out.Append(tok)
	}

	return out
}

func collect(ctx context.Context, sentence graphemes.Graphemes, dict Dictionary) ([]graphemes.Graphemes, error) {
	n := sentence.Len()
	limit := n
	if b, ok := dict.(Bounded); ok {
		limit = min(limit, b.MaxWordLen())
	}

	var out []graphemes.Graphemes
	for pos := 0; pos < n; {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if sentence[pos] == graphemes.Space {
			pos++
			continue
		}
		end := boundary(sentence, pos)
		size := longestMatch(sentence, pos, min(limit, end-pos), dict)
		if size == 0 {
			size = 1
		}
		out = append(out, sentence.Slice(pos, pos+size))
		pos += size
	}

	return out, nil
}

// boundary returns the index of the next Space at or after pos, or the
// sentence length.
func boundary(sentence graphemes.Graphemes, pos int) int {
	for i := pos; i < len(sentence); i++ {
		if sentence[i] == graphemes.Space {
			return i
		}
	}

	return len(sentence)
}

// longestMatch returns the length of the longest dictionary word starting
// at pos, trying lengths upTo..1, or 0 when none matches.
func longestMatch(sentence graphemes.Graphemes, pos, upTo int, dict Dictionary) int {
	for i := upTo; i >= 1; i-- {
		if dict.Contains(sentence[pos : pos+i]) {
			return i
		}
	}

	return 0
}
