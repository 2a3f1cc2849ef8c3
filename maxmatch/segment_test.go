// SPDX-License-Identifier: MIT

package maxmatch_test

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvtext/graphemes"
	"github.com/katalvlaran/lvtext/maxmatch"
)

func chineseDict() *maxmatch.Set {
	return maxmatch.NewSet("他", "特别", "喜欢", "北京烤鸭")
}

// TestSegment_Scenarios covers dictionary hits, fallbacks and empty input.
func TestSegment_Scenarios(t *testing.T) {
	cases := []struct {
		name     string
		sentence string
		dict     *maxmatch.Set
		want     string
	}{
		{"Chinese", "他特别喜欢北京烤鸭", chineseDict(), "他 特别 喜欢 北京烤鸭"},
		{"NoMatch", "english", chineseDict(), "e n g l i s h"},
		{"Empty", "", chineseDict(), ""},
		{"SingleGrapheme", "x", chineseDict(), "x"},
		{"Mixed", "他喜欢go", chineseDict(), "他 喜欢 g o"},
		{"LongestWins", "abcd", maxmatch.NewSet("a", "ab", "abc"), "abc d"},
		{"GreedyNotOptimal", "wecanonlysee", maxmatch.NewSet("we", "canon", "can", "only", "see"), "we canon l y see"},
		{"EmptyDictionary", "ab", maxmatch.NewSet(), "a b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := maxmatch.Segment(graphemes.New(tc.sentence), tc.dict)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

// TestSegment_SpaceIsSingleElement verifies the joiner is one Space cluster.
func TestSegment_SpaceIsSingleElement(t *testing.T) {
	got := maxmatch.Segment(graphemes.New("他特别"), chineseDict())
	assert.Equal(t, graphemes.Graphemes{"他", graphemes.Space, "特", "别"}, got)
}

// TestTokens returns the tokens before joining.
func TestTokens(t *testing.T) {
	toks := maxmatch.Tokens(graphemes.New("他特别ok"), chineseDict())
	got := make([]string, len(toks))
	for i, tok := range toks {
		got[i] = tok.String()
	}
	assert.Equal(t, []string{"他", "特别", "o", "k"}, got)
	assert.Empty(t, maxmatch.Tokens(graphemes.New(""), chineseDict()))
}

// TestSegment_ContentPreserved checks that removing spaces restores input,
// and that re-segmenting the output is idempotent.
func TestSegment_ContentPreserved(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	dict := maxmatch.NewSet("ab", "abc", "ca", "b", "北京")
	alphabet := []string{"a", "b", "c", "北", "京"}
	for n := 0; n < 200; n++ {
		var sb strings.Builder
		for k := rng.Intn(15); k > 0; k-- {
			sb.WriteString(alphabet[rng.Intn(len(alphabet))])
		}
		in := graphemes.New(sb.String())
		out := maxmatch.Segment(in, dict)
		assert.Equal(t, in.String(), strings.ReplaceAll(out.String(), " ", ""))
	}

	for _, sentence := range []string{"他特别喜欢北京烤鸭", "他喜欢go", "english", ""} {
		once := maxmatch.Segment(graphemes.New(sentence), chineseDict())
		twice := maxmatch.Segment(once, chineseDict())
		assert.True(t, once.Equal(twice), "%q re-segmented to %q", once.String(), twice.String())
	}
}

// TestSegment_SpacesAreBoundaries keeps matches inside space-separated runs
// and collapses repeated spaces into one joiner.
func TestSegment_SpacesAreBoundaries(t *testing.T) {
	dict := maxmatch.NewSet("ab", "a b")
	assert.Equal(t, "a b", maxmatch.Segment(graphemes.New("a b"), dict).String())
	assert.Equal(t, "ab c", maxmatch.Segment(graphemes.New("  ab   c "), dict).String())

	toks := maxmatch.Tokens(graphemes.New("他 特别"), chineseDict())
	require.Len(t, toks, 2)
	assert.Equal(t, "特别", toks[1].String())
}

// TestSegment_LongInputNoRecursion segments a long unmatched input.
func TestSegment_LongInputNoRecursion(t *testing.T) {
	in := graphemes.New(strings.Repeat("z", 200000))
	toks := maxmatch.Tokens(in, maxmatch.NewSet("北京"))
	require.Len(t, toks, 200000)
}

// TestSegmentContext_Cancelled stops before producing any token.
func TestSegmentContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	out, err := maxmatch.SegmentContext(ctx, graphemes.New("他特别"), chineseDict())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, out)

	out, err = maxmatch.SegmentContext(context.Background(), graphemes.New("他特别"), chineseDict())
	require.NoError(t, err)
	assert.Equal(t, "他 特别", out.String())
}

// unbounded hides MaxWordLen so every prefix length is probed.
type unbounded struct{ set *maxmatch.Set }

func (u unbounded) Contains(w graphemes.Graphemes) bool { return u.set.Contains(w) }

// TestSegment_BoundDoesNotChangeResult compares bounded and unbounded probing.
func TestSegment_BoundDoesNotChangeResult(t *testing.T) {
	dict := chineseDict()
	for _, s := range []string{"他特别喜欢北京烤鸭", "english", "北京烤鸭他", ""} {
		in := graphemes.New(s)
		assert.Equal(t, maxmatch.Segment(in, dict), maxmatch.Segment(in, unbounded{dict}), "input %q", s)
	}
}
