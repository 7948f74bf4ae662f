// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package discrim_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/discrim"
)

var abcd = []discrim.Pair[int, string]{
	{Fst: 0, Snd: "a"},
	{Fst: 2, Snd: "b"},
	{Fst: 0, Snd: "c"},
	{Fst: 1, Snd: "d"},
}

func TestNaturalGroupsInKeyOrder(t *testing.T) {
	got := discrim.GroupSlice[int, string](discrim.Natural[string](3), abcd)
	assert.Equal(t, [][]string{{"a", "c"}, {"d"}, {"b"}}, got)
}

func TestBoundedIntIsNatural(t *testing.T) {
	d := discrim.BoundedInt[string](3)
	assert.Equal(t, 3, d.Limit())
	assert.False(t, d.Unchecked())
	got := discrim.GroupSlice[int, string](d, abcd)
	assert.Equal(t, [][]string{{"a", "c"}, {"d"}, {"b"}}, got)
}

func TestNaturalSkipsEmptyBuckets(t *testing.T) {
	pairs := []discrim.Pair[int, string]{{Fst: 9, Snd: "x"}, {Fst: 3, Snd: "y"}, {Fst: 9, Snd: "z"}}
	got := discrim.GroupSlice[int, string](discrim.Natural[string](10), pairs)
	assert.Equal(t, [][]string{{"y"}, {"x", "z"}}, got)
}

func TestNaturalBackEqualsReversedFront(t *testing.T) {
	d := discrim.Natural[string](3)
	back := discrim.CollectGroupsBack(d.Discriminate(discrim.FromSlice(abcd)))
	assert.Equal(t, [][]string{{"b"}, {"d"}, {"a", "c"}}, back)
}

func TestNaturalMixedEnds(t *testing.T) {
	d := discrim.Natural[string](3)
	gs := d.Discriminate(discrim.FromSlice(abcd))

	last, ok := gs.NextBack()
	require.True(t, ok)
	assert.Equal(t, []string{"b"}, discrim.CollectGroup(last))

	first, ok := gs.Next()
	require.True(t, ok)
	assert.Equal(t, []string{"a", "c"}, discrim.CollectGroup(first))

	mid, ok := gs.NextBack()
	require.True(t, ok)
	assert.Equal(t, []string{"d"}, discrim.CollectGroup(mid))

	_, ok = gs.Next()
	assert.False(t, ok)
	_, ok = gs.NextBack()
	assert.False(t, ok)
}

func TestNaturalGroupPulledFromBothEnds(t *testing.T) {
	pairs := []discrim.Pair[int, int]{{Fst: 1, Snd: 1}, {Fst: 1, Snd: 2}, {Fst: 1, Snd: 3}, {Fst: 0, Snd: 0}}
	gs := discrim.Natural[int](2).Discriminate(discrim.FromSlice(pairs))
	_, _ = gs.Next()
	g, ok := gs.Next()
	require.True(t, ok)

	lo, hi, bounded := g.SizeHint()
	assert.Equal(t, []int{3, 3}, []int{lo, hi})
	assert.True(t, bounded)

	v, _ := g.NextBack()
	assert.Equal(t, 3, v)
	v, _ = g.Next()
	assert.Equal(t, 1, v)
	v, _ = g.Next()
	assert.Equal(t, 2, v)
	_, ok = g.NextBack()
	assert.False(t, ok)
}

func TestNaturalIsLazy(t *testing.T) {
	src := newCountingSource(abcd)
	gs := discrim.Natural[string](3).Discriminate(src)
	assert.Zero(t, src.pulls, "buckets filled before the first pull")
	assert.False(t, gs.Spent())

	lo, hi, bounded := gs.SizeHint()
	assert.Equal(t, 0, lo)
	assert.Equal(t, 3, hi)
	assert.True(t, bounded)

	_, ok := gs.Next()
	require.True(t, ok)
	assert.True(t, gs.Spent())
	assert.Equal(t, len(abcd)+1, src.pulls)
}

func TestNaturalOutOfRangePanics(t *testing.T) {
	pairs := []discrim.Pair[int, string]{{Fst: 0, Snd: "a"}, {Fst: 3, Snd: "b"}}
	gs := discrim.Natural[string](3).Discriminate(discrim.FromSlice(pairs))
	assert.PanicsWithValue(t, "discrim: key 3 out of range [0, 3)", func() { _, _ = gs.Next() })

	neg := []discrim.Pair[int, string]{{Fst: -1, Snd: "a"}, {Fst: 0, Snd: "b"}}
	gs = discrim.Natural[string](3).Discriminate(discrim.FromSlice(neg))
	assert.Panics(t, func() { _, _ = gs.Next() })
}

func TestNaturalRejectsSmallLimits(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		assert.Panics(t, func() { discrim.Natural[int](n) }, "Natural(%d)", n)
		assert.Panics(t, func() { discrim.UncheckedNatural[int](n) }, "UncheckedNatural(%d)", n)
	}
	assert.NotPanics(t, func() { discrim.Natural[int](2) })
}

func TestUncheckedNaturalMatchesChecked(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 0))
	checked := discrim.Natural[int](17)
	unchecked := discrim.UncheckedNatural[int](17)
	require.True(t, unchecked.Unchecked())
	for range propertyN {
		pairs := randPairs(rng, rng.IntN(64), 17)
		want := discrim.GroupSlice[int, int](checked, pairs)
		got := discrim.GroupSlice[int, int](unchecked, pairs)
		if !assert.Equal(t, want, got) {
			return
		}
	}
}

func TestNaturalLastBucketInRange(t *testing.T) {
	for _, d := range []*discrim.Bounded[string]{discrim.Natural[string](4), discrim.UncheckedNatural[string](4)} {
		pairs := []discrim.Pair[int, string]{{Fst: 3, Snd: "last"}, {Fst: 0, Snd: "first"}}
		got := discrim.GroupSlice[int, string](d, pairs)
		assert.Equal(t, [][]string{{"first"}, {"last"}}, got, "unchecked=%v", d.Unchecked())
	}
}

func TestNaturalFold(t *testing.T) {
	gs := discrim.Natural[string](3).Discriminate(discrim.FromSlice(abcd))
	sizes := discrim.FoldGroups(gs, []int(nil), func(acc []int, g *discrim.Group[string]) []int {
		return append(acc, discrim.FoldGroup(g, 0, func(n int, _ string) int { return n + 1 }))
	})
	assert.Equal(t, []int{2, 1, 1}, sizes)
	_, ok := gs.Next()
	assert.False(t, ok, "fold drains the sequence")
}
