// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package discrim_test

import (
	"math/rand/v2"
	"slices"

	"code.hybscloud.com/discrim"
)

const propertyN = 300

// randPairs returns n pairs with keys in [0, limit) and values equal to
// their input position, so order and conservation are easy to check.
func randPairs(rng *rand.Rand, n, limit int) []discrim.Pair[int, int] {
	out := make([]discrim.Pair[int, int], n)
	for i := range out {
		out[i] = discrim.MakePair(rng.IntN(limit), i)
	}
	return out
}

// randEither returns n pairs with Either keys; Left keys in [0, ll),
// Right keys in [0, rl).
func randEither(rng *rand.Rand, n, ll, rl int) []discrim.Pair[discrim.Either[int, int], int] {
	out := make([]discrim.Pair[discrim.Either[int, int], int], n)
	for i := range out {
		var k discrim.Either[int, int]
		if rng.IntN(2) == 0 {
			k = discrim.Left[int, int](rng.IntN(ll))
		} else {
			k = discrim.Right[int](rng.IntN(rl))
		}
		out[i] = discrim.MakePair(k, i)
	}
	return out
}

// randTuples returns n pairs keyed by (j, k) with j in [0, jl), k in [0, kl).
func randTuples(rng *rand.Rand, n, jl, kl int) []discrim.Pair[discrim.Pair[int, int], int] {
	out := make([]discrim.Pair[discrim.Pair[int, int], int], n)
	for i := range out {
		out[i] = discrim.MakePair(discrim.MakePair(rng.IntN(jl), rng.IntN(kl)), i)
	}
	return out
}

// flatten concatenates groups.
func flatten[V any](groups [][]V) []V {
	var out []V
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// sameMultiset reports whether the values of groups are exactly 0..n-1,
// each once.
func sameMultiset(groups [][]int, n int) bool {
	all := flatten(groups)
	if len(all) != n {
		return false
	}
	slices.Sort(all)
	for i, v := range all {
		if v != i {
			return false
		}
	}
	return true
}

// ascendingWithin reports whether every group lists input positions in
// increasing order (stable partition).
func ascendingWithin(groups [][]int) bool {
	for _, g := range groups {
		if !slices.IsSorted(g) {
			return false
		}
	}
	return true
}

// reversed returns a reversed copy of the outer slice.
func reversed[V any](groups [][]V) [][]V {
	out := slices.Clone(groups)
	slices.Reverse(out)
	return out
}

// countingSource wraps a slice and counts pulls from either end.
type countingSource[T any] struct {
	discrim.Iter[T]
	pulls int
}

func newCountingSource[T any](s []T) *countingSource[T] {
	return &countingSource[T]{Iter: discrim.FromSlice(s)}
}

func (c *countingSource[T]) Next() (T, bool) {
	c.pulls++
	return c.Iter.Next()
}

func (c *countingSource[T]) NextBack() (T, bool) {
	c.pulls++
	return c.Iter.NextBack()
}

// hiddenSize wraps a slice but reports an unbounded size hint, which
// disables the size ≤ 1 fast path.
type hiddenSize[T any] struct {
	discrim.Iter[T]
}

func hide[T any](s []T) discrim.Iter[T] {
	return hiddenSize[T]{Iter: discrim.FromSlice(s)}
}

func (hiddenSize[T]) SizeHint() (int, int, bool) { return 0, 0, false }
