// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package discrim_test

import (
	"math/rand/v2"
	"slices"
	"testing"

	"code.hybscloud.com/discrim"
)

const benchN = 1 << 14

func benchPairs(limit int) []discrim.Pair[int, int] {
	return randPairs(rand.New(rand.NewPCG(1, 2)), benchN, limit)
}

// BenchmarkNatural measures a checked 256-bucket discrimination.
func BenchmarkNatural(b *testing.B) {
	pairs := benchPairs(256)
	d := discrim.Natural[int](256)
	for b.Loop() {
		_ = discrim.GroupSlice[int, int](d, pairs)
	}
}

// BenchmarkUncheckedNatural measures the same with validation skipped.
func BenchmarkUncheckedNatural(b *testing.B) {
	pairs := benchPairs(256)
	d := discrim.UncheckedNatural[int](256)
	for b.Loop() {
		_ = discrim.GroupSlice[int, int](d, pairs)
	}
}

// BenchmarkUint8 measures the fixed-width path through Rename.
func BenchmarkUint8(b *testing.B) {
	src := benchPairs(256)
	pairs := make([]discrim.Pair[uint8, int], len(src))
	for i, p := range src {
		pairs[i] = discrim.MakePair(uint8(p.Fst), p.Snd)
	}
	d := discrim.Uint8[int]()
	for b.Loop() {
		_ = discrim.GroupSlice[uint8, int](d, pairs)
	}
}

// BenchmarkStableSortBaseline groups the same input by sorting, for
// comparison with BenchmarkNatural.
func BenchmarkStableSortBaseline(b *testing.B) {
	pairs := benchPairs(256)
	for b.Loop() {
		s := slices.Clone(pairs)
		slices.SortStableFunc(s, func(x, y discrim.Pair[int, int]) int { return x.Fst - y.Fst })
	}
}

// BenchmarkInvert measures a reversed bucket table.
func BenchmarkInvert(b *testing.B) {
	pairs := benchPairs(256)
	d := discrim.Invert[int, int](discrim.Natural[int](256))
	for b.Loop() {
		_ = discrim.GroupSlice[int, int](d, pairs)
	}
}

// BenchmarkSum measures a split over two 128-bucket tables.
func BenchmarkSum(b *testing.B) {
	pairs := randEither(rand.New(rand.NewPCG(1, 2)), benchN, 128, 128)
	d := discrim.SumLeft[int, int, int](discrim.Natural[int](128), discrim.Natural[int](128))
	for b.Loop() {
		_ = discrim.GroupSlice[discrim.Either[int, int], int](d, pairs)
	}
}

// BenchmarkSumSynchronized measures the locking overhead of a split.
func BenchmarkSumSynchronized(b *testing.B) {
	pairs := randEither(rand.New(rand.NewPCG(1, 2)), benchN, 128, 128)
	d := discrim.SumWith[int, int, int](discrim.Natural[int](128), discrim.Natural[int](128), discrim.LeftBiased, discrim.Synchronized)
	for b.Loop() {
		_ = discrim.GroupSlice[discrim.Either[int, int], int](d, pairs)
	}
}

// BenchmarkProduct measures 16x16 nested bucketing.
func BenchmarkProduct(b *testing.B) {
	pairs := randTuples(rand.New(rand.NewPCG(1, 2)), benchN, 16, 16)
	d := discrim.ProductLeft[int, int, int](discrim.Natural[discrim.Pair[int, int]](16), discrim.Natural[int](16))
	for b.Loop() {
		_ = discrim.GroupSlice[discrim.Pair[int, int], int](d, pairs)
	}
}

// BenchmarkSingle measures the size ≤ 1 fast path.
func BenchmarkSingle(b *testing.B) {
	one := []discrim.Pair[uint16, int]{{Fst: 9, Snd: 1}}
	d := discrim.Uint16[int]()
	for b.Loop() {
		_ = discrim.GroupSlice[uint16, int](d, one)
	}
}

// BenchmarkSplit measures draining both sides of a split alternately.
func BenchmarkSplit(b *testing.B) {
	src := make([]discrim.Either[int, int], benchN)
	for i := range src {
		if i%2 == 0 {
			src[i] = discrim.Left[int, int](i)
		} else {
			src[i] = discrim.Right[int](i)
		}
	}
	for b.Loop() {
		l, r := discrim.SplitEither(discrim.FromSlice(src), discrim.Exclusive)
		for {
			_, lok := l.Next()
			_, rok := r.NextBack()
			if !lok && !rok {
				break
			}
		}
	}
}
