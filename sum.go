// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package discrim

// Bias selects which side of a Sum or Product comes first.
type Bias uint8

const (
	// LeftBiased emits (or discriminates) the left side first.
	LeftBiased Bias = iota
	// RightBiased emits (or discriminates) the right side first.
	RightBiased
)

// String returns the bias name.
func (b Bias) String() string {
	if b == RightBiased {
		return "right"
	}
	return "left"
}

// Sum discriminates Either[J, K] keys: Left keys with one discriminator,
// Right keys with another. The two group sequences are concatenated in
// bias order, so no Left group and Right group are ever merged.
type Sum[J, K, V any] struct {
	left    Discriminator[J, V]
	right   Discriminator[K, V]
	bias    Bias
	sharing Sharing
}

// SumLeft yields every Left group before every Right group.
func SumLeft[J, K, V any](l Discriminator[J, V], r Discriminator[K, V]) *Sum[J, K, V] {
	return SumWith(l, r, LeftBiased, Exclusive)
}

// SumRight yields every Right group before every Left group.
func SumRight[J, K, V any](l Discriminator[J, V], r Discriminator[K, V]) *Sum[J, K, V] {
	return SumWith(l, r, RightBiased, Exclusive)
}

// SumWith builds a Sum with an explicit bias and split sharing mode.
// Synchronized is only needed when the resulting groups are handed to
// different goroutines while both sides are still being drained.
func SumWith[J, K, V any](l Discriminator[J, V], r Discriminator[K, V], bias Bias, sharing Sharing) *Sum[J, K, V] {
	return &Sum[J, K, V]{left: l, right: r, bias: bias, sharing: sharing}
}

// Bias returns the emission order.
func (s *Sum[J, K, V]) Bias() Bias { return s.bias }

// Discriminate implements Discriminator.
//
// The input is split by tag without being materialised. Each side is
// discriminated only when a pull first reaches its groups; items of the
// other tag met on the way are parked in the split buffer.
func (s *Sum[J, K, V]) Discriminate(pairs Iter[Pair[Either[J, K], V]]) *Groups[V] {
	if atMostOne(pairs) {
		return oneBack(pairs)
	}
	tagged := &mapIter[Pair[Either[J, K], V], Either[Pair[J, V], Pair[K, V]]]{
		src: pairs,
		f:   distribute[J, K, V],
	}
	lh, rh := SplitEither(tagged, s.sharing)
	left := deferIter(func() Iter[*Group[V]] { return s.left.Discriminate(lh) })
	right := deferIter(func() Iter[*Group[V]] { return s.right.Discriminate(rh) })
	if s.bias == RightBiased {
		return &Groups[V]{impl: &opaqueGroups[V]{inner: Chain[*Group[V]](right, left)}}
	}
	return &Groups[V]{impl: &opaqueGroups[V]{inner: Chain[*Group[V]](left, right)}}
}
