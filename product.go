// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package discrim

// LeftProduct discriminates Pair[J, K] keys by J first, then by K inside
// every J class: groups come out in lexicographic (J, K) order of the two
// component discriminators.
//
// The J stage carries Pair[K, V] values, so it needs a discriminator of
// that value type.
type LeftProduct[J, K, V any] struct {
	left  Discriminator[J, Pair[K, V]]
	right Discriminator[K, V]
}

// RightProduct discriminates Pair[J, K] keys by K first, then by J:
// groups come out in lexicographic (K, J) order.
type RightProduct[J, K, V any] struct {
	left  Discriminator[J, V]
	right Discriminator[K, Pair[J, V]]
}

// ProductLeft builds the left-biased product of l and r.
// Nesting products discriminates tuples of any arity.
func ProductLeft[J, K, V any](l Discriminator[J, Pair[K, V]], r Discriminator[K, V]) *LeftProduct[J, K, V] {
	return &LeftProduct[J, K, V]{left: l, right: r}
}

// ProductRight builds the right-biased product of l and r.
func ProductRight[J, K, V any](l Discriminator[J, V], r Discriminator[K, Pair[J, V]]) *RightProduct[J, K, V] {
	return &RightProduct[J, K, V]{left: l, right: r}
}

// Bias returns LeftBiased.
func (*LeftProduct[J, K, V]) Bias() Bias { return LeftBiased }

// Bias returns RightBiased.
func (*RightProduct[J, K, V]) Bias() Bias { return RightBiased }

// Discriminate implements Discriminator.
func (p *LeftProduct[J, K, V]) Discriminate(pairs Iter[Pair[Pair[J, K], V]]) *Groups[V] {
	if atMostOne(pairs) {
		return oneBack(pairs)
	}
	return nest(p.left, p.right, pairs)
}

// Discriminate implements Discriminator.
func (p *RightProduct[J, K, V]) Discriminate(pairs Iter[Pair[Pair[J, K], V]]) *Groups[V] {
	if atMostOne(pairs) {
		return oneBack(pairs)
	}
	swapped := &mapIter[Pair[Pair[J, K], V], Pair[Pair[K, J], V]]{src: pairs, f: swapKey[J, K, V]}
	return nest(p.right, p.left, swapped)
}

// nest realises 2-D bucketing as nested 1-D bucketing: outer groups the
// (B, V) pairs by A, then every outer group is discriminated by B on
// demand, from whichever end the pull comes.
func nest[A, B, V any](outer Discriminator[A, Pair[B, V]], inner Discriminator[B, V], pairs Iter[Pair[Pair[A, B], V]]) *Groups[V] {
	stripped := &mapIter[Pair[Pair[A, B], V], Pair[A, Pair[B, V]]]{src: pairs, f: reassoc[A, B, V]}
	outerGroups := outer.Discriminate(stripped)
	return &Groups[V]{impl: &opaqueGroups[V]{inner: &flatMapIter[*Group[Pair[B, V]], *Group[V]]{
		src: outerGroups,
		f: func(g *Group[Pair[B, V]]) Iter[*Group[V]] {
			return inner.Discriminate(g)
		},
	}}}
}

// reassoc turns ((a, b), v) into (a, (b, v)).
func reassoc[A, B, V any](p Pair[Pair[A, B], V]) Pair[A, Pair[B, V]] {
	return Pair[A, Pair[B, V]]{Fst: p.Fst.Fst, Snd: Pair[B, V]{Fst: p.Fst.Snd, Snd: p.Snd}}
}

// swapKey turns ((j, k), v) into ((k, j), v).
func swapKey[J, K, V any](p Pair[Pair[J, K], V]) Pair[Pair[K, J], V] {
	return Pair[Pair[K, J], V]{Fst: Pair[K, J]{Fst: p.Fst.Snd, Snd: p.Fst.Fst}, Snd: p.Snd}
}
