// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package discrim

// Discriminator partitions a keyed sequence into groups of values without
// comparing keys with each other.
//
// Discriminate consumes pairs lazily and returns the groups in an order
// defined by the strategy. Values are never inspected. Within a group,
// values keep their input order. A Discriminator holds no per-call state
// and may be reused.
type Discriminator[K, V any] interface {
	Discriminate(pairs Iter[Pair[K, V]]) *Groups[V]
}

// DiscriminatorFunc adapts a function into a Discriminator.
type DiscriminatorFunc[K, V any] func(pairs Iter[Pair[K, V]]) *Groups[V]

// Discriminate calls f(pairs).
func (f DiscriminatorFunc[K, V]) Discriminate(pairs Iter[Pair[K, V]]) *Groups[V] {
	return f(pairs)
}

// GroupSlice discriminates a slice of pairs and collects the groups.
func GroupSlice[K, V any](d Discriminator[K, V], pairs []Pair[K, V]) [][]V {
	return CollectGroups(d.Discriminate(FromSlice(pairs)))
}

// oneFront is the size ≤ 1 fast path taking the element from the front.
func oneFront[K, V any](pairs Iter[Pair[K, V]]) *Groups[V] {
	p, ok := pairs.Next()
	return single(p.Snd, ok)
}

// oneBack is the size ≤ 1 fast path taking the element from the back.
func oneBack[K, V any](pairs Iter[Pair[K, V]]) *Groups[V] {
	p, ok := pairs.NextBack()
	return single(p.Snd, ok)
}

// snd projects the value of a pair.
func snd[K, V any](p Pair[K, V]) V { return p.Snd }
