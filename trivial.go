// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package discrim

// Trivial is the discriminator that does not discriminate: every key falls
// into one class, so the whole input comes back as a single group in
// input order. It is the fallback for key types with no decomposition.
//
// The zero value is ready to use.
type Trivial[K, V any] struct{}

// Discriminate implements Discriminator.
// The input is passed through, not buffered.
func (Trivial[K, V]) Discriminate(pairs Iter[Pair[K, V]]) *Groups[V] {
	if atMostOne(pairs) {
		return oneFront(pairs)
	}
	return &Groups[V]{impl: &passGroups[V]{
		src: &mapIter[Pair[K, V], V]{src: pairs, f: snd[K, V]},
	}}
}
