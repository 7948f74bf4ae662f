// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package discrim

// Inverted yields the groups of an inner discriminator back to front.
// Group order is reversed; the order of values inside each group is not.
type Inverted[K, V any] struct {
	inner Discriminator[K, V]
}

// Invert reverses the group order of d.
// Invert(Invert(d)) groups exactly like d.
func Invert[K, V any](d Discriminator[K, V]) *Inverted[K, V] {
	return &Inverted[K, V]{inner: d}
}

// Inner returns the wrapped discriminator.
func (d *Inverted[K, V]) Inner() Discriminator[K, V] { return d.inner }

// Discriminate implements Discriminator.
// The size ≤ 1 fast path takes its element from the back.
func (d *Inverted[K, V]) Discriminate(pairs Iter[Pair[K, V]]) *Groups[V] {
	if atMostOne(pairs) {
		return oneBack(pairs)
	}
	gs := d.inner.Discriminate(pairs)
	if inv, ok := gs.impl.(*invertGroups[V]); ok && !gs.started {
		return inv.inner
	}
	return &Groups[V]{impl: &invertGroups[V]{inner: gs}}
}
