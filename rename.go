// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package discrim

// Renamed discriminates keys of type J by rewriting them to K and
// delegating to an inner discriminator over K.
type Renamed[J, K, V any] struct {
	f     func(J) K
	inner Discriminator[K, V]
}

// Rename builds a discriminator over J from one over K and a key map.
// The inner discriminator's groups are returned as they are: values are
// untouched and groups are not flattened.
//
// Rename(Identity[K], d) groups exactly like d.
func Rename[J, K, V any](f func(J) K, d Discriminator[K, V]) *Renamed[J, K, V] {
	return &Renamed[J, K, V]{f: f, inner: d}
}

// MapKey is Rename.
func MapKey[J, K, V any](f func(J) K, d Discriminator[K, V]) *Renamed[J, K, V] {
	return Rename(f, d)
}

// Inner returns the wrapped discriminator.
func (r *Renamed[J, K, V]) Inner() Discriminator[K, V] { return r.inner }

// Discriminate implements Discriminator.
func (r *Renamed[J, K, V]) Discriminate(pairs Iter[Pair[J, V]]) *Groups[V] {
	if atMostOne(pairs) {
		return oneBack(pairs)
	}
	return r.inner.Discriminate(&rekeyIter[J, K, V]{src: pairs, f: r.f})
}

// rekeyIter rewrites the key of every pair.
type rekeyIter[J, K, V any] struct {
	src Iter[Pair[J, V]]
	f   func(J) K
}

func (it *rekeyIter[J, K, V]) Next() (Pair[K, V], bool) {
	p, ok := it.src.Next()
	if !ok {
		return Pair[K, V]{}, false
	}
	return Pair[K, V]{Fst: it.f(p.Fst), Snd: p.Snd}, true
}

func (it *rekeyIter[J, K, V]) NextBack() (Pair[K, V], bool) {
	p, ok := it.src.NextBack()
	if !ok {
		return Pair[K, V]{}, false
	}
	return Pair[K, V]{Fst: it.f(p.Fst), Snd: p.Snd}, true
}

func (it *rekeyIter[J, K, V]) SizeHint() (int, int, bool) {
	return it.src.SizeHint()
}

// Identity returns its argument. Rename(Identity[K], d) is a no-op.
func Identity[A any](a A) A { return a }
