// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package discrim

import "math"

// Iter is a single-pass, pull-based sequence that can be consumed from
// either end.
//
// Next pulls from the front and NextBack from the back; both return
// (zero, false) once no element remains between the two cursors.
// Implementations are fused: after returning false they keep returning
// false from both ends.
//
// SizeHint reports a lower bound and, when bounded is true, an upper bound
// on the number of remaining elements.
type Iter[T any] interface {
	Next() (T, bool)
	NextBack() (T, bool)
	SizeHint() (lower, upper int, bounded bool)
}

// atMostOne reports whether it is statically known to hold zero or one
// element. Discriminators use it to skip bucket allocation.
func atMostOne[T any](it Iter[T]) bool {
	_, upper, bounded := it.SizeHint()
	return bounded && upper <= 1
}

// addSat adds two sizes, saturating at math.MaxInt.
func addSat(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// sliceIter walks a slice from both ends.
type sliceIter[T any] struct {
	s []T
}

// FromSlice returns a double-ended Iter over s with an exact size hint.
// The slice is not copied; elements are cleared from the iterator's view
// as they are pulled, not from s.
func FromSlice[T any](s []T) Iter[T] {
	return &sliceIter[T]{s: s}
}

// Empty returns an Iter with no elements.
func Empty[T any]() Iter[T] {
	return &sliceIter[T]{}
}

// onceIter yields one element from whichever end is pulled first.
type onceIter[T any] struct {
	v    T
	done bool
}

// Once returns an Iter holding only v.
func Once[T any](v T) Iter[T] {
	return &onceIter[T]{v: v}
}

func (it *onceIter[T]) Next() (T, bool) {
	var zero T
	if it.done {
		return zero, false
	}
	v := it.v
	it.v, it.done = zero, true
	return v, true
}

func (it *onceIter[T]) NextBack() (T, bool) { return it.Next() }

func (it *onceIter[T]) SizeHint() (int, int, bool) {
	if it.done {
		return 0, 0, true
	}
	return 1, 1, true
}

func (it *sliceIter[T]) Next() (T, bool) {
	if len(it.s) == 0 {
		var zero T
		return zero, false
	}
	v := it.s[0]
	it.s = it.s[1:]
	return v, true
}

func (it *sliceIter[T]) NextBack() (T, bool) {
	n := len(it.s)
	if n == 0 {
		var zero T
		return zero, false
	}
	v := it.s[n-1]
	it.s = it.s[:n-1]
	return v, true
}

func (it *sliceIter[T]) SizeHint() (int, int, bool) {
	return len(it.s), len(it.s), true
}

// zipIter pairs keys[i] with values[i].
type zipIter[K, V any] struct {
	keys   []K
	values []V
}

// Zip returns a double-ended Iter of pairs built from two parallel slices.
// The shorter slice determines the length.
func Zip[K, V any](keys []K, values []V) Iter[Pair[K, V]] {
	n := min(len(keys), len(values))
	return &zipIter[K, V]{keys: keys[:n], values: values[:n]}
}

func (it *zipIter[K, V]) Next() (Pair[K, V], bool) {
	if len(it.keys) == 0 {
		return Pair[K, V]{}, false
	}
	p := Pair[K, V]{Fst: it.keys[0], Snd: it.values[0]}
	it.keys, it.values = it.keys[1:], it.values[1:]
	return p, true
}

func (it *zipIter[K, V]) NextBack() (Pair[K, V], bool) {
	n := len(it.keys)
	if n == 0 {
		return Pair[K, V]{}, false
	}
	p := Pair[K, V]{Fst: it.keys[n-1], Snd: it.values[n-1]}
	it.keys, it.values = it.keys[:n-1], it.values[:n-1]
	return p, true
}

func (it *zipIter[K, V]) SizeHint() (int, int, bool) {
	return len(it.keys), len(it.keys), true
}

// funcIter adapts a front-only pull function.
type funcIter[T any] struct {
	next func() (T, bool)
	done bool
}

// FromFunc adapts a front-only pull function into an Iter.
//
// The result has an unknown size and cannot be consumed from the back:
// NextBack panics while the source is live and reports exhaustion once
// the front has drained it. Only front-only strategies (Trivial, Natural,
// Rename, left-biased Sum and Product driven from the front) may consume
// it.
func FromFunc[T any](next func() (T, bool)) Iter[T] {
	return &funcIter[T]{next: next}
}

func (it *funcIter[T]) Next() (T, bool) {
	if it.done {
		var zero T
		return zero, false
	}
	v, ok := it.next()
	if !ok {
		it.done = true
	}
	return v, ok
}

func (it *funcIter[T]) NextBack() (T, bool) {
	if it.done {
		var zero T
		return zero, false
	}
	panic("discrim: source is not double-ended")
}

func (it *funcIter[T]) SizeHint() (int, int, bool) {
	if it.done {
		return 0, 0, true
	}
	return 0, 0, false
}

// mapIter applies f to every element, lazily, from either end.
type mapIter[T, U any] struct {
	src Iter[T]
	f   func(T) U
}

func (it *mapIter[T, U]) Next() (U, bool) {
	v, ok := it.src.Next()
	if !ok {
		var zero U
		return zero, false
	}
	return it.f(v), true
}

func (it *mapIter[T, U]) NextBack() (U, bool) {
	v, ok := it.src.NextBack()
	if !ok {
		var zero U
		return zero, false
	}
	return it.f(v), true
}

func (it *mapIter[T, U]) SizeHint() (int, int, bool) {
	return it.src.SizeHint()
}

// Map returns a lazy Iter applying f to every element of src.
func Map[T, U any](src Iter[T], f func(T) U) Iter[U] {
	return &mapIter[T, U]{src: src, f: f}
}

// chainIter yields a then b; from the back, b then a.
type chainIter[T any] struct {
	a, b Iter[T]
}

// Chain concatenates two sequences.
func Chain[T any](a, b Iter[T]) Iter[T] {
	return &chainIter[T]{a: a, b: b}
}

func (it *chainIter[T]) Next() (T, bool) {
	if v, ok := it.a.Next(); ok {
		return v, true
	}
	return it.b.Next()
}

func (it *chainIter[T]) NextBack() (T, bool) {
	if v, ok := it.b.NextBack(); ok {
		return v, true
	}
	return it.a.NextBack()
}

func (it *chainIter[T]) SizeHint() (int, int, bool) {
	alo, ahi, aok := it.a.SizeHint()
	blo, bhi, bok := it.b.SizeHint()
	return addSat(alo, blo), addSat(ahi, bhi), aok && bok
}

// flatMapIter expands every element of src into a sub-sequence.
// front and back hold the sub-sequences currently being drained from
// each end; an element of src is expanded by exactly one of them.
type flatMapIter[T, U any] struct {
	src   Iter[T]
	f     func(T) Iter[U]
	front Iter[U]
	back  Iter[U]
}

func (it *flatMapIter[T, U]) Next() (U, bool) {
	for {
		if it.front != nil {
			if v, ok := it.front.Next(); ok {
				return v, true
			}
			it.front = nil
		}
		t, ok := it.src.Next()
		if !ok {
			break
		}
		it.front = it.f(t)
	}
	if it.back != nil {
		v, ok := it.back.Next()
		if !ok {
			it.back = nil
		}
		return v, ok
	}
	var zero U
	return zero, false
}

func (it *flatMapIter[T, U]) NextBack() (U, bool) {
	for {
		if it.back != nil {
			if v, ok := it.back.NextBack(); ok {
				return v, true
			}
			it.back = nil
		}
		t, ok := it.src.NextBack()
		if !ok {
			break
		}
		it.back = it.f(t)
	}
	if it.front != nil {
		v, ok := it.front.NextBack()
		if !ok {
			it.front = nil
		}
		return v, ok
	}
	var zero U
	return zero, false
}

func (it *flatMapIter[T, U]) SizeHint() (int, int, bool) {
	var lo, hi int
	bounded := true
	for _, sub := range [2]Iter[U]{it.front, it.back} {
		if sub == nil {
			continue
		}
		l, h, ok := sub.SizeHint()
		lo, hi = addSat(lo, l), addSat(hi, h)
		bounded = bounded && ok
	}
	if _, srcHi, srcOK := it.src.SizeHint(); !srcOK || srcHi > 0 {
		return lo, 0, false
	}
	return lo, hi, bounded
}

// lazyIter defers building its sequence until the first pull from
// either end.
type lazyIter[T any] struct {
	force  func() Iter[T]
	it     Iter[T]
	forced affine
}

func deferIter[T any](force func() Iter[T]) *lazyIter[T] {
	return &lazyIter[T]{force: force}
}

func (l *lazyIter[T]) get() Iter[T] {
	if l.forced.take() {
		l.it = l.force()
		l.force = nil
	}
	return l.it
}

func (l *lazyIter[T]) Next() (T, bool)     { return l.get().Next() }
func (l *lazyIter[T]) NextBack() (T, bool) { return l.get().NextBack() }

func (l *lazyIter[T]) SizeHint() (int, int, bool) {
	if !l.forced.spent() {
		return 0, 0, false
	}
	return l.it.SizeHint()
}

// revIter swaps the ends of an Iter.
type revIter[T any] struct {
	src Iter[T]
}

// Rev returns a view of it that pulls from the back on Next and from the
// front on NextBack.
func Rev[T any](it Iter[T]) Iter[T] {
	if r, ok := it.(*revIter[T]); ok {
		return r.src
	}
	return &revIter[T]{src: it}
}

func (r *revIter[T]) Next() (T, bool)            { return r.src.NextBack() }
func (r *revIter[T]) NextBack() (T, bool)        { return r.src.Next() }
func (r *revIter[T]) SizeHint() (int, int, bool) { return r.src.SizeHint() }

// Collect drains it from the front into a slice.
func Collect[T any](it Iter[T]) []T {
	lo, _, _ := it.SizeHint()
	out := make([]T, 0, lo)
	for {
		v, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// CollectBack drains it from the back into a slice, in pull order.
func CollectBack[T any](it Iter[T]) []T {
	lo, _, _ := it.SizeHint()
	out := make([]T, 0, lo)
	for {
		v, ok := it.NextBack()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}
