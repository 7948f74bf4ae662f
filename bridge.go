// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package discrim

import "iter"

// All converts a pull sequence into a range-over-func sequence that
// drains it from the front. Breaking out of the loop leaves the rest of
// it unconsumed.
//
// Example:
//
//	gs := discrim.Natural[string](3).Discriminate(pairs)
//	for g := range discrim.All(gs) {
//	    for v := range discrim.All(g) {
//	        fmt.Println(v)
//	    }
//	}
func All[T any](it Iter[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Backward is All pulling from the back.
func Backward[T any](it Iter[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := it.NextBack()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Each numbers the groups of gs from zero, front to back.
func Each[V any](gs *Groups[V]) iter.Seq2[int, *Group[V]] {
	return func(yield func(int, *Group[V]) bool) {
		for i := 0; ; i++ {
			g, ok := gs.Next()
			if !ok || !yield(i, g) {
				return
			}
		}
	}
}

// FromSeq converts a range-over-func sequence into a front-only pull
// sequence. stop releases the underlying iterator and must be called if
// the result is not drained.
func FromSeq[T any](seq iter.Seq[T]) (it Iter[T], stop func()) {
	next, stop := iter.Pull(seq)
	return &funcIter[T]{next: next}, stop
}

// FromSeq2 converts a keyed range-over-func sequence into a front-only
// pull sequence of pairs. See FromSeq.
func FromSeq2[K, V any](seq iter.Seq2[K, V]) (it Iter[Pair[K, V]], stop func()) {
	next, stop := iter.Pull2(seq)
	return &funcIter[Pair[K, V]]{next: func() (Pair[K, V], bool) {
		k, v, ok := next()
		return Pair[K, V]{Fst: k, Snd: v}, ok
	}}, stop
}
