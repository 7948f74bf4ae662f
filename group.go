// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package discrim

// Group is one discriminated class: a lazy, single-pass, double-ended
// sequence of the values that share it, in input order.
// A Group handed out by a Groups sequence always holds at least one value.
//
// Group implements Iter[V].
type Group[V any] struct {
	impl groupImpl[V]
}

// groupImpl is the closed set of physical group representations.
// Dispatch uses type switches; the marker method keeps the set closed.
type groupImpl[V any] interface {
	groupImpl()
}

// oneGroup holds a single buffered value.
type oneGroup[V any] struct {
	v  V
	ok bool
}

// passGroup passes raw input through. head and tail are values already
// pulled from src to prove the group non-empty.
type passGroup[V any] struct {
	src     Iter[V]
	head    V
	tail    V
	hasHead bool
	hasTail bool
}

// sliceGroup is a filled bucket.
type sliceGroup[V any] struct {
	vs []V
}

// opaqueGroup boxes an arbitrary value sequence.
type opaqueGroup[V any] struct {
	inner Iter[V]
}

func (*oneGroup[V]) groupImpl()    {}
func (*passGroup[V]) groupImpl()   {}
func (*sliceGroup[V]) groupImpl()  {}
func (*opaqueGroup[V]) groupImpl() {}

// GroupOf boxes an arbitrary value sequence as a Group.
// Callers building custom discriminators must not box empty sequences.
func GroupOf[V any](values Iter[V]) *Group[V] {
	if g, ok := values.(*Group[V]); ok {
		return g
	}
	return &Group[V]{impl: &opaqueGroup[V]{inner: values}}
}

// Next pulls the next value from the front.
func (g *Group[V]) Next() (V, bool) {
	switch r := g.impl.(type) {
	case *oneGroup[V]:
		v, ok := r.v, r.ok
		r.ok = false
		return v, ok
	case *passGroup[V]:
		if r.hasHead {
			r.hasHead = false
			return r.head, true
		}
		if v, ok := r.src.Next(); ok {
			return v, true
		}
		if r.hasTail {
			r.hasTail = false
			return r.tail, true
		}
	case *sliceGroup[V]:
		if len(r.vs) > 0 {
			v := r.vs[0]
			r.vs = r.vs[1:]
			return v, true
		}
	case *opaqueGroup[V]:
		return r.inner.Next()
	}
	var zero V
	return zero, false
}

// NextBack pulls the next value from the back.
func (g *Group[V]) NextBack() (V, bool) {
	switch r := g.impl.(type) {
	case *oneGroup[V]:
		v, ok := r.v, r.ok
		r.ok = false
		return v, ok
	case *passGroup[V]:
		if r.hasTail {
			r.hasTail = false
			return r.tail, true
		}
		if v, ok := r.src.NextBack(); ok {
			return v, true
		}
		if r.hasHead {
			r.hasHead = false
			return r.head, true
		}
	case *sliceGroup[V]:
		if n := len(r.vs); n > 0 {
			v := r.vs[n-1]
			r.vs = r.vs[:n-1]
			return v, true
		}
	case *opaqueGroup[V]:
		return r.inner.NextBack()
	}
	var zero V
	return zero, false
}

// SizeHint reports bounds on the number of remaining values.
func (g *Group[V]) SizeHint() (int, int, bool) {
	switch r := g.impl.(type) {
	case *oneGroup[V]:
		if r.ok {
			return 1, 1, true
		}
		return 0, 0, true
	case *passGroup[V]:
		extra := 0
		if r.hasHead {
			extra++
		}
		if r.hasTail {
			extra++
		}
		lo, hi, ok := r.src.SizeHint()
		return addSat(lo, extra), addSat(hi, extra), ok
	case *sliceGroup[V]:
		return len(r.vs), len(r.vs), true
	case *opaqueGroup[V]:
		return r.inner.SizeHint()
	}
	return 0, 0, true
}

// FoldGroup reduces the remaining values of g front to back.
// Bucket-backed groups are folded without per-value pulls.
func FoldGroup[V, B any](g *Group[V], init B, f func(B, V) B) B {
	acc := init
	if r, ok := g.impl.(*sliceGroup[V]); ok {
		for _, v := range r.vs {
			acc = f(acc, v)
		}
		r.vs = nil
		return acc
	}
	for {
		v, ok := g.Next()
		if !ok {
			return acc
		}
		acc = f(acc, v)
	}
}

// CollectGroup drains g into a slice.
// A bucket-backed group hands over its bucket without copying.
func CollectGroup[V any](g *Group[V]) []V {
	if r, ok := g.impl.(*sliceGroup[V]); ok {
		vs := r.vs
		r.vs = nil
		return vs
	}
	return Collect[V](g)
}
