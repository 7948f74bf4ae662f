// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package discrim

// Groups is the result of a discrimination: a lazy, single-pass,
// double-ended sequence of non-empty groups.
//
// Pulling from the back yields the same groups as pulling from the front,
// in reverse order. Front and back pulls may be mixed; no group is
// yielded twice. Groups does no work until it is polled.
//
// Groups implements Iter[*Group[V]].
type Groups[V any] struct {
	impl    groupsImpl[V]
	started bool
}

// groupsImpl is the closed set of physical group-sequence
// representations.
type groupsImpl[V any] interface {
	groupsImpl()
}

// oneGroups is the size ≤ 1 fast path: no buckets are allocated.
type oneGroups[V any] struct {
	v  V
	ok bool
}

// passGroups yields the whole input as at most one group.
type passGroups[V any] struct {
	src  Iter[V]
	done bool
}

// tableGroups is a bucket table, filled on the first pull.
// Buckets in [lo, hi) have not been yielded yet.
type tableGroups[V any] struct {
	disc    *Bounded[V]
	pending Iter[Pair[int, V]]
	buckets [][]V
	lo, hi  int
}

// invertGroups is a reversed view of another sequence.
type invertGroups[V any] struct {
	inner *Groups[V]
}

// opaqueGroups boxes an arbitrary group sequence. Combinators whose
// nesting depth is not statically known meet here.
type opaqueGroups[V any] struct {
	inner Iter[*Group[V]]
}

func (*oneGroups[V]) groupsImpl()    {}
func (*passGroups[V]) groupsImpl()   {}
func (*tableGroups[V]) groupsImpl()  {}
func (*invertGroups[V]) groupsImpl() {}
func (*opaqueGroups[V]) groupsImpl() {}

// GroupsOf boxes an arbitrary group sequence.
// Every group it yields must be non-empty.
func GroupsOf[V any](groups Iter[*Group[V]]) *Groups[V] {
	if gs, ok := groups.(*Groups[V]); ok {
		return gs
	}
	return &Groups[V]{impl: &opaqueGroups[V]{inner: groups}}
}

// NoGroups returns an empty group sequence.
func NoGroups[V any]() *Groups[V] {
	return &Groups[V]{impl: &oneGroups[V]{}}
}

func single[V any](v V, ok bool) *Groups[V] {
	return &Groups[V]{impl: &oneGroups[V]{v: v, ok: ok}}
}

// Spent reports whether any group has been pulled.
// A spent sequence cannot be restarted.
func (gs *Groups[V]) Spent() bool {
	return gs.started
}

func (t *tableGroups[V]) fill() {
	if t.pending == nil {
		return
	}
	t.buckets = t.disc.bdisc(t.pending)
	t.pending = nil
	t.lo, t.hi = 0, len(t.buckets)
}

// Next pulls the next group from the front.
func (gs *Groups[V]) Next() (*Group[V], bool) {
	gs.started = true
	switch r := gs.impl.(type) {
	case *oneGroups[V]:
		if r.ok {
			r.ok = false
			return &Group[V]{impl: &oneGroup[V]{v: r.v, ok: true}}, true
		}
	case *passGroups[V]:
		if !r.done {
			r.done = true
			if v, ok := r.src.Next(); ok {
				return &Group[V]{impl: &passGroup[V]{src: r.src, head: v, hasHead: true}}, true
			}
		}
	case *tableGroups[V]:
		r.fill()
		for r.lo < r.hi {
			vs := r.buckets[r.lo]
			r.buckets[r.lo] = nil
			r.lo++
			if len(vs) > 0 {
				return &Group[V]{impl: &sliceGroup[V]{vs: vs}}, true
			}
		}
	case *invertGroups[V]:
		return r.inner.NextBack()
	case *opaqueGroups[V]:
		return r.inner.Next()
	}
	return nil, false
}

// NextBack pulls the next group from the back.
func (gs *Groups[V]) NextBack() (*Group[V], bool) {
	gs.started = true
	switch r := gs.impl.(type) {
	case *oneGroups[V]:
		if r.ok {
			r.ok = false
			return &Group[V]{impl: &oneGroup[V]{v: r.v, ok: true}}, true
		}
	case *passGroups[V]:
		if !r.done {
			r.done = true
			if v, ok := r.src.NextBack(); ok {
				return &Group[V]{impl: &passGroup[V]{src: r.src, tail: v, hasTail: true}}, true
			}
		}
	case *tableGroups[V]:
		r.fill()
		for r.lo < r.hi {
			r.hi--
			vs := r.buckets[r.hi]
			r.buckets[r.hi] = nil
			if len(vs) > 0 {
				return &Group[V]{impl: &sliceGroup[V]{vs: vs}}, true
			}
		}
	case *invertGroups[V]:
		return r.inner.Next()
	case *opaqueGroups[V]:
		return r.inner.NextBack()
	}
	return nil, false
}

// SizeHint reports bounds on the number of remaining groups.
func (gs *Groups[V]) SizeHint() (int, int, bool) {
	switch r := gs.impl.(type) {
	case *oneGroups[V]:
		if r.ok {
			return 1, 1, true
		}
		return 0, 0, true
	case *passGroups[V]:
		if r.done {
			return 0, 0, true
		}
		lo, hi, ok := r.src.SizeHint()
		if ok && hi == 0 {
			return 0, 0, true
		}
		return min(lo, 1), 1, true
	case *tableGroups[V]:
		if r.pending != nil {
			return 0, r.disc.limit, true
		}
		return 0, r.hi - r.lo, true
	case *invertGroups[V]:
		return r.inner.SizeHint()
	case *opaqueGroups[V]:
		return r.inner.SizeHint()
	}
	return 0, 0, true
}

// FoldGroups reduces the remaining groups of gs front to back.
// A bucket table is folded in place: empty buckets are skipped before
// any group is built.
func FoldGroups[V, B any](gs *Groups[V], init B, f func(B, *Group[V]) B) B {
	gs.started = true
	acc := init
	switch r := gs.impl.(type) {
	case *tableGroups[V]:
		r.fill()
		for i := r.lo; i < r.hi; i++ {
			vs := r.buckets[i]
			r.buckets[i] = nil
			if len(vs) == 0 {
				continue
			}
			acc = f(acc, &Group[V]{impl: &sliceGroup[V]{vs: vs}})
		}
		r.lo = r.hi
		return acc
	case *invertGroups[V]:
		for {
			g, ok := r.inner.NextBack()
			if !ok {
				return acc
			}
			acc = f(acc, g)
		}
	}
	for {
		g, ok := gs.Next()
		if !ok {
			return acc
		}
		acc = f(acc, g)
	}
}

// CollectGroups drains gs front to back into one slice per group.
func CollectGroups[V any](gs *Groups[V]) [][]V {
	return FoldGroups(gs, [][]V(nil), appendGroup[V])
}

// CollectGroupsBack drains gs back to front into one slice per group.
// Values inside each group keep their front-to-back order.
func CollectGroupsBack[V any](gs *Groups[V]) [][]V {
	var out [][]V
	for {
		g, ok := gs.NextBack()
		if !ok {
			return out
		}
		out = append(out, CollectGroup(g))
	}
}

// appendGroup is a named fold step; a named generic function avoids a
// closure allocation per call.
func appendGroup[V any](acc [][]V, g *Group[V]) [][]V {
	return append(acc, CollectGroup(g))
}
