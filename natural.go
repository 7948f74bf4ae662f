// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package discrim

import (
	"fmt"
	"unsafe"
)

// Bounded discriminates int keys in [0, limit) with one bucket per key.
//
// One pass over the input appends every value to bucket[key], which keeps
// each class in input order. Non-empty buckets are yielded in ascending
// key order. The pass runs on the first pull, not at Discriminate time.
// Cost is O(len(input) + limit).
type Bounded[V any] struct {
	limit     int
	unchecked bool
}

// Natural returns a checked bucket discriminator for keys in [0, n).
// A key outside the range panics when the buckets are filled.
//
// Panics if n < 2: smaller domains have nothing to discriminate; use
// Trivial instead.
func Natural[V any](n int) *Bounded[V] {
	if n < 2 {
		panic("discrim: natural discriminator needs at least 2 buckets")
	}
	return &Bounded[V]{limit: n}
}

// BoundedInt is Natural.
func BoundedInt[V any](n int) *Bounded[V] {
	return Natural[V](n)
}

// UncheckedNatural returns a bucket discriminator for keys in [0, n) that
// skips key validation.
//
// Precondition: every key is in [0, n). A key outside the range is
// undefined behaviour: the bucket write goes through unchecked pointer
// arithmetic. Use it only where the key type makes the range
// impossible to leave, as FixedWidth does.
//
// Panics if n < 2.
func UncheckedNatural[V any](n int) *Bounded[V] {
	if n < 2 {
		panic("discrim: natural discriminator needs at least 2 buckets")
	}
	return &Bounded[V]{limit: n, unchecked: true}
}

// Limit returns the bucket count.
func (d *Bounded[V]) Limit() int { return d.limit }

// Unchecked reports whether key validation is skipped.
func (d *Bounded[V]) Unchecked() bool { return d.unchecked }

// Discriminate implements Discriminator.
func (d *Bounded[V]) Discriminate(pairs Iter[Pair[int, V]]) *Groups[V] {
	if atMostOne(pairs) {
		return oneFront(pairs)
	}
	return &Groups[V]{impl: &tableGroups[V]{disc: d, pending: pairs}}
}

// bdisc fills the bucket table, dispatching on the unchecked flag.
func (d *Bounded[V]) bdisc(pairs Iter[Pair[int, V]]) [][]V {
	if d.unchecked {
		return d.bdiscUnchecked(pairs)
	}
	return d.bdiscChecked(pairs)
}

func (d *Bounded[V]) bdiscChecked(pairs Iter[Pair[int, V]]) [][]V {
	buckets := make([][]V, d.limit)
	for {
		p, ok := pairs.Next()
		if !ok {
			return buckets
		}
		if uint(p.Fst) >= uint(len(buckets)) {
			panic(fmt.Sprintf("discrim: key %d out of range [0, %d)", p.Fst, d.limit))
		}
		buckets[p.Fst] = append(buckets[p.Fst], p.Snd)
	}
}

func (d *Bounded[V]) bdiscUnchecked(pairs Iter[Pair[int, V]]) [][]V {
	buckets := make([][]V, d.limit)
	base := unsafe.Pointer(unsafe.SliceData(buckets))
	stride := unsafe.Sizeof(buckets[0])
	for {
		p, ok := pairs.Next()
		if !ok {
			return buckets
		}
		b := (*[]V)(unsafe.Add(base, uintptr(p.Fst)*stride))
		*b = append(*b, p.Snd)
	}
}
