// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package discrim

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// maxFixedWidth is the widest key FixedWidth accepts, in bits.
// 2^16 buckets is the largest table worth allocating per call.
const maxFixedWidth = 16

// FixedWidth discriminates a fixed-width unsigned key type U with one
// bucket per representable value, in ascending key order.
//
// It is Rename(widen, UncheckedNatural(2^w)): every key of a w-bit type
// is in range by construction, so the unchecked table is safe here.
//
// Panics if U is wider than 16 bits.
func FixedWidth[U constraints.Unsigned, V any]() *Renamed[U, int, V] {
	var zero U
	bits := unsafe.Sizeof(zero) * 8
	if bits > maxFixedWidth {
		panic("discrim: fixed-width discriminator supports at most 16-bit keys")
	}
	return Rename[U, int, V](widen[U], UncheckedNatural[V](1<<bits))
}

// Uint8 discriminates uint8 keys into 256 buckets.
func Uint8[V any]() *Renamed[uint8, int, V] {
	return FixedWidth[uint8, V]()
}

// Uint16 discriminates uint16 keys into 65536 buckets.
func Uint16[V any]() *Renamed[uint16, int, V] {
	return FixedWidth[uint16, V]()
}

// Bool discriminates bool keys: false before true.
func Bool[V any]() *Renamed[bool, int, V] {
	return Rename[bool, int, V](boolIndex, UncheckedNatural[V](2))
}

func widen[U constraints.Unsigned](u U) int { return int(u) }

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}
