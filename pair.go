// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package discrim

// Pair holds two values.
//
// A Pair[K, V] is the unit every discriminator consumes: Fst is the key
// and Snd is the opaque value. A Pair[J, K] is also the key domain of the
// Product combinators.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// MakePair builds a Pair with full type inference.
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{Fst: a, Snd: b}
}

// Split returns both components.
func (p Pair[A, B]) Split() (A, B) {
	return p.Fst, p.Snd
}

// Swap exchanges the components.
func Swap[A, B any](p Pair[A, B]) Pair[B, A] {
	return Pair[B, A]{Fst: p.Snd, Snd: p.Fst}
}
