// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package discrim

// Either is a two-variant tagged union: Left or Right.
// It is the key domain of the Sum combinators and the item type of
// SplitEither.
type Either[L, R any] struct {
	isRight bool
	left    L
	right   R
}

// Left creates a Left value.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{isRight: false, left: l}
}

// Right creates a Right value.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{isRight: true, right: r}
}

// IsRight returns true if this is a Right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// IsLeft returns true if this is a Left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// GetRight returns the Right value and true, or zero and false.
func (e Either[L, R]) GetRight() (R, bool) {
	if e.isRight {
		return e.right, true
	}
	var zero R
	return zero, false
}

// GetLeft returns the Left value and true, or zero and false.
func (e Either[L, R]) GetLeft() (L, bool) {
	if !e.isRight {
		return e.left, true
	}
	var zero L
	return zero, false
}

// distribute moves the value of a keyed pair inside the tag:
// (Left j, v) becomes Left (j, v) and (Right k, v) becomes Right (k, v).
func distribute[J, K, V any](p Pair[Either[J, K], V]) Either[Pair[J, V], Pair[K, V]] {
	if p.Fst.isRight {
		return Right[Pair[J, V]](Pair[K, V]{Fst: p.Fst.right, Snd: p.Snd})
	}
	return Left[Pair[J, V], Pair[K, V]](Pair[J, V]{Fst: p.Fst.left, Snd: p.Snd})
}
