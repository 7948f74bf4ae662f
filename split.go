// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package discrim

import (
	"sync"

	"github.com/gammazero/deque"
)

// Sharing selects how the two handles of a split share their buffer.
type Sharing uint8

const (
	// Exclusive assumes one driver at a time: no locking. Handles may be
	// interleaved freely on one goroutine but not pulled concurrently.
	Exclusive Sharing = iota
	// Synchronized guards every pull with a mutex so the two handles can be
	// driven from different goroutines.
	Synchronized
)

// String returns the sharing mode name.
func (s Sharing) String() string {
	switch s {
	case Exclusive:
		return "exclusive"
	case Synchronized:
		return "synchronized"
	}
	return "unknown"
}

type locker interface {
	Lock()
	Unlock()
}

type nopLocker struct{}

func (nopLocker) Lock()   {}
func (nopLocker) Unlock() {}

// splitState is the buffer shared by a SplitLeft and a SplitRight.
//
// Items pulled from src for the other side are parked in that side's
// queue for the end they were pulled from. Front queues hold items in
// source order; back queues hold them in reverse source order.
type splitState[A, B any] struct {
	mu         locker
	src        Iter[Either[A, B]]
	leftFront  deque.Deque[A]
	leftBack   deque.Deque[A]
	rightFront deque.Deque[B]
	rightBack  deque.Deque[B]
	leftGone   affine
	rightGone  affine
}

// SplitLeft yields the Left payloads of a split source.
type SplitLeft[A, B any] struct {
	s *splitState[A, B]
}

// SplitRight yields the Right payloads of a split source.
type SplitRight[A, B any] struct {
	s *splitState[A, B]
}

// SplitEither splits one tagged source into two handles that can be
// drained independently, in any interleaving, from either end.
//
// Every source item is delivered exactly once, to the handle of its tag,
// and each handle sees its items in source order. Nothing is buffered
// beyond the opposite-tag items a handle has to step over.
func SplitEither[A, B any](src Iter[Either[A, B]], sharing Sharing) (*SplitLeft[A, B], *SplitRight[A, B]) {
	s := &splitState[A, B]{src: src}
	if sharing == Synchronized {
		s.mu = &sync.Mutex{}
	} else {
		s.mu = nopLocker{}
	}
	return &SplitLeft[A, B]{s: s}, &SplitRight[A, B]{s: s}
}

// Next pulls the next Left payload from the front.
func (h *SplitLeft[A, B]) Next() (A, bool) {
	s := h.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero A
	if s.leftGone.spent() {
		return zero, false
	}
	if s.leftFront.Len() > 0 {
		return s.leftFront.PopFront(), true
	}
	for {
		e, ok := s.src.Next()
		if !ok {
			break
		}
		if !e.isRight {
			return e.left, true
		}
		if !s.rightGone.spent() {
			s.rightFront.PushBack(e.right)
		}
	}
	if s.leftBack.Len() > 0 {
		return s.leftBack.PopBack(), true
	}
	return zero, false
}

// NextBack pulls the next Left payload from the back.
func (h *SplitLeft[A, B]) NextBack() (A, bool) {
	s := h.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero A
	if s.leftGone.spent() {
		return zero, false
	}
	if s.leftBack.Len() > 0 {
		return s.leftBack.PopFront(), true
	}
	for {
		e, ok := s.src.NextBack()
		if !ok {
			break
		}
		if !e.isRight {
			return e.left, true
		}
		if !s.rightGone.spent() {
			s.rightBack.PushBack(e.right)
		}
	}
	if s.leftFront.Len() > 0 {
		return s.leftFront.PopBack(), true
	}
	return zero, false
}

// SizeHint bounds the remaining Left payloads: the buffered ones are
// certain, the unread source may hold up to its upper bound more.
func (h *SplitLeft[A, B]) SizeHint() (int, int, bool) {
	s := h.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.leftGone.spent() {
		return 0, 0, true
	}
	buffered := s.leftFront.Len() + s.leftBack.Len()
	_, hi, ok := s.src.SizeHint()
	return buffered, addSat(hi, buffered), ok
}

// Buffered returns the number of Left payloads parked for the front and
// for the back.
func (h *SplitLeft[A, B]) Buffered() (front, back int) {
	s := h.s
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.leftFront.Len(), s.leftBack.Len()
}

// Discard drops the handle: its buffered payloads are released and the
// sibling stops parking Left payloads while it scans. Later pulls
// report no more items. The sibling is unaffected.
func (h *SplitLeft[A, B]) Discard() {
	s := h.s
	s.mu.Lock()
	defer s.mu.Unlock()
	s.leftGone.discard()
	s.leftFront.Clear()
	s.leftBack.Clear()
}

// Next pulls the next Right payload from the front.
func (h *SplitRight[A, B]) Next() (B, bool) {
	s := h.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero B
	if s.rightGone.spent() {
		return zero, false
	}
	if s.rightFront.Len() > 0 {
		return s.rightFront.PopFront(), true
	}
	for {
		e, ok := s.src.Next()
		if !ok {
			break
		}
		if e.isRight {
			return e.right, true
		}
		if !s.leftGone.spent() {
			s.leftFront.PushBack(e.left)
		}
	}
	if s.rightBack.Len() > 0 {
		return s.rightBack.PopBack(), true
	}
	return zero, false
}

// NextBack pulls the next Right payload from the back.
func (h *SplitRight[A, B]) NextBack() (B, bool) {
	s := h.s
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero B
	if s.rightGone.spent() {
		return zero, false
	}
	if s.rightBack.Len() > 0 {
		return s.rightBack.PopFront(), true
	}
	for {
		e, ok := s.src.NextBack()
		if !ok {
			break
		}
		if e.isRight {
			return e.right, true
		}
		if !s.leftGone.spent() {
			s.leftBack.PushBack(e.left)
		}
	}
	if s.rightFront.Len() > 0 {
		return s.rightFront.PopBack(), true
	}
	return zero, false
}

// SizeHint bounds the remaining Right payloads.
func (h *SplitRight[A, B]) SizeHint() (int, int, bool) {
	s := h.s
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rightGone.spent() {
		return 0, 0, true
	}
	buffered := s.rightFront.Len() + s.rightBack.Len()
	_, hi, ok := s.src.SizeHint()
	return buffered, addSat(hi, buffered), ok
}

// Buffered returns the number of Right payloads parked for the front and
// for the back.
func (h *SplitRight[A, B]) Buffered() (front, back int) {
	s := h.s
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rightFront.Len(), s.rightBack.Len()
}

// Discard drops the handle. See SplitLeft.Discard.
func (h *SplitRight[A, B]) Discard() {
	s := h.s
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rightGone.discard()
	s.rightFront.Clear()
	s.rightBack.Clear()
}
