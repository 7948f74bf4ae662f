// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package discrim

import (
	"sync/atomic"
)

// affine is a one-shot flag.
// The first take succeeds; every later take, and every take after
// discard, fails. It backs deferred stages (forced at most once) and
// discarded split handles.
type affine struct {
	used atomic.Uintptr
}

// take claims the flag. Reports true only for the first claim.
func (a *affine) take() bool {
	if a.used.Load() != 0 {
		return false
	}
	return a.used.Add(1) == 1
}

// discard marks the flag as used without claiming it.
func (a *affine) discard() {
	a.used.Store(1)
}

// spent reports whether the flag has been claimed or discarded.
func (a *affine) spent() bool {
	return a.used.Load() != 0
}
