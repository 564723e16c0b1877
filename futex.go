// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tickq

import (
	"sync/atomic"

	"code.hybscloud.com/atomix"
)

// futexWaiter is the futex variant (spec §4.2). Grounded on
// evenk::BoundedQueueFutexWait (bounded_queue.h).
//
// It does not embed ticket: the futex syscall needs a raw *uint32 to
// the word being waited on, and code.hybscloud.com/atomix does not
// promise a layout compatible with that (its wrapper types are opaque
// by design, matching the rest of the package). sync/atomic.Uint32 is
// documented to wrap exactly one uint32 field, so taking its address is
// safe and portable — this is the one place in the package that steps
// outside atomix, and only because the syscall boundary demands an
// actual memory address rather than an abstract atomic handle.
type futexWaiter struct {
	tk      atomic.Uint32
	waiters atomix.Int32
}

func (w *futexWaiter) init(value uint32) {
	w.tk.Store(value)
}

func (w *futexWaiter) load() uint32 {
	return w.tk.Load()
}

// waitAndLoad registers as a waiter, blocks in the kernel while the
// ticket still equals expected, then unregisters and reloads.
func (w *futexWaiter) waitAndLoad(expected uint32) uint32 {
	w.waiters.AddAcqRel(1)
	futexWait(&w.tk, expected)
	w.waiters.AddAcqRel(-1)
	return w.load()
}

// storeAndWake publishes the new ticket, then wakes any futex waiters.
//
// The store goes through a compare-and-swap loop rather than a plain
// store. A plain store paired with a relaxed load of waiters would not
// guarantee the ordering the spec's fence discipline calls for (a
// waiter on the verge of blocking must either observe the new ticket or
// be visible in waiters before the storer decides not to wake); a CAS
// is a full read-modify-write and, like the kernel futex call itself on
// the architectures this targets, forces that ordering without a
// separate fence primitive.
func (w *futexWaiter) storeAndWake(value uint32) {
	old := w.tk.Load()
	for !w.tk.CompareAndSwap(old, value) {
		old = w.tk.Load()
	}
	if w.waiters.LoadRelaxed() > 0 {
		w.wake()
	}
}

func (w *futexWaiter) wake() {
	futexWakeAll(&w.tk)
}
