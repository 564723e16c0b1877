// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tickq

import "sync"

// condWaiter is the lock+condvar variant (spec §4.2), built on Go's
// sync.Mutex and sync.Cond rather than a third-party primitive: for a
// blocking mutex/condvar pair, sync.Cond already is the ecosystem
// idiom — the direct Go analogue of std::condition_variable — so
// reaching past it into a third-party lock package would not add
// anything the teacher's own stack values. Grounded on
// evenk::BoundedQueueSynchWait (bounded_queue.h) parameterized with
// evenk::StdSynch.
//
// cond.L must point at mu, set once in initCond and never touched again;
// slots live in a fixed-size slice for the queue's whole lifetime, so
// the address is stable.
type condWaiter struct {
	ticket
	mu   sync.Mutex
	cond sync.Cond
}

func (w *condWaiter) initCond(value uint32) {
	w.init(value)
	w.cond.L = &w.mu
}

// waitAndLoad re-checks the ticket under the slot's own lock: if it
// still equals expected, sleep on the condvar, then reload. The mutex
// already orders the ticket observation against a concurrent
// storeAndWake, so — unlike the futex variant — no separate fence is
// needed here.
func (w *condWaiter) waitAndLoad(expected uint32) uint32 {
	w.mu.Lock()
	current := w.v.LoadRelaxed()
	if current == expected {
		w.cond.Wait()
		current = w.v.LoadRelaxed()
	}
	w.mu.Unlock()
	return current
}

func (w *condWaiter) storeAndWake(value uint32) {
	w.mu.Lock()
	w.v.StoreRelaxed(value)
	w.cond.Broadcast()
	w.mu.Unlock()
}

func (w *condWaiter) wake() {
	w.mu.Lock()
	w.cond.Broadcast()
	w.mu.Unlock()
}
