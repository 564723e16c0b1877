// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tickq

import "code.hybscloud.com/atomix"

// ticket is the slot ticket atom: one atomic 32-bit integer per ring
// cell. Slot i starts at ticket i; ticket == i+k·N marks the slot empty
// and awaiting producer reservation i+k·N, ticket == i+k·N+1 marks it
// full and awaiting consumer reservation i+k·N.
//
// ticket only exposes init/load/store. Everything else — parking,
// waking, backing off — is layered on top by a waitStrategy.
type ticket struct {
	v atomix.Uint32
}

// init is the non-atomic pre-publication store used once at construction.
func (t *ticket) init(value uint32) {
	t.v.StoreRelaxed(value)
}

func (t *ticket) load() uint32 {
	return t.v.LoadAcquire()
}

func (t *ticket) store(value uint32) {
	t.v.StoreRelease(value)
}

// waitStrategy is the capability set every slot-waiting variant provides
// (spec §4.2): a way to park on an unmet ticket, a way to publish and
// wake, and an unconditional wake used by shutdown.
//
// Implementations are selected at compile time per queue variant (see
// noWaitWaiter, yieldWaiter, futexWaiter, condWaiter) rather than stored
// behind an interface value in the slot itself, so the hot wait loop
// never pays for dynamic dispatch (spec §9 discourages it for exactly
// this reason).
type waitStrategy interface {
	load() uint32
	waitAndLoad(expected uint32) uint32
	storeAndWake(value uint32)
	wake()
}

// waitTail is the producer's wait loop with no backoff: block in
// waitAndLoad until the slot reaches the ticket this producer reserved.
// Grounded on evenk::BoundedQueue::WaitTail (bounded_queue.h).
func waitTail[W waitStrategy](w W, required uint32) {
	current := w.load()
	for current != required {
		current = w.waitAndLoad(current)
	}
}

// waitTailBackoff is the producer's wait loop composed with a backoff:
// spin via backoff until it escalates (returns true), then fall through
// to waitAndLoad for the remainder. Grounded on the Backoff overload of
// evenk::BoundedQueue::WaitTail.
func waitTailBackoff[W waitStrategy](w W, required uint32, backoff Backoff) {
	waiting := false
	current := w.load()
	for current != required {
		if waiting {
			current = w.waitAndLoad(current)
		} else {
			waiting = backoff()
			current = w.load()
		}
	}
}

// waitHead is the consumer's wait loop with no backoff. In addition to
// waiting for the slot ticket, it watches the finish flag: once set, a
// reservation that is at or past the current tail will never be filled
// and is abandoned. Grounded on evenk::BoundedQueue::WaitHead.
func waitHead[W waitStrategy](w W, required uint32, reservation uint64, finished func() bool, loadTail func() uint64) bool {
	current := w.load()
	for current != required {
		if finished() && reservation >= loadTail() {
			return false
		}
		current = w.waitAndLoad(current)
	}
	return true
}

// waitHeadBackoff is waitHead composed with a backoff, mirroring
// waitTailBackoff.
func waitHeadBackoff[W waitStrategy](w W, required uint32, reservation uint64, backoff Backoff, finished func() bool, loadTail func() uint64) bool {
	waiting := false
	current := w.load()
	for current != required {
		if finished() && reservation >= loadTail() {
			return false
		}
		if waiting {
			current = w.waitAndLoad(current)
		} else {
			waiting = backoff()
			current = w.load()
		}
	}
	return true
}
