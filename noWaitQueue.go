// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tickq

import "code.hybscloud.com/atomix"

type noWaitSlot[T any] struct {
	waiter noWaitWaiter
	value  T
	_      padShort
}

// NoWaitQueue is the ticketed ring buffer parameterized with the
// no-wait (pure spin) slot strategy. Grounded on evenk::BoundedQueue
// instantiated with evenk::NoWaitSynch (bounded_queue.h), and on the
// teacher's layout convention of separating hot counters onto their own
// cache lines via pad (mpmc.go).
type NoWaitQueue[T any] struct {
	_      pad
	tail   atomix.Uint64
	_      pad
	head   atomix.Uint64
	_      pad
	finish atomix.Bool
	_      pad
	ring   []noWaitSlot[T]
	mask   uint64
}

var _ Queue[int] = (*NoWaitQueue[int])(nil)

// NewNoWaitQueue constructs a NoWaitQueue of the given capacity, which
// must be an exact power of two and at least 1.
func NewNoWaitQueue[T any](capacity int) (*NoWaitQueue[T], error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	q := &NoWaitQueue[T]{
		ring: make([]noWaitSlot[T], capacity),
		mask: uint64(capacity) - 1,
	}
	for i := range q.ring {
		q.ring[i].waiter.init(uint32(i))
	}
	return q, nil
}

func (q *NoWaitQueue[T]) Cap() int { return len(q.ring) }

func (q *NoWaitQueue[T]) Empty() bool {
	return q.tail.LoadAcquire() <= q.head.LoadAcquire()
}

func (q *NoWaitQueue[T]) Finished() bool {
	return q.finish.LoadAcquire()
}

// Finish see [Queue.Finish].
func (q *NoWaitQueue[T]) Finish() {
	q.finish.StoreRelease(true)
	for i := range q.ring {
		q.ring[i].waiter.wake()
	}
}

func (q *NoWaitQueue[T]) Enqueue(value T) {
	tail := q.tail.AddAcqRel(1) - 1
	slot := &q.ring[tail&q.mask]
	required := uint32(tail)
	waitTail(&slot.waiter, required)
	slot.value = value
	slot.waiter.storeAndWake(required + 1)
}

func (q *NoWaitQueue[T]) EnqueueBackoff(value T, backoff Backoff) {
	tail := q.tail.AddAcqRel(1) - 1
	slot := &q.ring[tail&q.mask]
	required := uint32(tail)
	waitTailBackoff(&slot.waiter, required, backoff)
	slot.value = value
	slot.waiter.storeAndWake(required + 1)
}

func (q *NoWaitQueue[T]) Dequeue(out *T) bool {
	head := q.head.AddAcqRel(1) - 1
	slot := &q.ring[head&q.mask]
	required := uint32(head) + 1
	if !waitHead(&slot.waiter, required, head, q.Finished, q.tail.LoadAcquire) {
		return false
	}
	*out = slot.value
	var zero T
	slot.value = zero
	slot.waiter.storeAndWake(uint32(head) + uint32(len(q.ring)))
	return true
}

func (q *NoWaitQueue[T]) DequeueBackoff(out *T, backoff Backoff) bool {
	head := q.head.AddAcqRel(1) - 1
	slot := &q.ring[head&q.mask]
	required := uint32(head) + 1
	if !waitHeadBackoff(&slot.waiter, required, head, backoff, q.Finished, q.tail.LoadAcquire) {
		return false
	}
	*out = slot.value
	var zero T
	slot.value = zero
	slot.waiter.storeAndWake(uint32(head) + uint32(len(q.ring)))
	return true
}

// TryDequeue makes one non-blocking attempt by CAS-reserving head only
// if the slot is already published, so a failed attempt never strands a
// reservation the way a blind AddAcqRel would. bounded_queue.h itself has
// no non-blocking pop; this is a judgment-call addition in the spirit of
// the try_pop/nonblocking_pop members conqueue.h's queue_base declares
// for its other queue flavors (conqueue.h), adapted to the ticketed slot
// protocol used here.
func (q *NoWaitQueue[T]) TryDequeue(out *T) bool {
	for {
		head := q.head.LoadAcquire()
		slot := &q.ring[head&q.mask]
		required := uint32(head) + 1
		if slot.waiter.load() != required {
			return false
		}
		if q.head.CompareAndSwapAcqRel(head, head+1) {
			*out = slot.value
			var zero T
			slot.value = zero
			slot.waiter.storeAndWake(uint32(head) + uint32(len(q.ring)))
			return true
		}
	}
}
