// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tickq

import "code.hybscloud.com/atomix"

type yieldSlot[T any] struct {
	waiter yieldWaiter
	value  T
	_      padShort
}

// YieldQueue is the ticketed ring buffer parameterized with the yield
// slot strategy. Grounded on evenk::BoundedQueue instantiated with
// evenk::YieldSynch (bounded_queue.h).
type YieldQueue[T any] struct {
	_      pad
	tail   atomix.Uint64
	_      pad
	head   atomix.Uint64
	_      pad
	finish atomix.Bool
	_      pad
	ring   []yieldSlot[T]
	mask   uint64
}

var _ Queue[int] = (*YieldQueue[int])(nil)

// NewYieldQueue constructs a YieldQueue of the given capacity, which
// must be an exact power of two and at least 1.
func NewYieldQueue[T any](capacity int) (*YieldQueue[T], error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	q := &YieldQueue[T]{
		ring: make([]yieldSlot[T], capacity),
		mask: uint64(capacity) - 1,
	}
	for i := range q.ring {
		q.ring[i].waiter.init(uint32(i))
	}
	return q, nil
}

func (q *YieldQueue[T]) Cap() int { return len(q.ring) }

func (q *YieldQueue[T]) Empty() bool {
	return q.tail.LoadAcquire() <= q.head.LoadAcquire()
}

func (q *YieldQueue[T]) Finished() bool {
	return q.finish.LoadAcquire()
}

func (q *YieldQueue[T]) Finish() {
	q.finish.StoreRelease(true)
	for i := range q.ring {
		q.ring[i].waiter.wake()
	}
}

func (q *YieldQueue[T]) Enqueue(value T) {
	tail := q.tail.AddAcqRel(1) - 1
	slot := &q.ring[tail&q.mask]
	required := uint32(tail)
	waitTail(&slot.waiter, required)
	slot.value = value
	slot.waiter.storeAndWake(required + 1)
}

func (q *YieldQueue[T]) EnqueueBackoff(value T, backoff Backoff) {
	tail := q.tail.AddAcqRel(1) - 1
	slot := &q.ring[tail&q.mask]
	required := uint32(tail)
	waitTailBackoff(&slot.waiter, required, backoff)
	slot.value = value
	slot.waiter.storeAndWake(required + 1)
}

func (q *YieldQueue[T]) Dequeue(out *T) bool {
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

func (q *YieldQueue[T]) DequeueBackoff(out *T, backoff Backoff) bool {
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

func (q *YieldQueue[T]) TryDequeue(out *T) bool {
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
