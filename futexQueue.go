// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tickq

import "code.hybscloud.com/atomix"

type futexSlot[T any] struct {
	waiter futexWaiter
	value  T
	_      padShort
}

// FutexQueue is the ticketed ring buffer parameterized with the futex
// slot strategy. Grounded on evenk::BoundedQueue instantiated with
// evenk::FutexSynch (bounded_queue.h). On non-Linux platforms the
// underlying wait degrades to a yield (see futex_other.go); correctness
// is unaffected, only the parking behavior.
type FutexQueue[T any] struct {
	_      pad
	tail   atomix.Uint64
	_      pad
	head   atomix.Uint64
	_      pad
	finish atomix.Bool
	_      pad
	ring   []futexSlot[T]
	mask   uint64
}

var _ Queue[int] = (*FutexQueue[int])(nil)

// NewFutexQueue constructs a FutexQueue of the given capacity, which
// must be an exact power of two and at least 1.
func NewFutexQueue[T any](capacity int) (*FutexQueue[T], error) {
	if err := validateCapacity(capacity); err != nil {
		return nil, err
	}
	q := &FutexQueue[T]{
		ring: make([]futexSlot[T], capacity),
		mask: uint64(capacity) - 1,
	}
	for i := range q.ring {
		q.ring[i].waiter.init(uint32(i))
	}
	return q, nil
}

func (q *FutexQueue[T]) Cap() int { return len(q.ring) }

func (q *FutexQueue[T]) Empty() bool {
	return q.tail.LoadAcquire() <= q.head.LoadAcquire()
}

func (q *FutexQueue[T]) Finished() bool {
	return q.finish.LoadAcquire()
}

func (q *FutexQueue[T]) Finish() {
	q.finish.StoreRelease(true)
	for i := range q.ring {
		q.ring[i].waiter.wake()
	}
}

func (q *FutexQueue[T]) Enqueue(value T) {
	tail := q.tail.AddAcqRel(1) - 1
	slot := &q.ring[tail&q.mask]
	required := uint32(tail)
	waitTail(&slot.waiter, required)
	slot.value = value
	slot.waiter.storeAndWake(required + 1)
}

func (q *FutexQueue[T]) EnqueueBackoff(value T, backoff Backoff) {
	tail := q.tail.AddAcqRel(1) - 1
	slot := &q.ring[tail&q.mask]
	required := uint32(tail)
	waitTailBackoff(&slot.waiter, required, backoff)
	slot.value = value
	slot.waiter.storeAndWake(required + 1)
}

func (q *FutexQueue[T]) Dequeue(out *T) bool {
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

func (q *FutexQueue[T]) DequeueBackoff(out *T, backoff Backoff) bool {
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

func (q *FutexQueue[T]) TryDequeue(out *T) bool {
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
