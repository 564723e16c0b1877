// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tickq

// Queue is the common surface every wait-strategy variant implements.
// It exists so callers can select a strategy through [Build] and still
// program against one type; the concrete constructors
// (NewNoWaitQueue, NewYieldQueue, NewFutexQueue, NewCondQueue) return
// their own named types so the wait strategy stays visible at the call
// site when that matters.
type Queue[T any] interface {
	// Enqueue blocks until a slot is reserved and published. It never
	// fails: once the tail reservation is taken, the value is written.
	Enqueue(value T)

	// EnqueueBackoff is Enqueue composed with a caller-supplied Backoff
	// for the wait on slot availability.
	EnqueueBackoff(value T, backoff Backoff)

	// Dequeue blocks until a value is available or the queue is
	// finished and this reservation can never be filled. It returns
	// false only in the latter case, leaving *out untouched.
	Dequeue(out *T) bool

	// DequeueBackoff is Dequeue composed with a caller-supplied Backoff.
	DequeueBackoff(out *T, backoff Backoff) bool

	// TryDequeue makes one non-blocking attempt: if the head slot is
	// not yet published, it returns false immediately without
	// reserving a head ticket. Unlike Dequeue, a false return here
	// does not consume a reservation, so it is safe to poll.
	TryDequeue(out *T) bool

	// Empty is an advisory, racy emptiness check (tail <= head). Safe
	// for monitoring, never as a coordination primitive.
	Empty() bool

	// Finished reports whether Finish has been called.
	Finished() bool

	// Finish raises the one-way shutdown flag and wakes every slot
	// waiter. Producers may still enqueue after Finish; the queue
	// defines no producer-side shutdown. Callers must ensure no
	// producer reserves a tail ticket after quiescing, or that
	// reservation may strand — see the package's Open Question note in
	// DESIGN.md.
	Finish()

	// Cap returns the fixed queue capacity.
	Cap() int
}
