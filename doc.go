// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tickq provides a bounded, blocking, multi-producer/
// multi-consumer concurrent queue backed by a fixed-capacity ring
// buffer, with a pluggable per-slot wait strategy and a composable
// backoff hook.
//
// # Quick Start
//
// Direct constructors (recommended for most cases):
//
//	q, err := tickq.NewYieldQueue[Event](1024)
//	q, err := tickq.NewFutexQueue[*Request](4096)
//
// Builder API for selecting a strategy dynamically:
//
//	q, err := tickq.Build[Event](tickq.New(1024).Wait(tickq.WaitFutex))
//
// # Basic Usage
//
// Every variant shares the same [Queue] interface:
//
//	q, err := tickq.NewYieldQueue[int](1024)
//	if err != nil {
//	    // capacity was not a power of two
//	}
//
//	// Producer: Enqueue blocks until a slot is free. It never fails.
//	q.Enqueue(42)
//
//	// Consumer: Dequeue blocks until a value is ready or the queue
//	// has been Finished and this reservation will never be filled.
//	var v int
//	for q.Dequeue(&v) {
//	    process(v)
//	}
//
// # Common Patterns
//
// Worker Pool (futex wait, many producers, many workers):
//
//	q, _ := tickq.NewFutexQueue[Job](4096)
//
//	for range numWorkers {
//	    go func() {
//	        var job Job
//	        for q.Dequeue(&job) {
//	            job.Run()
//	        }
//	    }()
//	}
//
//	func Submit(j Job) { q.Enqueue(j) }
//
// Graceful shutdown once producers are known to be done:
//
//	producerWg.Wait()
//	q.Finish()
//	consumerWg.Wait() // Dequeue now returns false once drained
//
// # Wait Strategies
//
// Four variants share one algorithm (the ticketed ring buffer
// described in bounded_queue.h's BoundedQueue template) and differ only
// in how a caller parks and is woken on a slot:
//
//	NewNoWaitQueue[T] — pure spin, lowest latency under light contention
//	NewYieldQueue[T]  — spin plus scheduler yield, a reasonable default
//	NewFutexQueue[T]  — kernel futex park/wake (Linux; degrades to a
//	                    yield loop on other platforms)
//	NewCondQueue[T]   — mutex + condition variable per slot, parks the
//	                    waiting goroutine without spinning at all
//
// # Backoff
//
// Enqueue and Dequeue have Backoff-accepting variants. A [Backoff] is a
// stateful callable consumed once per call site: it spends a small
// delay and reports whether the wait should escalate from user-space
// spinning to the wait strategy's blocking path.
//
//	backoff := tickq.CompositeBackoff(
//	    tickq.LinearBackoff(tickq.CPURelax, 64),
//	    tickq.YieldBackoff(),
//	)
//	q.EnqueueBackoff(job, backoff)
//
// Construct a fresh Backoff per call; never share one across goroutines
// or reuse one across calls.
//
// # Error Handling
//
// Construction is the only place this package returns an error:
// [ErrInvalidCapacity] when capacity is not an exact power of two.
// Enqueue cannot fail once a queue exists. Dequeue's only non-value
// outcome is a bool, signaling that the queue has been [Queue.Finish]ed
// and this reservation will never be filled — it is not an error.
//
//	q, err := tickq.NewYieldQueue[int](3) // not a power of two
//	if errors.Is(err, tickq.ErrInvalidCapacity) {
//	    // handle
//	}
//
// # Capacity
//
// Capacity must be an exact power of two and at least 1. Unlike the
// ring buffer library this package is grounded on, tickq never rounds a
// requested capacity up: silently changing how many producers can be
// in flight before Enqueue blocks is a correctness hazard for a
// blocking queue, not just a memory-sizing detail. A capacity of 1
// degenerates to a single-slot handoff.
//
// # Thread Safety
//
// Every variant is safe for any number of concurrent producers and
// consumers; there is no single-producer or single-consumer
// specialization in this package; unlike the teacher library's
// SPSC/MPSC/SPMC/MPMC family, here the arity axis is not what
// distinguishes the four constructors — the wait strategy is.
//
// # Graceful Shutdown
//
// Finish is a one-way flag combined with an unconditional wake of every
// slot. It releases consumers blocked on a reservation that will never
// be filled; it places no constraint on producers, which may continue
// to call Enqueue after Finish (those values are simply never drained
// by a blocked Dequeue that already gave up — see DESIGN.md's note on
// finish ordering). Callers that want a clean drain should quiesce
// producers before calling Finish.
//
// # Race Detection
//
// All four variants synchronize through either Go's race-detector-aware
// sync primitives (sync.Mutex, sync.Cond) or atomix's explicit
// acquire/release atomics, both of which the race detector instruments
// correctly — unlike a true lock-free algorithm, there is no happens-
// before relationship here that the detector has to take on faith.
// [RaceEnabled], set by this package's //go:build race / !race split
// following the teacher library's race.go convention, reports whether
// the detector is active; the package's own tests do not consult it,
// and the watchdog-bounded stress test is skipped only under -short.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomic primitives
// with explicit memory ordering, [code.hybscloud.com/spin] for CPU
// pause instructions used by the no-wait strategy and by
// [CPURelax]-based backoffs, and [golang.org/x/sys/unix] for the raw
// futex syscall behind [NewFutexQueue]. Unlike the teacher library,
// this package does not depend on code.hybscloud.com/iox: iox's
// semantic-error vocabulary (ErrWouldBlock and friends) has no referent
// here, since tickq operations block rather than fail fast — see
// DESIGN.md.
package tickq
