// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tickq

import (
	"runtime"
	"time"

	"code.hybscloud.com/spin"
)

// Backoff is a stateful callable consumed once per enqueue or dequeue
// call site: it spends a small amount of time not touching the slot
// ticket and reports whether the caller should keep backing off.
// Returning false means "keep calling me"; returning true means "stop —
// escalate to the wait strategy for the remainder of this wait."
//
// Call one of the constructors below per call site; the returned closure
// owns its own state, so two goroutines never share one Backoff.
type Backoff func() bool

// NoBackoff escalates immediately. Equivalent to passing no backoff at
// all; provided for callers that want to select a policy dynamically.
func NoBackoff() Backoff {
	return func() bool { return true }
}

// YieldBackoff yields the scheduler once per call and never escalates on
// its own: a wait using it, alone or as the second stage of a
// CompositeBackoff, keeps yielding until the ticket arrives and never
// reaches the wait strategy.
func YieldBackoff() Backoff {
	return func() bool {
		runtime.Gosched()
		return false
	}
}

// Pause spends approximately n units of delay. CPURelax and NanoSleep
// are the two stock implementations; n is a CPU-relax count for the
// former and a nanosecond duration for the latter.
type Pause func(n uint32)

// CPURelax issues n CPU pause/relax instructions via the spin package —
// the same primitive the no-wait and yield wait strategies use in their
// busy loops.
func CPURelax(n uint32) {
	sw := spin.Wait{}
	for ; n > 0; n-- {
		sw.Once()
	}
}

// NanoSleep sleeps for approximately n nanoseconds.
func NanoSleep(n uint32) {
	time.Sleep(time.Duration(n))
}

// LinearBackoff pauses for linearly increasing durations (pause(0),
// pause(1), pause(2), ...) up to ceiling, then escalates. Grounded on
// evenk::LinearBackoff (backoff.h).
func LinearBackoff(pause Pause, ceiling uint32) Backoff {
	n := uint32(0)
	return func() bool {
		if n >= ceiling {
			pause(ceiling)
			return true
		}
		pause(n)
		n++
		return false
	}
}

// ExponentialBackoff doubles its pause duration each call (roughly
// pause(0), pause(1), pause(3), pause(7), ...) up to ceiling, then
// escalates. Grounded on evenk::ExponentialBackoff (backoff.h).
func ExponentialBackoff(pause Pause, ceiling uint32) Backoff {
	n := uint32(0)
	return func() bool {
		if n >= ceiling {
			pause(ceiling)
			return true
		}
		pause(n)
		n += n + 1
		return false
	}
}

// ProportionalBackoff always pauses for a fixed unit and never
// escalates on its own. Grounded on evenk::ProportionalBackoff
// (backoff.h). As the first stage of a CompositeBackoff it keeps the
// composite from ever switching to its second stage.
func ProportionalBackoff(pause Pause, unit uint32) Backoff {
	return func() bool {
		pause(unit)
		return false
	}
}

// CompositeBackoff runs first until it escalates, then switches
// permanently to second. Grounded on evenk::CompositeBackoff
// (backoff.h) — the canonical shape is a short spin-relax stage that
// escalates (LinearBackoff or ExponentialBackoff over CPURelax) followed
// by either a NoBackoff stage, which falls through to the wait strategy,
// or a YieldBackoff stage, which keeps yielding and never does.
func CompositeBackoff(first, second Backoff) Backoff {
	useSecond := false
	return func() bool {
		if useSecond {
			return second()
		}
		useSecond = first()
		return false
	}
}
