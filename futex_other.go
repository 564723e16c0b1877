// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package tickq

import (
	"runtime"
	"sync/atomic"
)

// futexWait has no kernel futex on this platform. It degrades to a
// scheduler yield, same as the yield wait strategy — correct (callers
// always re-check the ticket after wait_and_load returns) but without
// the futex variant's parking, so it burns a bit more CPU than on Linux.
func futexWait(addr *atomic.Uint32, expected uint32) {
	runtime.Gosched()
}

// futexWakeAll is a no-op here: there is nothing parked in the kernel to
// wake, since futexWait never parks off this platform.
func futexWakeAll(addr *atomic.Uint32) {}
