// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package tickq

import (
	"math"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// futex(2) operation codes from linux/futex.h; golang.org/x/sys/unix
// exports the SYS_FUTEX syscall number but not these.
const (
	_FUTEX_WAIT = 0
	_FUTEX_WAKE = 1
)

// futexWait blocks the calling goroutine's underlying OS thread in the
// kernel while *addr still equals expected, per FUTEX_WAIT. A return
// because the value already changed (EAGAIN) or a spurious signal
// (EINTR) are both treated as "try again" by the caller, matching the
// spec's "callers always re-check" contract for wait_and_load.
func futexWait(addr *atomic.Uint32, expected uint32) {
	word := (*uint32)(unsafe.Pointer(addr))
	_, _, errno := unix.Syscall6(
		unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(word)),
		uintptr(_FUTEX_WAIT),
		uintptr(expected),
		0, 0, 0,
	)
	_ = errno // EAGAIN/EINTR/success all fall through to the caller's re-check loop
}

// futexWakeAll wakes every thread parked on addr via FUTEX_WAKE.
func futexWakeAll(addr *atomic.Uint32) {
	word := (*uint32)(unsafe.Pointer(addr))
	unix.Syscall6(
		unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(word)),
		uintptr(_FUTEX_WAKE),
		uintptr(math.MaxInt32),
		0, 0, 0,
	)
}
