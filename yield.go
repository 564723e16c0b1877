// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tickq

import (
	"runtime"

	"code.hybscloud.com/spin"
)

// yieldWaiter is the yield variant (spec §4.2): wait_and_load pauses with
// spin.Wait, yields the goroutine scheduler, then re-loads the ticket.
// store_and_wake and wake behave exactly as in the no-wait variant.
// Grounded on evenk::BoundedQueueYieldWait.
type yieldWaiter struct {
	ticket
}

func (w *yieldWaiter) waitAndLoad(uint32) uint32 {
	sw := spin.Wait{}
	sw.Once()
	runtime.Gosched()
	return w.load()
}

func (w *yieldWaiter) storeAndWake(value uint32) {
	w.store(value)
}

func (w *yieldWaiter) wake() {}
