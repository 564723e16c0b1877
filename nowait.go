// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tickq

import "code.hybscloud.com/spin"

// noWaitWaiter is the no-wait variant (spec §4.2): wait_and_load is a
// pure spin that pauses with spin.Wait — the same CPU-relax primitive
// the teacher's own CAS-retry loops use (mpmc.go, mpsc.go, spmc.go) —
// before re-loading the ticket. store_and_wake is a plain release-store,
// and wake is a no-op since nothing ever parks. Grounded on
// evenk::BoundedQueueNoWait.
type noWaitWaiter struct {
	ticket
}

func (w *noWaitWaiter) waitAndLoad(uint32) uint32 {
	sw := spin.Wait{}
	sw.Once()
	return w.load()
}

func (w *noWaitWaiter) storeAndWake(value uint32) {
	w.store(value)
}

func (w *noWaitWaiter) wake() {}
