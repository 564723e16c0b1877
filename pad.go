// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tickq

// pad is cache line padding to prevent false sharing between the queue's
// hot counters (head, tail, finish).
type pad [64]byte

// padShort is the trailing slot padding of the teacher's
// mpmcSlot/mpscSlot/spmcSlot layout (options.go), sized for an 8-byte
// leading field. Here only futexWaiter is 8 bytes (noWaitWaiter and
// yieldWaiter are 4, condWaiter is larger), and neither the waiter's
// size nor T's is accounted for: slots are not aligned to cache lines,
// and neighboring slots' waiter tickets are kept apart only by this
// padding plus the waiter and T.
type padShort [64 - 8]byte
