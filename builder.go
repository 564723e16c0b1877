// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tickq

// WaitKind selects a slot-waiting strategy for [Build]. The zero value
// is WaitYield, a reasonable default for most workloads.
type WaitKind int

const (
	WaitYield WaitKind = iota
	WaitNoWait
	WaitFutex
	WaitCond
)

// Builder configures queue creation with a fluent API, mirroring the
// teacher library's Builder/Options pattern (options.go) adapted from
// producer/consumer-arity selection to wait-strategy selection.
//
// Example:
//
//	q, err := tickq.Build[Event](tickq.New(1024).Wait(tickq.WaitFutex))
type Builder struct {
	capacity int
	wait     WaitKind
}

// New creates a queue builder for the given capacity. Capacity is
// validated at Build time, not here, since it is the constructors —
// not the builder — that own the power-of-two contract (see
// [ErrInvalidCapacity]).
func New(capacity int) *Builder {
	return &Builder{capacity: capacity}
}

// Wait selects the slot-waiting strategy. Defaults to WaitYield if never
// called.
func (b *Builder) Wait(kind WaitKind) *Builder {
	b.wait = kind
	return b
}

// Build creates a Queue[T] with the builder's configured wait strategy.
//
// For a concrete return type instead of the Queue[T] interface, use
// BuildNoWait, BuildYield, BuildFutex, or BuildCond directly.
func Build[T any](b *Builder) (Queue[T], error) {
	switch b.wait {
	case WaitNoWait:
		return NewNoWaitQueue[T](b.capacity)
	case WaitFutex:
		return NewFutexQueue[T](b.capacity)
	case WaitCond:
		return NewCondQueue[T](b.capacity)
	default:
		return NewYieldQueue[T](b.capacity)
	}
}

// BuildNoWait creates a NoWaitQueue from the builder's capacity,
// ignoring any Wait selection.
func BuildNoWait[T any](b *Builder) (*NoWaitQueue[T], error) {
	return NewNoWaitQueue[T](b.capacity)
}

// BuildYield creates a YieldQueue from the builder's capacity, ignoring
// any Wait selection.
func BuildYield[T any](b *Builder) (*YieldQueue[T], error) {
	return NewYieldQueue[T](b.capacity)
}

// BuildFutex creates a FutexQueue from the builder's capacity, ignoring
// any Wait selection.
func BuildFutex[T any](b *Builder) (*FutexQueue[T], error) {
	return NewFutexQueue[T](b.capacity)
}

// BuildCond creates a CondQueue from the builder's capacity, ignoring
// any Wait selection.
func BuildCond[T any](b *Builder) (*CondQueue[T], error) {
	return NewCondQueue[T](b.capacity)
}
