// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tickq_test

import (
	"errors"
	"sort"
	"testing"
	"time"

	"code.hybscloud.com/tickq"
)

// variant bundles a constructor under test so the basic scenarios run
// identically against all four wait strategies.
type variant struct {
	name string
	new  func(capacity int) (tickq.Queue[int], error)
}

func variants() []variant {
	return []variant{
		{"NoWait", func(n int) (tickq.Queue[int], error) { return tickq.NewNoWaitQueue[int](n) }},
		{"Yield", func(n int) (tickq.Queue[int], error) { return tickq.NewYieldQueue[int](n) }},
		{"Futex", func(n int) (tickq.Queue[int], error) { return tickq.NewFutexQueue[int](n) }},
		{"Cond", func(n int) (tickq.Queue[int], error) { return tickq.NewCondQueue[int](n) }},
	}
}

func TestInvalidCapacity(t *testing.T) {
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			for _, capacity := range []int{0, -1, 3, 5, 6, 1000} {
				if _, err := v.new(capacity); !errors.Is(err, tickq.ErrInvalidCapacity) {
					t.Fatalf("new(%d): got %v, want ErrInvalidCapacity", capacity, err)
				}
			}
		})
	}
}

func TestCap(t *testing.T) {
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			q, err := v.new(64)
			if err != nil {
				t.Fatalf("new: %v", err)
			}
			if q.Cap() != 64 {
				t.Fatalf("Cap: got %d, want 64", q.Cap())
			}
		})
	}
}

// TestBasicFIFO is scenario 1 from the spec: single producer, single
// consumer, N=2, enqueue [10,20,30,40], dequeue four times.
func TestBasicFIFO(t *testing.T) {
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			q, err := v.new(2)
			if err != nil {
				t.Fatalf("new: %v", err)
			}
			want := []int{10, 20, 30, 40}
			done := make(chan struct{})
			go func() {
				defer close(done)
				for _, x := range want {
					q.Enqueue(x)
				}
			}()
			for i, w := range want {
				var got int
				if !q.Dequeue(&got) {
					t.Fatalf("Dequeue(%d): unexpected false", i)
				}
				if got != w {
					t.Fatalf("Dequeue(%d): got %d, want %d", i, got, w)
				}
			}
			<-done
		})
	}
}

// TestFullRingBlocksProducer is scenario 2: N=2, enqueue 10, 20, then a
// third enqueue must block until a slot is freed by a dequeue.
func TestFullRingBlocksProducer(t *testing.T) {
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			q, err := v.new(2)
			if err != nil {
				t.Fatalf("new: %v", err)
			}
			q.Enqueue(10)
			q.Enqueue(20)

			producerDone := make(chan struct{})
			go func() {
				q.Enqueue(30)
				close(producerDone)
			}()

			select {
			case <-producerDone:
				t.Fatal("Enqueue(30) completed before any slot was freed")
			case <-time.After(50 * time.Millisecond):
			}

			var got int
			if !q.Dequeue(&got) || got != 10 {
				t.Fatalf("Dequeue: got %d, want 10", got)
			}

			select {
			case <-producerDone:
			case <-time.After(time.Second):
				t.Fatal("Enqueue(30) never completed after a slot was freed")
			}

			for _, want := range []int{20, 30} {
				if !q.Dequeue(&got) || got != want {
					t.Fatalf("Dequeue: got %d, want %d", got, want)
				}
			}
		})
	}
}

// TestFinishReleasesBlockedConsumer is scenario 3: a consumer blocked
// with no producers returns false once Finish is called.
func TestFinishReleasesBlockedConsumer(t *testing.T) {
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			q, err := v.new(2)
			if err != nil {
				t.Fatalf("new: %v", err)
			}
			result := make(chan bool, 1)
			go func() {
				var out int
				result <- q.Dequeue(&out)
			}()

			select {
			case <-result:
				t.Fatal("Dequeue returned before Finish was called")
			case <-time.After(50 * time.Millisecond):
			}

			q.Finish()

			select {
			case ok := <-result:
				if ok {
					t.Fatal("Dequeue returned true after Finish with no producers")
				}
			case <-time.After(time.Second):
				t.Fatal("Dequeue never returned after Finish")
			}

			if !q.Finished() {
				t.Fatal("Finished: got false, want true")
			}
		})
	}
}

// TestFinishAfterPartialProduction is scenario 4: N=4, enqueue [1,2,3],
// start five dequeue calls, then Finish; three succeed with the values
// 1, 2, 3 (checked as a set, since reservation order is not observed
// here) and two return false.
func TestFinishAfterPartialProduction(t *testing.T) {
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			q, err := v.new(4)
			if err != nil {
				t.Fatalf("new: %v", err)
			}
			for _, x := range []int{1, 2, 3} {
				q.Enqueue(x)
			}

			type result struct {
				idx int
				ok  bool
				val int
			}
			results := make(chan result, 5)
			for i := range 5 {
				go func(idx int) {
					var out int
					ok := q.Dequeue(&out)
					results <- result{idx, ok, out}
				}(i)
			}

			// Give the five dequeues a chance to reserve their head
			// tickets before Finish is called, matching the scenario's
			// "five in flight" premise.
			time.Sleep(50 * time.Millisecond)
			q.Finish()

			var succeeded []int
			var failed int
			for range 5 {
				r := <-results
				if r.ok {
					succeeded = append(succeeded, r.val)
				} else {
					failed++
				}
			}

			if len(succeeded) != 3 || failed != 2 {
				t.Fatalf("got %d succeeded (%v), %d failed; want 3 succeeded, 2 failed", len(succeeded), succeeded, failed)
			}
			sort.Ints(succeeded)
			if succeeded[0] != 1 || succeeded[1] != 2 || succeeded[2] != 3 {
				t.Fatalf("succeeded values: got %v, want [1 2 3]", succeeded)
			}
		})
	}
}

func TestEmpty(t *testing.T) {
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			q, err := v.new(4)
			if err != nil {
				t.Fatalf("new: %v", err)
			}
			if !q.Empty() {
				t.Fatal("Empty: got false on fresh queue")
			}
			q.Enqueue(1)
			if q.Empty() {
				t.Fatal("Empty: got true after Enqueue")
			}
			var out int
			q.Dequeue(&out)
			if !q.Empty() {
				t.Fatal("Empty: got false after draining")
			}
		})
	}
}

func TestTryDequeue(t *testing.T) {
	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			q, err := v.new(4)
			if err != nil {
				t.Fatalf("new: %v", err)
			}
			var out int
			if q.TryDequeue(&out) {
				t.Fatal("TryDequeue: got true on empty queue")
			}
			q.Enqueue(7)
			if !q.TryDequeue(&out) || out != 7 {
				t.Fatalf("TryDequeue: got (%d, ok), want (7, true)", out)
			}
			if q.TryDequeue(&out) {
				t.Fatal("TryDequeue: got true after drain")
			}
		})
	}
}
