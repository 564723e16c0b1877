// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tickq_test

import (
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/tickq"
)

// startStressWatchdog watches a stress test's progress: if neither
// producer nor consumer progress counters move for progressTimeout, it
// sets timedOut and closes done. The test reads timedOut only after its
// producers and consumers have joined, so a stall that never resolves
// still blocks the test. Grounded on the teacher library's
// startStressWatchdog (lockfree_test.go).
func startStressWatchdog(done chan struct{}, closeOnce *sync.Once, timedOut *atomix.Bool, produced, consumed *atomix.Int64, totalItems int64) {
	const (
		tick            = 20 * time.Millisecond
		progressTimeout = 10 * time.Second
	)
	go func() {
		ticker := time.NewTicker(tick)
		defer ticker.Stop()

		lastProduced := produced.Load()
		lastConsumed := consumed.Load()
		lastProgress := time.Now()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				p, c := produced.Load(), consumed.Load()
				if p != lastProduced || c != lastConsumed {
					lastProduced, lastConsumed = p, c
					lastProgress = time.Now()
					continue
				}
				if c < totalItems && time.Since(lastProgress) >= progressTimeout {
					timedOut.Store(true)
					closeOnce.Do(func() { close(done) })
					return
				}
			}
		}
	}()
}

// TestMultiProducerMultiConsumerConservation is scenario 5: N=8, 4
// producers x 10000 enqueues of distinct integers, 4 consumers running
// until Finish is called after producers join; the union of dequeued
// values must equal the union enqueued, with no duplicates.
func TestMultiProducerMultiConsumerConservation(t *testing.T) {
	if testing.Short() {
		t.Skip("skip: stress test")
	}

	for _, v := range variants() {
		t.Run(v.name, func(t *testing.T) {
			const (
				numProducers = 4
				numConsumers = 4
				itemsPerProd = 10000
				totalItems   = numProducers * itemsPerProd
				queueCap     = 8
			)

			q, err := v.new(queueCap)
			if err != nil {
				t.Fatalf("new: %v", err)
			}

			seen := make([]atomix.Int32, totalItems)
			var produced, consumed atomix.Int64
			var closeOnce sync.Once
			var timedOut atomix.Bool
			done := make(chan struct{})

			startStressWatchdog(done, &closeOnce, &timedOut, &produced, &consumed, totalItems)

			var prodWg sync.WaitGroup
			for p := range numProducers {
				prodWg.Add(1)
				go func(id int) {
					defer prodWg.Done()
					start := id * itemsPerProd
					for i := range itemsPerProd {
						q.Enqueue(start + i)
						produced.Add(1)
					}
				}(p)
			}

			var consWg sync.WaitGroup
			for range numConsumers {
				consWg.Add(1)
				go func() {
					defer consWg.Done()
					var val int
					for q.Dequeue(&val) {
						if val < 0 || val >= totalItems {
							t.Errorf("dequeued out-of-range value %d", val)
							continue
						}
						seen[val].Add(1)
						consumed.Add(1)
					}
				}()
			}

			prodWg.Wait()
			q.Finish()
			consWg.Wait()
			closeOnce.Do(func() { close(done) })

			if timedOut.Load() {
				t.Fatalf("stress test stalled: produced=%d consumed=%d", produced.Load(), consumed.Load())
			}

			var missing, duplicates int
			for i := range totalItems {
				switch seen[i].Load() {
				case 0:
					missing++
				case 1:
				default:
					duplicates++
				}
			}
			if duplicates > 0 {
				t.Errorf("%d duplicated values", duplicates)
			}
			if missing > 0 {
				t.Errorf("%d missing values out of %d", missing, totalItems)
			}
		})
	}
}
