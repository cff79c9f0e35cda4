package syncs

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestSemaphore(t *testing.T) {
	sem := NewSemaphore(2)
	var running, peak atomic.Int64
	var wg sync.WaitGroup
	for range 10 {
		sem.Acquire()
		wg.Go(func() {
			defer sem.Release()
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			running.Add(-1)
		})
	}
	wg.Wait()
	if peak.Load() > 2 {
		t.Fatalf("got %v", peak.Load())
	}
}
