package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleFlight_DeduplicatesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var flight SingleFlight
	var executions atomic.Int32
	entered := make(chan struct{})
	release := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, _, _ = flight.Do("key", func() (any, error) {
			executions.Add(1)
			close(entered)
			<-release
			return "value", nil
		})
	}()

	// Wait until the first call holds the flight, then pile on.
	<-entered

	const waiters = 4
	shared := make([]bool, waiters)
	for i := 0; i < waiters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			val, err, wasShared := flight.Do("key", func() (any, error) {
				executions.Add(1)
				return "value", nil
			})
			if err != nil || val != "value" {
				t.Errorf("waiter %d: val=%v err=%v", idx, val, err)
			}
			shared[idx] = wasShared
		}(i)
	}

	// Give the waiters time to join the in-flight call before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	if got := executions.Load(); got != 1 {
		t.Fatalf("fn executed %d times, want 1", got)
	}
	for i, wasShared := range shared {
		if !wasShared {
			t.Fatalf("waiter %d did not share the in-flight call", i)
		}
	}
}

func TestSingleFlight_DistinctKeysRunIndependently(t *testing.T) {
	t.Parallel()

	var flight SingleFlight
	a, _, _ := flight.Do("a", func() (any, error) { return 1, nil })
	b, _, _ := flight.Do("b", func() (any, error) { return 2, nil })

	if a != 1 || b != 2 {
		t.Fatalf("got %v/%v, want 1/2", a, b)
	}
}
