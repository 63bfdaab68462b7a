package resilience

import (
	"testing"
	"time"
)

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker(3, time.Minute, 1)

	for i := 0; i < 3; i++ {
		if err := b.Allow(); err != nil {
			t.Fatalf("allow before opening: %v", err)
		}
		b.RecordFailure()
	}

	if got := b.State(); got != CircuitStateOpen {
		t.Fatalf("state = %s, want open", got)
	}
	if err := b.Allow(); err != ErrCircuitOpen {
		t.Fatalf("allow while open = %v, want ErrCircuitOpen", err)
	}
}

func TestCircuitBreaker_HalfOpenRecoversAfterTimeout(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker(1, 10*time.Second, 1)
	now := time.Now()
	b.now = func() time.Time { return now }

	b.RecordFailure()
	if got := b.State(); got != CircuitStateOpen {
		t.Fatalf("state = %s, want open", got)
	}

	now = now.Add(11 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("allow after open timeout: %v", err)
	}
	if got := b.State(); got != CircuitStateHalfOpen {
		t.Fatalf("state = %s, want half_open", got)
	}

	b.RecordSuccess()
	if got := b.State(); got != CircuitStateClosed {
		t.Fatalf("state = %s, want closed after half-open success", got)
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker(1, 10*time.Second, 1)
	now := time.Now()
	b.now = func() time.Time { return now }

	b.RecordFailure()
	now = now.Add(11 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("allow half-open probe: %v", err)
	}

	b.RecordFailure()
	if got := b.State(); got != CircuitStateOpen {
		t.Fatalf("state = %s, want reopened", got)
	}
}

func TestCircuitBreaker_SuccessResetsFailureStreak(t *testing.T) {
	t.Parallel()

	b := NewCircuitBreaker(2, time.Minute, 1)

	b.RecordFailure()
	b.RecordSuccess()
	b.RecordFailure()

	if got := b.State(); got != CircuitStateClosed {
		t.Fatalf("state = %s, want closed: streak was broken by a success", got)
	}
}
