package workers

import (
	"context"
	"sync"
	"testing"
	"time"
)

func TestSlotHandsOffInOrder(t *testing.T) {
	const n = 50

	var mu sync.Mutex
	produced, consumedEvents := 0, 0
	got := RunHandoff(n, time.Millisecond, func(ev HandoffEvent) {
		mu.Lock()
		defer mu.Unlock()
		if ev.Produced {
			produced++
		} else {
			consumedEvents++
		}
	})

	if len(got) != n {
		t.Fatalf("consumed %d values, want %d", len(got), n)
	}
	for i, v := range got {
		if v != i {
			t.Errorf("consumed[%d] = %d, want %d", i, v, i)
		}
	}
	if produced != n || consumedEvents != n {
		t.Errorf("events = %d produced / %d consumed, want %d each", produced, consumedEvents, n)
	}
}

func TestSlotBlocksWhenFull(t *testing.T) {
	s := NewSlot()
	s.Produce(7)

	done := make(chan struct{})
	go func() {
		s.Produce(8)
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("Produce() on a full slot returned before a Consume()")
	case <-time.After(20 * time.Millisecond):
	}

	if v := s.Consume(); v != 7 {
		t.Errorf("Consume() = %d, want 7", v)
	}
	<-done
	if v := s.Consume(); v != 8 {
		t.Errorf("Consume() = %d, want 8", v)
	}
}

func TestRunCounter(t *testing.T) {
	var mu sync.Mutex
	seen := map[int]bool{}

	got, err := RunCounter(context.Background(), 2, 25, time.Millisecond, func(ev CounterEvent) {
		mu.Lock()
		defer mu.Unlock()
		if seen[ev.Value] {
			t.Errorf("value %d reported twice", ev.Value)
		}
		seen[ev.Value] = true
	})
	if err != nil {
		t.Fatalf("RunCounter() error = %v", err)
	}
	if got != 50 {
		t.Errorf("RunCounter() = %d, want 50", got)
	}
	if len(seen) != 50 {
		t.Errorf("saw %d distinct values, want 50", len(seen))
	}
}

func TestRunCounterCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := RunCounter(ctx, 2, 10, 0, nil); err == nil {
		t.Error("RunCounter() with a cancelled context returned nil error")
	}
}

func TestRunAtomicCounter(t *testing.T) {
	if got := RunAtomicCounter(4, 100, 0); got != 400 {
		t.Errorf("RunAtomicCounter() = %d, want 400", got)
	}
}
