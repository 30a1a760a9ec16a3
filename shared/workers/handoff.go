// Package workers contains the threading demos: a single-slot producer/consumer
// handoff and semaphore- and atomic-guarded shared counters.
package workers

import (
	"context"
	"sync"
	"time"
)

// Empty marks a Slot with no pending value.
const Empty = -1

// Slot is a single-value buffer shared by one producer and one consumer.
type Slot struct {
	mu         sync.Mutex
	canProduce *sync.Cond
	canConsume *sync.Cond
	value      int
}

func NewSlot() *Slot {
	s := &Slot{value: Empty}
	s.canProduce = sync.NewCond(&s.mu)
	s.canConsume = sync.NewCond(&s.mu)
	return s
}

// Produce blocks while the slot is full, then stores v.
func (s *Slot) Produce(v int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for s.value != Empty {
		s.canProduce.Wait()
	}
	s.value = v
	s.canConsume.Signal()
}

// Consume blocks while the slot is empty, then takes the stored value.
func (s *Slot) Consume() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	for s.value == Empty {
		s.canConsume.Wait()
	}
	v := s.value
	s.value = Empty
	s.canProduce.Signal()
	return v
}

// HandoffEvent is one step reported by RunHandoff.
type HandoffEvent struct {
	Produced bool // false for a consume
	Value    int
}

// RunHandoff moves values 0..n-1 from a producer goroutine to a consumer
// goroutine through one Slot. delay is an upper bound for the random pause
// before each step. onEvent is called from the worker goroutines and may be
// nil. Both workers always run to completion; RunHandoff returns once they
// are joined.
func RunHandoff(n int, delay time.Duration, onEvent func(HandoffEvent)) []int {
	slot := NewSlot()
	consumed := make([]int, 0, n)
	report := func(ev HandoffEvent) {
		if onEvent != nil {
			onEvent(ev)
		}
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			randomPause(context.Background(), delay)
			slot.Produce(i)
			report(HandoffEvent{Produced: true, Value: i})
		}
	}()

	go func() {
		defer wg.Done()
		for i := 0; i < n; i++ {
			randomPause(context.Background(), delay)
			v := slot.Consume()
			consumed = append(consumed, v)
			report(HandoffEvent{Value: v})
		}
	}()

	wg.Wait()
	return consumed
}
