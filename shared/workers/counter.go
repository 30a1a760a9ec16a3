package workers

import (
	"context"
	"math/rand/v2"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// SemaphoreCounter serialises read-modify-write access to a shared int with
// a binary semaphore.
type SemaphoreCounter struct {
	sem   *semaphore.Weighted
	value int
}

func NewSemaphoreCounter() *SemaphoreCounter {
	return &SemaphoreCounter{sem: semaphore.NewWeighted(1)}
}

// Add increments the counter by delta and returns the new value.
func (c *SemaphoreCounter) Add(ctx context.Context, delta int) (int, error) {
	if err := c.sem.Acquire(ctx, 1); err != nil {
		return 0, err
	}
	defer c.sem.Release(1)

	v := c.value
	// widen the read-modify-write window so an unguarded counter would race
	time.Sleep(time.Microsecond)
	c.value = v + delta
	return c.value, nil
}

// Value returns the current count.
func (c *SemaphoreCounter) Value() int {
	_ = c.sem.Acquire(context.Background(), 1)
	defer c.sem.Release(1)
	return c.value
}

// CounterEvent is one increment reported by RunCounter.
type CounterEvent struct {
	Worker int
	Value  int
}

// RunCounter starts workers goroutines that each add 1 to a shared
// SemaphoreCounter iterations times, pausing up to maxDelay before every
// increment. It waits for all workers and returns the final value.
func RunCounter(ctx context.Context, workers, iterations int, maxDelay time.Duration, onEvent func(CounterEvent)) (int, error) {
	counter := NewSemaphoreCounter()
	g, ctx := errgroup.WithContext(ctx)

	for w := 0; w < workers; w++ {
		worker := w
		g.Go(func() error {
			for i := 0; i < iterations; i++ {
				randomPause(ctx, maxDelay)
				v, err := counter.Add(ctx, 1)
				if err != nil {
					return err
				}
				if onEvent != nil {
					onEvent(CounterEvent{Worker: worker, Value: v})
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return counter.Value(), err
	}
	return counter.Value(), nil
}

// RunAtomicCounter is RunCounter with a lock-free counter.
func RunAtomicCounter(workers, iterations int, maxDelay time.Duration) int64 {
	var counter atomic.Int64
	g := new(errgroup.Group)

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for i := 0; i < iterations; i++ {
				randomPause(context.Background(), maxDelay)
				counter.Add(1)
			}
			return nil
		})
	}

	_ = g.Wait()
	return counter.Load()
}

func randomPause(ctx context.Context, maxDelay time.Duration) {
	if maxDelay <= 0 {
		return
	}
	t := time.NewTimer(rand.N(maxDelay))
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
