// Package lifecycle tracks the resources a scene has to release when it is
// left.
package lifecycle

import "sync"

// Cleanup is a stack of release functions. Run calls them newest first and
// only once, so a scene left through the back action and then through the
// window closing is not released twice.
type Cleanup struct {
	mu    sync.Mutex
	funcs []func()
	done  bool
}

// Add pushes f. Functions added after Run are called immediately.
func (c *Cleanup) Add(f func()) {
	c.mu.Lock()
	if c.done {
		c.mu.Unlock()
		f()
		return
	}
	c.funcs = append(c.funcs, f)
	c.mu.Unlock()
}

// Run calls every pushed function in reverse order.
func (c *Cleanup) Run() {
	c.mu.Lock()
	funcs := c.funcs
	c.funcs = nil
	c.done = true
	c.mu.Unlock()

	for i := len(funcs) - 1; i >= 0; i-- {
		funcs[i]()
	}
}

// Done reports whether Run has been called.
func (c *Cleanup) Done() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.done
}
