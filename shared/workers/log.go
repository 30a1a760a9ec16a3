package workers

import "sync"

// Log collects output from a background run. The run appends from its own
// goroutine while the draw loop reads, so all access is locked.
type Log struct {
	mu      sync.Mutex
	lines   []string
	max     int
	running bool
	wg      sync.WaitGroup
}

// NewLog keeps at most max lines; zero keeps everything.
func NewLog(max int) *Log {
	return &Log{max: max}
}

// Append adds a line, dropping the oldest beyond the limit.
func (l *Log) Append(line string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, line)
	if l.max > 0 && len(l.lines) > l.max {
		l.lines = append(l.lines[:0], l.lines[len(l.lines)-l.max:]...)
	}
}

// Lines returns a copy of the current log.
func (l *Log) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// Start runs fn on a new goroutine. It returns false without starting
// anything while a previous run is still going.
func (l *Log) Start(fn func(*Log)) bool {
	l.mu.Lock()
	if l.running {
		l.mu.Unlock()
		return false
	}
	l.running = true
	l.wg.Add(1)
	l.mu.Unlock()

	go func() {
		defer l.wg.Done()
		defer func() {
			l.mu.Lock()
			l.running = false
			l.mu.Unlock()
		}()
		fn(l)
	}()
	return true
}

func (l *Log) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// Wait blocks until the current run, if any, has returned.
func (l *Log) Wait() {
	l.wg.Wait()
}
