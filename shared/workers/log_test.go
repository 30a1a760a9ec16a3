package workers

import (
	"reflect"
	"testing"
)

func TestLogAppend(t *testing.T) {
	tests := []struct {
		name  string
		max   int
		lines []string
		want  []string
	}{
		{"under limit", 3, []string{"a", "b"}, []string{"a", "b"}},
		{"drops oldest", 2, []string{"a", "b", "c"}, []string{"b", "c"}},
		{"unlimited", 0, []string{"a", "b", "c"}, []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewLog(tt.max)
			for _, line := range tt.lines {
				l.Append(line)
			}
			if got := l.Lines(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lines() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLogStartRefusedWhileRunning(t *testing.T) {
	l := NewLog(0)
	release := make(chan struct{})

	if !l.Start(func(l *Log) { <-release }) {
		t.Fatal("first Start refused")
	}
	if !l.Running() {
		t.Error("Running() = false during a run")
	}
	if l.Start(func(l *Log) {}) {
		t.Error("second Start accepted while running")
	}

	close(release)
	l.Wait()
	if l.Running() {
		t.Error("Running() = true after Wait")
	}
}

func TestLogWaitJoinsRun(t *testing.T) {
	l := NewLog(0)
	l.Start(func(l *Log) {
		for i := 0; i < 100; i++ {
			l.Append("line")
		}
	})
	l.Wait()

	if got := len(l.Lines()); got != 100 {
		t.Errorf("lines after Wait = %d, want 100", got)
	}
}

func TestLogWaitWithoutRun(t *testing.T) {
	NewLog(0).Wait()
}
