package animations

import "testing"

func TestAnimationStopsOnLast(t *testing.T) {
	a := NewAnimation(0, 10, 1, 1, false)
	for i := 0; i < 10; i++ {
		a.Update()
	}
	if a.Frame() != 10 || a.Done() {
		t.Fatalf("after 10 ticks Frame() = %d, Done() = %v, want 10, false", a.Frame(), a.Done())
	}

	a.Update()
	if a.Frame() != 10 || !a.Done() {
		t.Errorf("after 11 ticks Frame() = %d, Done() = %v, want 10, true", a.Frame(), a.Done())
	}

	a.Update()
	if a.Frame() != 10 {
		t.Errorf("Frame() = %d after Done, want 10", a.Frame())
	}
}

func TestAnimationLoops(t *testing.T) {
	a := NewAnimation(2, 6, 2, 3, true)
	want := []int{2, 2, 4, 4, 4, 6, 6, 6, 2}
	for i, w := range want {
		a.Update()
		if got := a.Frame(); got != w {
			t.Errorf("tick %d: Frame() = %d, want %d", i+1, got, w)
		}
	}
	if a.Done() {
		t.Error("looping animation reported Done")
	}
}

func TestAnimationRestart(t *testing.T) {
	a := NewAnimation(0, 1, 1, 1, false)
	a.Update()
	a.Update()
	a.Restart()
	if a.Frame() != 0 || a.Done() {
		t.Errorf("after Restart Frame() = %d, Done() = %v, want 0, false", a.Frame(), a.Done())
	}
}
