package animations

// Animation advances a frame index by Step every SpeedInTps ticks.
type Animation struct {
	First      int
	Last       int
	Step       int // how many indices do we move per frame
	SpeedInTps int // how many ticks before next frame
	Loop       bool

	ticks int
	frame int
	done  bool
}

func NewAnimation(first, last, step, speed int, loop bool) *Animation {
	return &Animation{
		First:      first,
		Last:       last,
		Step:       step,
		SpeedInTps: speed,
		Loop:       loop,
		frame:      first,
	}
}

// Update counts one tick. A non-looping animation stops on Last and
// reports Done once it tries to step past it.
func (a *Animation) Update() {
	if a.done {
		return
	}
	a.ticks++
	if a.ticks < a.SpeedInTps {
		return
	}
	a.ticks = 0
	a.frame += a.Step
	if a.frame > a.Last {
		if a.Loop {
			a.frame = a.First
			return
		}
		a.frame = a.Last
		a.done = true
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

func (a *Animation) Done() bool {
	return a.done
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.ticks = 0
	a.done = false
}
