package systems

import (
	"context"
	"fmt"

	"github.com/automoto/blitkit/components"
	cfg "github.com/automoto/blitkit/config"
	"github.com/automoto/blitkit/shared/workers"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// UpdateThreads starts one of the worker demos on a number key. Only one
// demo runs at a time; it reports into the scene's log as it goes.
func UpdateThreads(ecs *ecs.ECS) {
	entry, ok := components.Threads.First(ecs.World)
	if !ok {
		return
	}
	threadLog := components.Threads.Get(entry).Log
	if threadLog.Running() {
		return
	}

	var run func(*workers.Log)
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		run = runHandoff
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		run = runCounter
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		run = runAtomicCounter
	default:
		return
	}

	threadLog.Start(run)
}

// WaitThreads blocks until the running worker demo, if any, has finished.
func WaitThreads(ecs *ecs.ECS) {
	entry, ok := components.Threads.First(ecs.World)
	if !ok {
		return
	}
	components.Threads.Get(entry).Log.Wait()
}

func runHandoff(l *workers.Log) {
	l.Append("-- producer / consumer --")
	consumed := workers.RunHandoff(cfg.Threads.HandoffItems, cfg.Threads.HandoffDelay, func(ev workers.HandoffEvent) {
		if ev.Produced {
			l.Append(fmt.Sprintf("produced %d", ev.Value))
		} else {
			l.Append(fmt.Sprintf("    consumed %d", ev.Value))
		}
	})
	l.Append(fmt.Sprintf("done, consumed %v", consumed))
}

func runCounter(l *workers.Log) {
	l.Append("-- semaphore counter --")
	total, err := workers.RunCounter(context.Background(), cfg.Threads.CounterWorkers, cfg.Threads.CounterRounds, cfg.Threads.CounterMaxDelay, func(ev workers.CounterEvent) {
		l.Append(fmt.Sprintf("worker %d: counter = %d", ev.Worker, ev.Value))
	})
	if err != nil {
		l.Append(fmt.Sprintf("failed: %v", err))
		return
	}
	l.Append(fmt.Sprintf("done, counter = %d", total))
}

func runAtomicCounter(l *workers.Log) {
	l.Append("-- atomic counter --")
	total := workers.RunAtomicCounter(cfg.Threads.AtomicWorkers, cfg.Threads.AtomicIterations, 0)
	want := cfg.Threads.AtomicWorkers * cfg.Threads.AtomicIterations
	l.Append(fmt.Sprintf("done, counter = %d (want %d)", total, want))
}

// DrawThreads prints the demo log.
func DrawThreads(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Threads.First(ecs.World)
	if !ok {
		return
	}
	threadLog := components.Threads.Get(entry).Log

	status := "Idle"
	if threadLog.Running() {
		status = "Running..."
	}
	drawLines(screen, []string{status}, 40, 8, cfg.Yellow)
	drawLines(screen, threadLog.Lines(), 40, 32, cfg.White)
}
