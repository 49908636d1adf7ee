package game

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ErrLoopRunning is returned by Run when the loop is already running
var ErrLoopRunning = errors.New("loop already running")

// LoopStats provides statistics about tick execution
type LoopStats struct {
	Ticks         int64
	HookFailures  int64
	LastDelta     float64
	MinDuration   time.Duration
	MaxDuration   time.Duration
	AvgDuration   time.Duration
	LastDuration  time.Duration
	TotalDuration time.Duration
}

type loopStatsInternal struct {
	ticks         int64
	lastDelta     float64
	minDuration   time.Duration
	maxDuration   time.Duration
	totalDuration time.Duration
	lastDuration  time.Duration
}

// Loop drives a Game tick by tick, computing deltas from a Clock.
// Step and Run must be called from a single goroutine; Stop may be called from any.
type Loop struct {
	game  *Game
	clock Clock

	last   time.Duration
	primed bool

	running  atomic.Bool
	stopped  atomic.Bool
	stop     chan struct{}
	stopOnce sync.Once

	stats loopStatsInternal
}

// NewLoop creates a loop for game. A nil clock uses a SystemClock.
func NewLoop(game *Game, clock Clock) *Loop {
	if clock == nil {
		clock = NewSystemClock()
	}

	return &Loop{
		game:  game,
		clock: clock,
		stop:  make(chan struct{}),
		stats: loopStatsInternal{
			minDuration: time.Duration(1<<63 - 1),
		},
	}
}

// Game returns the driven game
func (l *Loop) Game() *Game {
	return l.game
}

// Step runs a single tick against s and returns the delta it used, in seconds.
// The first step has no previous timestamp and uses a delta of 0.
func (l *Loop) Step(s Surface) float64 {
	now := l.clock.Now()

	var dt float64
	if l.primed {
		dt = (now - l.last).Seconds()
	}
	l.last = now
	l.primed = true

	start := time.Now()
	l.game.Tick(s, dt)
	duration := time.Since(start)

	stats := &l.stats
	stats.ticks++
	stats.lastDelta = dt
	stats.lastDuration = duration
	stats.totalDuration += duration

	if duration < stats.minDuration {
		stats.minDuration = duration
	}
	if duration > stats.maxDuration {
		stats.maxDuration = duration
	}

	return dt
}

// Run steps the loop every interval until the context is cancelled or Stop is called
func (l *Loop) Run(ctx context.Context, s Surface, interval time.Duration) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrLoopRunning
	}
	defer l.running.Store(false)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-l.stop:
			return nil
		case <-ticker.C:
			l.Step(s)
		}
	}
}

// Stop ends Run. A stopped loop cannot be restarted.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		l.stopped.Store(true)
		close(l.stop)
	})
}

// Stopped reports whether Stop has been called
func (l *Loop) Stopped() bool {
	return l.stopped.Load()
}

// Stats returns statistics about tick execution
func (l *Loop) Stats() LoopStats {
	internal := l.stats

	avgDuration := time.Duration(0)
	minDuration := time.Duration(0)
	if internal.ticks > 0 {
		avgDuration = internal.totalDuration / time.Duration(internal.ticks)
		minDuration = internal.minDuration
	}

	return LoopStats{
		Ticks:         internal.ticks,
		HookFailures:  l.game.HookFailures(),
		LastDelta:     internal.lastDelta,
		MinDuration:   minDuration,
		MaxDuration:   internal.maxDuration,
		AvgDuration:   avgDuration,
		LastDuration:  internal.lastDuration,
		TotalDuration: internal.totalDuration,
	}
}
