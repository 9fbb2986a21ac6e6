package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/logging"
	"lifegrid/internal/metrics"
	"lifegrid/pkg/torus"
)

// Observer receives every committed generation.
type Observer func(sim core.Sim, rep torus.Report)

// Options configures a Runner.
type Options struct {
	// Interval is the time between generations. Zero runs back to back.
	Interval time.Duration
	// Generations stops the run after this many generations. Zero means no limit.
	Generations int
	// StopWhenFrozen ends the run on the first frozen report.
	StopWhenFrozen bool

	Logger   *slog.Logger
	Metrics  *metrics.Recorder
	Observer Observer
}

// Summary describes how a run ended.
type Summary struct {
	Generations int
	AliveCount  int
	Frozen      bool
	Reason      string
}

const (
	stopLimit     = "limit"
	stopFrozen    = "frozen"
	stopCancelled = "cancelled"
	stopError     = "error"
)

const pausePoll = 20 * time.Millisecond

// Runner drives a sim on a fixed cadence. It owns the paused flag; the sim
// itself is only ever stepped from the goroutine calling Run or Tick.
type Runner struct {
	sim    core.Sim
	opts   Options
	logger *slog.Logger
	paused atomic.Bool
	last   torus.Report
}

// NewRunner wraps sim with the provided options.
func NewRunner(sim core.Sim, opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	return &Runner{sim: sim, opts: opts, logger: logger.With("sim", sim.Name())}
}

// Sim returns the driven simulation.
func (r *Runner) Sim() core.Sim { return r.sim }

// Pause stops Tick from advancing the sim.
func (r *Runner) Pause() { r.paused.Store(true) }

// Resume lets Tick advance the sim again.
func (r *Runner) Resume() { r.paused.Store(false) }

// TogglePause flips the paused flag and returns the new value.
func (r *Runner) TogglePause() bool {
	for {
		old := r.paused.Load()
		if r.paused.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

// Paused reports whether the runner is paused.
func (r *Runner) Paused() bool { return r.paused.Load() }

// Last returns the most recent report.
func (r *Runner) Last() torus.Report { return r.last }

// Reset rebuilds the sim with seed.
func (r *Runner) Reset(seed int64) error {
	if err := r.sim.Reset(seed); err != nil {
		return fmt.Errorf("reset %s: %w", r.sim.Name(), err)
	}
	r.last = torus.Report{}
	r.logger.Info("grid reset", "seed", seed, "size", r.sim.Size())
	return nil
}

// FinishSelection starts a sim that is still in its selection phase.
func (r *Runner) FinishSelection() error {
	sel, ok := r.sim.(core.Selector)
	if !ok || !sel.Selecting() {
		return nil
	}
	if err := sel.Start(); err != nil {
		return fmt.Errorf("finish selection: %w", err)
	}
	alive := 0
	for _, c := range r.sim.Cells() {
		alive += int(c)
	}
	r.logger.Info("selection finished", "alive", alive)
	return nil
}

// Tick advances one generation unless paused. The returned flag reports
// whether a generation was committed.
func (r *Runner) Tick() (torus.Report, bool, error) {
	if r.paused.Load() {
		return torus.Report{}, false, nil
	}
	start := time.Now()
	rep, err := r.sim.Step()
	if err != nil {
		return torus.Report{}, false, fmt.Errorf("generation %d: %w", r.last.Generation+1, err)
	}
	took := time.Since(start)
	r.last = rep

	r.opts.Metrics.Observe(r.sim.Name(), rep, took)
	r.logger.Debug("generation",
		"generation", rep.Generation,
		"alive", rep.AliveCount,
		"changed", len(rep.Changed),
		"frozen", rep.Frozen,
		"took", took)
	if r.logger.Enabled(context.Background(), logging.LevelTrace) {
		for _, c := range rep.Changed {
			r.logger.Log(context.Background(), logging.LevelTrace, "cell flipped", "x", c.X, "y", c.Y, "z", c.Z)
		}
	}
	if !rep.Frozen {
		r.opts.Metrics.Cue(r.sim.Name())
	}
	if r.opts.Observer != nil {
		r.opts.Observer(r.sim, rep)
	}
	return rep, true, nil
}

// Run ticks until the generation limit, a frozen report (when configured) or
// cancellation of ctx.
func (r *Runner) Run(ctx context.Context) (Summary, error) {
	if err := r.FinishSelection(); err != nil {
		return Summary{}, err
	}
	r.logger.Info("run started",
		"size", r.sim.Size(),
		"interval", r.opts.Interval,
		"generations", r.opts.Generations,
		"stop_when_frozen", r.opts.StopWhenFrozen)

	var tick <-chan time.Time
	if r.opts.Interval > 0 {
		ticker := time.NewTicker(r.opts.Interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	count := 0
	for {
		if tick != nil {
			select {
			case <-ctx.Done():
				return r.finish(count, stopCancelled), nil
			case <-tick:
			}
		} else if ctx.Err() != nil {
			return r.finish(count, stopCancelled), nil
		}

		rep, ran, err := r.Tick()
		if err != nil {
			return r.finish(count, stopError), err
		}
		if !ran {
			if tick == nil {
				select {
				case <-ctx.Done():
				case <-time.After(pausePoll):
				}
			}
			continue
		}
		count++
		if rep.Frozen && r.opts.StopWhenFrozen {
			return r.finish(count, stopFrozen), nil
		}
		if r.opts.Generations > 0 && count >= r.opts.Generations {
			return r.finish(count, stopLimit), nil
		}
	}
}

func (r *Runner) finish(count int, reason string) Summary {
	s := Summary{
		Generations: count,
		AliveCount:  r.last.AliveCount,
		Frozen:      r.last.Frozen,
		Reason:      reason,
	}
	r.logger.Info("run stopped", "reason", reason, "generations", count, "alive", s.AliveCount)
	return s
}
