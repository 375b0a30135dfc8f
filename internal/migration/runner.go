// Package migration drives a gas migration on a background ticker for
// callers that have no event loop of their own, such as the CLI.
package migration

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/welltegra/welllab/internal/physics"
)

// ErrRunning is returned by Start while a previous run is still active.
var ErrRunning = errors.New("migration already running")

// Snapshot is the state of the bubble after a tick.
type Snapshot struct {
	Tick      int
	Position  float64
	Migrating bool
	Reading   physics.GasReading
}

// Runner steps a GasMigration once per interval.
type Runner struct {
	interval time.Duration
	logger   *zap.Logger

	mu      sync.Mutex
	sim     *physics.GasMigration
	running bool
}

// NewRunner wraps sim. A non-positive interval uses physics.MigrationInterval.
func NewRunner(sim *physics.GasMigration, interval time.Duration, logger *zap.Logger) *Runner {
	if interval <= 0 {
		interval = physics.MigrationInterval
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{sim: sim, interval: interval, logger: logger}
}

// Update runs fn against the simulation under the runner's lock.
func (r *Runner) Update(fn func(*physics.GasMigration)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fn(r.sim)
}

// Snapshot returns the current state without stepping.
func (r *Runner) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snapshotLocked(0)
}

func (r *Runner) snapshotLocked(tick int) Snapshot {
	return Snapshot{
		Tick:      tick,
		Position:  r.sim.Position(),
		Migrating: r.sim.Migrating(),
		Reading:   r.sim.Reading(),
	}
}

// Handle controls one run.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
}

// Stop cancels the run and waits for the ticker goroutine to exit. No
// callback is invoked after Stop returns. Stop is safe to call repeatedly.
func (h *Handle) Stop() {
	h.cancel()
	<-h.done
}

// Done is closed when the run ends, either by Stop, by ctx, or because the
// bubble reached the surface.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Start begins ticking. onTick is called from a single goroutine after each
// step that moved the bubble. The run ends by itself once migration stops.
func (r *Runner) Start(ctx context.Context, onTick func(Snapshot)) (*Handle, error) {
	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		return nil, ErrRunning
	}
	r.running = true
	r.mu.Unlock()

	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel, done: make(chan struct{})}

	go r.loop(ctx, h, onTick)
	return h, nil
}

func (r *Runner) loop(ctx context.Context, h *Handle, onTick func(Snapshot)) {
	ticker := time.NewTicker(r.interval)
	defer func() {
		ticker.Stop()
		r.mu.Lock()
		r.running = false
		r.mu.Unlock()
		close(h.done)
	}()

	tick := 0
	for {
		select {
		case <-ctx.Done():
			r.logger.Debug("migration cancelled", zap.Int("ticks", tick))
			return
		case <-ticker.C:
		}

		r.mu.Lock()
		moved := r.sim.Step()
		if moved {
			tick++
		}
		snap := r.snapshotLocked(tick)
		r.mu.Unlock()

		if moved && onTick != nil && ctx.Err() == nil {
			onTick(snap)
		}
		if !snap.Migrating {
			r.logger.Debug("migration finished",
				zap.Int("ticks", tick),
				zap.Float64("position", snap.Position),
				zap.Float64("expansion_ratio", snap.Reading.ExpansionRatio))
			return
		}
	}
}
