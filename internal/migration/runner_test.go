package migration

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/welltegra/welllab/internal/physics"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestRunner_RunsToSurface(t *testing.T) {
	sim := physics.NewGasMigration()
	sim.Release()
	r := NewRunner(sim, time.Millisecond, nil)

	var (
		mu    sync.Mutex
		snaps []Snapshot
	)
	h, err := r.Start(context.Background(), func(s Snapshot) {
		mu.Lock()
		snaps = append(snaps, s)
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	select {
	case <-h.Done():
	case <-time.After(10 * time.Second):
		h.Stop()
		t.Fatal("migration did not finish")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(snaps) == 0 {
		t.Fatal("expected ticks")
	}
	for i := 1; i < len(snaps); i++ {
		if snaps[i].Position >= snaps[i-1].Position {
			t.Fatalf("tick %d: position %v not below %v", i, snaps[i].Position, snaps[i-1].Position)
		}
	}
	last := snaps[len(snaps)-1]
	if last.Position != 0 || last.Migrating {
		t.Errorf("last snapshot = %+v, want surface and stopped", last)
	}
}

func TestRunner_StopIsSynchronous(t *testing.T) {
	sim := physics.NewGasMigration()
	sim.Release()
	r := NewRunner(sim, time.Millisecond, nil)

	var (
		mu      sync.Mutex
		stopped bool
		late    bool
	)
	h, err := r.Start(context.Background(), func(Snapshot) {
		mu.Lock()
		if stopped {
			late = true
		}
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("start: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	h.Stop()
	mu.Lock()
	stopped = true
	mu.Unlock()

	pos := r.Snapshot().Position
	time.Sleep(10 * time.Millisecond)
	if got := r.Snapshot().Position; got != pos {
		t.Errorf("position moved after stop: %v -> %v", pos, got)
	}

	mu.Lock()
	defer mu.Unlock()
	if late {
		t.Error("callback fired after Stop returned")
	}

	h.Stop()
}

func TestRunner_SingleRun(t *testing.T) {
	sim := physics.NewGasMigration()
	sim.Release()
	r := NewRunner(sim, time.Hour, nil)

	h, err := r.Start(context.Background(), nil)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	defer h.Stop()

	if _, err := r.Start(context.Background(), nil); !errors.Is(err, ErrRunning) {
		t.Fatalf("second start: got %v, want ErrRunning", err)
	}
}

func TestRunner_InactiveEndsImmediately(t *testing.T) {
	sim := physics.NewGasMigration()
	r := NewRunner(sim, time.Millisecond, nil)

	called := false
	h, err := r.Start(context.Background(), func(Snapshot) { called = true })
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	<-h.Done()
	if called {
		t.Error("idle bubble should not tick")
	}
	if r.Snapshot().Position != 100 {
		t.Error("idle bubble moved")
	}
}

func TestRunner_ContextCancel(t *testing.T) {
	sim := physics.NewGasMigration()
	sim.Release()
	r := NewRunner(sim, time.Hour, nil)

	ctx, cancel := context.WithCancel(context.Background())
	h, err := r.Start(ctx, nil)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	cancel()
	<-h.Done()

	r.Update(func(g *physics.GasMigration) { g.Pause() })
	if r.Snapshot().Migrating {
		t.Error("expected paused simulation")
	}
}
