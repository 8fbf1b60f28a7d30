package sim

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"liftsim/src/config"
	"liftsim/src/dispatcher"
	"liftsim/src/timer"
	"liftsim/src/types"
)

var ErrStopped = errors.New("runner stopped")

// RunnerCmd is an operation on the system, executed on the runner goroutine.
type RunnerCmd struct {
	Exec func(system *dispatcher.System)
}

// Runner owns a System in real time. The tick, every phase timer and every
// command run on the single goroutine inside Run.
type Runner struct {
	system *dispatcher.System
	clock  *timer.Real
	tick   time.Duration
	cmds   chan RunnerCmd
	done   chan struct{}
}

func NewRunner(cfg config.Config, sink types.EventSink) (*Runner, error) {
	clock := timer.NewReal()
	system, err := dispatcher.NewSystem(cfg, clock, sink)
	if err != nil {
		return nil, err
	}
	return &Runner{
		system: system,
		clock:  clock,
		tick:   cfg.TickPeriod,
		cmds:   make(chan RunnerCmd),
		done:   make(chan struct{}),
	}, nil
}

// Run blocks until ctx is done.
func (r *Runner) Run(ctx context.Context) {
	ticker := time.NewTicker(r.tick)
	defer ticker.Stop()
	defer r.clock.Close()
	defer close(r.done)

	slog.Info("Runner started", "tick", r.tick)
	for {
		select {
		case <-ctx.Done():
			slog.Info("Runner stopped")
			return
		case <-ticker.C:
			r.system.Tick()
		case fired := <-r.clock.Fired():
			fired()
		case cmd := <-r.cmds:
			cmd.Exec(r.system)
		}
	}
}

// Execute runs cmd on the runner goroutine and waits for it to finish.
func (r *Runner) Execute(cmd RunnerCmd) error {
	finished := make(chan struct{})
	wrapped := RunnerCmd{Exec: func(system *dispatcher.System) {
		defer close(finished)
		cmd.Exec(system)
	}}
	select {
	case r.cmds <- wrapped:
	case <-r.done:
		return ErrStopped
	}
	<-finished
	return nil
}

func (r *Runner) RequestCall(floor int, dir types.Direction) (bool, error) {
	var accepted bool
	var callErr error
	if err := r.Execute(RunnerCmd{Exec: func(system *dispatcher.System) {
		accepted, callErr = system.RequestCall(floor, dir)
	}}); err != nil {
		return false, err
	}
	return accepted, callErr
}

func (r *Runner) Configure(floors, elevators int) error {
	var cfgErr error
	if err := r.Execute(RunnerCmd{Exec: func(system *dispatcher.System) {
		cfgErr = system.Configure(floors, elevators)
	}}); err != nil {
		return err
	}
	return cfgErr
}

// ConfigureInput rebuilds the building from operator-typed counts.
func (r *Runner) ConfigureInput(floors, elevators string) error {
	var cfgErr error
	if err := r.Execute(RunnerCmd{Exec: func(system *dispatcher.System) {
		cfgErr = system.ConfigureInput(floors, elevators)
	}}); err != nil {
		return err
	}
	return cfgErr
}

func (r *Runner) Snapshot() (dispatcher.Snapshot, error) {
	var snapshot dispatcher.Snapshot
	err := r.Execute(RunnerCmd{Exec: func(system *dispatcher.System) {
		snapshot = system.Snapshot()
	}})
	return snapshot, err
}
