package dispatcher

import (
	"log/slog"

	"liftsim/src/config"
	"liftsim/src/timer"
	"liftsim/src/types"
)

// System is the surface the presentation side talks to. Configure swaps in a
// fresh Dispatcher, so nothing of an old fleet leaks into a new one.
type System struct {
	base    config.Config
	clock   timer.Clock
	sink    types.EventSink
	current *Dispatcher
}

func NewSystem(cfg config.Config, clock timer.Clock, sink types.EventSink) (*System, error) {
	current, err := New(cfg, clock, sink)
	if err != nil {
		return nil, err
	}
	return &System{base: cfg, clock: clock, sink: sink, current: current}, nil
}

// Configure rebuilds the fleet. On error the running fleet is untouched.
func (s *System) Configure(floors, elevators int) error {
	next, err := New(s.base.WithCounts(floors, elevators), s.clock, s.sink)
	if err != nil {
		slog.Warn("Configuration rejected", "floors", floors, "elevators", elevators, "err", err)
		return err
	}
	s.current.Stop()
	s.current = next
	s.sink.Emit(types.Reconfigured{Floors: floors, Elevators: elevators})
	slog.Info("Configured", "floors", floors, "elevators", elevators)
	return nil
}

// ConfigureInput parses operator input before configuring.
func (s *System) ConfigureInput(floors, elevators string) error {
	f, e, err := config.ParseCounts(floors, elevators)
	if err != nil {
		slog.Warn("Configuration rejected", "floors", floors, "elevators", elevators, "err", err)
		return err
	}
	return s.Configure(f, e)
}

func (s *System) RequestCall(floor int, dir types.Direction) (bool, error) {
	return s.current.RequestCall(floor, dir)
}

func (s *System) Tick() bool { return s.current.Tick() }

func (s *System) Snapshot() Snapshot { return s.current.Snapshot() }

func (s *System) Config() config.Config { return s.current.Config() }
