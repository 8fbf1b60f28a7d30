package dispatcher

import (
	"errors"
	"fmt"
	"log/slog"

	"liftsim/src/config"
	"liftsim/src/elev"
	"liftsim/src/executor"
	"liftsim/src/orders"
	"liftsim/src/timer"
	"liftsim/src/types"
)

var ErrInvalidCall = errors.New("invalid call")

// Dispatcher is one configured building: its fleet, call registry and trip executor.
type Dispatcher struct {
	cfg      config.Config
	fleet    *elev.Fleet
	registry *orders.Registry
	executor *executor.Executor
}

// Snapshot is a copy of dispatcher state that is safe to keep.
type Snapshot struct {
	Elevators []elev.Elevator
	Pending   []types.Call
	Active    map[int]types.Call
}

func New(cfg config.Config, clock timer.Clock, sink types.EventSink) (*Dispatcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fleet := elev.NewFleet(cfg.Floors, cfg.Elevators)
	registry := orders.NewRegistry(cfg.Elevators, sink)
	return &Dispatcher{
		cfg:      cfg,
		fleet:    fleet,
		registry: registry,
		executor: executor.New(cfg, fleet, registry, clock, sink),
	}, nil
}

func (d *Dispatcher) Config() config.Config { return d.cfg }

// RequestCall submits a hall call. Duplicates return false without error.
func (d *Dispatcher) RequestCall(floor int, dir types.Direction) (bool, error) {
	switch {
	case floor < 1 || floor > d.cfg.Floors:
		return false, fmt.Errorf("%w: floor %d outside 1..%d", ErrInvalidCall, floor, d.cfg.Floors)
	case dir == types.Up && floor == d.cfg.Floors:
		return false, fmt.Errorf("%w: no up button on top floor %d", ErrInvalidCall, floor)
	case dir == types.Down && floor == elev.GroundFloor:
		return false, fmt.Errorf("%w: no down button on floor %d", ErrInvalidCall, floor)
	case dir != types.Up && dir != types.Down:
		return false, fmt.Errorf("%w: direction %v", ErrInvalidCall, dir)
	}
	return d.registry.Submit(types.Call{Floor: floor, Dir: dir}), nil
}

// Tick dispatches at most one pending call: the first, in arrival order,
// that some elevator can take. It reports whether a call was dispatched.
func (d *Dispatcher) Tick() bool {
	for _, call := range d.registry.Pending() {
		id, ok := SelectElevator(call, d.fleet.All(), d.registry)
		if !ok {
			continue
		}
		d.dispatch(id, call)
		return true
	}
	return false
}

func (d *Dispatcher) dispatch(id int, call types.Call) {
	d.registry.RemovePending(call)
	if d.fleet.Get(id).IsIdle() {
		slog.Debug("Dispatching to idle elevator", "elevator", id, "call", call)
		d.executor.Start(id, call)
		return
	}
	slog.Debug("Dispatching as intermediate stop", "elevator", id, "call", call)
	d.executor.Merge(id, call)
}

func (d *Dispatcher) Snapshot() Snapshot {
	snapshot := Snapshot{
		Elevators: d.fleet.Snapshot(),
		Pending:   d.registry.Pending(),
		Active:    make(map[int]types.Call),
	}
	for id := 1; id <= d.fleet.Len(); id++ {
		if call, ok := d.registry.Active(id); ok {
			snapshot.Active[id] = call
		}
	}
	return snapshot
}

// Stop retires the dispatcher; its pending timers no longer touch anything
// and the indicators of its unserved calls are cleared.
func (d *Dispatcher) Stop() {
	d.executor.Stop()
	d.registry.Discard()
}
