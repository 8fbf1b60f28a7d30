package executor

import (
	"fmt"
	"log/slog"
	"time"

	"liftsim/src/config"
	"liftsim/src/elev"
	"liftsim/src/orders"
	"liftsim/src/timer"
	"liftsim/src/types"
)

// Executor drives elevators through their legs. Every leg is
//
//	Moving -> DoorOpen -> DoorClosing -> Settling
//
// after which the next queued stop starts or the elevator goes idle.
// All methods and callbacks run on the goroutine that owns the fleet.
type Executor struct {
	cfg      config.Config
	fleet    *elev.Fleet
	registry *orders.Registry
	clock    timer.Clock
	sink     types.EventSink
	retired  bool
}

func New(cfg config.Config, fleet *elev.Fleet, registry *orders.Registry, clock timer.Clock, sink types.EventSink) *Executor {
	return &Executor{
		cfg:      cfg,
		fleet:    fleet,
		registry: registry,
		clock:    clock,
		sink:     sink,
	}
}

// Start makes an idle elevator busy with call as its primary call.
func (x *Executor) Start(id int, call types.Call) {
	elevator := x.fleet.Get(id)
	if !elevator.IsIdle() {
		panic(fmt.Sprintf("executor: start %v on busy elevator %d", call, id))
	}
	elevator.Status = types.Busy
	x.registry.Activate(id, call)
	slog.Info("Trip started", "elevator", id, "call", call, "floor", elevator.Floor,
		"leg", CycleTime(x.cfg, elevator.Floor, call.Floor))
	x.startLeg(elevator, call)
}

// Merge adds call as an intermediate stop of a busy elevator. The leg in
// progress is not interrupted.
func (x *Executor) Merge(id int, call types.Call) {
	elevator := x.fleet.Get(id)
	elevator.AddStop(call)
	x.registry.Merge(id, call)
	slog.Info("Call merged", "elevator", id, "call", call, "stops", elevator.Stops)
}

// Stop retires the executor. Callbacks still scheduled on the clock become no-ops.
func (x *Executor) Stop() {
	x.retired = true
}

// TravelTime is the length of the travel phase between two floors.
func TravelTime(cfg config.Config, from, to int) time.Duration {
	distance := to - from
	if distance < 0 {
		distance = -distance
	}
	return time.Duration(distance) * cfg.TravelPerFloor
}

// CycleTime is how long a leg keeps an elevator occupied.
func CycleTime(cfg config.Config, from, to int) time.Duration {
	return TravelTime(cfg, from, to) + cfg.DoorOpenDuration + cfg.DoorCloseDuration + cfg.SettleMargin
}

func (x *Executor) startLeg(elevator *elev.Elevator, call types.Call) {
	travel := TravelTime(x.cfg, elevator.Floor, call.Floor)
	elevator.Phase = types.Moving
	elevator.Target = &call
	x.sink.Emit(types.ElevatorMoveStarted{
		ElevatorID: elevator.ID,
		FromFloor:  elevator.Floor,
		ToFloor:    call.Floor,
		DurationMs: travel.Milliseconds(),
	})
	slog.Debug("Moving", "elevator", elevator.ID, "from", elevator.Floor, "to", call.Floor, "travel", travel)
	x.after(travel, elevator, func() { x.arrive(elevator, call) })
}

func (x *Executor) finishLeg(elevator *elev.Elevator) {
	if next, ok := elevator.NextStop(); ok {
		x.startLeg(elevator, next)
		return
	}
	elevator.Status = types.Idle
	elevator.Phase = types.Parked
	x.registry.Release(elevator.ID)
	slog.Info("Trip finished", "elevator", elevator.ID, "floor", elevator.Floor)
}

func (x *Executor) after(d time.Duration, elevator *elev.Elevator, f func()) {
	x.clock.AfterFunc(d, elevator.ID, func() {
		if x.retired {
			return
		}
		f()
	})
}
