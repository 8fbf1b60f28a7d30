// Package display is the lamp side of the building: call indicators, door
// lamps and floor indicators, updated from core events.
package display

import (
	"log/slog"
	"sync"

	"liftsim/src/types"
)

type lamp struct {
	floor int
	dir   types.Direction
}

// Panel mirrors what a rendering front end would show. It is safe to read
// from any goroutine while the simulation emits into it.
type Panel struct {
	mtx       sync.Mutex
	callLamps map[lamp]bool
	doorOpen  map[int]bool
	floor     map[int]int
	heading   map[int]int
}

func NewPanel() *Panel {
	return &Panel{
		callLamps: make(map[lamp]bool),
		doorOpen:  make(map[int]bool),
		floor:     make(map[int]int),
		heading:   make(map[int]int),
	}
}

func (p *Panel) Emit(ev types.Event) {
	p.mtx.Lock()
	defer p.mtx.Unlock()

	switch ev := ev.(type) {
	case types.CallIndicatorSet:
		p.callLamps[lamp{ev.Floor, ev.Dir}] = true
		slog.Info("Call lamp on", "floor", ev.Floor, "dir", ev.Dir)
	case types.CallIndicatorClear:
		delete(p.callLamps, lamp{ev.Floor, ev.Dir})
		slog.Info("Call lamp off", "floor", ev.Floor, "dir", ev.Dir)
	case types.ElevatorMoveStarted:
		p.floor[ev.ElevatorID] = ev.FromFloor
		p.heading[ev.ElevatorID] = ev.ToFloor
		slog.Info("Elevator moving", "elevator", ev.ElevatorID, "from", ev.FromFloor, "to", ev.ToFloor, "ms", ev.DurationMs)
	case types.DoorOpened:
		p.doorOpen[ev.ElevatorID] = true
		if to, ok := p.heading[ev.ElevatorID]; ok {
			p.floor[ev.ElevatorID] = to
		}
		slog.Info("Door open", "elevator", ev.ElevatorID, "floor", p.floor[ev.ElevatorID])
	case types.DoorClosed:
		p.doorOpen[ev.ElevatorID] = false
		slog.Info("Door closed", "elevator", ev.ElevatorID)
	case types.Reconfigured:
		p.reset()
		slog.Info("Panel reset", "floors", ev.Floors, "elevators", ev.Elevators)
	}
}

func (p *Panel) CallLamp(floor int, dir types.Direction) bool {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.callLamps[lamp{floor, dir}]
}

func (p *Panel) DoorOpen(elevatorID int) bool {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	return p.doorOpen[elevatorID]
}

// FloorIndicator is the last floor the elevator left from or arrived at.
func (p *Panel) FloorIndicator(elevatorID int) (int, bool) {
	p.mtx.Lock()
	defer p.mtx.Unlock()
	floor, ok := p.floor[elevatorID]
	return floor, ok
}

// reset turns every lamp off. Callers hold mtx.
func (p *Panel) reset() {
	clear(p.callLamps)
	clear(p.doorOpen)
	clear(p.floor)
	clear(p.heading)
}
