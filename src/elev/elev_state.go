package elev

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/tiendc/go-deepcopy"

	"liftsim/src/types"
)

const GroundFloor = 1

// Fleet owns every elevator of one configuration. Ids are 1-based and stable.
type Fleet struct {
	floors    int
	elevators []*Elevator
}

func NewFleet(floors, numElevators int) *Fleet {
	fleet := &Fleet{
		floors:    floors,
		elevators: make([]*Elevator, numElevators),
	}
	for i := range fleet.elevators {
		fleet.elevators[i] = &Elevator{
			ID:     i + 1,
			Status: types.Idle,
			Phase:  types.Parked,
			Floor:  GroundFloor,
		}
	}
	slog.Debug("Fleet initialized", "floors", floors, "elevators", numElevators)
	return fleet
}

func (f *Fleet) Floors() int { return f.floors }

func (f *Fleet) Len() int { return len(f.elevators) }

// Get returns the live record of elevator id.
func (f *Fleet) Get(id int) *Elevator {
	if id < 1 || id > len(f.elevators) {
		panic(fmt.Sprintf("elev: elevator id %d outside fleet of %d", id, len(f.elevators)))
	}
	return f.elevators[id-1]
}

// All returns the live records in id order.
func (f *Fleet) All() []*Elevator {
	return slices.Clone(f.elevators)
}

// Snapshot deep copies every elevator so callers can inspect state off the owner goroutine.
func (f *Fleet) Snapshot() []Elevator {
	snapshot := make([]Elevator, len(f.elevators))
	for i, elevator := range f.elevators {
		if err := deepcopy.Copy(&snapshot[i], elevator); err != nil {
			panic(err)
		}
	}
	return snapshot
}

// AddStop queues call behind the leg in progress and keeps the queue sorted
// in the direction of call: ascending for up, descending for down.
func (e *Elevator) AddStop(call types.Call) {
	if e.Status != types.Busy {
		panic(fmt.Sprintf("elev: stop %v added to idle elevator %d", call, e.ID))
	}
	e.Stops = append(e.Stops, call)
	slices.SortStableFunc(e.Stops, func(a, b types.Call) int {
		if call.Dir == types.Down {
			return b.Floor - a.Floor
		}
		return a.Floor - b.Floor
	})
}

// NextStop pops the head of the stop queue.
func (e *Elevator) NextStop() (types.Call, bool) {
	if len(e.Stops) == 0 {
		return types.Call{}, false
	}
	next := e.Stops[0]
	e.Stops = slices.Delete(e.Stops, 0, 1)
	return next, true
}
