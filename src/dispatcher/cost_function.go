package dispatcher

import (
	"liftsim/src/elev"
	"liftsim/src/types"
)

// ActiveCalls looks up the primary call of a busy elevator.
type ActiveCalls interface {
	Active(id int) (types.Call, bool)
}

// SelectElevator picks the elevator to answer call in one pass over the fleet.
//   - the first busy elevator that can take call as an intermediate stop wins outright
//   - otherwise the idle elevator nearest call.Floor, ties to the lowest id
//   - ok is false when neither exists
func SelectElevator(call types.Call, fleet []*elev.Elevator, active ActiveCalls) (id int, ok bool) {
	bestDistance := 0
	for _, elevator := range fleet {
		if !elevator.IsIdle() {
			primary, busy := active.Active(elevator.ID)
			if busy && canAddIntermediateStop(elevator.Floor, primary, call) {
				return elevator.ID, true
			}
			continue
		}
		distance := abs(call.Floor - elevator.Floor)
		if !ok || distance < bestDistance {
			id, ok, bestDistance = elevator.ID, true, distance
		}
	}
	return id, ok
}

// canAddIntermediateStop reports whether call lies strictly between floor and
// the primary call, in the primary call's direction.
func canAddIntermediateStop(floor int, primary, call types.Call) bool {
	if primary.Dir != call.Dir {
		return false
	}
	switch call.Dir {
	case types.Up:
		return floor < call.Floor && call.Floor < primary.Floor
	case types.Down:
		return floor > call.Floor && call.Floor > primary.Floor
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
