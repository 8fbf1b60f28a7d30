// State types live in elev so fleet methods can hang off them.
package elev

import "liftsim/src/types"

// Elevator is the record of one car. Stops is only non-empty while Busy.
type Elevator struct {
	ID     int
	Status types.Status
	Phase  types.Phase
	Floor  int
	Target *types.Call // call of the leg in progress
	Stops  []types.Call
}

func (e *Elevator) IsIdle() bool {
	return e.Status == types.Idle
}
