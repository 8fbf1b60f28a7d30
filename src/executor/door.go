package executor

import (
	"log/slog"

	"liftsim/src/elev"
	"liftsim/src/types"
)

// arrive serves call and opens the door right away.
func (x *Executor) arrive(elevator *elev.Elevator, call types.Call) {
	elevator.Floor = call.Floor
	elevator.Target = nil
	x.registry.Served(call)
	x.sink.Emit(types.CallIndicatorClear{Floor: call.Floor, Dir: call.Dir})

	elevator.Phase = types.DoorOpen
	x.sink.Emit(types.DoorOpened{ElevatorID: elevator.ID})
	slog.Debug("Arrived, door open", "elevator", elevator.ID, "floor", elevator.Floor)
	x.after(x.cfg.DoorOpenDuration, elevator, func() { x.closeDoor(elevator) })
}

func (x *Executor) closeDoor(elevator *elev.Elevator) {
	elevator.Phase = types.DoorClosing
	x.sink.Emit(types.DoorClosed{ElevatorID: elevator.ID})
	x.after(x.cfg.DoorCloseDuration, elevator, func() { x.settle(elevator) })
}

func (x *Executor) settle(elevator *elev.Elevator) {
	elevator.Phase = types.Settling
	x.after(x.cfg.SettleMargin, elevator, func() { x.finishLeg(elevator) })
}
