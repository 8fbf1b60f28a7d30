package types

// Event is anything the core reports to the presentation side.
type Event interface {
	event()
}

// EventSink receives events in the order they happen.
type EventSink interface {
	Emit(ev Event)
}

// SinkFunc adapts a plain function to EventSink.
type SinkFunc func(ev Event)

func (f SinkFunc) Emit(ev Event) { f(ev) }

type ElevatorMoveStarted struct {
	ElevatorID int
	FromFloor  int
	ToFloor    int
	DurationMs int64
}

type DoorOpened struct {
	ElevatorID int
}

type DoorClosed struct {
	ElevatorID int
}

// CallIndicatorSet is emitted when a submitted call is accepted.
type CallIndicatorSet struct {
	Floor int
	Dir   Direction
}

// CallIndicatorClear is emitted when an elevator arrives to serve a call.
type CallIndicatorClear struct {
	Floor int
	Dir   Direction
}

// Reconfigured is emitted after the fleet was rebuilt. Everything shown for
// the old fleet is stale.
type Reconfigured struct {
	Floors    int
	Elevators int
}

func (ElevatorMoveStarted) event() {}
func (DoorOpened) event()          {}
func (DoorClosed) event()          {}
func (CallIndicatorSet) event()    {}
func (CallIndicatorClear) event()  {}
func (Reconfigured) event()        {}
