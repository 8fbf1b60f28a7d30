package display

import (
	"fmt"
	"time"

	"liftsim/src/types"
)

// Stamped is an event and the simulated time it was emitted at.
type Stamped struct {
	At    time.Duration
	Event types.Event
}

func (s Stamped) String() string {
	return fmt.Sprintf("%8s %T%+v", s.At, s.Event, s.Event)
}

type nower interface {
	Now() time.Duration
}

// Recorder keeps every event in emission order.
type Recorder struct {
	clock  nower
	Events []Stamped
}

func NewRecorder(clock nower) *Recorder {
	return &Recorder{clock: clock}
}

func (r *Recorder) Emit(ev types.Event) {
	r.Events = append(r.Events, Stamped{At: r.clock.Now(), Event: ev})
}

// Tee fans every event out to all sinks in order.
func Tee(sinks ...types.EventSink) types.EventSink {
	return types.SinkFunc(func(ev types.Event) {
		for _, sink := range sinks {
			sink.Emit(ev)
		}
	})
}
