package timer

import (
	"math"
	"time"
)

// TickKey orders the scheduler tick after every elevator callback due at the same instant.
const TickKey = math.MaxInt

// Clock schedules callbacks. Callbacks must run on the goroutine that owns the
// simulation state, never concurrently with each other.
type Clock interface {
	Now() time.Duration
	AfterFunc(d time.Duration, key int, f func())
}

// Real posts expired callbacks to Fired so the owner goroutine can run them.
type Real struct {
	start time.Time
	fired chan func()
	done  chan struct{}
}

func NewReal() *Real {
	return &Real{
		start: time.Now(),
		fired: make(chan func(), 16),
		done:  make(chan struct{}),
	}
}

func (r *Real) Now() time.Duration {
	return time.Since(r.start)
}

func (r *Real) AfterFunc(d time.Duration, _ int, f func()) {
	time.AfterFunc(d, func() {
		select {
		case r.fired <- f:
		case <-r.done:
		}
	})
}

func (r *Real) Fired() <-chan func() {
	return r.fired
}

// Close drops callbacks that expire after the owner has stopped reading.
func (r *Real) Close() {
	close(r.done)
}
