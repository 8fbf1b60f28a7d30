package orders

import (
	"fmt"
	"log/slog"
	"slices"

	"liftsim/src/types"
)

// Registry tracks calls from button press until they are served.
//   - pending: accepted, not yet dispatched, in arrival order
//   - active: one slot per elevator, the call that made it busy
//   - assigned: every dispatched call not yet served, primary or merged
type Registry struct {
	pending  []types.Call
	active   []*types.Call
	assigned map[types.Call]int
	sink     types.EventSink
}

func NewRegistry(numElevators int, sink types.EventSink) *Registry {
	return &Registry{
		active:   make([]*types.Call, numElevators),
		assigned: make(map[types.Call]int),
		sink:     sink,
	}
}

// Submit queues a call unless an equal one is already pending or in service.
func (r *Registry) Submit(call types.Call) bool {
	if r.IsRegistered(call) {
		if id, ok := r.AssignedTo(call); ok {
			slog.Debug("Duplicate call ignored", "call", call, "elevator", id)
		} else {
			slog.Debug("Duplicate call ignored", "call", call)
		}
		return false
	}
	r.pending = append(r.pending, call)
	r.sink.Emit(types.CallIndicatorSet{Floor: call.Floor, Dir: call.Dir})
	slog.Debug("Call accepted", "call", call, "pending", len(r.pending))
	return true
}

func (r *Registry) IsRegistered(call types.Call) bool {
	if slices.Contains(r.pending, call) {
		return true
	}
	if _, ok := r.assigned[call]; ok {
		return true
	}
	for _, active := range r.active {
		if active != nil && *active == call {
			return true
		}
	}
	return false
}

func (r *Registry) RemovePending(call types.Call) {
	r.pending = slices.DeleteFunc(r.pending, func(c types.Call) bool {
		return c == call
	})
}

// Pending returns the pending calls in arrival order.
func (r *Registry) Pending() []types.Call {
	return slices.Clone(r.pending)
}

// Active returns the primary call of elevator id, if it is on a trip.
func (r *Registry) Active(id int) (types.Call, bool) {
	slot := r.slot(id)
	if *slot == nil {
		return types.Call{}, false
	}
	return **slot, true
}

// Activate records call as the primary call of an elevator starting a trip.
func (r *Registry) Activate(id int, call types.Call) {
	slot := r.slot(id)
	if *slot != nil {
		panic(fmt.Sprintf("orders: elevator %d already serves %v", id, **slot))
	}
	*slot = &call
	r.assigned[call] = id
}

// Merge records call as an intermediate stop of elevator id.
func (r *Registry) Merge(id int, call types.Call) {
	r.slot(id)
	r.assigned[call] = id
}

// AssignedTo reports which elevator is on its way to serve call.
func (r *Registry) AssignedTo(call types.Call) (int, bool) {
	id, ok := r.assigned[call]
	return id, ok
}

// Outstanding returns every call whose indicator is lit: pending calls in
// arrival order, then dispatched calls not yet served, by floor.
func (r *Registry) Outstanding() []types.Call {
	calls := slices.Clone(r.pending)
	assigned := make([]types.Call, 0, len(r.assigned))
	for call := range r.assigned {
		assigned = append(assigned, call)
	}
	slices.SortFunc(assigned, func(a, b types.Call) int {
		if a.Floor != b.Floor {
			return a.Floor - b.Floor
		}
		return int(a.Dir) - int(b.Dir)
	})
	return append(calls, assigned...)
}

// Served is called when an elevator arrives at the floor of call.
func (r *Registry) Served(call types.Call) {
	delete(r.assigned, call)
}

// Discard drops every call and turns off the indicators still lit for them.
func (r *Registry) Discard() {
	for _, call := range r.Outstanding() {
		r.sink.Emit(types.CallIndicatorClear{Floor: call.Floor, Dir: call.Dir})
	}
	r.pending = nil
	clear(r.assigned)
	clear(r.active)
}

// Release clears the active slot of an elevator returning to idle.
func (r *Registry) Release(id int) {
	*r.slot(id) = nil
}

func (r *Registry) slot(id int) **types.Call {
	if id < 1 || id > len(r.active) {
		panic(fmt.Sprintf("orders: elevator id %d outside fleet of %d", id, len(r.active)))
	}
	return &r.active[id-1]
}
