package timer

import (
	"container/heap"
	"time"
)

// Virtual is a discrete-event clock. Time only moves in Advance, and due
// callbacks fire in (due, key, scheduling order) order.
type Virtual struct {
	now    time.Duration
	seq    uint64
	queue  eventQueue
	firing bool
}

func NewVirtual() *Virtual {
	return &Virtual{}
}

func (v *Virtual) Now() time.Duration {
	return v.now
}

func (v *Virtual) AfterFunc(d time.Duration, key int, f func()) {
	if d < 0 {
		d = 0
	}
	v.seq++
	heap.Push(&v.queue, &entry{due: v.now + d, key: key, seq: v.seq, f: f})
}

// Every runs f each period, first at now+period.
func (v *Virtual) Every(period time.Duration, key int, f func()) {
	var tick func()
	tick = func() {
		f()
		v.AfterFunc(period, key, tick)
	}
	v.AfterFunc(period, key, tick)
}

// Advance moves the clock forward by d, firing everything due on the way.
// Callbacks scheduled with zero delay during Advance fire in the same call.
func (v *Virtual) Advance(d time.Duration) {
	if v.firing {
		panic("timer: Advance called from a callback")
	}
	v.firing = true
	defer func() { v.firing = false }()

	target := v.now + d
	for v.queue.Len() > 0 && v.queue[0].due <= target {
		e := heap.Pop(&v.queue).(*entry)
		v.now = e.due
		e.f()
	}
	v.now = target
}

// Pending counts scheduled callbacks, including periodic ones.
func (v *Virtual) Pending() int {
	return v.queue.Len()
}

type entry struct {
	due time.Duration
	key int
	seq uint64
	f   func()
}

type eventQueue []*entry

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	if q[i].key != q[j].key {
		return q[i].key < q[j].key
	}
	return q[i].seq < q[j].seq
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x any) { *q = append(*q, x.(*entry)) }

func (q *eventQueue) Pop() any {
	old := *q
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return e
}
