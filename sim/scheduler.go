package sim

import "container/heap"

// queuedEvent pairs an event with its insertion sequence number.
type queuedEvent struct {
	ev  Event
	seq uint64
}

// eventHeap implements heap.Interface with deterministic ordering.
// Order by: timestamp → insertion sequence.
type eventHeap []queuedEvent

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	ti, tj := h[i].ev.Timestamp(), h[j].ev.Timestamp()
	if ti != tj {
		return ti < tj
	}
	return h[i].seq < h[j].seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(queuedEvent))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = queuedEvent{}
	*h = old[0 : n-1]
	return item
}

// Scheduler is the pending-event queue of one replication. Events come out in
// non-decreasing time order; events sharing a time come out in the order they
// were pushed.
type Scheduler struct {
	clock   *Clock
	events  eventHeap
	nextSeq uint64
}

// NewScheduler creates an empty scheduler that rejects events earlier than clock.
func NewScheduler(clock *Clock) *Scheduler {
	s := &Scheduler{clock: clock, events: make(eventHeap, 0)}
	heap.Init(&s.events)
	return s
}

// Push adds ev to the queue. It fails with a *SchedulingError, and leaves the
// queue untouched, when ev's time is before the clock or is not a number.
func (s *Scheduler) Push(ev Event) error {
	t := ev.Timestamp()
	if !(t >= s.clock.Time()) {
		return &SchedulingError{Kind: ev.Kind(), EventTime: t, ClockTime: s.clock.Time()}
	}
	heap.Push(&s.events, queuedEvent{ev: ev, seq: s.nextSeq})
	s.nextSeq++
	return nil
}

// PopMin removes and returns the earliest event, or false when the queue is empty.
func (s *Scheduler) PopMin() (Event, bool) {
	ev, _, ok := s.popMin()
	return ev, ok
}

func (s *Scheduler) popMin() (Event, uint64, bool) {
	if s.events.Len() == 0 {
		return nil, 0, false
	}
	item := heap.Pop(&s.events).(queuedEvent)
	return item.ev, item.seq, true
}

// PeekMinTime returns the time of the earliest event without removing it.
func (s *Scheduler) PeekMinTime() (float64, bool) {
	if s.events.Len() == 0 {
		return 0, false
	}
	return s.events[0].ev.Timestamp(), true
}

// Len returns the number of pending events.
func (s *Scheduler) Len() int {
	return s.events.Len()
}
