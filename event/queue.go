package event

// Queue is a bounded FIFO of game events for the single-threaded tick loop
// Overflow: oldest events are dropped when full
type Queue struct {
	events  []GameEvent
	limit   int
	dropped int
}

// NewQueue creates a queue holding at most limit pending events
func NewQueue(limit int) *Queue {
	if limit <= 0 {
		limit = 1
	}
	return &Queue{
		events: make([]GameEvent, 0, limit),
		limit:  limit,
	}
}

// Push appends an event, dropping the oldest when at capacity
func (q *Queue) Push(ev GameEvent) {
	if len(q.events) == q.limit {
		copy(q.events, q.events[1:])
		q.events = q.events[:len(q.events)-1]
		q.dropped++
	}
	q.events = append(q.events, ev)
}

// Consume returns all pending events in FIFO order and empties the queue
func (q *Queue) Consume() []GameEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := make([]GameEvent, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Len returns pending event count
func (q *Queue) Len() int {
	return len(q.events)
}

// Dropped returns the number of events lost to overflow
func (q *Queue) Dropped() int {
	return q.dropped
}

// Clear discards all pending events
func (q *Queue) Clear() {
	q.events = q.events[:0]
}
