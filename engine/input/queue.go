package input

import "sync"

// Queue buffers events in arrival order until the frame driver drains them.
// Push may be called from any goroutine; Drain hands everything buffered so far to a single reader.
// The zero value is an empty queue ready to use.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

// NewQueue creates an empty Queue.
//
// Parameters:
//   - capacity: initial buffer capacity; the queue grows beyond it as needed
//
// Returns:
//   - *Queue: the newly created queue
func NewQueue(capacity int) *Queue {
	return &Queue{
		events: make([]Event, 0, capacity),
	}
}

// Push appends an event. Nil events are dropped.
func (q *Queue) Push(ev Event) {
	if ev == nil {
		return
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, ev)
}

// Drain removes and returns every buffered event, oldest first.
//
// Returns:
//   - []Event: the buffered events, or nil if there were none
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]Event, 0, cap(out))
	return out
}

// Len returns the number of buffered events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
