package event

import "github.com/lixenwraith/web-bg/parameter"

// EventQueue is a fixed ring of pending game events
// Producers and the consumer run on the game loop goroutine, no synchronization
// Overflow: oldest events are dropped
type EventQueue struct {
	events  [parameter.EventQueueSize]GameEvent
	head    int // Next read slot
	count   int
	dropped uint64
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends ev, overwriting the oldest pending event when full
func (q *EventQueue) Push(ev GameEvent) {
	if q.count == len(q.events) {
		q.head = (q.head + 1) % len(q.events)
		q.count--
		q.dropped++
	}
	q.events[(q.head+q.count)%len(q.events)] = ev
	q.count++
}

// Consume returns pending events in FIFO order and empties the queue
func (q *EventQueue) Consume() []GameEvent {
	if q.count == 0 {
		return nil
	}
	out := make([]GameEvent, q.count)
	for i := range out {
		out[i] = q.events[(q.head+i)%len(q.events)]
		q.events[(q.head+i)%len(q.events)] = GameEvent{}
	}
	q.head = 0
	q.count = 0
	return out
}

// Len returns the number of pending events
func (q *EventQueue) Len() int {
	return q.count
}

// Dropped returns how many events were overwritten since creation
func (q *EventQueue) Dropped() uint64 {
	return q.dropped
}
