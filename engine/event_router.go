package engine

import "github.com/lixenwraith/web-bg/event"

// EventHandler processes specific event types
// Systems implement this interface to receive routed events
type EventHandler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase, before systems update
	HandleEvent(world *World, ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}

// EventRouter dispatches queued events to registered handlers
// Handlers run in registration order; every handler of an event runs before the next event
type EventRouter struct {
	handlers map[event.EventType][]EventHandler
	queue    *event.EventQueue
}

func NewEventRouter(queue *event.EventQueue) *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]EventHandler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *EventRouter) Register(handler EventHandler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll drains the queue in FIFO order
// Returns the number of events consumed, handled or not
func (r *EventRouter) DispatchAll(world *World) int {
	if r.queue == nil {
		return 0
	}
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(world, ev)
		}
	}
	return len(events)
}

// HandlerCount returns the number of handlers registered for t
func (r *EventRouter) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}
