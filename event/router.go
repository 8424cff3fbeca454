package event

// Handler processes the event types it declares
type Handler interface {
	HandleEvent(ev GameEvent)
	EventTypes() []EventType
}

// Router dispatches queued events to registered handlers
//
// Architecture:
//   - Single-threaded dispatch on the frame goroutine
//   - Handlers are invoked in registration order
//   - Pooled payloads are released after the last handler returns
type Router struct {
	handlers map[EventType][]Handler
	queue    *EventQueue
}

func NewRouter(queue *EventQueue) *Router {
	return &Router{
		handlers: make(map[EventType][]Handler),
		queue:    queue,
	}
}

// Register adds a handler for its declared event types
func (r *Router) Register(handler Handler) {
	for _, t := range handler.EventTypes() {
		r.handlers[t] = append(r.handlers[t], handler)
	}
}

// DispatchAll consumes all pending events in FIFO order and returns how many were routed
func (r *Router) DispatchAll() int {
	events := r.queue.Consume()
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
		Release(ev)
	}
	return len(events)
}

func (r *Router) HandlerCount(t EventType) int {
	return len(r.handlers[t])
}
