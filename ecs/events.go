package ecs

// EventQueue holds the events emitted during the current tick. Every system
// running after the emitter in the same tick sees the event; the scheduler
// clears the queue once the tick ends.
type EventQueue struct {
	items []any
}

// Push appends an event.
func (q *EventQueue) Push(evt any) {
	if q == nil || evt == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	clear(q.items)
	q.items = q.items[:0]
}

// Emit queues evt for the rest of the tick.
func Emit(w *World, evt any) {
	if w == nil {
		return
	}
	w.events.Push(evt)
}

// Events returns the events of type T emitted so far this tick, in emission
// order.
func Events[T any](w *World) []T {
	if w == nil {
		return nil
	}
	var out []T
	for _, item := range w.events.items {
		if evt, ok := item.(T); ok {
			out = append(out, evt)
		}
	}
	return out
}

// HasEvent reports whether an event of type T was emitted this tick.
func HasEvent[T any](w *World) bool {
	if w == nil {
		return false
	}
	for _, item := range w.events.items {
		if _, ok := item.(T); ok {
			return true
		}
	}
	return false
}

// FlushEvents drops every queued event.
func FlushEvents(w *World) {
	if w == nil {
		return
	}
	w.events.flush()
}
