package ecs

// Event is a queued notification with an arbitrary payload.
type Event struct {
	Type string
	Data any
}

// EventTypeBody marks events whose Data is a BodyEvent.
const EventTypeBody = "body"

// BodyEventKind names the structural changes a body can go through.
type BodyEventKind string

const (
	BodyEventSpawned          BodyEventKind = "spawned"
	BodyEventDespawned        BodyEventKind = "despawned"
	BodyEventColliderAttached BodyEventKind = "collider_attached"
	BodyEventColliderDetached BodyEventKind = "collider_detached"
)

// BodyEvent is emitted when a body enters the world, leaves it, or has its
// collider set changed.
type BodyEvent struct {
	Entity Entity
	Kind   BodyEventKind
}

// PushBodyEvent queues a structural body event on the world.
func PushBodyEvent(w *World, e Entity, kind BodyEventKind) {
	if w == nil {
		return
	}
	w.events.Push(Event{Type: EventTypeBody, Data: BodyEvent{Entity: e, Kind: kind}})
}

// EventQueue is a FIFO queue of events. Systems that care drain it during
// their update; the scheduler flushes whatever is left at the end of the
// step so stale events never leak into the next one.
type EventQueue struct {
	items []Event
}

// Push appends an event.
func (q *EventQueue) Push(ev Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, ev)
}

// Drain returns all queued events and empties the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	drained := q.items
	q.items = nil
	return drained
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
	q.items = nil
}
