package ecs

// EventKind identifies world event types.
type EventKind string

const (
	EventPossessed  EventKind = "possessed"
	EventEjected    EventKind = "ejected"
	EventPlayerHit  EventKind = "player_hit"
	EventEnemyDied  EventKind = "enemy_died"
	EventHostFreed  EventKind = "host_freed"
	EventProjectile EventKind = "projectile_spawned"
)

// Event is a generic ECS event payload.
type Event struct {
	Kind   EventKind
	Entity Entity
	Data   any
}

// EventQueue is a simple FIFO queue. Consumers drain it; nothing is dropped
// implicitly.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
