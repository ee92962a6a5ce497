package level

import "shadow-leap/internal/ecs"

// EventKind names something the host may want to present.
type EventKind uint8

const (
	EventHop EventKind = iota
	EventDeath
	EventHoleFilled
	EventLevelFinished
	EventExtraLife
	EventPowerUpSpawned
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventHop:
		return "hop"
	case EventDeath:
		return "death"
	case EventHoleFilled:
		return "hole-filled"
	case EventLevelFinished:
		return "level-finished"
	case EventExtraLife:
		return "extra-life"
	case EventPowerUpSpawned:
		return "power-up-spawned"
	case EventGameOver:
		return "game-over"
	}
	return "unknown"
}

// Event is one entry of the level's outbox.
type Event struct {
	Kind   EventKind
	Entity ecs.EntityID
	Detail string
}

func (l *Level) emit(kind EventKind, id ecs.EntityID, detail string) {
	l.events = append(l.events, Event{Kind: kind, Entity: id, Detail: detail})
}

// DrainEvents returns and clears the events raised since the last call.
func (l *Level) DrainEvents() []Event {
	out := l.events
	l.events = nil
	return out
}
