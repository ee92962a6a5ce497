package system

import (
	"shadow-leap/internal/component"
	"shadow-leap/internal/ecs"
)

// LivesOf returns the remaining lives of id, or 0 when it keeps no count.
func LivesOf(w *ecs.World, id ecs.EntityID) int {
	l, _ := w.Get(id, component.CLives).(component.Lives)
	return l.Count
}

// AddLife grants id one more life.
func AddLife(w *ecs.World, id ecs.EntityID) {
	l, ok := w.Get(id, component.CLives).(component.Lives)
	if !ok {
		return
	}
	l.Count++
	w.Add(id, l)
}

// RemoveLife takes a life from id. It refuses to go below one life and
// returns false in that case, leaving the count unchanged.
func RemoveLife(w *ecs.World, id ecs.EntityID) bool {
	l, ok := w.Get(id, component.CLives).(component.Lives)
	if !ok || l.Count <= 1 {
		return false
	}
	l.Count--
	w.Add(id, l)
	return true
}
