package ecs

// World is the central entity registry and component store.
//
// Entities are kept in creation order and every query walks that order, so
// "first match" lookups and per-tick update order are stable from frame to
// frame.
type World struct {
	nextID     EntityID
	order      []EntityID
	alive      map[EntityID]bool
	components map[ComponentType]map[EntityID]Component
}

// NewWorld creates an empty World.
func NewWorld() *World {
	return &World{
		nextID:     1,
		alive:      make(map[EntityID]bool),
		components: make(map[ComponentType]map[EntityID]Component),
	}
}

// CreateEntity mints a new entity ID and marks it alive.
func (w *World) CreateEntity() EntityID {
	id := w.nextID
	w.nextID++
	w.alive[id] = true
	w.order = append(w.order, id)
	return id
}

// DestroyEntity marks the entity dead and removes all its components.
// Destroying an unknown or already-dead entity is a no-op.
func (w *World) DestroyEntity(id EntityID) {
	if !w.alive[id] {
		return
	}
	delete(w.alive, id)
	for _, store := range w.components {
		delete(store, id)
	}
	for i, e := range w.order {
		if e == id {
			w.order = append(w.order[:i:i], w.order[i+1:]...)
			break
		}
	}
}

// Alive reports whether the entity is alive.
func (w *World) Alive(id EntityID) bool {
	return w.alive[id]
}

// Len returns the number of live entities.
func (w *World) Len() int { return len(w.order) }

// Entities returns a snapshot of all live entities in creation order. The
// slice is a copy: creating or destroying entities while ranging over it is
// safe, but callers should skip IDs that are no longer Alive.
func (w *World) Entities() []EntityID {
	out := make([]EntityID, len(w.order))
	copy(out, w.order)
	return out
}

// Add attaches a component to an entity, replacing any previous component of
// the same type.
func (w *World) Add(id EntityID, c Component) {
	if !w.alive[id] {
		return
	}
	t := c.Type()
	if w.components[t] == nil {
		w.components[t] = make(map[EntityID]Component)
	}
	w.components[t][id] = c
}

// Get returns the component of the given type for entity id, or nil.
func (w *World) Get(id EntityID, t ComponentType) Component {
	store := w.components[t]
	if store == nil {
		return nil
	}
	return store[id]
}

// Remove detaches a component from an entity.
func (w *World) Remove(id EntityID, t ComponentType) {
	if store := w.components[t]; store != nil {
		delete(store, id)
	}
}

// Has reports whether entity id has a component of the given type.
func (w *World) Has(id EntityID, t ComponentType) bool {
	return w.Get(id, t) != nil
}

// Query returns all alive entities that have every listed component type,
// in creation order.
func (w *World) Query(types ...ComponentType) []EntityID {
	if len(types) == 0 {
		return nil
	}
	var result []EntityID
	for _, id := range w.order {
		match := true
		for _, t := range types {
			if !w.Has(id, t) {
				match = false
				break
			}
		}
		if match {
			result = append(result, id)
		}
	}
	return result
}

// Filter returns the live entities, in creation order, for which keep
// returns true.
func (w *World) Filter(keep func(EntityID) bool) []EntityID {
	var result []EntityID
	for _, id := range w.order {
		if keep(id) {
			result = append(result, id)
		}
	}
	return result
}
