// Package ecs is a small entity-component store with typed accessors, a
// FIFO event queue, and a fixed-order system scheduler. Component values are
// held by pointer, so mutations made through Get persist without a write
// back.
package ecs

import "github.com/milk9111/rigid/ecs/component"

// World owns the entity slots, one sparse set per component kind, and the
// event queue. It is not safe for concurrent use; systems run sequentially
// under a Scheduler.
type World struct {
	entities entityStore
	stores   map[component.ComponentID]*sparseSet
	events   EventQueue
}

func NewWorld() *World {
	return &World{stores: map[component.ComponentID]*sparseSet{}}
}

// CreateEntity allocates a fresh entity with no components.
func CreateEntity(w *World) Entity {
	return w.entities.create()
}

// DestroyEntity retires the entity and drops all of its components. It
// reports whether the handle was alive; stale handles are ignored.
func DestroyEntity(w *World, e Entity) bool {
	if w == nil || !w.entities.destroy(e) {
		return false
	}
	for _, store := range w.stores {
		store.Remove(e.id())
	}
	return true
}

// IsAlive reports whether the handle still refers to a live entity.
func IsAlive(w *World, e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Entities returns every live entity in slot order.
func Entities(w *World) []Entity {
	if w == nil {
		return nil
	}
	return w.entities.all()
}

// Events exposes the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) store(id component.ComponentID, create bool) *sparseSet {
	if s, ok := w.stores[id]; ok {
		return s
	}
	if !create {
		return nil
	}
	if w.stores == nil {
		w.stores = map[component.ComponentID]*sparseSet{}
	}
	s := &sparseSet{}
	w.stores[id] = s
	return s
}
