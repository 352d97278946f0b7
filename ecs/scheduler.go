package ecs

// System is one step of the fixed update. Systems run in the order they were
// registered and must not retain the world across calls.
type System interface {
	Update(w *World)
}

// Scheduler runs a fixed list of systems against a world.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	return &Scheduler{systems: append([]System(nil), systems...)}
}

// Add appends a system to the end of the update order.
func (s *Scheduler) Add(system System) {
	if s == nil || system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs every system once, then drops events nothing drained so they
// cannot replay next step.
func (s *Scheduler) Update(w *World) {
	if s == nil || w == nil {
		return
	}
	for _, system := range s.systems {
		if system != nil {
			system.Update(w)
		}
	}
	w.events.flush()
}

// Systems returns a copy of the registered systems in update order.
func (s *Scheduler) Systems() []System {
	if s == nil {
		return nil
	}
	return append([]System(nil), s.systems...)
}
