package ecs

// sparseSet stores the values of one component kind densely, indexed by
// entity slot id. Lookups are O(1) via the sparse index; removal swaps the
// last dense element into the hole.
type sparseSet struct {
	denseIDs    []entityID
	denseValues []any
	sparse      []int
}

func (s *sparseSet) Has(id entityID) bool {
	if s == nil || id == 0 || int(id) > len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.denseIDs) && s.denseIDs[idx] == id
}

func (s *sparseSet) Get(id entityID) any {
	if !s.Has(id) {
		return nil
	}
	return s.denseValues[s.sparse[id-1]]
}

func (s *sparseSet) Set(id entityID, value any) {
	if s == nil || id == 0 {
		return
	}
	for int(id) > len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.Has(id) {
		s.denseValues[s.sparse[id-1]] = value
		return
	}
	s.sparse[id-1] = len(s.denseIDs)
	s.denseIDs = append(s.denseIDs, id)
	s.denseValues = append(s.denseValues, value)
}

func (s *sparseSet) Remove(id entityID) {
	if !s.Has(id) {
		return
	}
	idx := s.sparse[id-1]
	last := len(s.denseIDs) - 1
	if idx != last {
		movedID := s.denseIDs[last]
		s.denseIDs[idx] = movedID
		s.denseValues[idx] = s.denseValues[last]
		s.sparse[movedID-1] = idx
	}
	s.denseIDs = s.denseIDs[:last]
	s.denseValues = s.denseValues[:last]
	s.sparse[id-1] = -1
}

func (s *sparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseIDs)
}

// ids returns a snapshot of the member slot ids so callers may add or remove
// components while iterating.
func (s *sparseSet) ids() []entityID {
	if s == nil {
		return nil
	}
	return append([]entityID(nil), s.denseIDs...)
}
