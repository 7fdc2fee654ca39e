package ecs

// SparseSet is a cache-friendly storage for components keyed by entity slot.
// Values are stored boxed as `any` (always a pointer to the component) so a
// single store type serves every component kind.
type SparseSet struct {
	denseEntities []entityID
	denseValues   []any
	denseTicks    []uint64
	sparse        []int
}

// Has returns true if the entity id exists in the set.
func (s *SparseSet) Has(id entityID) bool {
	if s == nil || id == 0 || int(id)-1 >= len(s.sparse) {
		return false
	}
	idx := s.sparse[id-1]
	return idx >= 0 && idx < len(s.denseEntities) && s.denseEntities[idx] == id
}

// Get returns the component for id, or nil.
func (s *SparseSet) Get(id entityID) any {
	if !s.Has(id) {
		return nil
	}
	return s.denseValues[s.sparse[id-1]]
}

// Tick returns the tick at which id's component was last stamped.
func (s *SparseSet) Tick(id entityID) uint64 {
	if !s.Has(id) {
		return 0
	}
	return s.denseTicks[s.sparse[id-1]]
}

// Set inserts or updates a component for id and stamps it with tick.
func (s *SparseSet) Set(id entityID, v any, tick uint64) {
	if s == nil || id == 0 {
		return
	}
	for int(id)-1 >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.Has(id) {
		idx := s.sparse[id-1]
		s.denseValues[idx] = v
		s.denseTicks[idx] = tick
		return
	}
	s.denseEntities = append(s.denseEntities, id)
	s.denseValues = append(s.denseValues, v)
	s.denseTicks = append(s.denseTicks, tick)
	s.sparse[id-1] = len(s.denseEntities) - 1
}

// Stamp updates the change tick for id without touching its value.
func (s *SparseSet) Stamp(id entityID, tick uint64) {
	if !s.Has(id) {
		return
	}
	s.denseTicks[s.sparse[id-1]] = tick
}

// Remove deletes the component for id if present.
func (s *SparseSet) Remove(id entityID) bool {
	if s == nil || !s.Has(id) {
		return false
	}
	idx := s.sparse[id-1]
	last := len(s.denseEntities) - 1
	lastID := s.denseEntities[last]

	s.denseEntities[idx] = s.denseEntities[last]
	s.denseValues[idx] = s.denseValues[last]
	s.denseTicks[idx] = s.denseTicks[last]
	s.sparse[lastID-1] = idx

	s.denseEntities = s.denseEntities[:last]
	s.denseValues = s.denseValues[:last]
	s.denseTicks = s.denseTicks[:last]
	s.sparse[id-1] = -1
	return true
}

// Len reports the number of stored components.
func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.denseEntities)
}

// ids returns a snapshot of the dense id list so callers may mutate the set
// while iterating.
func (s *SparseSet) ids() []entityID {
	if s == nil || len(s.denseEntities) == 0 {
		return nil
	}
	return append([]entityID(nil), s.denseEntities...)
}
