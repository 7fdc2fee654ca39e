package ecs

// intersect returns the ids present in every store, in the dense order of the
// smallest one.
func intersect(stores ...*SparseSet) []entityID {
	if len(stores) == 0 {
		return nil
	}
	smallest := 0
	for i, s := range stores {
		if s == nil {
			return nil
		}
		if s.Len() < stores[smallest].Len() {
			smallest = i
		}
	}

	out := make([]entityID, 0, stores[smallest].Len())
	for _, id := range stores[smallest].denseEntities {
		all := true
		for i, s := range stores {
			if i == smallest {
				continue
			}
			if !s.Has(id) {
				all = false
				break
			}
		}
		if all {
			out = append(out, id)
		}
	}
	return out
}
