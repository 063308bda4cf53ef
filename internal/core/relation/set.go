package relation

import "slices"

// orderedSet keeps ids unique while remembering insertion order.
type orderedSet struct {
	items []int64
	index map[int64]struct{}
}

func newOrderedSet() *orderedSet {
	return &orderedSet{index: make(map[int64]struct{})}
}

func (set *orderedSet) has(id int64) bool {
	_, ok := set.index[id]
	return ok
}

// add reports whether id was newly inserted.
func (set *orderedSet) add(id int64) bool {
	if set.has(id) {
		return false
	}
	set.index[id] = struct{}{}
	set.items = append(set.items, id)
	return true
}

// remove reports whether id was present.
func (set *orderedSet) remove(id int64) bool {
	if !set.has(id) {
		return false
	}
	delete(set.index, id)
	if position := slices.Index(set.items, id); position >= 0 {
		set.items = slices.Delete(set.items, position, position+1)
	}
	return true
}

func (set *orderedSet) len() int { return len(set.items) }

func (set *orderedSet) snapshot() []int64 {
	return slices.Clone(set.items)
}
