package form

// SelectionSet tracks toggled card identifiers in insertion order. A maximum
// cardinality, when set, is enforced at the mutation boundary: a toggle that
// would exceed it is rejected rather than applied and checked later.
type SelectionSet struct {
	max     int
	order   []string
	members map[string]struct{}
}

// NewSelectionSet builds a set capped at max entries. max <= 0 means
// unlimited.
func NewSelectionSet(max int) *SelectionSet {
	return &SelectionSet{max: max, members: make(map[string]struct{})}
}

// Toggle adds id when absent and removes it when present. It returns false
// when adding would exceed the cap; the set is unchanged in that case.
func (s *SelectionSet) Toggle(id string) bool {
	if s.Contains(id) {
		s.Remove(id)
		return true
	}
	return s.Add(id)
}

// Add inserts id, reporting false when the cap would be exceeded. Adding an
// existing member is a no-op that reports true.
func (s *SelectionSet) Add(id string) bool {
	if s.Contains(id) {
		return true
	}
	if s.max > 0 && len(s.order) >= s.max {
		return false
	}
	s.members[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

// Remove deletes id if present.
func (s *SelectionSet) Remove(id string) {
	if !s.Contains(id) {
		return
	}
	delete(s.members, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Contains reports whether id is selected.
func (s *SelectionSet) Contains(id string) bool {
	_, ok := s.members[id]
	return ok
}

// Len returns the number of selected identifiers.
func (s *SelectionSet) Len() int { return len(s.order) }

// Max returns the cap, 0 meaning unlimited.
func (s *SelectionSet) Max() int { return s.max }

// Values returns the selected identifiers in insertion order.
func (s *SelectionSet) Values() []string {
	return append([]string(nil), s.order...)
}

// Clear removes every selection.
func (s *SelectionSet) Clear() {
	s.order = nil
	s.members = make(map[string]struct{})
}
