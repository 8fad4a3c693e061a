package automaton

import "slices"

// stateSet is a sparse set of state IDs with O(1) insert, membership and
// clear, preserving insertion order.
type stateSet struct {
	dense  []StateID
	sparse []int
}

func newStateSet(capacity int) *stateSet {
	return &stateSet{
		dense:  make([]StateID, 0, capacity),
		sparse: make([]int, capacity),
	}
}

func (s *stateSet) contains(id StateID) bool {
	i := s.sparse[id]
	return i < len(s.dense) && s.dense[i] == id
}

// insert adds id and reports whether it was absent.
func (s *stateSet) insert(id StateID) bool {
	if s.contains(id) {
		return false
	}
	s.sparse[id] = len(s.dense)
	s.dense = append(s.dense, id)
	return true
}

func (s *stateSet) clear() { s.dense = s.dense[:0] }

func (s *stateSet) len() int { return len(s.dense) }

// sorted returns the members in ascending order.
func (s *stateSet) sorted() []StateID {
	out := slices.Clone(s.dense)
	slices.Sort(out)
	return out
}
