package automaton

// closure adds the epsilon closure of seeds to set.
func (n *NFA) closure(set *stateSet, seeds ...StateID) {
	stack := make([]StateID, 0, len(seeds))
	for _, s := range seeds {
		if set.insert(s) {
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, t := range n.states[s].Epsilon {
			if set.insert(t) {
				stack = append(stack, t)
			}
		}
	}
}

// step fills next with the epsilon closure of the states reachable from
// cur on r.
func (n *NFA) step(cur, next *stateSet, r rune) {
	next.clear()
	for _, s := range cur.dense {
		if t, ok := n.states[s].Transitions[r]; ok {
			n.closure(next, t)
		}
	}
}

func (n *NFA) anyAccepting(set *stateSet) bool {
	for _, s := range set.dense {
		if n.states[s].Accepting {
			return true
		}
	}
	return false
}

// Closure returns the epsilon closure of the given states, ascending.
func (n *NFA) Closure(states ...StateID) []StateID {
	set := newStateSet(len(n.states))
	n.closure(set, states...)
	return set.sorted()
}

// Accepts reports whether the automaton accepts the whole input, read one
// rune at a time.
func (n *NFA) Accepts(input string) bool {
	cur := newStateSet(len(n.states))
	next := newStateSet(len(n.states))
	n.closure(cur, n.start)

	for _, r := range input {
		n.step(cur, next, r)
		if next.len() == 0 {
			return false
		}
		cur, next = next, cur
	}
	return n.anyAccepting(cur)
}
