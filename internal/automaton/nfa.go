// Package automaton implements epsilon-NFAs built by Thompson's construction,
// their simulation, bounded sample generation, and conversion to minimal DFAs.
//
// States live in an arena owned by the automaton and are referenced by
// StateID, so fragments can be spliced together without pointer aliasing.
package automaton

import (
	"slices"
)

// StateID indexes a state in an automaton's arena.
type StateID int

// State is a single NFA state. Transitions holds at most one target per
// symbol; Epsilon targets are kept in insertion order.
type State struct {
	Accepting   bool
	Transitions map[rune]StateID
	Epsilon     []StateID
}

// Fragment is a partially built automaton with a single accepting End state.
type Fragment struct {
	Start StateID
	End   StateID
}

// Builder allocates states and combines fragments. A Builder is consumed by
// Build; fragments must not be shared between builders.
type Builder struct {
	states []State
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) newState(accepting bool) StateID {
	b.states = append(b.states, State{Accepting: accepting})
	return StateID(len(b.states) - 1)
}

func (b *Builder) addEpsilon(from, to StateID) {
	b.states[from].Epsilon = append(b.states[from].Epsilon, to)
}

func (b *Builder) addTransition(from, to StateID, r rune) {
	s := &b.states[from]
	if s.Transitions == nil {
		s.Transitions = make(map[rune]StateID)
	}
	s.Transitions[r] = to
}

// Empty returns a one-state fragment accepting only the empty string.
func (b *Builder) Empty() Fragment {
	s := b.newState(true)
	return Fragment{Start: s, End: s}
}

// Literal returns a fragment accepting exactly the symbol r.
func (b *Builder) Literal(r rune) Fragment {
	start := b.newState(false)
	end := b.newState(true)
	b.addTransition(start, end, r)
	return Fragment{Start: start, End: end}
}

// Concat links first's end to second's start.
func (b *Builder) Concat(first, second Fragment) Fragment {
	b.addEpsilon(first.End, second.Start)
	b.states[first.End].Accepting = false
	return Fragment{Start: first.Start, End: second.End}
}

// Union accepts what either operand accepts.
func (b *Builder) Union(first, second Fragment) Fragment {
	start := b.newState(false)
	b.addEpsilon(start, first.Start)
	b.addEpsilon(start, second.Start)

	end := b.newState(true)
	b.addEpsilon(first.End, end)
	b.states[first.End].Accepting = false
	b.addEpsilon(second.End, end)
	b.states[second.End].Accepting = false

	return Fragment{Start: start, End: end}
}

// Repeat accepts zero or more repetitions of f.
func (b *Builder) Repeat(f Fragment) Fragment {
	start := b.newState(false)
	end := b.newState(true)

	b.addEpsilon(start, end)
	b.addEpsilon(start, f.Start)

	b.addEpsilon(f.End, end)
	b.addEpsilon(f.End, f.Start)
	b.states[f.End].Accepting = false

	return Fragment{Start: start, End: end}
}

// Build freezes the builder's states into an NFA rooted at f.
func (b *Builder) Build(f Fragment) *NFA {
	n := &NFA{states: b.states, start: f.Start, end: f.End}
	b.states = nil
	return n
}

// NFA is an immutable epsilon-NFA.
type NFA struct {
	states []State
	start  StateID
	end    StateID
}

// Start returns the initial state.
func (n *NFA) Start() StateID { return n.start }

// End returns the designated accepting state.
func (n *NFA) End() StateID { return n.end }

// Len returns the number of states.
func (n *NFA) Len() int { return len(n.states) }

// Accepting reports whether s is an accepting state.
func (n *NFA) Accepting(s StateID) bool { return n.states[s].Accepting }

// Next returns the target of the transition from s on r.
func (n *NFA) Next(s StateID, r rune) (StateID, bool) {
	t, ok := n.states[s].Transitions[r]
	return t, ok
}

// Epsilon returns a copy of the epsilon targets of s.
func (n *NFA) Epsilon(s StateID) []StateID {
	return slices.Clone(n.states[s].Epsilon)
}

// Symbols returns the symbols labeling transitions out of s, ascending.
func (n *NFA) Symbols(s StateID) []rune {
	syms := make([]rune, 0, len(n.states[s].Transitions))
	for r := range n.states[s].Transitions {
		syms = append(syms, r)
	}
	slices.Sort(syms)
	return syms
}

// Alphabet returns every symbol used by the automaton, ascending.
func (n *NFA) Alphabet() []rune {
	seen := make(map[rune]struct{})
	for _, s := range n.states {
		for r := range s.Transitions {
			seen[r] = struct{}{}
		}
	}
	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	slices.Sort(out)
	return out
}
