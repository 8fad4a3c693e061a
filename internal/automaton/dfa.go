package automaton

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// DefaultMaxDFAStates bounds subset construction.
const DefaultMaxDFAStates = 500

// ErrTooManyStates is returned when subset construction exceeds its limit.
var ErrTooManyStates = errors.New("automaton: too many DFA states")

// DFAState is a deterministic state. A missing transition rejects.
type DFAState struct {
	Accepting   bool
	Transitions map[rune]int
}

// DFA is a deterministic automaton over the runes in Alphabet.
type DFA struct {
	States   []DFAState
	Start    int
	Alphabet []rune
}

// Determinize converts n into an equivalent DFA by subset construction.
// Each DFA state is the epsilon closure of a set of NFA states and accepts
// if any member accepts. maxStates <= 0 selects DefaultMaxDFAStates.
func Determinize(n *NFA, maxStates int) (*DFA, error) {
	if maxStates <= 0 {
		maxStates = DefaultMaxDFAStates
	}

	d := &DFA{Alphabet: n.Alphabet()}
	stateMap := make(map[string]int) // closure key -> DFA state
	var sets [][]StateID

	add := func(set []StateID) (int, error) {
		key := setKey(set)
		if id, ok := stateMap[key]; ok {
			return id, nil
		}
		if len(d.States) >= maxStates {
			return 0, fmt.Errorf("%w: more than %d", ErrTooManyStates, maxStates)
		}
		id := len(d.States)
		stateMap[key] = id
		sets = append(sets, set)
		accepting := slices.ContainsFunc(set, n.Accepting)
		d.States = append(d.States, DFAState{Accepting: accepting, Transitions: make(map[rune]int)})
		return id, nil
	}

	start, err := add(n.Closure(n.start))
	if err != nil {
		return nil, err
	}
	d.Start = start

	scratch := newStateSet(len(n.states))
	for i := 0; i < len(sets); i++ {
		for _, r := range d.Alphabet {
			scratch.clear()
			for _, s := range sets[i] {
				if t, ok := n.states[s].Transitions[r]; ok {
					n.closure(scratch, t)
				}
			}
			if scratch.len() == 0 {
				continue
			}
			to, err := add(scratch.sorted())
			if err != nil {
				return nil, err
			}
			d.States[i].Transitions[r] = to
		}
	}
	return d, nil
}

func setKey(set []StateID) string {
	var sb strings.Builder
	for i, s := range set {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(s)))
	}
	return sb.String()
}

// Accepts reports whether d accepts the whole input.
func (d *DFA) Accepts(input string) bool {
	s := d.Start
	for _, r := range input {
		next, ok := d.States[s].Transitions[r]
		if !ok {
			return false
		}
		s = next
	}
	return d.States[s].Accepting
}

// Minimize returns the minimal DFA equivalent to d. States are merged by
// partition refinement (a missing transition is treated as a move to an
// implicit dead state) and renumbered in breadth-first order from the start.
func Minimize(d *DFA) *DFA {
	if d == nil || len(d.States) == 0 {
		return d
	}

	class := make([]int, len(d.States))
	for i, s := range d.States {
		if s.Accepting {
			class[i] = 1
		}
	}
	classes := countClasses(class)

	for {
		signatures := make(map[string]int)
		next := make([]int, len(d.States))
		for i, s := range d.States {
			var sb strings.Builder
			sb.WriteString(strconv.Itoa(class[i]))
			for _, r := range d.Alphabet {
				sb.WriteByte('|')
				if to, ok := s.Transitions[r]; ok {
					sb.WriteString(strconv.Itoa(class[to]))
				} else {
					sb.WriteByte('-')
				}
			}
			sig := sb.String()
			id, ok := signatures[sig]
			if !ok {
				id = len(signatures)
				signatures[sig] = id
			}
			next[i] = id
		}
		class = next
		if len(signatures) == classes {
			break
		}
		classes = len(signatures)
	}

	// Renumber reachable classes breadth-first so output is deterministic.
	renumber := map[int]int{class[d.Start]: 0}
	representative := []int{d.Start}
	for i := 0; i < len(representative); i++ {
		s := d.States[representative[i]]
		for _, r := range d.Alphabet {
			to, ok := s.Transitions[r]
			if !ok {
				continue
			}
			if _, seen := renumber[class[to]]; !seen {
				renumber[class[to]] = len(representative)
				representative = append(representative, to)
			}
		}
	}

	out := &DFA{
		States:   make([]DFAState, len(representative)),
		Alphabet: slices.Clone(d.Alphabet),
	}
	for i, old := range representative {
		s := d.States[old]
		ns := DFAState{Accepting: s.Accepting, Transitions: make(map[rune]int, len(s.Transitions))}
		for r, to := range s.Transitions {
			ns.Transitions[r] = renumber[class[to]]
		}
		out.States[i] = ns
	}
	return out
}

func countClasses(class []int) int {
	seen := make(map[int]struct{})
	for _, c := range class {
		seen[c] = struct{}{}
	}
	return len(seen)
}
