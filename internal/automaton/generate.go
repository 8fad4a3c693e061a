package automaton

import (
	"math"
	"math/rand/v2"
	"slices"
)

// Generate returns a random sample of strings accepted by the automaton.
//
// Strings are collected by a depth-first walk from the start state: each
// labeled transition appends its symbol, epsilon transitions are followed
// without appending, and every prefix whose epsilon closure holds an
// accepting state is recorded. The walk stops after cfg.MaxCount distinct
// strings and never extends a prefix that cannot reach an accepting state
// within cfg.MaxLength runes, so it terminates on cyclic automata. The
// collected strings are shuffled with rng (the global source when nil) and
// the first cfg.SampleSize are returned.
func (n *NFA) Generate(cfg GenerateConfig, rng *rand.Rand) []string {
	cfg = cfg.ApplyDefaults()

	g := &generator{
		nfa:     n,
		cfg:     cfg,
		minDist: n.distancesToAccept(),
	}
	start := newStateSet(len(n.states))
	n.closure(start, n.start)
	g.walk(start.sorted(), nil)

	out := g.out
	shuffle := rand.Shuffle
	if rng != nil {
		shuffle = rng.Shuffle
	}
	shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	if len(out) > cfg.SampleSize {
		out = out[:cfg.SampleSize]
	}
	return out
}

type generator struct {
	nfa     *NFA
	cfg     GenerateConfig
	minDist []int
	out     []string
}

// walk visits the prefix whose epsilon-closed frontier is states. Every
// prefix is reached through exactly one path of symbols, so recorded strings
// are distinct.
func (g *generator) walk(states []StateID, prefix []rune) {
	if len(g.out) >= g.cfg.MaxCount {
		return
	}
	if len(prefix)+g.distance(states) > g.cfg.MaxLength {
		return
	}

	for _, s := range states {
		if g.nfa.states[s].Accepting {
			g.out = append(g.out, string(prefix))
			break
		}
	}

	next := newStateSet(len(g.nfa.states))
	for _, r := range g.symbols(states) {
		next.clear()
		for _, s := range states {
			if t, ok := g.nfa.states[s].Transitions[r]; ok {
				g.nfa.closure(next, t)
			}
		}
		g.walk(next.sorted(), append(prefix, r))
		if len(g.out) >= g.cfg.MaxCount {
			return
		}
	}
}

// distance is the fewest symbols needed to reach acceptance from states.
func (g *generator) distance(states []StateID) int {
	d := math.MaxInt32
	for _, s := range states {
		d = min(d, g.minDist[s])
	}
	return d
}

func (g *generator) symbols(states []StateID) []rune {
	var syms []rune
	for _, s := range states {
		for r := range g.nfa.states[s].Transitions {
			syms = append(syms, r)
		}
	}
	slices.Sort(syms)
	return slices.Compact(syms)
}

// distancesToAccept returns, per state, the fewest labeled transitions on a
// path to an accepting state (math.MaxInt32 when none exists). Epsilon edges
// cost nothing, so this is a 0-1 BFS over the reversed graph.
func (n *NFA) distancesToAccept() []int {
	type edge struct {
		from   StateID
		weight int
	}
	reverse := make([][]edge, len(n.states))
	dist := make([]int, len(n.states))
	var deque []StateID
	for i, s := range n.states {
		dist[i] = math.MaxInt32
		for _, t := range s.Epsilon {
			reverse[t] = append(reverse[t], edge{from: StateID(i), weight: 0})
		}
		for _, t := range s.Transitions {
			reverse[t] = append(reverse[t], edge{from: StateID(i), weight: 1})
		}
		if s.Accepting {
			dist[i] = 0
			deque = append(deque, StateID(i))
		}
	}

	for len(deque) > 0 {
		s := deque[0]
		deque = deque[1:]
		for _, e := range reverse[s] {
			if d := dist[s] + e.weight; d < dist[e.from] {
				dist[e.from] = d
				if e.weight == 0 {
					deque = append([]StateID{e.from}, deque...)
				} else {
					deque = append(deque, e.from)
				}
			}
		}
	}
	return dist
}
