package automaton

import (
	"bufio"
	"fmt"
	"io"
	"slices"
	"strconv"
)

// WriteDOT writes a Graphviz rendering of n to w. Epsilon transitions are
// labeled "ε".
func WriteDOT(w io.Writer, n *NFA) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph NFA {")
	fmt.Fprintln(bw, "    rankdir=LR;")
	for i, s := range n.states {
		fmt.Fprintf(bw, "    n%d [shape=%s];\n", i, shape(s.Accepting))
		for _, r := range n.Symbols(StateID(i)) {
			fmt.Fprintf(bw, "    n%d -> n%d [label=%s];\n", i, s.Transitions[r], strconv.Quote(string(r)))
		}
		for _, t := range s.Epsilon {
			fmt.Fprintf(bw, "    n%d -> n%d [label=\"ε\"];\n", i, t)
		}
	}
	fmt.Fprintf(bw, "    _start [shape=point]; _start -> n%d;\n", n.start)
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// WriteDFADOT writes a Graphviz rendering of d to w.
func WriteDFADOT(w io.Writer, d *DFA) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph DFA {")
	fmt.Fprintln(bw, "    rankdir=LR;")
	for i, s := range d.States {
		fmt.Fprintf(bw, "    q%d [shape=%s];\n", i, shape(s.Accepting))
		syms := make([]rune, 0, len(s.Transitions))
		for r := range s.Transitions {
			syms = append(syms, r)
		}
		slices.Sort(syms)
		for _, r := range syms {
			fmt.Fprintf(bw, "    q%d -> q%d [label=%s];\n", i, s.Transitions[r], strconv.Quote(string(r)))
		}
	}
	fmt.Fprintf(bw, "    _start [shape=point]; _start -> q%d;\n", d.Start)
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

func shape(accepting bool) string {
	if accepting {
		return "doublecircle"
	}
	return "circle"
}
