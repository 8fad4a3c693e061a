package sregex

import (
	"fmt"
	"io"

	"github.com/KromDaniel/sregex/internal/automaton"
	"github.com/KromDaniel/sregex/internal/syntax"
)

// GraphKind selects which automaton WriteDOT renders.
type GraphKind string

const (
	GraphNFA GraphKind = "nfa"
	GraphDFA GraphKind = "dfa"
)

// WriteDOT writes a Graphviz rendering of the pattern's automaton to w.
func (re *Regex) WriteDOT(w io.Writer, kind GraphKind) error {
	switch kind {
	case GraphNFA:
		return automaton.WriteDOT(w, re.nfa)
	case GraphDFA:
		d, err := re.DFA()
		if err != nil {
			return err
		}
		return automaton.WriteDFADOT(w, d)
	}
	return fmt.Errorf("unknown graph kind %q", kind)
}

// DumpAST writes an indented outline of the syntax tree to w.
func (re *Regex) DumpAST(w io.Writer) {
	syntax.Dump(w, re.ast)
}
