package syntax

import (
	"fmt"
	"io"
	"strings"
)

// Quantifier is the only supported repetition: a greedy Kleene star.
type Quantifier struct {
	Kind   string `json:"kind"`
	Greedy bool   `json:"greedy"`
}

// Star returns a fresh greedy "*" quantifier.
func Star() *Quantifier {
	return &Quantifier{Kind: "*", Greedy: true}
}

// Node is an element of a parsed pattern. The set of node kinds is closed:
// *Character, *Group and *Disjunction.
type Node interface {
	fmt.Stringer
	// Quantified returns the quantifier attached to the node, or nil.
	Quantified() *Quantifier
	setQuantifier(q *Quantifier)
}

// Character is one or more literal symbols.
type Character struct {
	Value      string      `json:"value"`
	Quantifier *Quantifier `json:"quantifier,omitempty"`
}

// Group is a parenthesized sub-pattern. A quantifier applies to the whole group.
type Group struct {
	Expression []Node      `json:"expression"`
	Quantifier *Quantifier `json:"quantifier,omitempty"`
}

// Disjunction is the alternation of exactly two operands.
type Disjunction struct {
	Left       Node        `json:"left"`
	Right      Node        `json:"right"`
	Quantifier *Quantifier `json:"quantifier,omitempty"`
}

// Regex is the root of a parsed pattern; Body is implicitly concatenated.
type Regex struct {
	Body []Node `json:"body"`
}

func (n *Character) Quantified() *Quantifier     { return n.Quantifier }
func (n *Character) setQuantifier(q *Quantifier) { n.Quantifier = q }

func (n *Group) Quantified() *Quantifier     { return n.Quantifier }
func (n *Group) setQuantifier(q *Quantifier) { n.Quantifier = q }

func (n *Disjunction) Quantified() *Quantifier     { return n.Quantifier }
func (n *Disjunction) setQuantifier(q *Quantifier) { n.Quantifier = q }

func (n *Character) String() string {
	if n.Quantifier == nil {
		return n.Value
	}
	if len([]rune(n.Value)) > 1 {
		return "(" + n.Value + ")" + n.Quantifier.Kind
	}
	return n.Value + n.Quantifier.Kind
}

func (n *Group) String() string {
	s := "(" + joinNodes(n.Expression) + ")"
	if n.Quantifier != nil {
		s += n.Quantifier.Kind
	}
	return s
}

func (n *Disjunction) String() string {
	s := n.Left.String() + "+" + n.Right.String()
	if n.Quantifier != nil {
		return "(" + s + ")" + n.Quantifier.Kind
	}
	return s
}

// String renders the tree back into pattern syntax. Quantified multi-symbol
// characters and quantified disjunctions are parenthesized.
func (r *Regex) String() string {
	return joinNodes(r.Body)
}

func joinNodes(nodes []Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(n.String())
	}
	return sb.String()
}

// Dump writes an indented outline of the tree to w.
func Dump(w io.Writer, r *Regex) {
	fmt.Fprintln(w, "Regex")
	for _, n := range r.Body {
		dumpNode(w, n, 1)
	}
}

func dumpNode(w io.Writer, n Node, depth int) {
	indent := strings.Repeat("  ", depth)
	star := ""
	if n.Quantified() != nil {
		star = " *"
	}
	switch n := n.(type) {
	case *Character:
		fmt.Fprintf(w, "%sCharacter %q%s\n", indent, n.Value, star)
	case *Group:
		fmt.Fprintf(w, "%sGroup%s\n", indent, star)
		for _, c := range n.Expression {
			dumpNode(w, c, depth+1)
		}
	case *Disjunction:
		fmt.Fprintf(w, "%sDisjunction%s\n", indent, star)
		dumpNode(w, n.Left, depth+1)
		dumpNode(w, n.Right, depth+1)
	}
}
