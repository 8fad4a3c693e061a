package compiler

import "github.com/KromDaniel/sregex/internal/syntax"

// nodeStats counts the node kinds of a syntax tree.
type nodeStats struct {
	Characters   int
	Groups       int
	Disjunctions int
	Quantifiers  int
	MaxDepth     int // deepest group nesting
}

func collectStats(ast *syntax.Regex) nodeStats {
	var st nodeStats
	var walk func(n syntax.Node, depth int)
	walk = func(n syntax.Node, depth int) {
		if n.Quantified() != nil {
			st.Quantifiers++
		}
		switch n := n.(type) {
		case *syntax.Character:
			st.Characters++
		case *syntax.Group:
			st.Groups++
			st.MaxDepth = max(st.MaxDepth, depth+1)
			for _, sub := range n.Expression {
				walk(sub, depth+1)
			}
		case *syntax.Disjunction:
			st.Disjunctions++
			walk(n.Left, depth)
			walk(n.Right, depth)
		}
	}
	for _, n := range ast.Body {
		walk(n, 0)
	}
	return st
}

// isFinite reports whether the pattern's language is finite, i.e. no
// quantifier appears anywhere in the tree.
func isFinite(ast *syntax.Regex) bool {
	return collectStats(ast).Quantifiers == 0
}
