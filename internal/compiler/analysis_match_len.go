package compiler

import (
	"unicode/utf8"

	"github.com/KromDaniel/sregex/internal/syntax"
)

// MatchLengthAnalysis holds the computed match length bounds for a pattern,
// counted in runes.
type MatchLengthAnalysis struct {
	// MinMatchLen is the fewest runes any accepted string has.
	MinMatchLen int

	// MaxMatchLen is the most runes any accepted string has.
	// -1 means unbounded (the pattern contains a "*").
	MaxMatchLen int
}

// AnalyzeMatchLength computes the minimum and maximum accepted lengths.
func AnalyzeMatchLength(ast *syntax.Regex) MatchLengthAnalysis {
	if ast == nil {
		return MatchLengthAnalysis{}
	}
	return MatchLengthAnalysis{
		MinMatchLen: minSeqLen(ast.Body),
		MaxMatchLen: maxSeqLen(ast.Body),
	}
}

func minSeqLen(nodes []syntax.Node) int {
	total := 0
	for _, n := range nodes {
		total += minMatchLen(n)
	}
	return total
}

func minMatchLen(n syntax.Node) int {
	if n.Quantified() != nil {
		// Zero repetitions
		return 0
	}
	switch n := n.(type) {
	case *syntax.Character:
		return utf8.RuneCountInString(n.Value)
	case *syntax.Group:
		return minSeqLen(n.Expression)
	case *syntax.Disjunction:
		return min(minMatchLen(n.Left), minMatchLen(n.Right))
	}
	return 0
}

func maxSeqLen(nodes []syntax.Node) int {
	total := 0
	for _, n := range nodes {
		m := maxMatchLen(n)
		if m < 0 {
			return -1
		}
		total += m
	}
	return total
}

func maxMatchLen(n syntax.Node) int {
	switch n := n.(type) {
	case *syntax.Character:
		if n.Quantifier != nil {
			if n.Value == "" {
				return 0
			}
			return -1
		}
		return utf8.RuneCountInString(n.Value)
	case *syntax.Group:
		m := maxSeqLen(n.Expression)
		if n.Quantifier != nil && m != 0 {
			return -1
		}
		return m
	case *syntax.Disjunction:
		l, r := maxMatchLen(n.Left), maxMatchLen(n.Right)
		if l < 0 || r < 0 {
			return -1
		}
		m := max(l, r)
		if n.Quantifier != nil && m != 0 {
			return -1
		}
		return m
	}
	return 0
}
