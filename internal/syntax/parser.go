// Package syntax lexes and parses patterns into an abstract syntax tree.
//
// The pattern language has literal characters, grouping with "(" and ")",
// alternation with "+" and a greedy "*" repetition. There is no escaping:
// the four operator characters can never be matched literally.
package syntax

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Result is a successfully parsed pattern.
type Result struct {
	AST *Regex
	// Tokens is the token sequence the pattern was parsed from.
	Tokens []Token
}

// frame is the parse state of the top level or of one open group.
type frame struct {
	branches []Node // nodes not yet flushed
	nodes    []Node // flushed output
	left     Node   // pending left operand of "+"
	open     Token  // the GroupStart that opened the frame
}

func (f *frame) flush() {
	f.nodes = append(f.nodes, f.branches...)
	f.branches = nil
}

// restoreLeft puts back a left operand whose "+" never received a right one.
func (f *frame) restoreLeft() {
	if f.left != nil {
		f.branches = append(f.branches, f.left)
		f.left = nil
	}
}

func (f *frame) push(n Node) {
	if f.left != nil {
		n = &Disjunction{Left: f.left, Right: n}
		f.left = nil
	}
	f.branches = append(f.branches, n)
}

func (f *frame) popLast() Node {
	if n := len(f.branches); n > 0 {
		last := f.branches[n-1]
		f.branches = f.branches[:n-1]
		return last
	}
	if n := len(f.nodes); n > 0 {
		last := f.nodes[n-1]
		f.nodes = f.nodes[:n-1]
		return last
	}
	return nil
}

// quantify attaches "*" to the most recently produced node. A disjunction
// still in the branch buffer passes the quantifier to its right operand; a
// flushed one takes it itself unless its right operand is already starred.
func (f *frame) quantify() {
	if n := len(f.branches); n > 0 {
		last := f.branches[n-1]
		if d, ok := last.(*Disjunction); ok {
			if d.Quantifier == nil {
				d.Right.setQuantifier(Star())
			}
			return
		}
		last.setQuantifier(Star())
		return
	}
	if n := len(f.nodes); n > 0 {
		last := f.nodes[n-1]
		if d, ok := last.(*Disjunction); ok && d.Right.Quantified() != nil {
			return
		}
		last.setQuantifier(Star())
	}
}

// Parse tokenizes and parses pattern. A non-empty alphabet restricts the
// characters the pattern may contain: every character must contain at least
// one alphabet entry. With an alphabet, runs of characters are split into one
// Character node per rune; without one, a run stays a single node.
func Parse(pattern string, alphabet []string) (*Result, error) {
	tokens := Tokenize(pattern)
	alphabet = slices.DeleteFunc(slices.Clone(alphabet), func(s string) bool { return s == "" })

	stack := []*frame{{}}
	for _, tok := range tokens {
		top := stack[len(stack)-1]
		switch tok.Kind {
		case Char:
			for _, c := range splitRun(tok, len(alphabet) > 0) {
				if len(alphabet) > 0 && !allowed(c.Value, alphabet) {
					return nil, &ParseError{Kind: DisallowedCharacter, Value: c.Value, Offset: c.Offset}
				}
				top.push(&Character{Value: c.Value})
			}

		case GroupStart:
			top.flush()
			stack = append(stack, &frame{open: tok})

		case GroupEnd:
			if len(stack) == 1 {
				return nil, &ParseError{Kind: UnmatchedGroupEnd, Value: tok.Value, Offset: tok.Offset}
			}
			stack = stack[:len(stack)-1]
			top.restoreLeft()
			top.flush()
			if len(top.nodes) == 0 {
				continue
			}
			var group Node = &Group{Expression: top.nodes}
			parent := stack[len(stack)-1]
			if parent.left != nil {
				group = &Disjunction{Left: parent.left, Right: group}
				parent.left = nil
			}
			parent.nodes = append(parent.nodes, group)

		case GreedyOperator:
			top.quantify()

		case OrOperator:
			if top.left == nil {
				top.left = top.popLast()
			}

		case End:
			if len(stack) > 1 {
				return nil, &ParseError{Kind: UnclosedGroup, Value: top.open.Value, Offset: top.open.Offset}
			}
			top.restoreLeft()
			top.flush()
		}
	}

	return &Result{
		AST:    &Regex{Body: stack[0].nodes},
		Tokens: tokens,
	}, nil
}

// splitRun returns the characters a Char token contributes: the whole run,
// or one entry per rune when split is set.
func splitRun(tok Token, split bool) []Token {
	if !split {
		return []Token{tok}
	}
	out := make([]Token, 0, utf8.RuneCountInString(tok.Value))
	for i, r := range tok.Value {
		out = append(out, Token{Value: string(r), Kind: Char, Offset: tok.Offset + i})
	}
	return out
}

func allowed(value string, alphabet []string) bool {
	for _, a := range alphabet {
		if strings.Contains(value, a) {
			return true
		}
	}
	return false
}
