package sregex

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/dlclark/regexp2"
)

// standardSyntax renders a syntax tree as an equivalent conventional regex,
// using "|" for alternation and non-capturing groups.
func standardSyntax(nodes []Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(standardNode(n))
	}
	return sb.String()
}

func standardNode(n Node) string {
	var s string
	switch n := n.(type) {
	case *Character:
		s = regexp2.Escape(n.Value)
	case *Group:
		s = "(?:" + standardSyntax(n.Expression) + ")"
	case *Disjunction:
		s = "(?:" + standardNode(n.Left) + "|" + standardNode(n.Right) + ")"
	}
	if n.Quantified() != nil {
		return "(?:" + s + ")*"
	}
	return s
}

func oracle(t *testing.T, re *Regex) *regexp2.Regexp {
	t.Helper()
	expr := `\A(?:` + standardSyntax(re.AST().Body) + `)\z`
	o, err := regexp2.Compile(expr, regexp2.None)
	if err != nil {
		t.Fatalf("oracle failed to compile %q (from %q): %v", expr, re.Pattern(), err)
	}
	return o
}

// inputs enumerates every string over alphabet up to length n.
func inputs(alphabet string, n int) []string {
	out := []string{""}
	frontier := []string{""}
	for i := 0; i < n; i++ {
		var next []string
		for _, s := range frontier {
			for _, r := range alphabet {
				next = append(next, s+string(r))
			}
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}

func agree(t *testing.T, re *Regex, candidates []string) {
	t.Helper()
	o := oracle(t, re)
	for _, in := range candidates {
		want, err := o.MatchString(in)
		if err != nil {
			t.Fatalf("oracle error on %q: %v", in, err)
		}
		if got := re.Accepts(in); got != want {
			t.Errorf("pattern %q (%s): Accepts(%q) = %v, oracle says %v", re.Pattern(), re.AST(), in, got, want)
		}
	}
}

func TestDifferentialFixed(t *testing.T) {
	patterns := []string{
		"", "a", "ab", "a+b", "a*", "ab*", "(ab)*", "(a+b)*", "(a+b)*a",
		"a+b*", "(a*)*", "a(b+a)*b", "((a+b)(a+b))*", "a+b+ab", "(a+())*b",
	}
	candidates := inputs("abc", 6)
	for _, p := range patterns {
		t.Run(p, func(t *testing.T) {
			agree(t, MustCompile(p), candidates)
		})
	}
}

func TestDifferentialAlphabet(t *testing.T) {
	candidates := inputs("abc", 5)
	for _, p := range []string{"ab*", "a(b+c)*", "abc+cb*a"} {
		t.Run(p, func(t *testing.T) {
			agree(t, MustCompile(p, "a", "b", "c"), candidates)
		})
	}
}

func TestDifferentialRandom(t *testing.T) {
	const symbols = "ab()+*"
	rng := rand.New(rand.NewPCG(2024, 10))
	candidates := inputs("ab", 6)

	checked := 0
	for checked < 200 {
		var sb strings.Builder
		for n := rng.IntN(9); n >= 0; n-- {
			sb.WriteByte(symbols[rng.IntN(len(symbols))])
		}
		re, err := Compile(sb.String())
		if err != nil {
			continue
		}
		agree(t, re, candidates)
		checked++
	}
}

func TestSamplesAgreeWithOracle(t *testing.T) {
	for _, p := range []string{"(a+b)*c", "a(b+a)*b", "((a+b)(a+b))*"} {
		re := MustCompile(p)
		o := oracle(t, re)
		for _, s := range re.SampleMatches() {
			ok, err := o.MatchString(s)
			if err != nil || !ok {
				t.Errorf("pattern %q: sample %q rejected by oracle (err=%v)", p, s, err)
			}
		}
	}
}
