package codegen

import (
	"fmt"
	"io"
	"slices"

	"github.com/KromDaniel/sregex/internal/automaton"
	"github.com/dave/jennifer/jen"
)

// Config holds the configuration for code generation.
type Config struct {
	Pattern string
	Name    string // Exported type name of the generated matcher
	Package string
	DFA     *automaton.DFA // Usually minimal; any DFA is accepted
}

// TestCase is an input with its expected outcome, emitted into generated tests.
type TestCase struct {
	Input string
	Want  bool
}

// Generator emits a matcher type with MatchString and MatchBytes methods
// driven by a switch over DFA states.
type Generator struct {
	config Config
}

// New creates a generator. config.DFA must not be nil.
func New(config Config) *Generator {
	config.Name = UpperFirst(config.Name)
	return &Generator{config: config}
}

// File builds the matcher source file.
func (g *Generator) File() *jen.File {
	f := jen.NewFile(g.config.Package)
	f.HeaderComment(fmt.Sprintf("Code generated by sregex for pattern: %s. DO NOT EDIT.", g.config.Pattern))

	name := g.config.Name
	f.Commentf("%s matches the pattern %q against whole inputs.", name, g.config.Pattern)
	f.Type().Id(name).Struct()
	f.Line()

	f.Var().Id("Compiled" + name).Op("=").Id(name).Values()
	f.Line()

	f.Comment("MatchString reports whether the whole input is accepted.")
	f.Func().Params(jen.Id(name)).Id("MatchString").
		Params(jen.Id(InputName).String()).
		Bool().
		Block(g.matchBody(false)...)
	f.Line()

	f.Comment("MatchBytes reports whether the whole input is accepted.")
	f.Func().Params(jen.Id(name)).Id("MatchBytes").
		Params(jen.Id(InputName).Index().Byte()).
		Bool().
		Block(g.matchBody(true)...)

	return f
}

// TestFile builds a test file asserting the generated matcher's outcome on
// each case.
func (g *Generator) TestFile(cases []TestCase) *jen.File {
	f := jen.NewFile(g.config.Package)
	f.HeaderComment(fmt.Sprintf("Code generated by sregex for pattern: %s. DO NOT EDIT.", g.config.Pattern))

	name := g.config.Name
	entries := make([]jen.Code, 0, len(cases))
	for _, tc := range cases {
		entries = append(entries, jen.Values(jen.Lit(tc.Input), jen.Lit(tc.Want)))
	}

	check := func(method string, arg jen.Code) jen.Code {
		return jen.If(
			jen.Id("got").Op(":=").Id("Compiled"+name).Dot(method).Call(arg),
			jen.Id("got").Op("!=").Id("tt").Dot("want"),
		).Block(
			jen.Id("t").Dot("Errorf").Call(
				jen.Lit(method+"(%q) = %v, want %v"),
				jen.Id("tt").Dot("input"), jen.Id("got"), jen.Id("tt").Dot("want"),
			),
		)
	}

	f.Func().Id("Test"+name+"Match").Params(jen.Id("t").Op("*").Qual("testing", "T")).Block(
		jen.Id("tests").Op(":=").Index().Struct(
			jen.Id("input").String(),
			jen.Id("want").Bool(),
		).Values(entries...),
		jen.Line(),
		jen.For(jen.List(jen.Id("_"), jen.Id("tt")).Op(":=").Range().Id("tests")).Block(
			check("MatchString", jen.Id("tt").Dot("input")),
			check("MatchBytes", jen.Index().Byte().Call(jen.Id("tt").Dot("input"))),
		),
	)
	return f
}

// Render writes the matcher source to w.
func (g *Generator) Render(w io.Writer) error {
	return g.File().Render(w)
}

// Save writes the matcher source to path. The output is gofmt'ed.
func (g *Generator) Save(path string) error {
	return g.File().Save(path)
}

// SaveTestFile writes the generated test file to path.
func (g *Generator) SaveTestFile(path string, cases []TestCase) error {
	return g.TestFile(cases).Save(path)
}

func (g *Generator) matchBody(isBytes bool) []jen.Code {
	dfa := g.config.DFA
	code := []jen.Code{
		jen.Id(StateName).Op(":=").Lit(dfa.Start),
	}

	if !hasTransitions(dfa) {
		// Only the empty input can be accepted.
		code = append(code,
			jen.If(jen.Len(jen.Id(InputName)).Op(">").Lit(0)).Block(jen.Return(jen.False())),
		)
		return append(code, g.acceptCheck()...)
	}

	if isBytes {
		code = append(code,
			jen.For(jen.Len(jen.Id(InputName)).Op(">").Lit(0)).Block(
				jen.List(jen.Id(RuneName), jen.Id(SizeName)).Op(":=").Qual("unicode/utf8", "DecodeRune").Call(jen.Id(InputName)),
				jen.Id(InputName).Op("=").Id(InputName).Index(jen.Id(SizeName).Op(":")),
				g.transitionSwitch(),
			),
		)
	} else {
		code = append(code,
			jen.For(jen.List(jen.Id("_"), jen.Id(RuneName)).Op(":=").Range().Id(InputName)).Block(
				g.transitionSwitch(),
			),
		)
	}

	return append(code, g.acceptCheck()...)
}

// transitionSwitch moves state on the current rune, returning false when
// no transition exists.
func (g *Generator) transitionSwitch() jen.Code {
	dfa := g.config.DFA
	cases := make([]jen.Code, 0, len(dfa.States)+1)
	for id, s := range dfa.States {
		body := []jen.Code{jen.Comment(StateComment(id, s.Accepting))}
		if len(s.Transitions) == 0 {
			body = append(body, jen.Return(jen.False()))
		} else {
			body = append(body, jen.Switch(jen.Id(RuneName)).Block(g.runeCases(s)...))
		}
		cases = append(cases, jen.Case(jen.Lit(id)).Block(body...))
	}
	cases = append(cases, jen.Default().Block(jen.Return(jen.False())))
	return jen.Switch(jen.Id(StateName)).Block(cases...)
}

// runeCases groups the symbols of s by target state, in target order.
func (g *Generator) runeCases(s automaton.DFAState) []jen.Code {
	byTarget := make(map[int][]rune)
	for r, to := range s.Transitions {
		byTarget[to] = append(byTarget[to], r)
	}
	targets := make([]int, 0, len(byTarget))
	for to := range byTarget {
		targets = append(targets, to)
	}
	slices.Sort(targets)

	cases := make([]jen.Code, 0, len(targets)+1)
	for _, to := range targets {
		runes := byTarget[to]
		slices.Sort(runes)
		lits := make([]jen.Code, len(runes))
		for i, r := range runes {
			lits[i] = jen.LitRune(r)
		}
		cases = append(cases, jen.Case(lits...).Block(jen.Id(StateName).Op("=").Lit(to)))
	}
	cases = append(cases, jen.Default().Block(jen.Return(jen.False())))
	return cases
}

func (g *Generator) acceptCheck() []jen.Code {
	var accepting []jen.Code
	for id, s := range g.config.DFA.States {
		if s.Accepting {
			accepting = append(accepting, jen.Lit(id))
		}
	}
	if len(accepting) == 0 {
		return []jen.Code{jen.Return(jen.False())}
	}
	return []jen.Code{
		jen.Switch(jen.Id(StateName)).Block(
			jen.Case(accepting...).Block(jen.Return(jen.True())),
		),
		jen.Return(jen.False()),
	}
}

func hasTransitions(d *automaton.DFA) bool {
	for _, s := range d.States {
		if len(s.Transitions) > 0 {
			return true
		}
	}
	return false
}
