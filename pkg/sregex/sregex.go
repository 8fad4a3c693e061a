// Package sregex compiles minimal regular expressions into epsilon-NFAs.
//
// The pattern language has literal characters, grouping with "(" and ")",
// alternation with "+" and a greedy "*" repetition:
//
//	re, err := sregex.Compile("(a+b)*c")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	re.Accepts("abbac")   // true
//	re.SampleMatches()    // e.g. ["bc", "c", "aabc", ...]
//
// Matching is whole-input: a pattern accepts a string only if the entire
// string is in its language.
package sregex

import (
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/KromDaniel/sregex/internal/automaton"
	"github.com/KromDaniel/sregex/internal/compiler"
	"github.com/KromDaniel/sregex/internal/syntax"
)

// Syntax tree and token types produced by Compile.
type (
	AST         = syntax.Regex
	Node        = syntax.Node
	Character   = syntax.Character
	Group       = syntax.Group
	Disjunction = syntax.Disjunction
	Quantifier  = syntax.Quantifier
	Token       = syntax.Token
	TokenKind   = syntax.Kind
)

// ParseError is returned by Compile for invalid patterns.
type ParseError = syntax.ParseError

// Errors matched by errors.Is against a *ParseError.
var (
	ErrUnclosedGroup       = syntax.ErrUnclosedGroup
	ErrDisallowedCharacter = syntax.ErrDisallowedCharacter
	ErrUnmatchedGroupEnd   = syntax.ErrUnmatchedGroupEnd
)

// GenerateConfig bounds SampleMatchesWith.
type GenerateConfig = automaton.GenerateConfig

// DefaultGenerateConfig returns the limits used by SampleMatches.
func DefaultGenerateConfig() GenerateConfig {
	return automaton.DefaultGenerateConfig()
}

// DFA is a deterministic automaton equivalent to a compiled pattern.
type DFA = automaton.DFA

// AnalysisResult describes a compiled pattern.
type AnalysisResult = compiler.AnalysisResult

// Options configures compilation.
type Options struct {
	// Alphabet restricts which characters a pattern may contain. Empty
	// means unrestricted. With an alphabet, runs of characters are split
	// into one node per character.
	Alphabet []string

	// Verbose enables logging of compilation decisions.
	Verbose bool

	// LogOutput receives verbose logging (default stderr).
	LogOutput io.Writer

	// MaxDFAStates bounds DFA construction (default 500).
	MaxDFAStates int
}

// Regex is a compiled pattern. A Regex is safe for concurrent use by
// multiple goroutines.
type Regex struct {
	// read-only after Compile
	pattern      string
	ast          *syntax.Regex
	tokens       []syntax.Token
	nfa          *automaton.NFA
	maxDFAStates int

	dfaOnce sync.Once
	dfa     *automaton.DFA
	dfaErr  error
}

// Compile parses pattern and builds its automaton. alphabet optionally
// restricts the characters the pattern may contain. The returned error is
// a *ParseError.
func Compile(pattern string, alphabet ...string) (*Regex, error) {
	return CompileWithOptions(pattern, Options{Alphabet: alphabet})
}

// CompileWithOptions is like Compile with explicit options.
func CompileWithOptions(pattern string, opts Options) (*Regex, error) {
	parsed, err := syntax.Parse(pattern, opts.Alphabet)
	if err != nil {
		return nil, err
	}

	c := compiler.New(compiler.Config{Verbose: opts.Verbose, LogOutput: opts.LogOutput})
	c.Logger().Log("Tokens: %d", len(parsed.Tokens))
	nfa := c.Compile(parsed.AST)

	return &Regex{
		pattern:      pattern,
		ast:          parsed.AST,
		tokens:       parsed.Tokens,
		nfa:          nfa,
		maxDFAStates: opts.MaxDFAStates,
	}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
func MustCompile(pattern string, alphabet ...string) *Regex {
	re, err := Compile(pattern, alphabet...)
	if err != nil {
		panic(fmt.Sprintf("sregex: Compile(%q): %v", pattern, err))
	}
	return re
}

// Pattern returns the source text used to compile the expression.
func (re *Regex) Pattern() string {
	return re.pattern
}

// String returns the source text used to compile the expression.
func (re *Regex) String() string {
	return re.pattern
}

// AST returns the parsed syntax tree. It must not be modified.
func (re *Regex) AST() *AST {
	return re.ast
}

// Tokens returns the token sequence the pattern was parsed from.
func (re *Regex) Tokens() []Token {
	return slices.Clone(re.tokens)
}

// Accepts reports whether the whole input is in the pattern's language.
func (re *Regex) Accepts(input string) bool {
	return re.nfa.Accepts(input)
}

// SampleMatches returns up to ten shuffled strings accepted by the pattern,
// each at most 20 characters long. The sample is random and not exhaustive.
func (re *Regex) SampleMatches() []string {
	return re.nfa.Generate(automaton.DefaultGenerateConfig(), nil)
}

// SampleMatchesWith is like SampleMatches with explicit limits and random
// source. A nil rng uses the global source.
func (re *Regex) SampleMatchesWith(cfg GenerateConfig, rng *rand.Rand) ([]string, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generate config: %w", err)
	}
	return re.nfa.Generate(cfg, rng), nil
}

// DFA returns the minimal DFA for the pattern, building it on first use.
func (re *Regex) DFA() (*DFA, error) {
	re.dfaOnce.Do(func() {
		d, err := automaton.Determinize(re.nfa, re.maxDFAStates)
		if err != nil {
			re.dfaErr = fmt.Errorf("failed to build DFA: %w", err)
			return
		}
		re.dfa = automaton.Minimize(d)
	})
	return re.dfa, re.dfaErr
}

// Analysis reports structural statistics about the pattern.
func (re *Regex) Analysis() (*AnalysisResult, error) {
	return compiler.Analyze(re.ast, re.nfa, re.maxDFAStates)
}
