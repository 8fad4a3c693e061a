// Package compiler turns a parsed pattern into an epsilon-NFA by Thompson's
// construction.
package compiler

import (
	"io"

	"github.com/KromDaniel/sregex/internal/automaton"
	"github.com/KromDaniel/sregex/internal/syntax"
)

// Config holds the configuration for compilation.
type Config struct {
	Verbose   bool      // Enable verbose logging of compilation decisions
	LogOutput io.Writer // Destination for verbose output (default stderr)
}

// Compiler builds automata from syntax trees.
type Compiler struct {
	config  Config
	logger  *Logger
	builder *automaton.Builder
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	logger := NewLogger(config.Verbose)
	if config.LogOutput != nil {
		logger.SetOutput(config.LogOutput)
	}
	return &Compiler{
		config: config,
		logger: logger,
	}
}

// Logger returns the compiler's verbose logger.
func (c *Compiler) Logger() *Logger {
	return c.logger
}

// Compile builds a fresh NFA for ast. The NFA shares no state with the tree
// or with automata from earlier calls. An empty body yields a single-state
// automaton accepting only the empty string.
func (c *Compiler) Compile(ast *syntax.Regex) *automaton.NFA {
	c.builder = automaton.NewBuilder()
	defer func() { c.builder = nil }()

	c.logger.Section("Compilation")
	c.logger.Log("Pattern: %s", ast)
	c.logger.Log("Top-level nodes: %d", len(ast.Body))

	var frag automaton.Fragment
	if len(ast.Body) == 0 {
		c.logger.Log("Empty body, automaton accepts only the empty string")
		frag = c.builder.Empty()
	} else {
		frag = c.sequence(ast.Body)
	}

	nfa := c.builder.Build(frag)
	c.logger.Log("NFA states: %d", nfa.Len())
	return nfa
}

// Compile builds an NFA for ast with a default, silent compiler.
func Compile(ast *syntax.Regex) *automaton.NFA {
	return New(Config{}).Compile(ast)
}

// sequence concatenates the fragments of nodes left to right. nodes must
// not be empty.
func (c *Compiler) sequence(nodes []syntax.Node) automaton.Fragment {
	frag := c.node(nodes[0])
	for _, n := range nodes[1:] {
		frag = c.builder.Concat(frag, c.node(n))
	}
	return frag
}

func (c *Compiler) node(n syntax.Node) automaton.Fragment {
	var frag automaton.Fragment
	switch n := n.(type) {
	case *syntax.Character:
		frag = c.character(n.Value)
	case *syntax.Group:
		frag = c.sequence(n.Expression)
	case *syntax.Disjunction:
		frag = c.builder.Union(c.node(n.Left), c.node(n.Right))
	default:
		panic("compiler: unknown syntax node")
	}

	if q := n.Quantified(); q != nil && q.Kind == "*" {
		frag = c.builder.Repeat(frag)
	}
	return frag
}

// character chains one literal per rune of value.
func (c *Compiler) character(value string) automaton.Fragment {
	var frag automaton.Fragment
	first := true
	for _, r := range value {
		lit := c.builder.Literal(r)
		if first {
			frag, first = lit, false
			continue
		}
		frag = c.builder.Concat(frag, lit)
	}
	if first {
		return c.builder.Empty()
	}
	return frag
}
