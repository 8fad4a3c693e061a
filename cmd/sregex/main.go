// Command sregex compiles a pattern, tests strings against it, samples
// matching strings, and can export its automaton or generate a Go matcher.
//
// Usage:
//
//	sregex -pattern '(a+b)*c' -test abc -test ab
//	sregex -pattern 'ab*' -samples -seed 7
//	sregex -pattern '(ab)*' -dot dfa > ab.dot
//	sregex -pattern 'hello+world' -name Greeting -package greet -o greet/greeting.go
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/KromDaniel/sregex/pkg/sregex"
)

// arrayFlags collects a repeatable string flag.
type arrayFlags []string

func (a *arrayFlags) String() string {
	return strings.Join(*a, ", ")
}

func (a *arrayFlags) Set(value string) error {
	*a = append(*a, value)
	return nil
}

// Exit codes.
const (
	exitMatch   = 0
	exitNoMatch = 1
	exitUsage   = 2
)

type cli struct {
	pattern   string
	alphabet  arrayFlags
	tests     arrayFlags
	stdin     bool
	samples   bool
	maxLength int
	maxCount  int
	count     int
	seed      uint64
	tokens    bool
	ast       bool
	dot       string
	analyze   bool
	output    string
	name      string
	pkg       string
	testFile  bool
	verbose   bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var c cli
	fs := flag.NewFlagSet("sregex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.pattern, "pattern", "", "pattern to compile (required)")
	fs.Var(&c.alphabet, "alphabet", "allowed character (repeatable); empty means unrestricted")
	fs.Var(&c.tests, "test", "string to test against the pattern (repeatable)")
	fs.BoolVar(&c.stdin, "stdin", false, "test each line read from stdin")
	fs.BoolVar(&c.samples, "samples", false, "print sample matching strings")
	fs.IntVar(&c.maxLength, "max-length", 0, "longest sample string (default 20)")
	fs.IntVar(&c.maxCount, "max-count", 0, "strings collected before sampling (default 10000)")
	fs.IntVar(&c.count, "count", 0, "number of samples printed (default 10)")
	fs.Uint64Var(&c.seed, "seed", 0, "random seed for samples (0 = random)")
	fs.BoolVar(&c.tokens, "tokens", false, "print the token sequence")
	fs.BoolVar(&c.ast, "ast", false, "print the syntax tree")
	fs.StringVar(&c.dot, "dot", "", "print a Graphviz graph of the automaton: nfa or dfa")
	fs.BoolVar(&c.analyze, "analyze", false, "print pattern analysis")
	fs.StringVar(&c.output, "o", "", "generate a Go matcher into this file")
	fs.StringVar(&c.name, "name", "Matcher", "generated matcher type name")
	fs.StringVar(&c.pkg, "package", "main", "generated package name")
	fs.BoolVar(&c.testFile, "test-file", false, "also generate a test file for the matcher")
	fs.BoolVar(&c.verbose, "verbose", false, "log compilation decisions to stderr")

	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if c.pattern == "" && !isFlagSet(fs, "pattern") {
		fmt.Fprintln(stderr, "usage: sregex -pattern <pattern> [-alphabet c]... [-test s]... [-stdin] [-samples] [-tokens] [-ast] [-dot nfa|dfa] [-o file]")
		fs.PrintDefaults()
		return exitUsage
	}

	re, err := sregex.CompileWithOptions(c.pattern, sregex.Options{
		Alphabet:  c.alphabet,
		Verbose:   c.verbose,
		LogOutput: stderr,
	})
	if err != nil {
		var perr *sregex.ParseError
		if errors.As(err, &perr) {
			fmt.Fprintf(stderr, "invalid pattern: %v\n", perr)
			if perr.Offset <= len(c.pattern) {
				fmt.Fprintf(stderr, "  %s\n  %s^\n", c.pattern, strings.Repeat(" ", perr.Offset))
			}
		} else {
			fmt.Fprintf(stderr, "Error compiling pattern: %v\n", err)
		}
		return exitUsage
	}

	if c.tokens {
		for _, tok := range re.Tokens() {
			fmt.Fprintf(stdout, "%-15s %-6d %q\n", tok.Kind, tok.Offset, tok.Value)
		}
	}
	if c.ast {
		re.DumpAST(stdout)
	}
	if c.analyze {
		if err := printAnalysis(stdout, re); err != nil {
			fmt.Fprintf(stderr, "Error analyzing pattern: %v\n", err)
			return exitUsage
		}
	}
	if c.dot != "" {
		if err := re.WriteDOT(stdout, sregex.GraphKind(c.dot)); err != nil {
			fmt.Fprintf(stderr, "Error writing graph: %v\n", err)
			return exitUsage
		}
	}
	if c.samples {
		if err := printSamples(stdout, re, c); err != nil {
			fmt.Fprintf(stderr, "Error sampling: %v\n", err)
			return exitUsage
		}
	}
	if c.output != "" {
		err := sregex.Generate(sregex.GenerateOptions{
			Pattern:          c.pattern,
			Alphabet:         c.alphabet,
			Name:             c.name,
			OutputFile:       c.output,
			Package:          c.pkg,
			GenerateTestFile: c.testFile,
			TestFileInputs:   c.tests,
			Verbose:          c.verbose,
		})
		if err != nil {
			fmt.Fprintf(stderr, "Error generating %s: %v\n", c.output, err)
			return exitUsage
		}
		fmt.Fprintf(stderr, "Matcher written to %s\n", c.output)
	}

	inputs := []string(c.tests)
	if c.stdin {
		scanner := bufio.NewScanner(stdin)
		for scanner.Scan() {
			inputs = append(inputs, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			fmt.Fprintf(stderr, "Error reading stdin: %v\n", err)
			return exitUsage
		}
	}

	code := exitMatch
	for _, in := range inputs {
		ok := re.Accepts(in)
		fmt.Fprintf(stdout, "%-5v %q\n", ok, in)
		if !ok {
			code = exitNoMatch
		}
	}
	return code
}

func printSamples(w io.Writer, re *sregex.Regex, c cli) error {
	var rng *rand.Rand
	if c.seed != 0 {
		rng = rand.New(rand.NewPCG(c.seed, c.seed))
	}
	samples, err := re.SampleMatchesWith(sregex.GenerateConfig{
		MaxLength:  c.maxLength,
		MaxCount:   c.maxCount,
		SampleSize: c.count,
	}, rng)
	if err != nil {
		return err
	}
	for _, s := range samples {
		fmt.Fprintf(w, "%q\n", s)
	}
	return nil
}

func printAnalysis(w io.Writer, re *sregex.Regex) error {
	a, err := re.Analysis()
	if err != nil {
		return err
	}
	maxLen := "unbounded"
	if a.MaxMatchLen >= 0 {
		maxLen = fmt.Sprint(a.MaxMatchLen)
	}
	fmt.Fprintf(w, "features:    %s\n", strings.Join(a.FeatureLabels, ", "))
	fmt.Fprintf(w, "alphabet:    %q\n", a.Alphabet)
	fmt.Fprintf(w, "match len:   %d..%s\n", a.MinMatchLen, maxLen)
	fmt.Fprintf(w, "nfa states:  %d\n", a.NFAStates)
	fmt.Fprintf(w, "dfa states:  %d\n", a.DFAStates)
	return nil
}

func isFlagSet(fs *flag.FlagSet, name string) bool {
	set := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}
