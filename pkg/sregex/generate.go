package sregex

import (
	"fmt"
	"go/token"
	"math/rand/v2"
	"strings"

	"github.com/KromDaniel/sregex/internal/codegen"
)

// GenerateOptions configures Go code generation for a pattern.
type GenerateOptions struct {
	// Pattern is the expression to compile
	Pattern string

	// Alphabet optionally restricts the pattern's characters (see Options.Alphabet)
	Alphabet []string

	// Name is the generated matcher type (e.g., "Greeting" generates "Greeting.MatchString")
	Name string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// Package is the Go package name for the generated code
	Package string

	// GenerateTestFile writes <OutputFile without .go>_test.go checking the
	// matcher against TestFileInputs and a sample of accepted strings
	GenerateTestFile bool

	// TestFileInputs are extra inputs for the generated test file; their
	// expected outcome is computed by the compiled pattern
	TestFileInputs []string

	// Verbose enables logging of compilation decisions
	Verbose bool
}

// Validate checks if the options are valid.
func (o GenerateOptions) Validate() error {
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if !token.IsIdentifier(codegen.UpperFirst(o.Name)) {
		return fmt.Errorf("name %q is not a valid Go identifier", o.Name)
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	if !token.IsIdentifier(o.Package) {
		return fmt.Errorf("package %q is not a valid Go identifier", o.Package)
	}
	return nil
}

// Generate compiles the pattern to a minimal DFA and writes a Go matcher
// for it. The pattern's errors are returned wrapped; errors.As still finds
// the *ParseError.
func Generate(opts GenerateOptions) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	re, err := CompileWithOptions(opts.Pattern, Options{Alphabet: opts.Alphabet, Verbose: opts.Verbose})
	if err != nil {
		return fmt.Errorf("failed to parse pattern: %w", err)
	}

	dfa, err := re.DFA()
	if err != nil {
		return fmt.Errorf("failed to compile pattern: %w", err)
	}

	gen := codegen.New(codegen.Config{
		Pattern: opts.Pattern,
		Name:    opts.Name,
		Package: opts.Package,
		DFA:     dfa,
	})
	if err := gen.Save(opts.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	if !opts.GenerateTestFile {
		return nil
	}
	if err := gen.SaveTestFile(testFilePath(opts.OutputFile), re.testCases(opts.TestFileInputs)); err != nil {
		return fmt.Errorf("failed to generate test file: %w", err)
	}
	return nil
}

func testFilePath(output string) string {
	return strings.TrimSuffix(output, ".go") + "_test.go"
}

// testCases pairs each input with the compiled pattern's verdict, followed
// by a reproducible sample of accepted strings.
func (re *Regex) testCases(inputs []string) []codegen.TestCase {
	seen := make(map[string]bool)
	var cases []codegen.TestCase
	add := func(in string) {
		if seen[in] {
			return
		}
		seen[in] = true
		cases = append(cases, codegen.TestCase{Input: in, Want: re.Accepts(in)})
	}

	for _, in := range inputs {
		add(in)
	}
	rng := rand.New(rand.NewPCG(1, 2))
	for _, in := range re.nfa.Generate(DefaultGenerateConfig(), rng) {
		add(in)
	}
	return cases
}
