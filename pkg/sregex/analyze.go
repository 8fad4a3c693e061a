package sregex

import (
	"github.com/KromDaniel/sregex/internal/automaton"
	"github.com/KromDaniel/sregex/internal/compiler"
)

// Analyze performs pattern analysis without keeping the compiled pattern.
// It returns the *ParseError if the pattern is invalid.
//
// Example:
//
//	result, err := sregex.Analyze("(a+b)*c")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.FeatureLabels) // ["Alternation", "Groups", "Repetition"]
//	fmt.Println(result.DFAStates)     // 2
func Analyze(pattern string, alphabet ...string) (*AnalysisResult, error) {
	return AnalyzeWithThreshold(pattern, automaton.DefaultMaxDFAStates, alphabet...)
}

// AnalyzeWithThreshold performs pattern analysis with a custom DFA state
// threshold. DFAStates is reported as -1 when the threshold is exceeded.
func AnalyzeWithThreshold(pattern string, maxDFAStates int, alphabet ...string) (*AnalysisResult, error) {
	return compiler.AnalyzePattern(pattern, alphabet, maxDFAStates)
}
