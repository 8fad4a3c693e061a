package compiler

import (
	"errors"
	"sort"

	"github.com/KromDaniel/sregex/internal/automaton"
	"github.com/KromDaniel/sregex/internal/syntax"
)

// AnalysisResult describes a compiled pattern.
type AnalysisResult struct {
	// FeatureLabels are derived from pattern structure (sorted alphabetically)
	FeatureLabels []string `json:"feature_labels"`

	Characters   int  `json:"characters"`
	Groups       int  `json:"groups"`
	Disjunctions int  `json:"disjunctions"`
	Quantifiers  int  `json:"quantifiers"`
	MaxDepth     int  `json:"max_depth"`
	Finite       bool `json:"finite"`

	MinMatchLen int `json:"min_match_len"`
	MaxMatchLen int `json:"max_match_len"` // -1 if unbounded

	NFAStates int `json:"nfa_states"`
	// DFAStates is the size of the minimal DFA, or -1 when subset
	// construction exceeded its state limit.
	DFAStates int `json:"dfa_states"`

	Alphabet string `json:"alphabet"`
}

// AnalyzePattern parses and compiles pattern and reports its analysis.
// It returns the parser's error if the pattern is invalid.
func AnalyzePattern(pattern string, alphabet []string, maxDFAStates int) (*AnalysisResult, error) {
	res, err := syntax.Parse(pattern, alphabet)
	if err != nil {
		return nil, err
	}
	return Analyze(res.AST, Compile(res.AST), maxDFAStates)
}

// Analyze reports the analysis of an already compiled pattern.
func Analyze(ast *syntax.Regex, nfa *automaton.NFA, maxDFAStates int) (*AnalysisResult, error) {
	st := collectStats(ast)
	lengths := AnalyzeMatchLength(ast)

	result := &AnalysisResult{
		FeatureLabels: deriveFeatureLabels(st),
		Characters:    st.Characters,
		Groups:        st.Groups,
		Disjunctions:  st.Disjunctions,
		Quantifiers:   st.Quantifiers,
		MaxDepth:      st.MaxDepth,
		Finite:        isFinite(ast),
		MinMatchLen:   lengths.MinMatchLen,
		MaxMatchLen:   lengths.MaxMatchLen,
		NFAStates:     nfa.Len(),
		Alphabet:      string(nfa.Alphabet()),
	}

	dfa, err := automaton.Determinize(nfa, maxDFAStates)
	switch {
	case errors.Is(err, automaton.ErrTooManyStates):
		result.DFAStates = -1
	case err != nil:
		return nil, err
	default:
		result.DFAStates = len(automaton.Minimize(dfa).States)
	}
	return result, nil
}

// deriveFeatureLabels extracts feature labels from the pattern structure.
// Labels are sorted alphabetically.
func deriveFeatureLabels(st nodeStats) []string {
	var labels []string
	if st.Disjunctions > 0 {
		labels = append(labels, "Alternation")
	}
	if st.Groups > 0 {
		labels = append(labels, "Groups")
	}
	if st.MaxDepth > 1 {
		labels = append(labels, "NestedGroups")
	}
	if st.Quantifiers > 0 {
		labels = append(labels, "Repetition")
	}
	if st.Characters == 0 {
		labels = append(labels, "Empty")
	}
	sort.Strings(labels)
	return labels
}
