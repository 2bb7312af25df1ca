package compiler

import (
	"sort"
	"strings"
)

// AnalysisResult contains the results of pattern analysis without code generation.
type AnalysisResult struct {
	Pattern string `json:"pattern"`

	// FeatureLabels are derived from pattern structure (sorted alphabetically)
	FeatureLabels []string `json:"feature_labels"`

	// Automaton sizes at each pipeline stage
	NFAStates    int  `json:"nfa_states"`
	DFAStates    int  `json:"dfa_states"`
	LiveStates   int  `json:"live_states"`
	AlphabetSize int  `json:"alphabet_size"`
	HasSink      bool `json:"has_sink"`
}

// AnalyzePattern runs the pipeline up to the DFA and reports its shape
// without generating code. It returns an error if the pattern is invalid.
func AnalyzePattern(pattern string) (*AnalysisResult, error) {
	c, err := New(Config{Pattern: pattern})
	if err != nil {
		return nil, err
	}
	return c.Analysis(), nil
}

// Analysis reports the shape of the compiled automata.
func (c *Compiler) Analysis() *AnalysisResult {
	return &AnalysisResult{
		Pattern:       c.config.Pattern,
		FeatureLabels: deriveFeatureLabels(c.config.Pattern, c),
		NFAStates:     c.nfa.States.Len(),
		DFAStates:     c.dfa.States.Len(),
		LiveStates:    int(c.live.Count()),
		AlphabetSize:  c.dfa.Alphabet.Len(),
		HasSink:       c.hasSink,
	}
}

// deriveFeatureLabels extracts feature labels from the pattern structure.
// Labels are sorted alphabetically.
func deriveFeatureLabels(pattern string, c *Compiler) []string {
	var labels []string

	if hasAlternation(c.regex) {
		labels = append(labels, "Alternation")
	}
	if hasCharClass(c.regex) {
		labels = append(labels, "CharClass")
	}
	if hasConcat(c.regex) {
		labels = append(labels, "Concat")
	}
	if hasEpsilon(c.regex) {
		labels = append(labels, "Epsilon")
	}

	// Escape: a backslash in the source, whatever it escaped
	if strings.Contains(pattern, `\`) {
		labels = append(labels, "Escape")
	}

	if hasMultibyte(pattern) {
		labels = append(labels, "Multibyte")
	}
	if hasRepetition(c.regex) {
		labels = append(labels, "Repetition")
	}

	// Simple: no special features
	if len(labels) == 0 {
		labels = append(labels, "Simple")
	}

	sort.Strings(labels)
	return labels
}

// hasMultibyte checks if the pattern contains non-ASCII characters.
func hasMultibyte(pattern string) bool {
	for _, r := range pattern {
		if r > 127 {
			return true
		}
	}
	return false
}
