package lexgen

import (
	"github.com/KromDaniel/lexgen/internal/compiler"
)

// AnalysisResult contains the results of pattern analysis without code generation.
type AnalysisResult = compiler.AnalysisResult

// Analyze compiles pattern to a DFA and reports the size of each stage
// together with sorted feature labels, without generating code.
//
// Example:
//
//	result, err := lexgen.Analyze("[a-z]([a-z]|[0-9])*")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.FeatureLabels) // [Alternation CharClass Concat Repetition]
//	fmt.Println(result.HasSink)       // true
func Analyze(pattern string) (*AnalysisResult, error) {
	return compiler.AnalyzePattern(pattern)
}
