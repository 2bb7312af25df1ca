// Package lexgen compiles lexer patterns into deterministic matchers, either
// in memory or as generated Go source.
//
// Patterns use a small syntax: literal characters, the keyword eps for the
// empty word, the classes [a-z], [A-Z] and [0-9], grouping with
// parentheses, alternation with |, and the postfix operators *, + and ?.
// A backslash makes the next character literal. Unescaped whitespace is
// ignored. Matchers accept whole inputs only.
package lexgen

import (
	"errors"
	"fmt"
	"go/token"

	"github.com/KromDaniel/lexgen/internal/compiler"
)

// Options configures code generation.
type Options struct {
	// Pattern is the expression to compile
	Pattern string

	// Name is the generated type name (e.g., "Ident" generates "Ident", "CompiledIdent" and "identStart")
	Name string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// Package is the Go package name for the generated code
	Package string

	// GenerateTestFile generates a test file pinning the matcher's verdicts (default: true if TestFileInputs provided)
	GenerateTestFile bool

	// TestFileInputs is a list of inputs for the generated test file. If empty and GenerateTestFile is true, defaults to []string{"example"}
	TestFileInputs []string

	// Verbose logs every pipeline stage to stderr
	Verbose bool
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Pattern == "" {
		return fmt.Errorf("pattern cannot be empty")
	}
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if !token.IsIdentifier(o.Name) {
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

// Generate writes a direct-coded matcher for opts.Pattern to opts.OutputFile.
// It returns an error if the options or the pattern are invalid.
func Generate(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	generateTestFile := opts.GenerateTestFile
	testInputs := opts.TestFileInputs
	if len(testInputs) > 0 {
		generateTestFile = true
	} else if generateTestFile {
		testInputs = []string{"example"}
	}

	c, err := compiler.New(compiler.Config{
		Pattern:          opts.Pattern,
		Name:             opts.Name,
		OutputFile:       opts.OutputFile,
		Package:          opts.Package,
		GenerateTestFile: generateTestFile,
		TestFileInputs:   testInputs,
		Verbose:          opts.Verbose,
	})
	if err != nil {
		return err
	}

	if err := c.Generate(); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	return nil
}

// IsParseError reports whether err was caused by a malformed pattern.
func IsParseError(err error) bool {
	var perr *ParseError
	return errors.As(err, &perr)
}
