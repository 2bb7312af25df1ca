// Package compiler turns a lexgen pattern into a direct-coded DFA matcher
// written as Go source.
package compiler

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"os"
	"strings"

	"github.com/KromDaniel/lexgen/automaton"
	"github.com/KromDaniel/lexgen/syntax"
	"github.com/bits-and-blooms/bitset"
	"github.com/dave/jennifer/jen"
)

// Config holds the configuration for code generation.
type Config struct {
	Pattern          string
	Name             string
	OutputFile       string
	Package          string
	GenerateTestFile bool      // Generate a test file asserting the DFA's verdicts
	TestFileInputs   []string  // Inputs for the generated test file
	Verbose          bool      // Log every pipeline stage
	LogOutput        io.Writer // Destination for verbose logs (default stderr)
}

// Compiler generates Go matchers from lexgen patterns.
type Compiler struct {
	config  Config
	logger  *Logger
	regex   syntax.Regex
	nfa     *automaton.NFA[int]
	dfa     *automaton.DFA[int]
	live    *bitset.BitSet
	hasSink bool
}

// New parses and determinizes the configured pattern. The returned
// Compiler holds the renumbered DFA; no code is produced until Source or
// Generate is called.
func New(config Config) (*Compiler, error) {
	c := &Compiler{
		config: config,
		logger: NewLogger(config.Verbose),
	}
	if config.LogOutput != nil {
		c.logger.SetOutput(config.LogOutput)
	}
	if err := c.build(); err != nil {
		return nil, err
	}
	return c, nil
}

// SetOutputFile sets the output file path.
func (c *Compiler) SetOutputFile(path string) {
	c.config.OutputFile = path
}

// DFA returns the renumbered automaton the generated code is derived from.
func (c *Compiler) DFA() *automaton.DFA[int] {
	return c.dfa
}

func (c *Compiler) build() error {
	done := c.logger.Stage("Parse")
	c.logger.Log("Pattern: %s", c.config.Pattern)
	re, err := syntax.Parse(c.config.Pattern)
	if err != nil {
		return fmt.Errorf("failed to parse pattern: %w", err)
	}
	c.regex = re
	c.logger.Log("AST: %s", re)
	done()

	done = c.logger.Stage("Thompson Construction")
	c.nfa = re.Thompson()
	c.logger.Automaton("NFA", c.nfa.States.Len(), c.nfa.Alphabet.Len(), c.nfa.Final.Len())
	if c.logger.Enabled() {
		symbols := automaton.SortedSymbols(c.nfa.Alphabet)
		quoted := make([]string, len(symbols))
		for i, sym := range symbols {
			quoted[i] = automaton.FormatSymbol(sym)
		}
		c.logger.Log("NFA alphabet: %s", strings.Join(quoted, " "))
	}
	done()

	done = c.logger.Stage("Subset Construction")
	subsets := c.nfa.SubsetConstruction()
	for state := range subsets.States {
		if state.IsSink() {
			c.hasSink = true
		}
	}
	dfa, ids := automaton.Renumber(subsets)
	c.dfa = dfa
	c.logger.Automaton("DFA", dfa.States.Len(), dfa.Alphabet.Len(), dfa.Final.Len())
	c.logger.Log("Sink state: %v", c.hasSink)
	if c.logger.Enabled() {
		for subset, id := range ids {
			c.logger.Log("state %d = %s", id, subset)
		}
	}
	done()

	done = c.logger.Stage("Liveness")
	c.live = liveStates(dfa)
	c.logger.Log("Live states: %d of %d", c.live.Count(), dfa.States.Len())
	done()

	return nil
}

// Source renders the matcher as formatted Go source.
func (c *Compiler) Source() ([]byte, error) {
	c.logger.Section("Code Generation")
	return render(c.matcherFile())
}

// Generate generates the Go code and writes it to the output file.
func (c *Compiler) Generate() error {
	src, err := c.Source()
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.config.OutputFile, src, 0644); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	c.logger.Log("Wrote %s", c.config.OutputFile)

	if c.config.GenerateTestFile {
		if err := c.generateTestFile(); err != nil {
			return fmt.Errorf("failed to generate test file: %w", err)
		}
	}

	return nil
}

// testFilePath derives the generated test file's path from the output file.
func (c *Compiler) testFilePath() string {
	return strings.TrimSuffix(c.config.OutputFile, ".go") + "_test.go"
}

// headerComment writes the generated-code marker recognized by go vet and
// linters.
func (c *Compiler) headerComment(f *jen.File) {
	f.HeaderComment(fmt.Sprintf("Code generated by lexgen for pattern %q. DO NOT EDIT.", c.config.Pattern))
}

// render formats the file with go/format.
func render(f *jen.File) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render file: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format file: %w", err)
	}
	return formatted, nil
}
