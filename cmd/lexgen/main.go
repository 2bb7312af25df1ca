// Command lexgen generates a direct-coded DFA matcher for a pattern.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/KromDaniel/lexgen/pkg/lexgen"
)

const appName = "lexgen"

// arrayFlags collects a repeatable string flag.
type arrayFlags []string

func (a *arrayFlags) String() string {
	return strings.Join(*a, ", ")
}

func (a *arrayFlags) Set(value string) error {
	*a = append(*a, value)
	return nil
}

type config struct {
	pattern    string
	name       string
	output     string
	pkg        string
	testInputs arrayFlags
	testFile   bool
	verbose    bool
	analyze    bool
}

func parseFlags(args []string) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet(appName, flag.ContinueOnError)
	fs.StringVar(&cfg.pattern, "pattern", "", "Pattern to compile (required)")
	fs.StringVar(&cfg.name, "name", "", "Name of the generated matcher type")
	fs.StringVar(&cfg.output, "output", "", "Output file for the generated code")
	fs.StringVar(&cfg.pkg, "package", "main", "Package name for the generated code")
	fs.Var(&cfg.testInputs, "test-inputs", "Input for the generated test file (repeatable)")
	fs.BoolVar(&cfg.testFile, "test-file", false, "Generate a test file next to the output")
	fs.BoolVar(&cfg.verbose, "verbose", false, "Log every compilation stage to stderr")
	fs.BoolVar(&cfg.analyze, "analyze", false, "Print the pattern analysis as JSON instead of generating code")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s -pattern=PATTERN [-name=NAME -output=FILE] [OPTIONS]\n\n", appName)
		fmt.Fprintln(fs.Output(), "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(fs.Output())
		fmt.Fprintln(fs.Output(), "Examples:")
		fmt.Fprintf(fs.Output(), "  %s -pattern='[a-z]([a-z]|[0-9])*' -name=Ident -output=ident.go -package=lexer\n", appName)
		fmt.Fprintf(fs.Output(), "  %s -pattern='[0-9]+' -analyze\n", appName)
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.pattern == "" {
		return nil, fmt.Errorf("-pattern flag is required")
	}
	return cfg, nil
}

func run(cfg *config) error {
	if cfg.analyze {
		result, err := lexgen.Analyze(cfg.pattern)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	return lexgen.Generate(lexgen.Options{
		Pattern:          cfg.pattern,
		Name:             cfg.name,
		OutputFile:       cfg.output,
		Package:          cfg.pkg,
		GenerateTestFile: cfg.testFile,
		TestFileInputs:   cfg.testInputs,
		Verbose:          cfg.verbose,
	})
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err == flag.ErrHelp {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
