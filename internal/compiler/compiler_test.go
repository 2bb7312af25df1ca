package compiler

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KromDaniel/lexgen/syntax"
)

// declaredNames returns the top-level types, vars, consts and methods of a
// Go source file.
func declaredNames(t *testing.T, src []byte) map[string]bool {
	t.Helper()
	file, err := parser.ParseFile(token.NewFileSet(), "generated.go", src, parser.ParseComments)
	if err != nil {
		t.Fatalf("generated code does not parse: %v\n%s", err, src)
	}

	names := make(map[string]bool)
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			names[d.Name.Name] = true
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					names[s.Name.Name] = true
				case *ast.ValueSpec:
					for _, id := range s.Names {
						names[id.Name] = true
					}
				}
			}
		}
	}
	return names
}

func TestCompilerSource(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"simple", "test"},
		{"lower", "[a-z]+"},
		{"alternation", "a|b"},
		{"star", "(ab)*"},
		{"epsilon", "eps"},
		{"escaped", `\(\)\\`},
		{"whitespace", `a\ b`},
		{"multibyte", "é+ü?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(Config{
				Pattern: tt.pattern,
				Name:    "Token",
				Package: "lexer",
			})
			if err != nil {
				t.Fatalf("New(%q) failed: %v", tt.pattern, err)
			}

			src, err := c.Source()
			if err != nil {
				t.Fatalf("Source failed: %v", err)
			}

			names := declaredNames(t, src)
			for _, want := range []string{"Token", "CompiledToken", "tokenStart", "Step", "IsFinal", "MatchString", "MatchBytes"} {
				if !names[want] {
					t.Errorf("generated code missing %s", want)
				}
			}
			if !strings.Contains(string(src), "DO NOT EDIT") {
				t.Error("generated code missing DO NOT EDIT marker")
			}
		})
	}
}

func TestCompilerSourceOmitsDeadTransitions(t *testing.T) {
	// States are numbered 0 (start), 1 (after a), 2 (sink), 3 (after ab).
	c, err := New(Config{Pattern: "ab", Name: "AB", Package: "p"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	src, err := c.Source()
	if err != nil {
		t.Fatalf("Source failed: %v", err)
	}

	code := string(src)
	for _, want := range []string{"return 1, true", "return 3, true", "return -1, false"} {
		if !strings.Contains(code, want) {
			t.Errorf("generated code missing %q:\n%s", want, code)
		}
	}
	if strings.Contains(code, "return 2, true") {
		t.Errorf("generated code steps into the sink:\n%s", code)
	}
}

func TestCompilerSourceGroupsRunesByTarget(t *testing.T) {
	c, err := New(Config{Pattern: "a*", Name: "As", Package: "p"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	src, err := c.Source()
	if err != nil {
		t.Fatalf("Source failed: %v", err)
	}

	code := string(src)
	// Both states are final and both step to 1 on 'a'.
	if !strings.Contains(code, "case 0, 1:") {
		t.Errorf("IsFinal does not list both states:\n%s", code)
	}
	if got := strings.Count(code, "case 'a':"); got != 2 {
		t.Errorf("found %d rune cases for 'a', want 2:\n%s", got, code)
	}
}

func TestCompilerGenerate(t *testing.T) {
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "ident.go")

	c, err := New(Config{
		Pattern:          "[a-z]([a-z]|[0-9])*",
		Name:             "Ident",
		Package:          "lexer",
		OutputFile:       outputFile,
		GenerateTestFile: true,
		TestFileInputs:   []string{"x1", "1x", ""},
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := c.Generate(); err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	if _, err := os.Stat(outputFile); os.IsNotExist(err) {
		t.Fatal("output file was not created")
	}

	testSrc, err := os.ReadFile(filepath.Join(tmpDir, "ident_test.go"))
	if err != nil {
		t.Fatalf("test file was not created: %v", err)
	}

	names := declaredNames(t, testSrc)
	if !names["TestIdentMatch"] || !names["BenchmarkIdentMatchString"] {
		t.Errorf("test file missing test or benchmark: %v", names)
	}
	for _, want := range []string{`{"x1", true}`, `{"1x", false}`, `{"", false}`} {
		if !strings.Contains(string(testSrc), want) {
			t.Errorf("test file missing case %s:\n%s", want, testSrc)
		}
	}
}

func TestCompilerGenerateWithoutTestFile(t *testing.T) {
	tmpDir := t.TempDir()
	outputFile := filepath.Join(tmpDir, "digits.go")

	c, err := New(Config{Pattern: "[0-9]+", Name: "Digits", Package: "p", OutputFile: outputFile})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := c.Generate(); err != nil {
		t.Fatalf("generation failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(tmpDir, "digits_test.go")); !os.IsNotExist(err) {
		t.Error("test file generated without being requested")
	}
}

func TestCompilerInvalidPattern(t *testing.T) {
	tests := []struct {
		pattern string
		want    error
	}{
		{"(a", syntax.ErrMissingParen},
		{"a)", syntax.ErrUnexpectedParen},
		{"", syntax.ErrEmpty},
		{"[c-f]", syntax.ErrBadClass},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			_, err := New(Config{Pattern: tt.pattern, Name: "X", Package: "p"})
			if !errors.Is(err, tt.want) {
				t.Errorf("New(%q) error = %v, want %v", tt.pattern, err, tt.want)
			}
		})
	}
}

func TestCompilerDFAMatchesPattern(t *testing.T) {
	c, err := New(Config{Pattern: "(a|b)*abb"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	dfa := c.DFA()
	for input, want := range map[string]bool{
		"abb":    true,
		"babb":   true,
		"aabb":   true,
		"ab":     false,
		"abba":   false,
		"":       false,
		"abbabb": true,
	} {
		if got := dfa.Accept(input); got != want {
			t.Errorf("Accept(%q) = %v, want %v", input, got, want)
		}
	}
}
