package lexgen

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/KromDaniel/lexgen/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionsValidate(t *testing.T) {
	valid := Options{Pattern: "a", Name: "A", OutputFile: "a.go", Package: "p"}

	tests := []struct {
		name    string
		mutate  func(*Options)
		wantErr bool
	}{
		{"valid", func(*Options) {}, false},
		{"empty pattern", func(o *Options) { o.Pattern = "" }, true},
		{"empty name", func(o *Options) { o.Name = "" }, true},
		{"name with dash", func(o *Options) { o.Name = "my-token" }, true},
		{"name is keyword", func(o *Options) { o.Name = "func" }, true},
		{"empty output", func(o *Options) { o.OutputFile = "" }, true},
		{"empty package", func(o *Options) { o.Package = "" }, true},
		{"package with dot", func(o *Options) { o.Package = "a.b" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.mutate(&opts)
			err := opts.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "number.go")

	err := Generate(Options{
		Pattern:        "[0-9]+",
		Name:           "Number",
		OutputFile:     out,
		Package:        "tokens",
		TestFileInputs: []string{"42", "4a"},
	})
	require.NoError(t, err)

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "package tokens")
	assert.Contains(t, string(src), "func (m Number) MatchString(input string) bool")

	// Inputs imply a test file.
	_, err = os.Stat(filepath.Join(dir, "number_test.go"))
	assert.NoError(t, err)
}

func TestGenerateNonLetterNames(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		compiled string
	}{
		{"_tok", "_tokStart", "Compiled_tok"},
		{"Élan", "élanStart", "CompiledÉlan"},
		{"ñ", "ñStart", "CompiledÑ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := Options{
				Pattern:        "[a-z]+",
				Name:           tt.name,
				OutputFile:     filepath.Join(t.TempDir(), "tok.go"),
				Package:        "p",
				TestFileInputs: []string{"abc", "1"},
			}
			require.NoError(t, opts.Validate())
			require.NoError(t, Generate(opts))

			src, err := os.ReadFile(opts.OutputFile)
			require.NoError(t, err)
			assert.Contains(t, string(src), "const "+tt.start+" = 0")
			assert.Contains(t, string(src), "var "+tt.compiled+" = "+tt.name+"{}")
		})
	}
}

func TestGenerateDefaultTestInput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "word.go")

	require.NoError(t, Generate(Options{
		Pattern:          "[a-z]+",
		Name:             "Word",
		OutputFile:       out,
		Package:          "tokens",
		GenerateTestFile: true,
	}))

	src, err := os.ReadFile(filepath.Join(dir, "word_test.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), `{"example", true}`)
}

func TestGenerateInvalid(t *testing.T) {
	dir := t.TempDir()

	err := Generate(Options{Pattern: "a", OutputFile: filepath.Join(dir, "x.go"), Package: "p"})
	assert.Error(t, err)
	assert.False(t, IsParseError(err))

	err = Generate(Options{Pattern: "a|", Name: "X", OutputFile: filepath.Join(dir, "x.go"), Package: "p"})
	require.Error(t, err)
	assert.True(t, IsParseError(err))
	assert.ErrorIs(t, err, syntax.ErrMissingOperand)

	_, statErr := os.Stat(filepath.Join(dir, "x.go"))
	assert.True(t, os.IsNotExist(statErr), "nothing is written for an invalid pattern")
}

func TestCompile(t *testing.T) {
	tests := []struct {
		pattern  string
		accepted []string
		rejected []string
	}{
		{"if|in|int", []string{"if", "in", "int"}, []string{"", "i", "inte", "fi"}},
		{"[A-Z][a-z]*", []string{"X", "Lexer"}, []string{"", "lexer", "LEXER"}},
		{"[0-9]+(\\.[0-9]+)?", []string{"0", "10", "1.5"}, []string{".5", "1.", "1.2.3"}},
		{"\\+|\\-|\\*", []string{"+", "-", "*"}, []string{"", "+-", "/"}},
		{"a eps b", []string{"ab"}, []string{"a b", "a", "b"}},
		{"ü+", []string{"ü", "üü"}, []string{"u", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			m, err := Compile(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.pattern, m.String())
			for _, s := range tt.accepted {
				assert.True(t, m.MatchString(s), "MatchString(%q)", s)
				assert.True(t, m.MatchBytes([]byte(s)), "MatchBytes(%q)", s)
			}
			for _, s := range tt.rejected {
				assert.False(t, m.MatchString(s), "MatchString(%q)", s)
				assert.False(t, m.MatchBytes([]byte(s)), "MatchBytes(%q)", s)
			}
		})
	}
}

func TestCompileError(t *testing.T) {
	_, err := Compile("[c-f]")
	require.Error(t, err)

	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 0, perr.Offset)
	assert.ErrorIs(t, err, syntax.ErrBadClass)
}

func TestMustCompile(t *testing.T) {
	assert.Panics(t, func() { MustCompile("(") })
	assert.NotPanics(t, func() { MustCompile("(a)") })
}

func TestMatcherStates(t *testing.T) {
	// start, after a, sink
	assert.Equal(t, 3, MustCompile("a").States())
}

func TestAnalyze(t *testing.T) {
	result, err := Analyze("[a-z]([a-z]|[0-9])*")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alternation", "CharClass", "Concat", "Repetition"}, result.FeatureLabels)
	assert.True(t, result.HasSink)
	assert.Equal(t, 36, result.AlphabetSize)
}
