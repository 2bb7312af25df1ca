package lexgen

import (
	"github.com/KromDaniel/lexgen/automaton"
	"github.com/KromDaniel/lexgen/internal/compiler"
	"github.com/KromDaniel/lexgen/syntax"
)

// ParseError reports a malformed pattern and the offset where parsing
// stopped.
type ParseError = syntax.ParseError

// Matcher runs a compiled pattern in memory. It is immutable and safe for
// concurrent use.
type Matcher struct {
	pattern string
	dfa     *automaton.DFA[int]
}

// Compile parses pattern and determinizes it.
func Compile(pattern string) (*Matcher, error) {
	c, err := compiler.New(compiler.Config{Pattern: pattern})
	if err != nil {
		return nil, err
	}
	return &Matcher{pattern: pattern, dfa: c.DFA()}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be parsed.
func MustCompile(pattern string) *Matcher {
	m, err := Compile(pattern)
	if err != nil {
		panic("lexgen: Compile(" + pattern + "): " + err.Error())
	}
	return m
}

// MatchString reports whether the whole of s matches the pattern.
func (m *Matcher) MatchString(s string) bool {
	return m.dfa.Accept(s)
}

// MatchBytes reports whether the whole of b, decoded as UTF-8, matches the
// pattern.
func (m *Matcher) MatchBytes(b []byte) bool {
	return m.dfa.Accept(string(b))
}

// States returns the number of DFA states, the sink included.
func (m *Matcher) States() int {
	return m.dfa.States.Len()
}

// String returns the source pattern.
func (m *Matcher) String() string {
	return m.pattern
}
