// Package syntax parses the regular expression language accepted by lexgen
// and compiles expressions to NFAs with Thompson's construction.
//
// The language is small: literal characters, backslash escapes, the
// keyword eps for the empty word, the classes [a-z], [A-Z] and [0-9],
// grouping, alternation with |, implicit concatenation, and one postfix
// *, + or ? per operand. Whitespace between tokens is ignored.
package syntax

import (
	"strings"
	"unicode"

	"github.com/KromDaniel/lexgen/automaton"
)

// Regex is a node of the expression tree. The set of node kinds is closed;
// nodes are immutable values.
type Regex interface {
	// Thompson compiles the expression into an NFA with exactly one initial
	// and one final state, numbered densely from 0.
	Thompson() *automaton.NFA[int]

	// String renders the expression so that parsing it back yields the
	// same tree.
	String() string

	node()
}

// Character matches a single literal character.
type Character struct {
	Char rune
}

// Epsilon matches the empty word.
type Epsilon struct{}

// LowerCase matches one of a through z.
type LowerCase struct{}

// UpperCase matches one of A through Z.
type UpperCase struct{}

// Digits matches one of 0 through 9.
type Digits struct{}

// Concat matches E1 followed by E2.
type Concat struct {
	E1, E2 Regex
}

// Altern matches either E1 or E2.
type Altern struct {
	E1, E2 Regex
}

// Star matches zero or more repetitions of Expr.
type Star struct {
	Expr Regex
}

// Plus matches one or more repetitions of Expr.
type Plus struct {
	Expr Regex
}

// Qmark matches Expr or the empty word.
type Qmark struct {
	Expr Regex
}

func (Character) node() {}
func (Epsilon) node()   {}
func (LowerCase) node() {}
func (UpperCase) node() {}
func (Digits) node()    {}
func (Concat) node()    {}
func (Altern) node()    {}
func (Star) node()      {}
func (Plus) node()      {}
func (Qmark) node()     {}

const specialChars = `()|*+?[]-\`

func (c Character) String() string {
	if strings.ContainsRune(specialChars, c.Char) || unicode.IsSpace(c.Char) {
		return `\` + string(c.Char)
	}
	return string(c.Char)
}

func (Epsilon) String() string   { return "eps" }
func (LowerCase) String() string { return "[a-z]" }
func (UpperCase) String() string { return "[A-Z]" }
func (Digits) String() string    { return "[0-9]" }

func (c Concat) String() string { return "(" + c.E1.String() + c.E2.String() + ")" }
func (a Altern) String() string { return "(" + a.E1.String() + "|" + a.E2.String() + ")" }
func (s Star) String() string   { return operand(s.Expr) + "*" }
func (p Plus) String() string   { return operand(p.Expr) + "+" }
func (q Qmark) String() string  { return operand(q.Expr) + "?" }

// operand wraps repeated expressions so that repetitions never stack.
func operand(re Regex) string {
	switch re.(type) {
	case Star, Plus, Qmark:
		return "(" + re.String() + ")"
	}
	return re.String()
}

// Walk calls visit for re and every subexpression, parents first.
func Walk(re Regex, visit func(Regex)) {
	visit(re)
	switch n := re.(type) {
	case Concat:
		Walk(n.E1, visit)
		Walk(n.E2, visit)
	case Altern:
		Walk(n.E1, visit)
		Walk(n.E2, visit)
	case Star:
		Walk(n.Expr, visit)
	case Plus:
		Walk(n.Expr, visit)
	case Qmark:
		Walk(n.Expr, visit)
	}
}
