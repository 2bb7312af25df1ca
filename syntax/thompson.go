package syntax

import "github.com/KromDaniel/lexgen/automaton"

// Fragments are numbered 0..n-1. Combining sites shift each operand by a
// fixed offset so that operands never share a state.

func shift(offset int) func(int) int {
	return func(s int) int { return s + offset }
}

// combine returns an automaton holding every state, symbol and transition
// of parts, with no final states. Destination sets are copied, never
// shared with the operands.
func combine(initial int, parts ...*automaton.NFA[int]) *automaton.NFA[int] {
	out := automaton.NewNFA(initial)
	for _, part := range parts {
		out.Alphabet.AddAll(part.Alphabet)
		out.States.AddAll(part.States)
		for key, targets := range part.Delta {
			dest, ok := out.Delta[key]
			if !ok {
				dest = automaton.NewSet[int]()
				out.Delta[key] = dest
			}
			dest.AddAll(targets)
		}
	}
	return out
}

// single returns the only final state of a fragment.
func single(n *automaton.NFA[int]) int {
	for f := range n.Final {
		return f
	}
	panic("syntax: fragment without a final state")
}

func (c Character) Thompson() *automaton.NFA[int] {
	n := automaton.NewNFA(0)
	n.AddTransition(0, c.Char, 1)
	n.Final.Add(1)
	return n
}

func (Epsilon) Thompson() *automaton.NFA[int] {
	n := automaton.NewNFA(0)
	n.Final.Add(0)
	return n
}

func rangeNFA(lo, hi rune) *automaton.NFA[int] {
	n := automaton.NewNFA(0)
	for r := lo; r <= hi; r++ {
		n.AddTransition(0, r, 1)
	}
	n.Final.Add(1)
	return n
}

func (LowerCase) Thompson() *automaton.NFA[int] { return rangeNFA('a', 'z') }
func (UpperCase) Thompson() *automaton.NFA[int] { return rangeNFA('A', 'Z') }
func (Digits) Thompson() *automaton.NFA[int]    { return rangeNFA('0', '9') }

func (c Concat) Thompson() *automaton.NFA[int] {
	left := c.E1.Thompson()
	right := automaton.RemapNFA(c.E2.Thompson(), shift(left.States.Len()))

	n := combine(left.Initial, left, right)
	for f := range left.Final {
		n.AddTransition(f, automaton.Epsilon, right.Initial)
	}
	n.Final.AddAll(right.Final)
	return n
}

func (a Altern) Thompson() *automaton.NFA[int] {
	left := automaton.RemapNFA(a.E1.Thompson(), shift(1))
	right := automaton.RemapNFA(a.E2.Thompson(), shift(1+left.States.Len()))
	final := 1 + left.States.Len() + right.States.Len()

	n := combine(0, left, right)
	n.AddTransition(0, automaton.Epsilon, left.Initial)
	n.AddTransition(0, automaton.Epsilon, right.Initial)
	n.AddTransition(single(left), automaton.Epsilon, final)
	n.AddTransition(single(right), automaton.Epsilon, final)
	n.Final.Add(final)
	return n
}

// repeat builds the star, plus and optional fragments. skip adds the
// initial --ε--> final edge (zero occurrences), loop the body final --ε-->
// body initial edge (more than one occurrence).
func repeat(body *automaton.NFA[int], skip, loop bool) *automaton.NFA[int] {
	inner := automaton.RemapNFA(body, shift(1))
	final := inner.States.Len() + 1

	n := combine(0, inner)
	n.AddTransition(0, automaton.Epsilon, inner.Initial)
	if skip {
		n.AddTransition(0, automaton.Epsilon, final)
	}
	for f := range inner.Final {
		if loop {
			n.AddTransition(f, automaton.Epsilon, inner.Initial)
		}
		n.AddTransition(f, automaton.Epsilon, final)
	}
	n.Final.Add(final)
	return n
}

func (s Star) Thompson() *automaton.NFA[int]  { return repeat(s.Expr.Thompson(), true, true) }
func (p Plus) Thompson() *automaton.NFA[int]  { return repeat(p.Expr.Thompson(), false, true) }
func (q Qmark) Thompson() *automaton.NFA[int] { return repeat(q.Expr.Thompson(), true, false) }
