package compiler

import (
	"github.com/KromDaniel/lexgen/automaton"
	"github.com/KromDaniel/lexgen/syntax"
	"github.com/bits-and-blooms/bitset"
)

// liveStates returns the states of d from which a final state is reachable.
// States must be numbered densely from zero, as Renumber produces them.
func liveStates(d *automaton.DFA[int]) *bitset.BitSet {
	predecessors := make(map[int][]int, len(d.States))
	for key, next := range d.Delta {
		predecessors[next] = append(predecessors[next], key.From)
	}

	live := bitset.New(uint(len(d.States)))
	stack := make([]int, 0, len(d.Final))
	for state := range d.Final {
		live.Set(uint(state))
		stack = append(stack, state)
	}

	for len(stack) > 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, prev := range predecessors[state] {
			if !live.Test(uint(prev)) {
				live.Set(uint(prev))
				stack = append(stack, prev)
			}
		}
	}
	return live
}

// hasAlternation checks if the AST contains alternation (|).
func hasAlternation(re syntax.Regex) bool {
	return contains(re, func(node syntax.Regex) bool {
		_, ok := node.(syntax.Altern)
		return ok
	})
}

// hasCharClass checks if the AST contains [a-z], [A-Z] or [0-9].
func hasCharClass(re syntax.Regex) bool {
	return contains(re, func(node syntax.Regex) bool {
		switch node.(type) {
		case syntax.LowerCase, syntax.UpperCase, syntax.Digits:
			return true
		}
		return false
	})
}

func hasConcat(re syntax.Regex) bool {
	return contains(re, func(node syntax.Regex) bool {
		_, ok := node.(syntax.Concat)
		return ok
	})
}

func hasEpsilon(re syntax.Regex) bool {
	return contains(re, func(node syntax.Regex) bool {
		_, ok := node.(syntax.Epsilon)
		return ok
	})
}

// hasRepetition checks if the AST contains *, + or ?.
func hasRepetition(re syntax.Regex) bool {
	return contains(re, func(node syntax.Regex) bool {
		switch node.(type) {
		case syntax.Star, syntax.Plus, syntax.Qmark:
			return true
		}
		return false
	})
}

func contains(re syntax.Regex, match func(syntax.Regex) bool) bool {
	found := false
	syntax.Walk(re, func(node syntax.Regex) {
		if match(node) {
			found = true
		}
	})
	return found
}
