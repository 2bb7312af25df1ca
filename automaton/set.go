// Package automaton implements finite automata over rune alphabets:
// deterministic and nondeterministic transition tables, their simulation,
// state relabeling and NFA to DFA subset construction.
//
// Automata are generic over the state type. Any comparable Go type can be
// used as a state, including the *Subset values produced by subset
// construction, which lets construction stages pick the representation
// that suits them without the algorithms caring.
package automaton

import (
	"slices"
	"strconv"
)

// Symbol is a single input character.
type Symbol = rune

// Epsilon is the reserved symbol labeling transitions that consume no input.
// It never appears in a DFA alphabet.
const Epsilon Symbol = -1

// Set is an unordered set of comparable values.
type Set[T comparable] map[T]struct{}

// NewSet creates a set holding the given items.
func NewSet[T comparable](items ...T) Set[T] {
	s := make(Set[T], len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

// Add inserts item into the set.
func (s Set[T]) Add(item T) {
	s[item] = struct{}{}
}

// AddAll inserts every element of other into s.
func (s Set[T]) AddAll(other Set[T]) {
	for item := range other {
		s[item] = struct{}{}
	}
}

// Contains reports whether item is in the set.
func (s Set[T]) Contains(item T) bool {
	_, ok := s[item]
	return ok
}

// Len returns the number of elements.
func (s Set[T]) Len() int {
	return len(s)
}

// Union returns a new set with the elements of both s and other.
func (s Set[T]) Union(other Set[T]) Set[T] {
	out := make(Set[T], len(s)+len(other))
	out.AddAll(s)
	out.AddAll(other)
	return out
}

// Clone returns a shallow copy of the set.
func (s Set[T]) Clone() Set[T] {
	out := make(Set[T], len(s))
	out.AddAll(s)
	return out
}

// Equal reports whether both sets hold the same elements.
func (s Set[T]) Equal(other Set[T]) bool {
	if len(s) != len(other) {
		return false
	}
	for item := range s {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

// Items returns the elements in unspecified order.
func (s Set[T]) Items() []T {
	out := make([]T, 0, len(s))
	for item := range s {
		out = append(out, item)
	}
	return out
}

// SortedSymbols returns the symbols of s in ascending order.
func SortedSymbols(s Set[Symbol]) []Symbol {
	out := s.Items()
	slices.Sort(out)
	return out
}

// FormatSymbol renders a symbol for diagnostics: a quoted rune, or ε for
// Epsilon.
func FormatSymbol(sym Symbol) string {
	if sym == Epsilon {
		return "ε"
	}
	return strconv.QuoteRune(sym)
}
