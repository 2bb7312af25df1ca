package automaton

import "github.com/bits-and-blooms/bitset"

// NFA is a nondeterministic finite automaton. Delta maps a state and a
// symbol, possibly Epsilon, to the set of possible next states.
type NFA[S comparable] struct {
	Alphabet Set[Symbol]
	States   Set[S]
	Initial  S
	Delta    map[Transition[S]]Set[S]
	Final    Set[S]
}

// NewNFA creates an NFA with no transitions and the given initial state.
func NewNFA[S comparable](initial S) *NFA[S] {
	return &NFA[S]{
		Alphabet: NewSet[Symbol](),
		States:   NewSet(initial),
		Initial:  initial,
		Delta:    make(map[Transition[S]]Set[S]),
		Final:    NewSet[S](),
	}
}

// AddTransition adds to to the destinations of (from, sym). Existing
// destinations are kept. Epsilon is never added to the alphabet.
func (n *NFA[S]) AddTransition(from S, sym Symbol, to S) {
	n.States.Add(from)
	n.States.Add(to)
	if sym != Epsilon {
		n.Alphabet.Add(sym)
	}
	key := Transition[S]{From: from, Symbol: sym}
	dest, ok := n.Delta[key]
	if !ok {
		dest = NewSet[S]()
		n.Delta[key] = dest
	}
	dest.Add(to)
}

// Targets returns the destinations of (state, sym). The result must not be
// modified.
func (n *NFA[S]) Targets(state S, sym Symbol) Set[S] {
	return n.Delta[Transition[S]{From: state, Symbol: sym}]
}

// EpsilonClosure returns every state reachable from state through epsilon
// transitions only, state included. Epsilon cycles are fine: each state is
// pushed at most once.
func (n *NFA[S]) EpsilonClosure(state S) Set[S] {
	closure := NewSet(state)
	stack := []S{state}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for next := range n.Targets(current, Epsilon) {
			if closure.Contains(next) {
				continue
			}
			closure.Add(next)
			stack = append(stack, next)
		}
	}
	return closure
}

// Accept reports whether the automaton accepts word under the usual
// nondeterministic rule: some path labeled by word, with any number of
// epsilon moves in between, ends in a final state.
func (n *NFA[S]) Accept(word string) bool {
	closures := newClosureCache(n)
	current := closures.of(n.Initial)
	for _, sym := range word {
		next := closures.move(current, sym)
		if next.None() {
			return false
		}
		current = next
	}
	return closures.anyFinal(current)
}

// RemapNFA returns a structurally identical automaton whose states are the
// images of n's states under f. Destination sets that land on the same key
// are merged element by element.
//
// As with RemapDFA, f must be injective on n's states.
func RemapNFA[S, T comparable](n *NFA[S], f func(S) T) *NFA[T] {
	out := &NFA[T]{
		Alphabet: n.Alphabet.Clone(),
		States:   make(Set[T], len(n.States)),
		Initial:  f(n.Initial),
		Delta:    make(map[Transition[T]]Set[T], len(n.Delta)),
		Final:    make(Set[T], len(n.Final)),
	}
	for state := range n.States {
		out.States.Add(f(state))
	}
	for state := range n.Final {
		out.Final.Add(f(state))
	}
	for key, targets := range n.Delta {
		newKey := Transition[T]{From: f(key.From), Symbol: key.Symbol}
		dest, ok := out.Delta[newKey]
		if !ok {
			dest = make(Set[T], len(targets))
			out.Delta[newKey] = dest
		}
		for target := range targets {
			dest.Add(f(target))
		}
	}
	return out
}

// closureCache indexes NFA states densely and memoizes their epsilon
// closures as bit sets. It lives for a single call.
type closureCache[S comparable] struct {
	nfa      *NFA[S]
	ids      map[S]uint
	states   []S
	closures map[uint]*bitset.BitSet
}

func newClosureCache[S comparable](n *NFA[S]) *closureCache[S] {
	return &closureCache[S]{
		nfa:      n,
		ids:      make(map[S]uint, len(n.States)),
		closures: make(map[uint]*bitset.BitSet),
	}
}

// id returns the dense index of state, assigning one on first sight.
func (c *closureCache[S]) id(state S) uint {
	if id, ok := c.ids[state]; ok {
		return id
	}
	id := uint(len(c.states))
	c.ids[state] = id
	c.states = append(c.states, state)
	return id
}

// of returns the epsilon closure of state. The result is shared and must
// not be modified.
func (c *closureCache[S]) of(state S) *bitset.BitSet {
	id := c.id(state)
	if bits, ok := c.closures[id]; ok {
		return bits
	}
	bits := bitset.New(uint(len(c.states)))
	for member := range c.nfa.EpsilonClosure(state) {
		bits.Set(c.id(member))
	}
	c.closures[id] = bits
	return bits
}

// move returns the union of the closures of every state reachable from a
// member of set on sym.
func (c *closureCache[S]) move(set *bitset.BitSet, sym Symbol) *bitset.BitSet {
	next := bitset.New(uint(len(c.states)))
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		for target := range c.nfa.Targets(c.states[i], sym) {
			next.InPlaceUnion(c.of(target))
		}
	}
	return next
}

// members returns the states of set in index order.
func (c *closureCache[S]) members(set *bitset.BitSet) []S {
	out := make([]S, 0, set.Count())
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		out = append(out, c.states[i])
	}
	return out
}

func (c *closureCache[S]) anyFinal(set *bitset.BitSet) bool {
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		if c.nfa.Final.Contains(c.states[i]) {
			return true
		}
	}
	return false
}
