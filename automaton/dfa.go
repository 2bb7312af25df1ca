package automaton

// Transition is the key of a transition table: a source state and the
// symbol read from it.
type Transition[S comparable] struct {
	From   S
	Symbol Symbol
}

// DFA is a deterministic finite automaton.
//
// Delta is a partial function: a missing (state, symbol) entry means the
// word is rejected, not that the automaton is malformed.
type DFA[S comparable] struct {
	Alphabet Set[Symbol]
	States   Set[S]
	Initial  S
	Delta    map[Transition[S]]S
	Final    Set[S]
}

// NewDFA creates an empty DFA with the given initial state.
func NewDFA[S comparable](initial S) *DFA[S] {
	return &DFA[S]{
		Alphabet: NewSet[Symbol](),
		States:   NewSet(initial),
		Initial:  initial,
		Delta:    make(map[Transition[S]]S),
		Final:    NewSet[S](),
	}
}

// AddTransition records from --sym--> to, replacing any previous target.
func (d *DFA[S]) AddTransition(from S, sym Symbol, to S) {
	d.States.Add(from)
	d.States.Add(to)
	d.Alphabet.Add(sym)
	d.Delta[Transition[S]{From: from, Symbol: sym}] = to
}

// Step returns the state reached from state on sym. The second result is
// false when the table has no entry for the pair.
func (d *DFA[S]) Step(state S, sym Symbol) (S, bool) {
	next, ok := d.Delta[Transition[S]{From: state, Symbol: sym}]
	return next, ok
}

// IsFinal reports whether state is accepting.
func (d *DFA[S]) IsFinal(state S) bool {
	return d.Final.Contains(state)
}

// Accept runs the automaton over word and reports whether it ends in a
// final state. A missing transition rejects immediately.
func (d *DFA[S]) Accept(word string) bool {
	current := d.Initial
	for _, sym := range word {
		next, ok := d.Step(current, sym)
		if !ok {
			return false
		}
		current = next
	}
	return d.IsFinal(current)
}

// SortedAlphabet returns the alphabet in ascending order.
func (d *DFA[S]) SortedAlphabet() []Symbol {
	return SortedSymbols(d.Alphabet)
}

// RemapDFA returns a structurally identical automaton whose states are the
// images of d's states under f.
//
// f must be injective on d's states. Two states mapped to the same label
// merge and silently change the recognized language; this is not checked.
func RemapDFA[S, T comparable](d *DFA[S], f func(S) T) *DFA[T] {
	out := &DFA[T]{
		Alphabet: d.Alphabet.Clone(),
		States:   make(Set[T], len(d.States)),
		Initial:  f(d.Initial),
		Delta:    make(map[Transition[T]]T, len(d.Delta)),
		Final:    make(Set[T], len(d.Final)),
	}
	for state := range d.States {
		out.States.Add(f(state))
	}
	for state := range d.Final {
		out.Final.Add(f(state))
	}
	for key, next := range d.Delta {
		out.Delta[Transition[T]{From: f(key.From), Symbol: key.Symbol}] = f(next)
	}
	return out
}

// Renumber relabels d with dense integers. States reachable from the
// initial state are numbered breadth-first, visiting symbols in ascending
// order, so the initial state is always 0 and equal structures get equal
// numbers. Unreachable states follow in unspecified order.
//
// The returned map gives the number assigned to each original state.
func Renumber[S comparable](d *DFA[S]) (*DFA[int], map[S]int) {
	ids := make(map[S]int, len(d.States))
	alphabet := d.SortedAlphabet()

	queue := []S{d.Initial}
	ids[d.Initial] = 0
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, sym := range alphabet {
			next, ok := d.Step(current, sym)
			if !ok {
				continue
			}
			if _, seen := ids[next]; !seen {
				ids[next] = len(ids)
				queue = append(queue, next)
			}
		}
	}
	for state := range d.States {
		if _, seen := ids[state]; !seen {
			ids[state] = len(ids)
		}
	}

	return RemapDFA(d, func(s S) int { return ids[s] }), ids
}
