package automaton

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// sinkKey never collides with a subsetKey, which always starts with '{'.
const sinkKey = "sink"

// subsetKey renders the backing words of bits in hex, ignoring trailing
// zero words, so equal sets get equal keys whatever their capacity.
func subsetKey(bits *bitset.BitSet) string {
	words := bits.Bytes()
	n := len(words)
	for n > 0 && words[n-1] == 0 {
		n--
	}

	var b strings.Builder
	b.WriteByte('{')
	for i, w := range words[:n] {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(w, 16))
	}
	b.WriteByte('}')
	return b.String()
}

// Subset is a DFA state built by subset construction: a set of NFA states.
//
// Subsets are interned per construction, so within one DFA two subsets are
// the same pointer exactly when they hold the same NFA states. The sink is
// the empty subset used for missing transitions; it is never final.
type Subset[S comparable] struct {
	key     string
	members []S
	set     Set[S]
	sink    bool
}

// Key returns a canonical rendering of the subset, unique within the
// construction that produced it.
func (s *Subset[S]) Key() string { return s.key }

// IsSink reports whether s is the sink state.
func (s *Subset[S]) IsSink() bool { return s.sink }

// Len returns the number of NFA states in the subset.
func (s *Subset[S]) Len() int { return len(s.members) }

// Contains reports whether the NFA state is a member.
func (s *Subset[S]) Contains(state S) bool { return s.set.Contains(state) }

// Members returns the NFA states of the subset.
func (s *Subset[S]) Members() []S {
	out := make([]S, len(s.members))
	copy(out, s.members)
	return out
}

func (s *Subset[S]) String() string {
	if s.sink {
		return sinkKey
	}
	parts := make([]string, len(s.members))
	for i, m := range s.members {
		parts[i] = fmt.Sprint(m)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// SubsetConstruction converts n into an equivalent DFA whose states are
// sets of n's states.
//
// The initial state is the epsilon closure of n's initial state. Every DFA
// state is expanded once, for every alphabet symbol; when no NFA state can
// move on a symbol the transition goes to a shared sink, created on first
// use, that loops on every symbol. The result is therefore total over its
// alphabet. A DFA state is final when it contains a final NFA state.
func (n *NFA[S]) SubsetConstruction() *DFA[*Subset[S]] {
	closures := newClosureCache(n)
	interned := make(map[string]*Subset[S])

	intern := func(bits *bitset.BitSet) (*Subset[S], bool) {
		key := subsetKey(bits)
		if subset, ok := interned[key]; ok {
			return subset, false
		}
		members := closures.members(bits)
		subset := &Subset[S]{key: key, members: members, set: NewSet(members...)}
		interned[key] = subset
		return subset, true
	}

	alphabet := make([]Symbol, 0, len(n.Alphabet))
	for _, sym := range SortedSymbols(n.Alphabet) {
		if sym != Epsilon {
			alphabet = append(alphabet, sym)
		}
	}

	start, _ := intern(closures.of(n.Initial))
	dfa := NewDFA(start)
	for _, sym := range alphabet {
		dfa.Alphabet.Add(sym)
	}

	var sink *Subset[S]
	toSink := func() *Subset[S] {
		if sink == nil {
			sink = &Subset[S]{key: sinkKey, set: NewSet[S](), sink: true}
			dfa.States.Add(sink)
			for _, sym := range alphabet {
				dfa.Delta[Transition[*Subset[S]]{From: sink, Symbol: sym}] = sink
			}
		}
		return sink
	}

	queue := []*Subset[S]{start}
	processed := NewSet[*Subset[S]]()
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if processed.Contains(current) {
			continue
		}
		processed.Add(current)
		dfa.States.Add(current)

		bits := bitset.New(uint(len(closures.states)))
		for _, member := range current.members {
			bits.Set(closures.id(member))
		}

		for _, sym := range alphabet {
			key := Transition[*Subset[S]]{From: current, Symbol: sym}
			next := closures.move(bits, sym)
			if next.None() {
				dfa.Delta[key] = toSink()
				continue
			}
			target, fresh := intern(next)
			dfa.Delta[key] = target
			if fresh {
				queue = append(queue, target)
			}
		}

		for _, member := range current.members {
			if n.Final.Contains(member) {
				dfa.Final.Add(current)
				break
			}
		}
	}
	return dfa
}
