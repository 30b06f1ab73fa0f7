package table

import (
	"sort"

	"github.com/npillmayer/rexa"
	"github.com/npillmayer/rexa/fsm"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// State is a column of an automaton table.
type State struct {
	Name   string
	Accept bool
}

// cell addresses the targets of a (state, input) pair.
type cell struct {
	state string
	in    rexa.Input
}

// Automaton is the tabular representation of an NFA or DFA.
// States are ordered, the first state is the start state. The alphabet is
// ordered as well and never contains epsilon; epsilon transitions are kept
// in a separate row.
type Automaton struct {
	States   []State
	Alphabet []rexa.Symbol
	trans    map[cell][]string
}

// New creates an automaton with the given states and alphabet, without
// transitions.
func New(states []State, alphabet []rexa.Symbol) *Automaton {
	return &Automaton{
		States:   states,
		Alphabet: alphabet,
		trans:    make(map[cell][]string),
	}
}

// Start returns the name of the start state, or "" for an empty automaton.
func (a *Automaton) Start() string {
	if len(a.States) == 0 {
		return ""
	}
	return a.States[0].Name
}

// StateIndex returns the column of state name.
func (a *Automaton) StateIndex(name string) (int, bool) {
	for i, s := range a.States {
		if s.Name == name {
			return i, true
		}
	}
	return -1, false
}

// Targets returns the target names of a (state, input) pair. Clients must not
// modify the returned slice.
func (a *Automaton) Targets(state string, in rexa.Input) []string {
	return a.trans[cell{state: state, in: in}]
}

// AddTarget adds a transition. Symbols not yet in the alphabet are appended to
// it. Adding an existing transition has no effect. AddTarget does not check if
// the states are declared; see Check.
func (a *Automaton) AddTarget(state string, in rexa.Input, target string) {
	if a.trans == nil {
		a.trans = make(map[cell][]string)
	}
	if sym, ok := in.Symbol(); ok && !slices.Contains(a.Alphabet, sym) {
		a.Alphabet = append(a.Alphabet, sym)
	}
	c := cell{state: state, in: in}
	if !slices.Contains(a.trans[c], target) {
		a.trans[c] = append(a.trans[c], target)
	}
}

// HasEpsilon is true if the automaton has at least one epsilon transition.
func (a *Automaton) HasEpsilon() bool {
	for c, targets := range a.trans {
		if c.in.IsEpsilon() && len(targets) > 0 {
			return true
		}
	}
	return false
}

// Inputs returns the row labels of the table: the alphabet in order, followed
// by epsilon if the automaton has epsilon transitions.
func (a *Automaton) Inputs() []rexa.Input {
	ins := make([]rexa.Input, 0, len(a.Alphabet)+1)
	for _, sym := range a.Alphabet {
		ins = append(ins, rexa.On(sym))
	}
	if a.HasEpsilon() {
		ins = append(ins, rexa.Epsilon)
	}
	return ins
}

// IsDeterministic is true if the automaton has no epsilon transitions and at
// most one target per cell.
func (a *Automaton) IsDeterministic() bool {
	for c, targets := range a.trans {
		if c.in.IsEpsilon() && len(targets) > 0 || len(targets) > 1 {
			return false
		}
	}
	return true
}

// TransitionCount returns the number of (state, input, target) triples.
func (a *Automaton) TransitionCount() int {
	n := 0
	for _, targets := range a.trans {
		n += len(targets)
	}
	return n
}

// Check validates an automaton which has not been read from text, e.g. one
// built by a client. It reports the same errors as Read.
func (a *Automaton) Check() error {
	if len(a.States) == 0 {
		return ErrEmptyAutomaton
	}
	declared := make(map[string]bool, len(a.States))
	for _, s := range a.States {
		if s.Name == "" {
			return formatError(0, "empty state name")
		}
		if declared[s.Name] {
			return formatError(0, "duplicate state name %q", s.Name)
		}
		declared[s.Name] = true
	}
	syms := make(map[rexa.Symbol]bool, len(a.Alphabet))
	for _, sym := range a.Alphabet {
		if syms[sym] {
			return formatError(0, "duplicate input symbol %q", string(sym))
		}
		syms[sym] = true
	}
	for _, c := range a.sortedCells() {
		if !declared[c.state] {
			return formatError(0, "transitions for undeclared state %q", c.state)
		}
		if sym, ok := c.in.Symbol(); ok && !syms[sym] {
			return formatError(0, "transition on undeclared symbol %q", string(sym))
		}
		for _, t := range a.trans[c] {
			if !declared[t] {
				return &ReferenceError{State: c.state, Target: t}
			}
		}
	}
	return nil
}

// sortedCells returns the cells with transitions in a deterministic order, for
// reproducible error reports.
func (a *Automaton) sortedCells() []cell {
	cells := make([]cell, 0, len(a.trans))
	for c := range a.trans {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].state != cells[j].state {
			return cells[i].state < cells[j].state
		}
		return cells[i].in.String() < cells[j].in.String()
	})
	return cells
}

// === Conversion from and to state graphs ===================================

// FromNFA creates the table for an NFA. States are named by fsm.Index, so the
// start state becomes S0 and unreachable states are omitted. The alphabet is
// sorted.
func FromNFA(nfa *fsm.NFA) *Automaton {
	g := nfa.Graph
	naming := fsm.Index(g, nfa.Start)
	states := make([]State, 0, naming.Len())
	seen := make(map[rexa.Symbol]bool)
	for _, h := range naming.Order() {
		name, _ := naming.Name(h)
		states = append(states, State{Name: name, Accept: g.IsAccept(h)})
		for _, sym := range g.Symbols(h) {
			seen[sym] = true
		}
	}
	alphabet := maps.Keys(seen)
	slices.Sort(alphabet)
	a := New(states, alphabet)
	for _, h := range naming.Order() {
		from, _ := naming.Name(h)
		for _, sym := range g.Symbols(h) {
			for _, t := range g.Targets(h, sym) {
				to, _ := naming.Name(t)
				a.AddTarget(from, rexa.On(sym), to)
			}
		}
		for _, t := range g.EpsilonTargets(h) {
			to, _ := naming.Name(t)
			a.AddTarget(from, rexa.Epsilon, to)
		}
	}
	tracer().Debugf("table for NFA: %d states, %d symbols", len(a.States), len(a.Alphabet))
	return a
}

// NFA converts a table into a frozen state graph. The handle of every state
// equals its column index; the start state has handle 0.
func (a *Automaton) NFA() (*fsm.NFA, error) {
	if err := a.Check(); err != nil {
		return nil, err
	}
	g := fsm.NewGraph()
	index := make(map[string]fsm.Handle, len(a.States))
	for _, s := range a.States {
		h := g.NewState()
		g.SetAccept(h, s.Accept)
		index[s.Name] = h
	}
	for _, c := range a.sortedCells() {
		from := index[c.state]
		for _, t := range a.trans[c] {
			if sym, ok := c.in.Symbol(); ok {
				g.AddEdge(from, sym, index[t])
			} else {
				g.AddEpsilon(from, index[t])
			}
		}
	}
	g.Freeze()
	return &fsm.NFA{Graph: g, Start: 0}, nil
}
