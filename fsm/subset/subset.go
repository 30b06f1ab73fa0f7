package subset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/rexa"
	"github.com/npillmayer/rexa/fsm"
	"github.com/npillmayer/rexa/fsm/sparse"
	"github.com/npillmayer/rexa/fsm/table"
)

// ErrNameCollision is returned if two different sets of NFA states would be
// given the same composite name. This cannot happen for NFA tables with
// state names S0, S1, …
var ErrNameCollision = errors.New("composite state name is ambiguous")

// Option configures Determinize.
type Option func(*config)

type config struct {
	deadState string
}

// WithDeadState makes the DFA complete: cells without transition point to an
// extra non-accepting state with the given name, which loops to itself on
// every symbol. The dead state is only added if at least one cell needs it.
func WithDeadState(name string) Option {
	return func(c *config) {
		c.deadState = name
	}
}

// dfaState is a state of the DFA under construction.
type dfaState struct {
	serial  int           // discovery order
	name    string        // composite name
	members *fsm.StateSet // NFA states
	accept  bool
}

// determinizer holds the state of a subset construction.
type determinizer struct {
	nfa      *fsm.NFA
	names    []string        // names of NFA states, by handle
	alphabet []rexa.Symbol   // column order of trans
	registry *treemap.Map    // composite name → *dfaState
	states   []*dfaState     // by serial
	worklist *arraylist.List // DFA states with unexplored transitions
	trans    *sparse.IntMatrix
}

// Determinize converts an automaton into an equivalent DFA. The input is
// checked first and fails with the error types of package table. The DFA's
// alphabet is the alphabet of the input, in the same order.
//
// An input which already is deterministic results in a DFA of the same size
// and the same language; only the state names may change.
func Determinize(a *table.Automaton, opts ...Option) (*table.Automaton, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}
	nfa, err := a.NFA()
	if err != nil {
		return nil, err
	}
	d := &determinizer{
		nfa:      nfa,
		names:    make([]string, len(a.States)),
		alphabet: append([]rexa.Symbol{}, a.Alphabet...),
		registry: treemap.NewWithStringComparator(),
		worklist: arraylist.New(),
	}
	for i, s := range a.States { // handle = column index
		d.names[i] = s.Name
	}
	d.trans = sparse.NewIntMatrix(len(d.alphabet), sparse.DefaultNullValue)
	if err = d.run(); err != nil {
		return nil, err
	}
	dfa, err := d.automaton(cfg.deadState)
	if err != nil {
		return nil, err
	}
	tracer().Infof("subset construction: %d NFA states → %d DFA states", len(a.States), len(dfa.States))
	return dfa, nil
}

// run explores DFA states from the work list until no new state turns up.
func (d *determinizer) run() error {
	tracer().Debugf("=== subset construction ===================================")
	g := d.nfa.Graph
	s0, _, err := d.register(g.EpsilonClosure(fsm.NewStateSet(d.nfa.Start)))
	if err != nil {
		return err
	}
	d.worklist.Add(s0)
	for !d.worklist.Empty() {
		x, _ := d.worklist.Get(0)
		d.worklist.Remove(0)
		s := x.(*dfaState)
		for j, sym := range d.alphabet {
			U := g.EpsilonClosure(g.Move(s.members, sym))
			if U.Empty() {
				continue
			}
			t, isNew, err := d.register(U)
			if err != nil {
				return err
			}
			if isNew {
				d.worklist.Add(t)
			}
			tracer().Debugf("%s -%s-> %s", s.name, sym, t.name)
			d.trans.Set(s.serial, j, int32(t.serial))
		}
	}
	return nil
}

// register finds the DFA state for a set of NFA states, creating it if
// necessary. The second return value is true for new states.
func (d *determinizer) register(U *fsm.StateSet) (*dfaState, bool, error) {
	name := d.compositeName(U)
	if x, found := d.registry.Get(name); found {
		s := x.(*dfaState)
		if !s.members.Equals(U) {
			return nil, false, fmt.Errorf("%w: %q denotes %s and %s",
				ErrNameCollision, name, d.setString(s.members), d.setString(U))
		}
		return s, false, nil
	}
	s := &dfaState{
		serial:  len(d.states),
		name:    name,
		members: U,
		accept:  d.nfa.Graph.ContainsAccept(U),
	}
	d.registry.Put(name, s)
	d.states = append(d.states, s)
	tracer().Debugf("new DFA state %s = %s, accept=%v", name, d.setString(U), s.accept)
	return s, true, nil
}

func (d *determinizer) sortedNames(U *fsm.StateSet) []string {
	names := treeset.NewWithStringComparator()
	for _, h := range U.Handles() {
		names.Add(d.names[h])
	}
	sorted := make([]string, 0, names.Size())
	for _, n := range names.Values() {
		sorted = append(sorted, n.(string))
	}
	return sorted
}

func (d *determinizer) compositeName(U *fsm.StateSet) string {
	return strings.Join(d.sortedNames(U), "")
}

func (d *determinizer) setString(U *fsm.StateSet) string {
	return "{ " + strings.Join(d.sortedNames(U), ", ") + " }"
}

// automaton assembles the output table from the discovered states and the
// transition matrix.
func (d *determinizer) automaton(deadState string) (*table.Automaton, error) {
	states := make([]table.State, len(d.states), len(d.states)+1)
	for _, s := range d.states {
		states[s.serial] = table.State{Name: s.name, Accept: s.accept}
	}
	dfa := table.New(states, d.alphabet)
	for _, s := range d.states {
		from := s.name
		d.trans.EachInRow(s.serial, func(j int, target int32) {
			dfa.AddTarget(from, rexa.On(d.alphabet[j]), d.states[target].name)
		})
	}
	if deadState == "" || d.trans.ValueCount() == len(d.states)*len(d.alphabet) {
		return dfa, nil
	}
	if _, found := d.registry.Get(deadState); found {
		return nil, fmt.Errorf("%w: dead state %q is a DFA state", ErrNameCollision, deadState)
	}
	tracer().Debugf("adding dead state %s", deadState)
	dfa.States = append(dfa.States, table.State{Name: deadState})
	for _, s := range d.states {
		for j, sym := range d.alphabet {
			if d.trans.Value(s.serial, j) == d.trans.NullValue() {
				dfa.AddTarget(s.name, rexa.On(sym), deadState)
			}
		}
	}
	for _, sym := range d.alphabet {
		dfa.AddTarget(deadState, rexa.On(sym), deadState)
	}
	return dfa, nil
}
