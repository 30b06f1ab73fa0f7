package fsm

import (
	"fmt"

	"github.com/npillmayer/rexa"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Handle addresses a state within its Graph.
type Handle int

// NoState is a handle which never addresses a state.
const NoState Handle = -1

// state is a node of a Graph. Targets are kept in insertion order.
type state struct {
	accept bool
	edges  map[rexa.Symbol][]Handle // non-epsilon transitions
	eps    []Handle                 // epsilon transitions
}

// Graph is an arena of automaton states. Create one with NewGraph.
//
// A graph may be frozen, after which every attempt to change it panics.
// Thompson's construction freezes an NFA when it is complete.
type Graph struct {
	states []*state
	frozen bool
}

// NFA is a graph together with its start state. Accepting states are
// flagged within the graph.
type NFA struct {
	Graph *Graph
	Start Handle
}

// NewGraph creates an empty graph.
func NewGraph() *Graph {
	return &Graph{states: make([]*state, 0, 16)}
}

// NewState adds a new, non-accepting state without transitions.
func (g *Graph) NewState() Handle {
	g.mustBeMutable()
	g.states = append(g.states, &state{edges: make(map[rexa.Symbol][]Handle)})
	return Handle(len(g.states) - 1)
}

// Size returns the number of states in the arena.
func (g *Graph) Size() int {
	return len(g.states)
}

// Contains checks if h addresses a state of g.
func (g *Graph) Contains(h Handle) bool {
	return h >= 0 && int(h) < len(g.states)
}

// AddEdge adds a transition from -sym-> to. Adding an existing edge a second
// time has no effect.
func (g *Graph) AddEdge(from Handle, sym rexa.Symbol, to Handle) {
	g.mustBeMutable()
	s := g.at(from)
	g.at(to)
	if !slices.Contains(s.edges[sym], to) {
		s.edges[sym] = append(s.edges[sym], to)
	}
}

// AddEpsilon adds an epsilon transition from -ε-> to. Parallel epsilon edges
// between the same pair of states are stored once.
func (g *Graph) AddEpsilon(from, to Handle) {
	g.mustBeMutable()
	s := g.at(from)
	g.at(to)
	if slices.Contains(s.eps, to) {
		tracer().Debugf("dropping duplicate epsilon edge %d -ε-> %d", from, to)
		return
	}
	s.eps = append(s.eps, to)
}

// SetAccept flags a state as accepting (or not).
func (g *Graph) SetAccept(h Handle, accept bool) {
	g.mustBeMutable()
	g.at(h).accept = accept
}

// IsAccept is true if state h is accepting.
func (g *Graph) IsAccept(h Handle) bool {
	return g.at(h).accept
}

// Targets returns the targets of h for symbol sym. Clients must not modify the
// returned slice.
func (g *Graph) Targets(h Handle, sym rexa.Symbol) []Handle {
	return g.at(h).edges[sym]
}

// EpsilonTargets returns the epsilon targets of h. Clients must not modify the
// returned slice.
func (g *Graph) EpsilonTargets(h Handle) []Handle {
	return g.at(h).eps
}

// Symbols returns the symbols with outgoing transitions of state h, in ascending order.
func (g *Graph) Symbols(h Handle) []rexa.Symbol {
	s := g.at(h)
	syms := make([]rexa.Symbol, 0, len(s.edges))
	for sym, targets := range s.edges {
		if len(targets) > 0 {
			syms = append(syms, sym)
		}
	}
	slices.Sort(syms)
	return syms
}

// OutDegree counts all outgoing transitions of h, epsilon transitions included.
func (g *Graph) OutDegree(h Handle) int {
	s := g.at(h)
	n := len(s.eps)
	for _, targets := range s.edges {
		n += len(targets)
	}
	return n
}

// Alphabet returns all symbols used by any transition of the graph, in ascending order.
func (g *Graph) Alphabet() []rexa.Symbol {
	seen := make(map[rexa.Symbol]struct{})
	for _, s := range g.states {
		for sym, targets := range s.edges {
			if len(targets) > 0 {
				seen[sym] = struct{}{}
			}
		}
	}
	syms := maps.Keys(seen)
	slices.Sort(syms)
	return syms
}

// Freeze makes a graph immutable.
func (g *Graph) Freeze() {
	g.frozen = true
}

// IsFrozen is true if g has been frozen.
func (g *Graph) IsFrozen() bool {
	return g.frozen
}

func (g *Graph) at(h Handle) *state {
	if !g.Contains(h) {
		panic(fmt.Sprintf("fsm: handle %d does not address a state (graph size %d)", h, len(g.states)))
	}
	return g.states[h]
}

func (g *Graph) mustBeMutable() {
	if g.frozen {
		panic("fsm: attempt to modify a frozen graph")
	}
}

// Dump is a debugging helper
func (g *Graph) Dump() {
	tracer().Debugf("--- graph of %d states ---------", len(g.states))
	for i, s := range g.states {
		acc := ""
		if s.accept {
			acc = " (accept)"
		}
		tracer().Debugf("[%3d]%s", i, acc)
		for _, sym := range g.Symbols(Handle(i)) {
			tracer().Debugf("      -%s-> %v", sym, s.edges[sym])
		}
		if len(s.eps) > 0 {
			tracer().Debugf("      -%s-> %v", rexa.EpsilonMarker, s.eps)
		}
	}
	tracer().Debugf("--------------------------------")
}
