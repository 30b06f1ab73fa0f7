/*
Package fsm implements state graphs for finite automata.

A Graph is an arena of states. States are addressed by handles, never by
pointers, so repetition operators of regular expressions (which introduce
back-edges) result in ordinary cross-references between handles. Every state
owns a mapping from symbols to target states and a separate list of epsilon
targets. Epsilon is never a symbol of the alphabet.

Epsilon Closure

The epsilon closure of a set of states is the smallest superset which is closed
under epsilon transitions. It is computed as a breadth-first fixed point:

    g := fsm.NewGraph()
    s0, s1, s2 := g.NewState(), g.NewState(), g.NewState()
    g.AddEpsilon(s0, s1)
    g.AddEdge(s1, 'a', s2)
    C := g.EpsilonClosure(fsm.NewStateSet(s0))   // = { s0, s1 }

Closures are idempotent: closing an already closed set returns an equal set.

State Naming

For serialization every state reachable from a start state receives a unique
name. Index traverses the graph breadth-first (following symbol and epsilon
edges) and names states S0, S1, … in order of discovery. S0 is always the
start state.

Sub-packages implement Thompson's construction (thompson), the tabular
automaton format (table), subset construction (subset), sparse transition
matrices (sparse) and export to Graphviz (dot).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package fsm

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rexa.fsm'.
func tracer() tracing.Trace {
	return tracing.Select("rexa.fsm")
}
