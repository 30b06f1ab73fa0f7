/*
Package thompson compiles regular expression syntax trees to NFAs.

Compilation follows Thompson's construction: every sub-tree is compiled to a
fragment with exactly one start state and one accept state, and fragments are
composed by epsilon transitions. The accept state of a fragment has no outgoing
transitions until the fragment becomes part of a larger one.

    nfa := thompson.Compile(regex.MustParse("a(b|c)*"))

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package thompson

import (
	"fmt"

	"github.com/npillmayer/rexa/fsm"
	"github.com/npillmayer/rexa/regex"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rexa.fsm'.
func tracer() tracing.Trace {
	return tracing.Select("rexa.fsm")
}

// Fragment is the result of compiling a sub-tree: a pair of start state and
// accept state within the builder's graph.
type Fragment struct {
	Start, Accept fsm.Handle
}

// Builder compiles syntax trees into fragments within a single graph.
type Builder struct {
	g *fsm.Graph
}

// NewBuilder creates a builder with an empty graph.
func NewBuilder() *Builder {
	return &Builder{g: fsm.NewGraph()}
}

// Graph returns the graph fragments are compiled into.
func (b *Builder) Graph() *fsm.Graph {
	return b.g
}

// Fragment compiles a syntax tree into a new fragment.
func (b *Builder) Fragment(node regex.Node) Fragment {
	var f Fragment
	switch n := node.(type) {
	case *regex.Literal: // s -c-> a
		f = Fragment{Start: b.g.NewState(), Accept: b.g.NewState()}
		b.g.AddEdge(f.Start, n.Sym, f.Accept)
	case *regex.Concat: // X.accept -ε-> Y.start
		x, y := b.Fragment(n.Left), b.Fragment(n.Right)
		b.g.AddEpsilon(x.Accept, y.Start)
		f = Fragment{Start: x.Start, Accept: y.Accept}
	case *regex.Alternation:
		x, y := b.Fragment(n.Left), b.Fragment(n.Right)
		f = Fragment{Start: b.g.NewState(), Accept: b.g.NewState()}
		b.g.AddEpsilon(f.Start, x.Start)
		b.g.AddEpsilon(f.Start, y.Start)
		b.g.AddEpsilon(x.Accept, f.Accept)
		b.g.AddEpsilon(y.Accept, f.Accept)
	case *regex.Star:
		x := b.Fragment(n.Child)
		f = Fragment{Start: b.g.NewState(), Accept: b.g.NewState()}
		b.g.AddEpsilon(f.Start, x.Start)
		b.g.AddEpsilon(f.Start, f.Accept) // zero repetitions
		b.g.AddEpsilon(x.Accept, x.Start) // back-edge
		b.g.AddEpsilon(x.Accept, f.Accept)
	case *regex.Plus:
		x := b.Fragment(n.Child)
		f = Fragment{Start: b.g.NewState(), Accept: b.g.NewState()}
		b.g.AddEpsilon(f.Start, x.Start)
		b.g.AddEpsilon(x.Accept, x.Start) // back-edge
		b.g.AddEpsilon(x.Accept, f.Accept)
	default:
		panic(fmt.Sprintf("thompson: unknown node type %T", node))
	}
	tracer().Debugf("fragment %s = (%d, %d)", node, f.Start, f.Accept)
	return f
}

// Compile compiles a syntax tree to an NFA. The NFA's graph is frozen and
// contains exactly one accepting state.
func Compile(node regex.Node) *fsm.NFA {
	b := NewBuilder()
	f := b.Fragment(node)
	b.g.SetAccept(f.Accept, true)
	b.g.Freeze()
	b.g.Dump()
	tracer().Infof("compiled %s to NFA of %d states", node, b.g.Size())
	return &fsm.NFA{Graph: b.g, Start: f.Start}
}
