package fsm

import (
	"fmt"

	"github.com/yourbasic/graph"
)

// Naming is a bijection between the handles of states reachable from a start
// state and their names. Names are S0, S1, … in order of discovery.
type Naming struct {
	names   map[Handle]string
	handles map[string]Handle
	order   []Handle
}

// Index assigns names to every state reachable from start, following symbol
// edges as well as epsilon edges. Traversal is breadth first and stable:
// indexing the same graph twice yields the same names. Unreachable states
// remain unnamed.
func Index(g *Graph, start Handle) *Naming {
	g.at(start)
	reach := graph.New(g.Size()) // reachability graph, ignoring edge labels
	for i := 0; i < g.Size(); i++ {
		h := Handle(i)
		for _, sym := range g.Symbols(h) {
			for _, t := range g.Targets(h, sym) {
				reach.Add(i, int(t))
			}
		}
		for _, t := range g.EpsilonTargets(h) {
			reach.Add(i, int(t))
		}
	}
	naming := &Naming{
		names:   make(map[Handle]string, g.Size()),
		handles: make(map[string]Handle, g.Size()),
	}
	naming.add(start)
	// BFS calls back once for every newly discovered state, so cycles terminate.
	// Sorting makes neighbours be visited in ascending order.
	graph.BFS(graph.Sort(reach), int(start), func(v, w int, _ int64) {
		naming.add(Handle(w))
	})
	tracer().Debugf("indexed %d of %d states", naming.Len(), g.Size())
	return naming
}

func (n *Naming) add(h Handle) {
	name := fmt.Sprintf("S%d", len(n.order))
	n.names[h] = name
	n.handles[name] = h
	n.order = append(n.order, h)
}

// Name returns the name of state h. The second return value is false for
// states which have not been reached.
func (n *Naming) Name(h Handle) (string, bool) {
	name, ok := n.names[h]
	return name, ok
}

// Handle returns the state named name.
func (n *Naming) Handle(name string) (Handle, bool) {
	h, ok := n.handles[name]
	return h, ok
}

// Order returns the named states in order of discovery, starting with the
// start state.
func (n *Naming) Order() []Handle {
	return n.order
}

// Len returns the number of named states.
func (n *Naming) Len() int {
	return len(n.order)
}
