package fsm

import (
	"bytes"
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
	"github.com/npillmayer/rexa"
)

// === State Sets ============================================================

// StateSet is a set of state handles. Iteration order is ascending by handle.
type StateSet struct {
	handles *treeset.Set
}

// We need this for the set of states. It sorts handles numerically.
func handleComparator(h1, h2 interface{}) int {
	return utils.IntComparator(int(h1.(Handle)), int(h2.(Handle)))
}

// NewStateSet creates a set containing the given handles.
func NewStateSet(hs ...Handle) *StateSet {
	S := &StateSet{handles: treeset.NewWith(handleComparator)}
	for _, h := range hs {
		S.handles.Add(h)
	}
	return S
}

// Add inserts handles into the set.
func (S *StateSet) Add(hs ...Handle) {
	for _, h := range hs {
		S.handles.Add(h)
	}
}

// Contains is true if h is a member of S.
func (S *StateSet) Contains(h Handle) bool {
	return S.handles.Contains(h)
}

// Size returns the number of members.
func (S *StateSet) Size() int {
	return S.handles.Size()
}

// Empty is true for sets without members.
func (S *StateSet) Empty() bool {
	return S.handles.Empty()
}

// Handles returns the members of S in ascending order.
func (S *StateSet) Handles() []Handle {
	vals := S.handles.Values()
	hs := make([]Handle, len(vals))
	for i, v := range vals {
		hs[i] = v.(Handle)
	}
	return hs
}

// Equals is true if S and other have the same members.
func (S *StateSet) Equals(other *StateSet) bool {
	if S.Size() != other.Size() {
		return false
	}
	it := S.handles.Iterator()
	for it.Next() {
		if !other.handles.Contains(it.Value()) {
			return false
		}
	}
	return true
}

// Copy returns a set with the same members as S.
func (S *StateSet) Copy() *StateSet {
	return NewStateSet(S.Handles()...)
}

func (S *StateSet) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, h := range S.Handles() {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(fmt.Sprintf(" %d", h))
	}
	b.WriteString(" }")
	return b.String()
}

// === Closure and Move Operations ===========================================

// EpsilonClosure computes the closure of a set of states under epsilon
// transitions. The argument is not modified.
//
// The closure is computed breadth first; every state is enqueued at most once.
func (g *Graph) EpsilonClosure(S *StateSet) *StateSet {
	C := S.Copy() // add start states to closure
	queue := linkedlistqueue.New()
	for _, h := range S.Handles() {
		queue.Enqueue(h)
	}
	for !queue.Empty() {
		x, _ := queue.Dequeue()
		h := x.(Handle)
		for _, t := range g.EpsilonTargets(h) {
			if !C.Contains(t) {
				C.Add(t)
				queue.Enqueue(t)
			}
		}
	}
	tracer().Debugf("closure(%s) = %s", S, C)
	return C
}

// Move returns the union of all sym-targets of the states in S.
// Epsilon transitions are not followed.
func (g *Graph) Move(S *StateSet, sym rexa.Symbol) *StateSet {
	T := NewStateSet()
	for _, h := range S.Handles() {
		T.Add(g.Targets(h, sym)...)
	}
	return T
}

// ContainsAccept is true if at least one member of S is an accepting state.
func (g *Graph) ContainsAccept(S *StateSet) bool {
	for _, h := range S.Handles() {
		if g.IsAccept(h) {
			return true
		}
	}
	return false
}
