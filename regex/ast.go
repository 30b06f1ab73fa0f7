package regex

import (
	"fmt"

	"github.com/npillmayer/rexa"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Node is a node of a regular expression syntax tree. The set of node types
// is closed: Literal, Concat, Alternation, Star and Plus. Clients switching
// over node types may rely on this.
//
// Nodes are immutable once built and every node is owned by its parent.
type Node interface {
	fmt.Stringer
	regexNode()
}

// Literal matches a single symbol.
type Literal struct {
	Sym rexa.Symbol
}

// Concat matches Left followed by Right.
type Concat struct {
	Left, Right Node
}

// Alternation matches either Left or Right.
type Alternation struct {
	Left, Right Node
}

// Star matches zero or more repetitions of Child.
type Star struct {
	Child Node
}

// Plus matches one or more repetitions of Child.
type Plus struct {
	Child Node
}

func (*Literal) regexNode()     {}
func (*Concat) regexNode()      {}
func (*Alternation) regexNode() {}
func (*Star) regexNode()        {}
func (*Plus) regexNode()        {}

// String representations are s-expressions, e.g. (or a (cat b c)).

func (n *Literal) String() string {
	return string(n.Sym)
}

func (n *Concat) String() string {
	return fmt.Sprintf("(cat %s %s)", n.Left, n.Right)
}

func (n *Alternation) String() string {
	return fmt.Sprintf("(or %s %s)", n.Left, n.Right)
}

func (n *Star) String() string {
	return fmt.Sprintf("(star %s)", n.Child)
}

func (n *Plus) String() string {
	return fmt.Sprintf("(plus %s)", n.Child)
}

// Children returns the sub-trees of a node, left to right.
func Children(n Node) []Node {
	switch t := n.(type) {
	case *Literal:
		return nil
	case *Concat:
		return []Node{t.Left, t.Right}
	case *Alternation:
		return []Node{t.Left, t.Right}
	case *Star:
		return []Node{t.Child}
	case *Plus:
		return []Node{t.Child}
	}
	panic(fmt.Sprintf("regex: unknown node type %T", n))
}

// Label is a short name for the kind of a node, suitable for tree displays.
func Label(n Node) string {
	switch t := n.(type) {
	case *Literal:
		return fmt.Sprintf("%q", string(t.Sym))
	case *Concat:
		return "cat"
	case *Alternation:
		return "or"
	case *Star:
		return "star"
	case *Plus:
		return "plus"
	}
	panic(fmt.Sprintf("regex: unknown node type %T", n))
}

// Alphabet returns the set of literal symbols of a syntax tree, in ascending order.
func Alphabet(n Node) []rexa.Symbol {
	seen := make(map[rexa.Symbol]struct{})
	var walk func(Node)
	walk = func(n Node) {
		if lit, ok := n.(*Literal); ok {
			seen[lit.Sym] = struct{}{}
			return
		}
		for _, ch := range Children(n) {
			walk(ch)
		}
	}
	walk(n)
	syms := maps.Keys(seen)
	slices.Sort(syms)
	return syms
}
