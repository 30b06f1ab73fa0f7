package rexa

import "fmt"

// --- Input symbols ---------------------------------------------------------

// Symbol is an atomic input character of an automaton's alphabet.
// Epsilon is never a Symbol; see Input.
type Symbol rune

func (s Symbol) String() string {
	return string(s)
}

// EpsilonMarker is the reserved label of the epsilon row in the tabular
// automaton format. It is only meaningful at the text boundary.
const EpsilonMarker = "ε"

// Input labels a transition: either a symbol of the alphabet or epsilon.
//
//    rexa.On('a')    // transition on symbol 'a'
//    rexa.Epsilon    // spontaneous transition, consumes no input
//
type Input struct {
	sym     Symbol
	epsilon bool
}

// Epsilon is the input label for transitions which consume no input.
var Epsilon = Input{epsilon: true}

// On creates an input label for symbol sym.
func On(sym Symbol) Input {
	return Input{sym: sym}
}

// IsEpsilon is true for the epsilon label.
func (in Input) IsEpsilon() bool {
	return in.epsilon
}

// Symbol returns the symbol of an input label. The second return value is false
// for epsilon.
func (in Input) Symbol() (Symbol, bool) {
	if in.epsilon {
		return 0, false
	}
	return in.sym, true
}

func (in Input) String() string {
	if in.epsilon {
		return EpsilonMarker
	}
	return in.sym.String()
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input characters. It is used
// to locate errors within a regular expression. A span denotes a start position
// and the position just behind the end, counted in runes.
type Span [2]int // (x…y)

// From returns the start value of a span.
func (s Span) From() int {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() int {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() int {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}
