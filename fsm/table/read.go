package table

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/npillmayer/rexa"
)

const acceptMarker = "F"

// Read reads an automaton table. All validation happens here, before any client
// gets to see the automaton: errors are *FormatError, *ReferenceError or
// ErrEmptyAutomaton, or I/O errors of r.
func Read(r io.Reader) (*Automaton, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read automaton table: %w", err)
	}
	rows, err := splitRows(input)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyAutomaton
	}
	head, names := rows[0], rows[1:]
	if head.fields[0].raw != "" {
		return nil, formatError(head.line, "row of accept markers must start with an empty field")
	}
	if len(head.fields) < 2 {
		return nil, ErrEmptyAutomaton
	}
	if len(names) == 0 {
		return nil, formatError(head.line+1, "missing row of state names")
	}
	if names[0].fields[0].raw != "" {
		return nil, formatError(names[0].line, "row of state names must start with an empty field")
	}
	if declaresNoStates(head, names[0]) {
		return nil, ErrEmptyAutomaton
	}
	a, err := readHeader(head, names[0])
	if err != nil {
		return nil, err
	}
	seen := make(map[rexa.Input]bool)
	for _, r := range rows[2:] {
		in, err := readInput(r)
		if err != nil {
			return nil, err
		}
		if seen[in] {
			return nil, formatError(r.line, "duplicate row for input %q", in)
		}
		seen[in] = true
		if sym, ok := in.Symbol(); ok {
			a.Alphabet = append(a.Alphabet, sym)
		}
		if err := readTransitions(a, in, r); err != nil {
			return nil, err
		}
	}
	tracer().Infof("read automaton of %d states and %d input symbols", len(a.States), len(a.Alphabet))
	return a, nil
}

// A header of ";" and ";" declares a single column without name and accept
// marker, which is how writers render an automaton without states.
func declaresNoStates(head, names row) bool {
	return len(head.fields) == 2 && len(names.fields) == 2 &&
		head.fields[1].raw == "" && names.fields[1].raw == ""
}

func readHeader(head, names row) (*Automaton, error) {
	if len(names.fields) != len(head.fields) {
		return nil, formatError(names.line, "%d state names for %d accept markers",
			len(names.fields)-1, len(head.fields)-1)
	}
	n := len(head.fields) - 1
	states := make([]State, n)
	declared := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		marker, name := head.fields[i+1].raw, names.fields[i+1]
		switch marker {
		case acceptMarker:
			states[i].Accept = true
		case "":
		default:
			return nil, formatError(head.line, "invalid accept marker %q in column %d", marker, i+1)
		}
		if name.raw == "" {
			return nil, formatError(names.line, "missing state name in column %d", i+1)
		}
		if len(name.items) != 1 || name.items[0] != name.raw {
			return nil, formatError(names.line, "invalid state name %q in column %d", name.raw, i+1)
		}
		if declared[name.raw] {
			return nil, formatError(names.line, "duplicate state name %q", name.raw)
		}
		declared[name.raw] = true
		states[i].Name = name.raw
	}
	return New(states, nil), nil
}

func readInput(r row) (rexa.Input, error) {
	label := r.fields[0].raw
	if label == rexa.EpsilonMarker {
		return rexa.Epsilon, nil
	}
	if label == "" {
		return rexa.Input{}, formatError(r.line, "missing input symbol")
	}
	if utf8.RuneCountInString(label) != 1 {
		return rexa.Input{}, formatError(r.line, "input symbol %q is not a single character", label)
	}
	sym, _ := utf8.DecodeRuneInString(label)
	return rexa.On(rexa.Symbol(sym)), nil
}

func readTransitions(a *Automaton, in rexa.Input, r row) error {
	if len(r.fields) != len(a.States)+1 {
		return formatError(r.line, "row for input %q has %d cells, expected %d",
			in, len(r.fields)-1, len(a.States))
	}
	for i, f := range r.fields[1:] {
		from := a.States[i].Name
		for _, to := range f.items {
			if _, ok := a.StateIndex(to); !ok {
				return &ReferenceError{Line: r.line, State: from, Target: to}
			}
			a.AddTarget(from, in, to)
		}
	}
	return nil
}
