package table

import (
	"errors"
	"fmt"
)

// ErrEmptyAutomaton is returned for automata which declare no states.
var ErrEmptyAutomaton = errors.New("automaton declares no states")

// FormatError reports malformed tabular input: rows with a wrong number of
// fields, invalid accept markers, invalid state names or input symbols.
type FormatError struct {
	Line int // 1-based line of input, 0 if not read from text
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("format error in line %d: %s", e.Line, e.Msg)
	}
	return "format error: " + e.Msg
}

// ReferenceError reports a transition naming a state which is not declared in
// the header rows.
type ReferenceError struct {
	Line   int    // 1-based line of input, 0 if not read from text
	State  string // state of the cell containing the reference
	Target string // undeclared state name
}

func (e *ReferenceError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("reference error in line %d: transition of state %q to undeclared state %q",
			e.Line, e.State, e.Target)
	}
	return fmt.Sprintf("reference error: transition of state %q to undeclared state %q", e.State, e.Target)
}

func formatError(line int, format string, args ...interface{}) *FormatError {
	return &FormatError{Line: line, Msg: fmt.Sprintf(format, args...)}
}
