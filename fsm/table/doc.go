/*
Package table reads and writes automata in a tabular text format.

The format is shared by NFAs and DFAs. Fields are separated by ';'. The first
two rows are header rows, one column per state:

    ;;;F              ← accept markers ('F' or empty)
    ;S0;S1;S2         ← state names, the first column is the start state
    a;S1;;            ← one row per input symbol; a cell lists the targets
    b;;S2;            ←   of a (state, symbol) pair, separated by ','
    ε;S1,S2;;         ← NFAs only: the epsilon row

A DFA has no epsilon row and at most one target per cell; DFA state names may be
composite names of NFA state sets (see package subset). An empty cell means
"no transition".

Reading validates eagerly: malformed rows fail with *FormatError, transitions
to undeclared states fail with *ReferenceError, and an automaton without states
fails with ErrEmptyAutomaton.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package table

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rexa.table'.
func tracer() tracing.Trace {
	return tracing.Select("rexa.table")
}
