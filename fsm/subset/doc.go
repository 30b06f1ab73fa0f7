/*
Package subset converts NFAs into DFAs by the subset construction.

Every DFA state stands for the epsilon closure of a set of NFA states. Its name
is the concatenation of the names of its members, sorted by name. With the
names written by package table for NFAs (S0, S1, …) the DFA state for
{ S0, S1, S4 } is therefore called "S0S1S4".

States are discovered from a work list, starting with the closure of the NFA's
start state, and emitted in discovery order. The resulting DFA is partial: a
missing cell means there is no transition. Use WithDeadState to get a complete
transition function instead.

    nfa, _ := table.Read(r)
    dfa, err := subset.Determinize(nfa)

Composite names identify DFA states. With arbitrary NFA state names, two
different sets may concatenate to the same name, e.g. { A, B } and { AB }.
Instead of merging such states into one, which would change the language of
the DFA, Determinize fails with ErrNameCollision. Tables written by package
table for NFAs use the names S0, S1, … and never collide.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package subset

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rexa.subset'.
func tracer() tracing.Trace {
	return tracing.Select("rexa.subset")
}
