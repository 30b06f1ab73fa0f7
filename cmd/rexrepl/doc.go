/*
Command rexrepl provides an interactive sandbox for regular expressions.

Every line entered is parsed as a regular expression. rexrepl prints its
syntax tree, the NFA built by Thompson's construction, and the DFA resulting
from the subset construction. Lines starting with ':' are commands:

    :dot <file>    write the last DFA in Graphviz DOT format
    :nfa <file>    write the last NFA as a table
    :dfa <file>    write the last DFA as a table
    :help          list commands
    :quit          leave rexrepl (as does <ctrl>D)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rexa.cmd'
func tracer() tracing.Trace {
	return tracing.Select("rexa.cmd")
}
