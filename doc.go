/*
Package rexa is a small toolbox to compile regular expressions to finite automata.

Rexa turns a regular expression into a nondeterministic finite automaton
(Thompson's construction) and the NFA into an equivalent deterministic one
(subset construction). Automata are exchanged in a simple tabular text format,
which is shared by all the tools of this module. Package structure is
as follows:

■ regex: Package regex parses regular expressions into abstract syntax trees.

■ fsm: Package fsm implements state graphs, epsilon closures and state naming.
Sub-packages implement Thompson's construction (thompson), the tabular format
(table), subset construction (subset), a sparse matrix for transition tables
(sparse) and export to Graphviz (dot).

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rexa
