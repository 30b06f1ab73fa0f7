/*
Package dot exports automata to the Graphviz DOT format and renders DOT
sources with the Graphviz tools.

Accepting states are filled grey and drawn as double circles, the start state
is marked by an incoming edge from an invisible point. Parallel edges between
two states are merged into a single edge labelled with all of their inputs.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dot

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/rexa/fsm/table"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rexa.dot'.
func tracer() tracing.Trace {
	return tracing.Select("rexa.dot")
}

// Export writes an automaton as a DOT digraph.
func Export(w io.Writer, a *table.Automaton) error {
	if err := a.Check(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	bw.WriteString(`digraph {
graph [rankdir=LR, fontname=Helvetica, fontsize=10];
node [shape=circle, style=filled, fontname=Helvetica, fontsize=10];
edge [fontname=Helvetica, fontsize=10];

start [shape=point, style=invis];
`)
	for i, s := range a.States {
		bw.WriteString(fmt.Sprintf("s%03d [shape=%s, fillcolor=%s, label=\"%s\"]\n",
			i, nodeshape(s), nodecolor(s), escape(s.Name)))
	}
	bw.WriteString("start -> s000\n")
	edges := 0
	for i, s := range a.States {
		labels := make(map[int][]string)
		for _, in := range a.Inputs() {
			for _, t := range a.Targets(s.Name, in) {
				j, _ := a.StateIndex(t)
				labels[j] = append(labels[j], escape(in.String()))
			}
		}
		for j := range a.States { // edges in column order of targets
			if l, ok := labels[j]; ok {
				bw.WriteString(fmt.Sprintf("s%03d -> s%03d [label=\"%s\"]\n", i, j, strings.Join(l, ", ")))
				edges++
			}
		}
	}
	bw.WriteString("}\n")
	tracer().Debugf("DOT export: %d nodes, %d edges", len(a.States), edges)
	return bw.Flush()
}

func nodecolor(s table.State) string {
	if s.Accept {
		return "lightgray"
	}
	return "white"
}

func nodeshape(s table.State) string {
	if s.Accept {
		return "doublecircle"
	}
	return "circle"
}

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func escape(s string) string {
	return dotEscaper.Replace(s)
}
