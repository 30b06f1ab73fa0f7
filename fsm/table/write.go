package table

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/rexa"
	"golang.org/x/exp/slices"
)

// Write writes an automaton in tabular format. The automaton is checked first;
// symbols which cannot be represented in the format (';', ',', line breaks and
// the epsilon marker) are rejected with a *FormatError.
//
// Targets within a cell are written in sorted order, so the output for a given
// automaton is reproducible.
func Write(w io.Writer, a *Automaton) error {
	if err := a.Check(); err != nil {
		return err
	}
	for _, sym := range a.Alphabet {
		if !representable(sym) {
			return formatError(0, "input symbol %q cannot be written", string(sym))
		}
	}
	for _, s := range a.States {
		if strings.ContainsAny(s.Name, ";,\n\r") {
			return formatError(0, "state name %q cannot be written", s.Name)
		}
	}
	bw := bufio.NewWriter(w)
	for _, s := range a.States {
		bw.WriteByte(';')
		if s.Accept {
			bw.WriteString(acceptMarker)
		}
	}
	bw.WriteByte('\n')
	for _, s := range a.States {
		bw.WriteByte(';')
		bw.WriteString(s.Name)
	}
	bw.WriteByte('\n')
	for _, in := range a.Inputs() {
		bw.WriteString(in.String())
		for _, s := range a.States {
			bw.WriteByte(';')
			targets := append([]string(nil), a.Targets(s.Name, in)...)
			slices.Sort(targets)
			bw.WriteString(strings.Join(targets, ","))
		}
		bw.WriteByte('\n')
	}
	tracer().Debugf("wrote table of %d states", len(a.States))
	return bw.Flush()
}

func representable(sym rexa.Symbol) bool {
	switch sym {
	case ';', ',', '\n', '\r':
		return false
	}
	return string(sym) != rexa.EpsilonMarker
}
