package table

import (
	"fmt"

	"github.com/cnf/structhash"
	"golang.org/x/exp/slices"
)

type fingerprint struct {
	States []State
	Rows   []fingerprintRow
}

type fingerprintRow struct {
	Input string
	Cells [][]string
}

// Digest returns a structural fingerprint of an automaton. Automata with equal
// states, inputs and transitions have equal digests, independent of the order
// transitions have been added in.
func (a *Automaton) Digest() (string, error) {
	fp := fingerprint{States: a.States}
	for _, in := range a.Inputs() {
		r := fingerprintRow{Input: in.String(), Cells: make([][]string, len(a.States))}
		for i, s := range a.States {
			targets := append([]string{}, a.Targets(s.Name, in)...)
			slices.Sort(targets)
			r.Cells[i] = targets
		}
		fp.Rows = append(fp.Rows, r)
	}
	h, err := structhash.Hash(fp, 1)
	if err != nil {
		return "", fmt.Errorf("cannot compute digest of automaton: %w", err)
	}
	return h, nil
}
