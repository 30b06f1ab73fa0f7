/*
Command determinize converts an NFA table into a DFA table.

    determinize [--dead-state name] [--dot dfa.dot] <input_file> <output_file>

DFA states are named by concatenating the names of the NFA states they stand
for. By default the DFA is partial; --dead-state adds an explicit sink state
for missing transitions.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"fmt"
	"io"

	"github.com/npillmayer/rexa/fsm/dot"
	"github.com/npillmayer/rexa/fsm/subset"
	"github.com/npillmayer/rexa/fsm/table"
	"github.com/npillmayer/rexa/internal/cli"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func main() {
	cli.Execute(newRootCmd())
}

func newRootCmd() *cobra.Command {
	var deadState string
	var dotFile string

	cmd := &cobra.Command{
		Use:   "determinize <input_file> <output_file>",
		Short: "Convert an NFA table into an equivalent DFA table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]
			nfa, err := cli.ReadAutomaton(in)
			if err != nil {
				return err
			}
			var opts []subset.Option
			if deadState != "" {
				opts = append(opts, subset.WithDeadState(deadState))
			}
			dfa, err := subset.Determinize(nfa, opts...)
			if err != nil {
				return err
			}
			if err := cli.WriteFile(out, func(w io.Writer) error {
				return table.Write(w, dfa)
			}); err != nil {
				return err
			}
			if dotFile != "" {
				if err := cli.WriteFile(dotFile, func(w io.Writer) error {
					return dot.Export(w, dfa)
				}); err != nil {
					return err
				}
			}
			pterm.Info.Println(fmt.Sprintf("DFA with %d states written to %s", len(dfa.States), out))
			return nil
		},
	}

	cmd.Flags().StringVar(&deadState, "dead-state", "", "name of an explicit sink state for missing transitions")
	cmd.Flags().StringVar(&dotFile, "dot", "", "additionally write the DFA in Graphviz DOT format")
	cli.AddTraceFlag(cmd)

	return cmd
}
