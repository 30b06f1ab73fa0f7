/*
Command re2nfa compiles a regular expression into an NFA table.

    re2nfa [--dot nfa.dot] [--trace Debug] <output_file> <regex>

The NFA is built by Thompson's construction. Its states are named S0, S1, …
in breadth-first order, with S0 being the start state.

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
	"github.com/npillmayer/rexa/fsm/table"
	"github.com/npillmayer/rexa/fsm/thompson"
	"github.com/npillmayer/rexa/internal/cli"
	"github.com/npillmayer/rexa/regex"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func main() {
	cli.Execute(newRootCmd())
}

func newRootCmd() *cobra.Command {
	var dotFile string

	cmd := &cobra.Command{
		Use:   "re2nfa <output_file> <regex>",
		Short: "Compile a regular expression into an NFA table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, expr := args[0], args[1]
			tree, err := regex.Parse(expr)
			if err != nil {
				return err
			}
			nfa := table.FromNFA(thompson.Compile(tree))
			if err := cli.WriteFile(out, func(w io.Writer) error {
				return table.Write(w, nfa)
			}); err != nil {
				return err
			}
			if dotFile != "" {
				if err := cli.WriteFile(dotFile, func(w io.Writer) error {
					return dot.Export(w, nfa)
				}); err != nil {
					return err
				}
			}
			pterm.Info.Println(fmt.Sprintf("NFA with %d states written to %s", len(nfa.States), out))
			return nil
		},
	}

	cmd.Flags().StringVar(&dotFile, "dot", "", "additionally write the NFA in Graphviz DOT format")
	cli.AddTraceFlag(cmd)

	return cmd
}
