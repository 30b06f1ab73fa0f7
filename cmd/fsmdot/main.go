/*
Command fsmdot exports an automaton table to Graphviz.

    fsmdot [--render svg] [--timeout 30s] <input_file> <output_file>

Without --render the output file receives the DOT source. With --render the
DOT source is piped through Graphviz' dot program, which has to finish within
the timeout.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/npillmayer/rexa/fsm/dot"
	"github.com/npillmayer/rexa/internal/cli"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func main() {
	cli.Execute(newRootCmd())
}

func newRootCmd() *cobra.Command {
	var format string
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "fsmdot <input_file> <output_file>",
		Short: "Export an automaton table in Graphviz DOT format",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]
			a, err := cli.ReadAutomaton(in)
			if err != nil {
				return err
			}
			if format == "" {
				return cli.WriteFile(out, func(w io.Writer) error {
					return dot.Export(w, a)
				})
			}
			var src bytes.Buffer
			if err := dot.Export(&src, a); err != nil {
				return err
			}
			r := dot.Renderer{Timeout: timeout}
			if err := r.Render(cmd.Context(), src.Bytes(), format, out); err != nil {
				return err
			}
			pterm.Info.Println(fmt.Sprintf("rendered %s", out))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "render", "", "render with Graphviz to format [png|svg|pdf]")
	cmd.Flags().DurationVar(&timeout, "timeout", dot.DefaultTimeout, "time limit for rendering")
	cli.AddTraceFlag(cmd)

	return cmd
}
