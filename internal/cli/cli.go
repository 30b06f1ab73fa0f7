/*
Package cli holds what the command line tools of this module have in common:
trace setup, terminal styling and diagnostics for the error types of the
library packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2026 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/rexa/fsm/subset"
	"github.com/npillmayer/rexa/fsm/table"
	"github.com/npillmayer/rexa/regex"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// tracer traces with key 'rexa.cmd'.
func tracer() tracing.Trace {
	return tracing.Select("rexa.cmd")
}

// TraceKeys are the trace keys of the library packages.
var TraceKeys = []string{"rexa.cmd", "rexa.regex", "rexa.fsm", "rexa.table", "rexa.subset", "rexa.dot"}

// SetupTracing routes tracing to the Go log package and sets the trace level of
// all packages. level is one of Debug, Info or Error.
func SetupTracing(level string) {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	gtrace.SyntaxTracer = gologadapter.New()
	l := tracing.TraceLevelFromString(level)
	for _, key := range TraceKeys {
		tracing.Select(key).SetTraceLevel(l)
	}
	gtrace.SyntaxTracer.SetTraceLevel(l)
	tracer().Debugf("trace level is %s", level)
}

// InitDisplay styles the pterm prefixes. We use pterm for moderately fancy
// output.
func InitDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// AddTraceFlag adds the --trace flag to a command. Tracing is set up before the
// command runs.
func AddTraceFlag(cmd *cobra.Command) {
	var level string
	cmd.PersistentFlags().StringVar(&level, "trace", "Error", "trace level [Debug|Info|Error]")
	cmd.PersistentPreRun = func(*cobra.Command, []string) {
		SetupTracing(level)
	}
}

// Execute runs a command. Errors are printed as diagnostics and terminate the
// program with exit status 1.
func Execute(cmd *cobra.Command) {
	InitDisplay()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		pterm.Error.Println(Diagnose(err))
		os.Exit(1)
	}
}

// Diagnose formats an error for the terminal.
func Diagnose(err error) string {
	var serr *regex.SyntaxError
	var ferr *table.FormatError
	var rerr *table.ReferenceError
	switch {
	case errors.As(err, &serr):
		return fmt.Sprintf("invalid regular expression: %v", serr)
	case errors.As(err, &ferr):
		return fmt.Sprintf("malformed automaton table: %v", ferr)
	case errors.As(err, &rerr):
		return fmt.Sprintf("inconsistent automaton table: %v", rerr)
	case errors.Is(err, table.ErrEmptyAutomaton):
		return "empty automaton: the table declares no states"
	case errors.Is(err, subset.ErrNameCollision):
		return fmt.Sprintf("cannot name DFA states: %v", err)
	}
	return err.Error()
}

// WriteFile writes a file through write. The file is only created if write
// succeeds, so failing commands do not leave partial output behind.
func WriteFile(name string, write func(io.Writer) error) error {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(name, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	tracer().Infof("wrote %s", name)
	return nil
}

// ReadAutomaton reads an automaton table from a file.
func ReadAutomaton(name string) (*table.Automaton, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()
	a, err := table.Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if digest, err := a.Digest(); err == nil {
		tracer().Debugf("%s: digest %s", name, digest)
	}
	return a, nil
}
