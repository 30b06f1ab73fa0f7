package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/rexa/fsm/table"
	"github.com/npillmayer/rexa/regex"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func run(args ...string) error {
	defer tracing.SetTraceSelector(nil)
	cmd := newRootCmd()
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestCompileToFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexa.cmd")
	defer teardown()
	//
	dir := t.TempDir()
	out, dotFile := filepath.Join(dir, "nfa.txt"), filepath.Join(dir, "nfa.dot")
	if err := run("--dot", dotFile, out, "(a|b)*c"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("expected output file: %v", err)
	}
	defer f.Close()
	nfa, err := table.Read(f)
	if err != nil {
		t.Fatalf("cannot read output: %v", err)
	}
	if nfa.States[0].Name != "S0" {
		t.Errorf("expected start state S0, is %s", nfa.States[0].Name)
	}
	if string(nfa.Alphabet) != "abc" {
		t.Errorf("expected alphabet abc, is %q", string(nfa.Alphabet))
	}
	if _, err := os.Stat(dotFile); err != nil {
		t.Errorf("expected DOT file: %v", err)
	}
}

func TestCompileSyntaxError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexa.cmd")
	defer teardown()
	//
	out := filepath.Join(t.TempDir(), "nfa.txt")
	err := run(out, "(a")
	var serr *regex.SyntaxError
	if !errors.As(err, &serr) {
		t.Fatalf("expected syntax error, have %v", err)
	}
	if serr.Kind != regex.UnbalancedParens {
		t.Errorf("expected unbalanced parentheses, have %s", serr.Kind)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected no output file after syntax error, stat says %v", err)
	}
}

func TestCompileUnwritableSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexa.cmd")
	defer teardown()
	//
	out := filepath.Join(t.TempDir(), "nfa.txt")
	err := run(out, "a;b")
	var ferr *table.FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected format error for ';', have %v", err)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected no output file after failed write, stat says %v", err)
	}
}

func TestCompileArgs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexa.cmd")
	defer teardown()
	//
	if err := run(filepath.Join(t.TempDir(), "nfa.txt")); err == nil {
		t.Errorf("expected error for missing regex argument")
	}
}
