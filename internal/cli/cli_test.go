package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/rexa/fsm/table"
	"github.com/npillmayer/rexa/regex"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDiagnose(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexa.cmd")
	defer teardown()
	//
	_, serr := regex.Parse("(a")
	_, ferr := table.Read(strings.NewReader(";X\n;S0\n"))
	_, rerr := table.Read(strings.NewReader(";\n;S0\na;S1\n"))
	var tests = []struct {
		err    error
		prefix string
	}{
		{serr, "invalid regular expression"},
		{ferr, "malformed automaton table"},
		{fmt.Errorf("nfa.txt: %w", rerr), "inconsistent automaton table"},
		{fmt.Errorf("nfa.txt: %w", table.ErrEmptyAutomaton), "empty automaton"},
		{errors.New("something else"), "something else"},
	}
	for _, test := range tests {
		if msg := Diagnose(test.err); !strings.HasPrefix(msg, test.prefix) {
			t.Errorf("expected diagnostic for %v to start with %q, is %q", test.err, test.prefix, msg)
		}
	}
}

func TestWriteFileOnlyOnSuccess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexa.cmd")
	defer teardown()
	//
	name := filepath.Join(t.TempDir(), "out.txt")
	err := WriteFile(name, func(w io.Writer) error {
		io.WriteString(w, "partial")
		return errors.New("failed")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if _, err := os.Stat(name); !os.IsNotExist(err) {
		t.Errorf("expected no file to be written")
	}
	if err = WriteFile(name, func(w io.Writer) error {
		_, err := io.WriteString(w, "complete")
		return err
	}); err != nil {
		t.Fatal(err)
	}
	if content, _ := os.ReadFile(name); string(content) != "complete" {
		t.Errorf("unexpected file content %q", content)
	}
}

func TestReadAutomaton(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexa.cmd")
	defer teardown()
	//
	name := filepath.Join(t.TempDir(), "nfa.txt")
	if err := os.WriteFile(name, []byte(";;F\n;S0;S1\na;S1;\n"), 0644); err != nil {
		t.Fatal(err)
	}
	a, err := ReadAutomaton(name)
	if err != nil {
		t.Fatal(err)
	}
	if len(a.States) != 2 {
		t.Errorf("expected 2 states, have %d", len(a.States))
	}
	if _, err = ReadAutomaton(name + ".missing"); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestSetupTracingEmitsOutput(t *testing.T) {
	defer tracing.SetTraceSelector(nil)
	//
	SetupTracing("Debug")
	for _, key := range TraceKeys {
		if l := tracing.Select(key).GetTraceLevel(); l != tracing.LevelDebug {
			t.Errorf("expected tracer %q at level Debug, is %v", key, l)
		}
	}
	var buf bytes.Buffer
	tr := tracing.Select("rexa.subset")
	tr.SetOutput(&buf)
	tr.Debugf("closure of %s", "S0")
	if !strings.Contains(buf.String(), "closure of S0") {
		t.Errorf("expected trace output after setup, have %q", buf.String())
	}
	buf.Reset()
	SetupTracing("Error")
	tr = tracing.Select("rexa.subset")
	tr.SetOutput(&buf)
	tr.Debugf("closure of %s", "S1")
	if buf.Len() != 0 {
		t.Errorf("expected no debug output at level Error, have %q", buf.String())
	}
}
