package dot

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/rexa"
	"github.com/npillmayer/rexa/fsm/table"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func sample(t *testing.T) *table.Automaton {
	a, err := table.Read(strings.NewReader(";;;F\n;S0;S1;S2\na;S1;S2;\nb;S1;;\nε;S2;;\n"))
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestExport(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexa.dot")
	defer teardown()
	//
	var buf bytes.Buffer
	if err := Export(&buf, sample(t)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	t.Logf("\n%s", out)
	for _, expected := range []string{
		"digraph {",
		"start -> s000\n",
		`s002 [shape=doublecircle, fillcolor=lightgray, label="S2"]`,
		`s000 [shape=circle, fillcolor=white, label="S0"]`,
		`s000 -> s001 [label="a, b"]`,
		`s000 -> s002 [label="ε"]`,
		`s001 -> s002 [label="a"]`,
	} {
		if !strings.Contains(out, expected) {
			t.Errorf("expected DOT output to contain %q", expected)
		}
	}
	if n := strings.Count(out, "->"); n != 4 {
		t.Errorf("expected 4 edges, have %d", n)
	}
}

func TestExportEscapes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexa.dot")
	defer teardown()
	//
	a := table.New([]table.State{{Name: `q"0`, Accept: true}}, nil)
	a.AddTarget(`q"0`, rexa.On('\\'), `q"0`)
	var buf bytes.Buffer
	if err := Export(&buf, a); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `label="q\"0"`) || !strings.Contains(buf.String(), `label="\\"`) {
		t.Errorf("expected labels to be escaped, have\n%s", buf.String())
	}
}

func TestExportEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexa.dot")
	defer teardown()
	//
	if err := Export(&bytes.Buffer{}, table.New(nil, nil)); !errors.Is(err, table.ErrEmptyAutomaton) {
		t.Errorf("expected ErrEmptyAutomaton, have %v", err)
	}
}

func TestRenderTimeout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexa.dot")
	defer teardown()
	//
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("no shell available")
	}
	r := Renderer{
		Command: "sh",
		Args:    []string{"-c", "sleep 3"},
		Timeout: 100 * time.Millisecond,
	}
	start := time.Now()
	err := r.Render(context.Background(), []byte("digraph {}"), "png", filepath.Join(t.TempDir(), "x.png"))
	if !errors.Is(err, ErrRenderTimeout) {
		t.Errorf("expected timeout, have %v", err)
	}
	if time.Since(start) > 2500*time.Millisecond {
		t.Errorf("renderer has not been stopped in time")
	}
}

func TestRenderFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexa.dot")
	defer teardown()
	//
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("no shell available")
	}
	r := Renderer{Command: "sh", Args: []string{"-c", "echo oops >&2; exit 1"}}
	err := r.Render(context.Background(), []byte("digraph {}"), "png", filepath.Join(t.TempDir(), "x.png"))
	if err == nil || errors.Is(err, ErrRenderTimeout) {
		t.Fatalf("expected render error, have %v", err)
	}
	if !strings.Contains(err.Error(), "oops") {
		t.Errorf("expected error to contain stderr of command, have %v", err)
	}
}

func TestRenderGraphviz(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "rexa.dot")
	defer teardown()
	//
	if _, err := exec.LookPath("dot"); err != nil {
		t.Skip("Graphviz not installed")
	}
	var buf bytes.Buffer
	if err := Export(&buf, sample(t)); err != nil {
		t.Fatal(err)
	}
	r := Renderer{Timeout: 10 * time.Second}
	if err := r.Render(context.Background(), buf.Bytes(), "svg", filepath.Join(t.TempDir(), "sample.svg")); err != nil {
		t.Error(err)
	}
}
