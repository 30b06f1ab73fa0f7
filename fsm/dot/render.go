package dot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ErrRenderTimeout is returned if the renderer did not finish in time.
var ErrRenderTimeout = errors.New("rendering DOT source timed out")

// DefaultTimeout is used by renderers with a zero Timeout.
const DefaultTimeout = 30 * time.Second

// Renderer runs a Graphviz layout program on DOT sources.
//
//    r := dot.Renderer{Timeout: 5 * time.Second}
//    err := r.Render(ctx, src, "svg", "automaton.svg")
//
// The program is called with Args, followed by -T<format> and -o <out>, and
// reads the DOT source from stdin. It is killed when Timeout or ctx expires.
type Renderer struct {
	Command string        // layout program, "dot" if empty
	Args    []string      // additional arguments
	Timeout time.Duration // wall-clock limit
}

// Render renders src into file out, using output format format (e.g., "png").
func (r Renderer) Render(ctx context.Context, src []byte, format, out string) error {
	command := r.Command
	if command == "" {
		command = "dot"
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	args := append(append([]string{}, r.Args...), "-T"+format, "-o", out)
	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Stdin = bytes.NewReader(src)
	cmd.WaitDelay = time.Second // do not wait for orphaned children holding stderr
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	tracer().Debugf("render: %s %s", command, strings.Join(args, " "))
	err := cmd.Run()
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		tracer().Errorf("render: %s killed after %v", command, timeout)
		return fmt.Errorf("%w: %s did not finish within %v", ErrRenderTimeout, command, timeout)
	}
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return fmt.Errorf("render: %s failed: %w: %s", command, err, msg)
		}
		return fmt.Errorf("render: %s failed: %w", command, err)
	}
	tracer().Infof("rendered %s", out)
	return nil
}
