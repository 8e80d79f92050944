package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// DefaultBinary is the git executable looked up on PATH
const DefaultBinary = "git"

// ErrTimeout indicates that a git command did not finish before its deadline
var ErrTimeout = errors.New("git command timed out")

// Invocation is the outcome of a finished git process
type Invocation struct {
	// ExitCode is the process exit status; 0 is the only success signal
	ExitCode int

	// Lines is the merged stdout/stderr output split into lines, in order
	Lines []string
}

// Runner executes git with the given argv inside dir.
// A non-zero exit status is returned as data in Invocation, not as an error.
type Runner interface {
	Run(ctx context.Context, dir string, argv []string) (Invocation, error)
}

// ExecRunner runs the git binary as a child process
type ExecRunner struct {
	// Binary is the git executable, DefaultBinary when empty
	Binary string

	// Timeout applies when the context carries no deadline, DefaultCommandTimeout when zero
	Timeout time.Duration

	// Env holds extra KEY=VALUE entries appended to the process environment
	Env []string
}

// NewExecRunner creates an ExecRunner with default settings
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Binary:  DefaultBinary,
		Timeout: DefaultCommandTimeout,
	}
}

// Run executes git with argv. The working directory is handed to the child process,
// so the caller's current directory is never changed. An empty dir inherits it.
func (r *ExecRunner) Run(ctx context.Context, dir string, argv []string) (Invocation, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		timeout := r.Timeout
		if timeout <= 0 {
			timeout = DefaultCommandTimeout
		}
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	binary := r.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	cmd := exec.CommandContext(ctx, binary, argv...)
	cmd.Dir = dir
	if len(r.Env) > 0 {
		cmd.Env = append(os.Environ(), r.Env...)
	}

	// stdout and stderr share one buffer, the equivalent of 2>&1
	var combined bytes.Buffer
	cmd.Stdout = &combined
	cmd.Stderr = &combined

	err := cmd.Run()
	inv := Invocation{Lines: splitLines(combined.String())}
	if err == nil {
		return inv, nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		inv.ExitCode = -1
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return inv, fmt.Errorf("%w: %s %s", ErrTimeout, binary, strings.Join(argv, " "))
		}
		return inv, ctxErr
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		inv.ExitCode = exitErr.ExitCode()
		return inv, nil
	}

	inv.ExitCode = -1
	return inv, fmt.Errorf("failed to start %s: %w", binary, err)
}

// splitLines splits raw process output into lines, dropping the trailing newline
// and any carriage returns.
func splitLines(raw string) []string {
	raw = strings.TrimSuffix(raw, "\n")
	if raw == "" {
		return []string{}
	}
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
