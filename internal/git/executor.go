package git

import (
	"context"
	"io"
	"log/slog"

	gperrors "gitprovider.dev/gitprovider/internal/errors"
)

// Executor builds, runs and interprets git commands
type Executor struct {
	runner Runner
	logger *slog.Logger
}

// NewExecutor creates an Executor. A nil runner falls back to NewExecRunner and
// a nil logger discards diagnostics.
func NewExecutor(runner Runner, logger *slog.Logger) *Executor {
	if runner == nil {
		runner = NewExecRunner()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Executor{runner: runner, logger: logger}
}

// Logger returns the diagnostic logger
func (e *Executor) Logger() *slog.Logger {
	return e.logger
}

// Execute runs cmd inside dir and returns its trimmed output.
// Build errors are returned before anything is run. A runner failure (timeout,
// missing binary or directory) is reported as an ExecutionError with exit code -1.
func (e *Executor) Execute(ctx context.Context, dir string, cmd *Command) (Output, error) {
	argv, err := cmd.Build()
	if err != nil {
		return Output{}, err
	}

	inv, err := e.runner.Run(ctx, dir, argv)
	if err != nil {
		e.logger.Debug("git command failed to run",
			"command", cmd.String(),
			"dir", dir,
			"error", err)
		return Output{}, gperrors.NewExecutionError(cmd.Verb, argv, -1, inv.Lines, err)
	}

	return Interpret(e.logger, cmd, argv, inv)
}
