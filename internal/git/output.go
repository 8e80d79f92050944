package git

import (
	"context"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	gperrors "gitprovider.dev/gitprovider/internal/errors"
)

// Output is the trimmed, non-empty view of a successful invocation
type Output struct {
	lines []string
}

// NewOutput builds an Output from raw lines: each line is trimmed and empty lines are dropped
func NewOutput(raw []string) Output {
	trimmed := lo.Map(raw, func(line string, _ int) string {
		return strings.TrimSpace(line)
	})
	return Output{lines: lo.Filter(trimmed, func(line string, _ int) bool {
		return line != ""
	})}
}

// String joins the surviving lines with newlines; empty when nothing survived
func (o Output) String() string {
	return strings.Join(o.lines, "\n")
}

// Lines returns the surviving lines in their original relative order, never nil
func (o Output) Lines() []string {
	if o.lines == nil {
		return []string{}
	}
	return append([]string(nil), o.lines...)
}

// IsEmpty reports whether no line survived trimming
func (o Output) IsEmpty() bool {
	return len(o.lines) == 0
}

// Interpret classifies a finished invocation of cmd.
// It writes exactly one debug record per invocation to logger, fails with an
// ExecutionError on a non-zero exit status, and otherwise returns the trimmed output.
func Interpret(logger *slog.Logger, cmd *Command, argv []string, inv Invocation) (Output, error) {
	if logger != nil {
		logger.LogAttrs(context.Background(), slog.LevelDebug, "git command executed",
			slog.String("command", cmd.String()),
			slog.Int("exit_code", inv.ExitCode),
			slog.String("output", strings.Join(inv.Lines, "\n")),
		)
	}

	if inv.ExitCode != 0 {
		return Output{}, gperrors.NewExecutionError(cmd.Verb, argv, inv.ExitCode, inv.Lines, nil)
	}

	return NewOutput(inv.Lines), nil
}
