package git_test

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	gperrors "gitprovider.dev/gitprovider/internal/errors"
	"gitprovider.dev/gitprovider/internal/git"
)

// recordingHandler collects every record passed to it
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r)
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func attrs(r slog.Record) map[string]slog.Value {
	out := map[string]slog.Value{}
	r.Attrs(func(a slog.Attr) bool {
		out[a.Key] = a.Value
		return true
	})
	return out
}

func TestInterpret(t *testing.T) {
	cmd := git.NewCommand("status", git.Switch("--short"))
	argv := []string{"status", "--short"}

	t.Run("fails on every non-zero exit code regardless of output", func(t *testing.T) {
		for _, code := range []int{1, 2, 127, 128, 255, -1} {
			for _, lines := range [][]string{nil, {"all good"}, {"", "  "}} {
				_, err := git.Interpret(nil, cmd, argv, git.Invocation{ExitCode: code, Lines: lines})
				require.ErrorIs(t, err, gperrors.ErrExecutionFailed)

				var execErr *gperrors.ExecutionError
				require.ErrorAs(t, err, &execErr)
				require.Equal(t, code, execErr.ExitCode)
				require.Equal(t, "status", execErr.Verb)
			}
		}
	})

	t.Run("failure reason carries the concatenated output", func(t *testing.T) {
		_, err := git.Interpret(nil, cmd, argv, git.Invocation{ExitCode: 128, Lines: []string{"fatal: ", "not a git repository"}})
		require.EqualError(t, err, "could not execute command status: errorcode = 128; fatal: not a git repository")
	})

	t.Run("blank output yields empty string and empty list", func(t *testing.T) {
		out, err := git.Interpret(nil, cmd, argv, git.Invocation{Lines: []string{"", "   ", "\t"}})
		require.NoError(t, err)
		require.Equal(t, "", out.String())
		require.NotNil(t, out.Lines())
		require.Empty(t, out.Lines())
		require.True(t, out.IsEmpty())
	})

	t.Run("trims lines and keeps their order", func(t *testing.T) {
		out, err := git.Interpret(nil, cmd, argv, git.Invocation{Lines: []string{"  b ", "", "a", " c"}})
		require.NoError(t, err)
		require.Equal(t, []string{"b", "a", "c"}, out.Lines())
		require.Equal(t, "b\na\nc", out.String())
	})

	t.Run("writes one debug record per invocation", func(t *testing.T) {
		handler := &recordingHandler{}
		logger := slog.New(handler)

		_, err := git.Interpret(logger, cmd, argv, git.Invocation{ExitCode: 1, Lines: []string{"error: x", "hint: y"}})
		require.Error(t, err)

		require.Len(t, handler.records, 1)
		record := handler.records[0]
		require.Equal(t, slog.LevelDebug, record.Level)

		values := attrs(record)
		require.Equal(t, "git status --short", values["command"].String())
		require.Equal(t, int64(1), values["exit_code"].Int64())
		require.Equal(t, "error: x\nhint: y", values["output"].String())
	})
}

func TestOutputLinesIsACopy(t *testing.T) {
	out := git.NewOutput([]string{"a", "b"})
	lines := out.Lines()
	lines[0] = "changed"
	require.Equal(t, "a\nb", out.String())
	require.False(t, strings.Contains(out.String(), "changed"))
}
