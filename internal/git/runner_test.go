package git_test

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	gperrors "gitprovider.dev/gitprovider/internal/errors"
	"gitprovider.dev/gitprovider/internal/git"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}
}

func TestExecRunner(t *testing.T) {
	requireGit(t)

	t.Run("runs inside the given directory without changing cwd", func(t *testing.T) {
		before, err := os.Getwd()
		require.NoError(t, err)

		dir := t.TempDir()
		runner := git.NewExecRunner()
		inv, err := runner.Run(context.Background(), dir, []string{"init", "--quiet", "."})
		require.NoError(t, err)
		require.Equal(t, 0, inv.ExitCode)

		after, err := os.Getwd()
		require.NoError(t, err)
		require.Equal(t, before, after)

		_, err = os.Stat(filepath.Join(dir, ".git"))
		require.NoError(t, err)
	})

	t.Run("returns non-zero exit status as data", func(t *testing.T) {
		dir := t.TempDir()
		runner := &git.ExecRunner{Env: []string{"GIT_CEILING_DIRECTORIES=" + filepath.Dir(dir)}}

		inv, err := runner.Run(context.Background(), dir, []string{"rev-parse", "--git-dir"})
		require.NoError(t, err)
		require.NotEqual(t, 0, inv.ExitCode)
		require.NotEmpty(t, inv.Lines, "stderr should be captured with stdout")
	})

	t.Run("reports a missing working directory as an error", func(t *testing.T) {
		runner := git.NewExecRunner()
		inv, err := runner.Run(context.Background(), filepath.Join(t.TempDir(), "missing"), []string{"status"})
		require.Error(t, err)
		require.Equal(t, -1, inv.ExitCode)
	})

	t.Run("reports a timeout", func(t *testing.T) {
		if _, err := exec.LookPath("sleep"); err != nil {
			t.Skip("sleep binary not available")
		}
		runner := &git.ExecRunner{Binary: "sleep", Timeout: 50 * time.Millisecond}

		_, err := runner.Run(context.Background(), "", []string{"5"})
		require.ErrorIs(t, err, git.ErrTimeout)
	})
}

// fakeRunner records calls and replays a canned invocation
type fakeRunner struct {
	calls [][]string
	dirs  []string
	inv   git.Invocation
	err   error
}

func (f *fakeRunner) Run(_ context.Context, dir string, argv []string) (git.Invocation, error) {
	f.calls = append(f.calls, argv)
	f.dirs = append(f.dirs, dir)
	return f.inv, f.err
}

func TestExecutor(t *testing.T) {
	t.Run("passes argv and directory to the runner", func(t *testing.T) {
		runner := &fakeRunner{inv: git.Invocation{Lines: []string{"* master"}}}
		executor := git.NewExecutor(runner, nil)

		out, err := executor.Execute(context.Background(), "/repo", git.NewCommand("branch"))
		require.NoError(t, err)
		require.Equal(t, "* master", out.String())
		require.Equal(t, [][]string{{"branch"}}, runner.calls)
		require.Equal(t, []string{"/repo"}, runner.dirs)
	})

	t.Run("does not run commands that fail to build", func(t *testing.T) {
		runner := &fakeRunner{}
		executor := git.NewExecutor(runner, nil)

		_, err := executor.Execute(context.Background(), "/repo", git.NewCommand("add", git.Positional("")))
		require.ErrorIs(t, err, gperrors.ErrInvalidArgument)
		require.Empty(t, runner.calls)
	})

	t.Run("wraps runner failures as execution errors", func(t *testing.T) {
		cause := errors.New("exec: \"git\": executable file not found in $PATH")
		runner := &fakeRunner{inv: git.Invocation{ExitCode: -1}, err: cause}
		executor := git.NewExecutor(runner, nil)

		_, err := executor.Execute(context.Background(), "/repo", git.NewCommand("status"))
		require.ErrorIs(t, err, gperrors.ErrExecutionFailed)
		require.ErrorIs(t, err, cause)

		var execErr *gperrors.ExecutionError
		require.ErrorAs(t, err, &execErr)
		require.Equal(t, -1, execErr.ExitCode)
	})
}
