package runtime

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	logFile := filepath.Join(t.TempDir(), "run.log")
	content := "git:\n  binary: git-custom\n  timeout: 10s\n  env: [A=1]\nlog:\n  file: " + logFile + "\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0600))

	var stdout bytes.Buffer
	ctx, err := Load(configPath, "relative/repo", true, &stdout)
	require.NoError(t, err)
	defer ctx.Close()

	require.True(t, ctx.Config.Debug, "the debug flag overrides the config")
	require.True(t, filepath.IsAbs(ctx.RepoPath))

	runner := ctx.Runner()
	require.Equal(t, "git-custom", runner.Binary)
	require.Equal(t, 10*time.Second, runner.Timeout)
	require.Equal(t, []string{"A=1"}, runner.Env)

	repo := ctx.Repository()
	require.Equal(t, ctx.RepoPath, repo.Path())

	ctx.Splog.Debug("hello")
	require.Equal(t, "hello\n", stdout.String())
	require.FileExists(t, logFile)
}

func TestLoadMissingConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), ".", false, &bytes.Buffer{})
	require.Error(t, err)
}
