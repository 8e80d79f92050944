package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// isolateHome points the home directory at an empty temp dir
func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoadDefaults(t *testing.T) {
	home := isolateHome(t)

	cfg, err := Load("")
	require.NoError(t, err)

	require.Equal(t, "git", cfg.Git.Binary)
	require.Equal(t, 5*time.Minute, cfg.Git.Timeout)
	require.Empty(t, cfg.Git.Env)
	require.Equal(t, "origin", cfg.Remote)
	require.Equal(t, "master", cfg.Branch)
	require.False(t, cfg.Debug)
	require.Equal(t, filepath.Join(home, ".gitprovider", "logs", "gitprovider.log"), cfg.Log.File)
	require.Equal(t, 1, cfg.Log.MaxSize)
	require.Equal(t, 2, cfg.Log.MaxBackups)
	require.Equal(t, 30, cfg.Log.MaxAge)
	require.Empty(t, cfg.File)
}

func TestLoadDefaultConfigFile(t *testing.T) {
	home := isolateHome(t)
	dir := filepath.Join(home, ".gitprovider")
	require.NoError(t, os.MkdirAll(dir, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("remote: upstream\n"), 0600))

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "upstream", cfg.Remote)
	require.Equal(t, filepath.Join(dir, "config.yaml"), cfg.File)
}

func TestLoadExplicitFile(t *testing.T) {
	isolateHome(t)

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gitprovider.yaml")
		content := `git:
  binary: /usr/local/bin/git
  timeout: 30s
  env:
    - GIT_TERMINAL_PROMPT=0
branch: main
debug: true
log:
  max_size: 10
  compress: true
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "/usr/local/bin/git", cfg.Git.Binary)
		require.Equal(t, 30*time.Second, cfg.Git.Timeout)
		require.Equal(t, []string{"GIT_TERMINAL_PROMPT=0"}, cfg.Git.Env)
		require.Equal(t, "main", cfg.Branch)
		require.True(t, cfg.Debug)
		require.Equal(t, 10, cfg.Log.MaxSize)
		require.True(t, cfg.Log.Compress)
		require.Equal(t, "origin", cfg.Remote, "unset keys keep their defaults")
		require.Equal(t, path, cfg.File)
	})

	t.Run("toml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "gitprovider.toml")
		content := "remote = \"backup\"\n\n[git]\ntimeout = \"2m\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0600))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "backup", cfg.Remote)
		require.Equal(t, 2*time.Minute, cfg.Git.Timeout)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.yaml")
		require.NoError(t, os.WriteFile(path, []byte("git: [unterminated\n"), 0600))

		_, err := Load(path)
		require.Error(t, err)
	})
}

func TestLoadEnvOverrides(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "gitprovider.yaml")
	require.NoError(t, os.WriteFile(path, []byte("remote: upstream\n"), 0600))

	t.Setenv("GITPROVIDER_REMOTE", "mirror")
	t.Setenv("GITPROVIDER_GIT_TIMEOUT", "45s")
	t.Setenv("GITPROVIDER_LOG_FILE", "/tmp/custom.log")
	t.Setenv("GITPROVIDER_DEBUG", "true")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "mirror", cfg.Remote)
	require.Equal(t, 45*time.Second, cfg.Git.Timeout)
	require.Equal(t, "/tmp/custom.log", cfg.Log.File)
	require.True(t, cfg.Debug)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	cfg := &Config{Git: GitConfig{Binary: "git", Timeout: time.Second}}
	require.NoError(t, cfg.Validate())

	cfg.Git.Binary = " "
	require.Error(t, cfg.Validate())

	cfg = &Config{Git: GitConfig{Binary: "git"}}
	require.Error(t, cfg.Validate())
}

func TestLogConfigOutput(t *testing.T) {
	t.Parallel()

	out := LogConfig{File: "a.log", MaxSize: 3, MaxBackups: 4, MaxAge: 5, Compress: true}.Output()
	require.Equal(t, "a.log", out.File)
	require.Equal(t, 3, out.MaxSize)
	require.Equal(t, 4, out.MaxBackups)
	require.Equal(t, 5, out.MaxAge)
	require.True(t, out.Compress)
}
