// Package testhelpers provides testing utilities for gitprovider,
// including a scene system, Git repository helpers, and custom assertions.
package testhelpers

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"gitprovider.dev/gitprovider/internal/git"
	"gitprovider.dev/gitprovider/internal/provider"
)

// Scene represents a test scene: a temporary directory plus an isolated git environment.
// Repositories created through the scene all share that environment.
type Scene struct {
	Dir    string
	Env    []string
	Runner *git.ExecRunner
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene. The temporary directory is removed by t.Cleanup
// unless DEBUG is set. Tests are skipped when git is not installed.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not available")
	}

	tmpDir, err := os.MkdirTemp("", "gitprovider-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	// Normalize (on macOS /var is symlinked to /private/var)
	if resolved, err := filepath.EvalSymlinks(tmpDir); err == nil {
		tmpDir = resolved
	}

	env, err := WriteGlobalGitConfig(tmpDir)
	if err != nil {
		_ = os.RemoveAll(tmpDir)
		t.Fatalf("Failed to write git config: %v", err)
	}

	scene := &Scene{
		Dir: tmpDir,
		Env: env,
		Runner: &git.ExecRunner{
			Binary:  git.DefaultBinary,
			Timeout: git.DefaultCommandTimeout,
			Env:     env,
		},
	}

	t.Cleanup(func() {
		if os.Getenv("DEBUG") == "" {
			_ = os.RemoveAll(tmpDir)
		}
	})

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// Path returns a path inside the scene directory.
func (s *Scene) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

// Repository returns a provider.Repository for a path inside the scene that uses
// the scene's isolated git environment.
func (s *Scene) Repository(name string, opts ...provider.Option) *provider.Repository {
	opts = append([]provider.Option{provider.WithRunner(s.Runner)}, opts...)
	return provider.New(s.Path(name), opts...)
}

// GitRepo wraps a repository inside the scene for direct git access.
func (s *Scene) GitRepo(name string) *GitRepo {
	return OpenGitRepo(s.Path(name), s.Env)
}

// NewGitRepo initializes a workspace repository inside the scene with plain git.
func (s *Scene) NewGitRepo(name string) (*GitRepo, error) {
	return NewGitRepo(s.Path(name), s.Env)
}

// NewBareGitRepo initializes a bare repository inside the scene with plain git.
func (s *Scene) NewBareGitRepo(name string) (*GitRepo, error) {
	return NewBareGitRepo(s.Path(name), s.Env)
}

// BasicSceneSetup creates a workspace repository "repo" with a single commit.
func BasicSceneSetup(scene *Scene) error {
	repo, err := scene.NewGitRepo("repo")
	if err != nil {
		return err
	}
	return repo.CreateChangeAndCommit("README.md", "# repo\n", "initial")
}
