package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// globalGitConfig is written to a private file and used as GIT_CONFIG_GLOBAL so tests
// never read the developer's configuration and always start on "master".
const globalGitConfig = `[user]
	name = Test User
	email = test@example.com
[init]
	defaultBranch = master
[core]
	autocrlf = false
[commit]
	gpgsign = false
[pull]
	rebase = false
`

// WriteGlobalGitConfig writes the isolated global git config into dir and returns the
// environment entries pointing git at it.
func WriteGlobalGitConfig(dir string) ([]string, error) {
	configPath := filepath.Join(dir, ".gitconfig")
	if err := os.WriteFile(configPath, []byte(globalGitConfig), 0600); err != nil {
		return nil, fmt.Errorf("failed to write git config: %w", err)
	}
	return []string{
		"GIT_CONFIG_GLOBAL=" + configPath,
		"GIT_CONFIG_NOSYSTEM=1",
		"GIT_TERMINAL_PROMPT=0",
	}, nil
}

// GitRepo represents a Git repository created directly with git, used to set up
// or inspect state independently of the code under test.
type GitRepo struct {
	Dir string
	Env []string
}

// NewGitRepo initializes a new workspace repository in dir using 'git init'.
func NewGitRepo(dir string, env []string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir, Env: env}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	if err := repo.runGitCommand("init", "--quiet", "."); err != nil {
		return nil, fmt.Errorf("failed to init repo: %w", err)
	}
	return repo, nil
}

// NewBareGitRepo initializes a new bare repository in dir using 'git init --bare'.
func NewBareGitRepo(dir string, env []string) (*GitRepo, error) {
	repo := &GitRepo{Dir: dir, Env: env}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}
	if err := repo.runGitCommand("init", "--quiet", "--bare", "."); err != nil {
		return nil, fmt.Errorf("failed to init bare repo: %w", err)
	}
	return repo, nil
}

// OpenGitRepo wraps an existing repository directory.
func OpenGitRepo(dir string, env []string) *GitRepo {
	return &GitRepo{Dir: dir, Env: env}
}

// runGitCommand executes a git command in the repository directory.
func (r *GitRepo) runGitCommand(args ...string) error {
	_, err := r.runGitCommandAndGetOutput(args...)
	return err
}

// runGitCommandAndGetOutput executes a git command and returns its trimmed output.
func (r *GitRepo) runGitCommandAndGetOutput(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), r.Env...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w\n%s", strings.Join(args, " "), err, string(output))
	}
	return strings.TrimSpace(string(output)), nil
}

// RunGitCommand executes a git command and returns an error if it fails.
func (r *GitRepo) RunGitCommand(args ...string) error {
	return r.runGitCommand(args...)
}

// RunGitCommandAndGetOutput executes a git command and returns its output.
func (r *GitRepo) RunGitCommandAndGetOutput(args ...string) (string, error) {
	return r.runGitCommandAndGetOutput(args...)
}

// WriteFile writes content to a file relative to the repository root.
func (r *GitRepo) WriteFile(name, content string) error {
	filePath := filepath.Join(r.Dir, name)
	if err := os.MkdirAll(filepath.Dir(filePath), 0750); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	if err := os.WriteFile(filePath, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// FileExists reports whether a file relative to the repository root exists.
func (r *GitRepo) FileExists(name string) bool {
	_, err := os.Stat(filepath.Join(r.Dir, name))
	return err == nil
}

// CreateChangeAndCommit writes name with content, stages it and commits it.
func (r *GitRepo) CreateChangeAndCommit(name, content, message string) error {
	if err := r.WriteFile(name, content); err != nil {
		return err
	}
	if err := r.runGitCommand("add", "--", name); err != nil {
		return err
	}
	return r.runGitCommand("commit", "--quiet", "-m", message)
}

// CreateBranch creates a new branch without checking it out.
func (r *GitRepo) CreateBranch(name string) error {
	return r.runGitCommand("branch", name)
}

// CurrentBranchName returns the checked-out branch.
func (r *GitRepo) CurrentBranchName() (string, error) {
	return r.runGitCommandAndGetOutput("rev-parse", "--abbrev-ref", "HEAD")
}

// GetLocalBranches returns all local branch names.
func (r *GitRepo) GetLocalBranches() ([]string, error) {
	output, err := r.runGitCommandAndGetOutput("for-each-ref", "refs/heads/", "--format=%(refname:short)")
	if err != nil {
		return nil, err
	}
	return splitLines(output), nil
}

// StagedFiles returns the files currently staged in the index.
func (r *GitRepo) StagedFiles() ([]string, error) {
	output, err := r.runGitCommandAndGetOutput("diff", "--cached", "--name-only")
	if err != nil {
		return nil, err
	}
	return splitLines(output), nil
}

// ListCommitMessages returns the subjects of the commits reachable from rev, newest first.
func (r *GitRepo) ListCommitMessages(rev string) ([]string, error) {
	output, err := r.runGitCommandAndGetOutput("log", "--format=%s", rev)
	if err != nil {
		return nil, err
	}
	return splitLines(output), nil
}

// GetConfig returns a local config value.
func (r *GitRepo) GetConfig(key string) (string, error) {
	return r.runGitCommandAndGetOutput("config", "--local", key)
}

// splitLines splits a string by newlines and returns non-empty lines.
func splitLines(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\n")
}
