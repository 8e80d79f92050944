// Package provider drives git repository lifecycle operations (create, clone, stage,
// commit, branch, checkout, push, pull, destroy) through the git command-line tool.
//
// A Repository is identified by its filesystem path. Constructing one has no
// filesystem side effect; it becomes usable after Create, Init or CloneFrom, or when
// it points at an existing repository. Whether a repository is bare is always
// re-derived from the filesystem before it is relied upon.
//
// Every blocking operation takes a context.Context; git invocations without a
// deadline are bounded by git.DefaultCommandTimeout.
package provider

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"

	"gitprovider.dev/gitprovider/internal/git"
)

const (
	// DefaultBranch is the branch whose existence proves that something was committed
	DefaultBranch = "master"

	// DefaultRemote is the remote used by Push and Pull when none is given
	DefaultRemote = "origin"
)

// Repository is a façade over a single git repository on disk
type Repository struct {
	mu          sync.Mutex
	path        string
	bare        bool
	projectName string

	exec *git.Executor
}

// Option configures a Repository
type Option func(*options)

type options struct {
	runner      git.Runner
	logger      *slog.Logger
	projectName string
}

// WithRunner sets the runner used to invoke git
func WithRunner(runner git.Runner) Option {
	return func(o *options) {
		o.runner = runner
	}
}

// WithLogger sets the logger receiving one debug record per git invocation
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithProjectName sets the project name written to the description file by Create
func WithProjectName(name string) Option {
	return func(o *options) {
		o.projectName = name
	}
}

// New creates a Repository for path. Relative paths are made absolute against the
// current directory; nothing is created on disk. An empty path stays empty and
// never validates.
func New(path string, opts ...Option) *Repository {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	if path != "" {
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
	}

	return &Repository{
		path:        path,
		projectName: o.projectName,
		exec:        git.NewExecutor(o.runner, o.logger),
	}
}

// Path returns the repository path
func (r *Repository) Path() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.path
}

// ProjectName returns the project name last set on this Repository
func (r *Repository) ProjectName() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.projectName
}

// IsBare returns the bare classification recorded by the last validation.
// Use Validate to refresh it from the filesystem.
func (r *Repository) IsBare() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bare
}

// canonicalize resolves symlinks in the repository path once it exists
func (r *Repository) canonicalize() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if resolved, err := filepath.EvalSymlinks(r.path); err == nil {
		r.path = resolved
	}
}

// run validates the repository and executes cmd inside it
func (r *Repository) run(ctx context.Context, cmd *git.Command) (git.Output, error) {
	if err := r.Validate(); err != nil {
		return git.Output{}, err
	}
	return r.exec.Execute(ctx, r.Path(), cmd)
}
