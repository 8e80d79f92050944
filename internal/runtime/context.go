package runtime

import (
	"io"
	"path/filepath"

	"gitprovider.dev/gitprovider/internal/config"
	"gitprovider.dev/gitprovider/internal/git"
	"gitprovider.dev/gitprovider/internal/output"
	"gitprovider.dev/gitprovider/internal/provider"
)

// Context provides access to configuration, output and the target repository for commands
type Context struct {
	Config   *config.Config
	Splog    *output.Splog
	RepoPath string
}

// NewContext creates a context for the repository at repoPath
func NewContext(cfg *config.Config, splog *output.Splog, repoPath string) *Context {
	if abs, err := filepath.Abs(repoPath); err == nil {
		repoPath = abs
	}
	return &Context{
		Config:   cfg,
		Splog:    splog,
		RepoPath: repoPath,
	}
}

// Load reads the configuration from configPath (or the default location) and
// sets up console and file logging. debug forces debug output regardless of config.
func Load(configPath, repoPath string, debug bool, stdout io.Writer) (*Context, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if debug {
		cfg.Debug = true
	}

	splog, err := output.NewSplogWithConfig(stdout, cfg.Debug, cfg.Log.Output())
	if err != nil {
		return nil, err
	}

	return NewContext(cfg, splog, repoPath), nil
}

// Runner returns a git runner honoring the configured binary, timeout and environment
func (c *Context) Runner() *git.ExecRunner {
	return &git.ExecRunner{
		Binary:  c.Config.Git.Binary,
		Timeout: c.Config.Git.Timeout,
		Env:     c.Config.Git.Env,
	}
}

// Repository returns the façade for the context's repository path
func (c *Context) Repository(opts ...provider.Option) *provider.Repository {
	opts = append([]provider.Option{
		provider.WithRunner(c.Runner()),
		provider.WithLogger(c.Splog.Logger()),
	}, opts...)
	return provider.New(c.RepoPath, opts...)
}

// Close releases the log file
func (c *Context) Close() error {
	return c.Splog.Close()
}
