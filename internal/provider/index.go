package provider

import (
	"context"

	gperrors "gitprovider.dev/gitprovider/internal/errors"
	"gitprovider.dev/gitprovider/internal/git"
)

// AddToIndex stages the files matching pattern
func (r *Repository) AddToIndex(ctx context.Context, pattern string) error {
	if pattern == "" {
		return gperrors.NewInvalidArgumentError("invalid pattern", nil)
	}

	_, err := r.run(ctx, git.NewCommand("add", git.Switch("--"), git.Positional(pattern)))
	return err
}

// Commit records the staged changes with message
func (r *Repository) Commit(ctx context.Context, message string) error {
	if message == "" {
		return gperrors.NewInvalidArgumentError("invalid commit message (must not be empty)", nil)
	}

	_, err := r.run(ctx, git.NewCommand("commit", git.Option("-m", message)))
	return err
}

// Remove deletes the files matching pattern. A pattern that is currently staged
// is only removed from the index (--cached) and the working file is kept.
// Patterns that are not regular expressions, such as pathspec globs, count as not staged.
func (r *Repository) Remove(ctx context.Context, pattern string, force bool) error {
	if pattern == "" {
		return gperrors.NewInvalidArgumentError("invalid pattern", nil)
	}

	staged, err := r.isStaged(ctx, pattern)
	if err != nil {
		return err
	}

	cmd := git.NewCommand("rm")
	if staged {
		cmd.Add(git.Switch("--cached"))
	}
	if force {
		cmd.Add(git.Switch("-f"))
	}
	cmd.Add(git.Switch("--"), git.Positional(pattern))

	_, err = r.run(ctx, cmd)
	return err
}
