package provider

import (
	"context"
	"strings"

	gperrors "gitprovider.dev/gitprovider/internal/errors"
	"gitprovider.dev/gitprovider/internal/git"
)

// checkRefName rejects names git would parse as an option
func checkRefName(kind, name string) error {
	if strings.HasPrefix(name, "-") {
		return gperrors.NewInvalidArgumentError("invalid "+kind+" name {name}", gperrors.Context{"name": name})
	}
	return nil
}

// CreateBranch creates a new branch at the current HEAD
func (r *Repository) CreateBranch(ctx context.Context, name string) error {
	if err := checkRefName("branch", name); err != nil {
		return err
	}

	exists, err := r.HasBranch(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return gperrors.NewIllegalStateError("branch {branch} already exists", gperrors.Context{"branch": name})
	}

	_, err = r.run(ctx, git.NewCommand("branch", git.Positional(name)))
	return err
}

// Checkout checks out branch. An empty branch re-checks out the current one.
func (r *Repository) Checkout(ctx context.Context, branch string) error {
	if err := checkRefName("branch", branch); err != nil {
		return err
	}

	cmd := git.NewCommand("checkout")
	if branch != "" {
		cmd.Add(git.Positional(branch))
	}

	_, err := r.run(ctx, cmd)
	return err
}
