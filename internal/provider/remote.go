package provider

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	gperrors "gitprovider.dev/gitprovider/internal/errors"
	"gitprovider.dev/gitprovider/internal/git"
)

// remotePrefixes are URI prefixes handed to git unchanged
var remotePrefixes = []string{"http", "git", "ssh"}

// ResolveCloneURI classifies a clone source. Remote URIs (http, git, ssh prefixes)
// are returned as given; an existing local directory is rewritten into a file:// URI.
// Anything else fails with ErrInvalidURI.
func ResolveCloneURI(uri string) (string, error) {
	uri = strings.ReplaceAll(uri, `\`, "/")

	for _, prefix := range remotePrefixes {
		if strings.HasPrefix(uri, prefix) {
			return uri, nil
		}
	}

	if uri != "" && isDir(uri) {
		abs, err := filepath.Abs(uri)
		if err != nil {
			return "", gperrors.NewInvalidURIError(uri)
		}
		abs = filepath.ToSlash(abs)
		if !strings.HasPrefix(abs, "/") {
			// Windows drive paths: C:/x -> file:///C:/x
			abs = "/" + abs
		}
		return "file://" + abs, nil
	}

	return "", gperrors.NewInvalidURIError(uri)
}

// CloneFrom clones uri into the repository path, creating the directory if needed
func (r *Repository) CloneFrom(ctx context.Context, uri string) error {
	source, err := ResolveCloneURI(uri)
	if err != nil {
		return err
	}

	path := r.Path()
	if !isDir(path) {
		if err := os.MkdirAll(path, 0755); err != nil {
			return gperrors.NewIOFailureError("could not create directory {path}", gperrors.Context{"path": path}, err)
		}
	}
	r.canonicalize()

	_, err = r.exec.Execute(ctx, r.Path(), git.NewCommand("clone", git.Positional(source), git.Positional(".")))
	return err
}

// Push pushes committed changes to remote. Empty arguments default to DefaultBranch
// and DefaultRemote. The branch is named explicitly only if it exists locally.
// Pushing fails before invoking git when nothing was committed on DefaultBranch yet.
func (r *Repository) Push(ctx context.Context, branch, remote string) error {
	if branch == "" {
		branch = DefaultBranch
	}
	if remote == "" {
		remote = DefaultRemote
	}
	if err := checkRefName("branch", branch); err != nil {
		return err
	}
	if err := checkRefName("remote", remote); err != nil {
		return err
	}

	committed, err := r.HasBranch(ctx, DefaultBranch)
	if err != nil {
		return err
	}
	if !committed {
		return gperrors.NewIllegalStateError("nothing committed yet on empty repository", nil)
	}

	cmd := git.NewCommand("push", git.Positional(remote))

	exists := committed
	if branch != DefaultBranch {
		exists, err = r.HasBranch(ctx, branch)
		if err != nil {
			return err
		}
	}
	if exists {
		cmd.Add(git.Positional(branch))
	}

	_, err = r.run(ctx, cmd)
	return err
}

// Pull pulls all changes from remote, DefaultRemote when empty
func (r *Repository) Pull(ctx context.Context, remote string) error {
	if remote == "" {
		remote = DefaultRemote
	}
	if err := checkRefName("remote", remote); err != nil {
		return err
	}

	_, err := r.run(ctx, git.NewCommand("pull", git.Positional(remote)))
	return err
}
