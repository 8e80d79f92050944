package provider

import (
	"context"
	"os"
	"path/filepath"
	"regexp"

	gperrors "gitprovider.dev/gitprovider/internal/errors"
	"gitprovider.dev/gitprovider/internal/git"
)

const (
	// metadataDir marks a workspace repository
	metadataDir = ".git"

	// headFile at the top level marks a bare repository
	headFile = "HEAD"

	// descriptionFile holds the project name of a bare repository
	descriptionFile = "description"
)

// Validate checks that the path is a usable repository and records whether it is bare.
func (r *Repository) Validate() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	info, err := os.Stat(r.path)
	if err != nil {
		return gperrors.NewInvalidPathError(r.path, err)
	}
	if !info.IsDir() {
		return gperrors.NewInvalidPathError(r.path, nil)
	}

	if isDir(filepath.Join(r.path, metadataDir)) {
		r.bare = false
		return nil
	}

	if _, err := os.Stat(filepath.Join(r.path, headFile)); err != nil {
		return gperrors.NewNotARepositoryError(r.path)
	}
	r.bare = true
	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// HasBranch reports whether a local branch named name exists.
// Branches are listed live on every call; the comparison is exact and case-sensitive.
func (r *Repository) HasBranch(ctx context.Context, name string) (bool, error) {
	out, err := r.run(ctx, git.NewCommand("branch"))
	if err != nil {
		return false, err
	}

	for _, branch := range git.ParseBranchList(out.Lines()) {
		if branch == name {
			return true, nil
		}
	}
	return false, nil
}

// IsStaged reports whether any file staged in the index matches pattern,
// interpreted as a regular expression.
func (r *Repository) IsStaged(ctx context.Context, pattern string) (bool, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, gperrors.NewInvalidArgumentError("invalid pattern {pattern}", gperrors.Context{"pattern": pattern})
	}
	return r.matchStaged(ctx, re)
}

// isStaged is IsStaged for callers that treat an invalid expression as no match
func (r *Repository) isStaged(ctx context.Context, pattern string) (bool, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, nil
	}
	return r.matchStaged(ctx, re)
}

func (r *Repository) matchStaged(ctx context.Context, re *regexp.Regexp) (bool, error) {
	out, err := r.run(ctx, git.NewCommand("diff", git.Switch("--cached"), git.Switch("--name-only")))
	if err != nil {
		return false, err
	}

	for _, file := range git.ParseNameOnly(out.Lines()) {
		if re.MatchString(file) {
			return true, nil
		}
	}
	return false, nil
}
