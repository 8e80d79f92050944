package provider

import (
	"fmt"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// CommitInfo describes a single commit
type CommitInfo struct {
	Hash    string
	Message string
	Author  string
	Email   string
	When    time.Time
}

// LastCommit returns the tip commit of branch, or of HEAD when branch is empty.
// It reads the object database directly and never invokes git.
func (r *Repository) LastCommit(branch string) (CommitInfo, error) {
	if err := r.Validate(); err != nil {
		return CommitInfo{}, err
	}

	repo, err := gogit.PlainOpen(r.Path())
	if err != nil {
		return CommitInfo{}, fmt.Errorf("failed to open repository: %w", err)
	}

	var ref *plumbing.Reference
	if branch == "" {
		ref, err = repo.Head()
	} else {
		ref, err = repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	}
	if err != nil {
		return CommitInfo{}, fmt.Errorf("failed to resolve branch reference: %w", err)
	}

	commit, err := repo.CommitObject(ref.Hash())
	if err != nil {
		return CommitInfo{}, fmt.Errorf("failed to get commit: %w", err)
	}

	return CommitInfo{
		Hash:    commit.Hash.String(),
		Message: strings.TrimSpace(commit.Message),
		Author:  commit.Author.Name,
		Email:   commit.Author.Email,
		When:    commit.Author.When,
	}, nil
}
