package provider

import (
	"os"

	gperrors "gitprovider.dev/gitprovider/internal/errors"
)

// IsEmpty reports whether the working tree holds nothing besides an entry named filter
// (typically ".git"). Bare repositories have no working tree to check.
func (r *Repository) IsEmpty(filter string) (bool, error) {
	if err := r.Validate(); err != nil {
		return false, err
	}
	if r.IsBare() {
		return false, gperrors.NewIllegalStateError("could not check emptiness of bare repository", nil)
	}

	path := r.Path()
	entries, err := os.ReadDir(path)
	if err != nil {
		return false, gperrors.NewIOFailureError("could not read directory {path}", gperrors.Context{"path": path}, err)
	}
	for _, entry := range entries {
		if entry.Name() != filter {
			return false, nil
		}
	}
	return true, nil
}

// Destroy removes the repository directory tree. There is no undo.
func (r *Repository) Destroy() error {
	path := r.Path()
	if path == "" {
		return gperrors.NewInvalidPathError(path, nil)
	}
	if err := os.RemoveAll(path); err != nil {
		return gperrors.NewIOFailureError("could not remove {path}", gperrors.Context{"path": path}, err)
	}
	return nil
}
