package provider

import (
	"context"
	"os"
	"path/filepath"

	gperrors "gitprovider.dev/gitprovider/internal/errors"
	"gitprovider.dev/gitprovider/internal/git"
)

const (
	sharedPermissions  = "0775"
	privatePermissions = "0700"
)

// Init initializes a brand new repository at the repository path.
// git creates the directory, so the command runs in the caller's current directory.
func (r *Repository) Init(ctx context.Context, bare, shared bool) error {
	cmd := git.NewCommand("init")
	if bare {
		cmd.Add(git.Switch("--bare"))
	}
	perms := privatePermissions
	if shared {
		perms = sharedPermissions
	}
	cmd.Add(git.Assign("--shared", perms), git.Positional(r.Path()))

	if _, err := r.exec.Execute(ctx, "", cmd); err != nil {
		return err
	}

	r.canonicalize()
	return nil
}

// Create initializes the repository, writes the project name (if any) and records
// the bare flag. Writing a project name into a workspace repository fails.
func (r *Repository) Create(ctx context.Context, bare, shared bool) error {
	if err := r.Init(ctx, bare, shared); err != nil {
		return err
	}

	if name := r.ProjectName(); name != "" {
		if err := r.SetProjectName(name); err != nil {
			return err
		}
	}

	r.mu.Lock()
	r.bare = bare
	r.mu.Unlock()
	return nil
}

// SetProjectName stores the project name and writes it to the description file.
// Only bare repositories carry a description file; an empty name writes nothing.
func (r *Repository) SetProjectName(name string) error {
	if err := r.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.projectName = name
	if name == "" {
		return nil
	}

	if !r.bare {
		return gperrors.NewIllegalStateError("could not write description file on non-bare repository", nil)
	}

	path := filepath.Join(r.path, descriptionFile)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return gperrors.NewIOFailureError("could not open description file {path}", gperrors.Context{"path": path}, err)
	}

	n, err := f.WriteString(name)
	if err == nil && n < len(name) {
		err = gperrors.NewIOFailureError("short write: {written} of {total} bytes", gperrors.Context{"written": n, "total": len(name)}, nil)
	}
	if err == nil {
		err = f.Sync()
	}
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return gperrors.NewIOFailureError("could not write description file {path}", gperrors.Context{"path": path}, err)
	}
	return nil
}

// Description returns the content of the description file of a bare repository
func (r *Repository) Description() (string, error) {
	if err := r.Validate(); err != nil {
		return "", err
	}
	if !r.IsBare() {
		return "", gperrors.NewIllegalStateError("non-bare repository has no description file", nil)
	}

	path := filepath.Join(r.Path(), descriptionFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", gperrors.NewIOFailureError("could not read description file {path}", gperrors.Context{"path": path}, err)
	}
	return string(data), nil
}

// SetAuthor sets the local user name and email used for commits
func (r *Repository) SetAuthor(ctx context.Context, name, email string) error {
	settings := []struct{ key, value string }{
		{"user.name", name},
		{"user.email", email},
	}
	for _, s := range settings {
		cmd := git.NewCommand("config", git.Switch("--local"), git.Positional(s.key), git.Positional(s.value))
		if _, err := r.run(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}
