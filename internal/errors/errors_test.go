package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gperrors "gitprovider.dev/gitprovider/internal/errors"
)

func TestInterpolate(t *testing.T) {
	t.Run("replaces known placeholders", func(t *testing.T) {
		msg := gperrors.Interpolate("branch {branch} already exists", gperrors.Context{"branch": "v1.0"})
		assert.Equal(t, "branch v1.0 already exists", msg)
	})

	t.Run("leaves unknown placeholders untouched", func(t *testing.T) {
		msg := gperrors.Interpolate("invalid uri {uri} given", gperrors.Context{"path": "/tmp"})
		assert.Equal(t, "invalid uri {uri} given", msg)
	})

	t.Run("formats non-string values", func(t *testing.T) {
		msg := gperrors.Interpolate("errorcode = {code}", gperrors.Context{"code": 128})
		assert.Equal(t, "errorcode = 128", msg)
	})
}

func TestProviderErrorKinds(t *testing.T) {
	cause := stderrors.New("permission denied")

	cases := []struct {
		name string
		err  error
		kind error
		msg  string
	}{
		{"invalid path", gperrors.NewInvalidPathError("/nope", nil), gperrors.ErrInvalidPath, "invalid repository path, /nope does not exist"},
		{"not a repository", gperrors.NewNotARepositoryError("/tmp/x"), gperrors.ErrNotARepository, "invalid repository path, /tmp/x does not seem to be a git repo"},
		{"invalid argument", gperrors.NewInvalidArgumentError("invalid pattern", nil), gperrors.ErrInvalidArgument, "invalid pattern"},
		{"invalid uri", gperrors.NewInvalidURIError("ftp://host/x.git"), gperrors.ErrInvalidURI, "invalid uri ftp://host/x.git given"},
		{"illegal state", gperrors.NewIllegalStateError("branch {branch} already exists", gperrors.Context{"branch": "v1.0"}), gperrors.ErrIllegalState, "branch v1.0 already exists"},
		{"io failure", gperrors.NewIOFailureError("could not write description file", nil, cause), gperrors.ErrIOFailure, "could not write description file: permission denied"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.err, tc.kind)
			assert.Equal(t, tc.msg, tc.err.Error())
		})
	}
}

func TestProviderErrorUnwrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := fmt.Errorf("saving: %w", gperrors.NewIOFailureError("could not write description file", nil, cause))

	require.ErrorIs(t, err, gperrors.ErrIOFailure)
	require.ErrorIs(t, err, cause)

	var perr *gperrors.ProviderError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "could not write description file", perr.Template)
}

func TestExecutionError(t *testing.T) {
	err := gperrors.NewExecutionError("push", []string{"push", "origin"}, 128, []string{"fatal: ", "no remote"}, nil)

	require.ErrorIs(t, err, gperrors.ErrExecutionFailed)
	assert.NotErrorIs(t, err, gperrors.ErrIllegalState)
	assert.Equal(t, "could not execute command push: errorcode = 128; fatal: no remote", err.Error())

	var execErr *gperrors.ExecutionError
	require.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &execErr)
	assert.Equal(t, 128, execErr.ExitCode)
}
