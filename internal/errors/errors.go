// Package errors provides sentinel errors and custom error types for the gitprovider library.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors, one per failure kind
var (
	// ErrInvalidPath indicates that the repository path is missing or not a directory
	ErrInvalidPath = errors.New("invalid path")

	// ErrNotARepository indicates that the path has neither a .git directory nor a HEAD file
	ErrNotARepository = errors.New("not a repository")

	// ErrExecutionFailed indicates that git exited with a non-zero status
	ErrExecutionFailed = errors.New("execution failed")

	// ErrInvalidArgument indicates malformed caller input (empty message, empty pattern, ...)
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidURI indicates a clone source that is neither a remote URI nor a local directory
	ErrInvalidURI = errors.New("invalid uri")

	// ErrIllegalState indicates an operation that is not valid for the repository's current state
	ErrIllegalState = errors.New("illegal state")

	// ErrIOFailure indicates a filesystem write or removal that did not complete
	ErrIOFailure = errors.New("io failure")
)

// Context holds the values substituted into a message template
type Context map[string]any

// Interpolate replaces every {key} placeholder in message with the matching value from ctx.
// Placeholders without a value are left untouched.
func Interpolate(message string, ctx Context) string {
	if len(ctx) == 0 {
		return message
	}
	pairs := make([]string, 0, len(ctx)*2)
	for key, val := range ctx {
		pairs = append(pairs, "{"+key+"}", fmt.Sprint(val))
	}
	return strings.NewReplacer(pairs...).Replace(message)
}

// ProviderError is a failure of one of the error kinds above, carrying the message
// template, the substituted values and an optional lower-level cause.
type ProviderError struct {
	Kind     error
	Template string
	Context  Context
	Err      error
}

func (e *ProviderError) Error() string {
	msg := Interpolate(e.Template, e.Context)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is returns true if the target error is the error's kind
func (e *ProviderError) Is(target error) bool {
	return target == e.Kind
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// Value returns the context value stored under key, or nil
func (e *ProviderError) Value(key string) any {
	return e.Context[key]
}

func newProviderError(kind error, template string, ctx Context, cause error) *ProviderError {
	return &ProviderError{
		Kind:     kind,
		Template: template,
		Context:  ctx,
		Err:      cause,
	}
}

// NewInvalidPathError creates an error for a repository path that does not exist
func NewInvalidPathError(path string, cause error) *ProviderError {
	return newProviderError(ErrInvalidPath, "invalid repository path, {path} does not exist", Context{"path": path}, cause)
}

// NewNotARepositoryError creates an error for an existing directory that is not a git repository
func NewNotARepositoryError(path string) *ProviderError {
	return newProviderError(ErrNotARepository, "invalid repository path, {path} does not seem to be a git repo", Context{"path": path}, nil)
}

// NewInvalidArgumentError creates an error for malformed caller input
func NewInvalidArgumentError(template string, ctx Context) *ProviderError {
	return newProviderError(ErrInvalidArgument, template, ctx, nil)
}

// NewInvalidURIError creates an error for a clone source that cannot be used
func NewInvalidURIError(uri string) *ProviderError {
	return newProviderError(ErrInvalidURI, "invalid uri {uri} given", Context{"uri": uri}, nil)
}

// NewIllegalStateError creates an error for an operation that is not valid right now
func NewIllegalStateError(template string, ctx Context) *ProviderError {
	return newProviderError(ErrIllegalState, template, ctx, nil)
}

// NewIOFailureError creates an error for a failed filesystem operation
func NewIOFailureError(template string, ctx Context, cause error) *ProviderError {
	return newProviderError(ErrIOFailure, template, ctx, cause)
}

// ExecutionError represents a git invocation that exited with a non-zero status,
// or that could not be run at all (ExitCode is -1 in that case).
type ExecutionError struct {
	Verb     string
	Args     []string
	ExitCode int
	Output   []string
	Err      error
}

func (e *ExecutionError) Error() string {
	msg := Interpolate("could not execute command {command}: errorcode = {code}; {reason}", Context{
		"command": e.Verb,
		"code":    e.ExitCode,
		"reason":  strings.Join(e.Output, ""),
	})
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

// Is returns true if the target error is ErrExecutionFailed
func (e *ExecutionError) Is(target error) bool {
	return target == ErrExecutionFailed
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// NewExecutionError creates a new ExecutionError
func NewExecutionError(verb string, args []string, exitCode int, output []string, err error) *ExecutionError {
	return &ExecutionError{
		Verb:     verb,
		Args:     args,
		ExitCode: exitCode,
		Output:   output,
		Err:      err,
	}
}
