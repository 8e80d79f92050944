// Package git runs the git command-line tool.
//
// A Command is an ordered argument list that is built into an argv and handed to
// a Runner without any shell. The Runner reports the exit status and the merged
// stdout/stderr lines; Interpret turns that into trimmed Output or an
// ExecutionError, writing one debug record per invocation.
//
// This package is the only place where git processes are started.
package git
