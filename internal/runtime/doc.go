// Package runtime provides the execution context for gitprovider commands.
//
// It encapsulates shared dependencies needed by commands, such as the loaded
// configuration, the logger and the repository path.
package runtime
