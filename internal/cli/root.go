// Package cli implements the gitprovider command tree.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gitprovider.dev/gitprovider/internal/runtime"
)

// ExitCodeError ends the process with Code and no further message
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode returns the process exit code for err: 0 for nil, the carried code for
// an ExitCodeError and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *ExitCodeError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}

// rootOptions holds the persistent flags and the context built from them
type rootOptions struct {
	repoPath   string
	configPath string
	debug      bool

	ctx *runtime.Context
}

// context returns the runtime context prepared by PersistentPreRunE
func (o *rootOptions) context() *runtime.Context {
	return o.ctx
}

// close releases the runtime context; safe to call more than once
func (o *rootOptions) close() error {
	if o.ctx == nil {
		return nil
	}
	err := o.ctx.Close()
	o.ctx = nil
	return err
}

// Execute runs the command tree with args from the process and always releases
// the runtime context, including when the command fails.
func Execute(ctx context.Context, version, commit, date string) error {
	rootCmd, opts := newRootCmd(version, commit, date)
	return execute(ctx, rootCmd, opts)
}

func execute(ctx context.Context, rootCmd *cobra.Command, opts *rootOptions) (err error) {
	defer func() {
		if closeErr := opts.close(); err == nil {
			err = closeErr
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd, _ := newRootCmd(version, commit, date)
	return rootCmd
}

func newRootCmd(version, commit, date string) (*cobra.Command, *rootOptions) {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "gitprovider",
		Short: "gitprovider drives git repositories through the git command line",
		Long: `gitprovider drives git repositories through the git command line.

It creates, clones, stages, commits, branches, pushes, pulls and destroys
repositories, validating the repository state before every git invocation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			ctx, err := runtime.Load(opts.configPath, opts.repoPath, opts.debug, cmd.OutOrStdout())
			if err != nil {
				return err
			}
			opts.ctx = ctx
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return opts.close()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.repoPath, "repo", "C", ".", "Path of the repository to operate on")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Config file (default ~/.gitprovider/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Print every git invocation")

	rootCmd.AddCommand(
		newInitCmd(opts),
		newCloneCmd(opts),
		newDescribeCmd(opts),
		newAuthorCmd(opts),
		newAddCmd(opts),
		newStagedCmd(opts),
		newCommitCmd(opts),
		newRmCmd(opts),
		newPushCmd(opts),
		newPullCmd(opts),
		newBranchCmd(opts),
		newHasBranchCmd(opts),
		newCheckoutCmd(opts),
		newEmptyCmd(opts),
		newDestroyCmd(opts),
		newLogCmd(opts),
		newVersionCmd(version, commit, date),
	)

	return rootCmd, opts
}
