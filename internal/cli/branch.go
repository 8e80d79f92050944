package cli

import (
	"github.com/spf13/cobra"

	"gitprovider.dev/gitprovider/internal/output"
)

// newBranchCmd creates the branch command
func newBranchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "branch <name>",
		Short: "Create a branch at the current commit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := opts.context()
			if err := ctx.Repository().CreateBranch(cmd.Context(), args[0]); err != nil {
				return err
			}
			ctx.Splog.Info("%s Created branch %s", output.ColorSuccess("✓"), output.ColorBranchName(args[0]))
			return nil
		},
	}
}

// newHasBranchCmd creates the has-branch command
func newHasBranchCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "has-branch <name>",
		Short: "Exit 0 when a local branch exists, 1 otherwise",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := opts.context()
			exists, err := ctx.Repository().HasBranch(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !exists {
				ctx.Splog.Debug("branch %s not found", args[0])
				return &ExitCodeError{Code: 1}
			}
			return nil
		},
	}
}
