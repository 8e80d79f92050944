package cli

import (
	"github.com/spf13/cobra"
)

// newAddCmd creates the add command
func newAddCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <pattern>",
		Short: "Stage files matching a pathspec",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := opts.context()
			if err := ctx.Repository().AddToIndex(cmd.Context(), args[0]); err != nil {
				return err
			}
			ctx.Splog.Debug("Staged %s", args[0])
			return nil
		},
	}
}
