package cli

import (
	"github.com/spf13/cobra"
)

// newRmCmd creates the rm command
func newRmCmd(opts *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "rm <pattern>",
		Short: "Remove files matching a pathspec",
		Long: `Remove files matching a pathspec.

A file that is currently staged is only removed from the index and kept on disk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := opts.context()
			if err := ctx.Repository().Remove(cmd.Context(), args[0], force); err != nil {
				return err
			}
			ctx.Splog.Debug("Removed %s", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Remove even when the file has local modifications")

	return cmd
}
