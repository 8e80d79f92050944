package cli

import (
	"github.com/spf13/cobra"

	"gitprovider.dev/gitprovider/internal/output"
)

// newCheckoutCmd creates the checkout command
func newCheckoutCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "checkout [branch]",
		Aliases: []string{"co"},
		Short:   "Switch to a branch",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := opts.context()

			branch := ""
			if len(args) > 0 {
				branch = args[0]
			}

			if err := ctx.Repository().Checkout(cmd.Context(), branch); err != nil {
				return err
			}
			if branch != "" {
				ctx.Splog.Info("Checked out %s", output.ColorBranchName(branch))
			}
			return nil
		},
	}
}
