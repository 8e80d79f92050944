package cli

import (
	"github.com/spf13/cobra"

	"gitprovider.dev/gitprovider/internal/output"
)

// newPushCmd creates the push command
func newPushCmd(opts *rootOptions) *cobra.Command {
	var remote string

	cmd := &cobra.Command{
		Use:   "push [branch]",
		Short: "Push committed changes to a remote",
		Long: `Push committed changes to a remote.

The branch defaults to the configured branch and the remote to the configured
remote. Pushing fails until something has been committed.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := opts.context()

			branch := ctx.Config.Branch
			if len(args) > 0 {
				branch = args[0]
			}
			if remote == "" {
				remote = ctx.Config.Remote
			}

			if err := ctx.Repository().Push(cmd.Context(), branch, remote); err != nil {
				return err
			}
			ctx.Splog.Info("%s Pushed %s to %s", output.ColorSuccess("✓"), output.ColorBranchName(branch), remote)
			return nil
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "Remote to push to")

	return cmd
}
