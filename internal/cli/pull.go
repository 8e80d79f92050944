package cli

import (
	"github.com/spf13/cobra"

	"gitprovider.dev/gitprovider/internal/output"
)

// newPullCmd creates the pull command
func newPullCmd(opts *rootOptions) *cobra.Command {
	var remote string

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Pull all changes from a remote",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := opts.context()
			if remote == "" {
				remote = ctx.Config.Remote
			}

			if err := ctx.Repository().Pull(cmd.Context(), remote); err != nil {
				return err
			}
			ctx.Splog.Info("%s Pulled from %s", output.ColorSuccess("✓"), remote)
			return nil
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "", "Remote to pull from")

	return cmd
}
