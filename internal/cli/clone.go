package cli

import (
	"github.com/spf13/cobra"

	"gitprovider.dev/gitprovider/internal/output"
)

// newCloneCmd creates the clone command
func newCloneCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "clone <uri>",
		Short: "Clone a remote or local repository into the repository path",
		Long: `Clone a remote or local repository into the repository path.

http(s), git and ssh URIs are passed to git unchanged. A local directory is
turned into a file:// URI. The target directory is created when missing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := opts.context()
			repo := ctx.Repository()
			if err := repo.CloneFrom(cmd.Context(), args[0]); err != nil {
				return err
			}

			ctx.Splog.Info("%s Cloned %s into %s", output.ColorSuccess("✓"), args[0], output.ColorPath(repo.Path()))
			return nil
		},
	}
}
