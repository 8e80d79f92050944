package cli

import (
	"os"

	"github.com/spf13/cobra"

	"gitprovider.dev/gitprovider/internal/output"
	"gitprovider.dev/gitprovider/internal/utils"
)

// newCommitCmd creates the commit command
func newCommitCmd(opts *rootOptions) *cobra.Command {
	var message string

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Record the staged changes",
		Long: `Record the staged changes.

The message is taken from -m, or read from standard input when -m is omitted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if message == "" {
				piped, err := utils.ReadFromStdin(os.Stdin)
				if err != nil {
					return err
				}
				message = piped
			}

			ctx := opts.context()
			repo := ctx.Repository()
			if err := repo.Commit(cmd.Context(), message); err != nil {
				return err
			}

			if commit, err := repo.LastCommit(""); err == nil {
				ctx.Splog.Info("%s Committed %s %s", output.ColorSuccess("✓"), output.ColorHash(output.ShortHash(commit.Hash)), commit.Message)
			} else {
				ctx.Splog.Debug("could not read new commit: %v", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&message, "message", "m", "", "Commit message")

	return cmd
}
