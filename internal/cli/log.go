package cli

import (
	"github.com/spf13/cobra"

	"gitprovider.dev/gitprovider/internal/output"
)

// newLogCmd creates the log command
func newLogCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "log [branch]",
		Short: "Show the last commit of a branch, or of HEAD",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := opts.context()

			branch := ""
			if len(args) > 0 {
				branch = args[0]
			}

			commit, err := ctx.Repository().LastCommit(branch)
			if err != nil {
				return err
			}

			ctx.Splog.Info("%s %s", output.ColorHash(commit.Hash), commit.Message)
			ctx.Splog.Info("Author: %s <%s>", commit.Author, commit.Email)
			ctx.Splog.Info("Date:   %s", output.ColorDim(commit.When.Format("Mon Jan 2 15:04:05 2006 -0700")))
			return nil
		},
	}
}
