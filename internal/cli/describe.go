package cli

import (
	"github.com/spf13/cobra"
)

// newDescribeCmd creates the describe command
func newDescribeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe [name]",
		Short: "Set or show the project name of a bare repository",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ctx := opts.context()
			repo := ctx.Repository()

			if len(args) == 0 {
				description, err := repo.Description()
				if err != nil {
					return err
				}
				ctx.Splog.Info("%s", description)
				return nil
			}

			if err := repo.SetProjectName(args[0]); err != nil {
				return err
			}
			ctx.Splog.Info("Project name set to %s", args[0])
			return nil
		},
	}
}
