package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

// newStagedCmd creates the staged command
func newStagedCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "staged <pattern>",
		Short: "Print whether any staged file matches a regular expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := opts.context()
			staged, err := ctx.Repository().IsStaged(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			ctx.Splog.Info("%s", strconv.FormatBool(staged))
			return nil
		},
	}
}
