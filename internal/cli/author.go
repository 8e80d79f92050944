package cli

import (
	"github.com/spf13/cobra"
)

// newAuthorCmd creates the author command
func newAuthorCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "author <name> <email>",
		Short: "Set the commit author for this repository",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := opts.context()
			if err := ctx.Repository().SetAuthor(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			ctx.Splog.Info("Author set to %s <%s>", args[0], args[1])
			return nil
		},
	}
}
