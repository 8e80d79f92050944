package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

// newEmptyCmd creates the empty command
func newEmptyCmd(opts *rootOptions) *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "empty",
		Short: "Print whether the working tree holds nothing but the filtered entry",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := opts.context()
			empty, err := ctx.Repository().IsEmpty(filter)
			if err != nil {
				return err
			}
			ctx.Splog.Info("%s", strconv.FormatBool(empty))
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", ".git", "Entry name ignored when checking emptiness")

	return cmd
}
