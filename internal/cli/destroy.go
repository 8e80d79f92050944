package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"gitprovider.dev/gitprovider/internal/output"
	"gitprovider.dev/gitprovider/internal/utils"
)

// newDestroyCmd creates the destroy command
func newDestroyCmd(opts *rootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "destroy",
		Short: "Delete the repository directory and everything in it",
		Long: `Delete the repository directory and everything in it. There is no undo.

Asks for confirmation unless --yes is given; without a terminal --yes is required.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx := opts.context()
			repo := ctx.Repository()

			if !yes {
				confirmed, err := utils.Confirm(fmt.Sprintf("Delete %s and all of its contents?", repo.Path()))
				if errors.Is(err, utils.ErrNotInteractive) {
					return fmt.Errorf("refusing to destroy %s: pass --yes to confirm", repo.Path())
				}
				if err != nil {
					return err
				}
				if !confirmed {
					ctx.Splog.Info("Aborted")
					return nil
				}
			}

			if err := repo.Destroy(); err != nil {
				return err
			}
			ctx.Splog.Info("%s Destroyed %s", output.ColorSuccess("✓"), output.ColorPath(repo.Path()))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}
