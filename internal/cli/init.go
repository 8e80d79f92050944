package cli

import (
	"github.com/spf13/cobra"

	"gitprovider.dev/gitprovider/internal/output"
	"gitprovider.dev/gitprovider/internal/provider"
)

// newInitCmd creates the init command
func newInitCmd(opts *rootOptions) *cobra.Command {
	var (
		bare   bool
		shared bool
		name   string
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a new repository at the repository path",
		Long: `Create a new repository at the repository path.

A bare repository may carry a project name, written to its description file.
--shared makes the repository group-writable (0775) instead of private (0700).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := opts.context()
			repo := ctx.Repository(provider.WithProjectName(name))
			if err := repo.Create(cmd.Context(), bare, shared); err != nil {
				return err
			}

			kind := "repository"
			if bare {
				kind = "bare repository"
			}
			ctx.Splog.Info("%s Initialized %s at %s", output.ColorSuccess("✓"), kind, output.ColorPath(repo.Path()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&bare, "bare", false, "Create a bare repository without a working tree")
	cmd.Flags().BoolVar(&shared, "shared", false, "Make the repository group-writable")
	cmd.Flags().StringVar(&name, "name", "", "Project name written to the description file (bare only)")

	return cmd
}
