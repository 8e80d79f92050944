package git_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gitprovider.dev/gitprovider/internal/git"
)

func TestParseBranchList(t *testing.T) {
	t.Run("strips the current branch marker", func(t *testing.T) {
		names := git.ParseBranchList([]string{"* master", "  v1.0", "feature/x"})
		require.Equal(t, []string{"master", "v1.0", "feature/x"}, names)
	})

	t.Run("strips the other worktree marker", func(t *testing.T) {
		names := git.ParseBranchList([]string{"+ linked", "* master"})
		require.Equal(t, []string{"linked", "master"}, names)
	})

	t.Run("returns empty for empty listing", func(t *testing.T) {
		require.Empty(t, git.ParseBranchList(nil))
		require.Empty(t, git.ParseBranchList([]string{"", "   "}))
	})

	t.Run("keeps names case-sensitive", func(t *testing.T) {
		names := git.ParseBranchList([]string{"Master"})
		require.NotContains(t, names, "master")
		require.Contains(t, names, "Master")
	})
}

func TestParseNameOnly(t *testing.T) {
	names := git.ParseNameOnly([]string{"README.md", "", " src/main.go "})
	require.Equal(t, []string{"README.md", "src/main.go"}, names)
}
