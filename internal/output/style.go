package output

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4dca7d"))
	branchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ccbf1"))
	hashStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f5c800"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#9f83e4"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

// ColorSuccess styles a completion marker
func ColorSuccess(text string) string {
	return successStyle.Render(text)
}

// ColorBranchName styles a branch name
func ColorBranchName(name string) string {
	return branchStyle.Render(name)
}

// ColorHash styles a commit hash
func ColorHash(hash string) string {
	return hashStyle.Render(hash)
}

// ColorPath styles a filesystem path or URI
func ColorPath(path string) string {
	return pathStyle.Render(path)
}

// ColorDim styles secondary text
func ColorDim(text string) string {
	return mutedStyle.Render(text)
}

// ShortHash abbreviates a commit hash to seven characters
func ShortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
