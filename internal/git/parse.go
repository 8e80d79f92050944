package git

import (
	"strings"

	"github.com/samber/lo"
)

// Text-shape parsers for git's human-readable output. Each function handles exactly
// one output format so that format drift between git versions stays local.

// branchMarkers prefix the checked-out branch ("*") and branches checked out in
// other worktrees ("+") in `git branch` output
const branchMarkers = "*+"

// ParseBranchList parses `git branch` output into branch names.
// Branch markers are stripped and whitespace trimmed.
func ParseBranchList(lines []string) []string {
	names := lo.Map(lines, func(line string, _ int) string {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, branchMarkers)
		return strings.TrimSpace(line)
	})
	return lo.Compact(names)
}

// ParseNameOnly parses `git diff --name-only` output into file names
func ParseNameOnly(lines []string) []string {
	names := lo.Map(lines, func(line string, _ int) string {
		return strings.TrimSpace(line)
	})
	return lo.Compact(names)
}
