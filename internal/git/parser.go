package git

import "strings"

// ── Branch parsing ──────────────────────────────────────────────────────────

// ParseBranches parses plain `git branch` output. Each line carries a
// two-column marker prefix ("* " for the checked-out branch, spaces
// otherwise) followed by the name. Order is preserved as git printed it.
func ParseBranches(out string) []Branch {
	if len(out) == 0 {
		return nil
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	branches := make([]Branch, 0, len(lines))
	for _, line := range lines {
		if len(line) < 3 {
			continue
		}
		branches = append(branches, Branch{
			Name:      line[2:],
			IsCurrent: line[0] == '*',
		})
	}
	return branches
}
