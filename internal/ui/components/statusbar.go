package components

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CptPotato/gex/internal/ui"
)

// StatusBarData carries the info displayed in the bottom status bar.
type StatusBarData struct {
	Branch    string
	Ahead     int
	Behind    int
	Untracked int
	Unstaged  int
	Staged    int
	Message   string // transient info/error message
	IsError   bool
	RepoRoot  string
}

// total is the number of entries across all sections.
func (d StatusBarData) total() int {
	return d.Untracked + d.Unstaged + d.Staged
}

// RenderStatusBar renders the bottom status bar with clear visual
// sections separated by dim vertical bars.
//
// Wide (>= 60):   main  │  ↑2 ↓1  │  ● 2 untracked · 3 staged     gex
// Medium (40-59):  main  │  ↑2 ↓1  │  ● 5
// Narrow (< 40):   main  │  ● 5
func RenderStatusBar(styles ui.Styles, data StatusBarData, width int) string {
	t := styles.Theme

	sepStyle := lipgloss.NewStyle().Foreground(t.Border).Faint(true)
	sep := sepStyle.Render(" │ ")

	// ── Left sections ────────────────────────────────────────────

	// Branch.
	branchStyle := lipgloss.NewStyle().Foreground(t.BranchHead).Bold(true)
	branchSection := " " + branchStyle.Render(" "+data.Branch)

	// Sync (only if non-zero and terminal is wide enough).
	var syncSection string
	if width >= 40 && (data.Ahead > 0 || data.Behind > 0) {
		syncStyle := lipgloss.NewStyle().Foreground(t.Warning)
		var parts []string
		if data.Ahead > 0 {
			parts = append(parts, fmt.Sprintf("↑%d", data.Ahead))
		}
		if data.Behind > 0 {
			parts = append(parts, fmt.Sprintf("↓%d", data.Behind))
		}
		syncSection = sep + syncStyle.Render(strings.Join(parts, " "))
	}

	// Working-tree state.
	var stateSection string
	if data.total() == 0 {
		stateSection = sep + lipgloss.NewStyle().Foreground(t.Success).Render("✓ clean")
	} else if width >= 60 {
		var parts []string
		if data.Untracked > 0 {
			parts = append(parts, fmt.Sprintf("%d untracked", data.Untracked))
		}
		if data.Unstaged > 0 {
			parts = append(parts, fmt.Sprintf("%d changed", data.Unstaged))
		}
		if data.Staged > 0 {
			parts = append(parts, fmt.Sprintf("%d staged", data.Staged))
		}
		counts := lipgloss.NewStyle().Foreground(t.Modified).Render("● " + strings.Join(parts, " · "))
		stateSection = sep + counts
	} else {
		stateSection = sep + lipgloss.NewStyle().Foreground(t.Modified).Render(fmt.Sprintf("● %d", data.total()))
	}

	left := branchSection + syncSection + stateSection

	// ── Right section ────────────────────────────────────────────

	var right string
	if data.Message != "" {
		st := styles.InfoText
		if data.IsError {
			st = styles.ErrorText
		}
		right = st.Render(data.Message) + " "
	} else if width >= 60 && data.RepoRoot != "" {
		repoName := filepath.Base(data.RepoRoot)
		right = lipgloss.NewStyle().Foreground(t.TextSubtle).Render(repoName) + " "
	}

	// ── Assemble ─────────────────────────────────────────────────

	if lipgloss.Width(left)+lipgloss.Width(right) > width {
		right = "" // drop right side if no room
	}
	content := ui.PadRight(left, width-lipgloss.Width(right)) + right

	return styles.StatusBar.Width(width).Render(content)
}
