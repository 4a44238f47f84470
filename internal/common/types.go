package common

import (
	"github.com/CptPotato/gex/internal/ui/components"
	tea "github.com/charmbracelet/bubbletea"
)

// ── Tab identifiers ─────────────────────────────────────────────────────────

// TabID identifies which view is active.
type TabID int

const (
	TabStatus TabID = iota
	TabBranches
)

// TabMeta describes a tab for display purposes.
type TabMeta struct {
	ID       TabID
	Name     string // Display name shown in the status bar.
	Shortcut string // Mnemonic shortcut hint (e.g. "b").
}

// AllTabs is the ordered list of views reachable from the top level.
var AllTabs = []TabMeta{
	{TabStatus, "Status", "s"},
	{TabBranches, "Branches", "b"},
}

// ── Custom messages ─────────────────────────────────────────────────────────

// RefreshMsg signals views to reload data.
type RefreshMsg struct{}

// ErrMsg carries an error to be displayed.
type ErrMsg struct{ Err error }

// InfoMsg carries an informational message.
type InfoMsg struct{ Text string }

// SwitchTabMsg requests a view switch.
type SwitchTabMsg struct{ Tab TabID }

// ToggleHelpMsg toggles the help overlay.
type ToggleHelpMsg struct{}

// CmdRefresh returns a RefreshMsg (use as return from tea.Cmd).
func CmdRefresh() tea.Msg { return RefreshMsg{} }

// CmdErr creates a tea.Cmd that sends an ErrMsg.
func CmdErr(err error) tea.Cmd {
	return func() tea.Msg { return ErrMsg{Err: err} }
}

// CmdInfo creates a tea.Cmd that sends an InfoMsg.
func CmdInfo(text string) tea.Cmd {
	return func() tea.Msg { return InfoMsg{Text: text} }
}

// ── View interface ──────────────────────────────────────────────────────────

// View is the interface every top-level view must implement.
type View interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	View() string
	SetSize(width, height int)
	ShortHelp() []components.HelpEntry

	// InputCapture returns true when the view is in a text-input mode
	// (e.g. naming a new branch) and wants to capture letters and
	// arrow keys instead of letting the app treat them as shortcuts.
	InputCapture() bool
}
