package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/CptPotato/gex/internal/config"
)

// KeyMap defines the global keybindings. Only the first block is
// matched by the app itself; the rest belong to the views and are
// listed here so the help overlay can describe them.
type KeyMap struct {
	Quit     key.Binding
	Help     key.Binding
	Refresh  key.Binding
	Branches key.Binding
	Back     key.Binding

	Up        key.Binding
	Down      key.Binding
	Expand    key.Binding
	StageAll  key.Binding
	NewBranch key.Binding
	Select    key.Binding
}

// DefaultKeyMap builds the global keymap from the canonical key table.
func DefaultKeyMap() KeyMap {
	kb := config.DefaultKeyBindings()
	return KeyMap{
		Quit:     key.NewBinding(key.WithKeys(kb.Quit, "ctrl+c"), key.WithHelp(kb.Quit, "quit")),
		Help:     key.NewBinding(key.WithKeys(kb.Help), key.WithHelp(kb.Help, "help")),
		Refresh:  key.NewBinding(key.WithKeys(kb.Refresh, "ctrl+r"), key.WithHelp(kb.Refresh, "refresh")),
		Branches: key.NewBinding(key.WithKeys(kb.Branches), key.WithHelp(kb.Branches, "branches")),
		Back:     key.NewBinding(key.WithKeys(kb.Back), key.WithHelp(kb.Back, "back")),

		Up:        key.NewBinding(key.WithKeys("up", kb.Up), key.WithHelp(kb.Up+"/↑", "up")),
		Down:      key.NewBinding(key.WithKeys("down", kb.Down), key.WithHelp(kb.Down+"/↓", "down")),
		Expand:    key.NewBinding(key.WithKeys(kb.Expand), key.WithHelp(kb.Expand, "preview")),
		StageAll:  key.NewBinding(key.WithKeys(kb.StageAll), key.WithHelp(kb.StageAll, "stage all")),
		NewBranch: key.NewBinding(key.WithKeys(kb.NewBranch), key.WithHelp(kb.NewBranch, "new branch")),
		Select:    key.NewBinding(key.WithKeys(kb.Select), key.WithHelp(kb.Select, "confirm")),
	}
}
