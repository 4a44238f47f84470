package config

// KeyBindings defines the mapping of actions to keys.
// Kept separate so it can later be made configurable via config file.
type KeyBindings struct {
	Quit      string
	Help      string
	Up        string
	Down      string
	Expand    string
	StageAll  string
	Refresh   string
	Branches  string
	NewBranch string
	Select    string
	Back      string
}

// DefaultKeyBindings returns the default key bindings.
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Quit:      "q",
		Help:      "?",
		Up:        "k",
		Down:      "j",
		Expand:    "tab",
		StageAll:  "S",
		Refresh:   "r",
		Branches:  "b",
		NewBranch: "n",
		Select:    "enter",
		Back:      "esc",
	}
}
