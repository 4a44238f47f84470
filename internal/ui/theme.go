package ui

import "github.com/charmbracelet/lipgloss"

// Theme holds all colours for the application.
// The dark palette is Catppuccin Mocha, the light one Latte.
type Theme struct {
	Bg            lipgloss.Color
	Surface       lipgloss.Color
	Border        lipgloss.Color
	BorderFocused lipgloss.Color

	Text        lipgloss.Color
	TextMuted   lipgloss.Color
	TextSubtle  lipgloss.Color
	TextInverse lipgloss.Color

	Primary lipgloss.Color
	Accent  lipgloss.Color

	Added     lipgloss.Color
	Modified  lipgloss.Color
	Deleted   lipgloss.Color
	Untracked lipgloss.Color

	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Info    lipgloss.Color

	BranchLocal lipgloss.Color
	BranchHead  lipgloss.Color

	// ChromaStyle names the matching syntax-highlighting style for
	// file previews.
	ChromaStyle string
}

// DarkTheme returns the default dark theme.
func DarkTheme() Theme {
	return Theme{
		Bg:            lipgloss.Color("#1e1e2e"),
		Surface:       lipgloss.Color("#282840"),
		Border:        lipgloss.Color("#3b3b5c"),
		BorderFocused: lipgloss.Color("#7c7cf0"),

		Text:        lipgloss.Color("#cdd6f4"),
		TextMuted:   lipgloss.Color("#9399b2"),
		TextSubtle:  lipgloss.Color("#6c7086"),
		TextInverse: lipgloss.Color("#1e1e2e"),

		Primary: lipgloss.Color("#89b4fa"),
		Accent:  lipgloss.Color("#f5c2e7"),

		Added:     lipgloss.Color("#a6e3a1"),
		Modified:  lipgloss.Color("#f9e2af"),
		Deleted:   lipgloss.Color("#f38ba8"),
		Untracked: lipgloss.Color("#9399b2"),

		Success: lipgloss.Color("#a6e3a1"),
		Warning: lipgloss.Color("#f9e2af"),
		Error:   lipgloss.Color("#f38ba8"),
		Info:    lipgloss.Color("#89b4fa"),

		BranchLocal: lipgloss.Color("#a6e3a1"),
		BranchHead:  lipgloss.Color("#f9e2af"),

		ChromaStyle: "catppuccin-mocha",
	}
}

// LightTheme returns the light theme.
func LightTheme() Theme {
	return Theme{
		Bg:            lipgloss.Color("#eff1f5"),
		Surface:       lipgloss.Color("#e6e9ef"),
		Border:        lipgloss.Color("#bcc0cc"),
		BorderFocused: lipgloss.Color("#7287fd"),

		Text:        lipgloss.Color("#4c4f69"),
		TextMuted:   lipgloss.Color("#6c6f85"),
		TextSubtle:  lipgloss.Color("#8c8fa1"),
		TextInverse: lipgloss.Color("#eff1f5"),

		Primary: lipgloss.Color("#1e66f5"),
		Accent:  lipgloss.Color("#ea76cb"),

		Added:     lipgloss.Color("#40a02b"),
		Modified:  lipgloss.Color("#df8e1d"),
		Deleted:   lipgloss.Color("#d20f39"),
		Untracked: lipgloss.Color("#6c6f85"),

		Success: lipgloss.Color("#40a02b"),
		Warning: lipgloss.Color("#df8e1d"),
		Error:   lipgloss.Color("#d20f39"),
		Info:    lipgloss.Color("#1e66f5"),

		BranchLocal: lipgloss.Color("#40a02b"),
		BranchHead:  lipgloss.Color("#df8e1d"),

		ChromaStyle: "catppuccin-latte",
	}
}

// ThemeByName resolves a configured theme name, defaulting to dark.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles holds pre-computed lipgloss styles derived from a Theme.
type Styles struct {
	Theme Theme

	// Layout
	StatusBar lipgloss.Style
	HelpBar   lipgloss.Style

	// Status list
	SectionHeader lipgloss.Style
	ListItem      lipgloss.Style
	ListSelected  lipgloss.Style
	ListDimmed    lipgloss.Style
	PreviewMarker lipgloss.Style
	PreviewText   lipgloss.Style

	// Text
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Bold    lipgloss.Style
	KeyBind lipgloss.Style
	KeyDesc lipgloss.Style

	// Branches
	BranchCurrent lipgloss.Style
	BranchName    lipgloss.Style

	// Transient messages
	ErrorText lipgloss.Style
	InfoText  lipgloss.Style
}

// NewStyles builds all styles from the given theme.
func NewStyles(t Theme) Styles {
	s := Styles{Theme: t}

	s.StatusBar = lipgloss.NewStyle().Foreground(t.TextMuted).Background(t.Surface).Padding(0, 1)
	s.HelpBar = lipgloss.NewStyle().Foreground(t.TextSubtle).Padding(0, 1)

	s.SectionHeader = lipgloss.NewStyle().Foreground(t.Modified).Bold(true)
	s.ListItem = lipgloss.NewStyle().Foreground(t.Text)
	// The cursor row inverts the whole line, glyph included.
	s.ListSelected = lipgloss.NewStyle().Reverse(true)
	s.ListDimmed = lipgloss.NewStyle().Foreground(t.TextSubtle)
	s.PreviewMarker = lipgloss.NewStyle().Foreground(t.Added)
	s.PreviewText = lipgloss.NewStyle().Foreground(t.Added)

	s.Title = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	s.Muted = lipgloss.NewStyle().Foreground(t.TextMuted)
	s.Bold = lipgloss.NewStyle().Foreground(t.Text).Bold(true)
	s.KeyBind = lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	s.KeyDesc = lipgloss.NewStyle().Foreground(t.TextMuted)

	s.BranchCurrent = lipgloss.NewStyle().Foreground(t.BranchHead).Bold(true)
	s.BranchName = lipgloss.NewStyle().Foreground(t.Text)

	s.ErrorText = lipgloss.NewStyle().Foreground(t.Error).Bold(true)
	s.InfoText = lipgloss.NewStyle().Foreground(t.Info)

	return s
}

// DefaultStyles returns styles using the dark theme.
func DefaultStyles() Styles {
	return NewStyles(DarkTheme())
}
