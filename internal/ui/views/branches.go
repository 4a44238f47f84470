package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CptPotato/gex/internal/common"
	"github.com/CptPotato/gex/internal/git"
	"github.com/CptPotato/gex/internal/ui"
	"github.com/CptPotato/gex/internal/ui/components"
)

// BranchView lists local branches and switches between them.
type BranchView struct {
	gitSvc   git.Service
	styles   ui.Styles
	width    int
	height   int
	branches []git.Branch
	cursor   int

	// Input mode for naming a new branch.
	inputMode bool
	input     textinput.Model
}

type branchesMsg struct{ branches []git.Branch }

// checkoutDoneMsg reports a successful switch, so the view can both
// announce it and trigger a refresh.
type checkoutDoneMsg struct{ name string }

// NewBranchView creates a new BranchView.
func NewBranchView(gitSvc git.Service, styles ui.Styles) *BranchView {
	ti := textinput.New()
	ti.CharLimit = 100
	ti.Width = 40
	ti.Placeholder = "new-branch-name"
	return &BranchView{gitSvc: gitSvc, styles: styles, input: ti}
}

func (v *BranchView) Init() tea.Cmd { return v.refresh() }

func (v *BranchView) SetSize(w, h int) { v.width = w; v.height = h }

func (v *BranchView) refresh() tea.Cmd {
	return func() tea.Msg {
		branches, err := v.gitSvc.Branches()
		if err != nil {
			return common.ErrMsg{Err: err}
		}
		return branchesMsg{branches: branches}
	}
}

func (v *BranchView) Update(msg tea.Msg) (common.View, tea.Cmd) {
	switch msg := msg.(type) {
	case branchesMsg:
		v.branches = msg.branches
		if v.cursor >= len(v.branches) && len(v.branches) > 0 {
			v.cursor = len(v.branches) - 1
		}
		return v, nil

	case checkoutDoneMsg:
		return v, tea.Batch(common.CmdInfo("Switched to "+msg.name), common.CmdRefresh)

	case common.RefreshMsg:
		return v, v.refresh()

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			if v.cursor > 0 {
				v.cursor--
			}
		case tea.MouseButtonWheelDown:
			if v.cursor < len(v.branches)-1 {
				v.cursor++
			}
		}
		return v, nil

	case tea.KeyMsg:
		if v.inputMode {
			return v.updateInput(msg)
		}
		return v.updateNormal(msg)
	}
	return v, nil
}

func (v *BranchView) updateNormal(msg tea.KeyMsg) (common.View, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if v.cursor < len(v.branches)-1 {
			v.cursor++
		}
	case "k", "up":
		if v.cursor > 0 {
			v.cursor--
		}
	case "g", "home":
		v.cursor = 0
	case "G", "end":
		if len(v.branches) > 0 {
			v.cursor = len(v.branches) - 1
		}
	case "enter": // Switch
		if b, ok := v.currentBranch(); ok && !b.IsCurrent {
			return v, v.checkout(b.Name)
		}
	case "n": // New branch
		v.inputMode = true
		v.input.Reset()
		return v, v.input.Focus()
	}
	return v, nil
}

func (v *BranchView) updateInput(msg tea.KeyMsg) (common.View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		v.inputMode = false
		v.input.Blur()
		return v, nil
	case "enter":
		name := strings.TrimSpace(v.input.Value())
		v.inputMode = false
		v.input.Blur()
		if name == "" {
			return v, nil
		}
		return v, v.checkoutNew(name)
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *BranchView) checkout(name string) tea.Cmd {
	return func() tea.Msg {
		if err := v.gitSvc.Checkout(name); err != nil {
			return common.ErrMsg{Err: err}
		}
		return checkoutDoneMsg{name: name}
	}
}

func (v *BranchView) checkoutNew(name string) tea.Cmd {
	return func() tea.Msg {
		if err := v.gitSvc.CheckoutNew(name); err != nil {
			return common.ErrMsg{Err: err}
		}
		return checkoutDoneMsg{name: name}
	}
}

func (v *BranchView) View() string {
	if v.inputMode {
		return v.viewInput()
	}
	return v.viewList()
}

func (v *BranchView) viewList() string {
	if len(v.branches) == 0 {
		return ui.PlaceCentre(v.width, v.height, v.styles.Muted.Render("No branches found"))
	}

	listW := v.width
	if listW < 10 {
		listW = 10
	}

	var b strings.Builder
	b.WriteString(v.styles.Title.Render(fmt.Sprintf("Branches (%d)", len(v.branches))) + "\n\n")

	for i, br := range v.branches {
		line := v.renderBranchLine(br, i == v.cursor, listW)
		b.WriteString(line + "\n")
	}

	hints := ui.JoinHorizontal("  ",
		ui.RenderKeyValue(v.styles, "enter", "switch"),
		ui.RenderKeyValue(v.styles, "n", "new branch"),
	)
	b.WriteString("\n" + hints)
	return b.String()
}

func (v *BranchView) renderBranchLine(br git.Branch, selected bool, listW int) string {
	marker := "  "
	if br.IsCurrent {
		marker = "* "
	}
	if selected {
		return v.styles.ListSelected.Width(listW).Render(ui.Truncate(marker+br.Name, listW))
	}
	if br.IsCurrent {
		return v.styles.BranchCurrent.Render(ui.Truncate(marker+br.Name, listW))
	}
	return v.styles.BranchName.Render(ui.Truncate(marker+br.Name, listW))
}

func (v *BranchView) viewInput() string {
	title := v.styles.Title.Render("Create New Branch")
	hint := v.styles.Muted.Render("enter to confirm  esc to cancel")
	return lipgloss.JoinVertical(lipgloss.Left, title, "", v.input.View(), "", hint)
}

func (v *BranchView) currentBranch() (git.Branch, bool) {
	if v.cursor < 0 || v.cursor >= len(v.branches) {
		return git.Branch{}, false
	}
	return v.branches[v.cursor], true
}

func (v *BranchView) ShortHelp() []components.HelpEntry {
	return []components.HelpEntry{
		{Key: "enter", Desc: "Switch branch"},
		{Key: "n", Desc: "New branch"},
		{Key: "j/k", Desc: "Move cursor"},
	}
}

// InputCapture reports whether the branch-name input owns the
// keyboard, so the app stops treating letters as shortcuts.
func (v *BranchView) InputCapture() bool { return v.inputMode }
