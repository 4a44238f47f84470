package app

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CptPotato/gex/internal/common"
	"github.com/CptPotato/gex/internal/config"
	"github.com/CptPotato/gex/internal/git"
	"github.com/CptPotato/gex/internal/ui"
	"github.com/CptPotato/gex/internal/ui/components"
	"github.com/CptPotato/gex/internal/ui/views"
)

// Model is the top-level Bubbletea model that routes input between the
// status and branch views and owns the bottom status bar.
type Model struct {
	git       git.Service
	cfg       *config.Config
	styles    ui.Styles
	keys      KeyMap
	width     int
	height    int
	activeTab common.TabID
	views     map[common.TabID]common.View
	showHelp  bool
	statusMsg string
	statusErr bool
	statusExp time.Time

	// statusView is the map entry for TabStatus, kept typed so the
	// status bar can read entry counts straight off the snapshot.
	statusView *views.StatusView

	// Cached status bar data — refreshed via tea.Cmd, never computed in View().
	barData components.StatusBarData

	// viewStale tracks which views need a re-init on next switch.
	viewStale map[common.TabID]bool
}

// statusBarMsg carries refreshed status bar data from a background command.
type statusBarMsg struct {
	data components.StatusBarData
}

// New creates the application model around the two views.
func New(gitSvc git.Service, cfg *config.Config, statusView *views.StatusView, branchView *views.BranchView) Model {
	return Model{
		git:       gitSvc,
		cfg:       cfg,
		styles:    ui.NewStyles(ui.ThemeByName(cfg.Theme)),
		keys:      DefaultKeyMap(),
		activeTab: common.TabStatus,
		views: map[common.TabID]common.View{
			common.TabStatus:   statusView,
			common.TabBranches: branchView,
		},
		statusView: statusView,
		barData:    components.StatusBarData{RepoRoot: gitSvc.RepoRoot()},
		viewStale:  make(map[common.TabID]bool),
	}
}

// Init initialises the active view and triggers the first status bar refresh.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.refreshStatusBar()}
	if v, ok := m.views[m.activeTab]; ok {
		if cmd := v.Init(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// refreshStatusBar runs git queries in the background and returns a statusBarMsg.
func (m Model) refreshStatusBar() tea.Cmd {
	svc := m.git
	return func() tea.Msg {
		data := components.StatusBarData{RepoRoot: svc.RepoRoot()}
		if head, err := svc.Head(); err == nil {
			data.Branch = head
		}
		data.Ahead, data.Behind, _ = svc.AheadBehind()
		return statusBarMsg{data: data}
	}
}

// Update processes messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		contentH := m.contentHeight()
		for _, v := range m.views {
			v.SetSize(m.width, contentH)
		}
		return m, nil

	case tea.MouseMsg:
		if v, ok := m.views[m.activeTab]; ok {
			updated, cmd := v.Update(msg)
			m.views[m.activeTab] = updated
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		// When a view is capturing text input (naming a branch), every
		// key belongs to it — except the interrupt.
		if v, ok := m.views[m.activeTab]; ok && v.InputCapture() {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			updated, cmd := v.Update(msg)
			m.views[m.activeTab] = updated
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
			return m, tea.Batch(cmds...)
		}

		// The help overlay swallows everything except its own toggles.
		if m.showHelp {
			if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Back) || key.Matches(msg, m.keys.Quit) {
				m.showHelp = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			return m, m.triggerRefresh()
		case key.Matches(msg, m.keys.Branches):
			if m.activeTab != common.TabBranches {
				return m, m.switchTo(common.TabBranches)
			}
			return m, nil
		case key.Matches(msg, m.keys.Back):
			if m.activeTab != common.TabStatus {
				return m, m.switchTo(common.TabStatus)
			}
			return m, nil
		}
		// Keys not handled globally are forwarded to the active view below.

	case statusBarMsg:
		m.barData = msg.data
		return m, nil

	case common.RefreshMsg:
		// Only refresh the ACTIVE view + status bar. Inactive views
		// reload when the user switches to them.
		if v, ok := m.views[m.activeTab]; ok {
			updated, cmd := v.Update(msg)
			m.views[m.activeTab] = updated
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		for id := range m.views {
			if id != m.activeTab {
				m.viewStale[id] = true
			}
		}
		cmds = append(cmds, m.refreshStatusBar())
		return m, tea.Batch(cmds...)

	case common.ErrMsg:
		m.statusMsg = msg.Err.Error()
		m.statusErr = true
		m.statusExp = time.Now().Add(m.errTimeout())
		return m, nil

	case common.InfoMsg:
		m.statusMsg = msg.Text
		m.statusErr = false
		m.statusExp = time.Now().Add(3 * time.Second)
		return m, nil

	case common.SwitchTabMsg:
		return m, m.switchTo(msg.Tab)
	}

	// Forward unhandled messages to the active view.
	if v, ok := m.views[m.activeTab]; ok {
		updated, cmd := v.Update(msg)
		m.views[m.activeTab] = updated
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

// View renders the entire UI. State arrives via messages; the only reads
// done on draw are the previews of expanded entries.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if m.showHelp {
		sections := components.GlobalHelpEntries()
		tabName := ""
		for _, t := range common.AllTabs {
			if t.ID == m.activeTab {
				tabName = t.Name
				break
			}
		}
		if v, ok := m.views[m.activeTab]; ok && tabName != "" {
			sections[tabName] = v.ShortHelp()
		}
		return components.RenderHelp(m.styles, "Keyboard Shortcuts", sections, m.width, m.height)
	}

	content := ""
	if v, ok := m.views[m.activeTab]; ok {
		content = v.View()
	}
	content = lipgloss.NewStyle().Width(m.width).Height(m.contentHeight()).Render(content)

	barData := m.barData
	snap := m.statusView.Snapshot()
	barData.Untracked = len(snap.Untracked)
	barData.Unstaged = len(snap.Unstaged)
	barData.Staged = len(snap.Staged)
	if m.statusMsg != "" && time.Now().Before(m.statusExp) {
		barData.Message = m.statusMsg
		barData.IsError = m.statusErr
	}
	statusBar := components.RenderStatusBar(m.styles, barData, m.width)

	return lipgloss.JoinVertical(lipgloss.Left, content, statusBar)
}

func (m Model) contentHeight() int {
	h := m.height - 1 // status bar
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) errTimeout() time.Duration {
	secs := m.cfg.MessageTimeoutSeconds
	if secs <= 0 {
		secs = 5
	}
	return time.Duration(secs) * time.Second
}

// switchTo changes the active view and re-initialises it when stale.
func (m *Model) switchTo(tab common.TabID) tea.Cmd {
	m.activeTab = tab
	delete(m.viewStale, tab)
	return m.initActiveView()
}

// initActiveView calls Init on the current view to load its data.
func (m Model) initActiveView() tea.Cmd {
	if v, ok := m.views[m.activeTab]; ok {
		return v.Init()
	}
	return nil
}

// triggerRefresh refreshes the active view and the status bar.
func (m Model) triggerRefresh() tea.Cmd {
	var cmds []tea.Cmd
	if v, ok := m.views[m.activeTab]; ok {
		updated, cmd := v.Update(common.RefreshMsg{})
		m.views[m.activeTab] = updated
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	cmds = append(cmds, m.refreshStatusBar())
	return tea.Batch(cmds...)
}
