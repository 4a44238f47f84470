package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CptPotato/gex/internal/common"
	"github.com/CptPotato/gex/internal/git"
	"github.com/CptPotato/gex/internal/status"
	"github.com/CptPotato/gex/internal/ui"
	"github.com/CptPotato/gex/internal/ui/components"
)

// Expansion glyphs shown in front of every entry.
const (
	glyphCollapsed = "›"
	glyphExpanded  = "⌄"
)

// ── StatusView ──────────────────────────────────────────────────────────────

// StatusView is the primary view: the working-tree sections in listing
// order under a single cursor, with inline previews for expanded
// entries.
//
//	On branch main
//
//	Untracked files:
//	› a.txt
//	⌄ b.txt
//	+ first line of b.txt
//	+ second line of b.txt
//
//	Staged for commit:
//	› c.txt
type StatusView struct {
	gitSvc    git.Service
	styles    ui.Styles
	width     int
	height    int
	snap      *status.Snapshot
	showIcons bool

	// previewFn loads the preview for an expanded entry at render
	// time, so the preview always reflects the file on disk right
	// now. Injected so tests can render without touching the disk.
	previewFn func(rel string) []string
}

// ── Constructor ─────────────────────────────────────────────────────────────

func NewStatusView(gitSvc git.Service, styles ui.Styles, showIcons bool, previewFn func(rel string) []string) *StatusView {
	if previewFn == nil {
		previewFn = func(string) []string { return nil }
	}
	return &StatusView{
		gitSvc:    gitSvc,
		styles:    styles,
		snap:      &status.Snapshot{},
		showIcons: showIcons,
		previewFn: previewFn,
	}
}

// ── Init / SetSize ──────────────────────────────────────────────────────────

func (v *StatusView) Init() tea.Cmd { return v.refresh() }

func (v *StatusView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// Snapshot exposes the current model, for the status bar counters.
func (v *StatusView) Snapshot() *status.Snapshot { return v.snap }

// ── Messages ────────────────────────────────────────────────────────────────

type snapshotMsg struct{ snap *status.Snapshot }

// refresh re-reads and re-parses the status report. Gateway and parse
// failures become transient messages; the last good snapshot stays on
// screen.
func (v *StatusView) refresh() tea.Cmd {
	return func() tea.Msg {
		text, err := v.gitSvc.StatusText()
		if err != nil {
			return common.ErrMsg{Err: err}
		}
		snap, err := status.Parse(text)
		if err != nil {
			return common.ErrMsg{Err: err}
		}
		return snapshotMsg{snap: snap}
	}
}

// ── Update ──────────────────────────────────────────────────────────────────

func (v *StatusView) Update(msg tea.Msg) (common.View, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		// Wholesale replacement: the cursor returns to the top and
		// every preview collapses.
		v.snap = msg.snap
		return v, nil

	case common.RefreshMsg:
		return v, v.refresh()

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			v.snap.MoveUp()
		case tea.MouseButtonWheelDown:
			v.snap.MoveDown()
		}
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			v.snap.MoveDown()
		case "k", "up":
			v.snap.MoveUp()
		case "g", "home":
			v.snap.Cursor = 0
		case "G", "end":
			if n := v.snap.Len(); n > 0 {
				v.snap.Cursor = n - 1
			}
		case "tab":
			v.snap.ToggleExpand()
		case "S":
			return v, v.stageAll()
		case "r":
			return v, v.refresh()
		}
	}
	return v, nil
}

// stageAll stages the whole working tree, then refreshes. On failure
// the snapshot is left untouched so nothing on screen is lost.
func (v *StatusView) stageAll() tea.Cmd {
	return func() tea.Msg {
		if err := v.gitSvc.StageAll(); err != nil {
			return common.ErrMsg{Err: err}
		}
		return common.CmdRefresh()
	}
}

// ── View ────────────────────────────────────────────────────────────────────

func (v *StatusView) View() string {
	title := v.styles.Title.Render("On branch " + v.snap.Branch)

	listH := v.height - 2 // title row and the blank line under it
	if listH < 1 {
		listH = 1
	}
	listW := v.width - 1 // scrollbar column
	if listW < 10 {
		listW = v.width
	}

	if v.snap.Len() == 0 {
		empty := v.styles.Muted.Render("✓ working tree clean")
		return lipgloss.JoinVertical(lipgloss.Left,
			title, "", ui.PlaceCentre(v.width, listH, empty))
	}

	rows, cursorRow := v.renderRows(listW)

	// Centre the cursor row when the list does not fit.
	scroll := 0
	if len(rows) > listH {
		scroll = cursorRow - listH/2
		if scroll < 0 {
			scroll = 0
		}
		if scroll+listH > len(rows) {
			scroll = len(rows) - listH
		}
	}
	end := scroll + listH
	if end > len(rows) {
		end = len(rows)
	}

	list := lipgloss.NewStyle().Width(listW).Height(listH).
		Render(strings.Join(rows[scroll:end], "\n"))
	if bar := components.RenderScrollbar(v.styles, listH, len(rows), listH, scroll); bar != "" {
		list = lipgloss.JoinHorizontal(lipgloss.Top, list, bar)
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, "", list)
}

// renderRows flattens the snapshot into display rows: a header per
// non-empty section, one row per entry, and the preview lines of
// expanded entries. Returns the rows fully styled along with the index
// of the cursor row. The snapshot itself is never modified here.
func (v *StatusView) renderRows(listW int) (rows []string, cursorRow int) {
	s := v.styles
	sections := [3][]status.Entry{v.snap.Untracked, v.snap.Unstaged, v.snap.Staged}

	index := 0
	for si, entries := range sections {
		if len(entries) == 0 {
			continue
		}
		if len(rows) > 0 {
			rows = append(rows, "")
		}
		rows = append(rows, s.SectionHeader.Render(status.Section(si).Title()+":"))

		for i := range entries {
			e := &entries[i]
			glyph := glyphCollapsed
			if e.Expanded {
				glyph = glyphExpanded
			}
			label := glyph + " " + v.entryLabel(e.Path)

			if index == v.snap.Cursor {
				cursorRow = len(rows)
				// The whole row inverts, padding included.
				rows = append(rows, s.ListSelected.Width(listW).Render(ui.Truncate(label, listW)))
			} else {
				rows = append(rows, s.ListItem.Render(ui.Truncate(label, listW)))
			}

			if e.Expanded {
				for _, line := range v.previewFn(e.Path) {
					content := line
					if !strings.Contains(line, "\x1b") {
						content = s.PreviewText.Render(line)
					}
					rows = append(rows, ui.TruncateANSI(s.PreviewMarker.Render("+ ")+content, listW))
				}
			}
			index++
		}
	}
	return rows, cursorRow
}

// entryLabel prefixes the path with a filetype icon when enabled.
func (v *StatusView) entryLabel(path string) string {
	if !v.showIcons {
		return path
	}
	if icon := deviconForName(path); icon != "" {
		return icon + " " + path
	}
	return path
}

// ── Help ────────────────────────────────────────────────────────────────────

func (v *StatusView) ShortHelp() []components.HelpEntry {
	return []components.HelpEntry{
		{Key: "j/k", Desc: "Move cursor"},
		{Key: "tab", Desc: "Expand / collapse preview"},
		{Key: "S", Desc: "Stage everything"},
		{Key: "g / G", Desc: "Top / bottom"},
	}
}

func (v *StatusView) InputCapture() bool { return false }
