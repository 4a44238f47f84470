package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CptPotato/gex/internal/ui"
)

// RenderScrollbar returns a vertical scrollbar track of the given
// height: a filled thumb proportional to the visible share of the
// content, positioned by the first visible line.
//
// Returns an empty string if all content fits (no scrolling needed).
func RenderScrollbar(styles ui.Styles, height, totalLines, visibleH, offset int) string {
	if totalLines <= visibleH || height < 1 {
		return ""
	}

	t := styles.Theme

	// Thumb size: proportional to visible/total, min 1 row.
	thumbSize := height * visibleH / totalLines
	if thumbSize < 1 {
		thumbSize = 1
	}
	if thumbSize > height {
		thumbSize = height
	}

	// Thumb position from the scroll offset, integer math only.
	maxOffset := totalLines - visibleH
	if offset < 0 {
		offset = 0
	}
	if offset > maxOffset {
		offset = maxOffset
	}
	thumbStart := (height - thumbSize) * offset / maxOffset

	thumb := lipgloss.NewStyle().Foreground(t.Primary).Render("█")
	track := lipgloss.NewStyle().Foreground(t.Border).Render("░")

	rows := make([]string, height)
	for i := range rows {
		if i >= thumbStart && i < thumbStart+thumbSize {
			rows[i] = thumb
		} else {
			rows[i] = track
		}
	}
	return strings.Join(rows, "\n")
}
