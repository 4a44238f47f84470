package components

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CptPotato/gex/internal/ui"
)

func TestRenderScrollbarEmptyWhenContentFits(t *testing.T) {
	assert.Empty(t, RenderScrollbar(ui.DefaultStyles(), 20, 10, 20, 0))
	assert.Empty(t, RenderScrollbar(ui.DefaultStyles(), 20, 20, 20, 0))
}

func TestRenderScrollbarThumbTracksOffset(t *testing.T) {
	styles := ui.DefaultStyles()

	top := strings.Split(RenderScrollbar(styles, 10, 100, 10, 0), "\n")
	require.Len(t, top, 10)
	assert.Contains(t, top[0], "█")
	assert.Contains(t, top[9], "░")

	bottom := strings.Split(RenderScrollbar(styles, 10, 100, 10, 90), "\n")
	require.Len(t, bottom, 10)
	assert.Contains(t, bottom[9], "█")
	assert.Contains(t, bottom[0], "░")
}

func TestRenderScrollbarClampsOffset(t *testing.T) {
	styles := ui.DefaultStyles()

	over := RenderScrollbar(styles, 10, 100, 10, 500)
	atEnd := RenderScrollbar(styles, 10, 100, 10, 90)
	assert.Equal(t, atEnd, over)

	under := RenderScrollbar(styles, 10, 100, 10, -3)
	atStart := RenderScrollbar(styles, 10, 100, 10, 0)
	assert.Equal(t, atStart, under)
}

func TestRenderScrollbarMinimumThumb(t *testing.T) {
	rows := strings.Split(RenderScrollbar(ui.DefaultStyles(), 5, 10000, 5, 0), "\n")
	require.Len(t, rows, 5)

	thumbRows := 0
	for _, r := range rows {
		if strings.Contains(r, "█") {
			thumbRows++
		}
	}
	assert.Equal(t, 1, thumbRows)
}
