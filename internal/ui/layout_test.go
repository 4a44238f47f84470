package ui

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{"short stays", "abc", 10, "abc"},
		{"exact stays", "abcde", 5, "abcde"},
		{"long gets ellipsis", "abcdef", 5, "abcd…"},
		{"width one", "abcdef", 1, "…"},
		{"multibyte runes", "héllo wörld", 6, "héllo…"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.in, tt.maxLen))
		})
	}
}

func TestTruncateANSIKeepsStyledPrefix(t *testing.T) {
	styled := "\x1b[32mgreen text here\x1b[0m"
	out := TruncateANSI(styled, 7)
	assert.LessOrEqual(t, lipgloss.Width(out), 7)
	assert.Contains(t, out, "…")

	assert.Equal(t, "", TruncateANSI(styled, 0))
	assert.Equal(t, styled, TruncateANSI(styled, 80))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "abcdef", PadRight("abcdef", 3))
}

func TestJoinHorizontalSkipsEmpty(t *testing.T) {
	assert.Equal(t, "a | b", JoinHorizontal(" | ", "a", "", "b"))
	assert.Equal(t, "", JoinHorizontal(" | "))
}

func TestThemeByName(t *testing.T) {
	assert.Equal(t, LightTheme(), ThemeByName("light"))
	assert.Equal(t, DarkTheme(), ThemeByName("dark"))
	assert.Equal(t, DarkTheme(), ThemeByName("no-such-theme"))
}
