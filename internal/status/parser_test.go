package status

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entryPaths(entries []Entry) []string {
	paths := make([]string, 0, len(entries))
	for _, e := range entries {
		paths = append(paths, e.Path)
	}
	return paths
}

func TestParseUntrackedOnly(t *testing.T) {
	report := "On branch main\n" +
		"\n" +
		"Untracked files:\n" +
		"  (use \"git add <file>...\" to include in what will be committed)\n" +
		"\ta.txt\n" +
		"\tb.txt\n" +
		"\n"

	snap, err := Parse(report)
	require.NoError(t, err)

	assert.Equal(t, "main", snap.Branch)
	assert.Equal(t, []string{"a.txt", "b.txt"}, entryPaths(snap.Untracked))
	assert.Empty(t, snap.Unstaged)
	assert.Empty(t, snap.Staged)
	assert.Equal(t, 0, snap.Cursor)
	for _, e := range snap.Untracked {
		assert.False(t, e.Expanded)
	}
}

func TestParseStagedLabels(t *testing.T) {
	report := "On branch feature/parser\n" +
		"Changes to be committed:\n" +
		"  (use \"git restore --staged <file>...\" to unstage)\n" +
		"\tmodified:   src/main.rs\n" +
		"\tnew file:   Cargo.lock\n" +
		"\n"

	snap, err := Parse(report)
	require.NoError(t, err)

	assert.Equal(t, "feature/parser", snap.Branch)
	assert.Equal(t, []string{"src/main.rs", "Cargo.lock"}, entryPaths(snap.Staged))
}

func TestParseUnstagedSection(t *testing.T) {
	// This section carries two hint lines, not one.
	report := "On branch main\n" +
		"Changes not staged for commit:\n" +
		"  (use \"git add <file>...\" to update what will be committed)\n" +
		"  (use \"git restore <file>...\" to discard changes in working directory)\n" +
		"\tmodified:   internal/app/app.go\n" +
		"\tdeleted:    old_name.go\n" +
		"\n"

	snap, err := Parse(report)
	require.NoError(t, err)

	assert.Equal(t, []string{"internal/app/app.go", "old_name.go"}, entryPaths(snap.Unstaged))
	assert.Empty(t, snap.Untracked)
	assert.Empty(t, snap.Staged)
}

func TestParseFullReport(t *testing.T) {
	report := "On branch main\n" +
		"Your branch is up to date with 'origin/main'.\n" +
		"\n" +
		"Changes to be committed:\n" +
		"  (use \"git restore --staged <file>...\" to unstage)\n" +
		"\tnew file:   go.sum\n" +
		"\n" +
		"Changes not staged for commit:\n" +
		"  (use \"git add <file>...\" to update what will be committed)\n" +
		"  (use \"git restore <file>...\" to discard changes in working directory)\n" +
		"\tmodified:   go.mod\n" +
		"\n" +
		"Untracked files:\n" +
		"  (use \"git add <file>...\" to include in what will be committed)\n" +
		"\tREADME.md\n" +
		"\tdocs/notes.txt\n" +
		"\n" +
		"no changes added to commit (use \"git add\" and/or \"git commit -a\")\n"

	snap, err := Parse(report)
	require.NoError(t, err)

	assert.Equal(t, []string{"README.md", "docs/notes.txt"}, entryPaths(snap.Untracked))
	assert.Equal(t, []string{"go.mod"}, entryPaths(snap.Unstaged))
	assert.Equal(t, []string{"go.sum"}, entryPaths(snap.Staged))
	assert.Equal(t, 4, snap.Len())
}

func TestParseCleanTree(t *testing.T) {
	report := "On branch main\n" +
		"nothing to commit, working tree clean\n"

	snap, err := Parse(report)
	require.NoError(t, err)

	assert.Equal(t, "main", snap.Branch)
	assert.Equal(t, 0, snap.Len())
	assert.Equal(t, 0, snap.Cursor)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		report   string
		wantLine string
	}{
		{
			name:     "malformed first line",
			report:   "HEAD detached at 1a2b3c4\n",
			wantLine: "HEAD detached at 1a2b3c4",
		},
		{
			name:     "empty report",
			report:   "",
			wantLine: "",
		},
		{
			name: "unknown staged label",
			report: "On branch main\n" +
				"Changes to be committed:\n" +
				"  (use \"git restore --staged <file>...\" to unstage)\n" +
				"\trenamed:    a.go -> b.go\n" +
				"\n",
			wantLine: "\trenamed:    a.go -> b.go",
		},
		{
			name: "unknown unstaged label",
			report: "On branch main\n" +
				"Changes not staged for commit:\n" +
				"  (use \"git add <file>...\" to update what will be committed)\n" +
				"\ttypechange: link.go\n" +
				"\n",
			wantLine: "\ttypechange: link.go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.report)
			require.Error(t, err)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.wantLine, perr.Line)
		})
	}
}

func TestParsePathsKeepInnerSpaces(t *testing.T) {
	report := "On branch main\n" +
		"Changes to be committed:\n" +
		"  (use \"git restore --staged <file>...\" to unstage)\n" +
		"\tnew file:   docs/release notes.md\n" +
		"\n"

	snap, err := Parse(report)
	require.NoError(t, err)
	assert.Equal(t, []string{"docs/release notes.md"}, entryPaths(snap.Staged))
}
