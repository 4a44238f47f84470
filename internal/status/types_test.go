package status

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeSnapshot(untracked, unstaged, staged int) *Snapshot {
	snap := &Snapshot{Branch: "main"}
	for i := 0; i < untracked; i++ {
		snap.Untracked = append(snap.Untracked, Entry{Path: "u.txt"})
	}
	for i := 0; i < unstaged; i++ {
		snap.Unstaged = append(snap.Unstaged, Entry{Path: "c.go"})
	}
	for i := 0; i < staged; i++ {
		snap.Staged = append(snap.Staged, Entry{Path: "s.go"})
	}
	return snap
}

func TestMoveDownClampsAtLastEntry(t *testing.T) {
	snap := makeSnapshot(1, 1, 1)
	for i := 0; i < 10; i++ {
		snap.MoveDown()
	}
	assert.Equal(t, 2, snap.Cursor)
}

func TestMoveUpClampsAtZero(t *testing.T) {
	snap := makeSnapshot(2, 0, 0)
	snap.MoveUp()
	assert.Equal(t, 0, snap.Cursor)

	snap.MoveDown()
	snap.MoveUp()
	snap.MoveUp()
	assert.Equal(t, 0, snap.Cursor)
}

func TestEntryAtCrossesSections(t *testing.T) {
	// Two untracked, no unstaged, three staged: index 4 is the third
	// staged entry.
	snap := makeSnapshot(2, 0, 3)
	snap.Cursor = 4

	e, sec, offset := snap.EntryAt(snap.Cursor)
	require.NotNil(t, e)
	assert.Equal(t, SectionStaged, sec)
	assert.Equal(t, 2, offset)
	assert.Same(t, &snap.Staged[2], e)
}

func TestEntryAtPartitionsIndexSpace(t *testing.T) {
	tests := []struct {
		name                        string
		untracked, unstaged, staged int
	}{
		{"all sections", 2, 3, 4},
		{"only untracked", 3, 0, 0},
		{"only staged", 0, 0, 2},
		{"middle empty", 1, 0, 1},
		{"empty", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := makeSnapshot(tt.untracked, tt.unstaged, tt.staged)
			total := snap.Len()
			assert.Equal(t, tt.untracked+tt.unstaged+tt.staged, total)

			// Every in-range index resolves to exactly one entry, and
			// each (section, offset) pair appears exactly once.
			seen := map[Section]map[int]bool{}
			for i := 0; i < total; i++ {
				e, sec, offset := snap.EntryAt(i)
				require.NotNil(t, e, "index %d", i)
				if seen[sec] == nil {
					seen[sec] = map[int]bool{}
				}
				assert.False(t, seen[sec][offset], "index %d resolved twice", i)
				seen[sec][offset] = true
			}
			assert.Len(t, seen[SectionUntracked], tt.untracked)
			assert.Len(t, seen[SectionUnstaged], tt.unstaged)
			assert.Len(t, seen[SectionStaged], tt.staged)

			// Out-of-range indexes resolve to nothing.
			e, _, _ := snap.EntryAt(-1)
			assert.Nil(t, e)
			e, _, _ = snap.EntryAt(total)
			assert.Nil(t, e)
		})
	}
}

func TestCursorStaysInBoundsUnderAnyMoveSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for _, total := range []int{0, 1, 2, 7} {
		snap := makeSnapshot(total/2, total%2, total/2)
		require.Equal(t, total, snap.Len())

		for step := 0; step < 500; step++ {
			if rng.Intn(2) == 0 {
				snap.MoveDown()
			} else {
				snap.MoveUp()
			}
			if total == 0 {
				assert.Equal(t, 0, snap.Cursor)
				continue
			}
			assert.GreaterOrEqual(t, snap.Cursor, 0)
			assert.Less(t, snap.Cursor, total)
		}
	}
}

func TestToggleExpandIsSelfInverse(t *testing.T) {
	snap := makeSnapshot(1, 1, 1)
	snap.Cursor = 1

	before := *snap.CurrentEntry()
	snap.ToggleExpand()
	assert.True(t, snap.CurrentEntry().Expanded)
	snap.ToggleExpand()
	assert.Equal(t, before, *snap.CurrentEntry())

	// Only the entry under the cursor is touched.
	assert.False(t, snap.Untracked[0].Expanded)
	assert.False(t, snap.Staged[0].Expanded)
}

func TestEmptySnapshotOperationsAreNoOps(t *testing.T) {
	snap := makeSnapshot(0, 0, 0)

	snap.MoveDown()
	snap.MoveUp()
	snap.ToggleExpand()

	assert.Equal(t, 0, snap.Cursor)
	assert.Nil(t, snap.CurrentEntry())
	assert.Equal(t, 0, snap.Len())
}
