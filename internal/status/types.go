package status

// Section identifies one of the three working-tree categories, in the
// fixed order they are listed and navigated.
type Section int

// Working-tree sections.
const (
	SectionUntracked Section = iota
	SectionUnstaged
	SectionStaged
)

// Title returns the display heading for the section.
func (s Section) Title() string {
	switch s {
	case SectionUntracked:
		return "Untracked files"
	case SectionUnstaged:
		return "Changed files"
	case SectionStaged:
		return "Staged for commit"
	default:
		return ""
	}
}

// Entry is a single path in the status report. Expanded is the only
// mutable bit; everything else is fixed at parse time.
type Entry struct {
	Path     string
	Expanded bool
}

// Snapshot is the parsed state of the working tree at one instant:
// the branch name, the three sections in listing order, and a single
// cursor over their logical concatenation.
//
// A refresh replaces the snapshot wholesale, so the cursor returns to
// zero and every entry collapses.
type Snapshot struct {
	Branch    string
	Untracked []Entry
	Unstaged  []Entry
	Staged    []Entry
	Cursor    int
}

// sections returns the three sections in listing order. The slice
// headers share backing arrays with the snapshot, so entries reached
// through them can be mutated in place.
func (s *Snapshot) sections() [3][]Entry {
	return [3][]Entry{s.Untracked, s.Unstaged, s.Staged}
}

// Len returns the total number of entries across all sections.
func (s *Snapshot) Len() int {
	return len(s.Untracked) + len(s.Unstaged) + len(s.Staged)
}

// MoveDown advances the cursor one entry, clamping at the last one.
// No-op on an empty snapshot.
func (s *Snapshot) MoveDown() {
	if s.Cursor+1 < s.Len() {
		s.Cursor++
	}
}

// MoveUp retreats the cursor one entry, clamping at zero.
func (s *Snapshot) MoveUp() {
	if s.Cursor > 0 {
		s.Cursor--
	}
}

// EntryAt resolves a logical index to the entry it denotes, along with
// its section and the offset within that section. The mapping is
// recomputed from the section lengths on every call. Returns nil for
// an out-of-range index.
func (s *Snapshot) EntryAt(index int) (*Entry, Section, int) {
	if index < 0 {
		return nil, 0, 0
	}
	for sec, entries := range s.sections() {
		if index < len(entries) {
			return &entries[index], Section(sec), index
		}
		index -= len(entries)
	}
	return nil, 0, 0
}

// CurrentEntry returns the entry under the cursor, or nil when the
// snapshot is empty.
func (s *Snapshot) CurrentEntry() *Entry {
	e, _, _ := s.EntryAt(s.Cursor)
	return e
}

// ToggleExpand flips the preview state of the entry under the cursor.
// Toggling twice restores the entry; on an empty snapshot it is a no-op.
func (s *Snapshot) ToggleExpand() {
	if e := s.CurrentEntry(); e != nil {
		e.Expanded = !e.Expanded
	}
}
