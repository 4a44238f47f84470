package status

import (
	"fmt"
	"strings"
)

// ParseError reports a status line that does not match the expected
// report shape. The offending line is preserved so the UI can show it.
type ParseError struct {
	Line   string
	Reason string
}

// Error describes the violation together with the line that caused it.
func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed status line %q: %s", e.Line, e.Reason)
}

// Section headers of the human-readable report, matched verbatim.
const (
	headerUntracked = "Untracked files:"
	headerUnstaged  = "Changes not staged for commit:"
	headerStaged    = "Changes to be committed:"
)

// Parse builds a Snapshot from the human-readable `git status` report.
//
// The first line must be "On branch <name>". After each recognised
// section header one explanatory hint line is skipped ("Changes not
// staged" carries two, so its hints are skipped by their "(use "
// prefix), then every line up to the next blank line is one entry.
// Staged entries carry a "modified:" or "new file:" label, unstaged
// entries a "modified:" or "deleted:" label; untracked entries are
// bare paths. Anything between sections is ignored.
//
// A malformed first line or an entry with no recognised label returns
// a *ParseError; the caller decides how to surface it.
func Parse(text string) (*Snapshot, error) {
	lines := strings.Split(text, "\n")
	first := lines[0]
	if !strings.HasPrefix(first, "On branch ") {
		return nil, &ParseError{Line: first, Reason: `expected "On branch <name>"`}
	}
	snap := &Snapshot{Branch: strings.TrimPrefix(first, "On branch ")}

	for i := 1; i < len(lines); i++ {
		switch lines[i] {
		case headerUntracked:
			i += 2 // header plus one hint line
			for ; i < len(lines) && lines[i] != ""; i++ {
				snap.Untracked = append(snap.Untracked, Entry{Path: strings.TrimSpace(lines[i])})
			}

		case headerUnstaged:
			i++
			for i < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[i]), `(use `) {
				i++
			}
			for ; i < len(lines) && lines[i] != ""; i++ {
				path, err := cutLabel(lines[i], "modified:", "deleted:")
				if err != nil {
					return nil, err
				}
				snap.Unstaged = append(snap.Unstaged, Entry{Path: path})
			}

		case headerStaged:
			i += 2 // header plus one hint line
			for ; i < len(lines) && lines[i] != ""; i++ {
				path, err := cutLabel(lines[i], "modified:", "new file:")
				if err != nil {
					return nil, err
				}
				snap.Staged = append(snap.Staged, Entry{Path: path})
			}
		}
	}
	return snap, nil
}

// cutLabel strips the change label from an entry line, trying each
// label in order, and returns the trimmed path after it.
func cutLabel(line string, labels ...string) (string, error) {
	trimmed := strings.TrimSpace(line)
	for _, label := range labels {
		if strings.HasPrefix(trimmed, label) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, label)), nil
		}
	}
	return "", &ParseError{
		Line:   line,
		Reason: fmt.Sprintf("expected a %q or %q label", labels[0], labels[1]),
	}
}
