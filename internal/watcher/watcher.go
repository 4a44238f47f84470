// Package watcher monitors Git-internal state files and notifies the
// TUI to refresh. It watches only the handful of paths inside .git
// that change on meaningful Git operations, never the working tree
// itself, so inotify watches stay bounded no matter how large the
// checkout is.
//
// Watched paths:
//   - .git            → HEAD, index, packed-refs
//   - .git/refs       → ref namespace updates
//   - .git/refs/heads → local branch updates
//
// Working-tree edits are picked up on the next manual refresh; only
// git's own state transitions (add, commit, checkout) arrive through
// this channel.
package watcher

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Event is sent when the watcher detects relevant Git state changes.
type Event struct{}

// Watch monitors gitDir for state changes and sends Event values on
// the returned channel. Rapid bursts are coalesced via the debounce
// window. Call the returned stop function to tear down the watcher.
func Watch(gitDir string, debounce time.Duration) (<-chan Event, func(), error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, nil, err
	}

	targets := []string{
		gitDir,
		filepath.Join(gitDir, "refs"),
		filepath.Join(gitDir, "refs/heads"),
	}

	for _, t := range targets {
		if info, statErr := os.Stat(t); statErr == nil && info.IsDir() {
			// Some dirs may not exist yet; skipping them is fine.
			_ = w.Add(t)
		}
	}

	ch := make(chan Event, 1)
	done := make(chan struct{})

	// Jitter spreads the refresh when several instances watch the
	// same repository.
	jitterRange := debounce / 2
	if jitterRange <= 0 {
		jitterRange = time.Millisecond
	}

	go func() {
		defer close(ch)
		var timer *time.Timer

		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if shouldIgnore(ev.Name) {
					continue
				}
				jitter := time.Duration(rand.Int64N(int64(jitterRange)))
				d := debounce + jitter
				if timer == nil {
					timer = time.NewTimer(d)
				} else {
					timer.Reset(d)
				}
			case <-timerChan(timer):
				timer = nil
				select {
				case ch <- Event{}:
				default:
				}
			case _, ok := <-w.Errors:
				if !ok {
					return
				}
			case <-done:
				return
			}
		}
	}()

	stop := func() {
		close(done)
		_ = w.Close()
	}

	return ch, stop, nil
}

// timerChan returns the timer's channel, or a nil channel if timer is nil.
func timerChan(t *time.Timer) <-chan time.Time {
	if t == nil {
		return nil
	}
	return t.C
}

// shouldIgnore returns true for events that must not trigger a refresh.
func shouldIgnore(path string) bool {
	base := filepath.Base(path)

	// Lock files are transient and held mid-operation. Re-invoking
	// git while it holds one would fail.
	if strings.HasSuffix(base, ".lock") {
		return true
	}

	// Editor swap/temp files that somehow end up in .git.
	if strings.HasSuffix(base, ".swp") || strings.HasSuffix(base, ".swo") ||
		strings.HasSuffix(base, "~") || strings.HasPrefix(base, ".#") {
		return true
	}

	// Fires while a commit message is being typed in an editor.
	if base == "COMMIT_EDITMSG" {
		return true
	}

	if base == "gc.log" || strings.HasPrefix(base, "fsmonitor") {
		return true
	}

	return false
}
