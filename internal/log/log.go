package log

import (
	"log"
	"os"
	"sync"
)

// A TUI owns the terminal, so debug output goes to a file chosen at
// startup. Messages logged before the sink is configured are buffered
// and flushed once it is; with no sink configured they are dropped.
type writer struct {
	mu   sync.Mutex
	file *os.File
	buf  []byte
	drop bool
}

var (
	sink = &writer{}
	std  = log.New(sink, "", log.LstdFlags|log.Lmicroseconds)
)

// Write implements io.Writer for the standard logger. It appends to
// the buffer until a file is set.
func (w *writer) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.drop {
		return len(p), nil
	}
	if w.file != nil {
		n, err := w.file.Write(p)
		// Flush eagerly: a crash is exactly when the log matters.
		_ = w.file.Sync()
		return n, err
	}
	w.buf = append(w.buf, p...)
	return len(p), nil
}

// SetFile directs all logging to the given path, creating the file if
// needed and flushing anything buffered so far. An empty path disables
// logging entirely. On open failure logging is disabled and the error
// returned.
func SetFile(path string) error {
	sink.mu.Lock()
	defer sink.mu.Unlock()

	if sink.file != nil {
		_ = sink.file.Close()
		sink.file = nil
	}
	if path == "" {
		sink.drop = true
		sink.buf = nil
		return nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		sink.drop = true
		sink.buf = nil
		return err
	}
	sink.file = f
	sink.drop = false

	if len(sink.buf) > 0 {
		_, _ = f.Write(sink.buf)
		_ = f.Sync()
		sink.buf = nil
	}
	return nil
}

// Printf writes a formatted debug message.
func Printf(format string, args ...any) {
	std.Printf(format, args...)
}

// Println writes a debug message.
func Println(v ...any) {
	std.Println(v...)
}

// Close closes the log file if one is open.
func Close() error {
	sink.mu.Lock()
	defer sink.mu.Unlock()

	if sink.file == nil {
		return nil
	}
	err := sink.file.Close()
	sink.file = nil
	return err
}
