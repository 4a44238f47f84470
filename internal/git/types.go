package git

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotARepo is returned when the path is not inside a Git repository.
var ErrNotARepo = errors.New("not a git repository")

// GatewayError wraps a failed git invocation with the argv that failed
// and whatever git printed on stderr. The UI surfaces these as transient
// messages; they never abort the program.
type GatewayError struct {
	Args   []string // The git arguments that were run.
	Stderr string   // Trimmed stderr (falls back to stdout when empty).
	Err    error    // Underlying exec error.
}

// Error formats as "git <args>: <stderr>: <cause>".
func (e *GatewayError) Error() string {
	return fmt.Sprintf("git %s: %s: %v", strings.Join(e.Args, " "), e.Stderr, e.Err)
}

// Unwrap returns the underlying exec error.
func (e *GatewayError) Unwrap() error { return e.Err }

// Branch is one local branch as reported by `git branch`, in the order
// git printed it.
type Branch struct {
	Name      string
	IsCurrent bool
}
