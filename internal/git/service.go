package git

// Service defines the contract for all Git operations.
// Every view depends on this interface, never on exec.Command directly.
// This makes the application testable via fake implementations.
type Service interface {
	// ── Repository info ──────────────────────────────────────────────
	RepoRoot() string
	GitDir() string
	Head() (string, error)
	IsClean() (bool, error)
	AheadBehind() (ahead, behind int, err error)

	// ── Working tree ─────────────────────────────────────────────────

	// StatusText returns the human-readable `git status` report, the
	// text the status model parses. Read with the C locale forced so
	// the section headers are stable.
	StatusText() (string, error)

	// StageAll stages every change in the working tree (`git add .`).
	StageAll() error

	// ── Branches ─────────────────────────────────────────────────────
	Branches() ([]Branch, error)
	Checkout(name string) error
	CheckoutNew(name string) error
}
