package git

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// cmdTimeout is the maximum duration any single git command may run.
// Prevents hangs on huge repos or misbehaving hooks.
const cmdTimeout = 30 * time.Second

// CLIService implements Service by shelling out to the git CLI.
// Optimised for large repos:
//   - GIT_OPTIONAL_LOCKS=0 on all read commands (no lock contention)
//   - LC_ALL=C on all read commands so parsed output is locale-stable
//   - Context-based timeouts prevent hangs
//   - Stdout and stderr separated so stderr noise cannot corrupt output
type CLIService struct {
	root   string // Absolute path to the repo root.
	gitDir string // Path to the .git directory.
}

// Compile-time check that CLIService implements Service.
var _ Service = (*CLIService)(nil)

// NewCLIService opens a Git repository at the given path.
func NewCLIService(path string) (*CLIService, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	topLevel, err := runGit(abs, readEnv, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, ErrNotARepo
	}
	gitDir, err := runGit(abs, readEnv, "rev-parse", "--git-dir")
	if err != nil {
		return nil, fmt.Errorf("finding .git directory: %w", err)
	}
	gd := strings.TrimSpace(gitDir)
	if !filepath.IsAbs(gd) {
		gd = filepath.Join(strings.TrimSpace(topLevel), gd)
	}
	return &CLIService{
		root:   strings.TrimSpace(topLevel),
		gitDir: gd,
	}, nil
}

// GitDir returns the path to the .git directory.
func (s *CLIService) GitDir() string { return s.gitDir }

// ── helpers ─────────────────────────────────────────────────────────────────

// readEnv is the environment set on all read-only git commands.
// GIT_OPTIONAL_LOCKS=0 prevents git from acquiring optional locks,
// which matters in large repos where lock contention stalls readers.
// LC_ALL=C pins the output language: the status parser matches English
// section headers.
var readEnv = []string{"GIT_OPTIONAL_LOCKS=0", "LC_ALL=C"}

// run executes a read-only git command at the repo root.
func (s *CLIService) run(args ...string) (string, error) {
	return runGit(s.root, readEnv, args...)
}

// runWrite executes a write git command (no optional-locks override).
func (s *CLIService) runWrite(args ...string) (string, error) {
	return runGit(s.root, nil, args...)
}

// runGit executes a git command with a context timeout. Stdout and
// stderr are kept apart; failures come back as *GatewayError carrying
// the argv and trimmed stderr.
func runGit(dir string, extraEnv []string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), cmdTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	// Inherit environment, add extras.
	if len(extraEnv) > 0 {
		cmd.Env = append(os.Environ(), extraEnv...)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = strings.TrimSpace(stdout.String())
		}
		return "", &GatewayError{Args: args, Stderr: errMsg, Err: err}
	}
	return stdout.String(), nil
}

// ── Repository info ─────────────────────────────────────────────────────────

// RepoRoot returns the repository root path.
func (s *CLIService) RepoRoot() string { return s.root }

// Head returns the current HEAD ref.
func (s *CLIService) Head() (string, error) {
	// Fast path: read symbolic ref directly, no optional locks.
	ref, err := s.run("symbolic-ref", "--short", "HEAD")
	if err != nil {
		hash, hashErr := s.run("rev-parse", "--short", "HEAD")
		if hashErr != nil {
			return "", fmt.Errorf("getting HEAD: %w", err)
		}
		return strings.TrimSpace(hash), nil
	}
	return strings.TrimSpace(ref), nil
}

// IsClean reports whether the worktree is clean.
func (s *CLIService) IsClean() (bool, error) {
	// Porcelain output with untracked files skipped: we only need to
	// know if anything tracked is dirty, not the full list.
	out, err := s.run("status", "--porcelain", "--untracked-files=no", "--no-optional-locks")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) == "", nil
}

// AheadBehind returns how many commits ahead/behind the upstream.
func (s *CLIService) AheadBehind() (int, int, error) {
	out, err := s.run("rev-list", "--left-right", "--count", "HEAD...@{upstream}")
	if err != nil {
		return 0, 0, nil //nolint:nilerr // no upstream is not an error
	}
	parts := strings.Fields(strings.TrimSpace(out))
	if len(parts) != 2 {
		return 0, 0, nil
	}
	var ahead, behind int
	_, _ = fmt.Sscan(parts[0], &ahead)
	_, _ = fmt.Sscan(parts[1], &behind)
	return ahead, behind, nil
}

// ── Working tree ────────────────────────────────────────────────────────────

// StatusText returns the human-readable status report for the repo.
func (s *CLIService) StatusText() (string, error) {
	out, err := s.run("status")
	if err != nil {
		return "", fmt.Errorf("getting status: %w", err)
	}
	return out, nil
}

// StageAll stages every change under the working tree.
func (s *CLIService) StageAll() error {
	_, err := s.runWrite("add", ".")
	return err
}

// ── Branches ────────────────────────────────────────────────────────────────

// Branches lists local branches in the order git reports them.
func (s *CLIService) Branches() ([]Branch, error) {
	out, err := s.run("branch")
	if err != nil {
		return nil, err
	}
	return ParseBranches(out), nil
}

// Checkout switches the working tree to an existing branch.
func (s *CLIService) Checkout(name string) error {
	_, err := s.runWrite("checkout", name)
	return err
}

// CheckoutNew creates a branch and switches to it.
func (s *CLIService) CheckoutNew(name string) error {
	_, err := s.runWrite("checkout", "-b", name)
	return err
}
