package git

import (
	"sync"
	"time"
)

// CachedService wraps a Service implementation with a TTL-based cache
// for read operations. Write operations (StageAll, Checkout, etc.)
// invalidate the cache so the next read is fresh.
//
// The status bar and the active view request overlapping data (Head,
// AheadBehind, StatusText) within the same refresh cycle; without
// caching a single refresh could spawn several redundant git
// subprocesses.
type CachedService struct {
	inner Service
	ttl   time.Duration

	mu    sync.Mutex
	cache map[string]cacheEntry
}

type cacheEntry struct {
	val    interface{}
	err    error
	expiry time.Time
}

// Compile-time check.
var _ Service = (*CachedService)(nil)

// NewCachedService wraps an existing Service with a TTL cache.
// Recommended TTL: 1-2 seconds, enough to cover one refresh cycle.
func NewCachedService(inner Service, ttl time.Duration) *CachedService {
	return &CachedService{
		inner: inner,
		ttl:   ttl,
		cache: make(map[string]cacheEntry, 8),
	}
}

// Invalidate clears all cached entries. Called after any write operation.
func (c *CachedService) Invalidate() {
	c.mu.Lock()
	c.cache = make(map[string]cacheEntry, 8)
	c.mu.Unlock()
}

func (c *CachedService) get(key string) (val interface{}, ok bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, found := c.cache[key]
	if !found || time.Now().After(e.expiry) {
		return nil, false, nil
	}
	return e.val, true, e.err
}

func (c *CachedService) set(key string, val interface{}, err error) {
	c.mu.Lock()
	c.cache[key] = cacheEntry{val: val, err: err, expiry: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}

// invalidateAndReturn is a helper for write methods.
func (c *CachedService) invalidateAndReturn(err error) error {
	if err == nil {
		c.Invalidate()
	}
	return err
}

// ── Repository info (cached reads) ──────────────────────────────────────────

// RepoRoot delegates to the inner service.
func (c *CachedService) RepoRoot() string { return c.inner.RepoRoot() }

// GitDir delegates to the inner service.
func (c *CachedService) GitDir() string { return c.inner.GitDir() }

// Head returns the current HEAD ref (cached).
func (c *CachedService) Head() (string, error) {
	if v, ok, err := c.get("head"); ok {
		return v.(string), err
	}
	v, err := c.inner.Head()
	c.set("head", v, err)
	return v, err
}

// IsClean reports whether the worktree is clean (cached).
func (c *CachedService) IsClean() (bool, error) {
	if v, ok, err := c.get("isclean"); ok {
		return v.(bool), err
	}
	v, err := c.inner.IsClean()
	c.set("isclean", v, err)
	return v, err
}

// AheadBehind delegates to the inner service (cached).
func (c *CachedService) AheadBehind() (int, int, error) {
	type ab struct{ a, b int }
	if v, ok, err := c.get("aheadbehind"); ok {
		r := v.(ab)
		return r.a, r.b, err
	}
	a, b, err := c.inner.AheadBehind()
	c.set("aheadbehind", ab{a, b}, err)
	return a, b, err
}

// ── Working tree ────────────────────────────────────────────────────────────

// StatusText delegates to the inner service (cached).
func (c *CachedService) StatusText() (string, error) {
	if v, ok, err := c.get("statustext"); ok {
		return v.(string), err
	}
	v, err := c.inner.StatusText()
	c.set("statustext", v, err)
	return v, err
}

// StageAll stages all changes and invalidates the cache.
func (c *CachedService) StageAll() error {
	return c.invalidateAndReturn(c.inner.StageAll())
}

// ── Branches ────────────────────────────────────────────────────────────────

// Branches delegates to the inner service (cached).
func (c *CachedService) Branches() ([]Branch, error) {
	if v, ok, err := c.get("branches"); ok {
		return v.([]Branch), err
	}
	v, err := c.inner.Branches()
	c.set("branches", v, err)
	return v, err
}

// Checkout switches branch and invalidates the cache.
func (c *CachedService) Checkout(name string) error {
	return c.invalidateAndReturn(c.inner.Checkout(name))
}

// CheckoutNew creates a branch and invalidates the cache.
func (c *CachedService) CheckoutNew(name string) error {
	return c.invalidateAndReturn(c.inner.CheckoutNew(name))
}
