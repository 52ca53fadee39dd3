package schema

import (
	"sync"

	lru "github.com/hashicorp/golang-lru"

	"github.com/go-fixproto/fixproto/fix"
)

// defaultCacheSize bounds the number of distinct protocol versions a
// Registry keeps parsed at once. Protocol dictionaries are small and
// the set of versions a process deals with is typically one or two,
// so this is generous headroom rather than a tuned limit.
const defaultCacheSize = 16

// Registry memoizes Protocol construction by version tag, so a
// long-lived process (or the CLI, invoked repeatedly) doesn't re-parse
// the same dictionary XML on every Load. It only caches the read
// path: its mutex guards the cache itself, and a Protocol returned
// from the cache still follows the single-writer contract for Extend
// (§5) — the Registry does not serialize Extend calls on the
// Protocols it hands out.
type Registry struct {
	mu    sync.Mutex
	cache *lru.Cache
}

// NewRegistry builds a Registry with room for size distinct protocol
// versions. size <= 0 uses defaultCacheSize.
func NewRegistry(size int) (*Registry, error) {
	if size <= 0 {
		size = defaultCacheSize
	}
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Registry{cache: c}, nil
}

// Load returns the cached *fix.Protocol for version, building and
// caching it via LoadVersion on a miss. Safe for concurrent use.
func (r *Registry) Load(version string) (*fix.Protocol, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if v, ok := r.cache.Get(version); ok {
		return v.(*fix.Protocol), nil
	}
	p, err := LoadVersion(version)
	if err != nil {
		return nil, err
	}
	r.cache.Add(version, p)
	return p, nil
}

// Purge discards every cached Protocol. Subsequent Load calls rebuild
// from scratch.
func (r *Registry) Purge() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Purge()
}
