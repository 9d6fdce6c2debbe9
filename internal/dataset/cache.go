package dataset

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Snapshot is one fully loaded data directory: both source mappings, read
// once and never mutated afterwards. Derived tables are built from copies.
type Snapshot struct {
	Dir         string
	Environment map[string]*Frame
	Growth      map[string]*Frame
}

// Cache memoizes Snapshots for the lifetime of the process, keyed by data
// directory path. First load wins; there is no invalidation — picking up
// changed files requires a fresh process, which is acceptable for a
// single-session analysis tool. singleflight collapses a racing first load
// into one disk pass.
type Cache struct {
	group   singleflight.Group
	mu      sync.RWMutex
	entries map[string]*Snapshot
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]*Snapshot)}
}

// Load returns the snapshot for dir, reading both sources from disk on the
// first call and the memoized result on every later one.
func (c *Cache) Load(dir string) (*Snapshot, error) {
	c.mu.RLock()
	if snap, ok := c.entries[dir]; ok {
		c.mu.RUnlock()
		return snap, nil
	}
	c.mu.RUnlock()

	v, err, _ := c.group.Do(dir, func() (interface{}, error) {
		c.mu.RLock()
		if snap, ok := c.entries[dir]; ok {
			c.mu.RUnlock()
			return snap, nil
		}
		c.mu.RUnlock()

		env, err := LoadEnvironment(dir)
		if err != nil {
			return nil, err
		}
		growth, err := LoadGrowth(dir)
		if err != nil {
			return nil, err
		}
		snap := &Snapshot{Dir: dir, Environment: env, Growth: growth}

		c.mu.Lock()
		c.entries[dir] = snap
		c.mu.Unlock()
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}
