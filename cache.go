// cache.go - bounded cache of already-opened, memory-mapped tables
//
// (c) 2024 the go-rainbow authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package rainbow

import (
	"path/filepath"

	lru "github.com/hashicorp/golang-lru/v2"
)

// TableCache keeps a bounded number of already-opened, memory-mapped
// Table handles around, keyed by absolute path, so a long-running
// process that repeatedly searches the same table(s) doesn't pay the
// open/mmap/munmap cost on every call. It is a thin wrapper over
// golang-lru's LRU cache, with an eviction callback that unmaps and
// closes the evicted table.
type TableCache struct {
	c *lru.Cache[string, *Table]
}

// NewTableCache creates a cache holding at most size open tables. A
// non-positive size defaults to 16.
func NewTableCache(size int) (*TableCache, error) {
	if size <= 0 {
		size = 16
	}

	tc := &TableCache{}

	c, err := lru.NewWithEvict[string, *Table](size, func(_ string, t *Table) {
		if t != nil {
			t.Close()
		}
	})
	if err != nil {
		return nil, err
	}

	tc.c = c
	return tc, nil
}

// Get returns an open Table for path, opening and mapping it if it isn't
// already cached. The returned Table must not be Closed by the caller --
// the cache owns its lifetime and will Close it on eviction or Purge.
func (tc *TableCache) Get(path string) (*Table, error) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	if t, ok := tc.c.Get(path); ok {
		return t, nil
	}

	t, err := OpenTable(path)
	if err != nil {
		return nil, err
	}

	tc.c.Add(path, t)
	return t, nil
}

// Purge closes and evicts every cached table.
func (tc *TableCache) Purge() {
	tc.c.Purge()
}
