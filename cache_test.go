// cache_test.go - test suite for the open-table cache
//
// (c) 2024 the go-rainbow authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package rainbow

import (
	"path/filepath"
	"testing"
)

func buildTestTable(t *testing.T, dir, hashName string, chainNum, chainLen, index uint32, seed uint32) string {
	t.Helper()
	assert := newAsserter(t)

	path := filepath.Join(dir, Make(hashName, chainNum, chainLen, index))
	src := NewSourceFromSeed(seed)

	err := Build(src, chainNum, chainLen, mockHash, 4, path)
	assert(err == nil, "build: %s", err)
	err = Sort(path, chainNum)
	assert(err == nil, "sort: %s", err)

	return path
}

func TestTableCacheReturnsSameHandle(t *testing.T) {
	assert := newAsserter(t)

	dir := t.TempDir()
	path := buildTestTable(t, dir, "mockhash", 100, 8, 0, 1)

	tc, err := NewTableCache(4)
	assert(err == nil, "new table cache: %s", err)
	defer tc.Purge()

	a, err := tc.Get(path)
	assert(err == nil, "get: %s", err)
	b, err := tc.Get(path)
	assert(err == nil, "get: %s", err)

	assert(a == b, "table cache: expected the same *Table handle on repeated Get")
}

func TestTableCacheEvictsAndCloses(t *testing.T) {
	assert := newAsserter(t)

	dir := t.TempDir()
	p1 := buildTestTable(t, dir, "mockhash", 10, 4, 0, 1)
	p2 := buildTestTable(t, dir, "mockhash", 10, 4, 1, 2)
	p3 := buildTestTable(t, dir, "mockhash", 10, 4, 2, 3)

	tc, err := NewTableCache(2)
	assert(err == nil, "new table cache: %s", err)
	defer tc.Purge()

	first, err := tc.Get(p1)
	assert(err == nil, "get p1: %s", err)
	_, err = tc.Get(p2)
	assert(err == nil, "get p2: %s", err)
	_, err = tc.Get(p3)
	assert(err == nil, "get p3: %s", err)

	// p1 should have been evicted (capacity 2, LRU) and its handle closed;
	// re-opening it must still succeed because eviction closes the handle
	// but the file on disk is untouched.
	assert(first.mm == nil, "table cache: evicted p1 handle was not closed")
	again, err := tc.Get(p1)
	assert(err == nil, "re-get evicted p1: %s", err)
	assert(again != first, "table cache: expected a fresh handle for evicted p1")
}
