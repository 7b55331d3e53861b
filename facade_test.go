// facade_test.go - test suite for the generate/search/crack facade
//
// (c) 2024 the go-rainbow authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package rainbow

import (
	"context"
	"path/filepath"
	"testing"
)

func mockRegistry() *Registry {
	r := NewRegistry()
	r.Register("mockhash", mockHash, 4)
	return r
}

func TestFacadeGenerateProducesManifest(t *testing.T) {
	assert := newAsserter(t)

	dir := t.TempDir()
	f := NewFacade(&Option{Registry: mockRegistry(), Source: NewSourceFromSeed(11)})

	m, err := f.Generate(context.Background(), "mockhash", 200, 10, 3, dir)
	assert(err == nil, "generate: %s", err)
	assert(len(m.Entries) == 3, "generate: got %d manifest entries, want 3", len(m.Entries))

	for i, e := range m.Entries {
		assert(e.Index == uint32(i), "generate: entry %d has index %d", i, e.Index)
		assert(e.Filename == Make("mockhash", 200, 10, uint32(i)), "generate: unexpected filename %q", e.Filename)
	}
}

func TestFacadeGenerateThenSearch(t *testing.T) {
	assert := newAsserter(t)

	dir := t.TempDir()
	f := NewFacade(&Option{Registry: mockRegistry(), Source: NewSourceFromSeed(22)})

	_, err := f.Generate(context.Background(), "mockhash", 500, 20, 1, dir)
	assert(err == nil, "generate: %s", err)

	path := filepath.Join(dir, Make("mockhash", 500, 20, 0))
	tbl, err := OpenTable(path)
	assert(err == nil, "open table: %s", err)
	knownSeed := tbl.At(0).Startpoint
	tbl.Close()

	target := EncodeHash(mockHash(knownSeed))

	seed, ok, err := f.Search(path, target)
	assert(err == nil, "search: %s", err)
	assert(ok, "search: expected to find a seed")
	assert(seed == knownSeed, "search: got %d, want %d", seed, knownSeed)
}

func TestFacadeCrack(t *testing.T) {
	assert := newAsserter(t)

	f := NewFacade(&Option{Registry: mockRegistry()})

	const want = uint32(4242)
	target := EncodeHash(mockHash(want))

	seed, ok, err := f.Crack(context.Background(), "mockhash", target)
	assert(err == nil, "crack: %s", err)
	assert(ok, "crack: expected to find seed")
	assert(seed == want, "crack: got %d, want %d", seed, want)
}

func TestFacadeGenerateUnknownHash(t *testing.T) {
	assert := newAsserter(t)

	dir := t.TempDir()
	f := NewFacade(&Option{Registry: NewRegistry()})

	_, err := f.Generate(context.Background(), "no-such-hash", 10, 4, 1, dir)
	assert(err != nil, "generate: expected unknown hash name to fail")
}

func TestFacadeGenerateJob(t *testing.T) {
	assert := newAsserter(t)

	dir := t.TempDir()
	f := NewFacade(&Option{Registry: mockRegistry(), Source: NewSourceFromSeed(33)})

	job := &Job{
		OutputDir: dir,
		HashName:  "mockhash",
		ChainLen:  8,
		Tables: []TableGroup{
			{ChainNum: 100, Count: 2},
			{ChainNum: 50, Count: 1, StartIndex: 2},
		},
	}

	m, err := f.GenerateJob(context.Background(), job)
	assert(err == nil, "generate job: %s", err)
	assert(len(m.Entries) == 3, "generate job: got %d entries, want 3", len(m.Entries))
}
