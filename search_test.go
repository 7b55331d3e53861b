// search_test.go - test suite for binary search and the full search algorithm
//
// (c) 2024 the go-rainbow authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package rainbow

import (
	"sort"
	"testing"
)

func TestBinarySearchFindsLowerBound(t *testing.T) {
	assert := newAsserter(t)

	table := Chains{
		{Startpoint: 1, Endpoint: 10},
		{Startpoint: 2, Endpoint: 20},
		{Startpoint: 3, Endpoint: 20},
		{Startpoint: 4, Endpoint: 20},
		{Startpoint: 5, Endpoint: 30},
	}

	idx, ok := BinarySearch(table, 20)
	assert(ok, "binary search: expected to find endpoint 20")
	assert(idx == 1, "binary search: got index %d, want 1", idx)

	_, ok = BinarySearch(table, 99)
	assert(!ok, "binary search: expected no match for 99")
}

func TestBinarySearchEmptyTable(t *testing.T) {
	assert := newAsserter(t)

	_, ok := BinarySearch(Chains{}, 1)
	assert(!ok, "binary search: expected no match against an empty table")
}

func TestSearchHashInMemoryToleratesEndpointCollision(t *testing.T) {
	assert := newAsserter(t)

	const chainLen = 3
	const hashLen = 4

	realStart := uint32(100)
	target := mockHash(realStart)

	endpoint := rewindCandidate(target, 0, chainLen, mockHash, hashLen)

	// A fabricated colliding entry that shares the same endpoint but whose
	// startpoint does not actually lead to the target -- the search must
	// skip it and keep scanning.
	fakeStart := uint32(999999)

	table := Chains{
		{Startpoint: fakeStart, Endpoint: endpoint},
		{Startpoint: realStart, Endpoint: endpoint},
	}

	seed, ok := SearchHashInMemory(table, chainLen, mockHash, hashLen, target)
	assert(ok, "search: expected to find seed despite endpoint collision")
	assert(seed == realStart, "search: got seed %d, want %d", seed, realStart)
}

func TestSearchHashInMemoryBuildsRealTable(t *testing.T) {
	assert := newAsserter(t)

	const chainLen = 20
	const hashLen = 4
	const chainNum = 200

	src := NewSourceFromSeed(0xabad1dea)
	chains := make(Chains, chainNum)
	for i := range chains {
		chains[i] = generateChain(src, mockHash, chainLen, hashLen)
	}

	// Pick a known seed and hash it directly -- this is the "plaintext"
	// whose seed the search should recover, exactly as if some chain in
	// the table passed through it. Captured before sorting since sorting
	// reorders the slice in place.
	knownSeed := chains[0].Startpoint
	target := mockHash(knownSeed)

	// BinarySearch requires the table to be sorted by endpoint, exactly
	// as Sort would leave it on disk -- mirror that here instead of
	// searching an unsorted slice.
	sort.Slice(chains, func(i, j int) bool { return chains[i].Endpoint < chains[j].Endpoint })

	seed, ok := SearchHashInMemory(chains, chainLen, mockHash, hashLen, target)
	assert(ok, "search: expected to recover a seed for a known startpoint's hash")
	assert(mockEquivalent(seed, knownSeed, chainLen, hashLen),
		"search: recovered seed %d does not reproduce the target hash", seed)
}

// mockEquivalent reports whether seed actually hashes to the same target as
// knownSeed -- multiple seeds can legitimately map to the same digest under
// a lossy hash function, so exact equality with knownSeed is not required,
// only that the recovered seed is a true preimage.
func mockEquivalent(seed, knownSeed uint32, chainLen, hashLen int) bool {
	a := mockHash(seed)
	b := mockHash(knownSeed)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSearchHashInMemoryCleanMiss(t *testing.T) {
	assert := newAsserter(t)

	table := Chains{
		{Startpoint: 1, Endpoint: 10},
		{Startpoint: 2, Endpoint: 20},
	}

	_, ok := SearchHashInMemory(table, 3, mockHash, 4, []byte{0xff, 0xff, 0xff, 0xff})
	assert(!ok, "search: expected clean miss against an unrelated target")
}
