// crack_test.go - test suite for the exhaustive cracker
//
// (c) 2024 the go-rainbow authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package rainbow

import (
	"context"
	"testing"
)

func TestCrackFindsSeedInRange(t *testing.T) {
	assert := newAsserter(t)

	const want = uint32(123456)
	target := mockHash(want)

	seed, ok := Crack(context.Background(), mockHash, 4, target, 0, 1_000_000)
	assert(ok, "crack: expected to find seed %d", want)
	assert(seed == want, "crack: got %d, want %d", seed, want)
}

func TestCrackMissOutsideRange(t *testing.T) {
	assert := newAsserter(t)

	target := mockHash(999999999)

	_, ok := Crack(context.Background(), mockHash, 4, target, 0, 1000)
	assert(!ok, "crack: expected no match when target seed is out of range")
}

func TestCrackSmallRangeNarrowerThanWorkerCount(t *testing.T) {
	assert := newAsserter(t)

	// A range this small is narrower than runtime.NumCPU() on most
	// machines; every worker's slice must still stay within [0,3] rather
	// than overflowing into the rest of the uint32 space.
	for want := uint32(0); want <= 3; want++ {
		target := mockHash(want)
		seed, ok := Crack(context.Background(), mockHash, 4, target, 0, 3)
		assert(ok, "crack: expected to find seed %d in a 4-wide range", want)
		assert(seed == want, "crack: got %d, want %d", seed, want)
	}

	miss := mockHash(4)
	_, ok := Crack(context.Background(), mockHash, 4, miss, 0, 3)
	assert(!ok, "crack: expected seed 4 to be out of the [0,3] range")
}

func TestCrackSingleSeedRange(t *testing.T) {
	assert := newAsserter(t)

	target := mockHash(7)
	seed, ok := Crack(context.Background(), mockHash, 4, target, 7, 7)
	assert(ok, "crack: expected to find the only seed in a width-1 range")
	assert(seed == 7, "crack: got %d, want 7", seed)
}

func TestCrackHonorsCancellation(t *testing.T) {
	assert := newAsserter(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// Seed 500 lies in the range and in the first worker's slice, so only
	// cancellation keeps it from being found: that worker starts at seed 0,
	// a multiple of 1024, and sees the cancelled context before testing it.
	target := mockHash(500)
	_, ok := Crack(ctx, mockHash, 4, target, 0, 0xffffffff)
	assert(!ok, "crack: expected a pre-cancelled search to report a miss")
}
