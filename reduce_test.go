// reduce_test.go - test suite for the reduction function
//
// (c) 2024 the go-rainbow authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package rainbow

import "testing"

func TestReduceWorkedExample(t *testing.T) {
	assert := newAsserter(t)

	digest := []byte{1, 2, 3, 4, 5}
	got := reduce(digest, len(digest), 7)

	want := uint32(0x04030201)
	assert(got == want, "reduce: got %#x, want %#x", got, want)
}

func TestReduceNoResidual(t *testing.T) {
	assert := newAsserter(t)

	digest := []byte{0xef, 0xbe, 0xad, 0xde, 0x01, 0x00, 0x00, 0x00}
	got := reduce(digest, 8, 0)

	want := uint32(0xdeadbeef) ^ uint32(1)
	assert(got == want, "reduce: got %#x, want %#x", got, want)
}

func TestReduceRoundChangesResult(t *testing.T) {
	assert := newAsserter(t)

	digest := []byte{1, 2, 3, 4}
	a := reduce(digest, 4, 1)
	b := reduce(digest, 4, 2)

	assert(a != b, "reduce: expected different rounds to diverge, got %#x for both", a)
}
