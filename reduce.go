// reduce.go - the chain reduction function
//
// (c) 2024 the go-rainbow authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package rainbow

import "encoding/binary"

// reduce collapses a digest of exactly hashLen bytes and a round counter
// into a candidate 32-bit seed. It XORs the hashLen/4 leading little-endian
// 32-bit lanes of the digest, adds the trailing hashLen%4 bytes (taken from
// the end of the digest, in descending index order) byte by byte, and
// finally XORs the round counter. Adjacent rounds diverge because of the
// round XOR; the whole digest is consumed because every lane and every
// residual byte participates.
//
// digest must be at least hashLen bytes; only the first hashLen bytes are
// read. Reproducing this exactly, byte for byte, is required: every stored
// chain's invariant depends on it.
func reduce(digest []byte, hashLen int, round uint32) uint32 {
	var reduced uint32

	lanes := hashLen / 4
	for i := 0; i < lanes; i++ {
		reduced ^= binary.LittleEndian.Uint32(digest[i*4 : i*4+4])
	}

	residual := hashLen % 4
	for i := 0; i < residual; i++ {
		reduced += uint32(digest[hashLen-1-i])
	}

	return reduced ^ round
}
