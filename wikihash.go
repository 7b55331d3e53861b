// wikihash.go - the "wikihash" built-in hash function
//
// (c) 2024 the go-rainbow authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package rainbow

import (
	"crypto/md5"
	"fmt"
)

// Mersenne Twister parameters, stripped from the reference PHP source.
const (
	mtN      = 624 // length of state vector
	mtM      = 397 // period parameter
	mtOffset = 4   // fixed state offset used by this particular weak generator
)

// mtInitialize reproduces the reference implementation's state-vector
// initializer exactly, including its documented quirk: the loop runs to
// N-200, not N, so state[N-200:] is left at its zero value rather than
// being filled by the recurrence. This is a property of the specific
// weak generator being targeted (mwikihash), not a bug to patch -- the
// state words this hash function actually reads (see wikihash: indices
// 4..6 and 401..402) all fall within the initialized range, so the quirk
// is silent here,
// but a general-purpose consumer of this state vector must not assume
// the tail holds anything but zero.
func mtInitialize(seed uint32, state *[mtN]uint32) {
	state[0] = seed
	for i := 1; i < mtN-200; i++ {
		state[i] = 1812433253*(state[i-1]^(state[i-1]>>30)) + uint32(i)
	}
}

func mtTemper(y uint32) uint32 {
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	return y
}

func mtTwist(m, u, v uint32) uint32 {
	mixBits := (u & 0x80000000) | (v & 0x7fffffff)
	var mask uint32
	if u&1 != 0 {
		mask = 0x9908b0df
	}
	return m ^ (mixBits >> 1) ^ mask
}

// wikihash is the built-in "wikihash" HashFunc: it reproduces the
// PHP-flavored Mersenne Twister described in mwikihash.c, tempers two
// adjacent state words at the generator's fixed offset, hex-encodes them
// (PHP %x-style, variable width, no zero padding) and MD5-hashes the
// resulting ASCII string. The digest is 16 bytes (MD5_LEN).
func wikihash(seed uint32) []byte {
	var state [mtN]uint32
	mtInitialize(seed, &state)

	r1 := mtTemper(mtTwist(state[mtM+mtOffset], state[0+mtOffset], state[1+mtOffset])) >> 1
	r2 := mtTemper(mtTwist(state[mtM+mtOffset+1], state[1+mtOffset], state[2+mtOffset])) >> 1

	hex := fmt.Sprintf("%x%x", r1, r2)
	sum := md5.Sum([]byte(hex))
	return sum[:]
}
