// prng.go - thread-safe uniform 32-bit source for chain startpoints
//
// (c) 2024 the go-rainbow authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package rainbow

import (
	"crypto/rand"
	"encoding/binary"
	"os"
	"sync"
	"time"

	"github.com/opencoff/go-fasthash"
)

const mwcPhi = 0x9e3779b9
const mwcLanes = 4096

// Source is a multiply-with-carry 32-bit generator, guarded by a single
// mutex. Startpoint generation is a tiny, infrequent critical section
// relative to chain walking, so one mutex per Source is sufficient --
// per-draw contention is negligible compared to the cost of the chain
// itself.
type Source struct {
	mu sync.Mutex
	q  [mwcLanes]uint32
	c  uint32
	i  uint32
}

// NewSource creates a Source seeded from OS entropy mixed with the
// current time and process id via a fast non-cryptographic mix (rather
// than the reference implementation's wall-clock-only seed, which is a
// well-known weakness -- ironic, for a tool whose purpose is exploiting
// exactly that weakness in other programs).
func NewSource() *Source {
	var b [8]byte
	_, err := rand.Read(b[:])
	if err != nil {
		// crypto/rand failing is a fatal platform problem; fall back to
		// time+pid mixing alone rather than leaving b all zero.
		binary.LittleEndian.PutUint64(b[:], uint64(time.Now().UnixNano()))
	}

	mixed := fasthash.Hash64(uint64(time.Now().UnixNano())^uint64(os.Getpid()), b[:])
	return NewSourceFromSeed(uint32(mixed))
}

// NewSourceFromSeed creates a Source with a deterministic seed, useful
// for reproducible tests.
func NewSourceFromSeed(x uint32) *Source {
	s := &Source{c: 362436, i: mwcLanes - 1}
	s.q[0] = x
	s.q[1] = x + mwcPhi
	s.q[2] = x + mwcPhi + mwcPhi
	for i := 3; i < mwcLanes; i++ {
		s.q[i] = s.q[i-3] ^ s.q[i-2] ^ mwcPhi ^ uint32(i)
	}
	return s
}

// Uint32 draws the next value from the generator. Safe for concurrent use.
func (s *Source) Uint32() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()

	const a = uint64(18782)
	const r = uint32(0xfffffffe)

	s.i = (s.i + 1) & (mwcLanes - 1)
	t := a*uint64(s.q[s.i]) + uint64(s.c)
	s.c = uint32(t >> 32)
	x := uint32(t) + s.c
	if x < s.c {
		x++
		s.c++
	}
	s.q[s.i] = r - x
	return s.q[s.i]
}
