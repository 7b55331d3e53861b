// chain.go - the chain primitive: generation and regeneration
//
// (c) 2024 the go-rainbow authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package rainbow

import "bytes"

// Chain is a (startpoint, endpoint) pair summarizing chainLen applications
// of reduce(hash(.), round) starting from startpoint.
type Chain struct {
	Startpoint uint32
	Endpoint   uint32
}

// generateChain draws a random startpoint from src and walks chainLen
// rounds of reduce(fn(.), round). There is no de-duplication: two chains
// may collide on either endpoint or midpoint, and collisions only cost
// extra work at search time, never correctness.
func generateChain(src *Source, fn HashFunc, chainLen, hashLen int) Chain {
	start := src.Uint32()
	t := start

	for i := 0; i < chainLen; i++ {
		t = reduce(fn(t), hashLen, uint32(i))
	}

	return Chain{Startpoint: start, Endpoint: t}
}

// regenerateChain replays a chain from startpoint, comparing the freshly
// computed digest byte-for-byte against targetHash at every step. On the
// first match it returns the current chain element (the recovered seed)
// and true. If the chain exhausts chainLen steps without a match, it
// returns (0, false): the candidate endpoint match was a false positive
// caused by an endpoint collision, and the caller should continue
// scanning the table's remaining duplicate-endpoint entries.
//
// Matching before the first reduction (i.e. at i==0, tmp==startpoint) is
// intentional: it is what lets the chain report its own startpoint as
// the seed when the startpoint itself hashes to the target.
func regenerateChain(startpoint uint32, chainLen int, fn HashFunc, hashLen int, targetHash []byte) (uint32, bool) {
	tmp := startpoint

	for i := 0; i < chainLen; i++ {
		digest := fn(tmp)
		if bytes.Equal(digest[:hashLen], targetHash[:hashLen]) {
			return tmp, true
		}
		tmp = reduce(digest, hashLen, uint32(i))
	}

	return 0, false
}
