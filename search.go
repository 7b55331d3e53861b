// search.go - table lookup: binary search, rewind loop, chain replay
//
// (c) 2024 the go-rainbow authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package rainbow

// ChainArray is anything that behaves like a sorted (by endpoint), dense
// array of Chain records: an open on-disk Table, or a plain in-memory
// slice of Chain for tests and synthetic tables.
type ChainArray interface {
	Len() uint32
	At(i uint32) Chain
}

// Chains is a ChainArray backed by an ordinary in-memory slice.
type Chains []Chain

func (c Chains) Len() uint32       { return uint32(len(c)) }
func (c Chains) At(i uint32) Chain { return c[i] }

// BinarySearch returns the smallest index k with table[k].Endpoint ==
// endpoint, implemented as a lower-bound binary search followed by a
// backward scan over equal predecessors. ok is false if no entry in the
// table has that endpoint.
func BinarySearch(table ChainArray, endpoint uint32) (index uint32, ok bool) {
	n := table.Len()
	if n == 0 {
		return 0, false
	}

	beg, end := uint32(0), n-1
	for beg < end {
		mid := beg + (end-beg)/2
		switch {
		case endpoint < table.At(mid).Endpoint:
			end = mid
		case endpoint > table.At(mid).Endpoint:
			beg = mid + 1
		default:
			for mid > 0 && table.At(mid-1).Endpoint == endpoint {
				mid--
			}
			return mid, true
		}
	}

	if table.At(beg).Endpoint == endpoint {
		return beg, true
	}
	return 0, false
}

// rewindCandidate computes the endpoint candidate for rewind depth j: it
// assumes targetHash was produced at step j of some unknown chain,
// replays the remaining chainLen-1-j reductions/hashes forward, and
// returns the resulting endpoint.
func rewindCandidate(targetHash []byte, j int, chainLen int, fn HashFunc, hashLen int) uint32 {
	tmp := targetHash
	i := j
	for i < chainLen-1 {
		r := reduce(tmp, hashLen, uint32(i))
		tmp = fn(r)
		i++
	}
	return reduce(tmp, hashLen, uint32(i))
}

// SearchHashInMemory is the core rainbow-table search algorithm: for
// each rewind depth j from chainLen-1 down to 0, it computes the
// endpoint candidate a chain would have if targetHash occurred at step
// j, binary-searches that candidate, and replays every chain sharing
// that endpoint to check for a true match (tolerating endpoint
// collisions by scanning every consecutive duplicate). It returns the
// recovered seed and true on success, or (0, false) on a clean miss.
func SearchHashInMemory(table ChainArray, chainLen int, fn HashFunc, hashLen int, targetHash []byte) (uint32, bool) {
	n := table.Len()
	if n == 0 {
		return 0, false
	}

	for j := chainLen - 1; j >= 0; j-- {
		r := rewindCandidate(targetHash, j, chainLen, fn, hashLen)

		index, ok := BinarySearch(table, r)
		if !ok {
			continue
		}

		for i := index; i < n && table.At(i).Endpoint == r; i++ {
			if seed, ok := regenerateChain(table.At(i).Startpoint, chainLen, fn, hashLen, targetHash); ok {
				return seed, true
			}
		}
	}

	return 0, false
}
