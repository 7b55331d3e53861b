// sort.go - in-place sort of a memory-mapped table by endpoint
//
// (c) 2024 the go-rainbow authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package rainbow

import (
	"fmt"
	"os"

	"github.com/opencoff/go-mmap"
)

// Sort reopens tableName read/write, memory-maps it whole, and performs
// an in-place recursive quicksort over its chain array keyed by
// endpoint. The mapping is unmapped (and thus flushed) before Sort
// returns. For chainNum >= 2, chainNum must equal the number of chains
// actually present in the file; a mismatch is an error rather than a
// silent truncation. A chainNum below 2 returns nil at once, without
// opening or checking the file.
func Sort(tableName string, chainNum uint32) error {
	if chainNum < 2 {
		return nil
	}

	fd, err := os.OpenFile(tableName, os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("sort: %w", err)
	}
	defer fd.Close()

	st, err := fd.Stat()
	if err != nil {
		return fmt.Errorf("sort: %w", err)
	}

	want := int64(chainNum) * chainRecordSize
	if st.Size() != want {
		return fmt.Errorf("sort: %s: %w (exp %d, saw %d)", tableName, ErrBadTableSize, want, st.Size())
	}

	mm := mmap.New(fd)
	mapping, err := mm.Map(st.Size(), 0, mmap.PROT_READ|mmap.PROT_WRITE, 0)
	if err != nil {
		return fmt.Errorf("sort: mmap: %w", err)
	}
	defer mapping.Unmap()

	quicksortChains(mapping.Bytes(), 0, chainNum)
	return nil
}

// quicksortChains sorts the chain records in bs[beg*8:end*8] by endpoint,
// in place. The pivot is the first element of the range; partitioning is
// the classical in-place Hoare-style scheme with swaps. Duplicate
// endpoints are permitted and end up adjacent -- stability is not
// required, only that ties form a contiguous run, which this scheme
// satisfies.
func quicksortChains(bs []byte, beg, end uint32) {
	if end <= beg+1 {
		return
	}

	piv := chainEndpointAt(bs, beg)
	l, r := beg+1, end

	for l < r {
		if chainEndpointAt(bs, l) <= piv {
			l++
		} else {
			r--
			swapChains(bs, l, r)
		}
	}
	l--
	swapChains(bs, l, beg)

	quicksortChains(bs, beg, l)
	quicksortChains(bs, r, end)
}

func chainEndpointAt(bs []byte, i uint32) uint32 {
	off := i * chainRecordSize
	return decodeChain(bs[off : off+chainRecordSize]).Endpoint
}

func swapChains(bs []byte, i, j uint32) {
	if i == j {
		return
	}
	oi, oj := i*chainRecordSize, j*chainRecordSize
	var tmp [chainRecordSize]byte
	copy(tmp[:], bs[oi:oi+chainRecordSize])
	copy(bs[oi:oi+chainRecordSize], bs[oj:oj+chainRecordSize])
	copy(bs[oj:oj+chainRecordSize], tmp[:])
}
