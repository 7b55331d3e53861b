// crack.go - exhaustive search over the full 32-bit seed space
//
// (c) 2024 the go-rainbow authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package rainbow

import (
	"bytes"
	"context"
	"runtime"
	"sync"
	"sync/atomic"
)

// Crack fans [start, end] (inclusive) across runtime.NumCPU() goroutines
// in equal contiguous slices -- the last worker absorbs the remainder --
// each comparing fn(seed) against targetHash. A shared atomic flag signals
// early termination as soon as any worker finds a match; workers check it
// once per iteration. The discovering worker's seed is the one reported;
// if several seeds hash to the same targetHash, any one of them is an
// equally valid answer, so the race between discoverers is benign.
//
// ctx cancellation is polled less often than the found flag: a worker
// checks it whenever the seed it is about to test is a multiple of 1024,
// so it stops within at most 1024 iterations of the cancellation. A
// search cancelled before any worker found a match reports a miss.
//
// Crack is not a failure when no seed is found in range; that is reported
// as (0, false).
func Crack(ctx context.Context, fn HashFunc, hashLen int, targetHash []byte, start, end uint32) (uint32, bool) {
	w := runtime.NumCPU()
	if w <= 0 {
		w = 1
	}

	// A range smaller than the worker count would otherwise make share
	// (total/w) truncate to 0, underflowing hi := lo+share-1 for every
	// non-last worker. Clamping w to total keeps share >= 1 always, so
	// every worker's slice stays within [start, end].
	total := uint64(end-start) + 1
	if uint64(w) > total {
		w = int(total)
	}

	var found atomic.Bool
	var seed atomic.Uint32
	var wg sync.WaitGroup

	share := total / uint64(w)

	lo := uint64(start)
	for i := 0; i < w; i++ {
		hi := lo + share - 1
		if i == w-1 {
			hi = uint64(end)
		}

		wg.Add(1)
		go func(lo, hi uint32) {
			defer wg.Done()
			crackWorker(ctx, fn, hashLen, targetHash, lo, hi, &found, &seed)
		}(uint32(lo), uint32(hi))

		lo = hi + 1
	}
	wg.Wait()

	if found.Load() {
		return seed.Load(), true
	}
	return 0, false
}

func crackWorker(ctx context.Context, fn HashFunc, hashLen int, targetHash []byte, lo, hi uint32, found *atomic.Bool, seed *atomic.Uint32) {
	for i := lo; ; i++ {
		if found.Load() {
			return
		}
		if i%1024 == 0 {
			select {
			case <-ctx.Done():
				return
			default:
			}
		}

		if bytes.Equal(fn(i)[:hashLen], targetHash[:hashLen]) {
			seed.Store(i)
			found.Store(true)
			return
		}

		if i == hi {
			return
		}
	}
}
