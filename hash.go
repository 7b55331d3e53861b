// hash.go - pluggable hash-function registry
//
// (c) 2024 the go-rainbow authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package rainbow

import (
	"encoding/binary"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/dchest/siphash"
	"golang.org/x/crypto/blake2s"
)

// MaxHashSize bounds the digest length any registered hash function may
// declare. Register and DecodeHash reject lengths outside 1..MaxHashSize.
const MaxHashSize = 64

// HashFunc computes the hash of a 32-bit seed. Implementations must be
// deterministic and pure with respect to seed, and must be safe for
// concurrent use by multiple goroutines -- the table builder and the
// exhaustive cracker both call it from many workers at once.
type HashFunc func(seed uint32) []byte

// HashFuncEntry names a registered hash function and its fixed digest
// length. hashLen is always 1..=MaxHashSize.
type HashFuncEntry struct {
	Name    string
	Fn      HashFunc
	HashLen int
}

// Registry is a name -> HashFuncEntry lookup table. The zero value is
// ready to use. Registry is safe for concurrent Register/Resolve calls.
//
// This replaces the original tool's convention of scanning a fixed set of
// shared-object filenames (hashlib0.so .. hashlib9.so) for a well-known
// exported symbol: callers register hash functions explicitly at process
// start instead. The dlopen-based convention is still available as an
// opt-in adapter behind the same contract -- see dlopen_linux.go.
type Registry struct {
	mu sync.RWMutex
	m  map[string]HashFuncEntry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{m: make(map[string]HashFuncEntry)}
}

// Register adds (or replaces) a hash function under name. It panics if
// hashLen is out of range, matching the library's "this is a programmer
// error at init time" treatment of malformed registrations.
func (r *Registry) Register(name string, fn HashFunc, hashLen int) {
	if hashLen <= 0 || hashLen > MaxHashSize {
		panic("rainbow: hashLen out of range")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.m == nil {
		r.m = make(map[string]HashFuncEntry)
	}
	r.m[name] = HashFuncEntry{Name: name, Fn: fn, HashLen: hashLen}
}

// Resolve looks up name and returns its hash function and digest length.
// ok is false if no such name has been registered.
func (r *Registry) Resolve(name string) (fn HashFunc, hashLen int, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.m[name]
	if !ok {
		return nil, 0, false
	}
	return e.Fn, e.HashLen, true
}

// Names returns the registered hash function names, in no particular
// order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.m))
	for n := range r.m {
		names = append(names, n)
	}
	return names
}

// DefaultRegistry is populated at init() time with the hash functions
// built into this module. Callers may Register additional functions into
// it, or construct their own Registry for isolation (e.g. in tests).
var DefaultRegistry = NewRegistry()

// sipKey is a fixed, module-wide siphash key used by the built-in
// "siphash" hash function. It is not a secret -- the function exists to
// exercise a different digest shape (8 bytes) than wikihash, not to
// provide any cryptographic guarantee.
var sipKey = [16]byte{0x73, 0x65, 0x65, 0x64, 0x2d, 0x72, 0x61, 0x69, 0x6e, 0x62, 0x6f, 0x77, 0x2d, 0x6b, 0x30, 0x31}

func seedBytes(seed uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], seed)
	return b[:]
}

func init() {
	DefaultRegistry.Register("wikihash", wikihash, 16)

	DefaultRegistry.Register("siphash", func(seed uint32) []byte {
		h := siphash.New(sipKey[:])
		h.Write(seedBytes(seed))
		var out [8]byte
		binary.LittleEndian.PutUint64(out[:], h.Sum64())
		return out[:]
	}, 8)

	DefaultRegistry.Register("xxhash", func(seed uint32) []byte {
		sum := xxhash.Sum64(seedBytes(seed))
		var out [8]byte
		binary.LittleEndian.PutUint64(out[:], sum)
		return out[:]
	}, 8)

	DefaultRegistry.Register("blake2s256", func(seed uint32) []byte {
		sum := blake2s.Sum256(seedBytes(seed))
		out := make([]byte, len(sum))
		copy(out, sum[:])
		return out
	}, 32)
}
