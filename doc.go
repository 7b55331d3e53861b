// doc.go - top level documentation
//
// (c) 2024 the go-rainbow authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

// Package rainbow implements a seed-recovery toolkit for 32-bit-seeded
// pseudorandom generators that have been fed through a fixed hash
// pipeline. It inverts hash(seed) either by exhaustive search over the
// full 32-bit seed space, or by building and querying rainbow tables:
// a time-memory trade-off structure built from chains of repeated
// reduce(hash(x)) application.
//
// The primary entry points are:
//
//   - Registry / DefaultRegistry: name -> hash function lookup
//   - Build: generate a rainbow table file for a given hash function
//   - Sort: put a freshly generated table into search-ready order
//   - OpenTable / SearchHashInMemory: recover a seed from a target hash using a table
//   - Crack: recover a seed from a target hash by exhaustive search
//   - Facade: ties the above into the generate/search/crack operations used by cmd/rainbow
//
// Table files are a bare array of 8-byte (startpoint, endpoint) records,
// sorted by endpoint; the file name carries the hash name and chain
// parameters (see Make/Parse in table.go). This on-disk layout has no
// header, footer or checksum and is not altered by the optional
// Manifest bookkeeping in manifest.go.
package rainbow
