// errors.go - public errors exposed by rainbow
//
// (c) 2024 the go-rainbow authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package rainbow

import (
	"errors"
	"fmt"
)

func errShortWrite(who string, exp, saw int) error {
	return fmt.Errorf("%s: incomplete write; exp %d, saw %d", who, exp, saw)
}

var (
	// ErrHashLibMissing is returned when a named hash function cannot be
	// resolved in the registry.
	ErrHashLibMissing = errors.New("hash function not registered")

	// ErrMalformedTableName is returned when a table filename cannot be
	// parsed into its (hashName, chainNum, chainLen, index) components.
	ErrMalformedTableName = errors.New("malformed table filename")

	// ErrBadTableSize is returned when a table file's size is not a
	// multiple of the 8-byte chain record size, or doesn't match the
	// chain count encoded in its filename.
	ErrBadTableSize = errors.New("table file size does not match chain count")

	// ErrManifestCorrupt is returned when a table-set manifest fails its
	// integrity check.
	ErrManifestCorrupt = errors.New("manifest checksum mismatch")
)
