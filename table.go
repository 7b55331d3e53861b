// table.go - table naming and raw on-disk record layout
//
// (c) 2024 the go-rainbow authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package rainbow

import (
	"encoding/binary"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// chainRecordSize is the on-disk size of a single Chain record: a 4-byte
// little-endian startpoint followed by a 4-byte little-endian endpoint.
// No header, no footer, no checksum; a table file's size is always
// exactly chainRecordSize * chainNum.
const chainRecordSize = 8

// TableName is the parsed form of a rainbow table's filename:
// "<hashName>.<chainNum>.<chainLen>.<index>.rt"
type TableName struct {
	HashName string
	ChainNum uint32
	ChainLen uint32
	Index    uint32
}

// Make formats the canonical table filename for the given parameters.
func Make(hashName string, chainNum, chainLen, index uint32) string {
	return fmt.Sprintf("%s.%d.%d.%d.rt", hashName, chainNum, chainLen, index)
}

// String formats t back into its canonical filename.
func (t TableName) String() string {
	return Make(t.HashName, t.ChainNum, t.ChainLen, t.Index)
}

// Parse extracts the four table-name fields from path. Only the
// basename is consulted; directory components are stripped first.
// Returns ErrMalformedTableName if the name doesn't have the expected
// "<name>.<num>.<num>.<num>.rt" shape.
func Parse(path string) (TableName, error) {
	base := filepath.Base(path)

	if !strings.HasSuffix(base, ".rt") {
		return TableName{}, fmt.Errorf("%s: %w", base, ErrMalformedTableName)
	}
	base = strings.TrimSuffix(base, ".rt")

	fields := strings.Split(base, ".")
	if len(fields) < 4 {
		return TableName{}, fmt.Errorf("%s: %w", base, ErrMalformedTableName)
	}

	// The hash name itself may contain dots; the last three fields are
	// always chainNum, chainLen, index.
	n := len(fields)
	hashName := strings.Join(fields[:n-3], ".")

	chainNum, err1 := strconv.ParseUint(fields[n-3], 10, 32)
	chainLen, err2 := strconv.ParseUint(fields[n-2], 10, 32)
	index, err3 := strconv.ParseUint(fields[n-1], 10, 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return TableName{}, fmt.Errorf("%s: %w", base, ErrMalformedTableName)
	}

	return TableName{
		HashName: hashName,
		ChainNum: uint32(chainNum),
		ChainLen: uint32(chainLen),
		Index:    uint32(index),
	}, nil
}

// encodeChain writes c into the first chainRecordSize bytes of b.
func encodeChain(b []byte, c Chain) {
	binary.LittleEndian.PutUint32(b[0:4], c.Startpoint)
	binary.LittleEndian.PutUint32(b[4:8], c.Endpoint)
}

// decodeChain reads a Chain from the first chainRecordSize bytes of b.
func decodeChain(b []byte) Chain {
	return Chain{
		Startpoint: binary.LittleEndian.Uint32(b[0:4]),
		Endpoint:   binary.LittleEndian.Uint32(b[4:8]),
	}
}

// encodeChains serializes chains into a freshly allocated byte buffer.
func encodeChains(chains []Chain) []byte {
	buf := make([]byte, len(chains)*chainRecordSize)
	for i, c := range chains {
		encodeChain(buf[i*chainRecordSize:], c)
	}
	return buf
}
