// open.go - opening a rainbow table file for search
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

// Table is a read-only, memory-mapped view of a sorted rainbow table
// file. It implements ChainArray directly against the mapped bytes --
// no bulk decode into a Go slice is performed.
type Table struct {
	Name TableName

	fd *os.File
	mm *mmap.Mapping
	bs []byte
}

// OpenTable parses path's filename for table metadata, memory-maps the
// file read-only, and validates that its size matches chainNum*8
// exactly. The returned Table must be Closed when no longer needed.
func OpenTable(path string) (*Table, error) {
	name, err := Parse(path)
	if err != nil {
		return nil, err
	}

	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}

	st, err := fd.Stat()
	if err != nil {
		fd.Close()
		return nil, fmt.Errorf("open table: %w", err)
	}

	want := int64(name.ChainNum) * chainRecordSize
	if st.Size() != want {
		fd.Close()
		return nil, fmt.Errorf("open table: %s: %w (exp %d, saw %d)", path, ErrBadTableSize, want, st.Size())
	}

	t := &Table{Name: name, fd: fd}

	if st.Size() == 0 {
		return t, nil
	}

	mm := mmap.New(fd)
	mapping, err := mm.Map(st.Size(), 0, mmap.PROT_READ, mmap.F_READAHEAD)
	if err != nil {
		fd.Close()
		return nil, fmt.Errorf("open table: mmap: %w", err)
	}

	t.mm = mapping
	t.bs = mapping.Bytes()
	return t, nil
}

// Len returns the number of chains in the table.
func (t *Table) Len() uint32 { return t.Name.ChainNum }

// At returns the i'th chain record.
func (t *Table) At(i uint32) Chain {
	off := i * chainRecordSize
	return decodeChain(t.bs[off : off+chainRecordSize])
}

// Close unmaps and closes the underlying file.
func (t *Table) Close() error {
	if t.mm != nil {
		t.mm.Unmap()
		t.mm = nil
	}
	return t.fd.Close()
}
