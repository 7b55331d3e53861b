// manifest.go - table-set manifest: bookkeeping over a batch of tables
//
// (c) 2024 the go-rainbow authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package rainbow

import (
	"bytes"
	"compress/gzip"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/dchest/siphash"
	"github.com/klauspost/compress/zstd"
)

// Compression selects how a Manifest is stored on disk. The manifest is
// pure bookkeeping metadata -- unlike a .rt table file, it is never
// memory-mapped, so compressing it trades a little CPU for a smaller
// footprint on very large batches with no effect on search behavior.
type Compression int

const (
	NoCompression Compression = iota
	Gzip
	Zstd
)

// manifestMagic identifies a manifest file. It is distinct from, and
// never written into, a raw .rt table file -- the manifest is pure
// bookkeeping about a batch of tables, not a replacement for the fixed
// 8-byte-record table format described in table.go.
const manifestMagic = "RBMF"

// ManifestEntry describes one table produced by a generate run.
type ManifestEntry struct {
	Filename string
	HashName string
	ChainNum uint32
	ChainLen uint32
	Index    uint32
}

// Manifest is an ordered list of ManifestEntry, each protected by a
// siphash integrity tag, with the whole file trailer-checksummed with
// SHA-512/256 -- a "frozen writer / verified reader" shape (header,
// checksummed body, trailer) at a small scale.
type Manifest struct {
	Entries []ManifestEntry
}

// WriteManifest writes m to path, compressed per mode.
func WriteManifest(path string, m *Manifest, mode Compression) (err error) {
	fd, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()

	var body bytes.Buffer
	if err := encodeManifestBody(&body, m); err != nil {
		return fmt.Errorf("manifest: %w", err)
	}

	var out io.WriteCloser
	switch mode {
	case Gzip:
		out = gzip.NewWriter(fd)
	case Zstd:
		out, err = zstd.NewWriter(fd)
		if err != nil {
			return fmt.Errorf("manifest: %w", err)
		}
	default:
		_, err := fd.Write(body.Bytes())
		return err
	}

	if _, err := out.Write(body.Bytes()); err != nil {
		return fmt.Errorf("manifest: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("manifest: %w", err)
	}

	return nil
}

func encodeManifestBody(w io.Writer, m *Manifest) error {
	salt := randBytes(16)
	h := sha512.New512_256()
	tee := io.MultiWriter(w, h)

	if _, err := tee.Write([]byte(manifestMagic)); err != nil {
		return err
	}
	if _, err := tee.Write(salt); err != nil {
		return err
	}

	var count [4]byte
	binary.BigEndian.PutUint32(count[:], uint32(len(m.Entries)))
	if _, err := tee.Write(count[:]); err != nil {
		return err
	}

	for _, e := range m.Entries {
		if err := writeManifestEntry(tee, salt, e); err != nil {
			return err
		}
	}

	sum := h.Sum(nil)
	_, err := w.Write(sum)
	return err
}

func writeManifestEntry(w io.Writer, salt []byte, e ManifestEntry) error {
	var hdr [12]byte
	binary.BigEndian.PutUint32(hdr[0:4], e.ChainNum)
	binary.BigEndian.PutUint32(hdr[4:8], e.ChainLen)
	binary.BigEndian.PutUint32(hdr[8:12], e.Index)

	tag := manifestTag(salt, hdr[:], e.HashName, e.Filename)

	var lens [2]byte
	lens[0] = byte(len(e.HashName))
	lens[1] = byte(len(e.Filename))

	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	if _, err := w.Write(lens[:]); err != nil {
		return err
	}
	if _, err := w.Write([]byte(e.HashName)); err != nil {
		return err
	}
	if _, err := w.Write([]byte(e.Filename)); err != nil {
		return err
	}

	var tagb [8]byte
	binary.BigEndian.PutUint64(tagb[:], tag)
	_, err := w.Write(tagb[:])
	return err
}

func manifestTag(salt, hdr []byte, hashName, filename string) uint64 {
	h := siphash.New(salt)
	h.Write(hdr)
	h.Write([]byte(hashName))
	h.Write([]byte(filename))
	return h.Sum64()
}

// ReadManifest reads and verifies a manifest previously written by
// WriteManifest. mode must match how the file was written.
func ReadManifest(path string, mode Compression) (*Manifest, error) {
	fd, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	defer fd.Close()

	var r io.Reader = fd
	switch mode {
	case Gzip:
		gz, err := gzip.NewReader(fd)
		if err != nil {
			return nil, fmt.Errorf("manifest: %w", err)
		}
		defer gz.Close()
		r = gz
	case Zstd:
		zr, err := zstd.NewReader(fd)
		if err != nil {
			return nil, fmt.Errorf("manifest: %w", err)
		}
		defer zr.Close()
		r = zr
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}

	return decodeManifestBody(raw)
}

func decodeManifestBody(raw []byte) (*Manifest, error) {
	const trailerSize = sha512.Size256

	if len(raw) < len(manifestMagic)+16+4+trailerSize {
		return nil, fmt.Errorf("manifest: %w", ErrManifestCorrupt)
	}

	body := raw[:len(raw)-trailerSize]
	trailer := raw[len(raw)-trailerSize:]

	h := sha512.New512_256()
	h.Write(body)
	if !bytes.Equal(h.Sum(nil), trailer) {
		return nil, fmt.Errorf("manifest: %w", ErrManifestCorrupt)
	}

	if string(body[:len(manifestMagic)]) != manifestMagic {
		return nil, fmt.Errorf("manifest: bad magic: %w", ErrManifestCorrupt)
	}
	body = body[len(manifestMagic):]

	salt := body[:16]
	body = body[16:]

	count := binary.BigEndian.Uint32(body[:4])
	body = body[4:]

	m := &Manifest{Entries: make([]ManifestEntry, 0, count)}

	for i := uint32(0); i < count; i++ {
		e, rest, err := readManifestEntry(salt, body)
		if err != nil {
			return nil, err
		}
		m.Entries = append(m.Entries, e)
		body = rest
	}

	return m, nil
}

func readManifestEntry(salt, body []byte) (ManifestEntry, []byte, error) {
	if len(body) < 14 {
		return ManifestEntry{}, nil, fmt.Errorf("manifest: %w", ErrManifestCorrupt)
	}

	hdr := body[:12]
	chainNum := binary.BigEndian.Uint32(hdr[0:4])
	chainLen := binary.BigEndian.Uint32(hdr[4:8])
	index := binary.BigEndian.Uint32(hdr[8:12])

	hashNameLen := int(body[12])
	filenameLen := int(body[13])
	body = body[14:]

	need := hashNameLen + filenameLen + 8
	if len(body) < need {
		return ManifestEntry{}, nil, fmt.Errorf("manifest: %w", ErrManifestCorrupt)
	}

	hashName := string(body[:hashNameLen])
	body = body[hashNameLen:]
	filename := string(body[:filenameLen])
	body = body[filenameLen:]

	wantTag := manifestTag(salt, hdr, hashName, filename)
	gotTag := binary.BigEndian.Uint64(body[:8])
	body = body[8:]

	if wantTag != gotTag {
		return ManifestEntry{}, nil, fmt.Errorf("manifest: entry %s: %w", filename, ErrManifestCorrupt)
	}

	return ManifestEntry{
		Filename: filename,
		HashName: hashName,
		ChainNum: chainNum,
		ChainLen: chainLen,
		Index:    index,
	}, body, nil
}
