// facade.go - orchestrates generate/search/crack
//
// (c) 2024 the go-rainbow authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package rainbow

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
)

// Option carries facade-wide knobs: verbosity and the collaborators
// (registry, PRNG source, open-table cache) an operation should use. The
// zero value is usable -- it falls back to DefaultRegistry and a fresh
// Source, with no open-table caching.
type Option struct {
	Verbose  bool
	Registry *Registry
	Source   *Source
	Cache    *TableCache
}

// Printf writes to stdout only when Verbose is set, mirroring this
// codebase's existing verbose-gated CLI output convention.
func (o *Option) Printf(format string, args ...interface{}) {
	if o.Verbose {
		fmt.Printf(format, args...)
	}
}

func (o *Option) registry() *Registry {
	if o.Registry != nil {
		return o.Registry
	}
	return DefaultRegistry
}

func (o *Option) source() *Source {
	if o.Source != nil {
		return o.Source
	}
	return NewSource()
}

// Facade ties the table builder, sorter, searcher and cracker together
// behind the three CLI-level operations: Generate, Search and Crack.
type Facade struct {
	Opt *Option
}

// NewFacade returns a Facade; a nil opt is replaced with a fresh zero
// Option.
func NewFacade(opt *Option) *Facade {
	if opt == nil {
		opt = &Option{}
	}
	return &Facade{Opt: opt}
}

// Generate builds and sorts tableCount tables of chainNum chains (each
// chainLen rounds long) under outputDir, using the named hash function,
// and returns a Manifest describing what it produced. Each table is
// built under a uuid-suffixed temporary name and atomically renamed to
// its canonical name only once both the build and the sort succeed --
// a failure leaves the temporary file behind rather than a half-written
// table at its canonical, discoverable name.
func (f *Facade) Generate(ctx context.Context, hashName string, chainNum, chainLen, tableCount uint32, outputDir string) (*Manifest, error) {
	fn, hashLen, ok := f.Opt.registry().Resolve(hashName)
	if !ok {
		return nil, fmt.Errorf("generate: %s: %w", hashName, ErrHashLibMissing)
	}

	src := f.Opt.source()
	m := &Manifest{}

	for i := uint32(0); i < tableCount; i++ {
		select {
		case <-ctx.Done():
			return m, ctx.Err()
		default:
		}

		name := Make(hashName, chainNum, chainLen, i)
		final := filepath.Join(outputDir, name)
		tmp := final + ".tmp-" + uuid.NewString()

		start := time.Now()
		if err := Build(src, chainNum, chainLen, fn, hashLen, tmp); err != nil {
			return m, fmt.Errorf("generate: %w", err)
		}
		if err := Sort(tmp, chainNum); err != nil {
			return m, fmt.Errorf("generate: %w", err)
		}
		if err := os.Rename(tmp, final); err != nil {
			return m, fmt.Errorf("generate: %w", err)
		}

		elapsed := time.Since(start).Seconds()
		f.Opt.Printf("[%d/%d] %s: %s chains (%s) in %.2fs (%.0f chains/s)\n",
			i+1, tableCount, name,
			humanize.Comma(int64(chainNum)),
			humanize.Bytes(uint64(chainNum)*chainRecordSize),
			elapsed, ratePerSecond(chainNum, elapsed))

		m.Entries = append(m.Entries, ManifestEntry{
			Filename: name,
			HashName: hashName,
			ChainNum: chainNum,
			ChainLen: chainLen,
			Index:    i,
		})
	}

	return m, nil
}

func ratePerSecond(n uint32, elapsed float64) float64 {
	if elapsed <= 0 {
		return 0
	}
	return float64(n) / elapsed
}

// GenerateJob runs every TableGroup in job sequentially, accumulating a
// single Manifest covering the whole batch.
func (f *Facade) GenerateJob(ctx context.Context, job *Job) (*Manifest, error) {
	m := &Manifest{}

	for _, g := range job.Tables {
		sub, err := f.generateGroup(ctx, job, g)
		if err != nil {
			m.Entries = append(m.Entries, sub.Entries...)
			return m, err
		}
		m.Entries = append(m.Entries, sub.Entries...)
	}

	return m, nil
}

func (f *Facade) generateGroup(ctx context.Context, job *Job, g TableGroup) (*Manifest, error) {
	fn, hashLen, ok := f.Opt.registry().Resolve(job.HashName)
	if !ok {
		return &Manifest{}, fmt.Errorf("generate: %s: %w", job.HashName, ErrHashLibMissing)
	}

	src := f.Opt.source()
	m := &Manifest{}

	for i := g.StartIndex; i < g.StartIndex+g.Count; i++ {
		select {
		case <-ctx.Done():
			return m, ctx.Err()
		default:
		}

		name := Make(job.HashName, g.ChainNum, job.ChainLen, i)
		final := filepath.Join(job.OutputDir, name)
		tmp := final + ".tmp-" + uuid.NewString()

		start := time.Now()
		if err := Build(src, g.ChainNum, job.ChainLen, fn, hashLen, tmp); err != nil {
			return m, fmt.Errorf("generate: %w", err)
		}
		if err := Sort(tmp, g.ChainNum); err != nil {
			return m, fmt.Errorf("generate: %w", err)
		}
		if err := os.Rename(tmp, final); err != nil {
			return m, fmt.Errorf("generate: %w", err)
		}

		elapsed := time.Since(start).Seconds()
		f.Opt.Printf("[%s] %s chains (%s) in %.2fs (%.0f chains/s)\n",
			name,
			humanize.Comma(int64(g.ChainNum)),
			humanize.Bytes(uint64(g.ChainNum)*chainRecordSize),
			elapsed, ratePerSecond(g.ChainNum, elapsed))

		m.Entries = append(m.Entries, ManifestEntry{
			Filename: name,
			HashName: job.HashName,
			ChainNum: g.ChainNum,
			ChainLen: job.ChainLen,
			Index:    i,
		})
	}

	return m, nil
}

// Search opens tablePath (through the facade's table cache if one is
// configured), parses its hash name from the filename, decodes
// targetHashHex and runs the rainbow-table search algorithm against it.
func (f *Facade) Search(tablePath, targetHashHex string) (uint32, bool, error) {
	name, err := Parse(tablePath)
	if err != nil {
		return 0, false, fmt.Errorf("search: %w", err)
	}

	fn, hashLen, ok := f.Opt.registry().Resolve(name.HashName)
	if !ok {
		return 0, false, fmt.Errorf("search: %s: %w", name.HashName, ErrHashLibMissing)
	}

	target, err := DecodeHash(targetHashHex, hashLen)
	if err != nil {
		return 0, false, fmt.Errorf("search: %w", err)
	}

	var table *Table
	if f.Opt.Cache != nil {
		table, err = f.Opt.Cache.Get(tablePath)
	} else {
		table, err = OpenTable(tablePath)
	}
	if err != nil {
		return 0, false, fmt.Errorf("search: %w", err)
	}
	if f.Opt.Cache == nil {
		defer table.Close()
	}

	seed, ok := SearchHashInMemory(table, int(name.ChainLen), fn, hashLen, target)
	return seed, ok, nil
}

// Crack runs the exhaustive cracker against the full 32-bit seed space
// for the named hash function.
func (f *Facade) Crack(ctx context.Context, hashName, targetHashHex string) (uint32, bool, error) {
	fn, hashLen, ok := f.Opt.registry().Resolve(hashName)
	if !ok {
		return 0, false, fmt.Errorf("crack: %s: %w", hashName, ErrHashLibMissing)
	}

	target, err := DecodeHash(targetHashHex, hashLen)
	if err != nil {
		return 0, false, fmt.Errorf("crack: %w", err)
	}

	seed, found := Crack(ctx, fn, hashLen, target, 0, 0xffffffff)
	return seed, found, nil
}
