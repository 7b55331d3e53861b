// generate.go -- 'generate' command implementation
//
// (c) 2024 the go-rainbow authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/opencoff/go-rainbow"
	flag "github.com/opencoff/pflag"
)

type generateCommand struct{}

func init() {
	registerCommand("generate", &generateCommand{})
}

func (g *generateCommand) run(args []string, opt *rainbow.Option) error {
	var config string

	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	fs.SetOutput(os.Stdout)
	fs.StringVarP(&config, "config", "c", "", "Batch-generate tables from job `FILE`")
	fs.Usage = func() {
		fmt.Printf(`Usage: generate [options] CHAINNUM CHAINLEN TABLECOUNT HASHNAME
       generate --config JOB.yaml

options:
`)
		fs.PrintDefaults()
		os.Exit(0)
	}

	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	f := rainbow.NewFacade(opt)
	ctx := context.Background()

	if config != "" {
		job, err := rainbow.LoadJob(config)
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}

		m, err := f.GenerateJob(ctx, job)
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}

		opt.Printf("%d tables written\n", len(m.Entries))
		return nil
	}

	rest := fs.Args()
	if len(rest) != 4 {
		return fmt.Errorf("generate: expected CHAINNUM CHAINLEN TABLECOUNT HASHNAME")
	}

	chainNum, err := parseUint32(rest[0])
	if err != nil {
		return fmt.Errorf("generate: chainNum: %w", err)
	}
	chainLen, err := parseUint32(rest[1])
	if err != nil {
		return fmt.Errorf("generate: chainLen: %w", err)
	}
	tableCount, err := parseUint32(rest[2])
	if err != nil {
		return fmt.Errorf("generate: tableCount: %w", err)
	}
	hashName := rest[3]

	m, err := f.Generate(ctx, hashName, chainNum, chainLen, tableCount, ".")
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	opt.Printf("%d tables written\n", len(m.Entries))
	return nil
}

func parseUint32(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}
