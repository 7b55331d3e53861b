// crack.go -- 'crack' command implementation
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

	"github.com/opencoff/go-rainbow"
	flag "github.com/opencoff/pflag"
)

type crackCommand struct{}

func init() {
	registerCommand("crack", &crackCommand{})
}

func (c *crackCommand) run(args []string, opt *rainbow.Option) error {
	fs := flag.NewFlagSet("crack", flag.ExitOnError)
	fs.SetOutput(os.Stdout)
	fs.Usage = func() {
		fmt.Printf("Usage: crack HASHNAME TARGETHASH\n")
		fs.PrintDefaults()
		os.Exit(0)
	}

	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("crack: %w", err)
	}

	rest := fs.Args()
	if len(rest) != 2 {
		return fmt.Errorf("crack: expected HASHNAME TARGETHASH")
	}

	f := rainbow.NewFacade(opt)
	seed, ok, err := f.Crack(context.Background(), rest[0], rest[1])
	if err != nil {
		return fmt.Errorf("crack: %w", err)
	}

	if ok {
		fmt.Printf("[+] Seed found: %d\n", seed)
	} else {
		fmt.Printf("[-] Seed not found :-(\n")
	}

	return nil
}
