// search.go -- 'search' command implementation
//
// (c) 2024 the go-rainbow authors
//
// This software does not come with any express or implied
// warranty; it is provided "as is". No claim is made to its
// suitability for any purpose.

package main

import (
	"fmt"
	"os"

	"github.com/opencoff/go-rainbow"
	flag "github.com/opencoff/pflag"
)

type searchCommand struct{}

func init() {
	registerCommand("search", &searchCommand{})
}

func (s *searchCommand) run(args []string, opt *rainbow.Option) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)
	fs.SetOutput(os.Stdout)
	fs.Usage = func() {
		fmt.Printf("Usage: search TABLEPATH TARGETHASH\n")
		fs.PrintDefaults()
		os.Exit(0)
	}

	if err := fs.Parse(args[1:]); err != nil {
		return fmt.Errorf("search: %w", err)
	}

	rest := fs.Args()
	if len(rest) != 2 {
		return fmt.Errorf("search: expected TABLEPATH TARGETHASH")
	}

	f := rainbow.NewFacade(opt)
	seed, ok, err := f.Search(rest[0], rest[1])
	if err != nil {
		return fmt.Errorf("search: %w", err)
	}

	if ok {
		fmt.Printf("[+] Seed found: %d\n", seed)
	} else {
		fmt.Printf("[-] Seed not found :-(\n")
	}

	return nil
}
