// Command keychain reads door codes and prints the sum of their complexity
// scores for each robot chain.
//
// Usage:
//
//	keychain [-input FILE] [-robots N] [-expand] [-v]
//
// Without -robots both parts run: two and twenty-five directional keypads.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/katalvlaran/keychain/chain"
	"github.com/katalvlaran/keychain/complexity"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("keychain: ")
	if err := run(context.Background(), os.Args[1:], os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

type config struct {
	input   string
	robots  int
	expand  bool
	verbose bool
}

func parseFlags(args []string, out io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("keychain", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&cfg.input, "input", "-", "file of codes, one per line (- for stdin)")
	fs.IntVar(&cfg.robots, "robots", -1, "number of directional keypads; both parts when unset")
	fs.BoolVar(&cfg.expand, "expand", false, "print a minimal keystroke string per code when short enough")
	fs.BoolVar(&cfg.verbose, "v", false, "print per-code length, value and complexity")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer) error {
	cfg, err := parseFlags(args, stdout)
	if err != nil {
		return err
	}

	in := stdin
	if cfg.input != "-" {
		f, err := os.Open(cfg.input)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	codes, err := complexity.ParseCodes(in)
	if err != nil {
		return err
	}

	parts := complexity.Parts()
	if cfg.robots >= 0 {
		parts = []complexity.Part{{Name: fmt.Sprintf("robots=%d", cfg.robots), Directional: cfg.robots}}
	}
	for _, part := range parts {
		rep, err := complexity.Run(ctx, codes, part)
		if err != nil {
			return err
		}
		if cfg.verbose {
			for _, r := range rep.Results {
				fmt.Fprintf(stdout, "%s %s: %d × %d = %d\n", part.Name, r.Code.Text, r.Length, r.Code.Value, r.Complexity)
			}
			log.Printf("%s: %d memo entries, %d hits", part.Name, rep.Memo.Entries, rep.Memo.Hits)
		}
		if cfg.expand {
			if err := printExpansions(stdout, part, codes); err != nil {
				return err
			}
		}
		fmt.Fprintf(stdout, "%s: %d\n", part.Name, rep.Total)
	}
	return nil
}

// printExpansions prints one minimal keystroke string per code, or a note
// when the chain is too deep to spell out.
func printExpansions(w io.Writer, part complexity.Part, codes []complexity.Code) error {
	c, err := chain.New(part.Directional)
	if err != nil {
		return err
	}
	s := chain.NewSolver(c)
	for _, code := range codes {
		presses, err := s.Expand(code.Keys)
		switch {
		case errors.Is(err, chain.ErrExpansionTooLong):
			fmt.Fprintf(w, "%s %s: too long to expand\n", part.Name, code.Text)
		case err != nil:
			return err
		default:
			fmt.Fprintf(w, "%s %s: %s\n", part.Name, code.Text, presses)
		}
	}
	return nil
}
