package main

import (
	"fmt"
	"os"

	"github.com/arourke/twig/internal/parser"
	"github.com/arourke/twig/internal/verror"
)

// runCheck parses a file and reports a syntax-only diagnostic without
// evaluating it.
func runCheck(args []string) int {
	fs, _ := newFlagSet("check")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: twig check <file>")
		return 2
	}

	path := fs.Arg(0)
	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading %s: %v\n", path, err)
		return 1
	}

	forms, perr := parser.Parse(string(content))
	if perr != nil {
		fmt.Fprintln(os.Stderr, perr.Error())
		return verror.ToExitCode(perr.Category)
	}

	fmt.Printf("syntax OK: %d top-level form(s)\n", len(forms))
	return 0
}
