package main

import (
	"fmt"
	"os"

	"github.com/arourke/twig/internal/replloop"
)

func runRepl(args []string) int {
	fs, traceFile := newFlagSet("repl")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	session, terr := openTrace(*traceFile)
	if terr != nil {
		fmt.Fprintf(os.Stderr, "error opening trace file: %v\n", terr)
		return 70
	}
	defer session.Close()

	r, err := replloop.New(os.Stdout, os.Stdin, replloop.Options{Trace: session})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error starting repl: %v\n", err)
		return 1
	}

	if err := r.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "repl error: %v\n", err)
		return 1
	}
	return 0
}
