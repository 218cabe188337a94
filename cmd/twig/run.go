package main

import (
	"fmt"
	"os"

	"github.com/arourke/twig/internal/eval"
	"github.com/arourke/twig/internal/native"
	"github.com/arourke/twig/internal/parser"
	"github.com/arourke/twig/internal/verror"
)

func runScript(args []string) int {
	fs, traceFile := newFlagSet("run")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: twig run [--trace-file PATH] <file>")
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

	session, terr := openTrace(*traceFile)
	if terr != nil {
		fmt.Fprintf(os.Stderr, "error opening trace file: %v\n", terr)
		return 70
	}
	defer session.Close()

	e := eval.New(os.Stdout, os.Stdin)
	e.SetTrace(session)
	native.Register(e)

	if _, err := e.EvalProgram(forms); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return verror.ToExitCode(err.Category)
	}
	return 0
}
