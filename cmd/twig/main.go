// Command twig runs the twig interpreter: `run <file>` evaluates a
// script, `repl` starts an interactive loop, and `check <file>` reports
// syntax errors without evaluating.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/arourke/twig/internal/trace"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 2
	}

	switch args[0] {
	case "run":
		return runScript(args[1:])
	case "repl":
		return runRepl(args[1:])
	case "check":
		return runCheck(args[1:])
	case "-h", "--help", "help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", args[0])
		printUsage()
		return 2
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: twig <run|repl|check> [--trace-file PATH] [file]")
}

// openTrace resolves a trace session from --trace-file or TWIG_TRACE_FILE,
// falling back to a no-op session when neither is set.
func openTrace(flagValue string) (*trace.Session, error) {
	path := flagValue
	if path == "" {
		path = os.Getenv("TWIG_TRACE_FILE")
	}
	if path == "" {
		return trace.Noop(), nil
	}
	return trace.Open(path)
}

func newFlagSet(name string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	traceFile := fs.String("trace-file", "", "rotating trace log destination")
	return fs, traceFile
}
