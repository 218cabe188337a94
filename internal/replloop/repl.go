// Package replloop implements twig's interactive read-eval-print loop:
// a chzyer/readline wrapper with persistent history that reads one line
// at a time, evaluates each top-level form on it against a persistent
// root environment, and prints the String() of every non-Nil result.
// There is no debugger
// here — no breakpoints, no stepping, no inspection commands — only
// read/eval/print/loop.
package replloop

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/arourke/twig/internal/eval"
	"github.com/arourke/twig/internal/native"
	"github.com/arourke/twig/internal/parser"
	"github.com/arourke/twig/internal/trace"
	"github.com/arourke/twig/internal/value"
)

const (
	prompt          = "twig> "
	historyEnvVar   = "TWIG_HISTORY_FILE"
	historyFileName = ".twig_history"
)

// Options configures the REPL's history and trace behavior.
type Options struct {
	NoHistory   bool
	HistoryFile string
	Trace       *trace.Session
}

// REPL is twig's interactive loop: readline for input, the evaluator for
// state, and a writer for printed results.
type REPL struct {
	evaluator   *eval.Evaluator
	rl          *readline.Instance
	out         io.Writer
	historyPath string
	noHistory   bool
}

// New builds a REPL wired with the full native library installed into a
// fresh root environment.
func New(stdout io.Writer, stdin io.Reader, opts Options) (*REPL, error) {
	historyPath := opts.HistoryFile
	if historyPath == "" && !opts.NoHistory {
		historyPath = resolveHistoryPath()
	}

	rlConfig := &readline.Config{
		Prompt:                 prompt,
		DisableAutoSaveHistory: true,
		InterruptPrompt:        "^C",
		EOFPrompt:              "exit",
	}
	if !opts.NoHistory && historyPath != "" {
		rlConfig.HistoryFile = historyPath
	}

	rl, err := readline.NewEx(rlConfig)
	if err != nil {
		return nil, err
	}

	e := eval.New(stdout, stdin)
	if opts.Trace != nil {
		e.SetTrace(opts.Trace)
	}
	native.Register(e)

	return &REPL{
		evaluator:   e,
		rl:          rl,
		out:         stdout,
		historyPath: historyPath,
		noHistory:   opts.NoHistory,
	}, nil
}

// Run drives the loop until EOF (Ctrl+D) or an interrupt-free exit.
func (r *REPL) Run() error {
	defer r.rl.Close()
	fmt.Fprintln(r.out, "twig")

	for {
		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				fmt.Fprintln(r.out, "^C")
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out)
				return nil
			}
			return err
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if trimmed == "exit" || trimmed == "quit" {
			return nil
		}

		r.recordHistory(trimmed)
		r.evalLine(trimmed)
	}
}

func (r *REPL) evalLine(line string) {
	forms, perr := parser.Parse(line)
	if perr != nil {
		fmt.Fprintln(r.out, perr.Error())
		return
	}
	for _, form := range forms {
		v, err := r.evaluator.Eval(form, r.evaluator.RootHandle())
		if err != nil {
			fmt.Fprintln(r.out, err.Error())
			return
		}
		if v.Type != value.TypeNil {
			fmt.Fprintln(r.out, v.String())
		}
	}
}

func (r *REPL) recordHistory(entry string) {
	if r.noHistory {
		return
	}
	_ = r.rl.SaveHistory(entry)
}

func resolveHistoryPath() string {
	if override := strings.TrimSpace(os.Getenv(historyEnvVar)); override != "" {
		return filepath.Clean(override)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFileName)
}
