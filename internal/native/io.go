package native

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arourke/twig/internal/value"
)

// ioNatives builds `print` and `read`, both WithEnv since they reach
// the evaluator's configured standard streams rather than touching any
// global.
//
// read shares a single bufio.Reader across calls, wrapping the stdin
// stream once at registration time rather than re-wrapping rt.Stdin() on
// every call — a fresh bufio.Reader per call would buffer ahead into the
// next line and discard it along with the old reader.
func ioNatives(stdin io.Reader) map[string]*value.Native {
	buffered := bufio.NewReader(stdin)
	return map[string]*value.Native{
		"print": withEnvNative("print", func(args []value.Value, envHandle int, rt value.Runtime) (value.Value, error) {
			parts := make([]string, len(args))
			for i, a := range args {
				parts[i] = a.String()
			}
			fmt.Fprintln(rt.Stdout(), strings.Join(parts, " "))
			return value.Nil, nil
		}),
		"read": withEnvNative("read", func(args []value.Value, envHandle int, rt value.Runtime) (value.Value, error) {
			if e := argCount("read", args, 0); e != nil {
				return value.Nil, asErr(e)
			}
			line, err := buffered.ReadString('\n')
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			if err != nil && line == "" {
				return value.StrVal(""), nil
			}
			return value.StrVal(line), nil
		}),
	}
}
