// Package native implements twig's built-in primitive table: the
// Pure/WithEnv native functions installed into the root frame at
// startup, split by concern across math.go, compare.go, io.go, data.go,
// and reflection.go rather than one large file.
package native

import (
	"strconv"

	"github.com/arourke/twig/internal/value"
	"github.com/arourke/twig/internal/verror"
)

func argCount(name string, args []value.Value, want int) *verror.Error {
	if len(args) != want {
		return verror.Type(verror.ErrIDArgCount, [3]string{name, strconv.Itoa(want), strconv.Itoa(len(args))})
	}
	return nil
}

func wantNumber(name string, v value.Value) *verror.Error {
	if v.Type != value.TypeNumber {
		return verror.Type(verror.ErrIDTypeMismatch, [3]string{name, "Number", v.Type.String()})
	}
	return nil
}

func wantBool(name string, v value.Value) *verror.Error {
	if v.Type != value.TypeBool {
		return verror.Type(verror.ErrIDTypeMismatch, [3]string{name, "Bool", v.Type.String()})
	}
	return nil
}

// asErr turns a *verror.Error into a plain error for a Native's Pure
// signature; nil passes through untouched.
func asErr(e *verror.Error) error {
	if e == nil {
		return nil
	}
	return e
}

func pureNative(name string, fn func(args []value.Value) (value.Value, error)) *value.Native {
	return &value.Native{Name: name, Pure: fn}
}

func withEnvNative(name string, fn func(args []value.Value, envHandle int, rt value.Runtime) (value.Value, error)) *value.Native {
	return &value.Native{Name: name, WithEnv: true, WithEnvF: fn}
}
