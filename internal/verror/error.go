package verror

import (
	"fmt"
	"strings"
)

// Error is a structured, fatal interpreter diagnostic.
//
// Category and ID classify the failure; Args feed the message template.
// Near renders the offending form for context; Where is the evaluator's
// call stack (innermost first) at the point of failure.
type Error struct {
	Category Category
	ID       string
	Args     [3]string
	Near     string
	Where    []string
}

// New builds an Error; its message is formatted lazily in Error().
func New(category Category, id string, args [3]string) *Error {
	return &Error{Category: category, ID: id, Args: args}
}

func (e *Error) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s error: %s", e.Category, e.message())
	if e.Near != "" {
		fmt.Fprintf(&sb, "\nnear: %s", e.Near)
	}
	if len(e.Where) > 0 {
		fmt.Fprintf(&sb, "\nwhere: %s", strings.Join(e.Where, " <- "))
	}
	return sb.String()
}

func (e *Error) message() string {
	template, ok := messageTemplates[e.ID]
	if !ok {
		template = "%1 %2 %3"
	}
	msg := template
	msg = strings.ReplaceAll(msg, "%1", e.Args[0])
	msg = strings.ReplaceAll(msg, "%2", e.Args[1])
	msg = strings.ReplaceAll(msg, "%3", e.Args[2])
	return msg
}

// SetNear attaches a rendering of the offending form and returns e for
// chaining at the call site.
func (e *Error) SetNear(near string) *Error {
	e.Near = near
	return e
}

// SetWhere attaches the evaluator call stack and returns e for chaining.
func (e *Error) SetWhere(where []string) *Error {
	e.Where = where
	return e
}

// Syntax, Name, Type, Test, and Internal are small factory helpers
// mirroring the category constants, used throughout the evaluator and
// the natives instead of constructing Error literals inline.

func Syntax(id string, args [3]string) *Error   { return New(ErrSyntax, id, args) }
func Name(id string, args [3]string) *Error     { return New(ErrName, id, args) }
func Type(id string, args [3]string) *Error     { return New(ErrType, id, args) }
func Test(id string, args [3]string) *Error     { return New(ErrTest, id, args) }
func Internal(id string, args [3]string) *Error { return New(ErrInternal, id, args) }
