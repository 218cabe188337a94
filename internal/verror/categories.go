// Package verror provides structured, categorized errors for the twig
// interpreter. Every fatal diagnostic raised while tokenizing, parsing,
// or evaluating a program is a *verror.Error so the driver can report a
// consistent message and map the failure to a process exit code.
package verror

// Category classifies a fatal diagnostic by the phase/kind of failure.
type Category uint8

const (
	ErrSyntax   Category = iota // malformed source (a form of the wrong shape)
	ErrName                     // undefined symbol, var/set collisions
	ErrType                     // wrong operand types in a form or native
	ErrTest                     // a :test annotation failed to match
	ErrInternal                 // interpreter bug / resource exhaustion
)

// String returns the category name used in formatted error output.
func (c Category) String() string {
	switch c {
	case ErrSyntax:
		return "Syntax"
	case ErrName:
		return "Name"
	case ErrType:
		return "Type"
	case ErrTest:
		return "Test"
	case ErrInternal:
		return "Internal"
	default:
		return "Unknown"
	}
}

// ToExitCode maps a category to the process exit code the driver returns.
func ToExitCode(c Category) int {
	switch c {
	case ErrSyntax:
		return 2
	case ErrInternal:
		return 70
	default:
		return 1
	}
}

// Error IDs, grouped roughly by category (bad-shape is raised as a Syntax
// error and non-bool-condition as a Type error). Kebab-case so they can double as
// machine-readable identifiers if tooling ever wants to filter on them.
const (
	ErrIDInvalidLiteral  = "invalid-literal"
	ErrIDEmptyAnnotation = "empty-annotation"

	ErrIDUndefinedSymbol  = "undefined-symbol"
	ErrIDVarCollision     = "var-collision"
	ErrIDSetUndeclared    = "set-undeclared"
	ErrIDUnknownAnnot     = "unknown-annotation"
	ErrIDBadShape         = "bad-shape"
	ErrIDNonBoolCondition = "non-bool-condition"

	ErrIDTypeMismatch = "type-mismatch"
	ErrIDArgCount     = "arg-count"

	ErrIDTestFailed = "test-failed"

	ErrIDAssertionFailed = "assertion-failed"
)

var messageTemplates = map[string]string{
	ErrIDInvalidLiteral:  "invalid literal: %1",
	ErrIDEmptyAnnotation: "empty annotation head",

	ErrIDUndefinedSymbol:  "undefined symbol: %1",
	ErrIDVarCollision:     "'%1' is already declared in this frame",
	ErrIDSetUndeclared:    "cannot set undeclared variable '%1'",
	ErrIDUnknownAnnot:     "unknown annotation head '%1'",
	ErrIDBadShape:         "malformed '%1' form: %2",
	ErrIDNonBoolCondition: "non-bool condition in %1",

	ErrIDTypeMismatch: "'%1' expected %2, got %3",
	ErrIDArgCount:     "'%1' expects %2 argument(s), got %3",

	ErrIDTestFailed: "test for '%1' failed: expected %2, got %3",

	ErrIDAssertionFailed: "internal assertion failed: %1",
}
