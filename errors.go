package shapeval

import (
	"errors"
	"fmt"
)

// Rule keywords reported by the runtime validator (exported consts for IDE
// completion and type safety by convention).
const (
	KeywordAllOf                = "allOf"
	KeywordRequired             = "required"
	KeywordType                 = "type"
	KeywordPattern              = "pattern"
	KeywordFormat               = "format"
	KeywordEnum                 = "enum"
	KeywordAdditionalProperties = "additionalProperties"
)

// Kind classifies terminal failures of the resolution/validation pipeline so
// callers can distinguish "the input was invalid" from "the validator itself
// is broken".
type Kind int

const (
	KindUnknown       Kind = iota
	KindResource           // document cannot be located or read
	KindParse              // document malformed or reference-incomplete
	KindShapeNotFound      // requested shape absent from the document
	KindCompile            // shape could not become a runtime validator
	KindInputParse         // candidate payload is not well-formed JSON
)

func (k Kind) String() string {
	switch k {
	case KindResource:
		return "resource"
	case KindParse:
		return "parse"
	case KindShapeNotFound:
		return "shape_not_found"
	case KindCompile:
		return "compile"
	case KindInputParse:
		return "input_parse"
	default:
		return "unknown"
	}
}

// Error tags a pipeline failure with its Kind and the operation that produced
// it. All terminal failures surfaced by this package are of this type.
type Error struct {
	Kind Kind
	Op   string // "load", "extract", "compile" or "validate"
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("shapeval: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the Kind from an error using errors.As internally. It
// returns KindUnknown for nil and for foreign errors.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}

func newError(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

func errorf(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}
