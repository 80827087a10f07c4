package snapmeta

import (
	"errors"
	"fmt"
)

// Sentinel errors for contract violations.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrNilNode indicates a recursive operation was invoked on a nil node.
	ErrNilNode = errors.New("nil node")

	// ErrNilNodeList indicates a recursive operation was invoked on a nil
	// node slice.
	ErrNilNodeList = errors.New("nil node list")

	// ErrNilCrossReferenceTarget indicates a cross-reference was constructed
	// with a nil snapshot target.
	ErrNilCrossReferenceTarget = errors.New("nil cross-reference target")
)

// KindInvalidArgument is the only error kind this package produces. It marks
// a caller contract violation: a required argument of a recursive or
// root-level operation was absent. Such errors are never retried or recovered
// internally; they surface immediately.
//
// Single-node convenience operations never fail — an absent node is a silent
// no-op by design.
const KindInvalidArgument = "invalid_argument"

// Error is a structured error that wraps a sentinel error with the operation
// that failed and the category of failure.
//
// Error implements the error interface and supports error unwrapping, making
// it compatible with errors.Is() and errors.As().
type Error struct {
	// Op is the operation that failed (e.g., "Store.SetCrossReference").
	Op string

	// Kind categorizes the error. Always KindInvalidArgument in this package.
	Kind string

	// Err is the underlying sentinel error.
	Err error
}

// Error implements the error interface, returning a formatted message that
// includes the operation, kind, and underlying error.
func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("snapmeta: %s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("snapmeta: %s (%s): %v", e.Op, e.Kind, e.Err)
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error matching for Error, allowing comparison against
// another *Error by Kind (and Op, when the target specifies one) or against
// the underlying sentinel.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	if t, ok := target.(*Error); ok {
		if t.Kind != "" && e.Kind == t.Kind {
			if t.Op == "" || e.Op == t.Op {
				return true
			}
		}
	}

	return errors.Is(e.Err, target)
}

// newInvalidArgumentError creates an Error with KindInvalidArgument.
func newInvalidArgumentError(op string, err error) *Error {
	return &Error{
		Op:   op,
		Kind: KindInvalidArgument,
		Err:  err,
	}
}

// IsInvalidArgument reports whether err is (or wraps) a KindInvalidArgument
// Error.
func IsInvalidArgument(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindInvalidArgument
}
