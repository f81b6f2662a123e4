package errors

import (
	stderrors "errors"
	"fmt"
)

// ParseError is the unified treekit error type.
type ParseError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *ParseError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *ParseError) WithCause(cause error) *ParseError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *ParseError) WithDetail(key string, value any) *ParseError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new ParseError.
func New(code ErrorCode, message string) *ParseError {
	return &ParseError{Code: code, Message: message}
}

// IsCode reports whether err is (or wraps) a ParseError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var pe *ParseError
	if stderrors.As(err, &pe) {
		return pe.Code == code
	}
	return false
}

// --- Common Error Constructors ---

// EmptySequence creates a new ParseError for an operation driven over a
// sequence that produced no nodes.
func EmptySequence(operation string) *ParseError {
	return &ParseError{
		Code: ErrCodeEmptySequence, Message: fmt.Sprintf("%s requires a non-empty sequence.", operation),
		Details: map[string]any{"operation": operation},
	}
}

// InvalidDepth creates a new ParseError for a collapse on a depth-zero sequence.
func InvalidDepth(operation string) *ParseError {
	return &ParseError{
		Code: ErrCodeInvalidDepth, Message: fmt.Sprintf("%s cannot collapse a depth-zero sequence.", operation),
		Details: map[string]any{"operation": operation},
	}
}

// NotCollapsed creates a new ParseError for a Get on a multi-node sequence.
func NotCollapsed() *ParseError {
	return &ParseError{
		Code: ErrCodeNotCollapsed, Message: "Sequence holds more than one node; reduce or aggregate further before Get.",
	}
}

// LeafIteration creates a new ParseError for iterating over a leaf's children.
func LeafIteration() *ParseError {
	return &ParseError{
		Code: ErrCodeLeafIteration, Message: "Can't iterate over a leaf.",
	}
}

// SingleNode creates a new ParseError for lowest-node traversal of a one-node tree.
func SingleNode() *ParseError {
	return &ParseError{
		Code: ErrCodeSingleNode, Message: "Tree only consists of one node.",
	}
}

// InvalidInput creates a new ParseError for invalid input.
func InvalidInput(reason string) *ParseError {
	return &ParseError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
	}
}

// MissingField creates a new ParseError for an unresolvable field reference.
func MissingField(field string) *ParseError {
	return &ParseError{
		Code: ErrCodeMissingField, Message: fmt.Sprintf("Missing required field: %s", field),
		Details: map[string]any{"field": field},
	}
}

// InvalidFormat creates a new ParseError for a token that does not match the
// declared field kind.
func InvalidFormat(field, expectedKind string) *ParseError {
	return &ParseError{
		Code: ErrCodeInvalidFormat, Message: fmt.Sprintf("Invalid format for %s. Expected: %s", field, expectedKind),
		Details: map[string]any{"field": field, "expected_kind": expectedKind},
	}
}

// MissingLength creates a new ParseError for a list field without a length policy.
func MissingLength(field string) *ParseError {
	return &ParseError{
		Code: ErrCodeMissingLength, Message: fmt.Sprintf("List field %s declares no length policy.", field),
		Details: map[string]any{"field": field},
	}
}

// Internal creates a new ParseError for an unexpected internal error.
func Internal(cause error) *ParseError {
	return &ParseError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		Cause: cause,
	}
}
