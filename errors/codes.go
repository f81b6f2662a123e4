package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Pipeline precondition errors
const (
	// ErrCodeEmptySequence indicates a grouping or terminal operation ran on a
	// sequence that yielded no nodes.
	ErrCodeEmptySequence ErrorCode = "EMPTY_SEQUENCE"
	// ErrCodeInvalidDepth indicates a reduce/aggregate ran on a depth-zero
	// sequence (the nodes have no parent to collapse into).
	ErrCodeInvalidDepth ErrorCode = "INVALID_DEPTH"
	// ErrCodeNotCollapsed indicates Get was called while more than one node
	// remained in the sequence.
	ErrCodeNotCollapsed ErrorCode = "NOT_COLLAPSED"
)

// Tree traversal errors
const (
	// ErrCodeLeafIteration indicates an attempt to iterate the children of a leaf.
	ErrCodeLeafIteration ErrorCode = "LEAF_ITERATION"
	// ErrCodeSingleNode indicates an attempt to find lowest inner nodes on a
	// tree that consists of a single node.
	ErrCodeSingleNode ErrorCode = "SINGLE_NODE"
)

// Record parsing errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a schema field reference could not be resolved.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a token could not be converted to the
	// declared field kind.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	// ErrCodeMissingLength indicates a list field declares no length policy.
	ErrCodeMissingLength ErrorCode = "MISSING_LENGTH"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
