// Package errors provides unified error handling for treekit.
// It implements structured error types with machine-readable error codes
// for pipeline preconditions, tree traversal, and record parsing failures.
package errors
