// Package tree provides an eager, fully materialized counterpart to the
// stream package: the same expand/map/reduce operations backed by an actual
// in-memory tree with parent/children pointers.
//
// It is intended as a correctness oracle for the streaming pipeline and for
// small inputs where laziness buys nothing. Both variants produce identical
// results for the same operation sequence on the same input.
package tree
