// Package stream provides a lazy, pull-based tree-transformation pipeline for
// flat, line-oriented input.
//
// The pipeline interprets its input as a conceptual tree: every value in
// flight is a Node carrying its value and the identity of its logical parent.
// Nodes are produced and consumed as a single forward-only sequence — the tree
// is never materialized, so inputs far larger than memory can be processed.
//
// Pipelines are lazy — no work happens until values are pulled via Get,
// Collect, ForEach, or Leaves. Each stage pulls from the previous stage on
// demand, providing natural backpressure without explicit flow control.
//
// # Operators
//
//   - Expand / ExpandIter: replace each node with child nodes (depth +1)
//   - Map: transform each value in place (depth unchanged)
//   - Reduce: collapse each sibling group with a whole-group function (depth -1)
//   - Aggregate / AggregateSeed / AggregateFactory: collapse each sibling group
//     with a left fold, without materializing the group (depth -1)
//   - Split: expand string values on a separator
//   - Tap: side-effect without altering the value (progress logging, metrics)
//
// Grouping relies on sibling contiguity: all nodes sharing a parent must be
// delivered consecutively. Every operator here preserves that order, so the
// invariant holds for any pipeline assembled from this package. It is not
// verified at runtime.
//
// # Usage
//
//	t := stream.FromSlice([]string{"a b", "c d"})
//	words := stream.Split(t, " ")
//	lines := stream.Aggregate(words, func(acc, s string) string { return acc + "_" + s })
//	root := stream.Aggregate(lines, func(acc, s string) string { return acc + " -> " + s })
//	result, err := stream.Get(ctx, root) // "a_b -> c_d"
package stream
