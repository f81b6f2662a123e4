package stream

import (
	"context"

	"github.com/kbukum/treekit/errors"
)

// Reduce collapses every sibling group into a single node whose value is
// fn(values) and whose parent is the group's grandparent, decreasing tree
// depth by one level. Groups are maximal contiguous runs of nodes sharing a
// parent identity; only the previous node's parent is compared against the
// current one, so siblings must be contiguous. The final group is flushed
// when the upstream sequence is exhausted.
//
// Fails with EMPTY_SEQUENCE on a sequence that yields no nodes and with
// INVALID_DEPTH on a depth-zero sequence.
func Reduce[I, O any](t *Tree[I], fn func(context.Context, []I) (O, error)) *Tree[O] {
	return &Tree[O]{
		create: func(ctx context.Context) Iterator[Node[O]] {
			return &collapseIter[I, []I, O]{
				source: t.create(ctx),
				op:     "reduce",
				seed:   func(first I) []I { return []I{first} },
				fold:   func(acc []I, v I) []I { return append(acc, v) },
				finish: fn,
			}
		},
	}
}

// Aggregate collapses every sibling group with a left fold, without
// materializing the group: the accumulator starts as the group's first value
// and fn folds in the values from the second onward. Grouping and flush
// semantics match Reduce.
func Aggregate[V any](t *Tree[V], fn func(acc, next V) V) *Tree[V] {
	return &Tree[V]{
		create: func(ctx context.Context) Iterator[Node[V]] {
			return &collapseIter[V, V, V]{
				source: t.create(ctx),
				op:     "aggregate",
				seed:   func(first V) V { return first },
				fold:   fn,
				finish: func(_ context.Context, acc V) (V, error) { return acc, nil },
			}
		},
	}
}

// AggregateSeed is Aggregate with an explicit accumulator seed. The seed
// value starts every group's fold before the group's first value is folded in.
func AggregateSeed[I, A any](t *Tree[I], seed A, fn func(acc A, next I) A) *Tree[A] {
	return AggregateFactory(t, func() A { return seed }, fn)
}

// AggregateFactory is Aggregate with a per-group accumulator factory. The
// factory runs once per group, not once globally, so stateful factories see
// every group boundary.
func AggregateFactory[I, A any](t *Tree[I], factory func() A, fn func(acc A, next I) A) *Tree[A] {
	return &Tree[A]{
		create: func(ctx context.Context) Iterator[Node[A]] {
			return &collapseIter[I, A, A]{
				source: t.create(ctx),
				op:     "aggregate",
				seed:   func(first I) A { return fn(factory(), first) },
				fold:   fn,
				finish: func(_ context.Context, acc A) (A, error) { return acc, nil },
			}
		},
	}
}

// collapseIter is the shared grouping engine behind Reduce and the Aggregate
// variants. It holds only the current group's accumulator plus at most one
// read-ahead node (the first node of the next group), never the whole level.
type collapseIter[I, A, O any] struct {
	source Iterator[Node[I]]
	op     string
	seed   func(first I) A
	fold   func(acc A, next I) A
	finish func(ctx context.Context, acc A) (O, error)

	pending    Node[I] // first node of the next group, if read ahead
	hasPending bool
	started    bool
	done       bool
}

func (it *collapseIter[I, A, O]) Next(ctx context.Context) (Node[O], bool, error) {
	var zero Node[O]
	if it.done {
		return zero, false, nil
	}

	var first Node[I]
	if it.hasPending {
		first = it.pending
		it.hasPending = false
	} else {
		n, ok, err := it.source.Next(ctx)
		if err != nil {
			it.done = true
			return zero, false, err
		}
		if !ok {
			it.done = true
			if !it.started {
				return zero, false, errors.EmptySequence(it.op)
			}
			return zero, false, nil
		}
		first = n
	}
	it.started = true

	groupParent := first.id.parent
	if groupParent == nil {
		it.done = true
		return zero, false, errors.InvalidDepth(it.op)
	}

	acc := it.seed(first.Value)
	for {
		n, ok, err := it.source.Next(ctx)
		if err != nil {
			it.done = true
			return zero, false, err
		}
		if !ok {
			// End-of-sequence flush: the last group has no "parent changed"
			// event, it must be emitted here.
			it.done = true
			break
		}
		if n.id.parent != groupParent {
			it.pending = n
			it.hasPending = true
			break
		}
		acc = it.fold(acc, n.Value)
	}

	out, err := it.finish(ctx, acc)
	if err != nil {
		it.done = true
		return zero, false, err
	}
	return Node[O]{Value: out, id: &ident{parent: groupParent.parent}}, true, nil
}

func (it *collapseIter[I, A, O]) Close() error { return it.source.Close() }
