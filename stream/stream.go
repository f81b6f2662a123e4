package stream

import (
	"context"

	"github.com/kbukum/treekit/errors"
)

// Iterator provides pull-based sequential access to a stream of values.
// Iterators are single-pass and non-restartable.
type Iterator[T any] interface {
	// Next returns the next value. Returns (zero, false, nil) when exhausted.
	Next(ctx context.Context) (T, bool, error)
	// Close releases any resources held by the iterator.
	Close() error
}

// ident is the identity handle of a node. Pointer equality of idents defines
// parent identity; two distinct parents holding equal values never collide.
type ident struct {
	parent *ident
}

// Node is the unit flowing through the pipeline: a value plus the identity of
// its logical parent. The parent is used only for grouping and is never
// dereferenced for a value.
type Node[V any] struct {
	Value V
	id    *ident
}

// SameParent reports whether two nodes are logical siblings.
func SameParent[A, B any](a Node[A], b Node[B]) bool {
	return a.id.parent == b.id.parent
}

// Tree represents a lazy tree pipeline: a sequence of nodes whose parent
// identities encode the current tree level. No work happens until values are
// pulled via a terminal consumer.
type Tree[V any] struct {
	create func(ctx context.Context) Iterator[Node[V]]
}

// --- Constructors ---

// New creates a tree consisting of a single root node holding value.
func New[V any](value V) *Tree[V] {
	return &Tree[V]{
		create: func(_ context.Context) Iterator[Node[V]] {
			root := Node[V]{Value: value, id: &ident{}}
			return &sliceIter[Node[V]]{items: []Node[V]{root}}
		},
	}
}

// FromSlice creates a tree whose nodes are siblings under an implicit root,
// one per slice element.
func FromSlice[V any](values []V) *Tree[V] {
	return &Tree[V]{
		create: func(_ context.Context) Iterator[Node[V]] {
			root := &ident{}
			nodes := make([]Node[V], len(values))
			for i, v := range values {
				nodes[i] = Node[V]{Value: v, id: &ident{parent: root}}
			}
			return &sliceIter[Node[V]]{items: nodes}
		},
	}
}

// Nodes returns the raw node iterator for this tree. The caller must Close() it.
func (t *Tree[V]) Nodes(ctx context.Context) Iterator[Node[V]] {
	return t.create(ctx)
}

// --- Terminals ---

// Get drives the pipeline and returns the value of the single remaining node.
// It fails with EMPTY_SEQUENCE if the sequence yields no nodes and with
// NOT_COLLAPSED if more than one node remains.
func Get[V any](ctx context.Context, t *Tree[V]) (V, error) {
	var zero V
	iter := t.create(ctx)
	defer iter.Close()

	first, ok, err := iter.Next(ctx)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, errors.EmptySequence("get")
	}
	_, ok, err = iter.Next(ctx)
	if err != nil {
		return zero, err
	}
	if ok {
		return zero, errors.NotCollapsed()
	}
	return first.Value, nil
}

// Leaves returns a lazy, single-pass iterator over the values of all nodes
// currently in flight. This is the streaming-consumption entry point for
// inputs that must never be materialized. The caller must Close() it.
func (t *Tree[V]) Leaves(ctx context.Context) Iterator[V] {
	return &leavesIter[V]{source: t.create(ctx)}
}

// Collect drives the pipeline and returns all in-flight values as a slice.
func Collect[V any](ctx context.Context, t *Tree[V]) ([]V, error) {
	iter := t.Leaves(ctx)
	defer iter.Close()
	var result []V
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return result, err
		}
		if !ok {
			return result, nil
		}
		result = append(result, val)
	}
}

// ForEach drives the pipeline and calls fn for each in-flight value.
func ForEach[V any](ctx context.Context, t *Tree[V], fn func(context.Context, V) error) error {
	iter := t.Leaves(ctx)
	defer iter.Close()
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := fn(ctx, val); err != nil {
			return err
		}
	}
}

// --- Internal iterators ---

type sliceIter[T any] struct {
	items []T
	index int
}

func (it *sliceIter[T]) Next(_ context.Context) (T, bool, error) {
	if it.index >= len(it.items) {
		var zero T
		return zero, false, nil
	}
	val := it.items[it.index]
	it.index++
	return val, true, nil
}

func (it *sliceIter[T]) Close() error { return nil }

type leavesIter[V any] struct {
	source Iterator[Node[V]]
}

func (it *leavesIter[V]) Next(ctx context.Context) (V, bool, error) {
	n, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		var zero V
		return zero, false, err
	}
	return n.Value, true, nil
}

func (it *leavesIter[V]) Close() error { return it.source.Close() }
