package stream

import (
	"context"
	"strings"
)

// Expand replaces each node with one child node per value returned by fn,
// all sharing the replaced node's identity as their parent. Upstream order is
// preserved; tree depth increases by one level.
func Expand[I, O any](t *Tree[I], fn func(context.Context, I) ([]O, error)) *Tree[O] {
	return ExpandIter(t, func(ctx context.Context, v I) (Iterator[O], error) {
		children, err := fn(ctx, v)
		if err != nil {
			return nil, err
		}
		return &sliceIter[O]{items: children}, nil
	})
}

// ExpandIter is Expand for child sequences too large to materialize: fn
// returns a lazy iterator of child values that is drained one child at a time.
func ExpandIter[I, O any](t *Tree[I], fn func(context.Context, I) (Iterator[O], error)) *Tree[O] {
	return &Tree[O]{
		create: func(ctx context.Context) Iterator[Node[O]] {
			return &expandIter[I, O]{source: t.create(ctx), fn: fn}
		},
	}
}

// Map emits exactly one node per upstream node with value fn(v) and the
// parent identity unchanged. Strictly 1:1, order-preserving, depth-preserving.
func Map[I, O any](t *Tree[I], fn func(context.Context, I) (O, error)) *Tree[O] {
	return &Tree[O]{
		create: func(ctx context.Context) Iterator[Node[O]] {
			return &mapIter[I, O]{source: t.create(ctx), fn: fn}
		},
	}
}

// Tap calls fn as a side-effect for each value, then passes the node through
// unchanged. Use for progress logging or metrics.
func Tap[V any](t *Tree[V], fn func(context.Context, V) error) *Tree[V] {
	return &Tree[V]{
		create: func(ctx context.Context) Iterator[Node[V]] {
			return &tapIter[V]{source: t.create(ctx), fn: fn}
		},
	}
}

// Split expands every string value on separator. A trailing separator does
// not produce a trailing empty token, so line-terminated input splits into
// complete records.
func Split(t *Tree[string], separator string) *Tree[string] {
	return Expand(t, func(_ context.Context, v string) ([]string, error) {
		parts := strings.Split(v, separator)
		if len(parts) > 1 && parts[len(parts)-1] == "" {
			parts = parts[:len(parts)-1]
		}
		return parts, nil
	})
}

// --- Iterator implementations ---

type expandIter[I, O any] struct {
	source  Iterator[Node[I]]
	fn      func(context.Context, I) (Iterator[O], error)
	current Iterator[O]
	parent  *ident
}

func (it *expandIter[I, O]) Next(ctx context.Context) (Node[O], bool, error) {
	var zero Node[O]
	for {
		if it.current != nil {
			val, ok, err := it.current.Next(ctx)
			if err != nil {
				return zero, false, err
			}
			if ok {
				return Node[O]{Value: val, id: &ident{parent: it.parent}}, true, nil
			}
			_ = it.current.Close()
			it.current = nil
		}
		n, ok, err := it.source.Next(ctx)
		if err != nil || !ok {
			return zero, false, err
		}
		inner, err := it.fn(ctx, n.Value)
		if err != nil {
			return zero, false, err
		}
		it.current = inner
		it.parent = n.id
	}
}

func (it *expandIter[I, O]) Close() error {
	if it.current != nil {
		_ = it.current.Close()
	}
	return it.source.Close()
}

type mapIter[I, O any] struct {
	source Iterator[Node[I]]
	fn     func(context.Context, I) (O, error)
}

func (it *mapIter[I, O]) Next(ctx context.Context) (Node[O], bool, error) {
	var zero Node[O]
	n, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return zero, false, err
	}
	out, err := it.fn(ctx, n.Value)
	if err != nil {
		return zero, false, err
	}
	return Node[O]{Value: out, id: n.id}, true, nil
}

func (it *mapIter[I, O]) Close() error { return it.source.Close() }

type tapIter[V any] struct {
	source Iterator[Node[V]]
	fn     func(context.Context, V) error
}

func (it *tapIter[V]) Next(ctx context.Context) (Node[V], bool, error) {
	n, ok, err := it.source.Next(ctx)
	if err != nil || !ok {
		return n, ok, err
	}
	if err := it.fn(ctx, n.Value); err != nil {
		var zero Node[V]
		return zero, false, err
	}
	return n, true, nil
}

func (it *tapIter[V]) Close() error { return it.source.Close() }
