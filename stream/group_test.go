package stream

import (
	"context"
	"errors"
	"testing"

	treeerrors "github.com/kbukum/treekit/errors"
)

func TestReduce_GroupsByParent(t *testing.T) {
	words := Split(FromSlice([]string{"a b", "c d"}), " ")
	joined := Reduce(words, func(_ context.Context, values []string) (string, error) {
		out := values[0]
		for _, v := range values[1:] {
			out += "_" + v
		}
		return out, nil
	})
	got, err := Collect(context.Background(), joined)
	if err != nil {
		t.Fatal(err)
	}
	if !strSliceEqual(got, []string{"a_b", "c_d"}) {
		t.Errorf("got %v, want [a_b c_d]", got)
	}
}

func TestReduce_FlushSingleGroup(t *testing.T) {
	// One group only: the flush must come from end-of-sequence, there is no
	// "parent changed" event.
	words := Split(FromSlice([]string{"a b c"}), " ")
	groups := Reduce(words, func(_ context.Context, values []string) (int, error) {
		return len(values), nil
	})
	got, err := Collect(context.Background(), groups)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{3}) {
		t.Errorf("got %v, want [3]", got)
	}
}

func TestReduce_EmptySequence(t *testing.T) {
	words := Split(FromSlice([]string{}), " ")
	groups := Reduce(words, func(_ context.Context, values []string) (int, error) {
		return len(values), nil
	})
	_, err := Collect(context.Background(), groups)
	if !treeerrors.IsCode(err, treeerrors.ErrCodeEmptySequence) {
		t.Errorf("expected EMPTY_SEQUENCE, got %v", err)
	}
}

func TestReduce_DepthZero(t *testing.T) {
	root := New("x")
	collapsed := Reduce(root, func(_ context.Context, values []string) (string, error) {
		return values[0], nil
	})
	_, err := Collect(context.Background(), collapsed)
	if !treeerrors.IsCode(err, treeerrors.ErrCodeInvalidDepth) {
		t.Errorf("expected INVALID_DEPTH, got %v", err)
	}
}

func TestReduce_UserErrorPropagates(t *testing.T) {
	boom := errors.New("reduce failed")
	words := Split(FromSlice([]string{"a b"}), " ")
	groups := Reduce(words, func(_ context.Context, _ []string) (string, error) {
		return "", boom
	})
	_, err := Collect(context.Background(), groups)
	if !errors.Is(err, boom) {
		t.Errorf("expected user error to propagate unchanged, got %v", err)
	}
}

func TestReduce_TwoLevelsCollapseToRoot(t *testing.T) {
	lines := Split(New("a b\nc d\n"), "\n")
	words := Split(lines, " ")
	level1 := Reduce(words, join("_"))
	level0 := Reduce(level1, join(" -> "))
	got, err := Get(context.Background(), level0)
	if err != nil {
		t.Fatal(err)
	}
	if got != "a_b -> c_d" {
		t.Errorf("got %q, want %q", got, "a_b -> c_d")
	}
}

func TestAggregate_NoSeed(t *testing.T) {
	nums := FromSlice([]int{1, 2, 3})
	summed := Aggregate(nums, func(acc, next int) int { return acc + next })
	got, err := Get(context.Background(), summed)
	if err != nil {
		t.Fatal(err)
	}
	if got != 6 {
		t.Errorf("got %d, want 6", got)
	}
}

func TestAggregateSeed_AdditiveIdentity(t *testing.T) {
	nums := FromSlice([]int{1, 2, 3})
	summed := AggregateSeed(nums, 0, func(acc, next int) int { return acc + next })
	got, err := Get(context.Background(), summed)
	if err != nil {
		t.Fatal(err)
	}
	if got != 6 {
		t.Errorf("got %d, want 6", got)
	}
}

func TestAggregateSeed_NonIdentitySeed(t *testing.T) {
	// Distinguishes the seeded fold from the fallback-to-first-value policy.
	nums := FromSlice([]int{1, 2, 3})
	summed := AggregateSeed(nums, 10, func(acc, next int) int { return acc + next })
	got, err := Get(context.Background(), summed)
	if err != nil {
		t.Fatal(err)
	}
	if got != 16 {
		t.Errorf("got %d, want 16", got)
	}
}

func TestAggregateSeed_TypeChange(t *testing.T) {
	words := Split(FromSlice([]string{"a b c", "d"}), " ")
	counts := AggregateSeed(words, 0, func(acc int, _ string) int { return acc + 1 })
	got, err := Collect(context.Background(), counts)
	if err != nil {
		t.Fatal(err)
	}
	if !intSliceEqual(got, []int{3, 1}) {
		t.Errorf("got %v, want [3 1]", got)
	}
}

func TestAggregateFactory_OncePerGroup(t *testing.T) {
	var calls int
	words := Split(FromSlice([]string{"a b", "c d", "e f"}), " ")
	joined := AggregateFactory(words,
		func() string { calls++; return "" },
		func(acc, next string) string { return acc + next },
	)
	got, err := Collect(context.Background(), joined)
	if err != nil {
		t.Fatal(err)
	}
	if !strSliceEqual(got, []string{"ab", "cd", "ef"}) {
		t.Errorf("got %v, want [ab cd ef]", got)
	}
	if calls != 3 {
		t.Errorf("factory should run once per group, ran %d times", calls)
	}
}

func TestAggregateFactory_FreshAccumulatorPerGroup(t *testing.T) {
	words := Split(FromSlice([]string{"a b", "c"}), " ")
	collected := AggregateFactory(words,
		func() []string { return nil },
		func(acc []string, next string) []string { return append(acc, next) },
	)
	got, err := Collect(context.Background(), collected)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || !strSliceEqual(got[0], []string{"a", "b"}) || !strSliceEqual(got[1], []string{"c"}) {
		t.Errorf("got %v, want [[a b] [c]]", got)
	}
}

func TestAggregate_EmptySequence(t *testing.T) {
	nums := FromSlice([]int{})
	summed := Aggregate(nums, func(acc, next int) int { return acc + next })
	_, err := Collect(context.Background(), summed)
	if !treeerrors.IsCode(err, treeerrors.ErrCodeEmptySequence) {
		t.Errorf("expected EMPTY_SEQUENCE, got %v", err)
	}
}

func TestAggregate_DepthZero(t *testing.T) {
	root := New(1)
	summed := Aggregate(root, func(acc, next int) int { return acc + next })
	_, err := Collect(context.Background(), summed)
	if !treeerrors.IsCode(err, treeerrors.ErrCodeInvalidDepth) {
		t.Errorf("expected INVALID_DEPTH, got %v", err)
	}
}

// Aggregate without a seed must agree with Reduce folding the same function
// left-to-right over every non-empty group.
func TestAggregate_MatchesReduceFold(t *testing.T) {
	inputs := []string{"a b c", "d", "e f", "g h i j"}
	concat := func(acc, next string) string { return acc + "|" + next }

	aggregated := Aggregate(Split(FromSlice(inputs), " "), concat)
	aggGot, err := Collect(context.Background(), aggregated)
	if err != nil {
		t.Fatal(err)
	}

	reduced := Reduce(Split(FromSlice(inputs), " "), func(_ context.Context, values []string) (string, error) {
		acc := values[0]
		for _, v := range values[1:] {
			acc = concat(acc, v)
		}
		return acc, nil
	})
	redGot, err := Collect(context.Background(), reduced)
	if err != nil {
		t.Fatal(err)
	}

	if !strSliceEqual(aggGot, redGot) {
		t.Errorf("aggregate %v != reduce fold %v", aggGot, redGot)
	}
}

// --- helpers ---

func join(sep string) func(context.Context, []string) (string, error) {
	return func(_ context.Context, values []string) (string, error) {
		out := values[0]
		for _, v := range values[1:] {
			out += sep + v
		}
		return out, nil
	}
}
