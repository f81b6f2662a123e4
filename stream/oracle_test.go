package stream

import (
	"context"
	"math/rand"
	"strings"
	"testing"

	"github.com/kbukum/treekit/testutil"
	"github.com/kbukum/treekit/tree"
)

// The streaming pipeline and the materialized tree must produce identical
// results for the same operation sequence on the same input.
func TestStreamingMatchesEagerOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	inputs := []string{
		"a b\nc d\n",
		"single\n",
		"one two three\nfour\nfive six\n",
		strings.Join(testutil.GenerateLines(rng, 50, 80), "\n") + "\n",
	}

	for _, input := range inputs {
		words := Split(Split(New(input), "\n"), " ")
		joined := Aggregate(words, func(acc, next string) string { return acc + "_" + next })
		root := Aggregate(joined, func(acc, next string) string { return acc + " -> " + next })
		streamed, err := Get(context.Background(), root)
		if err != nil {
			t.Fatalf("streaming pipeline failed for %q: %v", truncate(input), err)
		}

		eager, err := tree.NewParser(input).
			Split("\n").
			Split(" ").
			Reduce(joinAny("_")).
			Reduce(joinAny(" -> ")).
			Get()
		if err != nil {
			t.Fatalf("eager parser failed for %q: %v", truncate(input), err)
		}

		if streamed != eager.(string) {
			t.Errorf("streaming %q != eager %q for input %q", streamed, eager, truncate(input))
		}
	}
}

// Leaf sequences must also agree level by level, not just the collapsed root.
func TestStreamingLeavesMatchEagerLeaves(t *testing.T) {
	input := "x y z\nw\nu v\n"

	words := Split(Split(New(input), "\n"), " ")
	streamed, err := Collect(context.Background(), words)
	if err != nil {
		t.Fatal(err)
	}

	p := tree.NewParser(input).Split("\n").Split(" ")
	if p.Err() != nil {
		t.Fatal(p.Err())
	}
	list, err := p.ToList()
	if err != nil {
		t.Fatal(err)
	}
	var eager []string
	for _, line := range list.([]any) {
		for _, word := range line.([]any) {
			eager = append(eager, word.(string))
		}
	}

	if !strSliceEqual(streamed, eager) {
		t.Errorf("streaming leaves %v != eager leaves %v", streamed, eager)
	}
}

func joinAny(sep string) func([]any) (any, error) {
	return func(values []any) (any, error) {
		out := values[0].(string)
		for _, v := range values[1:] {
			out += sep + v.(string)
		}
		return out, nil
	}
}

func truncate(s string) string {
	if len(s) > 40 {
		return s[:40] + "..."
	}
	return s
}
