package tree

import (
	"errors"
	"strings"
	"testing"

	treeerrors "github.com/kbukum/treekit/errors"
)

func TestParser_GetInitialLeaf(t *testing.T) {
	got, err := NewParser("hello").Get()
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello" {
		t.Errorf("got %v, want hello", got)
	}
}

func TestParser_Get_NotCollapsed(t *testing.T) {
	p := NewParser("a b").Split(" ")
	_, err := p.Get()
	if !treeerrors.IsCode(err, treeerrors.ErrCodeNotCollapsed) {
		t.Errorf("expected NOT_COLLAPSED, got %v", err)
	}
}

func TestParser_ExpandMapReduce(t *testing.T) {
	got, err := NewParser("1 2 3").
		Split(" ").
		Map(func(v any) (any, error) {
			return len(v.(string)), nil
		}).
		Reduce(func(values []any) (any, error) {
			sum := 0
			for _, v := range values {
				sum += v.(int)
			}
			return sum, nil
		}).
		Get()
	if err != nil {
		t.Fatal(err)
	}
	if got != 3 {
		t.Errorf("got %v, want 3", got)
	}
}

func TestParser_JoinScenario(t *testing.T) {
	got, err := NewParser("a b\nc d\n").
		Split("\n").
		Split(" ").
		Reduce(joinValues("_")).
		Reduce(joinValues(" -> ")).
		Get()
	if err != nil {
		t.Fatal(err)
	}
	if got != "a_b -> c_d" {
		t.Errorf("got %v, want a_b -> c_d", got)
	}
}

func TestParser_ToList(t *testing.T) {
	got, err := NewParser("a b c\nd").
		Split("\n").
		Split(" ").
		ToList()
	if err != nil {
		t.Fatal(err)
	}
	lines := got.([]any)
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	first := lines[0].([]any)
	if len(first) != 3 || first[0] != "a" || first[2] != "c" {
		t.Errorf("first line = %v, want [a b c]", first)
	}
	second := lines[1].([]any)
	if len(second) != 1 || second[0] != "d" {
		t.Errorf("second line = %v, want [d]", second)
	}
}

func TestParser_ReduceOnSingleLeaf(t *testing.T) {
	p := NewParser("x").Reduce(func(values []any) (any, error) {
		return values, nil
	})
	if !treeerrors.IsCode(p.Err(), treeerrors.ErrCodeSingleNode) {
		t.Errorf("expected SINGLE_NODE, got %v", p.Err())
	}
}

func TestParser_SplitNonString(t *testing.T) {
	p := NewParser(42).Split(" ")
	if !treeerrors.IsCode(p.Err(), treeerrors.ErrCodeInvalidInput) {
		t.Errorf("expected INVALID_INPUT, got %v", p.Err())
	}
}

func TestParser_StickyError(t *testing.T) {
	boom := errors.New("expand failed")
	p := NewParser("a b").
		Expand(func(any) ([]any, error) { return nil, boom }).
		Map(func(v any) (any, error) {
			t.Error("map should not run after a failed expand")
			return v, nil
		})
	if _, err := p.Get(); !errors.Is(err, boom) {
		t.Errorf("expected sticky expand error, got %v", err)
	}
}

func TestNode_ChildrenOnLeaf(t *testing.T) {
	n := newLeaf("x")
	_, err := n.Children()
	if !treeerrors.IsCode(err, treeerrors.ErrCodeLeafIteration) {
		t.Errorf("expected LEAF_ITERATION, got %v", err)
	}
}

func TestNode_Leaves(t *testing.T) {
	p := NewParser("a b\nc").Split("\n").Split(" ")
	if p.Err() != nil {
		t.Fatal(p.Err())
	}
	leaves := p.root.Leaves()
	var values []string
	for _, leaf := range leaves {
		values = append(values, leaf.Value().(string))
	}
	if strings.Join(values, ",") != "a,b,c" {
		t.Errorf("leaves = %v, want [a b c]", values)
	}
}

func TestNode_LowestNodes(t *testing.T) {
	p := NewParser("a b\nc d").Split("\n").Split(" ")
	if p.Err() != nil {
		t.Fatal(p.Err())
	}
	lowest, err := p.root.LowestNodes()
	if err != nil {
		t.Fatal(err)
	}
	if len(lowest) != 2 {
		t.Errorf("expected 2 lowest nodes, got %d", len(lowest))
	}
}

func joinValues(sep string) func([]any) (any, error) {
	return func(values []any) (any, error) {
		out := values[0].(string)
		for _, v := range values[1:] {
			out += sep + v.(string)
		}
		return out, nil
	}
}
