package tree

import (
	"strings"

	"github.com/kbukum/treekit/errors"
)

// Node is a materialized tree node: either a leaf holding a value or an inner
// node holding children.
type Node struct {
	value    any
	children []*Node
	leaf     bool
}

// newLeaf creates a leaf node holding value.
func newLeaf(value any) *Node {
	return &Node{value: value, leaf: true}
}

// IsLeaf reports whether the node is a leaf.
func (n *Node) IsLeaf() bool { return n.leaf }

// Value returns the node's value. Inner nodes have no value.
func (n *Node) Value() any { return n.value }

// Children returns the node's children. Fails with LEAF_ITERATION on a leaf.
func (n *Node) Children() ([]*Node, error) {
	if n.leaf {
		return nil, errors.LeafIteration()
	}
	return n.children, nil
}

// Leaves returns all leaves of the subtree rooted at n, in traversal order.
func (n *Node) Leaves() []*Node {
	if n.leaf {
		return []*Node{n}
	}
	var leaves []*Node
	for _, child := range n.children {
		leaves = append(leaves, child.Leaves()...)
	}
	return leaves
}

// LowestNodes returns the lowest inner nodes: the inner nodes whose children
// are all leaves. It assumes the tree is structurally homogeneous, so only the
// first child of each node is inspected. Fails with SINGLE_NODE when the tree
// consists of one node.
func (n *Node) LowestNodes() ([]*Node, error) {
	if n.leaf {
		return nil, errors.SingleNode()
	}
	if len(n.children) == 0 || n.children[0].leaf {
		return []*Node{n}, nil
	}
	var lowest []*Node
	for _, child := range n.children {
		sub, err := child.LowestNodes()
		if err != nil {
			return nil, err
		}
		lowest = append(lowest, sub...)
	}
	return lowest, nil
}

// Parser interprets its input as a tree that can be expanded, mapped and
// reduced. Operations chain; the first failure sticks and surfaces from Get,
// ToList, or Err.
type Parser struct {
	root *Node
	err  error
}

// NewParser creates a parser whose tree is a single leaf holding input.
func NewParser(input any) *Parser {
	return &Parser{root: newLeaf(input)}
}

// Err returns the first error encountered by a chained operation, if any.
func (p *Parser) Err() error { return p.err }

// Expand applies fn to every leaf and replaces the leaf with an inner node
// whose children hold the returned values. Increases tree height by one.
func (p *Parser) Expand(fn func(any) ([]any, error)) *Parser {
	if p.err != nil {
		return p
	}
	for _, leaf := range p.root.Leaves() {
		values, err := fn(leaf.value)
		if err != nil {
			p.err = err
			return p
		}
		children := make([]*Node, len(values))
		for i, v := range values {
			children[i] = newLeaf(v)
		}
		leaf.leaf = false
		leaf.value = nil
		leaf.children = children
	}
	return p
}

// Map applies fn to every leaf, replacing its value. Height is unchanged.
func (p *Parser) Map(fn func(any) (any, error)) *Parser {
	if p.err != nil {
		return p
	}
	for _, leaf := range p.root.Leaves() {
		v, err := fn(leaf.value)
		if err != nil {
			p.err = err
			return p
		}
		leaf.value = v
	}
	return p
}

// Reduce calls fn with the ordered child values of every lowest inner node
// and replaces that node with a leaf holding the result. Decreases tree
// height by one.
func (p *Parser) Reduce(fn func([]any) (any, error)) *Parser {
	if p.err != nil {
		return p
	}
	lowest, err := p.root.LowestNodes()
	if err != nil {
		p.err = err
		return p
	}
	for _, node := range lowest {
		values := make([]any, len(node.children))
		for i, child := range node.children {
			values[i] = child.value
		}
		v, err := fn(values)
		if err != nil {
			p.err = err
			return p
		}
		node.leaf = true
		node.children = nil
		node.value = v
	}
	return p
}

// Split expands every leaf by splitting its string value on separator. Like
// stream.Split, a trailing separator does not produce a trailing empty token.
func (p *Parser) Split(separator string) *Parser {
	return p.Expand(func(v any) ([]any, error) {
		s, ok := v.(string)
		if !ok {
			return nil, errors.InvalidInput("split requires string values")
		}
		parts := strings.Split(s, separator)
		if len(parts) > 1 && parts[len(parts)-1] == "" {
			parts = parts[:len(parts)-1]
		}
		values := make([]any, len(parts))
		for i, part := range parts {
			values[i] = part
		}
		return values, nil
	})
}

// Get returns the value of the root node if it is a leaf. Fails with
// NOT_COLLAPSED while the tree still has inner nodes.
func (p *Parser) Get() (any, error) {
	if p.err != nil {
		return nil, p.err
	}
	if !p.root.leaf {
		return nil, errors.NotCollapsed()
	}
	return p.root.value, nil
}

// ToList reduces the tree to nested lists by collecting lowest inner nodes
// until a single leaf remains, then returns that leaf's value.
func (p *Parser) ToList() (any, error) {
	if p.err != nil {
		return nil, p.err
	}
	for !p.root.leaf {
		p.Reduce(func(values []any) (any, error) {
			collected := make([]any, len(values))
			copy(collected, values)
			return collected, nil
		})
		if p.err != nil {
			return nil, p.err
		}
	}
	return p.root.value, nil
}
