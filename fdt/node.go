package fdt

import (
	"fmt"
	"strings"

	"github.com/joshuapare/dtkit/internal/format"
)

// Node is an ordered container of properties and child nodes. Property and
// child names are each unique within a node, and a node never contains
// itself. The parent back-reference set by Append is non-owning and serves
// only path computation.
type Node struct {
	base
	props []Property
	nodes []*Node
}

// NewNode creates a detached node. The tree root is conventionally named "/".
func NewNode(name string) (*Node, error) {
	b, err := newBase(name)
	if err != nil {
		return nil, err
	}
	return &Node{base: b}, nil
}

// Props returns the properties in declaration order. The slice is shared;
// callers must not mutate it.
func (n *Node) Props() []Property { return n.props }

// Nodes returns the child nodes in declaration order. The slice is shared;
// callers must not mutate it.
func (n *Node) Nodes() []*Node { return n.nodes }

// Empty reports whether the node has no properties and no children.
func (n *Node) Empty() bool { return len(n.props) == 0 && len(n.nodes) == 0 }

// String implements fmt.Stringer.
func (n *Node) String() string {
	return fmt.Sprintf("< %s: %d props, %d nodes >", n.name, len(n.props), len(n.nodes))
}

// GetProperty returns the first property with the given name, or nil.
func (n *Node) GetProperty(name string) Property {
	for _, p := range n.props {
		if p.Name() == name {
			return p
		}
	}
	return nil
}

// GetSubnode returns the first child node with the given name, or nil.
func (n *Node) GetSubnode(name string) *Node {
	for _, c := range n.nodes {
		if c.name == name {
			return c
		}
	}
	return nil
}

// RemoveProperty removes the property with the given name. Missing names
// are a no-op.
func (n *Node) RemoveProperty(name string) {
	for i, p := range n.props {
		if p.Name() == name {
			n.props = append(n.props[:i], n.props[i+1:]...)
			return
		}
	}
}

// RemoveSubnode removes the child node with the given name. Missing names
// are a no-op.
func (n *Node) RemoveSubnode(name string) {
	for i, c := range n.nodes {
		if c.name == name {
			n.nodes = append(n.nodes[:i], n.nodes[i+1:]...)
			return
		}
	}
}

// Append attaches a detached property or node to n, setting its parent
// back-reference. It fails with ErrDuplicateName if an item of that kind
// and name already exists, with ErrSelfReference if a node is appended to
// itself, and with ErrInvalidType for a nil item. On failure the node is
// left unmodified.
func (n *Node) Append(item Item) error {
	switch it := item.(type) {
	case Property:
		if it == nil {
			return fmt.Errorf("%w: nil property", ErrInvalidType)
		}
		if n.GetProperty(it.Name()) != nil {
			return fmt.Errorf("%w: %s: property %q already exists", ErrDuplicateName, n, it.Name())
		}
		it.setParent(n)
		n.props = append(n.props, it)
		return nil

	case *Node:
		if it == nil {
			return fmt.Errorf("%w: nil node", ErrInvalidType)
		}
		if it == n {
			return fmt.Errorf("%w: %s: append of node %q to itself", ErrSelfReference, n, it.name)
		}
		if n.GetSubnode(it.name) != nil {
			return fmt.Errorf("%w: %s: node %q already exists", ErrDuplicateName, n, it.name)
		}
		it.setParent(n)
		n.nodes = append(n.nodes, it)
		return nil

	default:
		return fmt.Errorf("%w: %T", ErrInvalidType, item)
	}
}

// Equal reports whether other has the same name, the same property and
// child counts, and every property and child of n is matched by an equal
// one in other, independent of order.
func (n *Node) Equal(other *Node) bool {
	if other == nil || n.name != other.name {
		return false
	}
	if len(n.props) != len(other.props) || len(n.nodes) != len(other.nodes) {
		return false
	}
	for _, p := range n.props {
		found := false
		for _, op := range other.props {
			if p.Equal(op) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	for _, c := range n.nodes {
		found := false
		for _, oc := range other.nodes {
			if c.Equal(oc) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Copy returns a detached deep copy of the subtree rooted at n.
func (n *Node) Copy() *Node {
	cp, _ := NewNode(n.name)
	for _, p := range n.props {
		// Invariants were enforced when n was built, so Append cannot fail.
		_ = cp.Append(p.Copy())
	}
	for _, c := range n.nodes {
		_ = cp.Append(c.Copy())
	}
	return cp
}

// Find descends from n along a slash-separated path of child names and
// returns the node it lands on, or nil. An empty path, "/", or "." returns
// n itself.
func (n *Node) Find(path string) *Node {
	cur := n
	for _, seg := range strings.Split(path, "/") {
		if seg == "" || seg == "." {
			continue
		}
		cur = cur.GetSubnode(seg)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// Walk traverses the subtree rooted at n depth-first in declaration order,
// invoking fn with each node's full path. Traversal stops at the first
// error, which is returned.
func (n *Node) Walk(fn func(path string, node *Node) error) error {
	if err := fn(n.FullPath(), n); err != nil {
		return err
	}
	for _, c := range n.nodes {
		if err := c.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// isRoot reports whether n serves as the synthetic tree root.
func (n *Node) isRoot() bool { return n.name == format.RootName }
