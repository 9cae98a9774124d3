package fdt

import (
	"fmt"
	"strings"

	"github.com/joshuapare/dtkit/internal/format"
)

// Item is implemented by every member of a device tree: the Node container
// and the four property variants. The interface is sealed; outside packages
// consume items but cannot add new kinds.
type Item interface {
	// Name returns the item name.
	Name() string
	// Parent returns the owning node, or nil for a detached item or the root.
	Parent() *Node
	// Path returns the root-relative path of the owning node, "/" for items
	// at the top of the tree.
	Path() string
	// FullPath returns the root-relative path including the item's own name.
	FullPath() string
	// ToDTS renders the item as DTS source text at the given depth.
	ToDTS(tabsize, depth int) string
	// ToDTB renders the item as structure block records. Property names are
	// resolved through sb and pos is the byte offset of the first emitted
	// byte within the structure block; the returned offset is pos advanced
	// past the emitted records.
	ToDTB(sb *Strings, pos, version int) ([]byte, int)

	setParent(n *Node)
}

// base carries the identity shared by nodes and properties: the validated
// name and the non-owning parent back-reference used for path computation.
type base struct {
	name   string
	parent *Node
}

func newBase(name string) (base, error) {
	if name == "" {
		return base{}, fmt.Errorf("%w: empty name", ErrInvalidName)
	}
	if !format.IsPrintable(name) {
		return base{}, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return base{name: name}, nil
}

// Name returns the item name.
func (b *base) Name() string { return b.name }

// Parent returns the owning node, or nil.
func (b *base) Parent() *Node { return b.parent }

func (b *base) setParent(n *Node) { b.parent = n }

// Path walks the parent chain upward and returns the slash-joined names
// from the root down to the item's owning node. The synthetic root name "/"
// is excluded; items directly under the root (and the root itself) report "/".
func (b *base) Path() string {
	var segs []string
	for n := b.parent; n != nil; n = n.parent {
		if n.name == format.RootName {
			break
		}
		segs = append(segs, n.name)
	}
	if len(segs) == 0 {
		return "/"
	}
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return "/" + strings.Join(segs, "/")
}

// FullPath returns the root-relative path including the item's own name.
// The root node reports "/".
func (b *base) FullPath() string {
	if b.name == format.RootName {
		return "/"
	}
	p := b.Path()
	if p == "/" {
		return "/" + b.name
	}
	return p + "/" + b.name
}
