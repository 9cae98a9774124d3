package fdt

// Merge recursively combines other into n, overlaying one device tree
// fragment on another. For each property of other: a missing name is
// deep-copied in, an identical property is skipped, and a differing one
// either keeps n's value (replace false) or adopts other's payload
// (replace true). Child subtrees absent from n are deep-copied in,
// identical subtrees are skipped, and differing ones are merged
// recursively with the same replace flag. Conflicts therefore resolve as
// "first tree wins" unless replace is set.
//
// Merge does not fail on structural mismatches; it only propagates
// invariant violations surfaced by the underlying Append calls.
func (n *Node) Merge(other *Node, replace bool) error {
	for _, op := range other.props {
		existing := n.GetProperty(op.Name())
		switch {
		case existing == nil:
			if err := n.Append(op.Copy()); err != nil {
				return err
			}
		case existing.Equal(op):
		case replace:
			n.adoptPayload(existing, op)
		}
	}

	for _, oc := range other.nodes {
		existing := n.GetSubnode(oc.name)
		switch {
		case existing == nil:
			if err := n.Append(oc.Copy()); err != nil {
				return err
			}
		case existing.Equal(oc):
		default:
			if err := existing.Merge(oc, replace); err != nil {
				return err
			}
		}
	}
	return nil
}

// adoptPayload overwrites dst's value payload with a copy of src's. When
// the variants match only the value list moves, preserving dst's identity
// and, for word lists, its configured word width. When the variants differ
// the stored property is replaced outright with a copy of src: the historic
// behavior of grafting a foreign payload into the original variant is not
// representable with typed payloads, so the merged property takes src's
// variant instead.
func (n *Node) adoptPayload(dst, src Property) {
	switch d := dst.(type) {
	case *PropStrings:
		if s, ok := src.(*PropStrings); ok {
			d.data = append([]string(nil), s.data...)
			return
		}
	case *PropWords:
		if s, ok := src.(*PropWords); ok {
			d.data = append([]uint32(nil), s.data...)
			return
		}
	case *PropBytes:
		if s, ok := src.(*PropBytes); ok {
			d.data = append([]byte(nil), s.data...)
			return
		}
	case *PropEmpty:
		if _, ok := src.(*PropEmpty); ok {
			return
		}
	}
	for i, p := range n.props {
		if p == dst {
			cp := src.Copy()
			cp.setParent(n)
			n.props[i] = cp
			return
		}
	}
}
