package fdt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func wordsOf(t *testing.T, n *Node, name string) []uint32 {
	t.Helper()
	p, ok := n.GetProperty(name).(*PropWords)
	require.True(t, ok, "property %q should be a word list", name)
	out := make([]uint32, p.Len())
	for i := range out {
		w, err := p.At(i)
		require.NoError(t, err)
		out[i] = w
	}
	return out
}

func TestMergeReplaceSemantics(t *testing.T) {
	build := func(v uint32) *Node {
		n := mustNode(t, "/")
		p, _ := NewPropWords("p", v)
		require.NoError(t, n.Append(p))
		return n
	}

	a := build(1)
	require.NoError(t, a.Merge(build(2), true))
	require.Equal(t, []uint32{2}, wordsOf(t, a, "p"), "replace=true adopts the incoming value")

	a = build(1)
	require.NoError(t, a.Merge(build(2), false))
	require.Equal(t, []uint32{1}, wordsOf(t, a, "p"), "replace=false keeps the existing value")
}

func TestMergeAddsMissingProperties(t *testing.T) {
	a := mustNode(t, "/")
	b := mustNode(t, "/")
	p, _ := NewPropStrings("model", "acme")
	require.NoError(t, b.Append(p))

	require.NoError(t, a.Merge(b, false))
	got := a.GetProperty("model")
	require.NotNil(t, got)
	require.True(t, got.Equal(p))
	require.Equal(t, a, got.Parent(), "merged property is owned by the receiver")

	// The merged-in property is a copy, not an alias.
	require.NoError(t, got.(*PropStrings).Append("other"))
	require.Equal(t, 1, p.Len())
}

func TestMergeDeepCopiesMissingSubtrees(t *testing.T) {
	a := mustNode(t, "/")
	b := mustNode(t, "/")
	soc := mustNode(t, "soc")
	reg, _ := NewPropWords("reg", 1)
	require.NoError(t, soc.Append(reg))
	require.NoError(t, b.Append(soc))

	require.NoError(t, a.Merge(b, true))
	merged := a.GetSubnode("soc")
	require.NotNil(t, merged)
	require.True(t, merged.Equal(soc))

	// Mutating the merged copy must not reach back into b's subtree.
	require.NoError(t, merged.GetProperty("reg").(*PropWords).Append(2))
	require.Equal(t, []uint32{1}, wordsOf(t, soc, "reg"))
}

func TestMergeRecursesIntoMatchingChildren(t *testing.T) {
	build := func(status string) *Node {
		n := mustNode(t, "/")
		soc := mustNode(t, "soc")
		p, _ := NewPropStrings("status", status)
		require.NoError(t, soc.Append(p))
		require.NoError(t, n.Append(soc))
		return n
	}

	a := build("disabled")
	require.NoError(t, a.Merge(build("okay"), true))
	got, err := a.GetSubnode("soc").GetProperty("status").(*PropStrings).At(0)
	require.NoError(t, err)
	require.Equal(t, "okay", got)

	a = build("disabled")
	require.NoError(t, a.Merge(build("okay"), false))
	got, err = a.GetSubnode("soc").GetProperty("status").(*PropStrings).At(0)
	require.NoError(t, err)
	require.Equal(t, "disabled", got)
}

func TestMergeIdenticalPropertiesAreSkipped(t *testing.T) {
	a := mustNode(t, "/")
	b := mustNode(t, "/")
	pa, _ := NewPropWords("p", 7)
	pb, _ := NewPropWords("p", 7)
	require.NoError(t, a.Append(pa))
	require.NoError(t, b.Append(pb))

	require.NoError(t, a.Merge(b, true))
	require.Same(t, pa, a.GetProperty("p"), "identical property keeps its identity")
}

func TestMergeVariantMismatchAdoptsIncoming(t *testing.T) {
	a := mustNode(t, "/")
	b := mustNode(t, "/")
	pw, _ := NewPropWords("p", 1)
	ps, _ := NewPropStrings("p", "one")
	require.NoError(t, a.Append(pw))
	require.NoError(t, b.Append(ps))

	require.NoError(t, a.Merge(b, true))
	got, ok := a.GetProperty("p").(*PropStrings)
	require.True(t, ok, "mismatched variants adopt the incoming variant under replace")
	require.True(t, got.Equal(ps))

	a = mustNode(t, "/")
	pw2, _ := NewPropWords("p", 1)
	require.NoError(t, a.Append(pw2))
	require.NoError(t, a.Merge(b, false))
	require.Same(t, pw2, a.GetProperty("p"), "replace=false leaves the receiver untouched")
}

func TestMergePreservesWordWidthOnSameVariant(t *testing.T) {
	a := mustNode(t, "/")
	b := mustNode(t, "/")
	narrow, _ := NewPropWordsSized("p", 8, 1)
	wide, _ := NewPropWords("p", 2)
	require.NoError(t, a.Append(narrow))
	require.NoError(t, b.Append(wide))

	require.NoError(t, a.Merge(b, true))
	got := a.GetProperty("p").(*PropWords)
	require.Equal(t, []uint32{2}, wordsOf(t, a, "p"))
	require.Equal(t, 8, got.WordSize(), "payload moves, receiver's word width stays")
}
