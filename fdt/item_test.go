package fdt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustNode(t *testing.T, name string) *Node {
	t.Helper()
	n, err := NewNode(name)
	require.NoError(t, err)
	return n
}

func TestNewNodeNameValidation(t *testing.T) {
	_, err := NewNode("")
	require.ErrorIs(t, err, ErrInvalidName)

	_, err = NewNode("bad\x00name")
	require.ErrorIs(t, err, ErrInvalidName)

	_, err = NewPropEmpty("\x01")
	require.ErrorIs(t, err, ErrInvalidName)

	n, err := NewNode("serial@100")
	require.NoError(t, err)
	require.Equal(t, "serial@100", n.Name())
	require.Nil(t, n.Parent())
}

func TestPathComputation(t *testing.T) {
	root := mustNode(t, "/")
	soc := mustNode(t, "soc")
	bus := mustNode(t, "bus")
	leaf := mustNode(t, "leaf")
	require.NoError(t, bus.Append(leaf))
	require.NoError(t, soc.Append(bus))
	require.NoError(t, root.Append(soc))

	require.Equal(t, "/", root.Path())
	require.Equal(t, "/", root.FullPath())

	require.Equal(t, "/", soc.Path())
	require.Equal(t, "/soc", soc.FullPath())

	require.Equal(t, "/soc/bus", leaf.Path())
	require.Equal(t, "/soc/bus/leaf", leaf.FullPath())
}

func TestPropertyPath(t *testing.T) {
	root := mustNode(t, "/")
	soc := mustNode(t, "soc")
	prop, err := NewPropEmpty("ranges")
	require.NoError(t, err)
	require.NoError(t, soc.Append(prop))
	require.NoError(t, root.Append(soc))

	require.Equal(t, soc, prop.Parent())
	require.Equal(t, "/soc", prop.Path())
	require.Equal(t, "/soc/ranges", prop.FullPath())
}

func TestDetachedPath(t *testing.T) {
	n := mustNode(t, "orphan")
	require.Equal(t, "/", n.Path())
	require.Equal(t, "/orphan", n.FullPath())
}
