package fdt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiffEqualTrees(t *testing.T) {
	a := buildSampleTree(t)
	b := buildSampleTree(t)

	out := Diff(a, b, nil)
	require.NotEmpty(t, out)
	for _, line := range strings.Split(strings.TrimRight(out, "\n"), "\n") {
		require.True(t, strings.HasPrefix(line, "  "), "equal trees diff to context lines only, got %q", line)
	}
}

func TestDiffChangedProperty(t *testing.T) {
	build := func(status string) *Node {
		root := mustNode(t, "/")
		p, _ := NewPropStrings("status", status)
		require.NoError(t, root.Append(p))
		return root
	}
	out := Diff(build("okay"), build("disabled"), nil)

	require.Contains(t, out, `- `+strings.Repeat(" ", 4)+`status = "okay";`)
	require.Contains(t, out, `+ `+strings.Repeat(" ", 4)+`status = "disabled";`)
	require.Contains(t, out, "  / {")
}

func TestDiffAddedNode(t *testing.T) {
	a := mustNode(t, "/")
	b := mustNode(t, "/")
	soc := mustNode(t, "soc")
	require.NoError(t, b.Append(soc))

	out := Diff(a, b, &DiffOptions{Tabsize: 2})
	require.Contains(t, out, "+   soc {")
	require.Contains(t, out, "+   };")
}
