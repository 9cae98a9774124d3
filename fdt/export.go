package fdt

import (
	"fmt"
	"strings"

	"github.com/joshuapare/dtkit/internal/dtstext"
)

// DTS text emission.
//
// Each item renders itself as one or more source lines at the requested
// indentation depth; nodes recurse into properties and children one level
// deeper. Depth rides the recursion parameter, never package state.

// ToDTS renders the empty property as a bare "name;" line.
func (p *PropEmpty) ToDTS(tabsize, depth int) string {
	return dtstext.LineOffset(tabsize, depth, p.name+";\n")
}

// ToDTS renders the string list as `name = "a", "b";`.
func (p *PropStrings) ToDTS(tabsize, depth int) string {
	var sb strings.Builder
	sb.WriteString(dtstext.LineOffset(tabsize, depth, p.name))
	sb.WriteString(` = "`)
	sb.WriteString(strings.Join(p.data, `", "`))
	sb.WriteString("\";\n")
	return sb.String()
}

// ToDTS renders the word list as `name = <0x1 0xFF>;`.
func (p *PropWords) ToDTS(tabsize, depth int) string {
	words := make([]string, len(p.data))
	for i, w := range p.data {
		words[i] = fmt.Sprintf("0x%X", w)
	}
	var sb strings.Builder
	sb.WriteString(dtstext.LineOffset(tabsize, depth, p.name))
	sb.WriteString(" = <")
	sb.WriteString(strings.Join(words, " "))
	sb.WriteString(">;\n")
	return sb.String()
}

// ToDTS renders the byte list as `name = [DE AD];`.
func (p *PropBytes) ToDTS(tabsize, depth int) string {
	bytes := make([]string, len(p.data))
	for i, b := range p.data {
		bytes[i] = fmt.Sprintf("%02X", b)
	}
	var sb strings.Builder
	sb.WriteString(dtstext.LineOffset(tabsize, depth, p.name))
	sb.WriteString(" = [")
	sb.WriteString(strings.Join(bytes, " "))
	sb.WriteString("];\n")
	return sb.String()
}

// ToDTS renders the node block with properties before children, each one
// indentation level deeper.
func (n *Node) ToDTS(tabsize, depth int) string {
	var sb strings.Builder
	sb.WriteString(dtstext.LineOffset(tabsize, depth, n.name+" {\n"))
	for _, p := range n.props {
		sb.WriteString(p.ToDTS(tabsize, depth+1))
	}
	for _, c := range n.nodes {
		sb.WriteString(c.ToDTS(tabsize, depth+1))
	}
	sb.WriteString(dtstext.LineOffset(tabsize, depth, "};\n"))
	return sb.String()
}
