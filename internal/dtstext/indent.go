package dtstext

import "strings"

// LineOffset prefixes line with depth levels of indentation, tabsize
// spaces each. Pure formatting; no state.
func LineOffset(tabsize, depth int, line string) string {
	if tabsize <= 0 || depth <= 0 {
		return line
	}
	return strings.Repeat(" ", tabsize*depth) + line
}
