package fdt

import (
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffOptions controls Diff rendering.
type DiffOptions struct {
	// Tabsize is the indentation width of the rendered trees. Zero selects
	// the default of 4.
	Tabsize int
	// Color tints added lines green and removed lines red.
	Color bool
}

const defaultDiffTabsize = 4

// Diff renders both trees as DTS and returns a line-level diff: removed
// lines are prefixed "- ", added lines "+ ", and unchanged lines "  ".
// Two equal trees produce only unchanged lines.
func Diff(a, b *Node, opts *DiffOptions) string {
	if opts == nil {
		opts = &DiffOptions{}
	}
	tabsize := opts.Tabsize
	if tabsize <= 0 {
		tabsize = defaultDiffTabsize
	}

	dmp := diffmatchpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a.ToDTS(tabsize, 0), b.ToDTS(tabsize, 0))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		prefix, paint := "  ", fmtNoop
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "- "
			if opts.Color {
				paint = color.New(color.FgRed).Sprint
			}
		case diffmatchpatch.DiffInsert:
			prefix = "+ "
			if opts.Color {
				paint = color.New(color.FgGreen).Sprint
			}
		}
		for _, line := range splitLines(d.Text) {
			sb.WriteString(paint(prefix + line))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func fmtNoop(a ...interface{}) string {
	s := make([]string, len(a))
	for i, v := range a {
		s[i], _ = v.(string)
	}
	return strings.Join(s, "")
}

// splitLines splits a diff fragment into lines without a trailing empty
// entry for the final newline.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
