package codegen

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// LineDiff returns a line-oriented diff from a to b. Each output line
// starts with "-" (only in a), "+" (only in b) or " " (both).
func LineDiff(a, b string) string {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var buf strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "-"
		case diffpatch.DiffInsert:
			prefix = "+"
		default:
			prefix = " "
		}
		text := strings.TrimSuffix(d.Text, "\n")
		for _, line := range strings.Split(text, "\n") {
			buf.WriteString(prefix)
			buf.WriteString(line)
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}
