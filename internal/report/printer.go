package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// Print renders diagnostics to w in the teacher-style "file:line:col" plus
// source-snippet form, one per diagnostic, colorized with fatih/color.
// source is the original file text, used to recover the offending line for
// the snippet; pass nil to skip snippets (e.g. when the source is no longer
// available).
func Print(w io.Writer, filePath string, errs []ParseError, source []byte) {
	red := color.New(color.FgRed, color.Bold)
	grey := color.New(color.FgHiBlack)

	lines := splitLines(source)

	for _, e := range errs {
		red.Fprint(w, "syntax error: ")
		fmt.Fprintln(w, e.Message)

		if e.Token == nil {
			continue
		}

		loc := e.Location()
		grey.Fprintf(w, "  --> %s:%s\n", filePath, loc)

		if loc.Start.Line >= 1 && loc.Start.Line <= len(lines) {
			line := lines[loc.Start.Line-1]
			grey.Fprintf(w, "%4d | ", loc.Start.Line)
			fmt.Fprintln(w, line)
			pad := strings.Repeat(" ", max(0, loc.Start.Column-1))
			grey.Fprint(w, "     | ")
			red.Fprintln(w, pad+"^")
		}
	}
}

func splitLines(source []byte) []string {
	if len(source) == 0 {
		return nil
	}
	return strings.Split(string(source), "\n")
}
