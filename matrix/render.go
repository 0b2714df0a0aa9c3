// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// Rendering literals.
const (
	_fmtPad     = " "  // padding and separator character
	_fmtNewline = "\n" // line separator and terminator
	_fmtNilGrid = "<nil>"
)

// Compile-time assertions for fmt.Stringer conformance.
var (
	_ fmt.Stringer = (*Grid)(nil)
	_ fmt.Stringer = (*Vector)(nil)
	_ fmt.Stringer = Cell{}
)

// String renders g as an aligned text table.
//
// Every cell and label is right-aligned to one shared width: the longest
// printed cell or label anywhere in the grid. With column labels a header
// line comes first; with row labels each line starts with its label and the
// header is indented by one extra column. Entries are separated by a single
// space, lines by "\n", and the output always ends with "\n".
//
//	    a  b
//	 x  5  8
//	 y  7 -9
func (g *Grid) String() string {
	if g == nil {
		return _fmtNilGrid
	}

	texts := make([]string, len(g.cells))
	width := 0
	for idx, cell := range g.cells {
		texts[idx] = cell.String()
		width = max(width, len(texts[idx]))
	}
	for _, name := range g.colLabels {
		width = max(width, len(name))
	}
	for _, name := range g.rowLabels {
		width = max(width, len(name))
	}

	hasRowLabels, hasColLabels := len(g.rowLabels) > 0, len(g.colLabels) > 0

	var b strings.Builder
	if hasColLabels {
		lead := ""
		if hasRowLabels {
			lead = strings.Repeat(_fmtPad, width+1) // room for the row label column
		}
		writeAligned(&b, g.colLabels, width, 0, lead)
	}

	row := make([]string, 0, g.c+1)
	for i := 0; i < g.r; i++ {
		row = row[:0]
		if hasRowLabels {
			row = append(row, g.rowLabels[i])
		}
		row = append(row, texts[i*g.c:(i+1)*g.c]...)
		// Lines are joined, not prefixed: a separator only follows earlier output.
		if b.Len() > 0 {
			b.WriteString(_fmtNewline)
		}
		writeAligned(&b, row, width, b.Len(), "")
	}
	b.WriteString(_fmtNewline)

	return b.String()
}

// writeAligned writes entries left-padded to width, separated by one space.
// lineStart is the offset where the current line began. While the line is
// still empty, lead is written in place of the separator; this matters for
// the header indent and for zero-width tables of missing cells.
func writeAligned(b *strings.Builder, entries []string, width, lineStart int, lead string) {
	for _, text := range entries {
		if b.Len() > lineStart {
			b.WriteString(_fmtPad)
		} else {
			b.WriteString(lead)
		}
		b.WriteString(strings.Repeat(_fmtPad, width-len(text)))
		b.WriteString(text)
	}
}
