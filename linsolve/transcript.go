// Package linsolve: transcript emission.
// The transcript is the program's primary output, not diagnostics: every
// line below is part of the user-facing contract and must stay stable.

package linsolve

import (
	"fmt"
	"io"
	"strings"
)

// ruleWidth is the length of the dash rule closing each matrix snapshot.
const ruleWidth = 40

// transcript writes lines to the caller's sink, latching the first write
// error. After a failure every emission becomes a no-op, so the solver can
// run its loops unconditionally and surface the error once at the boundary.
type transcript struct {
	w         io.Writer
	cellWidth int
	err       error
}

// line emits s as one transcript line.
func (t *transcript) line(s string) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, "%s\n", s)
}

// linef emits a formatted transcript line.
func (t *transcript) linef(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format+"\n", args...)
}

// matrix emits a titled snapshot block: a blank line, the title banner,
// one bracketed line per row with right-aligned comma-separated cells, and
// a closing dash rule.
func (t *transcript) matrix(m *augmented, title string) {
	t.linef("\n--- %s ---", title)
	cells := make([]string, m.cols)
	for _, row := range m.cells {
		for j, v := range row {
			cells[j] = fmt.Sprintf("%*s", t.cellWidth, v)
		}
		t.linef(" [%s]", strings.Join(cells, ", "))
	}
	t.line(strings.Repeat("-", ruleWidth))
}

// state emits the standard post-operation snapshot.
func (t *transcript) state(m *augmented) {
	t.matrix(m, "Current Matrix State")
}
