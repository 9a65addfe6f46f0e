// Package codegen compiles resolved interaction profiles into the two
// generated C artifact pairs: availability-guarded path verification
// functions and static profile template tables.
package codegen

import (
	"fmt"
	"strings"
)

// cwriter is a line-oriented buffer for emitting C source. Generated
// output uses tab indentation and must be byte-identical across runs,
// so all content goes through explicit Line/Linef calls.
type cwriter struct {
	buf strings.Builder
}

// Line writes each argument as one line.
func (w *cwriter) Line(lines ...string) {
	for _, line := range lines {
		w.buf.WriteString(line)
		w.buf.WriteByte('\n')
	}
}

// Linef writes one formatted line.
func (w *cwriter) Linef(format string, args ...any) {
	fmt.Fprintf(&w.buf, format, args...)
	w.buf.WriteByte('\n')
}

// Raw writes text without a trailing newline.
func (w *cwriter) Raw(s string) {
	w.buf.WriteString(s)
}

// Blank writes an empty line.
func (w *cwriter) Blank() {
	w.buf.WriteByte('\n')
}

func (w *cwriter) Bytes() []byte {
	return []byte(w.buf.String())
}
