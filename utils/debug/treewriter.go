package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// TreeWriter accumulates an indented, line-oriented dump of a tree
// structure. Two spaces per depth level.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

// Line writes one formatted line at the given depth.
func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// TextBlock writes a labeled, quoted text value. Empty values stay
// unquoted so missing text reads differently from an empty literal.
func (tw TreeWriter) TextBlock(depth int, label, value string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// KeyValues writes a labeled list of key=value pairs on one line, keeping
// the pairs in the order given.
func (tw TreeWriter) KeyValues(depth int, label string, pairs [][2]string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(":")
	for _, p := range pairs {
		tw.w.WriteByte(' ')
		tw.w.WriteString(p[0])
		tw.w.WriteByte('=')
		tw.w.WriteString(encodeText(p[1]))
	}
	tw.w.WriteByte('\n')
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
