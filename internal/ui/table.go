// Package ui renders plain terminal output: progress counters and aligned tables.
package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table renders rows in aligned columns under upper-cased headers.
type Table struct {
	w    *tabwriter.Writer
	cols int
}

// NewTable creates a table and writes its header line.
func NewTable(out io.Writer, headers ...string) *Table {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	upper := make([]string, len(headers))
	for i, h := range headers {
		upper[i] = strings.ToUpper(h)
	}
	_, _ = fmt.Fprintln(tw, strings.Join(upper, "\t"))
	return &Table{w: tw, cols: len(headers)}
}

// Row appends a row. Missing trailing cells are left blank.
func (t *Table) Row(values ...any) {
	parts := make([]string, t.cols)
	for i, v := range values {
		if i >= t.cols {
			break
		}
		parts[i] = fmt.Sprint(v)
	}
	_, _ = fmt.Fprintln(t.w, strings.Join(parts, "\t"))
}

// Flush writes the buffered output.
func (t *Table) Flush() error {
	return t.w.Flush()
}
