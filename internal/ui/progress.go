package ui

import (
	"fmt"
	"io"
)

// Progress prints one counter line per completed item, e.g.
// "[2/5] exercises/00_intro/intro2.rs".
type Progress struct {
	out   io.Writer
	total int
	done  int
}

// NewProgress creates a progress printer for total items.
func NewProgress(out io.Writer, total int) *Progress {
	return &Progress{out: out, total: total}
}

// Done marks one item as completed.
func (p *Progress) Done(label string) {
	p.done++
	_, _ = fmt.Fprintf(p.out, "[%d/%d] %s\n", p.done, p.total, label)
}

// Completed returns how many items were marked done.
func (p *Progress) Completed() int {
	return p.done
}
