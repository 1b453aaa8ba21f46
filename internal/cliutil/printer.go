// Package cliutil formats terminal output for the oasspell commands.
package cliutil

import (
	"fmt"
	"io"
)

// Printer writes formatted report lines. After the first failed write it
// drops further output and keeps that error for Err.
type Printer struct {
	w   io.Writer
	err error
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Printf formats according to format and writes the result.
func (p *Printer) Printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// Err returns the first write error, if any.
func (p *Printer) Err() error {
	return p.err
}
