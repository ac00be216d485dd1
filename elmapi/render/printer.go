// Package render prints ELM database records for humans.
//
// Each record kind has a single-record formatter, showing the base fields and,
// in verbose mode, every optional group, and a list formatter. Lists of two or
// more records are printed as a compact table, or in verbose mode as
// consecutive single-record blocks separated by a divider.
package render

import (
	"fmt"
	"io"
	"strings"
)

// Divider printed after each record of a verbose list.
var ListDivider = strings.Repeat("-", 75)

type Printer struct {
	W       io.Writer
	Verbose bool
}

func NewPrinter(w io.Writer, verbose bool) *Printer {
	return &Printer{W: w, Verbose: verbose}
}

// table is the compact form of a record kind: a column header, its underline and one row per record.
type table struct {
	header  string
	divider string
	row     func(i int) string
}

// printList prints n records: nothing for none, the single-record form for one,
// otherwise verbose blocks or the compact table.
func (p *Printer) printList(n int, single func(o *output, i int), t table) error {
	o := &output{w: p.W}
	switch {
	case n == 0:
	case n == 1:
		single(o, 0)
	case p.Verbose:
		for i := 0; i < n; i++ {
			single(o, i)
			o.println(ListDivider)
		}
	default:
		o.println(t.header)
		o.println(t.divider)
		for i := 0; i < n; i++ {
			o.println(t.row(i))
		}
	}
	return o.err
}

// output remembers the first write error and drops everything after it.
type output struct {
	w   io.Writer
	err error
}

func (o *output) println(s string) {
	if o.err != nil {
		return
	}
	_, o.err = io.WriteString(o.w, s+"\n")
}

func (o *output) printf(format string, args ...interface{}) {
	if o.err != nil {
		return
	}
	_, o.err = fmt.Fprintf(o.w, format, args...)
}
