package ui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Table is a simple header plus rows listing.
type Table struct {
	Header []string
	Rows   [][]string
	Footer string // Printed under the table when set
}

// Render writes the table to w.
func (t Table) Render(w io.Writer) {
	if len(t.Rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)

	header := make(table.Row, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	tw.AppendHeader(header)

	for _, r := range t.Rows {
		row := make(table.Row, len(r))
		for i, v := range r {
			row[i] = v
		}
		tw.AppendRow(row)
	}

	tw.Render()
	if t.Footer != "" {
		_, _ = fmt.Fprintln(w, t.Footer)
	}
}
