// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab does layout of text-based tables in several framing
// styles: plain aligned columns, Markdown pipe tables, and Org-mode
// tables.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// A Table accumulates rows of cells and rule rows, then formats them
// with aligned columns.
//
// Many of its methods return the Table so callers can easily chain
// them to build up many cells at once.
type Table struct {
	rows []tableRow
	cols int
}

type tableRow struct {
	rule  bool
	cells []tableCell
}

type tableCell struct {
	value     string
	alignment align
}

type CellOption func(c *tableCell)

var (
	Left  CellOption = func(c *tableCell) { c.alignment = alignLeft }
	Right            = func(c *tableCell) { c.alignment = alignRight }
)

type align int

const (
	alignLeft align = iota
	alignRight
)

func (a align) pad(s string, w int) string {
	if a == alignRight {
		return fmt.Sprintf("%*s", w, s)
	}
	return fmt.Sprintf("%-*s", w, s)
}

// A Style controls how Format frames rows and rules.
type Style struct {
	Prefix    string // before the first cell of a row
	Separator string // between cells
	Suffix    string // after the last cell

	RulePrefix string // before a rule row
	RuleSep    string // between rule segments
	RuleSuffix string // after a rule row
	RuleFill   byte   // rule segment fill, usually '-'
	RulePad    int    // extra fill per segment, covering cell padding
}

var (
	// Plain is benchstat-style output: two-space column gaps and
	// bare dashed rules.
	Plain = Style{Separator: "  ", RuleSep: "  ", RuleFill: '-'}

	// Markdown produces pipe tables.
	Markdown = Style{
		Prefix: "| ", Separator: " | ", Suffix: " |",
		RulePrefix: "|", RuleSep: "|", RuleSuffix: "|", RuleFill: '-', RulePad: 2,
	}

	// Org produces Org-mode tables, whose rules join on "+".
	Org = Style{
		Prefix: "| ", Separator: " | ", Suffix: " |",
		RulePrefix: "|", RuleSep: "+", RuleSuffix: "|", RuleFill: '-', RulePad: 2,
	}
)

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, tableRow{})
	return t
}

// Cell adds a cell to the current row.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	row := &t.rows[len(t.rows)-1]
	row.cells = append(row.cells, tableCell{value: value})
	for _, o := range opts {
		o(&row.cells[len(row.cells)-1])
	}
	if len(row.cells) > t.cols {
		t.cols = len(row.cells)
	}
	return t
}

// Rule adds a horizontal rule row spanning all columns.
func (t *Table) Rule() *Table {
	t.rows = append(t.rows, tableRow{rule: true})
	return t
}

// Format lays out table t and writes it to w in the given style.
func (t *Table) Format(w io.Writer, style Style) error {
	// Column widths. Rule rows don't contribute.
	ws := make([]int, t.cols)
	for _, row := range t.rows {
		for i, c := range row.cells {
			if n := utf8.RuneCountInString(c.value); n > ws[i] {
				ws[i] = n
			}
		}
	}

	var line strings.Builder
	for _, row := range t.rows {
		line.Reset()
		if row.rule {
			line.WriteString(style.RulePrefix)
			for i, cw := range ws {
				if i > 0 {
					line.WriteString(style.RuleSep)
				}
				for n := cw + style.RulePad; n > 0; n-- {
					line.WriteByte(style.RuleFill)
				}
			}
			line.WriteString(style.RuleSuffix)
		} else {
			line.WriteString(style.Prefix)
			for i, cw := range ws {
				if i > 0 {
					line.WriteString(style.Separator)
				}
				var c tableCell
				if i < len(row.cells) {
					c = row.cells[i]
				}
				line.WriteString(c.alignment.pad(c.value, cw))
			}
			line.WriteString(style.Suffix)
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}
