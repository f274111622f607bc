// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texttab

import (
	"strings"
	"testing"
)

func buildTable() *Table {
	t := new(Table)
	t.Row().Cell("unit").Cell("peak", Right)
	t.Rule()
	t.Row().Cell("DP").Cell("1.405T", Right)
	t.Row().Cell("DRAM").Cell("204.8G", Right)
	return t
}

func format(t *testing.T, tab *Table, style Style) string {
	t.Helper()
	var sb strings.Builder
	if err := tab.Format(&sb, style); err != nil {
		t.Fatal(err)
	}
	return sb.String()
}

func TestPlain(t *testing.T) {
	got := format(t, buildTable(), Plain)
	want := `unit    peak
----  ------
DP    1.405T
DRAM  204.8G
`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestMarkdown(t *testing.T) {
	got := format(t, buildTable(), Markdown)
	want := `| unit |   peak |
|------|--------|
| DP   | 1.405T |
| DRAM | 204.8G |
`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestOrg(t *testing.T) {
	got := format(t, buildTable(), Org)
	want := `| unit |   peak |
|------+--------|
| DP   | 1.405T |
| DRAM | 204.8G |
`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestShortRow(t *testing.T) {
	tab := new(Table)
	tab.Row().Cell("a").Cell("b").Cell("c")
	tab.Row().Cell("only")
	got := format(t, tab, Markdown)
	want := `| a    | b | c |
| only |   |   |
`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}
