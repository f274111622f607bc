// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rooftab formats roofline performance tables.
//
// A table reports, for every compute roof and memory level, the peak
// and measured figures and the percent of peak achieved; for every
// measurement, its arithmetic intensity; and the bottleneck
// classification. Supported formats are plain ascii, Markdown, Org,
// CSV, and HTML.
package rooftab

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"golang.org/x/roofline/roofmodel"
	"golang.org/x/roofline/roofspec"
	"golang.org/x/roofline/rooftab/internal/texttab"
	"golang.org/x/roofline/roofunit"
)

// tableData is the format-independent table content.
type tableData struct {
	App      string
	CPU      string
	Cores    int
	Topology string

	Units      []unitRow
	Points     []pointRow
	Bottleneck string

	// Combined lists one footnote per combined group whose value
	// appears in the table.
	Combined []string
}

type unitRow struct {
	Name     string
	Kind     string // "compute" or "memory"
	Peak     string
	Measured string
	Percent  string
}

type pointRow struct {
	Compute    string
	Memory     string
	Intensity  string
	Throughput string
	Bandwidth  string
}

// Write formats cfg's performance table to w.
func Write(w io.Writer, cfg *roofmodel.Config, format roofspec.Format) error {
	exact := format == roofspec.FormatCSV
	data := makeData(cfg, exact)
	switch format {
	case roofspec.FormatASCII:
		return writeText(w, data, texttab.Plain)
	case roofspec.FormatMarkdown:
		return writeText(w, data, texttab.Markdown)
	case roofspec.FormatOrg:
		return writeText(w, data, texttab.Org)
	case roofspec.FormatCSV:
		return writeCSV(w, data)
	case roofspec.FormatHTML:
		return writeHTML(w, data)
	}
	return fmt.Errorf("unknown table format %v", format)
}

func makeData(cfg *roofmodel.Config, exact bool) *tableData {
	scale := roofunit.Scale
	if exact {
		scale = roofunit.NoOpScaler.Format
	}
	data := &tableData{
		App:        cfg.AppName,
		CPU:        cfg.CPUName,
		Cores:      cfg.NumCores,
		Topology:   cfg.Topology,
		Bottleneck: roofmodel.Classify(cfg).String(),
	}

	seenGroup := make(map[int]bool)
	for _, r := range cfg.ComputeRoofs {
		row := unitRow{Name: r.Name, Kind: "compute", Peak: scale(r.Peak), Measured: "-", Percent: "-"}
		if v, ok := cfg.MeasuredThroughput(r.Name); ok {
			row.Measured = scale(v)
			row.Percent = roofunit.Percent(v, r.Peak)
			// The combined-measurement marker is a reading
			// aid; CSV output stays bare numbers.
			if g, ok := cfg.GroupFor(r.Name); ok && g.Measured == v && !exact {
				row.Measured += "*"
				for i := range cfg.Groups {
					if !seenGroup[i] && sameGroup(cfg.Groups[i], g) {
						seenGroup[i] = true
						data.Combined = append(data.Combined, joinPlus(g.Types))
					}
				}
			}
		}
		data.Units = append(data.Units, row)
	}
	for _, l := range cfg.MemoryLevels {
		data.Units = append(data.Units, unitRow{
			Name: l.Name, Kind: "memory",
			Peak:     scale(l.Peak),
			Measured: scale(l.Measured),
			Percent:  roofunit.Percent(l.Measured, l.Peak),
		})
	}
	for _, m := range cfg.Measurements {
		data.Points = append(data.Points, pointRow{
			Compute:    m.Compute,
			Memory:     m.Memory,
			Intensity:  formatIntensity(m.Intensity(), exact),
			Throughput: scale(m.Throughput),
			Bandwidth:  scale(m.Bandwidth),
		})
	}
	return data
}

func formatIntensity(ai float64, exact bool) string {
	if exact {
		return strconv.FormatFloat(ai, 'g', -1, 64)
	}
	return strconv.FormatFloat(ai, 'f', 3, 64)
}

func sameGroup(a, b roofmodel.Group) bool {
	if a.Measured != b.Measured || len(a.Types) != len(b.Types) {
		return false
	}
	for i := range a.Types {
		if a.Types[i] != b.Types[i] {
			return false
		}
	}
	return true
}

func joinPlus(types []string) string {
	s := ""
	for i, t := range types {
		if i > 0 {
			s += "+"
		}
		s += t
	}
	return s
}

func writeText(w io.Writer, data *tableData, style texttab.Style) error {
	fmt.Fprintf(w, "Roofline analysis: %s\n", data.App)
	fmt.Fprintf(w, "CPU: %s (%d cores, %s)\n\n", data.CPU, data.Cores, data.Topology)

	units := new(texttab.Table)
	units.Row().Cell("unit").Cell("kind").
		Cell("peak", texttab.Right).Cell("measured", texttab.Right).Cell("% of peak", texttab.Right)
	units.Rule()
	for _, r := range data.Units {
		units.Row().Cell(r.Name).Cell(r.Kind).
			Cell(r.Peak, texttab.Right).Cell(r.Measured, texttab.Right).Cell(r.Percent, texttab.Right)
	}
	if err := units.Format(w, style); err != nil {
		return err
	}

	if len(data.Points) > 0 {
		fmt.Fprintln(w)
		points := new(texttab.Table)
		points.Row().Cell("compute").Cell("memory").
			Cell("throughput", texttab.Right).Cell("bandwidth", texttab.Right).Cell("intensity", texttab.Right)
		points.Rule()
		for _, p := range data.Points {
			points.Row().Cell(p.Compute).Cell(p.Memory).
				Cell(p.Throughput, texttab.Right).Cell(p.Bandwidth, texttab.Right).Cell(p.Intensity, texttab.Right)
		}
		if err := points.Format(w, style); err != nil {
			return err
		}
	}

	fmt.Fprintf(w, "\nBottleneck: %s\n", data.Bottleneck)
	for _, g := range data.Combined {
		fmt.Fprintf(w, "* combined measurement shared by %s\n", g)
	}
	return nil
}

func writeCSV(w io.Writer, data *tableData) error {
	o := csv.NewWriter(w)
	o.Write([]string{"app", "cpu", "cores", "topology"})
	o.Write([]string{data.App, data.CPU, strconv.Itoa(data.Cores), data.Topology})
	o.Write(nil)
	o.Write([]string{"unit", "kind", "peak", "measured", "percent of peak"})
	for _, r := range data.Units {
		o.Write([]string{r.Name, r.Kind, r.Peak, r.Measured, r.Percent})
	}
	o.Write(nil)
	o.Write([]string{"compute", "memory", "throughput", "bandwidth", "intensity"})
	for _, p := range data.Points {
		o.Write([]string{p.Compute, p.Memory, p.Throughput, p.Bandwidth, p.Intensity})
	}
	o.Write(nil)
	o.Write([]string{"bottleneck", data.Bottleneck})
	o.Flush()
	return o.Error()
}
