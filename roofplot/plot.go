// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package roofplot renders roofline charts.
//
// A chart shows one horizontal ceiling per compute roof, one diagonal
// per memory level, a ridge point wherever a ceiling meets a
// diagonal, and one marker per measurement. Hierarchical
// configurations use log-log axes; simple mode uses linear axes.
package roofplot

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aclements/go-moremath/vec"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"golang.org/x/roofline/roofmodel"
	"golang.org/x/roofline/roofunit"
)

// Diagonals are drawn from sampled points rather than two endpoints
// so dashed styles and future axis transforms stay well-behaved.
const diagSamples = 32

// Render builds the chart for cfg. The caller owns the returned plot
// and can restyle it before saving.
func Render(cfg *roofmodel.Config) (*plot.Plot, error) {
	g := cfg.Geometry()

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: %s (%d cores, %s)", cfg.AppName, cfg.CPUName, cfg.NumCores, cfg.Topology)
	p.X.Label.Text = "Arithmetic intensity [ops/byte]"
	p.Y.Label.Text = "Performance [ops/s]"
	if g.Log {
		p.X.Scale = plot.LogScale{}
		p.Y.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.X.Min, p.X.Max = g.XMin, g.XMax
	p.Y.Min, p.Y.Max = g.YMin, g.YMax
	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = vg.Millimeter

	// Memory diagonals, fastest first (the canonical order).
	for _, seg := range g.Levels {
		line, err := plotter.NewLine(sampleDiagonal(seg, g.Log))
		if err != nil {
			return nil, err
		}
		line.Color = seg.Color
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%s bw (%sB/s)", seg.Name, roofunit.Scale(seg.Y1/seg.X1)), line)
	}

	// Compute ceilings.
	for _, seg := range g.Roofs {
		line, err := plotter.NewLine(plotter.XYs{{X: seg.X0, Y: seg.Y0}, {X: seg.X1, Y: seg.Y1}})
		if err != nil {
			return nil, err
		}
		line.Color = seg.Color
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%s peak (%s ops/s)", seg.Name, roofunit.Scale(seg.Y0)), line)
	}

	// Ridge points.
	if len(g.Ridges) > 0 {
		pts := make(plotter.XYs, len(g.Ridges))
		for i, r := range g.Ridges {
			pts[i] = plotter.XY{X: r.X, Y: r.Y}
		}
		s, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		s.GlyphStyle = draw.GlyphStyle{
			Color:  color.Gray{0x60},
			Radius: vg.Points(2.5),
			Shape:  draw.RingGlyph{},
		}
		p.Add(s)
	}

	// Measurements, colored like their roofs.
	for _, pt := range g.Points {
		s, err := plotter.NewScatter(plotter.XYs{{X: pt.X, Y: pt.Y}})
		if err != nil {
			return nil, err
		}
		c := pt.Color
		if c == nil {
			c = color.Black
		}
		s.GlyphStyle = draw.GlyphStyle{
			Color:  c,
			Radius: vg.Points(3),
			Shape:  draw.CircleGlyph{},
		}
		p.Add(s)
	}

	return p, nil
}

// Save renders cfg and writes it to path. The output format follows
// the file extension; png, pdf, and svg are the usual choices.
func Save(cfg *roofmodel.Config, path string) error {
	p, err := Render(cfg)
	if err != nil {
		return err
	}
	return p.Save(10*vg.Inch, 7.5*vg.Inch, path)
}

// sampleDiagonal turns a diagonal segment into points, spaced
// geometrically on log axes and evenly otherwise. The segment's
// bandwidth is recovered from its upper endpoint.
func sampleDiagonal(seg roofmodel.Segment, log bool) plotter.XYs {
	bw := seg.Y1 / seg.X1
	var xs []float64
	if log {
		xs = vec.Logspace(math.Log10(seg.X0), math.Log10(seg.X1), diagSamples, 10)
	} else {
		xs = vec.Linspace(seg.X0, seg.X1, diagSamples)
	}
	pts := make(plotter.XYs, len(xs))
	for i, x := range xs {
		pts[i] = plotter.XY{X: x, Y: x * bw}
	}
	return pts
}
