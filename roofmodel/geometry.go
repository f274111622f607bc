// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roofmodel

import (
	"image/color"
	"math"
)

// A Segment is one straight chart element in data coordinates:
// a horizontal roof or a diagonal bandwidth line.
type Segment struct {
	Name   string
	Color  color.Color
	X0, Y0 float64
	X1, Y1 float64
}

// A RidgePoint is the intersection of one roof's ceiling with one
// level's diagonal: x = peak throughput / peak bandwidth.
type RidgePoint struct {
	Roof  string
	Level string
	X, Y  float64
}

// A DataPoint is one measurement positioned at (arithmetic
// intensity, measured throughput).
type DataPoint struct {
	Compute string
	Memory  string
	Color   color.Color
	X, Y    float64
}

// Geometry is everything a renderer needs to draw a configuration:
// resolved line segments, ridge points, data points, and axis
// bounds. The bounds are presentation heuristics, not invariants.
type Geometry struct {
	Roofs  []Segment
	Levels []Segment
	Ridges []RidgePoint
	Points []DataPoint

	// Log selects log-log axes; it is the inverse of simple mode.
	Log                    bool
	XMin, XMax, YMin, YMax float64
}

// Geometry derives the chart geometry of cfg.
func (cfg *Config) Geometry() Geometry {
	g := Geometry{Log: !cfg.Simple}
	top := cfg.TopRoof()
	fastest := cfg.Fastest()

	// Axis bounds come from the extrema of ridge xs and
	// measurement intensities. Log mode widens them to whole
	// decades; linear mode pads by 20%.
	xlo, xhi := math.Inf(1), math.Inf(-1)
	for _, r := range cfg.ComputeRoofs {
		for _, l := range cfg.MemoryLevels {
			x := r.Peak / l.Peak
			xlo = math.Min(xlo, x)
			xhi = math.Max(xhi, x)
		}
	}
	for _, m := range cfg.Measurements {
		xlo = math.Min(xlo, m.Intensity())
		xhi = math.Max(xhi, m.Intensity())
	}
	if g.Log {
		g.XMin = math.Pow(10, math.Floor(math.Log10(xlo)))
		g.XMax = math.Pow(10, math.Ceil(math.Log10(xhi)))
		if g.XMin == g.XMax {
			g.XMin /= 10
			g.XMax *= 10
		}
		g.YMin = math.Pow(10, math.Floor(math.Log10(g.XMin*cfg.Primary().Peak)))
		g.YMax = math.Pow(10, math.Ceil(math.Log10(top.Peak)))
		if g.YMin >= g.YMax {
			g.YMin = g.YMax / 100
		}
	} else {
		g.XMin = 0
		g.XMax = 1.2 * xhi
		g.YMin = 0
		g.YMax = 1.2 * top.Peak
	}

	// Roofs run horizontally from their intersection with the
	// fastest diagonal out to the right edge.
	for _, r := range cfg.ComputeRoofs {
		g.Roofs = append(g.Roofs, Segment{
			Name: r.Name, Color: r.Color,
			X0: r.Peak / fastest.Peak, Y0: r.Peak,
			X1: g.XMax, Y1: r.Peak,
		})
	}

	// Diagonals rise from the left edge until they hit the top
	// roof. On linear axes the left edge is the origin.
	x0 := g.XMin
	for _, l := range cfg.MemoryLevels {
		g.Levels = append(g.Levels, Segment{
			Name: l.Name, Color: l.Color,
			X0: x0, Y0: x0 * l.Peak,
			X1: top.Peak / l.Peak, Y1: top.Peak,
		})
	}

	// Ridge points, clipped to the x range.
	for _, r := range cfg.ComputeRoofs {
		for _, l := range cfg.MemoryLevels {
			x := r.Peak / l.Peak
			if x < g.XMin || x > g.XMax {
				continue
			}
			g.Ridges = append(g.Ridges, RidgePoint{r.Name, l.Name, x, r.Peak})
		}
	}

	// Measurements, colored like their roofs.
	for _, m := range cfg.Measurements {
		var c color.Color
		if r, ok := cfg.Roof(m.Compute); ok {
			c = r.Color
		}
		g.Points = append(g.Points, DataPoint{m.Compute, m.Memory, c, m.Intensity(), m.Throughput})
	}

	return g
}
