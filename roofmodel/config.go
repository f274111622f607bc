// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package roofmodel builds and analyzes roofline performance models.
//
// Build normalizes loosely-structured user specs (package roofspec)
// into an immutable Configuration: compute roofs sorted ascending by
// peak throughput, memory levels sorted descending by peak bandwidth,
// and one measurement per (roof, level) pair wherever a measured
// throughput could be resolved. Classify then determines whether the
// measured workload is memory- or compute-bound.
//
// A configuration is a pure value: Build copies everything out of its
// arguments, and nothing here performs I/O or retains shared state,
// so concurrent builds and classifications are safe.
package roofmodel

import (
	"image/color"

	"golang.org/x/roofline/roofspec"
)

// A ComputeRoof is one horizontal performance ceiling: a named
// compute unit and its peak throughput in ops/sec.
type ComputeRoof struct {
	Name  string
	Peak  float64
	Color color.Color
}

// A MemoryLevel is one diagonal bandwidth ceiling: a named memory
// level with its peak and measured bandwidth in bytes/sec. Levels
// without a measured bandwidth are never materialized, so Measured is
// always set.
type MemoryLevel struct {
	Name     string
	Peak     float64
	Measured float64
	Color    color.Color
}

// A Measurement is a single observed data point: a measured
// throughput for one compute unit against the measured bandwidth of
// one memory level.
type Measurement struct {
	Compute    string
	Memory     string
	Throughput float64 // ops/sec
	Bandwidth  float64 // bytes/sec
}

// Intensity returns the arithmetic intensity of m in ops/byte.
// It is always derived, never stored.
func (m Measurement) Intensity() float64 {
	return m.Throughput / m.Bandwidth
}

// A Group is a resolved combined-measurement group: an ordered set of
// compute type names sharing one measured value because the measuring
// instrument could not separate their contributions.
type Group struct {
	Types    []string
	Measured float64
}

// Config is a fully resolved roofline configuration. It is immutable
// after Build and safe for concurrent use.
type Config struct {
	// ComputeRoofs is sorted ascending by Peak, ties broken
	// ascending by name.
	ComputeRoofs []ComputeRoof

	// MemoryLevels is sorted descending by Peak, ties broken
	// ascending by name. The last level is the primary (slowest)
	// level.
	MemoryLevels []MemoryLevel

	// Measurements holds at most one entry per (roof, level)
	// pair; roofs whose measured throughput could not be resolved
	// contribute none.
	Measurements []Measurement

	// Groups holds the explicit combined groups in declaration
	// order, followed by the implicit group formed by a global
	// combined value, if any.
	Groups []Group

	NumCores int
	Topology string
	CPUName  string
	AppName  string

	// Simple selects linear single-level rendering. It is set iff
	// the user forced it or exactly one memory level exists.
	Simple bool

	TableFormat roofspec.Format
}

// Roof returns the compute roof with the given name.
func (c *Config) Roof(name string) (ComputeRoof, bool) {
	for _, r := range c.ComputeRoofs {
		if r.Name == name {
			return r, true
		}
	}
	return ComputeRoof{}, false
}

// Level returns the memory level with the given name.
func (c *Config) Level(name string) (MemoryLevel, bool) {
	for _, l := range c.MemoryLevels {
		if l.Name == name {
			return l, true
		}
	}
	return MemoryLevel{}, false
}

// Primary returns the primary (slowest) memory level: the default
// pairing partner for each roof's first measurement.
func (c *Config) Primary() MemoryLevel {
	return c.MemoryLevels[len(c.MemoryLevels)-1]
}

// Fastest returns the fastest memory level.
func (c *Config) Fastest() MemoryLevel {
	return c.MemoryLevels[0]
}

// TopRoof returns the roof with the highest peak throughput.
func (c *Config) TopRoof() ComputeRoof {
	return c.ComputeRoofs[len(c.ComputeRoofs)-1]
}

// MeasuredThroughput returns the resolved measured throughput of the
// named roof, or false if no measurement was resolved for it.
func (c *Config) MeasuredThroughput(name string) (float64, bool) {
	for _, m := range c.Measurements {
		if m.Compute == name {
			return m.Throughput, true
		}
	}
	return 0, false
}

// GroupFor returns the combined group containing the named compute
// type, if any.
func (c *Config) GroupFor(name string) (Group, bool) {
	for _, g := range c.Groups {
		for _, t := range g.Types {
			if t == name {
				return g, true
			}
		}
	}
	return Group{}, false
}
