// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package roofspec defines the raw inputs to a roofline model: named
// peak/measured figures for compute units and memory levels, combined
// measurement groups, output options, and color specifications.
//
// It also provides the parsers for the flag value syntax used by the
// roofline command, so the command itself does no string surgery.
// This package performs no analysis; see package roofmodel for that.
package roofspec

import "fmt"

// A Value is an optional non-negative number. The zero Value is
// "absent", which is distinct from a present zero (a present zero is
// later rejected by validation, but the distinction keeps parsing
// honest).
type Value struct {
	V  float64
	OK bool
}

// Some returns a present Value.
func Some(v float64) Value { return Value{v, true} }

// A TypeSpec gives the peak and, optionally, the measured figure for
// one named compute unit or memory level. A TypeSpec without a peak
// never materializes in the model.
type TypeSpec struct {
	Peak     Value
	Measured Value
}

// A Group is an explicit combined-measurement group: one measured
// value attributed jointly to several compute types because the
// measuring instrument cannot separate their contributions.
type Group struct {
	Types    []string
	Measured float64
}

// Params carries all model inputs to roofmodel.Build. It is
// value-copied into the resulting configuration; Build never retains
// or mutates it.
type Params struct {
	// Memory and Compute map type names ("DRAM", "DP", ...) to
	// their specs. Names are arbitrary; nothing is hard-coded.
	Memory  map[string]TypeSpec
	Compute map[string]TypeSpec

	// Combined is a single measured value shared by every compute
	// type that lacks an individual measurement.
	Combined Value

	// Groups are explicit combined-measurement groups, in
	// declaration order.
	Groups []Group

	NumCores int
	Topology string
	CPUName  string
	AppName  string
}

// Options controls presentation-level choices made during the build.
type Options struct {
	// ForceSimple selects simple (linear, single-level) rendering
	// even when several memory levels exist.
	ForceSimple bool

	TableFormat Format

	// MemoryColors and ComputeColors override the default
	// palettes positionally; entries beyond their length fall
	// back to the defaults.
	MemoryColors  []Color
	ComputeColors []Color
}

// A Format identifies a performance table layout.
type Format int

const (
	FormatASCII Format = iota
	FormatMarkdown
	FormatOrg
	FormatCSV
	FormatHTML
)

var formatNames = map[string]Format{
	"ascii":    FormatASCII,
	"markdown": FormatMarkdown,
	"org":      FormatOrg,
	"csv":      FormatCSV,
	"html":     FormatHTML,
}

func (f Format) String() string {
	for name, f2 := range formatNames {
		if f == f2 {
			return name
		}
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat parses a table format name.
func ParseFormat(s string) (Format, error) {
	f, ok := formatNames[s]
	if !ok {
		return 0, fmt.Errorf("unknown table format %q", s)
	}
	return f, nil
}
