// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roofmodel

import (
	"fmt"
	"image/color"
	"sort"

	"golang.org/x/roofline/roofspec"
)

// Default palettes. Memory levels draw from cool tones and compute
// roofs from warm ones so the two families are distinguishable
// without user palettes. Assignment cycles, so any number of entities
// is fine.
var (
	defaultMemoryPalette = []color.Color{
		color.RGBA{0x46, 0x82, 0xb4, 0xff}, // steel blue
		color.RGBA{0x00, 0x80, 0x80, 0xff}, // teal
		color.RGBA{0x1e, 0x90, 0xff, 0xff}, // dodger blue
		color.RGBA{0x2e, 0x8b, 0x57, 0xff}, // sea green
		color.RGBA{0x93, 0x70, 0xdb, 0xff}, // medium purple
		color.RGBA{0x5f, 0x9e, 0xa0, 0xff}, // cadet blue
	}
	defaultComputePalette = []color.Color{
		color.RGBA{0xb2, 0x22, 0x22, 0xff}, // firebrick
		color.RGBA{0xff, 0x8c, 0x00, 0xff}, // dark orange
		color.RGBA{0xdc, 0x14, 0x3c, 0xff}, // crimson
		color.RGBA{0xda, 0xa5, 0x20, 0xff}, // goldenrod
		color.RGBA{0xd2, 0x69, 0x1e, 0xff}, // chocolate
		color.RGBA{0xc7, 0x15, 0x85, 0xff}, // medium violet red
	}
)

// Build converts raw specs into a resolved Configuration.
//
// Fatal problems (no compute or memory specs, no memory level with a
// measured bandwidth, non-positive values) return an error and no
// Config. Non-fatal problems are returned as warning strings along
// with a complete Config; a memory level with a peak but no measured
// bandwidth is dropped with a warning because an unpaired peak cannot
// anchor any measurement.
//
// Build is a pure function of its arguments: identical inputs produce
// element-wise identical Configs.
func Build(p roofspec.Params, o roofspec.Options) (*Config, []string, error) {
	if len(p.Memory) == 0 {
		return nil, nil, fmt.Errorf("no memory level specified")
	}
	if len(p.Compute) == 0 {
		return nil, nil, fmt.Errorf("no compute type specified")
	}
	if p.NumCores <= 0 {
		return nil, nil, fmt.Errorf("number of cores must be positive (have %d)", p.NumCores)
	}
	if err := checkSpecs("memory level", p.Memory); err != nil {
		return nil, nil, err
	}
	if err := checkSpecs("compute type", p.Compute); err != nil {
		return nil, nil, err
	}
	if p.Combined.OK && p.Combined.V <= 0 {
		return nil, nil, fmt.Errorf("combined measured value must be positive (have %v)", p.Combined.V)
	}
	for _, g := range p.Groups {
		if g.Measured <= 0 {
			return nil, nil, fmt.Errorf("combined group %v: measured value must be positive (have %v)", g.Types, g.Measured)
		}
	}

	var warnings []string

	// Materialize memory levels. A peak is required; a peak
	// without a measured bandwidth is unusable (nothing to pair
	// measurements with) and drops the level.
	var levels []MemoryLevel
	for _, name := range sortedNames(p.Memory) {
		spec := p.Memory[name]
		if !spec.Peak.OK {
			continue
		}
		if !spec.Measured.OK {
			warnings = append(warnings, fmt.Sprintf("memory level %s has a peak but no measured bandwidth; dropped", name))
			continue
		}
		levels = append(levels, MemoryLevel{Name: name, Peak: spec.Peak.V, Measured: spec.Measured.V})
	}
	if len(levels) == 0 {
		return nil, nil, fmt.Errorf("no valid memory level: every level needs both a peak and a measured bandwidth")
	}

	// Canonical level order: descending peak bandwidth, ties
	// ascending by name. The last level after this sort is the
	// primary (slowest) level.
	sort.Slice(levels, func(i, j int) bool {
		if levels[i].Peak != levels[j].Peak {
			return levels[i].Peak > levels[j].Peak
		}
		return levels[i].Name < levels[j].Name
	})
	for i := range levels {
		levels[i].Color = pickColor(i, o.MemoryColors, defaultMemoryPalette)
	}
	primary := levels[len(levels)-1]

	// Materialize compute roofs. Only a peak is required; a roof
	// without a resolvable measurement still appears in the plot.
	var roofs []ComputeRoof
	for _, name := range sortedNames(p.Compute) {
		spec := p.Compute[name]
		if !spec.Peak.OK {
			continue
		}
		roofs = append(roofs, ComputeRoof{Name: name, Peak: spec.Peak.V})
	}
	if len(roofs) == 0 {
		return nil, nil, fmt.Errorf("no valid compute type: every type needs a peak throughput")
	}

	// Canonical roof order: ascending peak throughput, ties
	// ascending by name.
	sort.Slice(roofs, func(i, j int) bool {
		if roofs[i].Peak != roofs[j].Peak {
			return roofs[i].Peak < roofs[j].Peak
		}
		return roofs[i].Name < roofs[j].Name
	})
	for i := range roofs {
		roofs[i].Color = pickColor(i, o.ComputeColors, defaultComputePalette)
	}

	// Resolve measured throughputs and pair them, primary level
	// first, then the remaining levels fastest-first. Resolution
	// may fail for any roof, so the measurement matrix is sparse.
	var measurements []Measurement
	for _, r := range roofs {
		if v, ok := resolveMeasured(r.Name, p.Compute, p.Combined, p.Groups); ok {
			measurements = append(measurements, Measurement{r.Name, primary.Name, v, primary.Measured})
		}
	}
	for _, l := range levels[:len(levels)-1] {
		for _, r := range roofs {
			if v, ok := resolveMeasured(r.Name, p.Compute, p.Combined, p.Groups); ok {
				measurements = append(measurements, Measurement{r.Name, l.Name, v, l.Measured})
			}
		}
	}

	// Explicit groups carry over verbatim. A global combined
	// value forms one implicit group of every roof lacking an
	// individual measurement, when at least two such roofs exist;
	// its member order is the roofs' canonical order.
	var groups []Group
	for _, g := range p.Groups {
		groups = append(groups, Group{Types: append([]string(nil), g.Types...), Measured: g.Measured})
	}
	if p.Combined.OK {
		var implicit []string
		for _, r := range roofs {
			if !p.Compute[r.Name].Measured.OK {
				implicit = append(implicit, r.Name)
			}
		}
		if len(implicit) >= 2 {
			groups = append(groups, Group{Types: implicit, Measured: p.Combined.V})
		}
	}

	cfg := &Config{
		ComputeRoofs: roofs,
		MemoryLevels: levels,
		Measurements: measurements,
		Groups:       groups,
		NumCores:     p.NumCores,
		Topology:     p.Topology,
		CPUName:      p.CPUName,
		AppName:      p.AppName,
		Simple:       o.ForceSimple || len(levels) == 1,
		TableFormat:  o.TableFormat,
	}
	return cfg, warnings, nil
}

// checkSpecs rejects non-positive peak or measured values.
func checkSpecs(kind string, specs map[string]roofspec.TypeSpec) error {
	for _, name := range sortedNames(specs) {
		spec := specs[name]
		if spec.Peak.OK && spec.Peak.V <= 0 {
			return fmt.Errorf("%s %s: peak must be positive (have %v)", kind, name, spec.Peak.V)
		}
		if spec.Measured.OK && spec.Measured.V <= 0 {
			return fmt.Errorf("%s %s: measured value must be positive (have %v)", kind, name, spec.Measured.V)
		}
	}
	return nil
}

// sortedNames returns the map's keys in ascending order so builds
// and their warnings are deterministic.
func sortedNames(m map[string]roofspec.TypeSpec) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// pickColor returns the color for the entity at position i of its
// canonical sort: the user palette when it reaches that far,
// otherwise the default palette, cycling.
func pickColor(i int, user []roofspec.Color, def []color.Color) color.Color {
	if i < len(user) {
		return user[i]
	}
	return def[i%len(def)]
}
