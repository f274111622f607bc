// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roofmodel

import "strings"

// A BoundKind classifies the dominant bottleneck of a configuration.
type BoundKind int

const (
	// NoMeasurements means the configuration has no data points
	// at all.
	NoMeasurements BoundKind = iota
	// Unknown means measurements exist but none fell strictly on
	// either side of a ridge point.
	Unknown
	// ComputeBound means at least one roof is limited by its own
	// peak throughput and none is limited by memory.
	ComputeBound
	// MemoryBound means at least one roof is limited by a memory
	// level's bandwidth.
	MemoryBound
)

// A Bottleneck is the result of classifying a configuration. It is
// always a value; classification has no failure mode, since missing
// data and boundary equality are legitimate analytical outcomes.
type Bottleneck struct {
	Kind BoundKind

	// Compute names the bound roofs in ascending-peak order. For
	// MemoryBound these are the roofs bound at Memory; for
	// ComputeBound, the compute-limited roofs.
	Compute []string

	// Memory names the binding level for MemoryBound.
	Memory string
}

// Classify determines the dominant bottleneck of cfg.
//
// Every measurement is compared against the ridge point of every roof
// it speaks for: the roof it names, plus any roof sharing a combined
// group with that roof (one combined measurement classifies all
// members). An arithmetic intensity below the ridge marks the roof
// memory-bound at the measurement's level, above marks it
// compute-bound, and exact equality marks neither.
//
// Memory levels take priority slowest-first: once a workload is bound
// at the slowest level, faster levels are moot, so the slowest level
// with any memory-bound roof is the one reported.
func Classify(cfg *Config) Bottleneck {
	if len(cfg.Measurements) == 0 {
		return Bottleneck{Kind: NoMeasurements}
	}

	memBound := make(map[string]map[string]bool) // level -> bound roofs
	compBound := make(map[string]bool)
	for _, m := range cfg.Measurements {
		level, ok := cfg.Level(m.Memory)
		if !ok {
			continue
		}
		ai := m.Intensity()
		for _, r := range cfg.roofsSharing(m.Compute) {
			ridge := r.Peak / level.Peak
			switch {
			case ai < ridge:
				set := memBound[level.Name]
				if set == nil {
					set = make(map[string]bool)
					memBound[level.Name] = set
				}
				set[r.Name] = true
			case ai > ridge:
				compBound[r.Name] = true
			}
			// ai == ridge sits exactly on the boundary and
			// records neither.
		}
	}

	// Slowest level first: the reverse of the canonical
	// descending-bandwidth order.
	for i := len(cfg.MemoryLevels) - 1; i >= 0; i-- {
		level := cfg.MemoryLevels[i]
		if set := memBound[level.Name]; len(set) > 0 {
			return Bottleneck{MemoryBound, canonicalRoofNames(cfg, set), level.Name}
		}
	}
	if len(compBound) > 0 {
		return Bottleneck{Kind: ComputeBound, Compute: canonicalRoofNames(cfg, compBound)}
	}
	return Bottleneck{Kind: Unknown}
}

// roofsSharing returns the roofs a measurement for the named compute
// type speaks for: the type's own roof plus every roof in a combined
// group with it.
func (c *Config) roofsSharing(name string) []ComputeRoof {
	var roofs []ComputeRoof
	for _, r := range c.ComputeRoofs {
		if r.Name == name || c.shareGroup(r.Name, name) {
			roofs = append(roofs, r)
		}
	}
	return roofs
}

func (c *Config) shareGroup(a, b string) bool {
	for _, g := range c.Groups {
		var hasA, hasB bool
		for _, t := range g.Types {
			hasA = hasA || t == a
			hasB = hasB || t == b
		}
		if hasA && hasB {
			return true
		}
	}
	return false
}

// canonicalRoofNames orders a set of roof names by the roofs'
// canonical (ascending peak) sort.
func canonicalRoofNames(cfg *Config, set map[string]bool) []string {
	var names []string
	for _, r := range cfg.ComputeRoofs {
		if set[r.Name] {
			names = append(names, r.Name)
		}
	}
	return names
}

func (b Bottleneck) String() string {
	switch b.Kind {
	case NoMeasurements:
		return "Unknown (no measurements)"
	case ComputeBound:
		return "Compute-bound"
	case MemoryBound:
		return "Memory-bound (" + strings.Join(b.Compute, "+") + "/" + b.Memory + ")"
	}
	return "Unknown"
}
