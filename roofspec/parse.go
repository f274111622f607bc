// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roofspec

import (
	"fmt"
	"strings"

	"golang.org/x/roofline/roofunit"
)

// ParseTypeSpec parses a "NAME=PEAK[:MEASURED]" flag value, as in
// "DRAM=204.8G:180.5G" or "SP=2.8T". Values accept SI suffixes (see
// roofunit.ParseValue) and must be positive.
func ParseTypeSpec(s string) (name string, spec TypeSpec, err error) {
	name, val, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return "", TypeSpec{}, fmt.Errorf("bad type spec %q: want NAME=PEAK[:MEASURED]", s)
	}
	peakStr, measStr, hasMeas := strings.Cut(val, ":")
	peak, err := parsePositive(peakStr)
	if err != nil {
		return "", TypeSpec{}, fmt.Errorf("bad peak for %s: %v", name, err)
	}
	spec.Peak = Some(peak)
	if hasMeas {
		meas, err := parsePositive(measStr)
		if err != nil {
			return "", TypeSpec{}, fmt.Errorf("bad measured value for %s: %v", name, err)
		}
		spec.Measured = Some(meas)
	}
	return name, spec, nil
}

// ParseGroup parses an "A,B,...=MEASURED" combined-group flag value,
// as in "DP,SP=720G".
func ParseGroup(s string) (Group, error) {
	names, val, ok := strings.Cut(s, "=")
	if !ok {
		return Group{}, fmt.Errorf("bad group %q: want A,B,...=MEASURED", s)
	}
	var g Group
	for _, name := range strings.Split(names, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			return Group{}, fmt.Errorf("bad group %q: empty type name", s)
		}
		g.Types = append(g.Types, name)
	}
	if len(g.Types) < 2 {
		return Group{}, fmt.Errorf("bad group %q: need at least two types", s)
	}
	meas, err := parsePositive(val)
	if err != nil {
		return Group{}, fmt.Errorf("bad group measured value: %v", err)
	}
	g.Measured = meas
	return g, nil
}

// ParseColors parses a comma-separated color list, as in
// "steelblue,#228b22,#ccc".
func ParseColors(s string) ([]Color, error) {
	var colors []Color
	for _, spec := range strings.Split(s, ",") {
		c, err := ParseColor(strings.TrimSpace(spec))
		if err != nil {
			return nil, err
		}
		colors = append(colors, c)
	}
	return colors, nil
}

func parsePositive(s string) (float64, error) {
	v, err := roofunit.ParseValue(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("malformed value %q", s)
	}
	if v <= 0 {
		return 0, fmt.Errorf("value %q must be positive", s)
	}
	return v, nil
}
