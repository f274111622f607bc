// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roofmodel

import "golang.org/x/roofline/roofspec"

// resolveMeasured computes the effective measured throughput for one
// compute type. Precedence, first match wins:
//
//  1. the type's own measured value;
//  2. the global combined value;
//  3. the first explicit group, in declaration order, that names
//     the type.
//
// An individual measurement is the most specific and is never
// overridden by a combined value. The global value deliberately
// outranks explicit groups; swapping 2 and 3 changes behavior
// whenever both are supplied for the same type, so the order here is
// load-bearing (and pinned by TestResolveGlobalBeforeGroup).
func resolveMeasured(name string, compute map[string]roofspec.TypeSpec, combined roofspec.Value, groups []roofspec.Group) (float64, bool) {
	if spec, ok := compute[name]; ok && spec.Measured.OK {
		return spec.Measured.V, true
	}
	if combined.OK {
		return combined.V, true
	}
	for _, g := range groups {
		for _, t := range g.Types {
			if t == name {
				return g.Measured, true
			}
		}
	}
	return 0, false
}
