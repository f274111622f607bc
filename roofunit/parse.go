// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roofunit

import (
	"math"
	"strconv"
	"strings"
)

const siPrefixes = "kMGTPE"

// ParseValue parses a number with an optional SI suffix, such as
// "204.8G" or "1.4T" or a plain "720". Lower-case "k" and upper-case
// "K" are both accepted. It does not accept units or binary (IEC)
// suffixes, and it does not check sign; callers that need positive
// values enforce that themselves.
func ParseValue(s string) (float64, error) {
	// Try parsing as a regular float first.
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}

	if len(s) < 2 {
		return 0, strconv.ErrSyntax
	}
	pre := s[len(s)-1]
	if pre == 'K' {
		pre = 'k'
	}
	exp := strings.IndexByte(siPrefixes, pre)
	if exp < 0 {
		return 0, strconv.ErrSyntax
	}
	v, err := strconv.ParseFloat(s[:len(s)-1], 64)
	if err != nil {
		return 0, strconv.ErrSyntax
	}
	return v * math.Pow(1000, float64(exp+1)), nil
}
