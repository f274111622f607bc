// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package roofunit formats and parses the throughput and bandwidth
// values that appear in roofline models.
//
// Values are carried in base units (ops/sec or bytes/sec) and scaled
// with SI prefixes for display, so 1404.9e9 renders as "1.405T" and
// the string "204.8G" parses back to 204.8e9.
package roofunit

import (
	"math"
	"strconv"
)

// A Scaler represents a scaling factor for a number and
// its scientific representation.
type Scaler struct {
	Prec   int     // Digits after the decimal point
	Factor float64 // Unscaled value of 1 Prefix (e.g., 1 k => 1000)
	Prefix string  // Unit prefix ("k", "M", "G", etc)
}

// Format formats val and appends the unit prefix according to the
// given scale. For example, Format(123456789) with the scaler chosen
// by ScalerFor returns "123.5M".
func (s Scaler) Format(val float64) string {
	buf := make([]byte, 0, 20)
	buf = strconv.AppendFloat(buf, val/s.Factor, 'f', s.Prec, 64)
	buf = append(buf, s.Prefix...)
	return string(buf)
}

// NoOpScaler is a Scaler that formats numbers with the smallest
// number of digits necessary to capture the exact value, and no
// prefix. This is intended for when the output will be consumed by
// another program, such as when producing CSV format.
var NoOpScaler = Scaler{-1, 1, ""}

type factor struct {
	factor float64
	prefix string
	// Thresholds for 100.0, 10.00, 1.000.
	t100, t10, t1 float64
}

var siFactors = mkSIFactors()

func mkSIFactors() []factor {
	// To ensure that the thresholds for printing values with
	// various factors exactly match how printing itself will
	// round, we construct the thresholds by parsing the printed
	// representation.
	var factors []factor
	exp := 12
	for _, p := range []string{"T", "G", "M", "k", "", "m", "µ", "n"} {
		t100, _ := strconv.ParseFloat("99.995e"+strconv.Itoa(exp), 64)
		t10, _ := strconv.ParseFloat("9.9995e"+strconv.Itoa(exp), 64)
		t1, _ := strconv.ParseFloat(".99995e"+strconv.Itoa(exp), 64)
		factors = append(factors, factor{math.Pow(10, float64(exp)), p, t100, t10, t1})
		exp -= 3
	}
	return factors
}

// Scale formats val using at least four significant digits,
// appending an SI prefix.
func Scale(val float64) string {
	return ScalerFor(val).Format(val)
}

// ScalerFor returns the Scaler that Scale would use to format val.
// Use it directly to apply one common scale to several related
// values.
func ScalerFor(val float64) Scaler {
	val = math.Abs(val)
	if val == 0 {
		return Scaler{3, 1, ""}
	}
	for _, factor := range siFactors {
		switch {
		case val >= factor.t100:
			return Scaler{1, factor.factor, factor.prefix}
		case val >= factor.t10:
			return Scaler{2, factor.factor, factor.prefix}
		case val >= factor.t1:
			return Scaler{3, factor.factor, factor.prefix}
		}
	}
	// Smaller than the smallest factor. Print it using the
	// smallest factor and enough precision to stay meaningful.
	last := siFactors[len(siFactors)-1]
	return Scaler{3, last.factor, last.prefix}
}

// Percent formats part as a percentage of whole with one digit after
// the decimal point, e.g. Percent(57.9, 100) returns "57.9%".
// If whole is zero it returns "-".
func Percent(part, whole float64) string {
	if whole == 0 {
		return "-"
	}
	return strconv.FormatFloat(part/whole*100, 'f', 1, 64) + "%"
}
