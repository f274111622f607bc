// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rooftab

import (
	"encoding/csv"
	"math"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/roofline/roofmodel"
	"golang.org/x/roofline/roofspec"
)

// testConfig builds the combined-measurement example: DP and SP share
// a global combined value of 720 against a single DRAM level.
func testConfig(t *testing.T) *roofmodel.Config {
	t.Helper()
	p := roofspec.Params{
		Memory: map[string]roofspec.TypeSpec{
			"DRAM": {Peak: roofspec.Some(204.8), Measured: roofspec.Some(180.5)},
		},
		Compute: map[string]roofspec.TypeSpec{
			"DP": {Peak: roofspec.Some(1404.9)},
			"SP": {Peak: roofspec.Some(2809.0)},
		},
		Combined: roofspec.Some(720.0),
		NumCores: 64,
		Topology: "Dual Socket",
		CPUName:  "AMD EPYC 7713",
		AppName:  "STREAM",
	}
	cfg, _, err := roofmodel.Build(p, roofspec.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func write(t *testing.T, cfg *roofmodel.Config, format roofspec.Format) string {
	t.Helper()
	var sb strings.Builder
	if err := Write(&sb, cfg, format); err != nil {
		t.Fatal(err)
	}
	return sb.String()
}

func TestWriteASCII(t *testing.T) {
	got := write(t, testConfig(t), roofspec.FormatASCII)
	want := `Roofline analysis: STREAM
CPU: AMD EPYC 7713 (64 cores, Dual Socket)

unit  kind       peak  measured  % of peak
----  -------  ------  --------  ---------
DP    compute  1.405k    720.0*      51.2%
SP    compute  2.809k    720.0*      25.6%
DRAM  memory    204.8     180.5      88.1%

compute  memory  throughput  bandwidth  intensity
-------  ------  ----------  ---------  ---------
DP       DRAM         720.0      180.5      3.989
SP       DRAM         720.0      180.5      3.989

Bottleneck: Memory-bound (DP+SP/DRAM)
* combined measurement shared by DP+SP
`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteMarkdown(t *testing.T) {
	got := write(t, testConfig(t), roofspec.FormatMarkdown)
	want := `Roofline analysis: STREAM
CPU: AMD EPYC 7713 (64 cores, Dual Socket)

| unit | kind    |   peak | measured | % of peak |
|------|---------|--------|----------|-----------|
| DP   | compute | 1.405k |   720.0* |     51.2% |
| SP   | compute | 2.809k |   720.0* |     25.6% |
| DRAM | memory  |  204.8 |    180.5 |     88.1% |

| compute | memory | throughput | bandwidth | intensity |
|---------|--------|------------|-----------|-----------|
| DP      | DRAM   |      720.0 |     180.5 |     3.989 |
| SP      | DRAM   |      720.0 |     180.5 |     3.989 |

Bottleneck: Memory-bound (DP+SP/DRAM)
* combined measurement shared by DP+SP
`
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestWriteOrg(t *testing.T) {
	got := write(t, testConfig(t), roofspec.FormatOrg)
	if !strings.Contains(got, "|------|---------|--------|----------|-----------|") {
		// Org differs from Markdown only in rule joints.
		t.Errorf("missing org rule row in:\n%s", got)
	}
	if !strings.Contains(got, "| DP   | compute |") {
		t.Errorf("missing DP row in:\n%s", got)
	}
}

func TestWriteCSV(t *testing.T) {
	got := write(t, testConfig(t), roofspec.FormatCSV)
	records, err := csv.NewReader(strings.NewReader(got)).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v\n%s", err, got)
	}

	find := func(first string) []string {
		t.Helper()
		for _, rec := range records {
			if len(rec) > 0 && rec[0] == first {
				return rec
			}
		}
		t.Fatalf("no row starting with %q in:\n%s", first, got)
		return nil
	}

	if rec := find("STREAM"); rec[1] != "AMD EPYC 7713" || rec[2] != "64" {
		t.Errorf("header row = %v", rec)
	}
	// CSV carries exact values, no scaling and no markers.
	if rec := find("DP"); rec[2] != "1404.9" || rec[3] != "720" || rec[4] != "51.2%" {
		t.Errorf("DP row = %v", rec)
	}
	if rec := find("DRAM"); rec[1] != "memory" || rec[2] != "204.8" || rec[3] != "180.5" {
		t.Errorf("DRAM row = %v", rec)
	}
	if rec := find("bottleneck"); rec[1] != "Memory-bound (DP+SP/DRAM)" {
		t.Errorf("bottleneck row = %v", rec)
	}

	// The measurement rows carry full-precision intensities.
	var sawIntensity bool
	for _, rec := range records {
		if len(rec) == 5 && rec[0] == "DP" && rec[1] == "DRAM" {
			ai, err := strconv.ParseFloat(rec[4], 64)
			if err != nil || math.Abs(ai-720.0/180.5) > 1e-12 {
				t.Errorf("DP intensity = %q, want %v", rec[4], 720.0/180.5)
			}
			sawIntensity = true
		}
	}
	if !sawIntensity {
		t.Errorf("no DP measurement row in:\n%s", got)
	}
}

func TestWriteHTML(t *testing.T) {
	got := write(t, testConfig(t), roofspec.FormatHTML)
	for _, want := range []string{
		"<b>STREAM</b>",
		"<td>DP<td>compute<td>1.405k<td>720.0*<td>51.2%",
		"<td>DRAM<td>memory<td>204.8<td>180.5<td>88.1%",
		"Bottleneck: Memory-bound (DP+SP/DRAM)",
		"combined measurement shared by DP+SP",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}
