// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roofspec

import (
	"reflect"
	"testing"
)

func TestParseTypeSpec(t *testing.T) {
	test := func(s, wantName string, wantPeak float64, wantMeasured Value) {
		t.Helper()
		name, spec, err := ParseTypeSpec(s)
		if err != nil {
			t.Errorf("ParseTypeSpec(%q) failed: %v", s, err)
			return
		}
		if name != wantName || spec.Peak != Some(wantPeak) || spec.Measured != wantMeasured {
			t.Errorf("ParseTypeSpec(%q) = %s, %+v; want %s, peak %v, measured %+v", s, name, spec, wantName, wantPeak, wantMeasured)
		}
	}
	bad := func(s string) {
		t.Helper()
		if _, _, err := ParseTypeSpec(s); err == nil {
			t.Errorf("ParseTypeSpec(%q) succeeded, want error", s)
		}
	}

	test("DRAM=204.8:180.5", "DRAM", 204.8, Some(180.5))
	test("DP=1404.9", "DP", 1404.9, Value{})
	test("DRAM=204.8G:180.5G", "DRAM", 204.8e9, Some(180.5e9))
	test("SP=2.8T", "SP", 2.8e12, Value{})

	bad("DRAM")           // no value
	bad("=204.8")         // no name
	bad("DRAM=")          // empty value
	bad("DRAM=abc")       // malformed value
	bad("DRAM=-1:180.5")  // non-positive peak
	bad("DRAM=204.8:0")   // non-positive measured
	bad("DRAM=204.8:1:2") // too many fields
}

func TestParseGroup(t *testing.T) {
	g, err := ParseGroup("DP,SP=720")
	if err != nil {
		t.Fatal(err)
	}
	want := Group{Types: []string{"DP", "SP"}, Measured: 720}
	if !reflect.DeepEqual(g, want) {
		t.Errorf("got %+v, want %+v", g, want)
	}

	g, err = ParseGroup("DP, SP, TENSOR=720G")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(g.Types, []string{"DP", "SP", "TENSOR"}) || g.Measured != 720e9 {
		t.Errorf("got %+v", g)
	}

	for _, s := range []string{"DP=720", "DP,=720", "DP,SP", "DP,SP=-1", "=720"} {
		if _, err := ParseGroup(s); err == nil {
			t.Errorf("ParseGroup(%q) succeeded, want error", s)
		}
	}
}

func TestParseColors(t *testing.T) {
	colors, err := ParseColors("steelblue, #228b22,#ccc")
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) != 3 {
		t.Fatalf("got %d colors, want 3", len(colors))
	}
	if colors[0].String() != "steelblue" || colors[1].String() != "#228b22" {
		t.Errorf("got %v", colors)
	}

	if _, err := ParseColors("steelblue,bogus color"); err == nil {
		t.Error("bad list succeeded, want error")
	}
}

func TestParseFormat(t *testing.T) {
	for name, want := range formatNames {
		f, err := ParseFormat(name)
		if err != nil || f != want {
			t.Errorf("ParseFormat(%q) = %v, %v", name, f, err)
		}
	}
	if _, err := ParseFormat("latex"); err == nil {
		t.Error("ParseFormat(latex) succeeded, want error")
	}
}
