// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roofspec

import "testing"

func TestParseColor(t *testing.T) {
	good := func(spec string, r, g, b uint8) {
		t.Helper()
		c, err := ParseColor(spec)
		if err != nil {
			t.Errorf("ParseColor(%q) failed: %v", spec, err)
			return
		}
		cr, cg, cb, ca := c.RGBA()
		wr, wg, wb := uint32(r), uint32(g), uint32(b)
		// RGBA returns 16-bit channels.
		if cr>>8 != wr || cg>>8 != wg || cb>>8 != wb || ca != 0xffff {
			t.Errorf("ParseColor(%q) = %v,%v,%v,%v, want %v,%v,%v", spec, cr>>8, cg>>8, cb>>8, ca, wr, wg, wb)
		}
	}
	bad := func(spec string) {
		t.Helper()
		if _, err := ParseColor(spec); err == nil {
			t.Errorf("ParseColor(%q) succeeded, want error", spec)
		}
	}

	good("#ff8000", 0xff, 0x80, 0x00)
	good("#abc", 0xaa, 0xbb, 0xcc)
	good("#ABC", 0xaa, 0xbb, 0xcc)
	good("steelblue", 0x46, 0x82, 0xb4)
	good("black", 0, 0, 0)

	bad("")
	bad("#12")         // wrong length
	bad("#12345")      // wrong length
	bad("#1234567")    // wrong length
	bad("#ggg")        // bad digits
	bad("steel blue")  // not alphanumeric
	bad("no-such")     // not alphanumeric
	bad("nosuchcolor") // not in the name table
}

func TestColorString(t *testing.T) {
	for _, spec := range []string{"#abc", "#aabbcc", "steelblue"} {
		c, err := ParseColor(spec)
		if err != nil {
			t.Fatal(err)
		}
		if c.String() != spec {
			t.Errorf("String() = %q, want %q", c.String(), spec)
		}
	}
}
