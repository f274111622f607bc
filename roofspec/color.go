// Copyright 2023 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package roofspec

import (
	"fmt"
	"image/color"
)

// A Color is a validated color specification: either a known color
// name or a "#"-prefixed 3- or 6-digit hex value. It implements
// image/color.Color.
type Color struct {
	spec string
	rgba color.RGBA
}

// ParseColor parses a color specification. "#abc" and "#aabbcc" are
// hex colors; anything else must be an alphanumeric name from the
// color name table.
func ParseColor(s string) (Color, error) {
	if s == "" {
		return Color{}, fmt.Errorf("empty color")
	}
	if s[0] == '#' {
		rgba, err := parseHex(s[1:])
		if err != nil {
			return Color{}, fmt.Errorf("bad hex color %q: %v", s, err)
		}
		return Color{s, rgba}, nil
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9') {
			return Color{}, fmt.Errorf("bad color name %q: must be alphanumeric", s)
		}
	}
	rgba, ok := colorNames[s]
	if !ok {
		return Color{}, fmt.Errorf("unknown color name %q", s)
	}
	return Color{s, rgba}, nil
}

func parseHex(s string) (color.RGBA, error) {
	if len(s) != 3 && len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("need 3 or 6 hex digits")
	}
	digit := func(c byte) (uint8, error) {
		switch {
		case '0' <= c && c <= '9':
			return c - '0', nil
		case 'a' <= c && c <= 'f':
			return c - 'a' + 10, nil
		case 'A' <= c && c <= 'F':
			return c - 'A' + 10, nil
		}
		return 0, fmt.Errorf("bad hex digit %q", c)
	}
	var v [6]uint8
	for i := 0; i < len(s); i++ {
		d, err := digit(s[i])
		if err != nil {
			return color.RGBA{}, err
		}
		v[i] = d
	}
	if len(s) == 3 {
		// Expand shorthand: #abc means #aabbcc.
		return color.RGBA{v[0]*16 + v[0], v[1]*16 + v[1], v[2]*16 + v[2], 0xff}, nil
	}
	return color.RGBA{v[0]*16 + v[1], v[2]*16 + v[3], v[4]*16 + v[5], 0xff}, nil
}

// String returns the specification c was parsed from.
func (c Color) String() string { return c.spec }

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) { return c.rgba.RGBA() }

// colorNames is the color name table: the sixteen basic HTML colors
// plus a handful of common plotting names.
var colorNames = map[string]color.RGBA{
	"black":     {0x00, 0x00, 0x00, 0xff},
	"silver":    {0xc0, 0xc0, 0xc0, 0xff},
	"gray":      {0x80, 0x80, 0x80, 0xff},
	"grey":      {0x80, 0x80, 0x80, 0xff},
	"white":     {0xff, 0xff, 0xff, 0xff},
	"maroon":    {0x80, 0x00, 0x00, 0xff},
	"red":       {0xff, 0x00, 0x00, 0xff},
	"purple":    {0x80, 0x00, 0x80, 0xff},
	"fuchsia":   {0xff, 0x00, 0xff, 0xff},
	"magenta":   {0xff, 0x00, 0xff, 0xff},
	"green":     {0x00, 0x80, 0x00, 0xff},
	"lime":      {0x00, 0xff, 0x00, 0xff},
	"olive":     {0x80, 0x80, 0x00, 0xff},
	"yellow":    {0xff, 0xff, 0x00, 0xff},
	"navy":      {0x00, 0x00, 0x80, 0xff},
	"blue":      {0x00, 0x00, 0xff, 0xff},
	"teal":      {0x00, 0x80, 0x80, 0xff},
	"aqua":      {0x00, 0xff, 0xff, 0xff},
	"cyan":      {0x00, 0xff, 0xff, 0xff},
	"orange":    {0xff, 0xa5, 0x00, 0xff},
	"brown":     {0xa5, 0x2a, 0x2a, 0xff},
	"pink":      {0xff, 0xc0, 0xcb, 0xff},
	"gold":      {0xff, 0xd7, 0x00, 0xff},
	"steelblue": {0x46, 0x82, 0xb4, 0xff},
	"tomato":    {0xff, 0x63, 0x47, 0xff},
	"violet":    {0xee, 0x82, 0xee, 0xff},
	"indigo":    {0x4b, 0x00, 0x82, 0xff},
	"crimson":   {0xdc, 0x14, 0x3c, 0xff},
}
