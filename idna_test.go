// Copyright 2026 The gopunycode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import "testing"

func TestToASCIIString(t *testing.T) {
	cases := []struct {
		name, in, want string
	}{
		{"bucher", "bücher.example", "xn--bcher-kva.example"},
		{"munchen", "münchen", "xn--mnchen-3ya"},
		{"japanese-labels", "例え.テスト", "xn--r8jz45g.xn--zckzah"},
		{"all-ascii", "example.com", "example.com"},
		{"case-fold", "ExAmPlE.CoM", "example.com"},
		{"sharp-s-compat", "faß.de", "fass.de"},
		{"empty", "", ""},
		{"single-dot", ".", "."},
		{"trailing-dot", "example.", "example."},
		{"leading-dot", ".example", ".example"},
		{"b1-only-label", "\u00ad.example", ".example"},
		{"mixed-labels", "www.bücher.example", "www.xn--bcher-kva.example"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ToASCIIString(c.in)
			if err != nil {
				t.Fatalf("ToASCIIString(%q): %v", c.in, err)
			}
			if got != c.want {
				t.Errorf("ToASCIIString(%q) = %q, want %q", c.in, got, c.want)
			}
		})
	}
}

func TestToASCIILabelBoundaryCount(t *testing.T) {
	in := "a.bücher.c.d"
	got, err := ToASCIIString(in)
	if err != nil {
		t.Fatal(err)
	}
	wantDots := 3
	dots := 0
	for _, r := range got {
		if r == '.' {
			dots++
		}
	}
	if dots != wantDots {
		t.Errorf("got %d dots in %q, want %d", dots, got, wantDots)
	}
}

func TestToASCIIInvalidUTF8(t *testing.T) {
	_, err := ToASCII([]byte{'a', 0xc3})
	if err == nil {
		t.Fatal("expected error for truncated utf-8 sequence")
	}
}

func TestToASCIITwoPassesAgree(t *testing.T) {
	// Exercise the counting pass and the filling pass directly to confirm
	// they make identical label-boundary decisions, which is the
	// correctness property the package design notes call out explicitly.
	domain := []byte("Straße.München.example")
	var counter byteCounter
	if err := runIDNA(&counter, domain); err != nil {
		t.Fatal(err)
	}
	sink := &byteSink{}
	if err := runIDNA(sink, domain); err != nil {
		t.Fatal(err)
	}
	if counter.n != len(sink.buf) {
		t.Errorf("counting pass produced %d, filling pass produced %d bytes", counter.n, len(sink.buf))
	}
}
