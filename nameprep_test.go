// Copyright 2026 The gopunycode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import "testing"

func drain(s string) []uint32 {
	c := newNameprepCursor(newCodePoints([]byte(s)))
	var out []uint32
	for {
		cp, ok := c.peek()
		if !ok {
			return out
		}
		out = append(out, cp)
		c.advance()
	}
}

func TestNameprepDeletesB1(t *testing.T) {
	got := drain("a­b​c")
	want := []uint32{'a', 'b', 'c'}
	if !equalU32(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNameprepFoldsASCIICase(t *testing.T) {
	got := drain("AbC")
	want := []uint32{'a', 'b', 'c'}
	if !equalU32(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNameprepExpandsSharpS(t *testing.T) {
	got := drain("faß")
	want := []uint32{'f', 'a', 's', 's'}
	if !equalU32(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestNameprepLeavesUnmappedCodePoints(t *testing.T) {
	got := drain("bücher")
	want := []uint32{'b', 0x00FC, 'c', 'h', 'e', 'r'}
	if !equalU32(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func equalU32(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
