// Copyright 2026 The gopunycode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import (
	"testing"
)

func TestPunycodeEncodeVectors(t *testing.T) {
	cases := []struct {
		name string
		cps  []rune
		want string
	}{
		{"chinese", []rune{0x4E2D, 0x6587}, "fiq228c"},
		{"bucher", []rune("bücher"), "bcher-kva"},
		{"munchen", []rune("münchen"), "mnchen-3ya"},
		{"japanese-kanji", []rune("例え"), "r8jz45g"},
		{"japanese-katakana", []rune("テスト"), "zckzah"},
		{"all-ascii", []rune("example"), "example"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := PunycodeEncode(nil, c.cps)
			if err != nil {
				t.Fatalf("PunycodeEncode: %v", err)
			}
			if string(got) != c.want {
				t.Errorf("PunycodeEncode(%q) = %q, want %q", c.cps, got, c.want)
			}
		})
	}
}

func TestPunycodeEncodeAllASCIINoDelimiter(t *testing.T) {
	got, err := PunycodeEncode(nil, []rune("golang"))
	if err != nil {
		t.Fatalf("PunycodeEncode: %v", err)
	}
	if string(got) != "golang" {
		t.Errorf("got %q, want %q with no '-' delimiter", got, "golang")
	}
}

func TestPunycodeRoundTrip(t *testing.T) {
	cases := [][]rune{
		{0x4E2D, 0x6587},
		[]rune("bücher"),
		[]rune("münchen"),
		[]rune("aübé"),
	}
	for _, cps := range cases {
		enc, err := PunycodeEncode(nil, cps)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		dec, err := Decode(enc)
		if err != nil {
			t.Fatalf("decode %q: %v", enc, err)
		}
		if string(dec) != string(cps) {
			t.Errorf("round trip: got %q, want %q (via %q)", dec, cps, enc)
		}
	}
}

func TestPunycodeDecodeInvalidHighBit(t *testing.T) {
	_, err := Decode([]byte{0x80, 'a'})
	if err == nil {
		t.Fatal("expected error")
	}
	var idnaErr *Error
	if !asError(err, &idnaErr) || idnaErr.Kind != InvalidArgument {
		t.Fatalf("got %v, want InvalidArgument", err)
	}
}

func TestPunycodeDecodeCapacityTruncates(t *testing.T) {
	enc, err := PunycodeEncode(nil, []rune("bücher"))
	if err != nil {
		t.Fatal(err)
	}
	dst := make([]rune, 3)
	n, err := PunycodeDecode(dst, enc)
	if n != len(dst) {
		t.Errorf("n = %d, want %d", n, len(dst))
	}
	if err == nil {
		t.Fatal("expected LengthError")
	}
	var idnaErr *Error
	if !asError(err, &idnaErr) || idnaErr.Kind != LengthError {
		t.Fatalf("got %v, want LengthError", err)
	}
}

func TestDecodeDigitCaseInsensitive(t *testing.T) {
	lower, ok := decodeDigit('a')
	if !ok || lower != 0 {
		t.Fatalf("decodeDigit('a') = %d, %v", lower, ok)
	}
	upper, ok := decodeDigit('A')
	if !ok || upper != 0 {
		t.Fatalf("decodeDigit('A') = %d, %v", upper, ok)
	}
	if _, ok := decodeDigit('-'); ok {
		t.Fatal("decodeDigit('-') should not be a valid digit")
	}
}

func TestAdaptMonotoneInDelta(t *testing.T) {
	prev := adapt(0, 2, true)
	for d := uint64(1); d < 5000; d += 37 {
		cur := adapt(d, 2, true)
		if cur < prev {
			t.Fatalf("adapt(%d, ...) = %d < adapt(%d, ...) = %d", d, cur, d-37, prev)
		}
		prev = cur
	}
}

// asError is a small helper so tests can assert on the concrete *Error
// type without importing the errors package purely for errors.As.
func asError(err error, target **Error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	*target = e
	return true
}
