// Copyright 2026 The gopunycode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

// cpInvalid is the 0xffffffff "exhausted" sentinel value. It never appears
// as a decoded code point. The cursors in this package do not use it: they
// report exhaustion through their ok result instead.
const cpInvalid uint32 = 0xffffffff

// codePoints is a forward cursor over UTF-8 encoded bytes that yields
// Unicode code points one at a time.
//
// Decoding is deliberately permissive: it validates the leading-byte
// pattern and the presence of enough trailing bytes, but does not check
// that continuation bytes carry the 10xxxxxx marker, that the encoding is
// not overlong, or that the resulting scalar value is not a surrogate or
// out of the Unicode range. Every well-formed UTF-8 string is accepted;
// some malformed ones are too. Tightening this is a matter for a future
// revision, not this port.
type codePoints struct {
	s   []byte
	pos int
}

func newCodePoints(s []byte) codePoints {
	return codePoints{s: s}
}

// next decodes the code point starting at the cursor and advances past it.
// ok is false once the input is exhausted.
func (c *codePoints) next() (cp uint32, ok bool, err error) {
	if c.pos >= len(c.s) {
		return 0, false, nil
	}
	start := c.pos
	u := c.s[c.pos]
	switch {
	case u < 0x80:
		c.pos++
		return uint32(u), true, nil

	case u>>5 == 0x06:
		if len(c.s)-c.pos < 2 {
			return 0, false, errorAt(InvalidArgument, start, "truncated 2-byte utf-8 sequence")
		}
		cp = (uint32(u&0x1f) << 6) | uint32(c.s[c.pos+1]&0x3f)
		c.pos += 2
		return cp, true, nil

	case u>>4 == 0x0e:
		if len(c.s)-c.pos < 3 {
			return 0, false, errorAt(InvalidArgument, start, "truncated 3-byte utf-8 sequence")
		}
		cp = (uint32(u&0x0f) << 12) |
			(uint32(c.s[c.pos+1]&0x3f) << 6) |
			uint32(c.s[c.pos+2]&0x3f)
		c.pos += 3
		return cp, true, nil

	case u>>3 == 0x1e:
		if len(c.s)-c.pos < 4 {
			return 0, false, errorAt(InvalidArgument, start, "truncated 4-byte utf-8 sequence")
		}
		cp = (uint32(u&0x07) << 18) |
			(uint32(c.s[c.pos+1]&0x3f) << 12) |
			(uint32(c.s[c.pos+2]&0x3f) << 6) |
			uint32(c.s[c.pos+3]&0x3f)
		c.pos += 4
		return cp, true, nil

	default:
		return 0, false, errorAt(InvalidArgument, start, "invalid utf-8 leading byte")
	}
}

// utf8Len reports how many bytes cp occupies when encoded as UTF-8.
func utf8Len(cp uint32) int {
	switch {
	case cp < 0x80:
		return 1
	case cp < 0x800:
		return 2
	case cp < 0x10000:
		return 3
	default:
		return 4
	}
}

// appendUTF8 encodes cp and appends it to dst, returning the extended slice.
func appendUTF8(dst []byte, cp uint32) []byte {
	switch {
	case cp < 0x80:
		return append(dst, byte(cp))
	case cp < 0x800:
		return append(dst,
			byte(cp>>6)|0xc0,
			byte(cp&0x3f)|0x80,
		)
	case cp < 0x10000:
		return append(dst,
			byte(cp>>12)|0xe0,
			byte((cp>>6)&0x3f)|0x80,
			byte(cp&0x3f)|0x80,
		)
	default:
		return append(dst,
			byte(cp>>18)|0xf0,
			byte((cp>>12)&0x3f)|0x80,
			byte((cp>>6)&0x3f)|0x80,
			byte(cp&0x3f)|0x80,
		)
	}
}

// byteCounter is a write-only sink that discards ASCII bytes but counts
// them. It is used for the size-probe pass of the two-pass size-then-write
// strategy described in the package's design notes.
type byteCounter struct {
	n int
}

func (c *byteCounter) writeByte(byte) { c.n++ }

// byteSink accumulates the bytes written to it, growing as needed. Unlike
// byteCounter it is meant for the fill pass once the exact size is known,
// so callers typically pre-allocate its backing array with byteCounter's
// final count.
type byteSink struct {
	buf []byte
}

func (s *byteSink) writeByte(b byte) { s.buf = append(s.buf, b) }
