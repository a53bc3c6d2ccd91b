// Copyright 2026 The gopunycode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

// nameprepCursor is a forward cursor over code points that applies RFC 3491
// Nameprep (B.1 deletion followed by B.2 mapping) to an upstream code point
// stream. Each upstream code point expands to 0..4 output code points, so
// the cursor keeps a small inline buffer of pending outputs and drains it
// before pulling from upstream again.
//
// Only RFC 3454 Tables B.1 and B.2 are applied here. NFKC normalization and
// the prohibited-character/bidi checks of Tables B.3, C.* and D.* are a
// documented future extension; see SPEC_FULL.md.
//
// nameprepCursor holds its upstream codePoints cursor by value, not by
// pointer: taking *nameprepCursor and dereferencing it (c2 := *c1) must
// produce an independent snapshot that can be advanced without disturbing
// c1, the same way the reference implementation's nameprep_iterator copies
// a plain InputIt by value. This is what lets the IDNA driver keep two
// live cursors (the start of the current label and the lookahead cursor)
// over one pass.
type nameprepCursor struct {
	upstream codePoints
	pending  [4]uint32
	i        int // index of the next pending code point to emit
	n        int // number of valid entries in pending
	pos      int // byte offset in the upstream input the cursor is currently at
	err      error
}

func newNameprepCursor(upstream codePoints) nameprepCursor {
	c := nameprepCursor{upstream: upstream}
	c.fill()
	return c
}

// fill pulls upstream code points until it finds one that survives B.1
// deletion, then expands it through B.2 into the pending buffer.
func (c *nameprepCursor) fill() {
	buf := c.pending[:0]
	for {
		c.pos = c.upstream.pos
		cp, ok, err := c.upstream.next()
		if err != nil {
			c.err = err
			c.n, c.i = 0, 0
			return
		}
		if !ok {
			c.n, c.i = 0, 0
			return
		}
		if mapToNothing(cp) {
			continue
		}
		buf = mapB2(buf, cp)
		break
	}
	c.n = len(buf)
	c.i = 0
}

// peek returns the code point the cursor is currently positioned at,
// without advancing. ok is false once the stream is exhausted.
func (c *nameprepCursor) peek() (cp uint32, ok bool) {
	if c.i >= c.n {
		return 0, false
	}
	return c.pending[c.i], true
}

// advance moves the cursor to the next output code point.
func (c *nameprepCursor) advance() {
	c.i++
	if c.i >= c.n {
		c.fill()
	}
}
