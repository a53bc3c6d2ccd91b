// Copyright 2026 The gopunycode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import "golang.org/x/text/transform"

// NewTransformer returns a transform.Transformer that rewrites UTF-8
// encoded domain names to their ASCII-Compatible Encoding, for use with
// transform.Reader or any other caller built around the transform
// package's streaming interface.
//
// ToASCII's two-pass size-then-write strategy needs the complete domain in
// hand before it can make its first label-boundary decision, so this
// Transformer buffers every byte it is given until atEOF and only then
// runs the conversion; it reports transform.ErrShortSrc until that point.
func NewTransformer() transform.Transformer {
	return &aceTransformer{}
}

type aceTransformer struct {
	buf []byte
}

func (t *aceTransformer) Reset() {
	t.buf = t.buf[:0]
}

func (t *aceTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	t.buf = append(t.buf, src...)
	nSrc = len(src)

	if !atEOF {
		return 0, nSrc, transform.ErrShortSrc
	}

	out, err := ToASCII(t.buf)
	if err != nil {
		return 0, nSrc, err
	}
	if len(out) > len(dst) {
		// The whole source is already buffered in t.buf; a retry with a
		// larger dst re-converts it without needing src again.
		return 0, nSrc, transform.ErrShortDst
	}
	n := copy(dst, out)
	t.buf = t.buf[:0]
	return n, nSrc, nil
}
