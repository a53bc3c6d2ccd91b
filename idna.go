// Copyright 2026 The gopunycode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package idna converts internationalized domain names encoded in UTF-8
// into their ASCII-Compatible Encoding (ACE) form, per the IDNA/Punycode
// family of RFCs: RFC 3490 (IDNA), RFC 3491 (Nameprep), RFC 3454
// (Stringprep) and RFC 3492 (Punycode). Given "bücher.example" it produces
// "xn--bcher-kva.example".
//
// This implements the ToASCII direction of RFC 3490's older IDNA2003
// profile (Nameprep Tables B.1 and B.2 only), not the newer UTS #46
// semantics. See SPEC_FULL.md for the full scope and its Non-goals.
package idna

// ToASCII converts a UTF-8 encoded domain name to its ASCII-Compatible
// Encoding. Empty input yields empty output. The domain is split on '.',
// each label is run through Nameprep (B.1 deletion, B.2 mapping), and any
// label that still contains a non-ASCII code point afterward is rewritten
// as "xn--" followed by its Punycode encoding; labels that are all-ASCII
// after Nameprep are copied verbatim (which, since B.2 folds A-Z to
// lowercase, means they come out lowercased). The '.' delimiters are
// preserved at their original positions.
func ToASCII(domain []byte) ([]byte, error) {
	if len(domain) == 0 {
		return nil, nil
	}

	var counter byteCounter
	if err := runIDNA(&counter, domain); err != nil {
		return nil, err
	}

	sink := &byteSink{buf: make([]byte, 0, counter.n)}
	if err := runIDNA(sink, domain); err != nil {
		return nil, err
	}
	return sink.buf, nil
}

// ToASCIIString is the string-typed convenience wrapper around ToASCII.
func ToASCIIString(domain string) (string, error) {
	out, err := ToASCII([]byte(domain))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

type idnaSink interface {
	writeByte(b byte)
}

// runIDNA drives the label-boundary state machine described in the
// package design notes: pre-first-char, all-ASCII-so-far, and
// non-ASCII-seen, with '.' and end-of-input as the inter-label
// transitions. It is run twice by ToASCII — once against a byteCounter to
// size the output, once against a byteSink to fill it — and both passes
// must make identical decisions at every step, which is why the state
// machine lives in one place rather than being duplicated per sink type.
func runIDNA(out idnaSink, domain []byte) error {
	upstream := newCodePoints(domain)
	cursor := newNameprepCursor(upstream)

	first := cursor // snapshot of the cursor at the start of the current label
	it := cursor

	for {
		cp, ok := it.peek()
		if !ok {
			if it.err != nil {
				return it.err
			}
			return copyASCIILabel(out, &first, &it)
		}

		if cp == '.' {
			if err := copyASCIILabel(out, &first, &it); err != nil {
				return err
			}
			out.writeByte('.')
			it.advance()
			if _, ok := it.peek(); !ok {
				if it.err != nil {
					return it.err
				}
				return nil
			}
			first = it
			continue
		}

		if cp < 0x80 {
			it.advance()
			continue
		}

		// Non-ASCII code point seen: this label needs Punycode. Scan to
		// the end of the label before encoding it, so the basic-code-point
		// pass inside PunycodeEncode sees the whole label.
		for {
			it.advance()
			cp, ok = it.peek()
			if !ok {
				if it.err != nil {
					return it.err
				}
				if err := encodePunycodeLabel(out, &first, &it); err != nil {
					return err
				}
				return nil
			}
			if cp == '.' {
				if err := encodePunycodeLabel(out, &first, &it); err != nil {
					return err
				}
				out.writeByte('.')
				it.advance()
				if _, ok := it.peek(); !ok {
					if it.err != nil {
						return it.err
					}
					return nil
				}
				first = it
				break
			}
		}
	}
}

// copyASCIILabel writes the label spanning [first, it) verbatim; every
// code point in that range is guaranteed < 0x80 by the caller.
func copyASCIILabel(out idnaSink, first, it *nameprepCursor) error {
	cur := *first
	for {
		cp, ok := cur.peek()
		if !ok || samePosition(&cur, it) {
			return nil
		}
		out.writeByte(byte(cp))
		cur.advance()
	}
}

// encodePunycodeLabel writes "xn--" followed by the Punycode encoding of
// the label spanning [first, it).
func encodePunycodeLabel(out idnaSink, first, it *nameprepCursor) error {
	var cps []rune
	cur := *first
	for {
		cp, ok := cur.peek()
		if !ok || samePosition(&cur, it) {
			break
		}
		cps = append(cps, rune(cp))
		cur.advance()
	}

	var buf []byte
	buf = append(buf, acePrefix...)
	buf, err := PunycodeEncode(buf, cps)
	if err != nil {
		return err
	}
	for _, b := range buf {
		out.writeByte(b)
	}
	return nil
}

// samePosition reports whether two nameprep cursors refer to the same
// (upstream position, pending-buffer index), which is the cursor
// equality used to mark label boundaries.
func samePosition(a, b *nameprepCursor) bool {
	return a.pos == b.pos && a.i == b.i && a.n == b.n
}
