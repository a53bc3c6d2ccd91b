// Copyright 2026 The gopunycode Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package idna

import "unicode"

// mapToNothing reports whether cp is a member of RFC 3454 Table B.1, the
// "commonly mapped to nothing" code points that Nameprep deletes outright.
//
// https://datatracker.ietf.org/doc/html/rfc3454#appendix-B.1
func mapToNothing(cp uint32) bool {
	switch cp {
	case 0x00AD, 0x034F, 0x1806,
		0x180B, 0x180C, 0x180D,
		0x200B, 0x200C, 0x200D,
		0x2060,
		0xFEFF:
		return true
	}
	if cp >= 0xFE00 && cp <= 0xFE0F {
		return true
	}
	return false
}

// b2Expansion holds the compatibility case-fold entries of RFC 3454 Table
// B.2 that expand one input code point into more than one output code
// point. These are exactly the entries that a generic Unicode case-folding
// pass cannot reproduce, so they are kept as an explicit table; everything
// that folds 1-to-1 is handled by b2SingleOverrides or the algorithmic
// fallback in mapB2.
var b2Expansion = map[uint32][]uint32{
	// LATIN SMALL LETTER SHARP S -> "ss"
	0x00DF: {0x0073, 0x0073},
	// LATIN CAPITAL LETTER I WITH DOT ABOVE -> "i" + COMBINING DOT ABOVE
	0x0130: {0x0069, 0x0307},
	// GREEK BETA SYMBOL is handled by b2SingleOverrides; the ligatures
	// below are true 1-to-N compatibility decompositions.
	0xFB00: {0x0066, 0x0066},         // LATIN SMALL LIGATURE FF
	0xFB01: {0x0066, 0x0069},         // LATIN SMALL LIGATURE FI
	0xFB02: {0x0066, 0x006C},         // LATIN SMALL LIGATURE FL
	0xFB03: {0x0066, 0x0066, 0x0069}, // LATIN SMALL LIGATURE FFI
	0xFB04: {0x0066, 0x0066, 0x006C}, // LATIN SMALL LIGATURE FFL
	0xFB05: {0x0073, 0x0074},         // LATIN SMALL LIGATURE LONG S T
	0xFB06: {0x0073, 0x0074},         // LATIN SMALL LIGATURE ST
	// ARMENIAN SMALL LIGATURE MEN NOW / MEN ECH / MEN INI / VEW NOW / MEN XEH
	0xFB13: {0x0574, 0x0576},
	0xFB14: {0x0574, 0x0565},
	0xFB15: {0x0574, 0x056B},
	0xFB16: {0x057E, 0x0576},
	0xFB17: {0x0574, 0x056D},
}

// b2SingleOverrides holds RFC 3454 Table B.2 entries that map one code
// point to exactly one different code point. Some of them are not the
// Unicode simple lowercase of the input (final sigma, the Greek symbol
// forms, the micro sign, long s, the combining ypogegrammeni); the rest,
// such as the Greek capitals and the Ohm, Kelvin and Angstrom signs, give
// the same result unicode.ToLower would. mapB2 checks this table before
// falling back to unicode.ToLower.
var b2SingleOverrides = map[uint32]uint32{
	0x0178: 0x00FF, // LATIN CAPITAL LETTER Y WITH DIAERESIS -> ÿ
	0x0345: 0x03B9, // COMBINING GREEK YPOGEGRAMMENI -> ι
	0x0392: 0x03B2, // GREEK CAPITAL LETTER BETA -> β
	0x0395: 0x03B5, // GREEK CAPITAL LETTER EPSILON -> ε
	0x0398: 0x03B8, // GREEK CAPITAL LETTER THETA -> θ
	0x0399: 0x03B9, // GREEK CAPITAL LETTER IOTA -> ι
	0x039A: 0x03BA, // GREEK CAPITAL LETTER KAPPA -> κ
	0x039C: 0x03BC, // GREEK CAPITAL LETTER MU -> μ
	0x03A0: 0x03C0, // GREEK CAPITAL LETTER PI -> π
	0x03A1: 0x03C1, // GREEK CAPITAL LETTER RHO -> ρ
	0x03A3: 0x03C3, // GREEK CAPITAL LETTER SIGMA -> σ
	0x03A6: 0x03C6, // GREEK CAPITAL LETTER PHI -> φ
	0x03A9: 0x03C9, // GREEK CAPITAL LETTER OMEGA -> ω
	0x03C2: 0x03C3, // GREEK SMALL LETTER FINAL SIGMA -> σ
	0x03D0: 0x03B2, // GREEK BETA SYMBOL -> β
	0x03D1: 0x03B8, // GREEK THETA SYMBOL -> θ
	0x03D2: 0x03C5, // GREEK UPSILON WITH HOOK SYMBOL -> υ
	0x03D5: 0x03C6, // GREEK PHI SYMBOL -> φ
	0x03D6: 0x03C0, // GREEK PI SYMBOL -> π
	0x03F0: 0x03BA, // GREEK KAPPA SYMBOL -> κ
	0x03F1: 0x03C1, // GREEK RHO SYMBOL -> ρ
	0x03F2: 0x03C3, // GREEK LUNATE SIGMA SYMBOL -> σ
	0x00B5: 0x03BC, // MICRO SIGN -> GREEK SMALL LETTER MU
	0x017F: 0x0073, // LATIN SMALL LETTER LONG S -> s
	0x2126: 0x03C9, // OHM SIGN -> GREEK SMALL LETTER OMEGA
	0x212A: 0x006B, // KELVIN SIGN -> k
	0x212B: 0x00E5, // ANGSTROM SIGN -> å
}

// latinMathBlockStarts lists the first code point of each of the thirteen
// 52-wide (26 capital + 26 small) Latin alphabets in the Mathematical
// Alphanumeric Symbols block (U+1D400-U+1D6A3): bold, italic, bold
// italic, script, bold script, fraktur, double-struck, bold fraktur,
// sans-serif, sans-serif bold, sans-serif italic, sans-serif bold
// italic, monospace, in that order. RFC 3454 Table B.2 folds every
// letter in each alphabet to its plain ASCII letter.
var latinMathBlockStarts = [13]uint32{
	0x1D400, 0x1D434, 0x1D468, 0x1D49C, 0x1D4D0, 0x1D504, 0x1D538,
	0x1D56C, 0x1D5A0, 0x1D5D4, 0x1D608, 0x1D63C, 0x1D670,
}

// mathAlphaHoles are the code points within latinMathBlockStarts' alphabets
// that Unicode left unassigned because a pre-existing Letterlike Symbols
// character already occupied that role (e.g. U+1D49D was never assigned
// since U+212C SCRIPT CAPITAL B already served as "script capital B").
// mathLetterlikeFold carries the fold for the stand-in character instead.
var mathAlphaHoles = map[uint32]bool{
	0x1D455: true,
	0x1D49D: true, 0x1D4A0: true, 0x1D4A1: true, 0x1D4A3: true,
	0x1D4A4: true, 0x1D4A7: true, 0x1D4A8: true, 0x1D4AD: true,
	0x1D4BA: true, 0x1D4BC: true, 0x1D4C4: true,
	0x1D506: true, 0x1D50B: true, 0x1D50C: true, 0x1D515: true, 0x1D51D: true,
	0x1D53A: true, 0x1D53F: true, 0x1D545: true, 0x1D547: true,
	0x1D548: true, 0x1D549: true, 0x1D551: true,
}

// mathLetterlikeFold folds the Letterlike Symbols block characters that
// stand in for the Mathematical Alphanumeric Symbols holes above, to the
// same plain ASCII letter their math-block counterparts would fold to.
var mathLetterlikeFold = map[uint32]uint32{
	0x210E: 'h', // PLANCK CONSTANT (italic small h)
	0x212C: 'b', 0x2130: 'e', 0x2131: 'f', 0x210B: 'h', 0x2110: 'i', // script caps
	0x2112: 'l', 0x2133: 'm', 0x211B: 'r',
	0x212F: 'e', 0x210A: 'g', 0x2134: 'o', // script small
	0x212D: 'c', 0x210C: 'h', 0x2111: 'i', 0x211C: 'r', 0x2128: 'z', // fraktur caps
	0x2102: 'c', 0x210D: 'h', 0x2115: 'n', 0x2119: 'p', // double-struck caps
	0x211A: 'q', 0x211D: 'r', 0x2124: 'z',
}

// mathGreekSymbolFold covers the six variant-glyph "symbol" letters that
// follow the partial-differential sign in each Mathematical Alphanumeric
// Symbols Greek alphabet (epsilon, theta, kappa, phi, rho, pi symbol
// forms, in that order), folding each to the base letter its
// already-tabulated plain-Unicode counterpart folds to in
// b2SingleOverrides.
var mathGreekSymbolFold = [6]uint32{0x03B5, 0x03B8, 0x03BA, 0x03C6, 0x03C1, 0x03C0}

// mathGreekLetter returns the base lowercase Greek letter RFC 3454 Table
// B.2 folds position pos (0-24) of a Mathematical Alphanumeric Symbols
// Greek alphabet's capital or small half to. Positions 0-16 are the
// contiguous alpha..rho run; position 17 is the odd slot where the
// capital half reuses a "theta symbol" glyph and the small half reuses a
// "final sigma" glyph (both fold to their plain letter, theta and sigma
// respectively, matching b2SingleOverrides); positions 18-24 are the
// sigma..omega run.
func mathGreekLetter(pos int, isCapital bool) uint32 {
	switch {
	case pos <= 16:
		return 0x03B1 + uint32(pos) // alpha .. rho
	case pos == 17:
		if isCapital {
			return 0x03B8 // theta symbol slot -> theta
		}
		return 0x03C3 // final sigma slot -> sigma
	default:
		return 0x03C3 + uint32(pos-18) // sigma .. omega
	}
}

const (
	greekMathStart     = 0x1D6A8
	greekMathEnd       = 0x1D7C9
	greekMathStyleSize = 58 // 25 caps + nabla + 25 small + partial-diff + 6 symbols
	digitMathStart     = 0x1D7CE
	digitMathEnd       = 0x1D7FF
)

// mathFold implements RFC 3454 Table B.2's compatibility folding of the
// Mathematical Alphanumeric Symbols block (U+1D400-U+1D7FF), named
// explicitly in spec.md §4.3, plus the Letterlike Symbols stand-ins for
// that block's documented holes. The block's layout is entirely regular
// once the holes are excluded, so it is folded arithmetically here
// instead of as roughly 700 individual map entries: thirteen Latin
// alphabets of 26 capitals + 26 small letters, a dotless i/j pair, five
// Greek alphabets of capitals/nabla/small/partial-diff/symbol-variants,
// a digamma pair, and five digit alphabets of 0-9.
func mathFold(cp uint32) (uint32, bool) {
	for _, start := range latinMathBlockStarts {
		if cp < start || cp > start+51 {
			continue
		}
		if mathAlphaHoles[cp] {
			return 0, false
		}
		offset := cp - start
		if offset < 26 {
			return 'a' + offset, true
		}
		return 'a' + offset - 26, true
	}

	switch cp {
	case 0x1D6A4:
		return 'i', true
	case 0x1D6A5:
		return 'j', true
	case 0x1D7CA, 0x1D7CB:
		return 0x03DD, true // digamma, capital and small fold alike
	}

	if cp >= greekMathStart && cp <= greekMathEnd {
		rel := cp - greekMathStart
		pos := rel % greekMathStyleSize
		switch {
		case pos <= 24:
			return mathGreekLetter(int(pos), true), true
		case pos == 25:
			return 0, false // nabla: operator, no case to fold
		case pos <= 50:
			return mathGreekLetter(int(pos-26), false), true
		case pos == 51:
			return 0, false // partial differential: operator, no case to fold
		default:
			return mathGreekSymbolFold[pos-52], true
		}
	}

	if cp >= digitMathStart && cp <= digitMathEnd {
		return '0' + (cp-digitMathStart)%10, true
	}

	if to, ok := mathLetterlikeFold[cp]; ok {
		return to, true
	}

	return 0, false
}

// mapB2 applies RFC 3454 Table B.2 to a single input code point, appending
// the resulting 0..4 output code points to dst and returning the extended
// slice.
//
// The compatibility expansions and the case-fold irregularities that
// diverge from plain Unicode lower-casing are reproduced explicitly in
// b2Expansion and b2SingleOverrides; the Mathematical Alphanumeric
// Symbols compatibility folding spec.md §4.3 names explicitly is
// reproduced arithmetically in mathFold. Every other cased letter is
// folded using unicode.ToLower, which for Basic Latin, Latin-1
// Supplement, Latin Extended, Greek, Cyrillic, Armenian, fullwidth Latin
// and Deseret agrees with the RFC 3454 table because both were built
// from the same underlying Unicode case-folding data. See DESIGN.md for
// the remaining scope of this approximation.
func mapB2(dst []uint32, cp uint32) []uint32 {
	if cp >= 'A' && cp <= 'Z' {
		return append(dst, cp+('a'-'A'))
	}
	if exp, ok := b2Expansion[cp]; ok {
		return append(dst, exp...)
	}
	if to, ok := b2SingleOverrides[cp]; ok {
		return append(dst, to)
	}
	if to, ok := mathFold(cp); ok {
		return append(dst, to)
	}
	r := rune(cp)
	if unicode.IsUpper(r) || unicode.IsTitle(r) {
		if lower := unicode.ToLower(r); lower != r {
			return append(dst, uint32(lower))
		}
	}
	return append(dst, cp)
}
