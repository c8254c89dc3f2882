// Copyright 2025 The Jdom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jsonwire implements the output side of the JSON grammar:
// quoting strings with the minimal amount of escaping and
// formatting floating-point numbers.
package jsonwire

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// needEscapeASCII reports whether c must be escaped inside a JSON string.
// It assumes c < utf8.RuneSelf.
func needEscapeASCII(c byte) bool {
	return c < ' ' || c == '"' || c == '\\'
}

// AppendQuote appends src to dst as a JSON string per RFC 8259, section 7,
// using the shortest representable escape for each character, which is also
// the canonical form for strings (RFC 8785, section 3.2.2.2).
// Invalid UTF-8 bytes are replaced with the Unicode replacement character.
func AppendQuote(dst []byte, src string) []byte {
	var i, n int
	dst = append(dst, '"')
	for n < len(src) {
		// Handle single-byte ASCII.
		if c := src[n]; c < utf8.RuneSelf {
			n++
			if needEscapeASCII(c) {
				dst = append(dst, src[i:n-1]...)
				dst = appendEscapedASCII(dst, c)
				i = n
			}
			continue
		}

		// Handle multi-byte Unicode.
		_, rn := utf8.DecodeRuneInString(src[n:])
		n += rn
		if rn == 1 { // must be utf8.RuneError since we already checked for single-byte ASCII
			dst = append(dst, src[i:n-rn]...)
			dst = append(dst, "�"...)
			i = n
		}
	}
	dst = append(dst, src[i:n]...)
	dst = append(dst, '"')
	return dst
}

func appendEscapedASCII(dst []byte, c byte) []byte {
	switch c {
	case '"', '\\':
		dst = append(dst, '\\', c)
	case '\b':
		dst = append(dst, "\\b"...)
	case '\f':
		dst = append(dst, "\\f"...)
	case '\n':
		dst = append(dst, "\\n"...)
	case '\r':
		dst = append(dst, "\\r"...)
	case '\t':
		dst = append(dst, "\\t"...)
	default:
		dst = appendEscapedUTF16(dst, uint16(c))
	}
	return dst
}

func appendEscapedUTF16(dst []byte, x uint16) []byte {
	const hex = "0123456789abcdef"
	return append(dst, '\\', 'u', hex[(x>>12)&0xf], hex[(x>>8)&0xf], hex[(x>>4)&0xf], hex[(x>>0)&0xf])
}

// AppendFloat appends src to dst as a JSON number per RFC 8259, section 6.
// It formats numbers similar to the ES6 number-to-string conversion,
// producing the shortest representation that round-trips through a float64.
// The caller is responsible for handling NaN and infinities beforehand;
// they have no representation in this grammar.
func AppendFloat(dst []byte, src float64) []byte {
	abs := math.Abs(src)
	fmt := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmt = 'e'
	}
	dst = strconv.AppendFloat(dst, src, fmt, -1, 64)
	if fmt == 'e' {
		// Clean up e-09 to e-9.
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst
}
