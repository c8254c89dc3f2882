// Copyright 2025 The Jdom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jdom

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode/utf8"
)

var bomPrefix = []byte{0xef, 0xbb, 0xbf}

// lexer splits the input into JSON tokens. After a successful next the
// current token's kind is in kind; string tokens leave their decoded text
// in buf and number tokens their value in num.
//
// Token kinds reuse the Kind bytes for values, the structural bytes
// '}', ']', ':' and ',' for punctuation, and 0 for end of input.
type lexer struct {
	in   []byte
	pos  int
	line int
	kind Kind
	buf  []byte
	num  float64

	allowComments bool
}

func newLexer(in []byte, allowComments bool) *lexer {
	in = bytes.TrimPrefix(in, bomPrefix)
	return &lexer{in: in, line: 1, buf: getScratch(), allowComments: allowComments}
}

func (l *lexer) free() {
	putScratch(l.buf)
	l.buf = nil
}

func (l *lexer) errf(format string, args ...any) *SyntaxError {
	return &SyntaxError{Line: l.line, str: fmt.Sprintf(format, args...)}
}

// next advances to the following token.
func (l *lexer) next() error {
	if err := l.skipSpace(); err != nil {
		return err
	}
	if l.pos >= len(l.in) {
		l.kind = 0
		return nil
	}
	switch c := l.in[l.pos]; {
	case c == '"':
		return l.scanString()
	case c == '-' || ('0' <= c && c <= '9'):
		return l.scanNumber()
	case isAlpha(c):
		return l.scanKeyword()
	case c == '{' || c == '}' || c == '[' || c == ']' || c == ':' || c == ',':
		l.pos++
		l.kind = Kind(c)
		return nil
	default:
		return newInvalidCharacterError(c, "looking for a token", l.line)
	}
}

func (l *lexer) skipSpace() error {
	for l.pos < len(l.in) {
		switch l.in[l.pos] {
		case ' ', '\t', '\r':
			l.pos++
		case '\n':
			l.pos++
			l.line++
		case '/':
			if !l.allowComments {
				return l.errf("comments are not supported")
			}
			if err := l.skipComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

func (l *lexer) skipComment() error {
	if l.pos+1 >= len(l.in) {
		return newInvalidCharacterError('/', "looking for a token", l.line)
	}
	switch l.in[l.pos+1] {
	case '/':
		for l.pos < len(l.in) && l.in[l.pos] != '\n' {
			l.pos++
		}
		return nil
	case '*':
		for i := l.pos + 2; i+1 < len(l.in); i++ {
			switch {
			case l.in[i] == '*' && l.in[i+1] == '/':
				l.pos = i + 2
				return nil
			case l.in[i] == '\n':
				l.line++
			}
		}
		l.pos = len(l.in)
		return l.errf("unexpected end of file inside a comment")
	default:
		return newInvalidCharacterError(l.in[l.pos+1], "after '/'", l.line)
	}
}

func isAlpha(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

func (l *lexer) scanKeyword() error {
	start := l.pos
	for l.pos < len(l.in) && isAlpha(l.in[l.pos]) {
		l.pos++
	}
	switch word := string(l.in[start:l.pos]); word {
	case "null":
		l.kind = 'n'
	case "true":
		l.kind = 't'
	case "false":
		l.kind = 'f'
	default:
		return l.errf("unknown keyword '%s'", word)
	}
	return nil
}

func (l *lexer) scanNumber() error {
	start := l.pos
	if l.in[l.pos] == '-' {
		l.pos++
	}
	if !l.digits() {
		return l.errf("malformed number")
	}
	if l.pos < len(l.in) && l.in[l.pos] == '.' {
		l.pos++
		if !l.digits() {
			return l.errf("malformed number")
		}
	}
	if l.pos < len(l.in) && (l.in[l.pos] == 'e' || l.in[l.pos] == 'E') {
		l.pos++
		if l.pos < len(l.in) && (l.in[l.pos] == '+' || l.in[l.pos] == '-') {
			l.pos++
		}
		if !l.digits() {
			return l.errf("malformed number")
		}
	}
	// The grammar guarantees a parse; only a range error can occur,
	// in which case ParseFloat already clamped to an infinity.
	l.num, _ = strconv.ParseFloat(string(l.in[start:l.pos]), 64)
	l.kind = '0'
	return nil
}

// digits consumes a run of decimal digits and reports whether there was
// at least one.
func (l *lexer) digits() bool {
	start := l.pos
	for l.pos < len(l.in) && '0' <= l.in[l.pos] && l.in[l.pos] <= '9' {
		l.pos++
	}
	return l.pos > start
}

func (l *lexer) scanString() error {
	l.pos++ // opening quote
	l.buf = l.buf[:0]
	for {
		if l.pos >= len(l.in) || l.in[l.pos] == '\n' {
			return l.errf("unterminated string")
		}
		switch c := l.in[l.pos]; {
		case c == '"':
			l.pos++
			l.kind = '"'
			return nil
		case c == '\\':
			if err := l.scanEscape(); err != nil {
				return err
			}
		default:
			l.buf = append(l.buf, c)
			l.pos++
		}
	}
}

func (l *lexer) scanEscape() error {
	if l.pos+1 >= len(l.in) {
		return l.errf("unterminated string")
	}
	c := l.in[l.pos+1]
	l.pos += 2
	switch c {
	case '"', '\\', '/':
		l.buf = append(l.buf, c)
	case 'b':
		l.buf = append(l.buf, '\b')
	case 'f':
		l.buf = append(l.buf, '\f')
	case 'n':
		l.buf = append(l.buf, '\n')
	case 'r':
		l.buf = append(l.buf, '\r')
	case 't':
		l.buf = append(l.buf, '\t')
	case 'u':
		return l.scanUnicodeEscape()
	default:
		return l.errf("invalid escape sequence '\\%c' in string", c)
	}
	return nil
}

// scanUnicodeEscape decodes a \uXXXX escape, pairing a high surrogate with
// a following \uXXXX low surrogate. The lexer is positioned just past "\u".
func (l *lexer) scanUnicodeEscape() error {
	x, ok := l.hex4()
	if !ok {
		return l.errf(`bad '\u' sequence`)
	}
	r := rune(x)
	switch {
	case 0xd800 <= r && r <= 0xdbff:
		// High surrogate; the low half must follow immediately.
		if l.pos+1 >= len(l.in) || l.in[l.pos] != '\\' || l.in[l.pos+1] != 'u' {
			return l.errf(`expected a surrogate pair after '\u%04X'`, x)
		}
		l.pos += 2
		y, ok := l.hex4()
		if !ok || y < 0xdc00 || y > 0xdfff {
			return l.errf(`expected a surrogate pair after '\u%04X'`, x)
		}
		r = 0x10000 + (r-0xd800)<<10 + (rune(y) - 0xdc00)
	case 0xdc00 <= r && r <= 0xdfff:
		return l.errf(`unpaired low surrogate '\u%04X'`, x)
	}
	l.buf = utf8.AppendRune(l.buf, r)
	return nil
}

// hex4 consumes four hexadecimal digits.
func (l *lexer) hex4() (uint16, bool) {
	if l.pos+4 > len(l.in) {
		return 0, false
	}
	var x uint16
	for _, c := range l.in[l.pos : l.pos+4] {
		x <<= 4
		switch {
		case '0' <= c && c <= '9':
			x |= uint16(c - '0')
		case 'a' <= c && c <= 'f':
			x |= uint16(c-'a') + 10
		case 'A' <= c && c <= 'F':
			x |= uint16(c-'A') + 10
		default:
			return 0, false
		}
	}
	l.pos += 4
	return x, true
}
