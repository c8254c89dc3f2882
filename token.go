// Copyright 2025 The Jdom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jdom

// Kind represents each possible JSON value kind with a single byte,
// which is conveniently the first byte of that kind's grammar
// with the restriction that numbers always be represented with '0':
//
//   - 'n': null
//   - 'f': false
//   - 't': true
//   - '"': string
//   - '0': number
//   - '{': object
//   - '[': array
//
// The lexer additionally uses the structural bytes '}', ']', ':' and ','
// as token kinds, and 0 for end of input.
type Kind byte

const (
	// KindInvalid is the kind of the zero Value and of a freed Value.
	KindInvalid Kind = 0
	KindNull    Kind = 'n'
	KindFalse   Kind = 'f'
	KindTrue    Kind = 't'
	KindString  Kind = '"'
	KindNumber  Kind = '0'
	KindObject  Kind = '{'
	KindArray   Kind = '['
)

// String prints the kind in a humanly readable fashion.
func (k Kind) String() string {
	switch k {
	case 'n':
		return "null"
	case 'f':
		return "false"
	case 't':
		return "true"
	case '"':
		return "string"
	case '0':
		return "number"
	case '{':
		return "object"
	case '[':
		return "array"
	case '}':
		return "'}'"
	case ']':
		return "']'"
	case ':':
		return "':'"
	case ',':
		return "','"
	case 0:
		return "end of input"
	default:
		return "<invalid jdom.Kind: " + escapeCharacter(byte(k)) + ">"
	}
}
