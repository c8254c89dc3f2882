// Copyright 2025 The Jdom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jdom

import (
	"strconv"
	"strings"
)

const errorPrefix = "jdom: "

// Error matches errors returned by this package according to errors.Is.
const Error = jdomError("jdom error")

type jdomError string

func (e jdomError) Error() string        { return errorPrefix + string(e) }
func (e jdomError) Is(target error) bool { return e == target || target == Error }

// errIndexRange is returned by SetAt for an out-of-range index.
const errIndexRange = jdomError("array index out of range")

// SyntaxError is a description of a JSON syntax error.
//
// The contents of this error as produced by this package may change over time.
type SyntaxError struct {
	// Line indicates the input line on which the error was detected.
	// Lines are counted from 1; line feeds are the only line terminator.
	Line int
	str  string
}

func (e *SyntaxError) Error() string {
	return errorPrefix + "line " + strconv.Itoa(e.Line) + ": " + e.str
}
func (e *SyntaxError) Is(target error) bool { return e == target || target == Error }

func newInvalidCharacterError(c byte, where string, line int) *SyntaxError {
	return &SyntaxError{Line: line, str: "invalid character " + escapeCharacter(c) + " " + where}
}

func escapeCharacter(c byte) string {
	switch c {
	case '\'':
		return `'\''`
	case '"':
		return `'"'`
	default:
		return "'" + strings.TrimPrefix(strings.TrimSuffix(strconv.Quote(string([]byte{c})), `"`), `"`) + "'"
	}
}
