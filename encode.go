// Copyright 2025 The Jdom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jdom

import (
	"math"

	"github.com/wernsey/jdom/internal/jsonwire"
)

// MarshalOptions configures the serializer.
// The zero value produces compact output with non-finite numbers as null.
type MarshalOptions struct {
	// Multiline formats objects and arrays one member per line,
	// indented by two spaces per nesting level.
	Multiline bool

	// StringifyNonFinite writes NaN and the infinities as the JSON
	// strings "NaN", "Infinity" and "-Infinity" instead of null.
	StringifyNonFinite bool
}

// Marshal serializes v as compact JSON.
// A nil v serializes as the JSON null value.
func Marshal(v *Value) []byte {
	return MarshalOptions{}.Marshal(v)
}

// Pretty serializes v as indented multi-line JSON.
func Pretty(v *Value) []byte {
	return MarshalOptions{Multiline: true}.Marshal(v)
}

// Marshal serializes v according to the options.
// The output is always valid JSON; serialization cannot fail.
func (o MarshalOptions) Marshal(v *Value) []byte {
	e := encoder{opts: o}
	e.appendValue(v, 1)
	return e.buf
}

type encoder struct {
	buf  []byte
	opts MarshalOptions
}

// appendValue writes v at the given nesting depth.
// The depth is used only for indentation in multiline mode.
func (e *encoder) appendValue(v *Value, depth int) {
	switch v.Kind() {
	case 't':
		e.buf = append(e.buf, "true"...)
	case 'f':
		e.buf = append(e.buf, "false"...)
	case '0':
		e.appendNumber(v.num)
	case '"':
		e.buf = jsonwire.AppendQuote(e.buf, v.str.s)
	case '{':
		e.appendObject(v.obj, depth)
	case '[':
		e.appendArray(v.arr, depth)
	default:
		e.buf = append(e.buf, "null"...)
	}
}

func (e *encoder) appendNumber(n float64) {
	switch {
	case math.IsNaN(n):
		e.appendNonFinite("NaN")
	case math.IsInf(n, +1):
		e.appendNonFinite("Infinity")
	case math.IsInf(n, -1):
		e.appendNonFinite("-Infinity")
	default:
		e.buf = jsonwire.AppendFloat(e.buf, n)
	}
}

func (e *encoder) appendNonFinite(name string) {
	if e.opts.StringifyNonFinite {
		e.buf = append(e.buf, '"')
		e.buf = append(e.buf, name...)
		e.buf = append(e.buf, '"')
	} else {
		e.buf = append(e.buf, "null"...)
	}
}

func (e *encoder) appendObject(t *table, depth int) {
	e.buf = append(e.buf, '{')
	n := 0
	for i := range t.entries {
		ent := &t.entries[i]
		if ent.key == nil {
			continue
		}
		if n > 0 {
			e.buf = append(e.buf, ',')
		}
		e.newline(depth)
		e.buf = jsonwire.AppendQuote(e.buf, ent.key.s)
		if e.opts.Multiline {
			e.buf = append(e.buf, " : "...)
		} else {
			e.buf = append(e.buf, ':')
		}
		e.appendValue(ent.val, depth+1)
		n++
	}
	if n > 0 {
		e.newline(depth - 1)
	}
	e.buf = append(e.buf, '}')
}

func (e *encoder) appendArray(a *varray, depth int) {
	e.buf = append(e.buf, '[')
	for i, x := range a.elems {
		if i > 0 {
			e.buf = append(e.buf, ',')
		}
		e.newline(depth)
		e.appendValue(x, depth+1)
	}
	if len(a.elems) > 0 {
		e.newline(depth - 1)
	}
	e.buf = append(e.buf, ']')
}

// newline starts an indented line in multiline mode and is a no-op otherwise.
func (e *encoder) newline(depth int) {
	if !e.opts.Multiline {
		return
	}
	e.buf = append(e.buf, '\n')
	for i := 0; i < depth; i++ {
		e.buf = append(e.buf, "  "...)
	}
}
