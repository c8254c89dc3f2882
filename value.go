// Copyright 2025 The Jdom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jdom

import "math"

// Value represents a single JSON entity, which may be one of the following:
//   - a JSON literal (i.e., null, true, or false)
//   - a JSON string (e.g., "hello, world!")
//   - a JSON number (e.g., 123.456)
//   - a JSON object, backed by an open-addressed table
//   - a JSON array, backed by a growable sequence
//
// Every Value carries an explicit reference count. A freshly constructed
// Value has a count of one, owned by the caller. Retain increments the
// count; Release decrements it and tears the Value down, children included,
// when it reaches zero.
//
// Inserting a Value into an object or array is a move: the container takes
// over the one reference the caller holds. Call Retain first (or use the
// Shared variants) to keep an own handle alive across the insert.
// A handle whose count has reached zero must not be used again;
// Retain and Release on such a handle panic.
type Value struct {
	kind Kind
	num  float64
	str  *istr
	obj  *table
	arr  *varray
	refs int32
}

// NewObject creates a Value containing an empty JSON object.
func NewObject() *Value {
	v := newValue('{')
	v.obj = newTable()
	return v
}

// NewArray creates a Value containing an empty JSON array.
func NewArray() *Value {
	v := newValue('[')
	v.arr = newVarray()
	return v
}

// NewString creates a JSON string Value containing the given text.
func NewString(s string) *Value {
	v := newValue('"')
	v.str = makeIstr(s)
	return v
}

// NewNumber creates a JSON number Value with the given value.
func NewNumber(n float64) *Value {
	v := newValue('0')
	v.num = n
	return v
}

// literalCache optionally holds process-wide singletons for the null, true
// and false values. It is nil-initialized by default so that every
// constructor call allocates, which is safe without any coordination.
// Once populated by EnableLiteralCache it is read-only until
// DisableLiteralCache, so the constructors may be called concurrently.
var literalCache struct {
	null, lieTrue, lieFalse *Value
}

// EnableLiteralCache makes Null, True and False hand out retained references
// to three process-wide singletons instead of allocating per call.
// It must be called before any concurrent use of those constructors.
// Calling it again is a no-op.
func EnableLiteralCache() {
	if literalCache.null != nil {
		return
	}
	literalCache.null = newValue('n')
	literalCache.lieTrue = newValue('t')
	literalCache.lieFalse = newValue('f')
}

// DisableLiteralCache releases the cache's own references and restores
// per-call allocation. Handles previously returned by the constructors
// remain valid until released by their owners.
func DisableLiteralCache() {
	if literalCache.null == nil {
		return
	}
	literalCache.null.Release()
	literalCache.lieTrue.Release()
	literalCache.lieFalse.Release()
	literalCache.null = nil
	literalCache.lieTrue = nil
	literalCache.lieFalse = nil
}

// Null returns a Value representing the JSON null value.
func Null() *Value {
	if v := literalCache.null; v != nil {
		return v.Retain()
	}
	return newValue('n')
}

// True returns a Value representing the JSON true value.
func True() *Value {
	if v := literalCache.lieTrue; v != nil {
		return v.Retain()
	}
	return newValue('t')
}

// False returns a Value representing the JSON false value.
func False() *Value {
	if v := literalCache.lieFalse; v != nil {
		return v.Retain()
	}
	return newValue('f')
}

// Bool returns a Value representing either the JSON true or false value.
func Bool(b bool) *Value {
	if b {
		return True()
	}
	return False()
}

// Retain increments the reference count and returns v.
func (v *Value) Retain() *Value {
	if v.refs <= 0 {
		panic("jdom: retain of freed value")
	}
	v.refs++
	return v
}

// Release decrements the reference count. When the count reaches zero the
// Value is destroyed: objects and arrays release their children, strings
// release their pool entry, and the record itself is recycled.
// Releasing a nil Value is a no-op.
func (v *Value) Release() {
	if v == nil {
		return
	}
	if v.refs <= 0 {
		panic("jdom: release of freed value")
	}
	if v.refs--; v.refs > 0 {
		return
	}
	switch v.kind {
	case '"':
		v.str.release()
	case '{':
		v.obj.release()
	case '[':
		v.arr.release()
	}
	freeValue(v)
}

// Kind returns the kind of the JSON value.
func (v *Value) Kind() Kind {
	if v == nil {
		return KindInvalid
	}
	return v.kind
}

// IsNull reports whether v represents the JSON null value.
func (v *Value) IsNull() bool { return v.Kind() == 'n' }

// IsBoolean reports whether v represents the JSON true or false value.
func (v *Value) IsBoolean() bool { return v.Kind() == 't' || v.Kind() == 'f' }

// IsTrue reports whether v represents the JSON true value,
// resembling the JavaScript operation v === true.
// See Truthy for the less strict version.
func (v *Value) IsTrue() bool { return v.Kind() == 't' }

// IsFalse reports whether v represents the JSON false value,
// resembling the JavaScript operation v === false.
// See Falsey for the less strict version.
func (v *Value) IsFalse() bool { return v.Kind() == 'f' }

// IsNumber reports whether v represents a JSON number.
func (v *Value) IsNumber() bool { return v.Kind() == '0' }

// IsString reports whether v represents a JSON string.
func (v *Value) IsString() bool { return v.Kind() == '"' }

// IsObject reports whether v is a JSON object.
func (v *Value) IsObject() bool { return v.Kind() == '{' }

// IsArray reports whether v is a JSON array.
func (v *Value) IsArray() bool { return v.Kind() == '[' }

// Falsey reports whether v is a falsey value under the usual JavaScript
// classification: null, false, the empty string, zero and NaN.
// A nil Value is falsey.
func (v *Value) Falsey() bool {
	if v == nil {
		return true
	}
	switch v.kind {
	case 'n', 'f':
		return true
	case '"':
		return len(v.str.s) == 0
	case '0':
		return v.num == 0 || math.IsNaN(v.num)
	}
	return false
}

// Truthy reports whether v is not Falsey.
func (v *Value) Truthy() bool { return !v.Falsey() }

// Float returns the value of a JSON number.
// For other JSON kinds, this returns 0.
func (v *Value) Float() float64 {
	if v != nil && v.kind == '0' {
		return v.num
	}
	return 0
}

// String returns the value of a JSON string.
// For other JSON kinds, this returns "".
func (v *Value) String() string {
	if v != nil && v.kind == '"' {
		return v.str.s
	}
	return ""
}

// Len returns the number of members of a JSON object or the length of a
// JSON array. For other JSON kinds, this returns 0.
func (v *Value) Len() int {
	switch v.Kind() {
	case '{':
		return v.obj.count
	case '[':
		return len(v.arr.elems)
	}
	return 0
}
