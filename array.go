// Copyright 2025 The Jdom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jdom

// minArrayCap is the initial capacity of an array's backing store.
const minArrayCap = 8

// varray is the growable backing store of a JSON array.
// It manages capacity itself rather than leaving growth to append,
// enlarging by half whenever the backing store fills up.
type varray struct {
	elems []*Value
}

func newVarray() *varray {
	return &varray{elems: make([]*Value, 0, minArrayCap)}
}

func (a *varray) release() {
	for _, e := range a.elems {
		e.Release()
	}
	a.elems = nil
}

// push appends x, taking ownership of the caller's reference.
func (a *varray) push(x *Value) {
	if n := len(a.elems); n == cap(a.elems) {
		grown := make([]*Value, n, n+n/2)
		copy(grown, a.elems)
		a.elems = grown
	}
	a.elems = append(a.elems, x)
}

// array returns the backing store of v, panicking when v is not an array.
func (v *Value) array() *varray {
	if v.Kind() != '[' {
		panic(errorPrefix + v.Kind().String() + " value used as array")
	}
	return v.arr
}

// Append adds x to the end of the JSON array v.
//
// Append takes ownership of the reference to x; the caller must not release
// it afterwards. Use AppendShared to keep an own reference. A nil x appends
// the JSON null value. Append returns v so that calls may be chained.
//
// Append panics when v is not a JSON array.
func (v *Value) Append(x *Value) *Value {
	a := v.array()
	if x == nil {
		x = Null()
	}
	a.push(x)
	return v
}

// AppendShared is like Append, but retains x on behalf of the array so that
// the caller's reference remains valid.
func (v *Value) AppendShared(x *Value) *Value {
	return v.Append(x.Retain())
}

// AppendFloat adds a JSON number to the end of the JSON array v.
func (v *Value) AppendFloat(n float64) *Value {
	return v.Append(NewNumber(n))
}

// AppendString adds a JSON string to the end of the JSON array v.
func (v *Value) AppendString(s string) *Value {
	return v.Append(NewString(s))
}

// AppendBool adds a JSON boolean to the end of the JSON array v.
func (v *Value) AppendBool(b bool) *Value {
	return v.Append(Bool(b))
}

// At returns the element at index i of the JSON array v, or nil when i is
// out of range. The array keeps its reference; retain the result to hold
// on to it beyond the life of v.
//
// At panics when v is not a JSON array.
func (v *Value) At(i int) *Value {
	a := v.array()
	if i < 0 || i >= len(a.elems) {
		return nil
	}
	return a.elems[i]
}

// AtFloat returns the element at index i of the JSON array v as a float64.
// It returns 0 when i is out of range or the element is not a JSON number.
func (v *Value) AtFloat(i int) float64 {
	return v.At(i).Float()
}

// AtString returns the element at index i of the JSON array v as a string.
// It returns "" when i is out of range or the element is not a JSON string.
func (v *Value) AtString(i int) string {
	return v.At(i).String()
}

// SetAt replaces the element at index i of the JSON array v with x, taking
// ownership of the reference to x and releasing the previous element.
// A nil x stores the JSON null value. SetAt reports an error when i is out
// of range, in which case the caller keeps its reference to x.
//
// SetAt panics when v is not a JSON array.
func (v *Value) SetAt(i int, x *Value) error {
	a := v.array()
	if i < 0 || i >= len(a.elems) {
		return errIndexRange
	}
	if x == nil {
		x = Null()
	}
	a.elems[i].Release()
	a.elems[i] = x
	return nil
}

// Reserve extends the JSON array v with JSON null values until it has at
// least n elements. It returns v so that calls may be chained.
//
// Reserve panics when v is not a JSON array.
func (v *Value) Reserve(n int) *Value {
	a := v.array()
	for len(a.elems) < n {
		a.push(Null())
	}
	return v
}
