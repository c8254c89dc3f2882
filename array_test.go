// Copyright 2025 The Jdom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jdom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayAppend(t *testing.T) {
	v := NewArray()
	defer v.Release()

	caps := []int{cap(v.arr.elems)}
	for i := 0; i < 1000; i++ {
		v.AppendFloat(float64(i))
		if c := cap(v.arr.elems); c != caps[len(caps)-1] {
			caps = append(caps, c)
		}
	}

	require.Equal(t, 1000, v.Len())
	for i := 0; i < 1000; i++ {
		require.Equal(t, float64(i), v.AtFloat(i))
	}
	for i := 1; i < len(caps); i++ {
		require.Greater(t, caps[i], caps[i-1], "capacity must strictly increase")
	}
	require.Equal(t, minArrayCap, caps[0])
}

func TestArrayTypedAppend(t *testing.T) {
	v := NewArray().
		AppendFloat(1.5).
		AppendString("two").
		AppendBool(true).
		Append(nil)
	defer v.Release()

	require.Equal(t, 4, v.Len())
	require.Equal(t, 1.5, v.AtFloat(0))
	require.Equal(t, "two", v.AtString(1))
	require.True(t, v.At(2).IsTrue())
	require.True(t, v.At(3).IsNull())

	// Mistyped accessors return the zero of the requested kind.
	require.Equal(t, 0.0, v.AtFloat(1))
	require.Equal(t, "", v.AtString(0))
}

func TestArrayOutOfRange(t *testing.T) {
	v := NewArray().AppendFloat(1)
	defer v.Release()

	require.Nil(t, v.At(-1))
	require.Nil(t, v.At(1))
	require.Equal(t, 0.0, v.AtFloat(99))
}

func TestArraySetAt(t *testing.T) {
	v := NewArray().AppendFloat(1).AppendFloat(2)
	defer v.Release()

	require.NoError(t, v.SetAt(0, NewString("replaced")))
	require.NoError(t, v.SetAt(1, nil))
	require.Equal(t, "replaced", v.AtString(0))
	require.True(t, v.At(1).IsNull())

	x := NewString("unused")
	err := v.SetAt(2, x)
	require.ErrorIs(t, err, Error)
	require.ErrorIs(t, err, errIndexRange)
	x.Release() // ownership stays with the caller on error
}

func TestArrayReserve(t *testing.T) {
	v := NewArray().AppendFloat(1)
	defer v.Release()

	v.Reserve(5)
	require.Equal(t, 5, v.Len())
	require.Equal(t, 1.0, v.AtFloat(0))
	for i := 1; i < 5; i++ {
		require.True(t, v.At(i).IsNull())
	}

	v.Reserve(3) // never shrinks
	require.Equal(t, 5, v.Len())
}

func TestArrayAppendShared(t *testing.T) {
	x := NewNumber(7)
	v := NewArray().AppendShared(x).AppendShared(x)

	require.Equal(t, 7.0, v.AtFloat(0))
	require.Equal(t, 7.0, v.AtFloat(1))
	v.Release()

	require.Equal(t, 7.0, x.Float())
	x.Release()
}

func TestArrayKindMismatchPanics(t *testing.T) {
	v := NewObject()
	defer v.Release()

	require.PanicsWithValue(t, "jdom: object value used as array", func() { v.At(0) })
	require.PanicsWithValue(t, "jdom: object value used as array", func() { v.AppendFloat(1) })
}
