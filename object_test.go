// Copyright 2025 The Jdom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jdom

import (
	"fmt"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestObjectSetGet(t *testing.T) {
	v := NewObject()
	defer v.Release()

	v.SetFloat("n", 3.5).SetString("s", "text").SetBool("b", true).Set("z", nil)

	require.Equal(t, 4, v.Len())
	require.Equal(t, 3.5, v.GetFloat("n"))
	require.Equal(t, "text", v.GetString("s"))
	require.True(t, v.GetBool("b"))
	require.True(t, v.Get("z").IsNull())

	require.True(t, v.Has("n"))
	require.False(t, v.Has("missing"))
	require.Nil(t, v.Get("missing"))

	require.True(t, v.KeyIs("n", KindNumber))
	require.True(t, v.KeyIs("s", KindString))
	require.False(t, v.KeyIs("s", KindNumber))
	require.False(t, v.KeyIs("missing", KindNull))
}

func TestObjectReplace(t *testing.T) {
	v := NewObject()
	defer v.Release()

	v.SetFloat("k", 1)
	v.SetFloat("k", 2)
	v.SetString("k", "last")

	require.Equal(t, 1, v.Len())
	require.Equal(t, "last", v.GetString("k"))
}

func TestObjectDefaults(t *testing.T) {
	v := NewObject().SetFloat("n", 7).SetString("s", "x").SetBool("f", false)
	defer v.Release()

	// Present members ignore the fallback; absent members use it.
	require.Equal(t, 7.0, v.GetFloatOr("n", -1))
	require.Equal(t, -1.0, v.GetFloatOr("missing", -1))
	require.Equal(t, "x", v.GetStringOr("s", "def"))
	require.Equal(t, "def", v.GetStringOr("missing", "def"))
	require.False(t, v.GetBoolOr("f", true))
	require.True(t, v.GetBoolOr("missing", true))

	// A present member of the wrong kind yields the kind's zero, not the
	// fallback.
	require.Equal(t, 0.0, v.GetFloatOr("s", -1))
	require.Equal(t, "", v.GetStringOr("n", "def"))
}

func TestObjectGrowth(t *testing.T) {
	v := NewObject()
	defer v.Release()

	const n = 100
	for i := 0; i < n; i++ {
		v.SetFloat(fmt.Sprintf("key%03d", i), float64(i))
	}

	require.Equal(t, n, v.Len())
	for i := 0; i < n; i++ {
		require.Equal(t, float64(i), v.GetFloat(fmt.Sprintf("key%03d", i)))
	}

	tab := v.obj
	require.Equal(t, n, tab.count)
	require.LessOrEqual(t, tab.count, len(tab.entries)*3/4)
	require.Equal(t, 1, bits.OnesCount(uint(len(tab.entries))), "capacity must stay a power of two")
}

func TestObjectIteration(t *testing.T) {
	v := NewObject()
	defer v.Release()

	want := map[string]float64{}
	for i := 0; i < 40; i++ {
		key := fmt.Sprintf("k%d", i)
		want[key] = float64(i)
		v.SetFloat(key, float64(i))
	}

	got := map[string]float64{}
	for key, ok := v.FirstKey(); ok; key, ok = v.NextKey(key) {
		_, seen := got[key]
		require.False(t, seen, "key %q visited twice", key)
		got[key] = v.GetFloat(key)
	}
	require.Equal(t, want, got)
}

func TestObjectIterationEmpty(t *testing.T) {
	v := NewObject()
	defer v.Release()

	_, ok := v.FirstKey()
	require.False(t, ok)
	_, ok = v.NextKey("missing")
	require.False(t, ok)
}

func TestObjectSetShared(t *testing.T) {
	x := NewString("shared")
	v := NewObject().SetShared("a", x).SetShared("b", x)

	require.Equal(t, "shared", v.GetString("a"))
	require.Equal(t, "shared", v.GetString("b"))
	v.Release()

	// The caller's reference is still alive.
	require.Equal(t, "shared", x.String())
	x.Release()
}

func TestObjectKindMismatchPanics(t *testing.T) {
	v := NewNumber(1)
	defer v.Release()

	require.PanicsWithValue(t, "jdom: number value used as object", func() { v.Get("a") })
	require.PanicsWithValue(t, "jdom: number value used as object", func() { v.SetFloat("a", 1) })
}

func TestFNV1a(t *testing.T) {
	// Published FNV-1a 32-bit reference vectors.
	require.Equal(t, uint32(0x811c9dc5), fnv1a(""))
	require.Equal(t, uint32(0xe40c292c), fnv1a("a"))
	require.Equal(t, uint32(0xbf9cf968), fnv1a("foobar"))
}
