// Copyright 2025 The Jdom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jdom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestMarshalCompact(t *testing.T) {
	v, err := quietOpts().ParseString(`{"x": 1.50}`)
	require.NoError(t, err)
	defer v.Release()
	require.Equal(t, `{"x":1.5}`, string(Marshal(v)))
}

func TestMarshalScalars(t *testing.T) {
	tests := []struct {
		v    *Value
		want string
	}{
		{nil, "null"},
		{Null(), "null"},
		{True(), "true"},
		{False(), "false"},
		{NewNumber(0), "0"},
		{NewNumber(-1.25), "-1.25"},
		{NewString(""), `""`},
		{NewString("say \"hi\"\n"), `"say \"hi\"\n"`},
		{NewObject(), "{}"},
		{NewArray(), "[]"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, string(Marshal(tt.v)))
		tt.v.Release()
	}
}

func TestMarshalNonFinite(t *testing.T) {
	v := NewArray().
		AppendFloat(math.NaN()).
		AppendFloat(math.Inf(+1)).
		AppendFloat(math.Inf(-1))
	defer v.Release()

	require.Equal(t, `[null,null,null]`, string(Marshal(v)))

	opts := MarshalOptions{StringifyNonFinite: true}
	require.Equal(t, `["NaN","Infinity","-Infinity"]`, string(opts.Marshal(v)))
}

func TestPretty(t *testing.T) {
	v, err := quietOpts().ParseString(`{"a":[1,true,null],"-":{}}`)
	require.NoError(t, err)
	defer v.Release()

	// Single-member inner objects keep the layout independent of the
	// hash-driven member order.
	a := v.Get("a")
	want := "[\n" +
		"  1,\n" +
		"  true,\n" +
		"  null\n" +
		"]"
	if diff := cmp.Diff(want, string(Pretty(a))); diff != "" {
		t.Errorf("pretty output mismatch (-want +got):\n%s", diff)
	}

	w := NewObject().Set("a", NewObject().SetFloat("b", 2))
	defer w.Release()
	want = "{\n" +
		"  \"a\" : {\n" +
		"    \"b\" : 2\n" +
		"  }\n" +
		"}"
	if diff := cmp.Diff(want, string(Pretty(w))); diff != "" {
		t.Errorf("pretty output mismatch (-want +got):\n%s", diff)
	}
}

func TestPrettyEmptyContainers(t *testing.T) {
	o := NewObject()
	defer o.Release()
	require.Equal(t, "{}", string(Pretty(o)))

	a := NewArray()
	defer a.Release()
	require.Equal(t, "[]", string(Pretty(a)))
}

func TestMarshalOutputIsStrict(t *testing.T) {
	// Comments and lax input never leak into the output.
	v, err := quietOpts().ParseString("// note\n[\"a\\/b\"]")
	require.NoError(t, err)
	defer v.Release()
	require.Equal(t, `["a/b"]`, string(Marshal(v)))
}

func TestMarshalIdempotent(t *testing.T) {
	inputs := []string{
		`{"a":1,"b":[true,false,null],"c":{"d":"e"}}`,
		`[[],{},"",0,-0.5,1e+21]`,
		`{"x":{"y":{"z":[1,2,3]}}}`,
	}
	for _, in := range inputs {
		v, err := quietOpts().ParseString(in)
		require.NoError(t, err, "input %q", in)
		once := Marshal(v)
		w, err := quietOpts().Parse(once)
		require.NoError(t, err, "input %q", in)
		require.Equal(t, string(once), string(Marshal(w)), "input %q", in)
		w.Release()
		v.Release()
	}
}
