// Copyright 2025 The Jdom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jdom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadWriteFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "doc.json")

	v := NewObject().SetString("name", "disk").SetFloat("n", 3)
	require.NoError(t, WriteFile(name, v))

	out, err := os.ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, string(Marshal(v))+"\n", string(out))
	v.Release()

	w, err := ReadFile(name)
	require.NoError(t, err)
	require.Equal(t, "disk", w.GetString("name"))
	require.Equal(t, 3.0, w.GetFloat("n"))
	w.Release()
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unable to read")
	require.ErrorIs(t, err, os.ErrNotExist)
}
