// Copyright 2025 The Jdom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jdom

import (
	"os"

	pkgerrors "github.com/pkg/errors"
)

// ReadFile reads the named file and parses its contents with the options.
func (o ParseOptions) ReadFile(name string) (*Value, error) {
	in, err := os.ReadFile(name)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "unable to read %s", name)
	}
	return o.Parse(in)
}

// ReadFile reads the named file and parses its contents with the default
// options.
func ReadFile(name string) (*Value, error) {
	return ParseOptions{}.ReadFile(name)
}

// WriteFile serializes v according to the options and writes the result to
// the named file, followed by a trailing newline, creating the file with
// mode 0o666 or truncating it if it already exists.
func (o MarshalOptions) WriteFile(name string, v *Value) error {
	out := o.Marshal(v)
	out = append(out, '\n')
	if err := os.WriteFile(name, out, 0o666); err != nil {
		return pkgerrors.Wrapf(err, "unable to write %s", name)
	}
	return nil
}

// WriteFile writes v to the named file as compact JSON.
func WriteFile(name string, v *Value) error {
	return MarshalOptions{}.WriteFile(name, v)
}
