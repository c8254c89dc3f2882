// Copyright 2025 The Jdom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jdom implements a JSON document model with explicit ownership.
//
// A document is a tree of [Value] records. Unlike encoding/json, which
// maps JSON onto Go types, jdom keeps the document as a first-class
// mutable structure: objects are open-addressed hash tables, arrays are
// growable sequences, and strings may be interned through a [Pool] so
// that repeated keys are stored once.
//
// Every Value is reference counted. Constructors return a Value owned by
// the caller; inserting it into an object or array with [Value.Set] or
// [Value.Append] moves that ownership into the container. Use
// [Value.Retain], or the Shared insert variants, when a handle must stay
// valid independently of the container, and release every reference you
// own with [Value.Release].
//
// The parser accepts RFC 8259 JSON extended with // and /* */ comments,
// and decodes \uXXXX escapes including UTF-16 surrogate pairs. Use
// [ParseOptions] to restrict the input to plain JSON, to share an
// interning pool across documents, or to redirect error reporting.
// [Marshal] produces compact output and [Pretty] an indented rendering;
// neither can fail.
package jdom
