// Copyright 2025 The Jdom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jdom

import (
	"sync"
	"sync/atomic"
)

// valuePool recycles Value records between documents.
var valuePool = sync.Pool{
	New: func() any { return new(Value) },
}

// liveValues and liveStrings track records whose reference counts have not
// yet reached zero. They exist to let tests verify that releases balance
// retains exactly, in particular along the parser's error paths.
var (
	liveValues  atomic.Int64
	liveStrings atomic.Int64
)

func newValue(k Kind) *Value {
	liveValues.Add(1)
	v := valuePool.Get().(*Value)
	v.kind = k
	v.refs = 1
	return v
}

func freeValue(v *Value) {
	liveValues.Add(-1)
	*v = Value{}
	valuePool.Put(v)
}

// scratchPool recycles the lexer's string assembly buffers.
var scratchPool = sync.Pool{
	New: func() any {
		s := make([]byte, 0, 256)
		return &s
	},
}

func getScratch() []byte {
	return (*scratchPool.Get().(*[]byte))[:0]
}

func putScratch(b []byte) {
	if cap(b) > 1<<16 { // avoid pinning pathologically large buffers
		return
	}
	scratchPool.Put(&b)
}
