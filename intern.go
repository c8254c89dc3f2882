// Copyright 2025 The Jdom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jdom

import "strings"

// istr is a reference-counted string. Object keys and string values share
// istr records when they come out of the same interning Pool, so that a
// document with many repeated keys stores each key once.
type istr struct {
	s    string
	refs int32
}

func makeIstr(s string) *istr {
	liveStrings.Add(1)
	return &istr{s: s, refs: 1}
}

func (i *istr) retain() *istr {
	if i.refs <= 0 {
		panic("jdom: retain of freed string")
	}
	i.refs++
	return i
}

func (i *istr) release() {
	if i.refs <= 0 {
		panic("jdom: release of freed string")
	}
	if i.refs--; i.refs == 0 {
		liveStrings.Add(-1)
	}
}

// Pool deduplicates strings across one or more parsed documents.
// Interning the same text twice yields the same record with its reference
// count bumped. The zero Pool is empty and ready for use.
//
// The pool holds its entries in a binary search tree kept balanced with
// red-black colouring, stored in a flat slice with indices for links.
// The pool never removes entries; records it hands out stay reachable for
// the pool's lifetime even when all outside references are released.
//
// A Pool must not be used from multiple goroutines at the same time.
type Pool struct {
	nodes []poolNode
	root  int32

	// Unbalanced disables the red-black fix-up after inserts, degrading
	// the tree to a plain BST. Sorted input then produces a linked list.
	// Useful only for comparing lookup behaviour; leave it false.
	Unbalanced bool
}

type poolNode struct {
	str                 *istr
	parent, left, right int32
	red                 bool
}

// Len returns the number of distinct strings held by the pool.
func (p *Pool) Len() int { return len(p.nodes) }

// intern returns the pool's record for s, creating it on first sight.
// The returned reference belongs to the caller.
func (p *Pool) intern(s string) *istr {
	if len(p.nodes) == 0 {
		n := p.newNode(s, -1)
		p.root = n
		p.nodes[n].red = false
		return p.nodes[n].str.retain()
	}
	i := p.root
	for {
		cmp := strings.Compare(s, p.nodes[i].str.s)
		switch {
		case cmp == 0:
			return p.nodes[i].str.retain()
		case cmp < 0:
			if p.nodes[i].left < 0 {
				n := p.newNode(s, i)
				p.nodes[i].left = n
				p.fix(n)
				return p.nodes[n].str.retain()
			}
			i = p.nodes[i].left
		default:
			if p.nodes[i].right < 0 {
				n := p.newNode(s, i)
				p.nodes[i].right = n
				p.fix(n)
				return p.nodes[n].str.retain()
			}
			i = p.nodes[i].right
		}
	}
}

// newNode appends a red leaf holding s and returns its index.
// The pool itself owns the istr's initial reference.
func (p *Pool) newNode(s string, parent int32) int32 {
	p.nodes = append(p.nodes, poolNode{
		str:    makeIstr(s),
		parent: parent,
		left:   -1,
		right:  -1,
		red:    true,
	})
	return int32(len(p.nodes) - 1)
}

// fix restores the red-black invariants after inserting the red node n:
// the root is black and no red node has a red parent.
func (p *Pool) fix(n int32) {
	if p.Unbalanced {
		return
	}
	for {
		parent := p.nodes[n].parent
		if parent < 0 {
			p.nodes[n].red = false
			return
		}
		if !p.nodes[parent].red {
			return
		}
		// A red parent is never the root, so the grandparent exists.
		grand := p.nodes[parent].parent
		uncle := p.nodes[grand].left
		if uncle == parent {
			uncle = p.nodes[grand].right
		}
		if uncle >= 0 && p.nodes[uncle].red {
			p.nodes[parent].red = false
			p.nodes[uncle].red = false
			p.nodes[grand].red = true
			n = grand
			continue
		}
		// Rotate an inner grandchild out to the edge first.
		if n == p.nodes[parent].right && parent == p.nodes[grand].left {
			p.rotateLeft(parent)
			n, parent = parent, n
		} else if n == p.nodes[parent].left && parent == p.nodes[grand].right {
			p.rotateRight(parent)
			n, parent = parent, n
		}
		if n == p.nodes[parent].left {
			p.rotateRight(grand)
		} else {
			p.rotateLeft(grand)
		}
		p.nodes[parent].red = false
		p.nodes[grand].red = true
		return
	}
}

func (p *Pool) rotateLeft(n int32) {
	r := p.nodes[n].right
	parent := p.nodes[n].parent
	p.nodes[n].right = p.nodes[r].left
	if p.nodes[r].left >= 0 {
		p.nodes[p.nodes[r].left].parent = n
	}
	p.nodes[r].left = n
	p.nodes[n].parent = r
	p.nodes[r].parent = parent
	p.relink(parent, n, r)
}

func (p *Pool) rotateRight(n int32) {
	l := p.nodes[n].left
	parent := p.nodes[n].parent
	p.nodes[n].left = p.nodes[l].right
	if p.nodes[l].right >= 0 {
		p.nodes[p.nodes[l].right].parent = n
	}
	p.nodes[l].right = n
	p.nodes[n].parent = l
	p.nodes[l].parent = parent
	p.relink(parent, n, l)
}

// relink points parent's child link (or the root) from old to new.
func (p *Pool) relink(parent, old, new int32) {
	switch {
	case parent < 0:
		p.root = new
	case p.nodes[parent].left == old:
		p.nodes[parent].left = new
	default:
		p.nodes[parent].right = new
	}
}
