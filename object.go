// Copyright 2025 The Jdom Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package jdom

// minTableCap is the initial number of slots in an object's table.
// Capacities are always powers of two so the probe sequence can mask.
const minTableCap = 8

// table is an open-addressed hash table mapping interned keys to values.
// Collisions are resolved by linear probing and the table doubles in size
// once it is three-quarters full, so a probe always terminates.
type table struct {
	count   int
	entries []tableEntry
}

type tableEntry struct {
	key *istr
	val *Value
}

func newTable() *table {
	return &table{entries: make([]tableEntry, minTableCap)}
}

func (t *table) release() {
	for i := range t.entries {
		if e := &t.entries[i]; e.key != nil {
			e.key.release()
			e.val.Release()
		}
	}
	t.entries = nil
	t.count = 0
}

// fnv1a computes the 32-bit FNV-1a hash of s.
func fnv1a(s string) uint32 {
	h := uint32(0x811c9dc5)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= 0x01000193
	}
	return h
}

// findSlot returns the index of the slot holding name, or of the empty slot
// where name would be inserted. The table is never full, so the probe
// terminates.
func findSlot(entries []tableEntry, name string) int {
	mask := uint32(len(entries) - 1)
	i := fnv1a(name) & mask
	for entries[i].key != nil && entries[i].key.s != name {
		i = (i + 1) & mask
	}
	return int(i)
}

// put stores val under key, taking ownership of both references.
// If the key is already present, the previous pair is released.
func (t *table) put(key *istr, val *Value) {
	i := findSlot(t.entries, key.s)
	if e := &t.entries[i]; e.key != nil {
		e.key.release()
		e.val.Release()
		e.key, e.val = key, val
		return
	}
	if t.count >= len(t.entries)*3/4 {
		t.grow()
		i = findSlot(t.entries, key.s)
	}
	t.entries[i] = tableEntry{key, val}
	t.count++
}

// grow doubles the slot count and rehashes every live entry.
// References move with their entries; no counts change.
func (t *table) grow() {
	old := t.entries
	t.entries = make([]tableEntry, 2*len(old))
	for i := range old {
		if e := old[i]; e.key != nil {
			t.entries[findSlot(t.entries, e.key.s)] = e
		}
	}
}

func (t *table) get(name string) *Value {
	e := t.entries[findSlot(t.entries, name)]
	if e.key == nil {
		return nil
	}
	return e.val
}

// first returns the key in the lowest occupied slot, or "", false when
// the table is empty.
func (t *table) first() (string, bool) {
	for i := range t.entries {
		if t.entries[i].key != nil {
			return t.entries[i].key.s, true
		}
	}
	return "", false
}

// next returns the key in the first occupied slot after the one holding
// name, or "", false when name was in the last occupied slot or is absent.
func (t *table) next(name string) (string, bool) {
	i := findSlot(t.entries, name)
	if t.entries[i].key == nil {
		return "", false
	}
	for i++; i < len(t.entries); i++ {
		if t.entries[i].key != nil {
			return t.entries[i].key.s, true
		}
	}
	return "", false
}

// object returns the table backing v, panicking when v is not an object.
func (v *Value) object() *table {
	if v.Kind() != '{' {
		panic(errorPrefix + v.Kind().String() + " value used as object")
	}
	return v.obj
}

// Set adds or replaces the member name of the JSON object v.
//
// Set takes ownership of the reference to x; the caller must not release it
// afterwards. Use SetShared to keep an own reference. A nil x stores the
// JSON null value. If a member named name already exists, its old value is
// released first. Set returns v so that calls may be chained.
//
// Set panics when v is not a JSON object.
func (v *Value) Set(name string, x *Value) *Value {
	t := v.object()
	if x == nil {
		x = Null()
	}
	t.put(makeIstr(name), x)
	return v
}

// SetShared is like Set, but retains x on behalf of the object so that the
// caller's reference remains valid.
func (v *Value) SetShared(name string, x *Value) *Value {
	return v.Set(name, x.Retain())
}

// SetFloat sets the member name of the JSON object v to a JSON number.
func (v *Value) SetFloat(name string, n float64) *Value {
	return v.Set(name, NewNumber(n))
}

// SetString sets the member name of the JSON object v to a JSON string.
func (v *Value) SetString(name, s string) *Value {
	return v.Set(name, NewString(s))
}

// SetBool sets the member name of the JSON object v to a JSON boolean.
func (v *Value) SetBool(name string, b bool) *Value {
	return v.Set(name, Bool(b))
}

// Get returns the value of the member name of the JSON object v, or nil if
// there is no such member. The object keeps its reference; retain the
// result to hold on to it beyond the life of v.
//
// Get panics when v is not a JSON object.
func (v *Value) Get(name string) *Value {
	return v.object().get(name)
}

// Has reports whether the JSON object v has a member called name.
//
// Has panics when v is not a JSON object.
func (v *Value) Has(name string) bool {
	return v.object().get(name) != nil
}

// KeyIs reports whether the JSON object v has a member called name
// of the given kind.
func (v *Value) KeyIs(name string, k Kind) bool {
	return v.object().get(name).Kind() == k
}

// GetFloat returns the member name of the JSON object v as a float64.
// It returns 0 if the member is absent or not a JSON number.
func (v *Value) GetFloat(name string) float64 {
	return v.Get(name).Float()
}

// GetFloatOr is like GetFloat, but returns def when the member is absent.
func (v *Value) GetFloatOr(name string, def float64) float64 {
	if x := v.Get(name); x != nil {
		return x.Float()
	}
	return def
}

// GetString returns the member name of the JSON object v as a string.
// It returns "" if the member is absent or not a JSON string.
func (v *Value) GetString(name string) string {
	return v.Get(name).String()
}

// GetStringOr is like GetString, but returns def when the member is absent.
func (v *Value) GetStringOr(name, def string) string {
	if x := v.Get(name); x != nil {
		return x.String()
	}
	return def
}

// GetBool returns whether the member name of the JSON object v is truthy.
// It returns false if the member is absent.
func (v *Value) GetBool(name string) bool {
	return v.Get(name).Truthy()
}

// GetBoolOr is like GetBool, but returns def when the member is absent.
func (v *Value) GetBoolOr(name string, def bool) bool {
	if x := v.Get(name); x != nil {
		return x.Truthy()
	}
	return def
}

// FirstKey returns the first key of the JSON object v in iteration order,
// which follows the hash table's slots and is therefore arbitrary but
// stable as long as the object is not modified. It returns "", false for
// an empty object. Use NextKey to continue the iteration.
//
// FirstKey panics when v is not a JSON object.
func (v *Value) FirstKey() (string, bool) {
	return v.object().first()
}

// NextKey returns the key following name in the iteration order of the
// JSON object v, or "", false when name was the last key or is not present.
// Adding members during an iteration may cause keys to be skipped or
// visited twice.
//
// NextKey panics when v is not a JSON object.
func (v *Value) NextKey(name string) (string, bool) {
	return v.object().next(name)
}
