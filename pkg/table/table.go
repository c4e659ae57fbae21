// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package table

const (
	// TableSize is the number of slots in the marker table, one per uint16 hash.
	TableSize = 1 << 16
)

// PrefixTable maps short byte keys (magic numbers) to values and answers
// the question "which stored keys are prefixes of this buffer?".
//
// Every prefix of every stored key is hashed into a fixed marker table, so a
// walk over a buffer stops at the first byte that no stored key continues with.
// Markers may collide; the elems map is the source of truth.
type PrefixTable[T any] struct {
	table [TableSize]byte

	elems     map[string]T
	maxKeyLen int
}

const (
	// none: no stored key has a prefix hashing here.
	none = iota
	// presentMarker: some stored key continues past a prefix hashing here.
	presentMarker
	// elemMarker: a complete stored key hashes here.
	elemMarker
)

func New[T any]() *PrefixTable[T] {
	return &PrefixTable[T]{
		elems: make(map[string]T),
	}
}

func hashStep(h uint16, b byte) uint16 {
	return (h << 2) + uint16(b)
}

// Insert stores v under key, replacing any previous value.
func (t *PrefixTable[T]) Insert(key []byte, v T) {
	var h uint16
	for _, b := range key {
		h = hashStep(h, b)
		t.table[h] = max(t.table[h], presentMarker)
	}
	t.table[h] = elemMarker
	t.elems[string(key)] = v
	t.maxKeyLen = max(t.maxKeyLen, len(key))
}

func (t *PrefixTable[T]) Get(key []byte) (T, bool) {
	v, found := t.elems[string(key)]
	return v, found
}

// Walk calls onMatch for every stored key that is a prefix of data, shortest
// key first. It stops as soon as onMatch returns true or data cannot extend any
// stored key.
//
// With "NUS3" and "paracobn" stored, walking "paracobn...." calls onMatch once,
// for "paracobn", while walking "NUS3...." calls it once, for "NUS3".
func (t *PrefixTable[T]) Walk(data []byte, onMatch func(T) bool) {
	var h uint16
	for i, b := range data {
		h = hashStep(h, b)

		switch t.table[h] {
		case none:
			return
		case elemMarker:
			if v, ok := t.elems[string(data[:i+1])]; ok && onMatch(v) {
				return
			}
		}
	}
}

// Size returns the number of stored keys.
func (t *PrefixTable[T]) Size() int {
	return len(t.elems)
}

// MaxKeyLen returns the length of the longest stored key. Walks never need to
// look further into a buffer than this.
func (t *PrefixTable[T]) MaxKeyLen() int {
	return t.maxKeyLen
}
