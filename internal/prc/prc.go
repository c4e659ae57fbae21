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

// Package prc decodes "paracobn" parameter files into a tree.Struct.
//
// Layout, all little-endian:
//
//	0x00 "paracobn"
//	0x08 u32 hash table size in bytes
//	0x0C u32 reference table size in bytes
//	0x10 hash table (u64 per entry), reference table, then the root struct
//
// Every param starts with a one-byte type tag. List children are addressed
// relative to the list tag, struct members through (hash index, offset)
// pairs stored in the reference table.
package prc

import (
	"errors"
	"fmt"

	"github.com/ostafen/smushinfo/internal/hash40"
	"github.com/ostafen/smushinfo/internal/tree"
	"github.com/ostafen/smushinfo/pkg/reader"
)

const Magic = "paracobn"

// Param type tags.
const (
	TypeBool   = 0x01
	TypeI8     = 0x02
	TypeU8     = 0x03
	TypeI16    = 0x04
	TypeU16    = 0x05
	TypeI32    = 0x06
	TypeU32    = 0x07
	TypeFloat  = 0x08
	TypeHash40 = 0x09
	TypeString = 0x0A
	TypeList   = 0x0B
	TypeStruct = 0x0C
)

// MaxDepth bounds nesting so that offsets pointing back into a parent cannot
// recurse forever.
const MaxDepth = 256

var (
	ErrInvalidMagic  = errors.New("prc: invalid magic")
	ErrRootNotStruct = errors.New("prc: root param is not a struct")
	ErrUnknownType   = errors.New("prc: unknown param type")
	ErrTooDeep       = errors.New("prc: params nested too deeply")
	ErrTooManyParams = errors.New("prc: too many params for file size")
	ErrHashIndex     = errors.New("prc: hash index out of range")
)

type decoder struct {
	r      *reader.ByteReader
	labels *hash40.Labels

	hashes   []hash40.Hash40
	refStart int

	// Every param occupies at least one byte of its own, so a well-formed
	// file never holds more params than bytes. Members sharing a child are
	// decoded once per reference and each visit is charged.
	budget int
}

// Decode parses data. Hashes are rendered through labels when known; labels may be nil.
func Decode(data []byte, labels *hash40.Labels) (tree.Struct, error) {
	d := &decoder{
		r:      reader.NewByteReader(data),
		labels: labels,
		budget: len(data),
	}

	magic, err := d.r.Bytes(len(Magic))
	if err != nil {
		return tree.Struct{}, err
	}
	if string(magic) != Magic {
		return tree.Struct{}, ErrInvalidMagic
	}

	hashTableSize, err := d.r.U32()
	if err != nil {
		return tree.Struct{}, err
	}
	refTableSize, err := d.r.U32()
	if err != nil {
		return tree.Struct{}, err
	}

	hashTable, err := d.r.Bytes(int(hashTableSize))
	if err != nil {
		return tree.Struct{}, fmt.Errorf("prc: hash table: %w", err)
	}
	hr := reader.NewByteReader(hashTable)
	d.hashes = make([]hash40.Hash40, 0, len(hashTable)/8)
	for hr.Len() >= 8 {
		h, _ := hr.U64()
		d.hashes = append(d.hashes, hash40.Hash40(h))
	}

	d.refStart = d.r.Offset()
	if err := d.r.Skip(int(refTableSize)); err != nil {
		return tree.Struct{}, fmt.Errorf("prc: reference table: %w", err)
	}

	rootPos := d.r.Offset()
	typ, err := d.r.U8()
	if err != nil {
		return tree.Struct{}, err
	}
	if typ != TypeStruct {
		return tree.Struct{}, ErrRootNotStruct
	}

	root, err := d.readParam(rootPos, 0)
	if err != nil {
		return tree.Struct{}, err
	}
	return root.(tree.Struct), nil
}

func (d *decoder) readParam(pos int, depth int) (tree.Node, error) {
	if depth > MaxDepth {
		return nil, ErrTooDeep
	}
	if d.budget <= 0 {
		return nil, ErrTooManyParams
	}
	d.budget--
	if err := d.r.Seek(pos); err != nil {
		return nil, err
	}

	typ, err := d.r.U8()
	if err != nil {
		return nil, err
	}

	switch typ {
	case TypeBool:
		v, err := d.r.U8()
		return tree.BoolValue(v != 0), err
	case TypeI8:
		v, err := d.r.I8()
		return tree.I8Value(v), err
	case TypeU8:
		v, err := d.r.U8()
		return tree.U8Value(v), err
	case TypeI16:
		v, err := d.r.I16()
		return tree.I16Value(v), err
	case TypeU16:
		v, err := d.r.U16()
		return tree.U16Value(v), err
	case TypeI32:
		v, err := d.r.I32()
		return tree.I32Value(v), err
	case TypeU32:
		v, err := d.r.U32()
		return tree.U32Value(v), err
	case TypeFloat:
		v, err := d.r.F32()
		return tree.FloatValue(v), err
	case TypeHash40:
		h, err := d.hashAt()
		if err != nil {
			return nil, err
		}
		return tree.HashValue(d.labels.Format(h)), nil
	case TypeString:
		off, err := d.r.U32()
		if err != nil {
			return nil, err
		}
		s, err := d.r.CString(d.refStart + int(off))
		return tree.StringValue(s), err
	case TypeList:
		return d.readList(pos, depth)
	case TypeStruct:
		return d.readStruct(pos, depth)
	}
	return nil, fmt.Errorf("%w 0x%02x at offset %d", ErrUnknownType, typ, pos)
}

func (d *decoder) readList(pos int, depth int) (tree.Node, error) {
	count, err := d.r.U32()
	if err != nil {
		return nil, err
	}
	if uint64(count)*4 > uint64(d.r.Len()) {
		return nil, fmt.Errorf("prc: list of %d items at offset %d: %w", count, pos, reader.ErrOutOfBounds)
	}

	offsets := make([]uint32, count)
	for i := range offsets {
		offsets[i], _ = d.r.U32()
	}

	items := make([]tree.Node, count)
	for i, off := range offsets {
		if items[i], err = d.readParam(pos+int(off), depth+1); err != nil {
			return nil, err
		}
	}
	return tree.List{Items: items}, nil
}

func (d *decoder) readStruct(pos int, depth int) (tree.Node, error) {
	count, err := d.r.U32()
	if err != nil {
		return nil, err
	}
	refOff, err := d.r.U32()
	if err != nil {
		return nil, err
	}

	pairs, err := d.r.Slice(d.refStart+int(refOff), int(count)*8)
	if err != nil {
		return nil, fmt.Errorf("prc: struct of %d members at offset %d: %w", count, pos, err)
	}
	pr := reader.NewByteReader(pairs)

	entries := make([]tree.Entry, count)
	for i := range entries {
		idx, _ := pr.U32()
		off, _ := pr.U32()

		if int(idx) >= len(d.hashes) {
			return nil, fmt.Errorf("%w: %d", ErrHashIndex, idx)
		}

		node, err := d.readParam(pos+int(off), depth+1)
		if err != nil {
			return nil, err
		}
		entries[i] = tree.Field(d.labels.Format(d.hashes[idx]), node)
	}
	return tree.Struct{Entries: entries}, nil
}

func (d *decoder) hashAt() (hash40.Hash40, error) {
	idx, err := d.r.U32()
	if err != nil {
		return 0, err
	}
	if int(idx) >= len(d.hashes) {
		return 0, fmt.Errorf("%w: %d", ErrHashIndex, idx)
	}
	return d.hashes[idx], nil
}
