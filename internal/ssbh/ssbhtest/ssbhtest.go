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

// Package ssbhtest lays out SSBH files for tests. Empty strings are written
// as null pointers.
package ssbhtest

import (
	"github.com/ostafen/smushinfo/pkg/reader"
)

// Header writes the container header, the payload magic and the version.
// The payload fields start right after it.
func Header(magic, payload string, major, minor uint16) *reader.Builder {
	return reader.NewBuilder().Str(magic).Zeros(12).Str(payload).U16(major).U16(minor)
}

// PointTo makes the relative pointer at pos refer to the end of b and
// appends s there.
func PointTo(b *reader.Builder, pos int, s string) {
	if s == "" {
		return
	}
	b.PutU64At(pos, uint64(b.Len()-pos))
	b.CStr(s)
}

// Array fills the array header at pos with count elements of stride bytes
// reserved at the end of b, and returns the position of the first one.
func Array(b *reader.Builder, pos, count, stride int) int {
	start := b.Len()
	if count > 0 {
		b.PutU64At(pos, uint64(start-pos))
	}
	b.PutU64At(pos+8, uint64(count))
	b.Zeros(count * stride)
	return start
}

type MeshObject struct {
	Name        string
	SubIndex    uint64
	VertexCount uint32
}

func Mesh(name string, objects ...MeshObject) []byte {
	const objectSize = 208

	b := Header("HBSS", "HSEM", 1, 10)
	fields := b.Len()
	b.Zeros(0x70 + 16)

	start := Array(b, fields+0x70, len(objects), objectSize)
	for i, o := range objects {
		pos := start + i*objectSize
		b.PutU64At(pos+8, o.SubIndex)
		b.PutU32At(pos+24, o.VertexCount)
	}

	PointTo(b, fields, name)
	for i, o := range objects {
		PointTo(b, start+i*objectSize, o.Name)
	}
	return b.Bytes()
}

// Attribute data types.
const (
	Float   = 0x1
	Bool    = 0x2
	Vector4 = 0x5
	String  = 0xB
	Sampler = 0xE
)

// Attr is a material attribute. Value is a float32, a uint32, a [4]float32,
// a string or a []byte, matching Type; a nil Value leaves the data pointer
// null.
type Attr struct {
	ID    uint64
	Type  uint64
	Value any
}

type MatlEntry struct {
	Label  string
	Shader string
	Attrs  []Attr
}

func Matl(entries ...MatlEntry) []byte {
	const (
		entrySize = 32
		attrSize  = 24
	)

	b := Header("HBSS", "LTAM", 1, 6)
	fields := b.Len()
	b.Zeros(16)

	start := Array(b, fields, len(entries), entrySize)
	for i, e := range entries {
		pos := start + i*entrySize

		attrs := Array(b, pos+8, len(e.Attrs), attrSize)
		for j, a := range e.Attrs {
			apos := attrs + j*attrSize
			b.PutU64At(apos, a.ID)
			b.PutU64At(apos+16, a.Type)
			if a.Value == nil {
				continue
			}

			data := b.Len()
			b.PutU64At(apos+8, uint64(data-(apos+8)))
			switch v := a.Value.(type) {
			case float32:
				b.F32(v)
			case uint32:
				b.U32(v)
			case [4]float32:
				b.F32(v[0]).F32(v[1]).F32(v[2]).F32(v[3])
			case string:
				b.Zeros(8)
				PointTo(b, data, v)
			case []byte:
				b.Raw(v)
			default:
				panic("ssbhtest: unsupported attribute value")
			}
		}

		PointTo(b, pos, e.Label)
		PointTo(b, pos+24, e.Shader)
	}
	return b.Bytes()
}

type Interpolation struct {
	Names    [5]string
	Min, Max [3]float32
}

func Hlpb(aims [][7]string, interpolations []Interpolation) []byte {
	const (
		aimSize    = 144
		interpSize = 112
	)

	b := Header("HBSS", "BPLH", 1, 1)
	fields := b.Len()
	b.Zeros(64)

	aimStart := Array(b, fields, len(aims), aimSize)
	interpStart := Array(b, fields+16, len(interpolations), interpSize)

	for i, e := range interpolations {
		pos := interpStart + i*interpSize
		for j, f := range append(e.Min[:], e.Max[:]...) {
			b.PutF32At(pos+88+4*j, f)
		}
	}

	for i, names := range aims {
		for j, n := range names {
			PointTo(b, aimStart+i*aimSize+8*j, n)
		}
	}
	for i, e := range interpolations {
		for j, n := range e.Names {
			PointTo(b, interpStart+i*interpSize+8*j, n)
		}
	}
	return b.Bytes()
}

// Anim lays out an animation with groups empty animation groups, stored
// last in the file.
func Anim(name string, finalFrame float32, groups int) []byte {
	b := Header("SSBH", "MINA", 2, 0)
	fields := b.Len()
	b.Zeros(8).F32(finalFrame).U16(1).U16(0).Zeros(16)

	PointTo(b, fields, name)
	Array(b, fields+16, groups, 24)
	return b.Bytes()
}
