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
package reader

import (
	"encoding/binary"
	"math"
)

// Builder assembles little-endian fixtures for decoder tests.
type Builder struct {
	buf []byte
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) Len() int {
	return len(b.buf)
}

func (b *Builder) Bytes() []byte {
	return b.buf
}

func (b *Builder) Raw(p []byte) *Builder {
	b.buf = append(b.buf, p...)
	return b
}

func (b *Builder) Str(s string) *Builder {
	return b.Raw([]byte(s))
}

// CStr appends s followed by a NUL byte.
func (b *Builder) CStr(s string) *Builder {
	return b.Raw(append([]byte(s), 0))
}

func (b *Builder) U8(v uint8) *Builder {
	b.buf = append(b.buf, v)
	return b
}

func (b *Builder) U16(v uint16) *Builder {
	b.buf = binary.LittleEndian.AppendUint16(b.buf, v)
	return b
}

func (b *Builder) U32(v uint32) *Builder {
	b.buf = binary.LittleEndian.AppendUint32(b.buf, v)
	return b
}

func (b *Builder) U64(v uint64) *Builder {
	b.buf = binary.LittleEndian.AppendUint64(b.buf, v)
	return b
}

func (b *Builder) F32(v float32) *Builder {
	return b.U32(math.Float32bits(v))
}

// Zeros appends n zero bytes.
func (b *Builder) Zeros(n int) *Builder {
	b.buf = append(b.buf, make([]byte, n)...)
	return b
}

// Align pads with zeros up to a multiple of n.
func (b *Builder) Align(n int) *Builder {
	if rem := len(b.buf) % n; rem != 0 {
		b.Zeros(n - rem)
	}
	return b
}

func (b *Builder) PutU32At(off int, v uint32) *Builder {
	binary.LittleEndian.PutUint32(b.buf[off:], v)
	return b
}

func (b *Builder) PutU64At(off int, v uint64) *Builder {
	binary.LittleEndian.PutUint64(b.buf[off:], v)
	return b
}

func (b *Builder) PutF32At(off int, v float32) *Builder {
	return b.PutU32At(off, math.Float32bits(v))
}
