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
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

var (
	ErrOutOfBounds  = errors.New("read out of bounds")
	ErrUnterminated = errors.New("unterminated string")
)

// ByteReader reads little-endian values from an in-memory buffer.
// Offsets are absolute positions in the buffer.
type ByteReader struct {
	data []byte
	off  int
}

func NewByteReader(data []byte) *ByteReader {
	return &ByteReader{data: data}
}

// Size returns the length of the underlying buffer.
func (r *ByteReader) Size() int {
	return len(r.data)
}

// Len returns the number of unread bytes.
func (r *ByteReader) Len() int {
	return len(r.data) - r.off
}

func (r *ByteReader) Offset() int {
	return r.off
}

func (r *ByteReader) Seek(off int) error {
	if off < 0 || off > len(r.data) {
		return fmt.Errorf("%w: seek to %d in %d bytes", ErrOutOfBounds, off, len(r.data))
	}
	r.off = off
	return nil
}

func (r *ByteReader) Skip(n int) error {
	return r.Seek(r.off + n)
}

// Slice returns n bytes starting at the absolute offset off, without moving the reader.
func (r *ByteReader) Slice(off, n int) ([]byte, error) {
	if off < 0 || n < 0 || off > len(r.data) || n > len(r.data)-off {
		return nil, fmt.Errorf("%w: %d bytes at offset %d in %d bytes", ErrOutOfBounds, n, off, len(r.data))
	}
	return r.data[off : off+n], nil
}

func (r *ByteReader) Bytes(n int) ([]byte, error) {
	b, err := r.Slice(r.off, n)
	if err != nil {
		return nil, err
	}
	r.off += n
	return b, nil
}

func (r *ByteReader) U8() (uint8, error) {
	b, err := r.Bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *ByteReader) I8() (int8, error) {
	v, err := r.U8()
	return int8(v), err
}

func (r *ByteReader) U16() (uint16, error) {
	b, err := r.Bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *ByteReader) I16() (int16, error) {
	v, err := r.U16()
	return int16(v), err
}

func (r *ByteReader) U32() (uint32, error) {
	b, err := r.Bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *ByteReader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

func (r *ByteReader) U64() (uint64, error) {
	b, err := r.Bytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *ByteReader) I64() (int64, error) {
	v, err := r.U64()
	return int64(v), err
}

func (r *ByteReader) F32() (float32, error) {
	v, err := r.U32()
	return math.Float32frombits(v), err
}

// CString reads a NUL-terminated string starting at the absolute offset off,
// without moving the reader.
func (r *ByteReader) CString(off int) (string, error) {
	if off < 0 || off >= len(r.data) {
		return "", fmt.Errorf("%w: string at offset %d in %d bytes", ErrOutOfBounds, off, len(r.data))
	}

	end := bytes.IndexByte(r.data[off:], 0)
	if end < 0 {
		return "", fmt.Errorf("%w at offset %d", ErrUnterminated, off)
	}
	return string(r.data[off : off+end]), nil
}
