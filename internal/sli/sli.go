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

// Package sli reads sound label info tables.
package sli

import (
	"errors"
	"fmt"

	"github.com/ostafen/smushinfo/internal/hash40"
	"github.com/ostafen/smushinfo/pkg/reader"
)

const entrySize = 16

var ErrInvalidMagic = errors.New("sli: invalid magic")

type Entry struct {
	ToneName   hash40.Hash40
	Nus3bankID uint32
	ToneID     uint32
}

type File struct {
	Version uint32
	Entries []Entry
}

func Decode(data []byte) (*File, error) {
	r := reader.NewByteReader(data)

	magic, err := r.Bytes(4)
	if err != nil {
		return nil, err
	}
	if string(magic) != "SLI\x00" {
		return nil, ErrInvalidMagic
	}

	version, err := r.U32()
	if err != nil {
		return nil, err
	}
	count, err := r.U32()
	if err != nil {
		return nil, err
	}
	if uint64(count)*entrySize > uint64(r.Len()) {
		return nil, fmt.Errorf("sli: %d entries exceed %d remaining bytes: %w", count, r.Len(), reader.ErrOutOfBounds)
	}

	f := &File{
		Version: version,
		Entries: make([]Entry, count),
	}
	for i := range f.Entries {
		e := &f.Entries[i]

		name, _ := r.U64()
		e.ToneName = hash40.Hash40(name)
		e.Nus3bankID, _ = r.U32()
		e.ToneID, _ = r.U32()
	}
	return f, nil
}
