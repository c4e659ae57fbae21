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

// Package nus3audio reads Namco audio containers.
package nus3audio

import (
	"errors"
	"fmt"

	"github.com/ostafen/smushinfo/pkg/reader"
)

var (
	ErrInvalidMagic = errors.New("nus3audio: invalid magic")
	ErrMissingChunk = errors.New("nus3audio: missing chunk")
)

type AudioFile struct {
	ID   uint32
	Name string
	Data []byte
}

// Filename returns the name of the file with the extension matching its
// encoding.
func (f *AudioFile) Filename() string {
	if len(f.Data) >= 4 && string(f.Data[:4]) == "OPUS" {
		return f.Name + ".lopus"
	}
	return f.Name + ".idsp"
}

type File struct {
	Files []AudioFile
}

type chunk struct {
	off  int
	size int
}

// Decode parses the index chunks of a container. File data slices alias data.
func Decode(data []byte) (*File, error) {
	r := reader.NewByteReader(data)

	magic, err := r.Bytes(4)
	if err != nil {
		return nil, err
	}
	if string(magic) != "NUS3" {
		return nil, ErrInvalidMagic
	}
	if err := r.Skip(4); err != nil {
		return nil, err
	}

	index, err := r.Bytes(8)
	if err != nil {
		return nil, err
	}
	if string(index) != "AUDIINDX" {
		return nil, fmt.Errorf("%w: AUDIINDX", ErrMissingChunk)
	}

	indexSize, err := r.U32()
	if err != nil {
		return nil, err
	}
	count, err := r.U32()
	if err != nil {
		return nil, err
	}
	if indexSize < 4 {
		return nil, fmt.Errorf("nus3audio: AUDIINDX chunk of %d bytes", indexSize)
	}
	if err := r.Skip(int(indexSize) - 4); err != nil {
		return nil, err
	}

	chunks := make(map[string]chunk)
	for r.Len() >= 8 {
		tag, _ := r.Bytes(4)
		size, _ := r.U32()

		// The last chunk (PACK) may be truncated; only the bytes present count.
		truncated := uint64(size) > uint64(r.Len())
		c := chunk{off: r.Offset(), size: min(int(size), r.Len())}
		if _, ok := chunks[string(tag)]; !ok {
			chunks[string(tag)] = c
		}
		if truncated {
			break
		}
		_ = r.Skip(c.size)
	}

	adof, ok := chunks["ADOF"]
	if !ok {
		return nil, fmt.Errorf("%w: ADOF", ErrMissingChunk)
	}
	if uint64(count)*8 > uint64(adof.size) {
		return nil, fmt.Errorf("nus3audio: %d files do not fit in ADOF chunk of %d bytes", count, adof.size)
	}

	files := make([]AudioFile, count)
	for i := range files {
		files[i].ID = uint32(i)

		if c, ok := chunks["TNID"]; ok {
			if files[i].ID, err = u32At(r, c.off+4*i); err != nil {
				return nil, err
			}
		}

		if c, ok := chunks["NMOF"]; ok {
			nameOff, err := u32At(r, c.off+4*i)
			if err != nil {
				return nil, err
			}
			if files[i].Name, err = r.CString(int(nameOff)); err != nil {
				return nil, err
			}
		}

		off, err := u32At(r, adof.off+8*i)
		if err != nil {
			return nil, err
		}
		size, err := u32At(r, adof.off+8*i+4)
		if err != nil {
			return nil, err
		}
		if files[i].Data, err = r.Slice(int(off), int(size)); err != nil {
			return nil, fmt.Errorf("file %d: %w", i, err)
		}
	}
	return &File{Files: files}, nil
}

func u32At(r *reader.ByteReader, off int) (uint32, error) {
	if err := r.Seek(off); err != nil {
		return 0, err
	}
	return r.U32()
}
