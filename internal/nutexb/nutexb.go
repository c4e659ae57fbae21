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

// Package nutexb reads the footer of Namco texture files.
package nutexb

import (
	"errors"
	"fmt"

	"github.com/ostafen/smushinfo/pkg/reader"
)

const (
	// FooterSize is the size of the footer stored at the end of every texture.
	FooterSize = 0x70

	nameSize = 0x44
)

var (
	ErrTruncated    = errors.New("nutexb: file smaller than footer")
	ErrInvalidMagic = errors.New("nutexb: missing footer magic")
)

// Footer holds the texture metadata. Name keeps the raw footer string,
// which normally starts with " XNT".
type Footer struct {
	Name         string
	Width        uint32
	Height       uint32
	Depth        uint32
	ImageFormat  uint8
	MipCount     uint32
	Alignment    uint32
	LayerCount   uint32
	DataSize     uint32
	MajorVersion uint16
	MinorVersion uint16
}

type File struct {
	Footer Footer
}

// Decode parses the footer at the end of data.
func Decode(data []byte) (*File, error) {
	if len(data) < FooterSize {
		return nil, fmt.Errorf("%w (%d bytes)", ErrTruncated, len(data))
	}

	start := len(data) - FooterSize
	r := reader.NewByteReader(data)

	nameBytes, err := r.Slice(start, nameSize)
	if err != nil {
		return nil, err
	}

	var f Footer
	f.Name = cstring(nameBytes)

	if err := r.Seek(start + nameSize); err != nil {
		return nil, err
	}

	fields := []*uint32{&f.Width, &f.Height, &f.Depth}
	for _, p := range fields {
		if *p, err = r.U32(); err != nil {
			return nil, err
		}
	}

	if f.ImageFormat, err = r.U8(); err != nil {
		return nil, err
	}
	// unknown u8, padding u16, unknown u32
	if err := r.Skip(1 + 2 + 4); err != nil {
		return nil, err
	}

	fields = []*uint32{&f.MipCount, &f.Alignment, &f.LayerCount, &f.DataSize}
	for _, p := range fields {
		if *p, err = r.U32(); err != nil {
			return nil, err
		}
	}

	magic, err := r.Bytes(4)
	if err != nil {
		return nil, err
	}
	if string(magic) != " XET" {
		return nil, ErrInvalidMagic
	}

	if f.MajorVersion, err = r.U16(); err != nil {
		return nil, err
	}
	if f.MinorVersion, err = r.U16(); err != nil {
		return nil, err
	}
	return &File{Footer: f}, nil
}

func cstring(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
