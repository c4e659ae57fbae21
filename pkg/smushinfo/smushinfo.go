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

// Package smushinfo describes Smash Ultimate asset files.
//
// Files are classified either by extension or by their magic numbers and
// then described by the matching report builder. Every function returns
// text and never fails: unknown files are reported as "No info".
package smushinfo

import (
	"io"
	"path"
	"strings"

	"github.com/ostafen/smushinfo/internal/format"
	"github.com/ostafen/smushinfo/internal/report"
)

const (
	NoInfo       = report.NoInfo
	Folder       = "Folder"
	CouldNotOpen = "Could not open file"
)

// FromExtension describes buf as a file with extension ext (without the
// leading dot).
func FromExtension(buf []byte, ext string) string {
	return FromFormat(buf, format.FromExtension(ext))
}

// FromMagic describes buf according to its magic numbers.
func FromMagic(buf []byte) string {
	return FromFormat(buf, format.FromMagic(buf))
}

func FromFormat(buf []byte, f format.Format) string {
	return report.Default().Build(buf, f)
}

// OpenFunc returns the contents of the file at path, typically reading it out
// of an archive.
type OpenFunc func(path string) (io.ReadCloser, error)

// FromPath describes the entry of an archive at p. Paths without extension
// are folders and files with an unknown extension are never opened.
func FromPath(p string, open OpenFunc) string {
	ext, ok := Extension(p)
	if !ok {
		return Folder
	}

	f := format.FromExtension(ext)
	if f == format.Unsupported {
		return NoInfo
	}

	rc, err := open(p)
	if err != nil {
		return CouldNotOpen
	}
	defer rc.Close()

	buf, err := io.ReadAll(rc)
	if err != nil {
		return CouldNotOpen
	}
	return FromFormat(buf, f)
}

// Extension returns the extension of the last element of p, without the dot.
// ok is false when the element has no dot at all; "model." has an empty
// extension. Dot files such as ".hidden" have no extension.
func Extension(p string) (ext string, ok bool) {
	base := path.Base(strings.TrimRight(p, "/"))
	if base == "." || base == ".." {
		return "", false
	}

	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return "", false
	}
	return base[i+1:], true
}
