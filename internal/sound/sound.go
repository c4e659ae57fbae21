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

// Package sound reads the flat sound tables that sit next to the game's
// audio banks: common sound tables (csb), sound sequences (sqb), volume by
// fighter count (fnv) and sound volume tables (svt).
//
// Every table starts with a 4-byte magic, a u32 version and a u32 entry
// count, all little-endian. Decoded tables carry yaml tags; tone and
// sequence names are hash40 values rendered through a label table.
package sound

import (
	"errors"
	"fmt"

	"github.com/ostafen/smushinfo/pkg/reader"
)

var ErrInvalidMagic = errors.New("sound: invalid magic")

// readHeader checks magic and returns the version and entry count. It fails
// when count entries of entrySize bytes cannot follow the header.
func readHeader(r *reader.ByteReader, magic string, entrySize int) (version uint32, count int, err error) {
	m, err := r.Bytes(4)
	if err != nil {
		return 0, 0, err
	}
	if string(m) != magic {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidMagic, m)
	}

	if version, err = r.U32(); err != nil {
		return 0, 0, err
	}
	n, err := r.U32()
	if err != nil {
		return 0, 0, err
	}
	if uint64(n)*uint64(entrySize) > uint64(r.Len()) {
		return 0, 0, fmt.Errorf("sound: %d entries exceed %d remaining bytes: %w", n, r.Len(), reader.ErrOutOfBounds)
	}
	return version, int(n), nil
}
