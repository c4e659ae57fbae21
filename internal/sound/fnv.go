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
package sound

import (
	"github.com/ostafen/smushinfo/pkg/reader"
)

const (
	FnvMagic     = "FNV\x00"
	fnvEntrySize = 8
)

type FnvEntry struct {
	FighterCount uint32  `yaml:"fighter_count"`
	Volume       float32 `yaml:"volume"`
}

// Fnv scales the master volume by the number of fighters on stage.
type Fnv struct {
	Version uint32     `yaml:"version"`
	Entries []FnvEntry `yaml:"entries"`
}

func DecodeFnv(data []byte) (*Fnv, error) {
	r := reader.NewByteReader(data)

	version, count, err := readHeader(r, FnvMagic, fnvEntrySize)
	if err != nil {
		return nil, err
	}

	f := &Fnv{Version: version, Entries: make([]FnvEntry, count)}
	for i := range f.Entries {
		f.Entries[i].FighterCount, _ = r.U32()
		f.Entries[i].Volume, _ = r.F32()
	}
	return f, nil
}
