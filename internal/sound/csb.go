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
	"github.com/ostafen/smushinfo/internal/hash40"
	"github.com/ostafen/smushinfo/pkg/reader"
)

const (
	CsbMagic     = "CSB\x00"
	csbEntrySize = 16
)

type CsbEntry struct {
	Name     string  `yaml:"name"`
	Category uint32  `yaml:"category"`
	Volume   float32 `yaml:"volume"`
}

// Csb is a common sound table: one category and base volume per tone.
type Csb struct {
	Version uint32     `yaml:"version"`
	Entries []CsbEntry `yaml:"entries"`
}

func DecodeCsb(data []byte, labels *hash40.Labels) (*Csb, error) {
	r := reader.NewByteReader(data)

	version, count, err := readHeader(r, CsbMagic, csbEntrySize)
	if err != nil {
		return nil, err
	}

	f := &Csb{Version: version, Entries: make([]CsbEntry, count)}
	for i := range f.Entries {
		e := &f.Entries[i]

		name, _ := r.U64()
		e.Name = labels.Format(hash40.Hash40(name))
		e.Category, _ = r.U32()
		e.Volume, _ = r.F32()
	}
	return f, nil
}
