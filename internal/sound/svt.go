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
	SvtMagic     = "SVT\x00"
	svtEntrySize = 12
)

type SvtEntry struct {
	Name   string  `yaml:"name"`
	Volume float32 `yaml:"volume"`
}

type Svt struct {
	Version uint32     `yaml:"version"`
	Entries []SvtEntry `yaml:"entries"`
}

func DecodeSvt(data []byte, labels *hash40.Labels) (*Svt, error) {
	r := reader.NewByteReader(data)

	version, count, err := readHeader(r, SvtMagic, svtEntrySize)
	if err != nil {
		return nil, err
	}

	f := &Svt{Version: version, Entries: make([]SvtEntry, count)}
	for i := range f.Entries {
		name, _ := r.U64()
		f.Entries[i].Name = labels.Format(hash40.Hash40(name))
		f.Entries[i].Volume, _ = r.F32()
	}
	return f, nil
}
