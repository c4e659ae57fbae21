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
	"fmt"

	"github.com/ostafen/smushinfo/internal/hash40"
	"github.com/ostafen/smushinfo/pkg/reader"
)

// SqbMagic starts a sequence file. The header is followed by one absolute
// u32 offset per sequence; a sequence is a u64 name, a u32 sound count and
// that many u64 sound names.
const SqbMagic = "SQB\x00"

type Sequence struct {
	Name   string   `yaml:"name"`
	Sounds []string `yaml:"sounds"`
}

type Sqb struct {
	Version   uint32     `yaml:"version"`
	Sequences []Sequence `yaml:"sequences"`
}

func DecodeSqb(data []byte, labels *hash40.Labels) (*Sqb, error) {
	r := reader.NewByteReader(data)

	version, count, err := readHeader(r, SqbMagic, 4)
	if err != nil {
		return nil, err
	}

	offsets := make([]uint32, count)
	for i := range offsets {
		offsets[i], _ = r.U32()
	}

	f := &Sqb{Version: version, Sequences: make([]Sequence, count)}
	for i, off := range offsets {
		if f.Sequences[i], err = readSequence(r, int(off), labels); err != nil {
			return nil, fmt.Errorf("sqb: sequence %d: %w", i, err)
		}
	}
	return f, nil
}

func readSequence(r *reader.ByteReader, off int, labels *hash40.Labels) (Sequence, error) {
	if err := r.Seek(off); err != nil {
		return Sequence{}, err
	}

	name, err := r.U64()
	if err != nil {
		return Sequence{}, err
	}
	n, err := r.U32()
	if err != nil {
		return Sequence{}, err
	}
	if uint64(n)*8 > uint64(r.Len()) {
		return Sequence{}, fmt.Errorf("%d sounds exceed %d remaining bytes: %w", n, r.Len(), reader.ErrOutOfBounds)
	}

	s := Sequence{
		Name:   labels.Format(hash40.Hash40(name)),
		Sounds: make([]string, n),
	}
	for i := range s.Sounds {
		h, _ := r.U64()
		s.Sounds[i] = labels.Format(hash40.Hash40(h))
	}
	return s, nil
}
