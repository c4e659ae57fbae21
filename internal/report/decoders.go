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
package report

import (
	"errors"

	"github.com/ostafen/smushinfo/internal/hash40"
	"github.com/ostafen/smushinfo/internal/nus3audio"
	"github.com/ostafen/smushinfo/internal/nutexb"
	"github.com/ostafen/smushinfo/internal/prc"
	"github.com/ostafen/smushinfo/internal/sli"
	"github.com/ostafen/smushinfo/internal/sound"
	"github.com/ostafen/smushinfo/internal/ssbh"
	"github.com/ostafen/smushinfo/internal/tree"
)

// ErrNoDecoder is returned by formats that have no decoder configured.
var ErrNoDecoder = errors.New("no decoder configured")

// Decoders holds one decoder per format. Reports of sound tables (Csb, Sqb,
// Fnv, Svt) embed the YAML encoding of whatever their decoder returns.
type Decoders struct {
	Nutexb    Decoder[*nutexb.File]
	Ssbh      Decoder[ssbh.Data]
	Prc       Decoder[tree.Struct]
	Nus3audio Decoder[*nus3audio.File]
	Sli       Decoder[*sli.File]
	Csb       Decoder[any]
	Sqb       Decoder[any]
	Fnv       Decoder[any]
	Svt       Decoder[any]
}

func DefaultDecoders(labels *hash40.Labels) Decoders {
	return Decoders{
		Nutexb: DecoderFunc[*nutexb.File](nutexb.Decode),
		Ssbh:   DecoderFunc[ssbh.Data](ssbh.Decode),
		Prc: DecoderFunc[tree.Struct](func(buf []byte) (tree.Struct, error) {
			return prc.Decode(buf, labels)
		}),
		Nus3audio: DecoderFunc[*nus3audio.File](nus3audio.Decode),
		Sli:       DecoderFunc[*sli.File](sli.Decode),
		Csb: DecoderFunc[any](func(buf []byte) (any, error) {
			return sound.DecodeCsb(buf, labels)
		}),
		Sqb: DecoderFunc[any](func(buf []byte) (any, error) {
			return sound.DecodeSqb(buf, labels)
		}),
		Fnv: DecoderFunc[any](func(buf []byte) (any, error) {
			return sound.DecodeFnv(buf)
		}),
		Svt: DecoderFunc[any](func(buf []byte) (any, error) {
			return sound.DecodeSvt(buf, labels)
		}),
	}
}

func (d Decoders) merge(o Decoders) Decoders {
	d.Nutexb = pick(d.Nutexb, o.Nutexb)
	d.Ssbh = pick(d.Ssbh, o.Ssbh)
	d.Prc = pick(d.Prc, o.Prc)
	d.Nus3audio = pick(d.Nus3audio, o.Nus3audio)
	d.Sli = pick(d.Sli, o.Sli)
	d.Csb = pick(d.Csb, o.Csb)
	d.Sqb = pick(d.Sqb, o.Sqb)
	d.Fnv = pick(d.Fnv, o.Fnv)
	d.Svt = pick(d.Svt, o.Svt)
	return d
}

func pick[T any](def, override Decoder[T]) Decoder[T] {
	if override != nil {
		return override
	}
	return def
}

func decode[T any](dec Decoder[T], buf []byte) (T, error) {
	if dec == nil {
		var zero T
		return zero, ErrNoDecoder
	}
	return dec.Decode(buf)
}
