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

// Package report turns the contents of a game asset into a human-readable
// description.
//
// A Dispatcher routes a buffer to the Builder registered for its format.
// Builders never fail: when the underlying Decoder rejects the buffer they
// return a fixed fallback text for their format.
package report

import (
	"github.com/ostafen/smushinfo/internal/format"
	"github.com/ostafen/smushinfo/internal/hash40"
)

// NoInfo is returned for unsupported formats.
const NoInfo = "No info"

// Decoder turns raw file contents into a decoded value.
type Decoder[T any] interface {
	Decode(buf []byte) (T, error)
}

type DecoderFunc[T any] func(buf []byte) (T, error)

func (f DecoderFunc[T]) Decode(buf []byte) (T, error) {
	return f(buf)
}

type Builder interface {
	Build(buf []byte) string
}

type BuilderFunc func(buf []byte) string

func (f BuilderFunc) Build(buf []byte) string {
	return f(buf)
}

type options struct {
	labels    *hash40.Labels
	overrides Decoders
	builders  map[format.Format]Builder
}

type Option func(*options)

// WithLabels sets the labels used to print hashes of parameter and sound
// label files.
func WithLabels(labels *hash40.Labels) Option {
	return func(o *options) {
		o.labels = labels
	}
}

// WithDecoders replaces the default decoder of every non-nil field of d.
func WithDecoders(d Decoders) Option {
	return func(o *options) {
		o.overrides = o.overrides.merge(d)
	}
}

// WithBuilder replaces the whole builder of f.
func WithBuilder(f format.Format, b Builder) Option {
	return func(o *options) {
		o.builders[f] = b
	}
}

// Dispatcher is safe for concurrent use.
type Dispatcher struct {
	builders map[format.Format]Builder
}

func New(opts ...Option) *Dispatcher {
	o := options{builders: make(map[format.Format]Builder)}
	for _, opt := range opts {
		opt(&o)
	}

	dec := DefaultDecoders(o.labels).merge(o.overrides)

	builders := map[format.Format]Builder{
		format.Nutexb:    nutexbBuilder(dec.Nutexb),
		format.Ssbh:      ssbhBuilder(dec.Ssbh),
		format.Prc:       prcBuilder(dec.Prc),
		format.Nus3audio: nus3audioBuilder(dec.Nus3audio),
		format.Sli:       sliBuilder(dec.Sli, o.labels),
		format.Csb:       csbBuilder(dec.Csb),
		format.Sqb:       sqbBuilder(dec.Sqb),
		format.Fnv:       fnvBuilder(dec.Fnv),
		format.Svt:       svtBuilder(dec.Svt),
	}
	for f, b := range o.builders {
		builders[f] = b
	}
	return &Dispatcher{builders: builders}
}

var defaultDispatcher = New()

// Default returns a dispatcher using the built-in decoders and no labels.
func Default() *Dispatcher {
	return defaultDispatcher
}

// Build describes buf as a file of format f.
func (d *Dispatcher) Build(buf []byte, f format.Format) string {
	b, ok := d.builders[f]
	if !ok || b == nil {
		return NoInfo
	}
	return b.Build(buf)
}
