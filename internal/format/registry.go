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
package format

import (
	"bytes"
	"fmt"

	"github.com/ostafen/smushinfo/pkg/table"
)

type endSignature struct {
	pattern []byte
	format  Format
}

// Registry resolves formats from file extensions and buffer contents.
// A Registry is immutable once built and safe for concurrent use.
type Registry struct {
	headers []FileHeader
	exts    map[string]Format

	start *table.PrefixTable[Format]
	end   []endSignature
}

var defaultRegistry = MustBuildRegistry(DefaultHeaders...)

// Default returns the registry built from DefaultHeaders.
func Default() *Registry {
	return defaultRegistry
}

func BuildRegistry(headers ...FileHeader) (*Registry, error) {
	r := &Registry{
		headers: headers,
		exts:    make(map[string]Format),
		start:   table.New[Format](),
	}

	for _, hdr := range headers {
		if hdr.Format == Unsupported {
			return nil, fmt.Errorf("header %q: cannot register the unsupported format", hdr.Description)
		}

		for _, ext := range hdr.Exts {
			if f, ok := r.exts[ext]; ok {
				return nil, fmt.Errorf("extension %q already registered for %s", ext, f)
			}
			r.exts[ext] = hdr.Format
		}

		for _, sig := range hdr.Signatures {
			if err := r.addSignature(hdr.Format, sig); err != nil {
				return nil, err
			}
		}
	}
	return r, nil
}

func MustBuildRegistry(headers ...FileHeader) *Registry {
	r, err := BuildRegistry(headers...)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) addSignature(f Format, sig Signature) error {
	switch sig.Anchor {
	case FromStart:
		if len(sig.Pattern) < MinMagicSize {
			return fmt.Errorf("%s: start signature %q is shorter than %d bytes", f, sig.Pattern, MinMagicSize)
		}
		if other, ok := r.start.Get(sig.Pattern); ok {
			return fmt.Errorf("%s: signature %q already registered for %s", f, sig.Pattern, other)
		}
		r.start.Insert(sig.Pattern, f)
	case FromEnd:
		if len(sig.Pattern) == 0 || len(sig.Pattern) > EndMagicOffset {
			return fmt.Errorf("%s: end signature %q must be 1 to %d bytes long", f, sig.Pattern, EndMagicOffset)
		}
		for _, e := range r.end {
			if bytes.Equal(e.pattern, sig.Pattern) {
				return fmt.Errorf("%s: signature %q already registered for %s", f, sig.Pattern, e.format)
			}
		}
		r.end = append(r.end, endSignature{pattern: sig.Pattern, format: f})
	default:
		return fmt.Errorf("%s: unknown signature anchor %d", f, sig.Anchor)
	}
	return nil
}

// FromExtension performs an exact, case-sensitive lookup of ext (without the leading dot).
func (r *Registry) FromExtension(ext string) Format {
	return r.exts[ext]
}

// FromMagic sniffs the format from the contents of data.
//
// Start-anchored signatures are walked shortest first, so a 4-byte match
// always wins over an 8-byte one. End-anchored signatures are only tried
// when no start signature matched. Windows that do not fit in data are skipped.
func (r *Registry) FromMagic(data []byte) Format {
	if len(data) < MinMagicSize {
		return Unsupported
	}

	head := data[:min(len(data), r.start.MaxKeyLen())]

	found := Unsupported
	r.start.Walk(head, func(f Format) bool {
		found = f
		return true
	})
	if found != Unsupported {
		return found
	}

	if len(data) < EndMagicOffset {
		return Unsupported
	}

	tail := data[len(data)-EndMagicOffset:]
	for _, sig := range r.end {
		if bytes.HasPrefix(tail, sig.pattern) {
			return sig.format
		}
	}
	return Unsupported
}

// Headers returns the registered headers in declaration order.
func (r *Registry) Headers() []FileHeader {
	return r.headers
}

// Lookup returns the header registered for f.
func (r *Registry) Lookup(f Format) (FileHeader, bool) {
	for _, hdr := range r.headers {
		if hdr.Format == f {
			return hdr, true
		}
	}
	return FileHeader{}, false
}

// Signatures returns the number of registered signatures.
func (r *Registry) Signatures() int {
	return r.start.Size() + len(r.end)
}

func FromExtension(ext string) Format {
	return defaultRegistry.FromExtension(ext)
}

func FromMagic(data []byte) Format {
	return defaultRegistry.FromMagic(data)
}
