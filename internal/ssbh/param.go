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
package ssbh

import "fmt"

type paramRange struct {
	name  string
	first uint64
	count uint64
}

// Material parameter ids come in numbered families.
var paramRanges = []paramRange{
	{"Texture", 0x5C, 16},
	{"Sampler", 0x6C, 16},
	{"CustomVector", 0x98, 20},
	{"CustomFloat", 0xC0, 20},
	{"CustomBoolean", 0xE8, 16},
	{"RasterizerState", 0xF9, 1},
	{"BlendState", 0x118, 1},
}

// ParamID returns the name of a material parameter id, e.g. "CustomVector0",
// or its hex value when the id is not known.
func ParamID(id uint64) string {
	for _, r := range paramRanges {
		if id >= r.first && id < r.first+r.count {
			return fmt.Sprintf("%s%d", r.name, id-r.first)
		}
	}
	return fmt.Sprintf("0x%X", id)
}
