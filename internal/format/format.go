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

// Format identifies a recognized container kind.
// The zero value is Unsupported.
type Format int

const (
	Unsupported Format = iota
	Nutexb
	Ssbh
	Prc
	Nus3audio
	Sli
	Csb
	Sqb
	Fnv
	Svt
)

var formatNames = [...]string{
	Unsupported: "unsupported",
	Nutexb:      "nutexb",
	Ssbh:        "ssbh",
	Prc:         "prc",
	Nus3audio:   "nus3audio",
	Sli:         "sli",
	Csb:         "csb",
	Sqb:         "sqb",
	Fnv:         "fnv",
	Svt:         "svt",
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return formatNames[Unsupported]
	}
	return formatNames[f]
}

// Formats returns every recognized format, in declaration order.
func Formats() []Format {
	return []Format{Nutexb, Ssbh, Prc, Nus3audio, Sli, Csb, Sqb, Fnv, Svt}
}
