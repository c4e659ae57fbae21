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
	"encoding/hex"
	"strconv"
)

// Anchor tells where a signature is matched inside a buffer.
type Anchor int

const (
	// FromStart signatures are matched at offset 0.
	FromStart Anchor = iota
	// FromEnd signatures are matched EndMagicOffset bytes before the end of the buffer.
	FromEnd
)

func (a Anchor) String() string {
	if a == FromEnd {
		return "end"
	}
	return "start"
}

const (
	// MinMagicSize is the smallest buffer the content classifier inspects.
	MinMagicSize = 4

	// EndMagicOffset is the distance from the end of the buffer where
	// end-anchored signatures begin.
	EndMagicOffset = 8
)

type Signature struct {
	Pattern []byte
	Anchor  Anchor
}

// String prints the pattern in hex. End-anchored patterns are prefixed with
// their offset from the end, e.g. "-8:20584554".
func (s Signature) String() string {
	p := hex.EncodeToString(s.Pattern)
	if s.Anchor == FromEnd {
		return "-" + strconv.Itoa(EndMagicOffset) + ":" + p
	}
	return p
}

func StartSig(p string) Signature {
	return Signature{Pattern: []byte(p), Anchor: FromStart}
}

func EndSig(p string) Signature {
	return Signature{Pattern: []byte(p), Anchor: FromEnd}
}

type FileHeader struct {
	Format      Format
	Description string
	Exts        []string // File extensions, e.g., "nutexb", "numdlb"
	Signatures  []Signature
}

// DefaultHeaders is the static extension and signature table.
// Signatures are tested in the order they are declared here.
var DefaultHeaders = []FileHeader{
	{
		Format:      Nus3audio,
		Description: "Namco audio container",
		Exts:        []string{"nus3audio"},
		Signatures:  []Signature{StartSig("NUS3")},
	},
	{
		Format:      Ssbh,
		Description: "SSBH model, skeleton, material and animation family",
		Exts: []string{
			"nuhlpb",
			"numatb",
			"numdlb",
			"nusrcmdlb",
			"numshb",
			"nusktb",
			"nuanmb",
			"nurpdb",
			"nufxlb",
			"nushdb",
		},
		// On-disk files store the magic byte-swapped.
		Signatures: []Signature{StartSig("SSBH"), StartSig("HBSS")},
	},
	{
		Format:      Csb,
		Description: "Common sound table",
		Exts:        []string{"csb"},
		Signatures:  []Signature{StartSig("CSB\x00")},
	},
	{
		Format:      Sli,
		Description: "Sound label info",
		Exts:        []string{"sli"},
		Signatures:  []Signature{StartSig("SLI\x00")},
	},
	{
		Format:      Fnv,
		Description: "Volume by fighter count",
		Exts:        []string{"fnv"},
		Signatures:  []Signature{StartSig("FNV\x00")},
	},
	{
		Format:      Svt,
		Description: "Sound volume table",
		Exts:        []string{"svt"},
		Signatures:  []Signature{StartSig("SVT\x00")},
	},
	{
		Format:      Sqb,
		Description: "Sound sequence data",
		Exts:        []string{"sqb"},
		Signatures:  []Signature{StartSig("SQB\x00")},
	},
	{
		Format:      Prc,
		Description: "Parameter file",
		Exts:        []string{"prc", "stdat", "stprm"},
		Signatures:  []Signature{StartSig("paracobn")},
	},
	{
		Format:      Nutexb,
		Description: "Namco texture",
		Exts:        []string{"nutexb"},
		Signatures:  []Signature{EndSig(" XET")},
	},
}
