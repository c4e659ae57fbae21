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
	"fmt"
	"strings"

	"github.com/ostafen/smushinfo/internal/nutexb"
)

const nutexbTitle = "Namco Texture"

const nutexbTemplate = `Namco Texture v%d.%d

Internal name: %q

Size: %dx%d
Depth: %d
Mips: %d
`

func nutexbBuilder(dec Decoder[*nutexb.File]) Builder {
	return BuilderFunc(func(buf []byte) string {
		tex, err := decode(dec, buf)
		if err != nil {
			return nutexbTitle
		}

		f := tex.Footer
		return fmt.Sprintf(nutexbTemplate,
			f.MajorVersion,
			f.MinorVersion,
			strings.TrimPrefix(f.Name, " XNT"),
			f.Width,
			f.Height,
			f.Depth,
			f.MipCount,
		)
	})
}
