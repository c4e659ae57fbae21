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

	"github.com/ostafen/smushinfo/internal/hash40"
	"github.com/ostafen/smushinfo/internal/nus3audio"
	"github.com/ostafen/smushinfo/internal/sli"
	fmtutil "github.com/ostafen/smushinfo/pkg/util/format"
)

const (
	nus3audioTitle = "Namco Audio Container"
	sliTitle       = "Sound Label Info File\n\n"
)

func nus3audioBuilder(dec Decoder[*nus3audio.File]) Builder {
	return BuilderFunc(func(buf []byte) string {
		file, err := decode(dec, buf)
		if err != nil {
			return nus3audioTitle
		}

		var sb strings.Builder
		sb.WriteString(nus3audioTitle + "\n\nFiles:\n")
		for i := range file.Files {
			f := &file.Files[i]
			fmt.Fprintf(&sb, "[%2d] %s (%s)\n", f.ID, f.Filename(), fmtutil.FormatBytes(int64(len(f.Data))))
		}
		return sb.String()
	})
}

func sliBuilder(dec Decoder[*sli.File], labels *hash40.Labels) Builder {
	return BuilderFunc(func(buf []byte) string {
		file, err := decode(dec, buf)
		if err != nil {
			return sliTitle
		}

		var sb strings.Builder
		sb.WriteString(sliTitle)
		for _, e := range file.Entries {
			fmt.Fprintf(&sb, "- %s\n    - nus3bank_id: %#x\n    - tone_id: %#x\n",
				labels.Format(e.ToneName), e.Nus3bankID, e.ToneID)
		}
		return sb.String()
	})
}
