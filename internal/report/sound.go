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
	"gopkg.in/yaml.v3"
)

const (
	csbTitle = "Common Sound Table File\n"
	sqbTitle = "Sound Sequence Data File"
	fnvTitle = "Smash Ultimate 'Volume by Fighter Count' File\n"
	svtTitle = "Smash Ultimate Sound Volume Table File\n"
)

// yamlBuilder prints title followed by the YAML encoding of the decoded
// value, or fallback when decoding or encoding fails.
func yamlBuilder(dec Decoder[any], title, fallback string) Builder {
	return BuilderFunc(func(buf []byte) string {
		v, err := decode(dec, buf)
		if err != nil {
			return fallback
		}
		out, err := yaml.Marshal(v)
		if err != nil {
			return fallback
		}
		return title + string(out)
	})
}

func csbBuilder(dec Decoder[any]) Builder {
	return yamlBuilder(dec, csbTitle, csbTitle)
}

func sqbBuilder(dec Decoder[any]) Builder {
	return yamlBuilder(dec, sqbTitle+"\n", sqbTitle)
}

func fnvBuilder(dec Decoder[any]) Builder {
	return yamlBuilder(dec, fnvTitle, fnvTitle+"Invalid fnv file")
}

func svtBuilder(dec Decoder[any]) Builder {
	return yamlBuilder(dec, svtTitle, svtTitle+"Invalid svt file")
}
