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

// Package hash40 implements the 40-bit string hashes used as keys in
// parameter and sound tables, and the label dictionaries that reverse them.
package hash40

import (
	"bufio"
	"fmt"
	"hash/crc32"
	"io"
	"os"
	"strconv"
	"strings"
)

// Hash40 stores the label length in bits 32..39 and the CRC32 of the
// label in bits 0..31.
type Hash40 uint64

const mask = 0xFF_FFFF_FFFF

func New(label string) Hash40 {
	return Hash40((uint64(len(label)&0xFF) << 32) | uint64(crc32.ChecksumIEEE([]byte(label))))
}

func (h Hash40) String() string {
	return fmt.Sprintf("0x%010x", uint64(h)&mask)
}

// Labels maps hashes back to the strings they were computed from.
// A nil *Labels is valid and knows no label.
type Labels struct {
	m map[Hash40]string
}

func NewLabels(labels ...string) *Labels {
	l := &Labels{m: make(map[Hash40]string, len(labels))}
	for _, s := range labels {
		l.Add(s)
	}
	return l
}

func (l *Labels) Add(label string) Hash40 {
	h := New(label)
	l.m[h] = label
	return h
}

func (l *Labels) Set(h Hash40, label string) {
	l.m[h&mask] = label
}

func (l *Labels) Lookup(h Hash40) (string, bool) {
	if l == nil {
		return "", false
	}
	s, ok := l.m[h&mask]
	return s, ok
}

// Format returns the label of h when known, its fixed-width hex form otherwise.
func (l *Labels) Format(h Hash40) string {
	if s, ok := l.Lookup(h); ok {
		return s
	}
	return h.String()
}

func (l *Labels) Len() int {
	if l == nil {
		return 0
	}
	return len(l.m)
}

// ReadLabels parses a label dictionary. Each non-empty line is either
// "0x<hash>,<label>" or a bare label whose hash is computed.
func ReadLabels(r io.Reader) (*Labels, error) {
	l := NewLabels()

	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++

		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}

		hashStr, label, found := strings.Cut(line, ",")
		if !found {
			l.Add(line)
			continue
		}

		v, err := strconv.ParseUint(strings.TrimPrefix(hashStr, "0x"), 16, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid hash %q: %w", lineNum, hashStr, err)
		}
		l.Set(Hash40(v), label)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return l, nil
}

func LoadLabels(path string) (*Labels, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open label file %q: %w", path, err)
	}
	defer f.Close()

	return ReadLabels(f)
}
