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
package fuse

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/ostafen/smushinfo/internal/mmap"
	"github.com/ostafen/smushinfo/internal/report"
	"github.com/ostafen/smushinfo/internal/scan"
)

// ReportSuffix is appended to the name of every source file.
const ReportSuffix = ".txt"

var ErrNotFound = errors.New("no such entry")

type EntryKind int

const (
	KindDir EntryKind = iota
	KindReport
)

// Entry is a node of the mounted view. Path is the slash separated path of
// the source directory or file, relative to the root.
type Entry struct {
	Name string
	Kind EntryKind
	Path string
}

type cachedReport struct {
	modTime time.Time
	size    int64
	text    []byte
}

// InfoTree mirrors a source directory, replacing every regular file with a
// text file holding its report. Reports are built on first access and
// rebuilt when the source file changes.
type InfoTree struct {
	root   string
	d      *report.Dispatcher
	byName bool

	mtx   sync.Mutex
	cache map[string]cachedReport
}

func NewInfoTree(root string, d *report.Dispatcher, byName bool) *InfoTree {
	return &InfoTree{
		root:   root,
		d:      d,
		byName: byName,
		cache:  make(map[string]cachedReport),
	}
}

func (t *InfoTree) abs(rel string) string {
	return filepath.Join(t.root, filepath.FromSlash(rel))
}

// List returns the entries of the directory at dir, sorted by source name.
func (t *InfoTree) List(dir string) ([]Entry, error) {
	des, err := os.ReadDir(t.abs(dir))
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(des))
	for _, de := range des {
		p := path.Join(dir, de.Name())
		switch {
		case de.IsDir():
			entries = append(entries, Entry{Name: de.Name(), Kind: KindDir, Path: p})
		case de.Type().IsRegular():
			entries = append(entries, Entry{Name: de.Name() + ReportSuffix, Kind: KindReport, Path: p})
		}
	}
	return entries, nil
}

// Lookup resolves name inside dir.
func (t *InfoTree) Lookup(dir, name string) (Entry, error) {
	if fi, err := os.Stat(t.abs(path.Join(dir, name))); err == nil && fi.IsDir() {
		return Entry{Name: name, Kind: KindDir, Path: path.Join(dir, name)}, nil
	}

	src, ok := strings.CutSuffix(name, ReportSuffix)
	if !ok || src == "" {
		return Entry{}, ErrNotFound
	}

	fi, err := os.Stat(t.abs(path.Join(dir, src)))
	if err != nil || !fi.Mode().IsRegular() {
		return Entry{}, ErrNotFound
	}
	return Entry{Name: name, Kind: KindReport, Path: path.Join(dir, src)}, nil
}

// Report returns the report of the source file at rel, with a trailing
// newline.
func (t *InfoTree) Report(rel string) ([]byte, error) {
	p := t.abs(rel)

	fi, err := os.Stat(p)
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", rel)
	}

	t.mtx.Lock()
	c, ok := t.cache[rel]
	t.mtx.Unlock()

	if ok && c.modTime.Equal(fi.ModTime()) && c.size == fi.Size() {
		return c.text, nil
	}

	m, err := mmap.NewMmapFile(p)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	text := t.d.Build(m.Data, scan.Classify(m.Data, p, t.byName))
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}

	c = cachedReport{modTime: fi.ModTime(), size: fi.Size(), text: []byte(text)}

	t.mtx.Lock()
	t.cache[rel] = c
	t.mtx.Unlock()

	return c.text, nil
}
