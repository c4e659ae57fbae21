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

//go:build linux
// +build linux

package fuse

import (
	"context"
	"errors"
	"os"
	"time"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"
)

// InfoFS is a read-only file system serving an InfoTree.
type InfoFS struct {
	tree *InfoTree
}

func (f *InfoFS) Root() (fs.Node, error) {
	return &Dir{
		tree: f.tree,
	}, nil
}

// Dir implements both fs.Node and fs.HandleReadDirAller
type Dir struct {
	tree *InfoTree
	path string
}

func (*Dir) Attr(ctx context.Context, a *fuse.Attr) error {
	a.Mode = os.ModeDir | 0555
	return nil
}

func (d *Dir) Lookup(ctx context.Context, name string) (fs.Node, error) {
	e, err := d.tree.Lookup(d.path, name)
	if errors.Is(err, ErrNotFound) {
		return nil, fuse.ENOENT
	}
	if err != nil {
		return nil, err
	}
	return node(d.tree, e), nil
}

func (d *Dir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	entries, err := d.tree.List(d.path)
	if err != nil {
		return nil, err
	}

	dirEntries := make([]fuse.Dirent, len(entries))
	for i, e := range entries {
		typ := fuse.DT_File
		if e.Kind == KindDir {
			typ = fuse.DT_Dir
		}
		dirEntries[i] = fuse.Dirent{
			Name: e.Name,
			Type: typ,
		}
	}
	return dirEntries, nil
}

func node(tree *InfoTree, e Entry) fs.Node {
	if e.Kind == KindDir {
		return &Dir{tree: tree, path: e.Path}
	}
	return &File{tree: tree, path: e.Path}
}

// File implements both fs.Node and fs.HandleReader
type File struct {
	tree *InfoTree
	path string
}

func (f *File) Attr(ctx context.Context, a *fuse.Attr) error {
	data, err := f.tree.Report(f.path)
	if err != nil {
		return err
	}

	a.Mode = 0444
	a.Size = uint64(len(data))
	a.Mtime = time.Now()
	return nil
}

func (f *File) Read(ctx context.Context, req *fuse.ReadRequest, resp *fuse.ReadResponse) error {
	data, err := f.tree.Report(f.path)
	if err != nil {
		return err
	}

	offset := req.Offset
	if offset >= int64(len(data)) {
		// Trying to read past EOF
		resp.Data = []byte{}
		return nil
	}

	// Clamp size if reading near EOF
	end := min(offset+int64(req.Size), int64(len(data)))
	resp.Data = data[offset:end]
	return nil
}
