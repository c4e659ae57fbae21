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
package os

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNotEmpty is returned when a mountpoint already has entries.
var ErrNotEmpty = errors.New("mountpoint is not empty")

// PrepareMountpoint makes sure dir is an empty directory, creating it if
// missing. The returned release func removes dir again when it was created
// here and is a no-op otherwise.
func PrepareMountpoint(dir string) (release func(), err error) {
	noop := func() {}

	fi, err := os.Stat(dir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := os.Mkdir(dir, 0o755); err != nil {
			return noop, fmt.Errorf("create mountpoint %s: %w", dir, err)
		}
		return func() { _ = os.Remove(dir) }, nil
	case err != nil:
		return noop, fmt.Errorf("stat mountpoint %s: %w", dir, err)
	case !fi.IsDir():
		return noop, fmt.Errorf("mountpoint %s: not a directory", dir)
	}

	empty, err := IsDirEmpty(dir)
	if err != nil {
		return noop, fmt.Errorf("read mountpoint %s: %w", dir, err)
	}
	if !empty {
		return noop, fmt.Errorf("%s: %w", dir, ErrNotEmpty)
	}
	return noop, nil
}

// IsDirEmpty reports whether the directory at path has no entries.
func IsDirEmpty(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	_, err = f.Readdirnames(1)
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	return false, err
}
