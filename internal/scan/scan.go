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
package scan

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/ostafen/smushinfo/internal/format"
	"github.com/ostafen/smushinfo/internal/logger"
	"github.com/ostafen/smushinfo/internal/mmap"
	"github.com/ostafen/smushinfo/internal/report"
	"github.com/ostafen/smushinfo/pkg/smushinfo"
)

type Options struct {
	Workers int
	// ByName classifies files by extension instead of magic numbers.
	ByName bool
	// FileExt, when not empty, restricts the scan to these extensions.
	FileExt     []string
	MaxFileSize int64
	Logger      *logger.Logger
	// OnStart, when set, is called with the number of files to describe
	// before the first result is emitted.
	OnStart func(files int)
}

// Result describes one file. Path is relative to the scanned root.
type Result struct {
	Path   string
	Format format.Format
	Size   int64
	Report string
	Err    error
}

type Summary struct {
	RunID      string
	Files      int
	Recognized int
	Failed     int
	TotalSize  int64
	Duration   time.Duration
}

// Scan describes every regular file under root using up to opts.Workers
// goroutines. emit is called from a single goroutine, in lexical path order.
// A failing emit stops the scan; unreadable files are reported through
// Result.Err.
func Scan(ctx context.Context, root string, d *report.Dispatcher, opts Options, emit func(Result) error) (Summary, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	summary := Summary{RunID: uuid.NewString()}
	log = log.With("run", summary.RunID)

	start := time.Now()

	paths, err := listFiles(root, opts)
	if err != nil {
		return summary, err
	}
	log.Infof("scanning %d files under %s", len(paths), root)
	if opts.OnStart != nil {
		opts.OnStart(len(paths))
	}

	results := make([]Result, len(paths))
	ready := make([]chan struct{}, len(paths))
	for i := range ready {
		ready[i] = make(chan struct{})
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Workers, 1))

	emitted := make(chan error, 1)
	go func() {
		for i := range results {
			select {
			case <-ready[i]:
			case <-gctx.Done():
				emitted <- gctx.Err()
				return
			}

			res := results[i]
			summary.Files++
			summary.TotalSize += res.Size
			switch {
			case res.Err != nil:
				summary.Failed++
				log.Warnf("unable to read %s: %v", res.Path, res.Err)
			case res.Format != format.Unsupported:
				summary.Recognized++
			}

			if err := emit(res); err != nil {
				cancel()
				emitted <- err
				return
			}
		}
		emitted <- nil
	}()

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = describe(d, root, path, opts)
			log.Debugf("%s: %s", results[i].Path, results[i].Format)
			close(ready[i])
			return nil
		})
	}

	werr := g.Wait()
	eerr := <-emitted

	summary.Duration = time.Since(start)
	if eerr != nil {
		return summary, eerr
	}
	return summary, werr
}

func listFiles(root string, opts Options) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		if len(opts.FileExt) > 0 && !slices.Contains(opts.FileExt, extension(path)) {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files under %q: %w", root, err)
	}
	return paths, nil
}

func describe(d *report.Dispatcher, root, path string, opts Options) Result {
	res := Result{Path: path}
	if rel, err := filepath.Rel(root, path); err == nil {
		res.Path = rel
	}

	m, err := mmap.NewMmapFile(path)
	if err != nil {
		res.Err = err
		return res
	}
	defer m.Close()

	res.Size = int64(m.FileSize)
	if opts.MaxFileSize > 0 && res.Size > opts.MaxFileSize {
		res.Err = fmt.Errorf("file size %d exceeds limit %d", res.Size, opts.MaxFileSize)
		return res
	}

	res.Format = Classify(m.Data, path, opts.ByName)
	res.Report = d.Build(m.Data, res.Format)
	return res
}

// Classify picks the format of a file by name or by contents.
func Classify(data []byte, path string, byName bool) format.Format {
	if byName {
		return format.FromExtension(extension(path))
	}
	return format.FromMagic(data)
}

func extension(path string) string {
	ext, _ := smushinfo.Extension(path)
	return ext
}

// FormatDurationHMS formats a time.Duration into HH:MM:SS string.
// It handles durations that might be less than an hour or greater than 24 hours.
func FormatDurationHMS(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	totalSeconds := int64(d.Seconds())

	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
