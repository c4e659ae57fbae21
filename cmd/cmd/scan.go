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
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	fileformat "github.com/ostafen/smushinfo/internal/format"
	"github.com/ostafen/smushinfo/internal/scan"
	"github.com/ostafen/smushinfo/pkg/pbar"
	"github.com/ostafen/smushinfo/pkg/util/format"
)

func DefineScanCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "scan <dir>",
		Short:        "Describe every file of a directory tree",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunScan,
	}

	cmd.Flags().Int("workers", 0, "number of files described in parallel (default: number of CPUs)")
	cmd.Flags().Bool("by-name", false, "classify files by extension instead of magic numbers")
	cmd.Flags().StringSlice("ext", nil, "only describe files with these extensions")
	cmd.Flags().String("max-file-size", "", "skip files larger than this size (e.g. 64MB)")
	cmd.Flags().Bool("progress", false, "show a progress bar on stderr")
	return cmd
}

func RunScan(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	opts, err := parseScanOptions(cmd, a)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := args[0]
	stderr := cmd.ErrOrStderr()
	out := cmd.OutOrStdout()

	fmt.Fprintln(stderr, "[INFO] Starting scanning operation...")
	fmt.Fprintf(stderr, "[INFO] Source: \t%s\n", absPath(root))
	fmt.Fprintf(stderr, "[INFO] Workers: \t%d\n", opts.Workers)

	var pb *pbar.ProgressBarState
	if progress, _ := cmd.Flags().GetBool("progress"); progress {
		opts.OnStart = func(files int) {
			pb = pbar.NewProgressBarState(stderr, files)
		}
	}

	first := true
	summary, err := scan.Scan(ctx, root, a.dispatcher, opts, func(r scan.Result) error {
		if pb != nil {
			pb.Add(r.Size, r.Err == nil && r.Format != fileformat.Unsupported)
			pb.Render(false)
		}

		if !first {
			fmt.Fprintln(out)
		}
		first = false

		if r.Err != nil {
			_, err := fmt.Fprintf(out, "==> %s <==\nerror: %v\n", r.Path, r.Err)
			return err
		}
		_, err := fmt.Fprintf(out, "==> %s (%s) <==\n%s\n", r.Path, r.Format, r.Report)
		return err
	})
	if pb != nil {
		pb.Finish()
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(stderr)
	fmt.Fprintf(stderr, "[INFO] Scan completed!\n")
	fmt.Fprintf(stderr, "[INFO] Run ID: \t%s\n", summary.RunID)
	fmt.Fprintf(stderr, "[INFO] Files: \t%d (%d recognized, %d failed)\n", summary.Files, summary.Recognized, summary.Failed)
	fmt.Fprintf(stderr, "[INFO] Total data: \t%s\n", format.FormatBytes(summary.TotalSize))
	fmt.Fprintf(stderr, "[INFO] Duration: \t%s\n", scan.FormatDurationHMS(summary.Duration))
	return nil
}

func parseScanOptions(cmd *cobra.Command, a *app) (scan.Options, error) {
	byName, _ := cmd.Flags().GetBool("by-name")
	fileExt, _ := cmd.Flags().GetStringSlice("ext")

	var maxFileSize int64
	if s, _ := cmd.Flags().GetString("max-file-size"); s != "" {
		v, err := format.ParseBytes(s)
		if err != nil {
			return scan.Options{}, err
		}
		maxFileSize = v
	}

	return scan.Options{
		Workers:     a.cfg.Workers,
		ByName:      byName,
		FileExt:     fileExt,
		MaxFileSize: maxFileSize,
		Logger:      a.log,
	}, nil
}

func absPath(path string) string {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}
