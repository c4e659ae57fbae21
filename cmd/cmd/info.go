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

	"github.com/spf13/cobra"

	"github.com/ostafen/smushinfo/internal/format"
	"github.com/ostafen/smushinfo/internal/mmap"
	"github.com/ostafen/smushinfo/internal/scan"
)

func DefineInfoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <file>...",
		Short: "Describe asset files",
		Long: `The 'info' command prints a description of each file.
Files are classified by their magic numbers unless --by-name or --ext is given.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE:         RunInfo,
	}

	cmd.Flags().String("ext", "", "classify every file as having this extension")
	cmd.Flags().Bool("by-name", false, "classify files by their own extension")
	return cmd
}

func RunInfo(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	ext, _ := cmd.Flags().GetString("ext")
	byName, _ := cmd.Flags().GetBool("by-name")

	out := cmd.OutOrStdout()
	for i, path := range args {
		m, err := mmap.NewMmapFile(path)
		if err != nil {
			return err
		}

		f := scan.Classify(m.Data, path, byName)
		if ext != "" {
			f = format.FromExtension(ext)
		}
		a.log.Debugf("%s: %s", path, f)

		if len(args) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "==> %s <==\n", path)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, a.dispatcher.Build(m.Data, f))

		if err := m.Close(); err != nil {
			return err
		}
	}
	return nil
}
