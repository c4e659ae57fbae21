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
	"io"

	"github.com/spf13/cobra"

	"github.com/ostafen/smushinfo/internal/env"
)

func DefineVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "version",
		Short:        "Print version information",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		Run: func(cmd *cobra.Command, args []string) {
			PrintLogo(cmd.OutOrStdout())
		},
	}
}

func PrintLogo(w io.Writer) {
	fmt.Fprintln(w, "                      _     _        __")
	fmt.Fprintln(w, " ___ _ __ ___  _   _ ___| |__ (_)_ __  / _| ___")
	fmt.Fprintln(w, "/ __| '_ ` _ \\| | | / __| '_ \\| | '_ \\| |_ / _ \\")
	fmt.Fprintln(w, "\\__ \\ | | | | | |_| \\__ \\ | | | | | | |  _| (_) |")
	fmt.Fprintln(w, "|___/_| |_| |_|\\__,_|___/_| |_|_|_| |_|_|  \\___/")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Smash Ultimate asset inspector")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Version:   %s\n", env.Version)
	fmt.Fprintf(w, "Commit:    %s\n", env.CommitHash)
	fmt.Fprintf(w, "Build Time: %s\n", env.BuildTime)
}
