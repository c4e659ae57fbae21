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
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ostafen/smushinfo/internal/fuse"
)

func DefineMountCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mount <dir>",
		Short: "Mount a read-only view of reports",
		Long: `The 'mount' command mounts a read-only file system mirroring <dir>.
Every file of <dir> is replaced by a "<name>.txt" file holding its description.
The mountpoint is unmounted on SIGINT or SIGTERM.`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE:         RunMount,
	}

	cmd.Flags().StringP("mountpoint", "m", "", "path of the directory where the filesystem will be mounted. If not specified, a default will be generated.")
	cmd.Flags().Bool("by-name", false, "classify files by extension instead of magic numbers")
	return cmd
}

func RunMount(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}

	mountpoint, _ := cmd.Flags().GetString("mountpoint")
	if mountpoint == "" {
		mountpoint = getMountpoint(args[0])
	}
	byName, _ := cmd.Flags().GetBool("by-name")

	tree := fuse.NewInfoTree(args[0], a.dispatcher, byName)
	return fuse.Mount(mountpoint, tree, a.log)
}

// getMountpoint derives a mountpoint name from the source directory by
// appending "_info" to its base name.
func getMountpoint(dir string) string {
	return filepath.Base(filepath.Clean(dir)) + "_info"
}
