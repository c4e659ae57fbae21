//go:build linux
// +build linux

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
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bazil.org/fuse"
	fusefs "bazil.org/fuse/fs"

	"github.com/ostafen/smushinfo/internal/logger"
	osutils "github.com/ostafen/smushinfo/pkg/util/os"
)

// Mount serves tree at mountpoint until a termination signal unmounts it.
func Mount(mountpoint string, tree *InfoTree, log *logger.Logger) error {
	release, err := osutils.PrepareMountpoint(mountpoint)
	if err != nil {
		return err
	}
	defer release()

	c, err := fuse.Mount(mountpoint, fuse.ReadOnly(), fuse.FSName("smushinfo"))
	if err != nil {
		return err
	}
	defer c.Close()

	served := make(chan error, 1)
	go func() {
		srv := fusefs.New(c, nil)
		served <- srv.Serve(&InfoFS{tree: tree})
	}()
	return waitForUmount(mountpoint, served, log)
}

func waitForUmount(mountpoint string, served <-chan error, log *logger.Logger) error {
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigc)

	log.Infof("Mounted at %s, waiting for termination signal...", mountpoint)

	const maxUnmountRetries = 3

	unmountAttempts := 0
	for {
		select {
		case err := <-served:
			// unmounted from outside, e.g. with fusermount -u
			return err
		case sig := <-sigc:
			log.Infof("Signal received: %v.", sig)

			log.Infof("Attempting unmount of %s (attempt %d/%d)...", mountpoint, unmountAttempts+1, maxUnmountRetries)
			err := fuse.Unmount(mountpoint)
			if err == nil {
				log.Info("Unmounted successfully, exiting.")
				return <-served
			}

			unmountAttempts++
			if unmountAttempts >= maxUnmountRetries {
				return fmt.Errorf("unable to unmount %s after %d attempts: %w", mountpoint, maxUnmountRetries, err)
			}
			log.Warnf("Unmount failed: %v. Remaining retries: %d. Waiting for another signal to retry...", err, maxUnmountRetries-unmountAttempts)
		}
	}
}
