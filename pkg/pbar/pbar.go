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
package pbar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ostafen/smushinfo/pkg/util/format"
)

const MinRefreshRate = time.Millisecond * 500

const barLength = 20

// ProgressBarState holds all the data needed to render the progress bar
type ProgressBarState struct {
	w io.Writer

	TotalFiles     int
	ProcessedFiles int
	Recognized     int
	ProcessedBytes int64
	StartTime      time.Time
	LastUpdateTime time.Time
}

// NewProgressBarState initializes a new ProgressBarState
func NewProgressBarState(w io.Writer, totalFiles int) *ProgressBarState {
	return &ProgressBarState{
		w:          w,
		TotalFiles: totalFiles,
		StartTime:  time.Now(),
	}
}

// Add records a processed file.
func (pbs *ProgressBarState) Add(size int64, recognized bool) {
	pbs.ProcessedFiles++
	pbs.ProcessedBytes += size
	if recognized {
		pbs.Recognized++
	}
}

// Render prints the progress bar line, at most once per MinRefreshRate unless
// force is set.
func (pbs *ProgressBarState) Render(force bool) {
	if !force && time.Since(pbs.LastUpdateTime) < MinRefreshRate {
		return
	}
	pbs.LastUpdateTime = time.Now()

	percentage := 100.0
	if pbs.TotalFiles > 0 {
		percentage = float64(pbs.ProcessedFiles) / float64(pbs.TotalFiles) * 100
	}

	filledLen := int(float64(barLength) * percentage / 100)
	var bar string
	if filledLen >= barLength {
		bar = strings.Repeat("=", barLength)
	} else {
		bar = strings.Repeat("=", filledLen) + ">" + strings.Repeat(" ", barLength-filledLen-1)
	}

	var rate float64
	if elapsed := time.Since(pbs.StartTime).Seconds(); elapsed > 0 {
		rate = float64(pbs.ProcessedFiles) / elapsed
	}

	// \r moves the cursor to the beginning of the line
	// We print spaces to clear any leftover characters from a previous longer line
	fmt.Fprintf(pbs.w, "\r[INFO] Progress: [%s] %3.0f%% (%d/%d files, %s) | Recognized: %d | @ %.1f files/s    ",
		bar,
		percentage,
		pbs.ProcessedFiles,
		pbs.TotalFiles,
		format.FormatBytes(pbs.ProcessedBytes),
		pbs.Recognized,
		rate,
	)
}

// Finish renders the final state and moves to the next line.
func (pbs *ProgressBarState) Finish() {
	pbs.Render(true)
	fmt.Fprintln(pbs.w)
}
