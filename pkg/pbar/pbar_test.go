package pbar_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ostafen/smushinfo/pkg/pbar"
	"github.com/stretchr/testify/require"
)

func TestProgressBar(t *testing.T) {
	var buf bytes.Buffer
	pb := pbar.NewProgressBarState(&buf, 4)

	pb.Add(1024, true)
	pb.Add(1024, false)
	pb.Render(true)

	out := buf.String()
	require.True(t, strings.HasPrefix(out, "\r[INFO] Progress: [==========>         ]  50%"))
	require.Contains(t, out, "(2/4 files, 2 KiB)")
	require.Contains(t, out, "Recognized: 1")

	// throttled
	buf.Reset()
	pb.Render(false)
	require.Zero(t, buf.Len())

	pb.Add(0, true)
	pb.Add(0, true)
	pb.Finish()
	require.Contains(t, buf.String(), "[====================] 100%")
	require.True(t, strings.HasSuffix(buf.String(), "\n"))
}

func TestProgressBar_NoFiles(t *testing.T) {
	var buf bytes.Buffer
	pbar.NewProgressBarState(&buf, 0).Finish()
	require.Contains(t, buf.String(), "100% (0/0 files, 0 B)")
}
