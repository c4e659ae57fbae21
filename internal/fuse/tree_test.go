package fuse_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ostafen/smushinfo/internal/fuse"
	"github.com/ostafen/smushinfo/internal/report"
	"github.com/stretchr/testify/require"
)

func newTree(t *testing.T, byName bool) *fuse.InfoTree {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sound", "bank"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sound", "se.nus3audio"), []byte("NUS3"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "readme"), []byte("hi"), 0o644))
	return fuse.NewInfoTree(root, report.Default(), byName)
}

func TestInfoTree_List(t *testing.T) {
	tr := newTree(t, false)

	entries, err := tr.List("")
	require.NoError(t, err)
	require.Equal(t, []fuse.Entry{
		{Name: "readme.txt", Kind: fuse.KindReport, Path: "readme"},
		{Name: "sound", Kind: fuse.KindDir, Path: "sound"},
	}, entries)

	entries, err = tr.List("sound")
	require.NoError(t, err)
	require.Equal(t, []fuse.Entry{
		{Name: "bank", Kind: fuse.KindDir, Path: "sound/bank"},
		{Name: "se.nus3audio.txt", Kind: fuse.KindReport, Path: "sound/se.nus3audio"},
	}, entries)

	_, err = tr.List("missing")
	require.Error(t, err)
}

func TestInfoTree_Lookup(t *testing.T) {
	tr := newTree(t, false)

	e, err := tr.Lookup("sound", "se.nus3audio.txt")
	require.NoError(t, err)
	require.Equal(t, fuse.Entry{Name: "se.nus3audio.txt", Kind: fuse.KindReport, Path: "sound/se.nus3audio"}, e)

	e, err = tr.Lookup("", "sound")
	require.NoError(t, err)
	require.Equal(t, fuse.KindDir, e.Kind)

	for _, name := range []string{"se.nus3audio", "bank.txt", ".txt", "nope.txt"} {
		_, err = tr.Lookup("sound", name)
		require.ErrorIs(t, err, fuse.ErrNotFound, name)
	}
}

func TestInfoTree_Report(t *testing.T) {
	tr := newTree(t, false)

	data, err := tr.Report("sound/se.nus3audio")
	require.NoError(t, err)
	require.Equal(t, "Namco Audio Container\n", string(data))

	data, err = tr.Report("readme")
	require.NoError(t, err)
	require.Equal(t, "No info\n", string(data))

	_, err = tr.Report("sound")
	require.Error(t, err)
}

func TestInfoTree_ReportByName(t *testing.T) {
	tr := newTree(t, true)

	data, err := tr.Report("sound/se.nus3audio")
	require.NoError(t, err)
	require.Equal(t, "Namco Audio Container\n", string(data))
}
