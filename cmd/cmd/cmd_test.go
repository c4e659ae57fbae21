package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ostafen/smushinfo/cmd/cmd"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	root := cmd.NewRootCommand()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func TestFormats(t *testing.T) {
	out, err := run(t, "formats")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 10)
	require.True(t, strings.HasPrefix(lines[0], "NAME"))
	require.Contains(t, out, "prc,stdat,stprm")
	require.Contains(t, out, "-8:20584554")
}

func TestInfo(t *testing.T) {
	dir := t.TempDir()
	sqb := filepath.Join(dir, "a.sqb")
	unknown := filepath.Join(dir, "b.bin")
	require.NoError(t, os.WriteFile(sqb, []byte("SQB\x00"), 0o644))
	require.NoError(t, os.WriteFile(unknown, []byte("zzzz"), 0o644))

	out, err := run(t, "info", sqb)
	require.NoError(t, err)
	require.Equal(t, "\nSound Sequence Data File\n", out)

	out, err = run(t, "info", "--ext", "nutexb", unknown)
	require.NoError(t, err)
	require.Equal(t, "\nNamco Texture\n", out)

	out, err = run(t, "info", "--by-name", unknown)
	require.NoError(t, err)
	require.Equal(t, "\nNo info\n", out)

	out, err = run(t, "info", sqb, unknown)
	require.NoError(t, err)
	require.Equal(t, "==> "+sqb+" <==\n\nSound Sequence Data File\n\n==> "+unknown+" <==\n\nNo info\n", out)

	_, err = run(t, "info", filepath.Join(dir, "missing"))
	require.Error(t, err)
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.sqb"), []byte("SQB\x00"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.bin"), []byte("zzzz"), 0o644))

	out, err := run(t, "scan", "--workers", "2", dir)
	require.NoError(t, err)
	require.Equal(t, "==> a.sqb (sqb) <==\nSound Sequence Data File\n\n==> b.bin (unsupported) <==\nNo info\n", out)

	_, err = run(t, "scan", "--max-file-size", "4XB", dir)
	require.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "Version:   dev")
}
