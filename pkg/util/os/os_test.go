package os_test

import (
	"os"
	"path/filepath"
	"testing"

	osutils "github.com/ostafen/smushinfo/pkg/util/os"
	"github.com/stretchr/testify/require"
)

func TestPrepareMountpoint_Missing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "mnt")

	release, err := osutils.PrepareMountpoint(dir)
	require.NoError(t, err)
	require.DirExists(t, dir)

	release()
	require.NoDirExists(t, dir)
}

func TestPrepareMountpoint_Existing(t *testing.T) {
	dir := t.TempDir()

	release, err := osutils.PrepareMountpoint(dir)
	require.NoError(t, err)

	release()
	require.DirExists(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a"), nil, 0o644))

	_, err = osutils.PrepareMountpoint(dir)
	require.ErrorIs(t, err, osutils.ErrNotEmpty)

	_, err = osutils.PrepareMountpoint(filepath.Join(dir, "a"))
	require.Error(t, err)
}

func TestIsDirEmpty(t *testing.T) {
	dir := t.TempDir()

	empty, err := osutils.IsDirEmpty(dir)
	require.NoError(t, err)
	require.True(t, empty)

	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	empty, err = osutils.IsDirEmpty(dir)
	require.NoError(t, err)
	require.False(t, empty)

	_, err = osutils.IsDirEmpty(filepath.Join(dir, "missing"))
	require.Error(t, err)
}
