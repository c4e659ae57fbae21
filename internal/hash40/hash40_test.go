package hash40_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ostafen/smushinfo/internal/hash40"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	require.Equal(t, hash40.Hash40(0), hash40.New(""))

	h := hash40.New("fighter_kind")
	require.Equal(t, uint64(len("fighter_kind")), uint64(h)>>32)
	require.Equal(t, h, hash40.New("fighter_kind"))
	require.NotEqual(t, h, hash40.New("fighter_kinD"))
}

func TestHash40_String(t *testing.T) {
	require.Equal(t, "0x0000000000", hash40.Hash40(0).String())
	require.Equal(t, "0x0a1b2c3d4e", hash40.Hash40(0x0a1b2c3d4e).String())
	require.Equal(t, "0x0a1b2c3d4e", hash40.Hash40(0xff0a1b2c3d4e).String())
}

func TestLabels_Format(t *testing.T) {
	var nilLabels *hash40.Labels
	h := hash40.New("param")
	require.Equal(t, h.String(), nilLabels.Format(h))
	require.Zero(t, nilLabels.Len())

	l := hash40.NewLabels("param")
	require.Equal(t, "param", l.Format(h))
	require.Equal(t, hash40.New("other").String(), l.Format(hash40.New("other")))
	require.Equal(t, 1, l.Len())
}

func TestReadLabels(t *testing.T) {
	src := strings.Join([]string{
		"0x0a1b2c3d4e,custom_label",
		"",
		"bare_label",
		"0x0000000001,one\r",
	}, "\n")

	l, err := hash40.ReadLabels(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, 3, l.Len())

	label, ok := l.Lookup(0x0a1b2c3d4e)
	require.True(t, ok)
	require.Equal(t, "custom_label", label)

	require.Equal(t, "bare_label", l.Format(hash40.New("bare_label")))
	require.Equal(t, "one", l.Format(1))
}

func TestReadLabels_InvalidHash(t *testing.T) {
	_, err := hash40.ReadLabels(strings.NewReader("0xzz,label"))
	require.Error(t, err)
}

func TestLoadLabels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ParamLabels.csv")
	require.NoError(t, os.WriteFile(path, []byte("hello\n"), 0644))

	l, err := hash40.LoadLabels(path)
	require.NoError(t, err)
	require.Equal(t, "hello", l.Format(hash40.New("hello")))

	_, err = hash40.LoadLabels(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
}
