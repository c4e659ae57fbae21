package format_test

import (
	"testing"

	"github.com/ostafen/smushinfo/pkg/util/format"
	"github.com/stretchr/testify/require"
)

func TestFormatBytes(t *testing.T) {
	cases := map[int64]string{
		0:             "0 B",
		512:           "512 B",
		1023:          "1023 B",
		1024:          "1 KiB",
		1536:          "1.50 KiB",
		5 << 20:       "5 MiB",
		(3 << 30) / 4: "768 MiB",
		1 << 40:       "1 TiB",
	}
	for in, want := range cases {
		require.Equal(t, want, format.FormatBytes(in), in)
	}
}

func TestParseBytes(t *testing.T) {
	cases := map[string]int64{
		"0":      0,
		"512":    512,
		"4KB":    4 << 10,
		"4 KiB":  4 << 10,
		"1.5M":   3 << 19,
		"2gb":    2 << 30,
		" 1TiB ": 1 << 40,
		"100 B":  100,
	}
	for in, want := range cases {
		got, err := format.ParseBytes(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "KB", "-1", "4XB", "1.2.3"} {
		_, err := format.ParseBytes(in)
		require.Error(t, err, in)
	}
}
