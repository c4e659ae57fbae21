package table_test

import (
	"testing"

	"github.com/ostafen/smushinfo/pkg/table"
	"github.com/stretchr/testify/require"
)

func collect(t *table.PrefixTable[string], data string) []string {
	var out []string
	t.Walk([]byte(data), func(v string) bool {
		out = append(out, v)
		return false
	})
	return out
}

func TestPrefixTable_Walk(t *testing.T) {
	tbl := table.New[string]()
	tbl.Insert([]byte("apple"), "apple")
	tbl.Insert([]byte("applet"), "applet")
	tbl.Insert([]byte("apricot"), "apricot")

	require.Equal(t, 3, tbl.Size())
	require.Equal(t, 7, tbl.MaxKeyLen())

	require.Equal(t, []string{"apple", "applet"}, collect(tbl, "appletie"))
	require.Equal(t, []string{"apricot"}, collect(tbl, "apricot"))
	require.Empty(t, collect(tbl, "application"))
	require.Empty(t, collect(tbl, "app"))
	require.Empty(t, collect(tbl, ""))
}

func TestPrefixTable_WalkStopsOnMatch(t *testing.T) {
	tbl := table.New[int]()
	tbl.Insert([]byte("SSBH"), 1)
	tbl.Insert([]byte("SSBHSSBH"), 2)

	var got []int
	tbl.Walk([]byte("SSBHSSBH"), func(v int) bool {
		got = append(got, v)
		return true
	})
	require.Equal(t, []int{1}, got)
}

func TestPrefixTable_Get(t *testing.T) {
	tbl := table.New[int]()
	tbl.Insert([]byte("NUS3"), 1)
	tbl.Insert([]byte("NUS3"), 2)

	v, ok := tbl.Get([]byte("NUS3"))
	require.True(t, ok)
	require.Equal(t, 2, v)
	require.Equal(t, 1, tbl.Size())

	_, ok = tbl.Get([]byte("NUS"))
	require.False(t, ok)
}
