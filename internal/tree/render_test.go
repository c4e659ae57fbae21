package tree_test

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ostafen/smushinfo/internal/tree"
	"github.com/stretchr/testify/require"
)

func lines(s ...string) string {
	return strings.Join(s, "\n") + "\n"
}

func TestRender_Scalars(t *testing.T) {
	root := tree.Struct{Entries: []tree.Entry{
		tree.Field("u8", tree.U8Value(255)),
		tree.Field("i8", tree.I8Value(-128)),
		tree.Field("u16", tree.U16Value(65535)),
		tree.Field("i16", tree.I16Value(-1)),
		tree.Field("u32", tree.U32Value(4294967295)),
		tree.Field("i32", tree.I32Value(-2147483648)),
		tree.Field("float", tree.FloatValue(0.5)),
		tree.Field("whole", tree.FloatValue(3)),
		tree.Field("bool", tree.BoolValue(true)),
		tree.Field("hash", tree.HashValue("0x0000000000")),
		tree.Field("str", tree.StringValue("hello world")),
	}}

	want := lines(
		"- u8: 255",
		"- i8: -128",
		"- u16: 65535",
		"- i16: -1",
		"- u32: 4294967295",
		"- i32: -2147483648",
		"- float: 0.5",
		"- whole: 3",
		"- bool: true",
		"- hash: 0x0000000000",
		"- str: hello world",
	)
	if diff := cmp.Diff(want, tree.Render(root)); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_Nested(t *testing.T) {
	root := tree.Struct{Entries: []tree.Entry{
		tree.Field("fighter", tree.Struct{Entries: []tree.Entry{
			tree.Field("name", tree.StringValue("mario")),
			tree.Field("weights", tree.List{Items: []tree.Node{
				tree.FloatValue(1.5),
				tree.FloatValue(2),
			}}),
		}}),
		tree.Field("enabled", tree.BoolValue(false)),
	}}

	want := lines(
		"- fighter:",
		"    - name: mario",
		"    - weights:",
		"        -  1.5",
		"        -  2",
		"- enabled: false",
	)
	if diff := cmp.Diff(want, tree.Render(root)); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_ListSyntheticLabels(t *testing.T) {
	list := tree.List{Items: []tree.Node{
		tree.U8Value(5),
		tree.Struct{Entries: []tree.Entry{
			tree.Field("a", tree.I32Value(1)),
		}},
		tree.List{Items: []tree.Node{tree.BoolValue(true)}},
	}}

	want := lines(
		"- items:",
		"    -  5",
		"    - 1:",
		"        - a: 1",
		"    - 2:",
		"        -  true",
	)

	root := tree.Struct{Entries: []tree.Entry{tree.Field("items", list)}}
	if diff := cmp.Diff(want, tree.Render(root)); diff != "" {
		t.Errorf("Render mismatch (-want +got):\n%s", diff)
	}
}

func TestRender_PreservesEntryOrder(t *testing.T) {
	a := tree.Field("a", tree.U8Value(1))
	b := tree.Field("b", tree.U8Value(2))

	forward := tree.Render(tree.Struct{Entries: []tree.Entry{a, b}})
	backward := tree.Render(tree.Struct{Entries: []tree.Entry{b, a}})

	require.Equal(t, "- a: 1\n- b: 2\n", forward)
	require.Equal(t, "- b: 2\n- a: 1\n", backward)
}

func TestRender_Deterministic(t *testing.T) {
	root := tree.Struct{Entries: []tree.Entry{
		tree.Field("x", tree.List{Items: []tree.Node{
			tree.Struct{Entries: []tree.Entry{tree.Field("y", tree.StringValue("z"))}},
		}}),
	}}
	require.Equal(t, tree.Render(root), tree.Render(root))
}

func TestRender_UnlabeledAndEmpty(t *testing.T) {
	root := tree.Struct{Entries: []tree.Entry{
		{Node: tree.U8Value(7)},
		{Label: tree.Label("empty"), Node: tree.Struct{}},
		{Label: tree.Label("missing")},
	}}

	want := lines(
		"-  7",
		"- empty:",
		"- missing: ",
	)
	require.Equal(t, want, tree.Render(root))
}

func TestRender_DeepNesting(t *testing.T) {
	const depth = 500

	var n tree.Node = tree.U8Value(1)
	for i := 0; i < depth; i++ {
		n = tree.List{Items: []tree.Node{n}}
	}

	out := tree.Render(tree.Struct{Entries: []tree.Entry{tree.Field("deep", n)}})
	require.Equal(t, depth+1, strings.Count(out, "\n"))
	require.True(t, strings.HasSuffix(out, strings.Repeat("    ", depth)+"-  1\n"))
}

func TestRenderNode_Indent(t *testing.T) {
	var sb strings.Builder
	tree.RenderNode(&sb, tree.StringValue("v"), tree.Label("k"), 2)
	require.Equal(t, "        - k: v\n", sb.String())
}

func TestFormatFloat(t *testing.T) {
	require.Equal(t, "0.1", tree.FormatFloat(0.1))
	require.Equal(t, "-2.25", tree.FormatFloat(-2.25))
	require.Equal(t, "100000", tree.FormatFloat(1e5))
	require.Equal(t, "inf", tree.FormatFloat(float32(math.Inf(1))))
	require.Equal(t, "-inf", tree.FormatFloat(float32(math.Inf(-1))))
	require.Equal(t, "NaN", tree.FormatFloat(float32(math.NaN())))
}
