package report_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ostafen/smushinfo/internal/format"
	"github.com/ostafen/smushinfo/internal/hash40"
	"github.com/ostafen/smushinfo/internal/nus3audio"
	"github.com/ostafen/smushinfo/internal/nutexb"
	"github.com/ostafen/smushinfo/internal/report"
	"github.com/ostafen/smushinfo/internal/sli"
	"github.com/ostafen/smushinfo/internal/ssbh"
	"github.com/ostafen/smushinfo/internal/ssbh/ssbhtest"
	"github.com/ostafen/smushinfo/internal/tree"
	"github.com/ostafen/smushinfo/pkg/reader"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func requireText(t *testing.T, want, got string) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("report mismatch (-want +got):\n%s", diff)
	}
}

func skelFile(names ...string) []byte {
	b := reader.NewBuilder().Str("SSBH").Zeros(12).Str("LEKS").U16(1).U16(0)
	b.U64(16).U64(uint64(len(names)))

	bones := b.Len()
	b.Zeros(16 * len(names))
	for i, name := range names {
		pos := bones + 16*i
		b.PutU64At(pos, uint64(b.Len()-pos))
		b.CStr(name)
	}
	return b.Bytes()
}

func TestBuild_Skel(t *testing.T) {
	got := report.Default().Build(skelFile("Trans", "Rot", "Hip"), format.Ssbh)

	requireText(t, "Namco Skeleton File v1.0\n\nBone count: 3\n\nBones:\n- Trans\n- Rot\n- Hip\n", got)
}

func TestBuild_Unsupported(t *testing.T) {
	d := report.Default()
	require.Equal(t, report.NoInfo, d.Build(nil, format.Unsupported))
	require.Equal(t, report.NoInfo, d.Build([]byte("anything"), format.Format(99)))
}

func TestBuild_Fallbacks(t *testing.T) {
	cases := map[format.Format]string{
		format.Nutexb:    "Namco Texture",
		format.Ssbh:      "No file info",
		format.Prc:       "Smash Ultimate Parameter File\n\n",
		format.Nus3audio: "Namco Audio Container",
		format.Sli:       "Sound Label Info File\n\n",
		format.Csb:       "Common Sound Table File\n",
		format.Sqb:       "Sound Sequence Data File",
		format.Fnv:       "Smash Ultimate 'Volume by Fighter Count' File\nInvalid fnv file",
		format.Svt:       "Smash Ultimate Sound Volume Table File\nInvalid svt file",
	}

	d := report.Default()
	for f, want := range cases {
		require.Equal(t, want, d.Build(nil, f), f.String())
		require.Equal(t, want, d.Build([]byte{0xde, 0xad}, f), f.String())
	}
}

func TestBuild_DecoderErrors(t *testing.T) {
	fail := errors.New("boom")
	d := report.New(report.WithDecoders(report.Decoders{
		Ssbh: report.DecoderFunc[ssbh.Data](func([]byte) (ssbh.Data, error) { return nil, fail }),
		Csb:  report.DecoderFunc[any](func([]byte) (any, error) { return nil, fail }),
	}))

	require.Equal(t, "No file info", d.Build(skelFile("Trans"), format.Ssbh))
	require.Equal(t, "Common Sound Table File\n", d.Build(nil, format.Csb))
}

func withData[T any](v T) report.DecoderFunc[T] {
	return func([]byte) (T, error) { return v, nil }
}

func TestBuild_Nutexb(t *testing.T) {
	d := report.New(report.WithDecoders(report.Decoders{
		Nutexb: withData(&nutexb.File{Footer: nutexb.Footer{
			Name:         " XNTdef_mario_001_col",
			Width:        512,
			Height:       256,
			Depth:        1,
			MipCount:     10,
			MajorVersion: 1,
			MinorVersion: 2,
		}}),
	}))

	want := "Namco Texture v1.2\n\nInternal name: \"def_mario_001_col\"\n\nSize: 512x256\nDepth: 1\nMips: 10\n"
	requireText(t, want, d.Build(nil, format.Nutexb))
}

func TestBuild_Anim(t *testing.T) {
	d := report.New(report.WithDecoders(report.Decoders{
		Ssbh: withData[ssbh.Data](ssbh.Anim{
			Version:         ssbh.Version{Major: 2, Minor: 1},
			FinalFrameIndex: 59.5,
			AnimationCount:  3,
		}),
	}))

	want := "Namco Animation File v2.1\n\nName: \"None\"\nAnimations: 3\nFrame count: 59.5\n"
	requireText(t, want, d.Build(nil, format.Ssbh))
}

func TestBuild_Mesh(t *testing.T) {
	d := report.New(report.WithDecoders(report.Decoders{
		Ssbh: withData[ssbh.Data](ssbh.Mesh{
			Version: ssbh.Version{Major: 1, Minor: 10},
			Objects: []ssbh.MeshObject{
				{Name: ssbh.NewString("body"), VertexCount: 100},
				{VertexCount: 20},
				{Name: ssbh.NewString("eye"), SubIndex: 1, VertexCount: 3},
			},
		}),
	}))

	want := "Namco Mesh File v1.10\n\nMesh name: None\nObject count: 3\nVertex count: 123\n\nMesh Objects:\n- body\n- eye\n"
	requireText(t, want, d.Build(nil, format.Ssbh))
}

func TestBuild_Matl(t *testing.T) {
	d := report.New(report.WithDecoders(report.Decoders{
		Ssbh: withData[ssbh.Data](ssbh.Matl{
			Version: ssbh.Version{Major: 1, Minor: 6},
			Entries: []ssbh.MatlEntry{
				{
					MaterialLabel: ssbh.NewString("skin"),
					ShaderLabel:   ssbh.NewString("SFX_PBS_0100000008008269_opaque"),
					Attributes: []ssbh.MatlAttribute{
						{ParamID: "CustomFloat8", Param: ssbh.FloatParam(0.5)},
						{ParamID: "CustomBoolean1", Param: ssbh.BoolParam(1)},
						{ParamID: "CustomBoolean2", Param: ssbh.BoolParam(7)},
						{ParamID: "CustomVector0", Param: ssbh.Vector4Param{X: 1, Y: 0, Z: 0.25, W: 1}},
						{ParamID: "Texture0", Param: ssbh.StringParam(ssbh.NewString("def_col"))},
						{ParamID: "Sampler0", Param: ssbh.OtherParam{}},
						{ParamID: "Missing"},
					},
				},
				{},
			},
		}),
	}))

	want := `Namco Material Parameter File v1.6

Materials (2):
- skin
    - Shader: SFX_PBS_0100000008008269_opaque
    - Attributes:
        - CustomFloat8: 0.5
        - CustomBoolean1: true
        - CustomBoolean2: 7
        - CustomVector0: (1, 0, 0.25, 1)
        - Texture0: "def_col"
        - Sampler0

- UnknownMaterial
    - Shader: UnknownShader
    - Attributes:


`
	requireText(t, want, d.Build(nil, format.Ssbh))
}

func TestBuild_Modl(t *testing.T) {
	d := report.New(report.WithDecoders(report.Decoders{
		Ssbh: withData[ssbh.Data](ssbh.Modl{
			Version:           ssbh.Version{Major: 1, Minor: 7},
			ModelName:         ssbh.NewString("model"),
			SkeletonFileName:  ssbh.NewString("model.nusktb"),
			MaterialFileNames: []ssbh.String{ssbh.NewString("model.numatb"), {}},
			MeshFileName:      ssbh.NewString("model.numshb"),
			Entries: []ssbh.ModlEntry{
				{MeshObjectName: ssbh.NewString("body"), MeshObjectSubIndex: 0, MaterialLabel: ssbh.NewString("skin")},
				{MeshObjectSubIndex: 2},
			},
		}),
	}))

	want := `Namco Model File v1.7

Model: "model"
Skeleton File: "model.nusktb"
Animation File: "None"
Mesh File: "model.numshb"

Material Files:
    - "model.numatb"

Entries:
    - body[0]: "skin"
    - None[2]: "UnknownMaterial"
`
	requireText(t, want, d.Build(nil, format.Ssbh))
}

func TestBuild_Hlpb(t *testing.T) {
	d := report.New(report.WithDecoders(report.Decoders{
		Ssbh: withData[ssbh.Data](ssbh.Hlpb{
			Version: ssbh.Version{Major: 1, Minor: 1},
			AimEntries: []ssbh.RotateAim{{
				Name:            ssbh.NewString("aim1"),
				AimBoneName1:    ssbh.NewString("A"),
				AimBoneName2:    ssbh.NewString("B"),
				AimType1:        ssbh.NewString("DEFAULT"),
				AimType2:        ssbh.NewString("DEFAULT"),
				TargetBoneName1: ssbh.NewString("C"),
			}},
			InterpolationEntries: []ssbh.RotateInterpolation{{
				Name:     ssbh.NewString("interp1"),
				BoneName: ssbh.NewString("D"),
				RangeMin: ssbh.Vector3{X: -1, Y: -1, Z: -1},
				RangeMax: ssbh.Vector3{X: 1, Y: 1, Z: 1.5},
			}},
		}),
	}))

	want := `Namco Helper Bone File v1.1

Rotate Aim Entries: 1
Rotate Interpolation Entries: 1

Rotate Aim Entries:
- aim1
    - AimBone[0]: "A"
    - AimBone[1]: "B"
    - AimType[0]: "DEFAULT"
    - AimType[1]: "DEFAULT"
    - TargetBone[0]: "C"
    - TargetBone[1]: "None"


Rotate Interpolation Entries:
- interp1
    - Bone: "D"
    - Root Bone: "None"
    - Parent Bone: "None"
    - Driver Bone: "None"
    - Minimum Range: (-1, -1, -1)
    - Maximum Range: (1, 1, 1.5)

`
	requireText(t, want, d.Build(nil, format.Ssbh))
}

func TestBuild_UnknownSsbh(t *testing.T) {
	b := reader.NewBuilder().Str("HBSS").Zeros(12).Str("NRPD").U16(1).U16(10)
	require.Equal(t, "SSBH File", report.Default().Build(b.Bytes(), format.Ssbh))
}

func TestBuild_SsbhFiles(t *testing.T) {
	cases := map[string]struct {
		data []byte
		want string
	}{
		"anim": {
			data: ssbhtest.Anim("wait", 59, 2),
			want: "Namco Animation File v2.0\n\nName: \"wait\"\nAnimations: 2\nFrame count: 59\n",
		},
		"mesh": {
			data: ssbhtest.Mesh("mario",
				ssbhtest.MeshObject{Name: "body", VertexCount: 1200},
				ssbhtest.MeshObject{Name: "face", VertexCount: 30},
			),
			want: "Namco Mesh File v1.10\n\nMesh name: mario\nObject count: 2\nVertex count: 1230\n\nMesh Objects:\n- body\n- face\n",
		},
		"matl": {
			data: ssbhtest.Matl(ssbhtest.MatlEntry{
				Label:  "skin",
				Shader: "SFX",
				Attrs: []ssbhtest.Attr{
					{ID: 0xC8, Type: ssbhtest.Float, Value: float32(0.5)},
					{ID: 0x5C, Type: ssbhtest.String, Value: "def_col"},
					{ID: 0x118, Type: 0x11},
				},
			}),
			want: "Namco Material Parameter File v1.6\n\nMaterials (1):\n" +
				"- skin\n    - Shader: SFX\n    - Attributes:\n" +
				"        - CustomFloat8: 0.5\n        - Texture0: \"def_col\"\n\n",
		},
		"hlpb": {
			data: ssbhtest.Hlpb([][7]string{{"aim1", "A", "B", "DEFAULT", "DEFAULT", "C", ""}}, nil),
			want: `Namco Helper Bone File v1.1

Rotate Aim Entries: 1
Rotate Interpolation Entries: 0

Rotate Aim Entries:
- aim1
    - AimBone[0]: "A"
    - AimBone[1]: "B"
    - AimType[0]: "DEFAULT"
    - AimType[1]: "DEFAULT"
    - TargetBone[0]: "C"
    - TargetBone[1]: "None"


Rotate Interpolation Entries:

`,
		},
	}

	d := report.Default()
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			requireText(t, c.want, d.Build(c.data, format.Ssbh))
		})
	}
}

func TestBuild_AnimTruncatedGroups(t *testing.T) {
	data := ssbhtest.Anim("wait", 59, 4)
	require.Equal(t, "No file info", report.Default().Build(data[:len(data)-1], format.Ssbh))
}

func TestBuild_Prc(t *testing.T) {
	root := tree.Struct{Entries: []tree.Entry{
		tree.Field("a", tree.U8Value(1)),
		tree.Field("b", tree.List{Items: []tree.Node{tree.StringValue("x")}}),
	}}
	d := report.New(report.WithDecoders(report.Decoders{Prc: withData(root)}))

	requireText(t, "Smash Ultimate Parameter File\n\n- a: 1\n- b:\n    -  x\n", d.Build(nil, format.Prc))
}

func TestBuild_Nus3audio(t *testing.T) {
	d := report.New(report.WithDecoders(report.Decoders{
		Nus3audio: withData(&nus3audio.File{Files: []nus3audio.AudioFile{
			{ID: 0, Name: "se_a", Data: []byte("OPUS1234")},
			{ID: 12, Name: "se_b", Data: make([]byte, 1536)},
		}}),
	}))

	want := "Namco Audio Container\n\nFiles:\n[ 0] se_a.lopus (8 B)\n[12] se_b.idsp (1.50 KiB)\n"
	requireText(t, want, d.Build(nil, format.Nus3audio))
}

func TestBuild_Sli(t *testing.T) {
	file := &sli.File{Entries: []sli.Entry{
		{ToneName: hash40.New("se_mario_jump01"), Nus3bankID: 0x1a, ToneID: 0},
		{ToneName: hash40.New("unlisted"), Nus3bankID: 2, ToneID: 0xff},
	}}

	d := report.New(
		report.WithLabels(hash40.NewLabels("se_mario_jump01")),
		report.WithDecoders(report.Decoders{Sli: withData(file)}),
	)

	want := "Sound Label Info File\n\n" +
		"- se_mario_jump01\n    - nus3bank_id: 0x1a\n    - tone_id: 0x0\n" +
		"- " + hash40.New("unlisted").String() + "\n    - nus3bank_id: 0x2\n    - tone_id: 0xff\n"
	requireText(t, want, d.Build(nil, format.Sli))
}

type volume struct {
	Fighters int     `yaml:"fighters"`
	Volume   float64 `yaml:"volume"`
}

func TestBuild_SoundTables(t *testing.T) {
	dec := withData[any](volume{Fighters: 2, Volume: 0.75})
	d := report.New(report.WithDecoders(report.Decoders{Csb: dec, Sqb: dec, Fnv: dec, Svt: dec}))

	body := "fighters: 2\nvolume: 0.75\n"
	requireText(t, "Common Sound Table File\n"+body, d.Build(nil, format.Csb))
	requireText(t, "Sound Sequence Data File\n"+body, d.Build(nil, format.Sqb))
	requireText(t, "Smash Ultimate 'Volume by Fighter Count' File\n"+body, d.Build(nil, format.Fnv))
	requireText(t, "Smash Ultimate Sound Volume Table File\n"+body, d.Build(nil, format.Svt))
}

func TestBuild_SoundTableFiles(t *testing.T) {
	name := uint64(hash40.New("se_mario_jump01"))

	csb := reader.NewBuilder().Str("CSB\x00").U32(1).U32(1).U64(name).U32(2).F32(0.5)
	fnv := reader.NewBuilder().Str("FNV\x00").U32(1).U32(1).U32(4).F32(0.75)
	svt := reader.NewBuilder().Str("SVT\x00").U32(1).U32(1).U64(name).F32(0.25)
	sqb := reader.NewBuilder().Str("SQB\x00").U32(1).U32(1).U32(16).U64(name).U32(1).U64(name)

	cases := []struct {
		f     format.Format
		data  []byte
		title string
		want  map[string]any
	}{
		{format.Csb, csb.Bytes(), "Common Sound Table File\n", map[string]any{
			"version": 1,
			"entries": []any{map[string]any{"name": "se_mario_jump01", "category": 2, "volume": 0.5}},
		}},
		{format.Fnv, fnv.Bytes(), "Smash Ultimate 'Volume by Fighter Count' File\n", map[string]any{
			"version": 1,
			"entries": []any{map[string]any{"fighter_count": 4, "volume": 0.75}},
		}},
		{format.Svt, svt.Bytes(), "Smash Ultimate Sound Volume Table File\n", map[string]any{
			"version": 1,
			"entries": []any{map[string]any{"name": "se_mario_jump01", "volume": 0.25}},
		}},
		{format.Sqb, sqb.Bytes(), "Sound Sequence Data File\n", map[string]any{
			"version":   1,
			"sequences": []any{map[string]any{"name": "se_mario_jump01", "sounds": []any{"se_mario_jump01"}}},
		}},
	}

	d := report.New(report.WithLabels(hash40.NewLabels("se_mario_jump01")))
	for _, c := range cases {
		t.Run(c.f.String(), func(t *testing.T) {
			got := d.Build(c.data, c.f)
			require.True(t, strings.HasPrefix(got, c.title), got)

			var body map[string]any
			require.NoError(t, yaml.Unmarshal([]byte(strings.TrimPrefix(got, c.title)), &body))
			if diff := cmp.Diff(c.want, body); diff != "" {
				t.Errorf("YAML mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWithBuilder(t *testing.T) {
	d := report.New(report.WithBuilder(format.Csb, report.BuilderFunc(func(buf []byte) string {
		return "custom " + string(buf)
	})))

	require.Equal(t, "custom CSB", d.Build([]byte("CSB"), format.Csb))
	require.Equal(t, "Namco Texture", d.Build(nil, format.Nutexb))
}
