package sound_test

import (
	"testing"

	"github.com/ostafen/smushinfo/internal/hash40"
	"github.com/ostafen/smushinfo/internal/sound"
	"github.com/ostafen/smushinfo/pkg/reader"
	"github.com/stretchr/testify/require"
)

func hash(s string) uint64 {
	return uint64(hash40.New(s))
}

func TestDecodeCsb(t *testing.T) {
	b := reader.NewBuilder().Str(sound.CsbMagic).U32(1).U32(2)
	b.U64(hash("se_mario_jump01")).U32(3).F32(0.5)
	b.U64(0x0a1b2c3d4e).U32(0).F32(1)

	f, err := sound.DecodeCsb(b.Bytes(), hash40.NewLabels("se_mario_jump01"))
	require.NoError(t, err)
	require.Equal(t, &sound.Csb{
		Version: 1,
		Entries: []sound.CsbEntry{
			{Name: "se_mario_jump01", Category: 3, Volume: 0.5},
			{Name: "0x0a1b2c3d4e", Category: 0, Volume: 1},
		},
	}, f)
}

func TestDecodeFnv(t *testing.T) {
	b := reader.NewBuilder().Str(sound.FnvMagic).U32(2).U32(3)
	b.U32(2).F32(1).U32(3).F32(0.75).U32(4).F32(0.5)

	f, err := sound.DecodeFnv(b.Bytes())
	require.NoError(t, err)
	require.Equal(t, uint32(2), f.Version)
	require.Equal(t, []sound.FnvEntry{
		{FighterCount: 2, Volume: 1},
		{FighterCount: 3, Volume: 0.75},
		{FighterCount: 4, Volume: 0.5},
	}, f.Entries)
}

func TestDecodeSvt(t *testing.T) {
	b := reader.NewBuilder().Str(sound.SvtMagic).U32(1).U32(1)
	b.U64(hash("bgm")).F32(0.25)

	f, err := sound.DecodeSvt(b.Bytes(), hash40.NewLabels("bgm"))
	require.NoError(t, err)
	require.Equal(t, []sound.SvtEntry{{Name: "bgm", Volume: 0.25}}, f.Entries)
}

func TestDecodeSqb(t *testing.T) {
	b := reader.NewBuilder().Str(sound.SqbMagic).U32(1).U32(2)
	offsets := b.Len()
	b.Zeros(8)

	b.PutU32At(offsets, uint32(b.Len()))
	b.U64(hash("seq_jump")).U32(2).U64(hash("se_a")).U64(hash("se_b"))
	b.PutU32At(offsets+4, uint32(b.Len()))
	b.U64(hash("seq_empty")).U32(0)

	labels := hash40.NewLabels("seq_jump", "seq_empty", "se_a", "se_b")
	f, err := sound.DecodeSqb(b.Bytes(), labels)
	require.NoError(t, err)
	require.Equal(t, []sound.Sequence{
		{Name: "seq_jump", Sounds: []string{"se_a", "se_b"}},
		{Name: "seq_empty", Sounds: []string{}},
	}, f.Sequences)
}

func TestDecode_Errors(t *testing.T) {
	_, err := sound.DecodeFnv([]byte("FNV"))
	require.Error(t, err)

	_, err = sound.DecodeFnv([]byte("SVT\x00\x01\x00\x00\x00\x00\x00\x00\x00"))
	require.ErrorIs(t, err, sound.ErrInvalidMagic)

	// entry count larger than the file
	b := reader.NewBuilder().Str(sound.CsbMagic).U32(1).U32(0xFFFFFFFF).U64(0)
	_, err = sound.DecodeCsb(b.Bytes(), nil)
	require.ErrorIs(t, err, reader.ErrOutOfBounds)

	b = reader.NewBuilder().Str(sound.SvtMagic).U32(1).U32(2).U64(0).F32(0)
	_, err = sound.DecodeSvt(b.Bytes(), nil)
	require.ErrorIs(t, err, reader.ErrOutOfBounds)

	// sequence offset past the end
	b = reader.NewBuilder().Str(sound.SqbMagic).U32(1).U32(1).U32(0x1000)
	_, err = sound.DecodeSqb(b.Bytes(), nil)
	require.ErrorIs(t, err, reader.ErrOutOfBounds)

	// sound count larger than the file
	b = reader.NewBuilder().Str(sound.SqbMagic).U32(1).U32(1).U32(16).U64(0).U32(0x40000000)
	_, err = sound.DecodeSqb(b.Bytes(), nil)
	require.ErrorIs(t, err, reader.ErrOutOfBounds)
}
