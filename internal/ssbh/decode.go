// Copyright (c) 2025 Stefano Scafiti
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package ssbh

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/ostafen/smushinfo/pkg/reader"
)

// Container and payload magics as stored on disk.
const (
	MagicHBSS = "HBSS"
	MagicSSBH = "SSBH"

	magicAnim = "MINA"
	magicSkel = "LEKS"
	magicModl = "LDOM"
	magicMesh = "HSEM"
	magicMatl = "LTAM"
	magicHlpb = "BPLH"
)

const (
	payloadMagicOffset = 0x10
	fieldsOffset       = 0x14
)

var ErrInvalidMagic = errors.New("ssbh: invalid magic")

// Decode reads the container header and the payload it wraps. Skeletons,
// models, meshes, materials, helper bones and animations are decoded; every
// other payload is returned as Unknown.
//
// Pointers inside the payload are 64-bit offsets relative to the field that
// holds them. Arrays are a relative offset followed by a 64-bit count.
func Decode(data []byte) (Data, error) {
	r := reader.NewByteReader(data)

	magic, err := r.Bytes(4)
	if err != nil {
		return nil, err
	}
	if m := string(magic); m != MagicHBSS && m != MagicSSBH {
		return nil, ErrInvalidMagic
	}

	if err := r.Seek(payloadMagicOffset); err != nil {
		return nil, err
	}
	payload, err := r.Bytes(4)
	if err != nil {
		return nil, err
	}

	d := &decoder{r: r}

	switch string(payload) {
	case magicSkel:
		return d.skel()
	case magicModl:
		return d.modl()
	case magicAnim:
		return d.anim()
	case magicMesh:
		return d.mesh()
	case magicMatl:
		return d.matl()
	case magicHlpb:
		return d.hlpb()
	}
	return Unknown{Magic: string(payload)}, nil
}

type decoder struct {
	r *reader.ByteReader
}

func (d *decoder) version() (Version, error) {
	if err := d.r.Seek(fieldsOffset); err != nil {
		return Version{}, err
	}
	major, err := d.r.U16()
	if err != nil {
		return Version{}, err
	}
	minor, err := d.r.U16()
	return Version{Major: major, Minor: minor}, err
}

func (d *decoder) skel() (Data, error) {
	v, err := d.version()
	if err != nil {
		return nil, err
	}

	const stride = 16
	start, count, err := d.array(d.r.Offset(), stride)
	if err != nil {
		return nil, fmt.Errorf("ssbh: bones: %w", err)
	}

	bones := make([]Bone, count)
	for i := range bones {
		pos := start + i*stride

		bones[i].Name = d.str(pos)
		if err := d.r.Seek(pos + 8); err != nil {
			return nil, err
		}
		bones[i].Index, _ = d.r.U16()
		bones[i].Parent, _ = d.r.I16()
		bones[i].Flags, _ = d.r.U32()
	}
	return Skel{Version: v, Bones: bones}, nil
}

func (d *decoder) modl() (Data, error) {
	v, err := d.version()
	if err != nil {
		return nil, err
	}
	pos := d.r.Offset()

	m := Modl{
		Version:          v,
		ModelName:        d.str(pos),
		SkeletonFileName: d.str(pos + 8),
	}

	matStart, matCount, err := d.array(pos+16, 8)
	if err != nil {
		return nil, fmt.Errorf("ssbh: material files: %w", err)
	}
	m.MaterialFileNames = make([]String, matCount)
	for i := range m.MaterialFileNames {
		m.MaterialFileNames[i] = d.str(matStart + 8*i)
	}

	if d.ptr(pos+32) != 0 {
		anim := d.str(pos + 32)
		m.AnimationFileName = &anim
	}
	m.MeshFileName = d.str(pos + 40)

	const stride = 24
	entStart, entCount, err := d.array(pos+48, stride)
	if err != nil {
		return nil, fmt.Errorf("ssbh: model entries: %w", err)
	}
	m.Entries = make([]ModlEntry, entCount)
	for i := range m.Entries {
		e := entStart + i*stride

		m.Entries[i].MeshObjectName = d.str(e)
		if err := d.r.Seek(e + 8); err != nil {
			return nil, err
		}
		m.Entries[i].MeshObjectSubIndex, _ = d.r.U64()
		m.Entries[i].MaterialLabel = d.str(e + 16)
	}
	return m, nil
}

func (d *decoder) anim() (Data, error) {
	v, err := d.version()
	if err != nil {
		return nil, err
	}
	pos := d.r.Offset()

	a := Anim{Version: v, Name: d.str(pos)}

	if err := d.r.Seek(pos + 8); err != nil {
		return nil, err
	}
	if a.FinalFrameIndex, err = d.r.F32(); err != nil {
		return nil, err
	}

	// animation groups: u64 type followed by a node array
	_, count, err := d.array(pos+16, 24)
	if err != nil {
		return nil, fmt.Errorf("ssbh: animations: %w", err)
	}
	a.AnimationCount = count
	return a, nil
}

// Mesh object records carry buffer offsets, bounding volumes and attribute
// arrays after the fields read here.
const meshObjectSize = 208

func (d *decoder) mesh() (Data, error) {
	v, err := d.version()
	if err != nil {
		return nil, err
	}
	pos := d.r.Offset()

	m := Mesh{Version: v, ModelName: d.str(pos)}

	// model name, bounding sphere, box and oriented box, one u32
	start, count, err := d.array(pos+0x70, meshObjectSize)
	if err != nil {
		return nil, fmt.Errorf("ssbh: mesh objects: %w", err)
	}
	m.Objects = make([]MeshObject, count)
	for i := range m.Objects {
		o := start + i*meshObjectSize

		m.Objects[i].Name = d.str(o)
		if err := d.r.Seek(o + 8); err != nil {
			return nil, err
		}
		m.Objects[i].SubIndex, _ = d.r.U64()
		if err := d.r.Seek(o + 24); err != nil {
			return nil, err
		}
		m.Objects[i].VertexCount, _ = d.r.U32()
	}
	return m, nil
}

func (d *decoder) matl() (Data, error) {
	v, err := d.version()
	if err != nil {
		return nil, err
	}

	const stride = 32
	start, count, err := d.array(d.r.Offset(), stride)
	if err != nil {
		return nil, fmt.Errorf("ssbh: materials: %w", err)
	}

	m := Matl{Version: v, Entries: make([]MatlEntry, count)}
	for i := range m.Entries {
		e := start + i*stride

		m.Entries[i].MaterialLabel = d.str(e)
		if m.Entries[i].Attributes, err = d.matlAttributes(e + 8); err != nil {
			return nil, fmt.Errorf("ssbh: material %d: %w", i, err)
		}
		m.Entries[i].ShaderLabel = d.str(e + 24)
	}
	return m, nil
}

// Attribute data types.
const (
	paramFloat   = 0x1
	paramBool    = 0x2
	paramVector4 = 0x5
	paramString  = 0xB
)

func (d *decoder) matlAttributes(pos int) ([]MatlAttribute, error) {
	const stride = 24
	start, count, err := d.array(pos, stride)
	if err != nil {
		return nil, err
	}

	attrs := make([]MatlAttribute, count)
	for i := range attrs {
		a := start + i*stride

		if err := d.r.Seek(a); err != nil {
			return nil, err
		}
		id, _ := d.r.U64()
		attrs[i].ParamID = ParamID(id)

		data := d.ptr(a + 8)
		if err := d.r.Seek(a + 16); err != nil {
			return nil, err
		}
		typ, _ := d.r.U64()
		if data != 0 {
			attrs[i].Param = d.param(data, typ)
		}
	}
	return attrs, nil
}

// param reads the value of type typ stored at pos. Unreadable values yield a
// nil Param.
func (d *decoder) param(pos int, typ uint64) Param {
	if err := d.r.Seek(pos); err != nil {
		return nil
	}

	switch typ {
	case paramFloat:
		v, err := d.r.F32()
		if err != nil {
			return nil
		}
		return FloatParam(v)
	case paramBool:
		v, err := d.r.U32()
		if err != nil {
			return nil
		}
		return BoolParam(v)
	case paramVector4:
		var v [4]float32
		for i := range v {
			f, err := d.r.F32()
			if err != nil {
				return nil
			}
			v[i] = f
		}
		return Vector4Param{X: v[0], Y: v[1], Z: v[2], W: v[3]}
	case paramString:
		return StringParam(d.str(pos))
	}
	return OtherParam{}
}

const (
	aimEntrySize           = 144
	interpolationEntrySize = 112
)

func (d *decoder) hlpb() (Data, error) {
	v, err := d.version()
	if err != nil {
		return nil, err
	}
	pos := d.r.Offset()

	h := Hlpb{Version: v}

	start, count, err := d.array(pos, aimEntrySize)
	if err != nil {
		return nil, fmt.Errorf("ssbh: aim entries: %w", err)
	}
	h.AimEntries = make([]RotateAim, count)
	for i := range h.AimEntries {
		e := start + i*aimEntrySize
		h.AimEntries[i] = RotateAim{
			Name:            d.str(e),
			AimBoneName1:    d.str(e + 8),
			AimBoneName2:    d.str(e + 16),
			AimType1:        d.str(e + 24),
			AimType2:        d.str(e + 32),
			TargetBoneName1: d.str(e + 40),
			TargetBoneName2: d.str(e + 48),
		}
	}

	start, count, err = d.array(pos+16, interpolationEntrySize)
	if err != nil {
		return nil, fmt.Errorf("ssbh: interpolation entries: %w", err)
	}
	h.InterpolationEntries = make([]RotateInterpolation, count)
	for i := range h.InterpolationEntries {
		e := start + i*interpolationEntrySize
		h.InterpolationEntries[i] = RotateInterpolation{
			Name:           d.str(e),
			BoneName:       d.str(e + 8),
			RootBoneName:   d.str(e + 16),
			ParentBoneName: d.str(e + 24),
			DriverBoneName: d.str(e + 32),
			RangeMin:       d.vector3(e + 88),
			RangeMax:       d.vector3(e + 100),
		}
	}
	return h, nil
}

func (d *decoder) vector3(pos int) Vector3 {
	var v Vector3
	if err := d.r.Seek(pos); err != nil {
		return v
	}
	v.X, _ = d.r.F32()
	v.Y, _ = d.r.F32()
	v.Z, _ = d.r.F32()
	return v
}

// ptr returns the absolute position a relative pointer at pos refers to, or
// 0 for a null or unreadable pointer.
func (d *decoder) ptr(pos int) int {
	if err := d.r.Seek(pos); err != nil {
		return 0
	}
	off, err := d.r.U64()
	if err != nil || off == 0 || off > uint64(d.r.Size()) {
		return 0
	}
	return pos + int(off)
}

// str reads the string a relative pointer at pos refers to. Null pointers,
// unterminated and invalid UTF-8 strings yield an invalid String.
func (d *decoder) str(pos int) String {
	target := d.ptr(pos)
	if target == 0 {
		return String{}
	}
	s, err := d.r.CString(target)
	if err != nil || !utf8.ValidString(s) {
		return String{}
	}
	return NewString(s)
}

// array reads the array header at pos and checks that count elements of
// stride bytes fit in the buffer.
func (d *decoder) array(pos int, stride int) (start int, count int, err error) {
	if err := d.r.Seek(pos); err != nil {
		return 0, 0, err
	}
	off, err := d.r.U64()
	if err != nil {
		return 0, 0, err
	}
	n, err := d.r.U64()
	if err != nil {
		return 0, 0, err
	}
	if n == 0 {
		return 0, 0, nil
	}

	size := uint64(d.r.Size())
	if off > size || n > size/uint64(stride) || uint64(pos)+off+n*uint64(stride) > size {
		return 0, 0, fmt.Errorf("%w: %d elements at relative offset %d", reader.ErrOutOfBounds, n, off)
	}
	return pos + int(off), int(n), nil
}
