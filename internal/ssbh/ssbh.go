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

// Package ssbh holds the data model of SSBH container files (skeletons,
// models, meshes, materials, animations and helper bones) and a reader for
// the subset needed to describe them.
package ssbh

// String is a string field that may be null or hold undecodable bytes.
type String struct {
	value string
	ok    bool
}

func NewString(s string) String {
	return String{value: s, ok: true}
}

// Get returns the string value and whether it is present and valid.
func (s String) Get() (string, bool) {
	return s.value, s.ok
}

// Or returns the value of s, or def when s is null or invalid.
func (s String) Or(def string) string {
	if !s.ok {
		return def
	}
	return s.value
}

type Version struct {
	Major uint16
	Minor uint16
}

// Data is one of Anim, Skel, Mesh, Matl, Modl, Hlpb or Unknown.
type Data interface {
	ssbhData()
}

type Anim struct {
	Version
	Name            String
	FinalFrameIndex float32
	AnimationCount  int
}

type Skel struct {
	Version
	Bones []Bone
}

type Bone struct {
	Name   String
	Index  uint16
	Parent int16
	Flags  uint32
}

type Mesh struct {
	Version
	ModelName String
	Objects   []MeshObject
}

type MeshObject struct {
	Name        String
	SubIndex    uint64
	VertexCount uint32
}

type Matl struct {
	Version
	Entries []MatlEntry
}

type MatlEntry struct {
	MaterialLabel String
	ShaderLabel   String
	Attributes    []MatlAttribute
}

// MatlAttribute is a material parameter. A nil Param means the value could
// not be read.
type MatlAttribute struct {
	ParamID string
	Param   Param
}

type Param interface {
	matlParam()
}

type (
	FloatParam   float32
	BoolParam    uint32
	StringParam  String
	Vector4Param struct{ X, Y, Z, W float32 }
	// OtherParam covers samplers, textures and the remaining parameter kinds.
	OtherParam struct{}
)

type Modl struct {
	Version
	ModelName         String
	SkeletonFileName  String
	MaterialFileNames []String
	// AnimationFileName is nil when the model has no animation.
	AnimationFileName *String
	MeshFileName      String
	Entries           []ModlEntry
}

type ModlEntry struct {
	MeshObjectName     String
	MeshObjectSubIndex uint64
	MaterialLabel      String
}

type Hlpb struct {
	Version
	AimEntries           []RotateAim
	InterpolationEntries []RotateInterpolation
}

type RotateAim struct {
	Name            String
	AimBoneName1    String
	AimBoneName2    String
	AimType1        String
	AimType2        String
	TargetBoneName1 String
	TargetBoneName2 String
}

type Vector3 struct{ X, Y, Z float32 }

type RotateInterpolation struct {
	Name           String
	BoneName       String
	RootBoneName   String
	ParentBoneName String
	DriverBoneName String
	RangeMin       Vector3
	RangeMax       Vector3
}

// Unknown is any SSBH payload without a dedicated model.
type Unknown struct {
	Magic string
}

func (Anim) ssbhData()    {}
func (Skel) ssbhData()    {}
func (Mesh) ssbhData()    {}
func (Matl) ssbhData()    {}
func (Modl) ssbhData()    {}
func (Hlpb) ssbhData()    {}
func (Unknown) ssbhData() {}

func (FloatParam) matlParam()   {}
func (BoolParam) matlParam()    {}
func (StringParam) matlParam()  {}
func (Vector4Param) matlParam() {}
func (OtherParam) matlParam()   {}
