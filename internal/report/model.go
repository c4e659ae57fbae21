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
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ostafen/smushinfo/internal/ssbh"
	"github.com/ostafen/smushinfo/internal/tree"
)

const (
	ssbhFallback = "No file info"
	ssbhGeneric  = "SSBH File"

	none            = "None"
	unknownMaterial = "UnknownMaterial"
	unknownShader   = "UnknownShader"
)

const animTemplate = `Namco Animation File v%d.%d

Name: %q
Animations: %d
Frame count: %s
`

const skelTemplate = `Namco Skeleton File v%d.%d

Bone count: %d

Bones:
%s
`

const meshTemplate = `Namco Mesh File v%d.%d

Mesh name: %s
Object count: %d
Vertex count: %d

Mesh Objects:
%s
`

const matlTemplate = `Namco Material Parameter File v%d.%d

Materials (%d):
%s
`

const matlEntryTemplate = `- %s
    - Shader: %s
    - Attributes:
%s
`

const modlTemplate = `Namco Model File v%d.%d

Model: %q
Skeleton File: %q
Animation File: %q
Mesh File: %q

Material Files:
%s

Entries:
%s
`

const hlpbTemplate = `Namco Helper Bone File v%d.%d

Rotate Aim Entries: %d
Rotate Interpolation Entries: %d

Rotate Aim Entries:
%s

Rotate Interpolation Entries:
%s
`

const aimTemplate = `- %s
    - AimBone[0]: %q
    - AimBone[1]: %q
    - AimType[0]: %q
    - AimType[1]: %q
    - TargetBone[0]: %q
    - TargetBone[1]: %q
`

const interpolationTemplate = `- %s
    - Bone: %q
    - Root Bone: %q
    - Parent Bone: %q
    - Driver Bone: %q
    - Minimum Range: %s
    - Maximum Range: %s
`

func ssbhBuilder(dec Decoder[ssbh.Data]) Builder {
	return BuilderFunc(func(buf []byte) string {
		data, err := decode(dec, buf)
		if err != nil {
			return ssbhFallback
		}

		switch d := data.(type) {
		case ssbh.Anim:
			return fmt.Sprintf(animTemplate, d.Major, d.Minor,
				d.Name.Or(none), d.AnimationCount, tree.FormatFloat(d.FinalFrameIndex))
		case ssbh.Skel:
			return fmt.Sprintf(skelTemplate, d.Major, d.Minor, len(d.Bones), boneList(d.Bones))
		case ssbh.Mesh:
			return fmt.Sprintf(meshTemplate, d.Major, d.Minor,
				d.ModelName.Or(none), len(d.Objects), vertexCount(d.Objects), meshList(d.Objects))
		case ssbh.Matl:
			return fmt.Sprintf(matlTemplate, d.Major, d.Minor, len(d.Entries), matlList(d.Entries))
		case ssbh.Modl:
			animation := none
			if d.AnimationFileName != nil {
				animation = d.AnimationFileName.Or(none)
			}
			return fmt.Sprintf(modlTemplate, d.Major, d.Minor,
				d.ModelName.Or(none),
				d.SkeletonFileName.Or(none),
				animation,
				d.MeshFileName.Or(none),
				quotedList(d.MaterialFileNames),
				modlEntryList(d.Entries),
			)
		case ssbh.Hlpb:
			return fmt.Sprintf(hlpbTemplate, d.Major, d.Minor,
				len(d.AimEntries), len(d.InterpolationEntries),
				aimList(d.AimEntries), interpolationList(d.InterpolationEntries))
		}
		return ssbhGeneric
	})
}

// nameList prints "- name" for every valid name, skipping the others.
func nameList(names []ssbh.String) string {
	lines := make([]string, 0, len(names))
	for _, n := range names {
		if s, ok := n.Get(); ok {
			lines = append(lines, "- "+s)
		}
	}
	return strings.Join(lines, "\n")
}

func boneList(bones []ssbh.Bone) string {
	names := make([]ssbh.String, len(bones))
	for i, b := range bones {
		names[i] = b.Name
	}
	return nameList(names)
}

func meshList(objects []ssbh.MeshObject) string {
	names := make([]ssbh.String, len(objects))
	for i, o := range objects {
		names[i] = o.Name
	}
	return nameList(names)
}

func vertexCount(objects []ssbh.MeshObject) uint64 {
	var n uint64
	for _, o := range objects {
		n += uint64(o.VertexCount)
	}
	return n
}

func matlList(entries []ssbh.MatlEntry) string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = fmt.Sprintf(matlEntryTemplate,
			e.MaterialLabel.Or(unknownMaterial),
			e.ShaderLabel.Or(unknownShader),
			matlAttributeList(e.Attributes),
		)
	}
	return strings.Join(out, "\n")
}

func matlAttributeList(attrs []ssbh.MatlAttribute) string {
	lines := make([]string, 0, len(attrs))
	for _, a := range attrs {
		prefix := "        - " + a.ParamID

		switch p := a.Param.(type) {
		case nil:
			continue
		case ssbh.FloatParam:
			lines = append(lines, prefix+": "+tree.FormatFloat(float32(p)))
		case ssbh.BoolParam:
			lines = append(lines, prefix+": "+formatBool(p))
		case ssbh.Vector4Param:
			lines = append(lines, fmt.Sprintf("%s: (%s, %s, %s, %s)", prefix,
				tree.FormatFloat(p.X), tree.FormatFloat(p.Y), tree.FormatFloat(p.Z), tree.FormatFloat(p.W)))
		case ssbh.StringParam:
			lines = append(lines, fmt.Sprintf("%s: %q", prefix, ssbh.String(p).Or("")))
		default:
			lines = append(lines, prefix)
		}
	}
	return strings.Join(lines, "\n")
}

func formatBool(b ssbh.BoolParam) string {
	switch b {
	case 0:
		return "false"
	case 1:
		return "true"
	}
	return strconv.FormatUint(uint64(b), 10)
}

func quotedList(strs []ssbh.String) string {
	lines := make([]string, 0, len(strs))
	for _, s := range strs {
		if v, ok := s.Get(); ok {
			lines = append(lines, fmt.Sprintf("    - %q", v))
		}
	}
	return strings.Join(lines, "\n")
}

func modlEntryList(entries []ssbh.ModlEntry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("    - %s[%d]: %q",
			e.MeshObjectName.Or(none), e.MeshObjectSubIndex, e.MaterialLabel.Or(unknownMaterial))
	}
	return strings.Join(lines, "\n")
}

func aimList(entries []ssbh.RotateAim) string {
	out := make([]string, len(entries))
	for i, a := range entries {
		out[i] = fmt.Sprintf(aimTemplate,
			a.Name.Or(none),
			a.AimBoneName1.Or(none),
			a.AimBoneName2.Or(none),
			a.AimType1.Or(none),
			a.AimType2.Or(none),
			a.TargetBoneName1.Or(none),
			a.TargetBoneName2.Or(none),
		)
	}
	return strings.Join(out, "\n")
}

func interpolationList(entries []ssbh.RotateInterpolation) string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = fmt.Sprintf(interpolationTemplate,
			e.Name.Or(none),
			e.BoneName.Or(none),
			e.RootBoneName.Or(none),
			e.ParentBoneName.Or(none),
			e.DriverBoneName.Or(none),
			formatVector3(e.RangeMin),
			formatVector3(e.RangeMax),
		)
	}
	return strings.Join(out, "\n")
}

func formatVector3(v ssbh.Vector3) string {
	return fmt.Sprintf("(%s, %s, %s)", tree.FormatFloat(v.X), tree.FormatFloat(v.Y), tree.FormatFloat(v.Z))
}
