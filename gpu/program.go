// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/imview/core"
)

// Program identifies one of the image shader variants: data ordering
// crossed with the datatype family the shader samples.
type Program uint8

const (
	ProgramPackedUnsigned Program = iota
	ProgramPackedSigned
	ProgramPackedFloat
	ProgramPlanarUnsigned
	ProgramPlanarSigned
	ProgramPlanarFloat

	programCount
)

// Programs lists every image program.
func Programs() []Program {
	out := make([]Program, 0, programCount)
	for p := Program(0); p < programCount; p++ {
		out = append(out, p)
	}
	return out
}

// ProgramFor selects the program for an image. A planar image with a
// single channel is laid out exactly like a packed one and uses the
// packed program.
func ProgramFor(ordering core.DataOrdering, channels int, dt core.DataType) Program {
	var p Program
	switch dt.Family() {
	case core.FamilySigned:
		p = ProgramPackedSigned
	case core.FamilyFloat:
		p = ProgramPackedFloat
	default:
		p = ProgramPackedUnsigned
	}
	if ordering == core.Planar && channels > 1 {
		p += ProgramPlanarUnsigned
	}
	return p
}

// Planar reports whether p binds one texture per channel.
func (p Program) Planar() bool { return p >= ProgramPlanarUnsigned && p < programCount }

// SampleType is the texture sample type the program's texture bindings use.
func (p Program) SampleType() gputypes.TextureSampleType {
	switch p % ProgramPlanarUnsigned {
	case ProgramPackedSigned:
		return gputypes.TextureSampleTypeSint
	case ProgramPackedFloat:
		return gputypes.TextureSampleTypeUnfilterableFloat
	default:
		return gputypes.TextureSampleTypeUint
	}
}

// String returns names like "packed_uint" or "planar_float".
func (p Program) String() string {
	if p >= programCount {
		return "unknown"
	}
	layout := "packed"
	if p.Planar() {
		layout = "planar"
	}
	switch p.SampleType() {
	case gputypes.TextureSampleTypeSint:
		return layout + "_int"
	case gputypes.TextureSampleTypeUnfilterableFloat:
		return layout + "_float"
	default:
		return layout + "_uint"
	}
}
