// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/imview/internal/mat"
)

// ImageUniformSize is the byte size of the image uniform buffer.
// Layout (WGSL uniform address space):
//
//	projection       mat3x3<f32>  48 bytes  offset 0
//	multiplier       mat4x4<f32>  64 bytes  offset 48
//	addition         vec4<f32>    16 bytes  offset 112
//	buffer_dimension vec2<f32>     8 bytes  offset 128
//	normalization    f32           4 bytes  offset 136
//	overlay_alpha    f32           4 bytes  offset 140
//	clip_min         f32           4 bytes  offset 144
//	clip_max         f32           4 bytes  offset 148
//	image_type       u32           4 bytes  offset 152
//	flags            u32           4 bytes  offset 156
const ImageUniformSize = 160

// Image uniform flag bits.
const (
	FlagInvert uint32 = 1 << iota
	FlagClipMin
	FlagClipMax
	FlagColormap
	FlagBorders
	FlagOverlay
	FlagZerosAsTransparent
	// FlagColormapLinear interpolates between colormap entries instead of
	// reading the nearest one.
	FlagColormapLinear
)

// ImageUniforms are the per-draw parameters of an image program.
type ImageUniforms struct {
	Projection          mat.Mat3
	Multiplier          mat.Mat4
	Addition            mat.Vec4
	BufferWidth         float32
	BufferHeight        float32
	NormalizationFactor float32
	OverlayAlpha        float32
	ClipMin             float32
	ClipMax             float32
	// ImageType is the channel count; planar programs use it to pick how
	// many channel textures to read.
	ImageType uint32
	Flags     uint32
}

// Has reports whether every bit of flag is set.
func (u *ImageUniforms) Has(flag uint32) bool { return u.Flags&flag == flag }

// Bytes packs u in the layout described by ImageUniformSize.
func (u *ImageUniforms) Bytes() []byte {
	buf := make([]byte, ImageUniformSize)
	proj := u.Projection.Padded()
	off := putFloats(buf, 0, proj[:]...)
	off = putFloats(buf, off, u.Multiplier[:]...)
	off = putFloats(buf, off, u.Addition[:]...)
	off = putFloats(buf, off,
		u.BufferWidth, u.BufferHeight, u.NormalizationFactor, u.OverlayAlpha,
		u.ClipMin, u.ClipMax)
	binary.LittleEndian.PutUint32(buf[off:], u.ImageType)
	binary.LittleEndian.PutUint32(buf[off+4:], u.Flags)
	return buf
}

// TextUniformSize is the byte size of the text uniform buffer: a single
// mat3x3<f32> mapping image pixel coordinates to clip space.
const TextUniformSize = 48

// TextUniforms are the per-draw parameters of the pixel text program.
type TextUniforms struct {
	Transform mat.Mat3
}

// Bytes packs u for the GPU.
func (u *TextUniforms) Bytes() []byte {
	buf := make([]byte, TextUniformSize)
	m := u.Transform.Padded()
	putFloats(buf, 0, m[:]...)
	return buf
}

// TextVertexStride is the byte stride per text vertex:
//
//	position (vec2<f32>) = 8 bytes   (location 0)
//	uv       (vec2<f32>) = 8 bytes   (location 1)
//	color    (vec4<f32>) = 16 bytes  (location 2)
const TextVertexStride = 32

// TextVertex is one corner of a glyph quad. Position is in image pixel
// coordinates, UV in normalized atlas coordinates.
type TextVertex struct {
	Position mat.Vec2
	UV       mat.Vec2
	Color    mat.Vec4
}

// TextVertexBytes packs vertices for a vertex buffer.
func TextVertexBytes(vertices []TextVertex) []byte {
	buf := make([]byte, len(vertices)*TextVertexStride)
	for i, v := range vertices {
		off := i * TextVertexStride
		off = putFloats(buf, off, v.Position.X, v.Position.Y, v.UV.X, v.UV.Y)
		putFloats(buf, off, v.Color[:]...)
	}
	return buf
}

// MaxTextQuads is the most glyph quads one DrawText call accepts. Text is
// indexed with 16-bit indices, so 4·MaxTextQuads vertices are addressable.
const MaxTextQuads = 16384

// QuadIndices returns two triangles per quad of four consecutive vertices.
// quads must not exceed MaxTextQuads.
func QuadIndices(quads int) []uint16 {
	out := make([]uint16, 0, quads*6)
	for q := range quads {
		b := uint16(q * 4) //nolint:gosec // q < MaxTextQuads
		out = append(out, b, b+1, b+2, b, b+2, b+3)
	}
	return out
}

func putFloats(buf []byte, off int, vals ...float32) int {
	for _, v := range vals {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(v))
		off += 4
	}
	return off
}
