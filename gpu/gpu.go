// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gpu defines the small GPU surface the viewer renders through:
// texture creation and deletion, the six image programs, the pixel text
// program, and viewport/scissor per view.
//
// The viewer never creates a GPU device itself. The host passes an
// implementation of Device (see backend/native for the wgpu HAL one).
package gpu

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
)

var (
	// ErrUnsupportedFormat is returned when no texture format exists for a
	// datatype and channel count.
	ErrUnsupportedFormat = errors.New("gpu: unsupported texture format")

	// ErrTextureSizeMismatch is returned when texture data does not match
	// the descriptor's extent and format.
	ErrTextureSizeMismatch = errors.New("gpu: texture data size mismatch")

	// ErrNoFrame is returned by draw calls issued outside BeginFrame/EndFrame.
	ErrNoFrame = errors.New("gpu: no frame in progress")

	// ErrTooManyQuads is returned by DrawText for more than MaxTextQuads
	// quads in one call.
	ErrTooManyQuads = errors.New("gpu: too many text quads in one draw")
)

// TextureDescriptor describes a 2D texture.
type TextureDescriptor struct {
	Label  string
	Width  int
	Height int
	Format gputypes.TextureFormat

	// Filter is the sampling filter used when the texture is sampled
	// rather than loaded texel by texel. Undefined means nearest.
	Filter gputypes.FilterMode
	// Address applies to both axes. Undefined means clamp-to-edge.
	Address gputypes.AddressMode
}

// Validate checks that data has exactly the size the descriptor implies.
func (d *TextureDescriptor) Validate(data []byte) error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: %dx%d texture %q", ErrTextureSizeMismatch, d.Width, d.Height, d.Label)
	}
	bpt := BytesPerTexel(d.Format)
	if bpt == 0 {
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, d.Format)
	}
	if want := d.Width * d.Height * bpt; len(data) != want {
		return fmt.Errorf("%w: texture %q has %d bytes, want %d", ErrTextureSizeMismatch, d.Label, len(data), want)
	}
	return nil
}

// Texture is a GPU texture owned by whoever created it through a Device.
type Texture interface {
	Label() string
	Width() int
	Height() int
	Format() gputypes.TextureFormat
}

// Rect is a rectangle in device pixels, origin at the top-left corner of
// the canvas.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Intersect returns the part of r inside a width x height canvas.
func (r Rect) Intersect(width, height int) Rect {
	x0, y0 := max(r.X, 0), max(r.Y, 0)
	x1, y1 := min(r.X+r.Width, width), min(r.Y+r.Height, height)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, Width: x1 - x0, Height: y1 - y0}
}

// ImageTextures are the textures bound for one image draw.
type ImageTextures struct {
	// Channels holds one texture for packed images and one per channel
	// for planar images.
	Channels [4]Texture
	// Colormap is the 1xN palette texture, nil unless the uniforms
	// enable colormap lookup.
	Colormap Texture
}

// Device is the GPU interface the renderer consumes. All methods are
// called from the render thread.
//
// A frame is BeginFrame, any number of SetViewport/Draw calls, then
// EndFrame. SetViewport sets viewport and scissor together so views
// sharing one canvas never draw over each other.
type Device interface {
	CreateTexture(desc *TextureDescriptor, data []byte) (Texture, error)
	DestroyTexture(t Texture)

	BeginFrame(width, height int) error
	SetViewport(r Rect)
	DrawImage(p Program, u *ImageUniforms, tex *ImageTextures) error
	DrawText(u *TextUniforms, atlas Texture, vertices []TextVertex) error
	EndFrame() error
}
