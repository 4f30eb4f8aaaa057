// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gputest provides a recording gpu.Device for tests.
package gputest

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/imview/gpu"
)

// Texture is the texture type created by Device.
type Texture struct {
	Desc      gpu.TextureDescriptor
	Data      []byte
	Destroyed bool
}

func (t *Texture) Label() string                  { return t.Desc.Label }
func (t *Texture) Width() int                     { return t.Desc.Width }
func (t *Texture) Height() int                    { return t.Desc.Height }
func (t *Texture) Format() gputypes.TextureFormat { return t.Desc.Format }

// ImageDraw records one DrawImage call.
type ImageDraw struct {
	Viewport gpu.Rect
	Program  gpu.Program
	Uniforms gpu.ImageUniforms
	Textures gpu.ImageTextures
}

// TextDraw records one DrawText call.
type TextDraw struct {
	Viewport gpu.Rect
	Uniforms gpu.TextUniforms
	Atlas    gpu.Texture
	Vertices []gpu.TextVertex
}

// Device implements gpu.Device in memory and records every call.
type Device struct {
	Textures []*Texture
	Images   []ImageDraw
	Texts    []TextDraw
	Frames   int

	Width, Height int
	Viewport      gpu.Rect

	// FailTextures makes CreateTexture fail for the given labels.
	FailTextures map[string]bool
	// FailPrograms makes DrawImage fail for the given programs.
	FailPrograms map[gpu.Program]bool

	inFrame bool
}

// New returns an empty recording device.
func New() *Device { return &Device{} }

func (d *Device) CreateTexture(desc *gpu.TextureDescriptor, data []byte) (gpu.Texture, error) {
	if d.FailTextures[desc.Label] {
		return nil, fmt.Errorf("gputest: texture %q: %w", desc.Label, errors.New("injected failure"))
	}
	if err := desc.Validate(data); err != nil {
		return nil, err
	}
	t := &Texture{Desc: *desc, Data: append([]byte(nil), data...)}
	d.Textures = append(d.Textures, t)
	return t, nil
}

func (d *Device) DestroyTexture(t gpu.Texture) {
	if tex, ok := t.(*Texture); ok {
		tex.Destroyed = true
	}
}

func (d *Device) BeginFrame(width, height int) error {
	d.Width, d.Height = width, height
	d.Images, d.Texts = nil, nil
	d.inFrame = true
	return nil
}

func (d *Device) SetViewport(r gpu.Rect) { d.Viewport = r }

func (d *Device) DrawImage(p gpu.Program, u *gpu.ImageUniforms, tex *gpu.ImageTextures) error {
	if !d.inFrame {
		return gpu.ErrNoFrame
	}
	if d.FailPrograms[p] {
		return fmt.Errorf("gputest: program %v: %w", p, errors.New("injected failure"))
	}
	d.Images = append(d.Images, ImageDraw{Viewport: d.Viewport, Program: p, Uniforms: *u, Textures: *tex})
	return nil
}

func (d *Device) DrawText(u *gpu.TextUniforms, atlas gpu.Texture, vertices []gpu.TextVertex) error {
	if !d.inFrame {
		return gpu.ErrNoFrame
	}
	if len(vertices) > 4*gpu.MaxTextQuads {
		return gpu.ErrTooManyQuads
	}
	d.Texts = append(d.Texts, TextDraw{
		Viewport: d.Viewport,
		Uniforms: *u,
		Atlas:    atlas,
		Vertices: append([]gpu.TextVertex(nil), vertices...),
	})
	return nil
}

func (d *Device) EndFrame() error {
	if !d.inFrame {
		return gpu.ErrNoFrame
	}
	d.inFrame = false
	d.Frames++
	return nil
}

// Live returns the textures created and not yet destroyed.
func (d *Device) Live() []*Texture {
	var out []*Texture
	for _, t := range d.Textures {
		if !t.Destroyed {
			out = append(out, t)
		}
	}
	return out
}

var _ gpu.Device = (*Device)(nil)
