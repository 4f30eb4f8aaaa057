// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/imview/gpu"
	"github.com/gogpu/wgpu/hal"
)

// Texture is a HAL texture with its default view.
type Texture struct {
	desc    gpu.TextureDescriptor
	texture hal.Texture
	view    hal.TextureView
}

func (t *Texture) Label() string                  { return t.desc.Label }
func (t *Texture) Width() int                     { return t.desc.Width }
func (t *Texture) Height() int                    { return t.desc.Height }
func (t *Texture) Format() gputypes.TextureFormat { return t.desc.Format }

// Raw returns the HAL texture, for hosts that copy or present the render
// target.
func (t *Texture) Raw() hal.Texture { return t.texture }

// View returns the default texture view.
func (t *Texture) View() hal.TextureView { return t.view }

// Released reports whether destroy has run.
func (t *Texture) Released() bool { return t.texture == nil }

// destroy releases the view and texture. Safe to call more than once.
func (t *Texture) destroy(device hal.Device) {
	if t.view != nil {
		device.DestroyTextureView(t.view)
		t.view = nil
	}
	if t.texture != nil {
		device.DestroyTexture(t.texture)
		t.texture = nil
	}
}
