// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package native implements gpu.Device on the wgpu HAL.
//
// # Key Principle
//
// The device and queue come from the host (a window toolkit, a headless
// test harness or the noop backend). Device never opens an adapter and
// never destroys the HAL device it was given.
//
// # Programs
//
// The six image programs share one WGSL template that differs only in the
// texture scalar type and in how channels are loaded. Channel textures are
// read with textureLoad, never sampled, so integer and 32-bit float data
// need no filtering support. The colormap is loaded the same way, picking
// the nearest palette entry. Only the glyph atlas of the pixel text program
// goes through a sampler.
//
// Shaders are compiled from WGSL to SPIR-V with naga when a pipeline is
// first needed.
//
// # Frames
//
// BeginFrame opens one render pass that clears the target. Each draw
// allocates its own uniform buffer and bind group; these live until
// EndFrame has submitted the pass and the device is idle.
package native
