// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package core defines the data model shared by every imview package:
// image metadata, raw pixel access, per-channel statistics and the drawing
// options that drive the color transform.
//
// Pixel buffers are raw little-endian arrays laid out either packed (HWC)
// or planar (CHW). Nothing in this package touches the GPU.
package core
