// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws every visible view of the viewer into one shared
// canvas.
//
// # Key Principle
//
// The renderer RECEIVES a gpu.Device from the host, it does not create
// one. Per frame it walks the views of a Scene, and for each view whose
// image is resident it sets the viewport to the view's rectangle, draws
// the image quad with the program variant for its layout and data type,
// draws the overlay image on top, and, once pixels are large enough on
// screen, pixel borders and per-pixel value labels.
//
// # Failure Handling
//
// A failing view is logged and skipped; the other views of the frame are
// still drawn. Only frame setup errors (BeginFrame, EndFrame) are returned.
package render
