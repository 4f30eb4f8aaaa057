// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"github.com/gogpu/imview/camera"
	"github.com/gogpu/imview/core"
	"github.com/gogpu/imview/gpu"
	"github.com/gogpu/imview/imagecache"
)

// View is one on-screen panel showing one image.
type View struct {
	Name string
	// Rect is the view's area of the canvas in device pixels.
	Rect   gpu.Rect
	Camera camera.Camera
	// Image is the currently viewed image. The zero id shows nothing.
	Image core.ImageID
}

// Scene is the state a frame is drawn from.
type Scene interface {
	// CanvasSize returns the size of the shared canvas in device pixels.
	CanvasSize() (width, height int)
	Views() []View
	Availability(id core.ImageID) imagecache.Availability
	DrawingOptions(id core.ImageID) core.DrawingOptions
	GlobalOptions() core.GlobalDrawingOptions
	Overlay(view string, image core.ImageID) (imagecache.Overlay, bool)
}

// Thresholds are the on-screen pixel sizes, in device pixels, above which
// pixel borders and pixel value labels are drawn.
type Thresholds struct {
	PixelBorder int
	PixelValues int
}

// DefaultThresholds draws borders above 30 and labels above 50 device
// pixels per image pixel.
func DefaultThresholds() Thresholds {
	return Thresholds{PixelBorder: 30, PixelValues: 50}
}
