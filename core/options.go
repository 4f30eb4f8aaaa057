// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package core

import (
	"fmt"
	"strings"
)

// Coloring selects how channel values become display colors.
type Coloring uint8

// Coloring modes.
const (
	ColoringDefault Coloring = iota
	ColoringGrayscale
	ColoringR
	ColoringG
	ColoringB
	ColoringSwapRGBBGR
	ColoringSegmentation
	ColoringHeatmap
)

var coloringNames = [...]string{
	ColoringDefault:      "default",
	ColoringGrayscale:    "grayscale",
	ColoringR:            "r",
	ColoringG:            "g",
	ColoringB:            "b",
	ColoringSwapRGBBGR:   "swap_rgb_bgr",
	ColoringSegmentation: "segmentation",
	ColoringHeatmap:      "heatmap",
}

// String returns the lower-case mode name.
func (c Coloring) String() string {
	if int(c) < len(coloringNames) {
		return coloringNames[c]
	}
	return fmt.Sprintf("Coloring(%d)", uint8(c))
}

// ParseColoring is the inverse of Coloring.String, case-insensitive.
func ParseColoring(s string) (Coloring, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range coloringNames {
		if name == s {
			return Coloring(i), nil
		}
	}
	return ColoringDefault, fmt.Errorf("core: unknown coloring %q", s)
}

// UsesColormap reports whether the mode samples a palette.
func (c Coloring) UsesColormap() bool {
	return c == ColoringHeatmap || c == ColoringSegmentation
}

// Clip optionally overrides the computed data range. A nil bound falls back
// to the computed value.
type Clip struct {
	Min *float32
	Max *float32
}

// Bounds resolves the clip range for one channel against computed statistics.
func (c Clip) Bounds(computedMin, computedMax float32) (lo, hi float32) {
	lo, hi = computedMin, computedMax
	if c.Min != nil {
		lo = *c.Min
	}
	if c.Max != nil {
		hi = *c.Max
	}
	return lo, hi
}

// DrawingOptions are the per-image display settings.
type DrawingOptions struct {
	Coloring     Coloring
	Invert       bool
	HighContrast bool
	IgnoreAlpha  bool
	// ZerosAsTransparent discards pixels that are zero in every channel.
	ZerosAsTransparent bool
	Clip               Clip
	// BatchItem selects the frame of a batched image; nil means item 0.
	BatchItem *uint32
}

// GlobalDrawingOptions name the palettes used by the colormap modes.
type GlobalDrawingOptions struct {
	HeatmapColormap      string
	SegmentationColormap string
}

// DefaultGlobalDrawingOptions returns fire for heatmaps and glasbey for
// segmentation.
func DefaultGlobalDrawingOptions() GlobalDrawingOptions {
	return GlobalDrawingOptions{
		HeatmapColormap:      "fire",
		SegmentationColormap: "glasbey",
	}
}

// ColormapFor returns the palette name used by coloring mode c, or "" when
// the mode does not use a palette.
func (g GlobalDrawingOptions) ColormapFor(c Coloring) string {
	switch c {
	case ColoringHeatmap:
		return g.HeatmapColormap
	case ColoringSegmentation:
		return g.SegmentationColormap
	default:
		return ""
	}
}

// Float32Ptr returns a pointer to v. Convenient for Clip literals.
func Float32Ptr(v float32) *float32 { return &v }

// Uint32Ptr returns a pointer to v. Convenient for BatchItem literals.
func Uint32Ptr(v uint32) *uint32 { return &v }
