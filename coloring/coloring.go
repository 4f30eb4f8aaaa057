// Package coloring computes the affine color transform that turns raw
// channel values into display colors.
//
// Shaders (and the CPU helpers in this package) evaluate
//
//	color = clamp(Multiplier · (clip(sample) / NormalizationFactor) + Addition, 0, 1)
//
// then optionally invert RGB, then optionally look the red channel up in a
// colormap. Multiplier and Addition are kept separate from the
// normalization factor so that 32-bit integer data does not lose precision
// when folded into one matrix.
package coloring

import (
	"math"

	"github.com/gogpu/imview/core"
	"github.com/gogpu/imview/internal/logging"
	"github.com/gogpu/imview/internal/mat"
)

// Transform is the GPU-ready result of Calculate.
type Transform struct {
	NormalizationFactor float32
	Multiplier          mat.Mat4
	Addition            mat.Vec4
	// Clip is applied to the raw sample of single-channel images before
	// normalization.
	Clip core.Clip
}

// Calculate builds the color transform for an image under the given options.
// Unsupported combinations (a channel-selecting mode on a 1 or 2 channel
// image) log a warning and fall back to the identity reorder.
func Calculate(info *core.ImageInfo, computed *core.ComputedInfo, opts *core.DrawingOptions) Transform {
	dt := info.DataType
	nf := dt.Max()

	rightReorder := identity
	if info.Channels == 2 {
		rightReorder = rgToRedAlpha
	}

	reorder, reorderAdd := reorderFor(info, opts.Coloring)

	stretch, stretchAdd := identity, mat.Vec4{}
	if opts.HighContrast || opts.Coloring == core.ColoringHeatmap {
		stretch, stretchAdd = stretchMatrix(info, computed, opts.Clip)
	}

	if opts.IgnoreAlpha && info.HasAlpha() {
		stretch = ignoreAlpha.Mul(stretch)
		stretchAdd = onlyAlpha(nf).Add(stretchAdd)
	}

	return Transform{
		NormalizationFactor: nf,
		Multiplier:          reorder.Mul(stretch).Mul(rightReorder),
		Addition:            reorder.MulVec4(stretchAdd.Add(reorderAdd).Div(nf)),
		Clip:                opts.Clip,
	}
}

func reorderFor(info *core.ImageInfo, c core.Coloring) (mat.Mat4, mat.Vec4) {
	maxAlpha := onlyAlpha(info.DataType.Max())

	var selected mat.Mat4
	switch c {
	case core.ColoringGrayscale:
		selected = rgbToGrayscale
	case core.ColoringR:
		selected = rgbToR
	case core.ColoringG:
		selected = rgbToG
	case core.ColoringB:
		selected = rgbToB
	case core.ColoringSwapRGBBGR:
		selected = rgbToBGR
	default:
		// Default, Heatmap and Segmentation share the plain reorder.
		switch info.Channels {
		case 1:
			return redAsGrayscale, maxAlpha
		case 2:
			return redAsGrayscale, mat.Vec4{}
		case 3:
			return identity, maxAlpha
		default:
			return identity, mat.Vec4{}
		}
	}

	switch info.Channels {
	case 3:
		return selected, maxAlpha
	case 4:
		return selected, mat.Vec4{}
	default:
		logging.Logger().Warn("coloring not supported for image, using default",
			"coloring", c.String(), "channels", info.Channels, "image", info.ID)
		return identity, mat.Vec4{}
	}
}

// stretchMatrix maps each displayed channel linearly from its [min, max]
// range (clip bounds win over computed ones) onto [0, datatype max].
func stretchMatrix(info *core.ImageInfo, computed *core.ComputedInfo, clip core.Clip) (mat.Mat4, mat.Vec4) {
	dtMax := info.DataType.Max()

	normalizer := func(ch int) (factor, add float32) {
		var lo, hi float32
		if computed != nil {
			lo, hi = computed.Range(ch)
		}
		lo, hi = clip.Bounds(lo, hi)
		denom := float64(hi) - float64(lo)
		if denom == 0 || math.IsNaN(denom) || math.IsInf(denom, 0) {
			logging.Logger().Debug("degenerate value range, stretch skipped",
				"image", info.ID, "channel", ch, "min", lo, "max", hi)
			return 1, 0
		}
		return float32(float64(dtMax) / denom), float32(-float64(dtMax) * float64(lo) / denom)
	}

	if info.Channels <= 2 {
		f, a := normalizer(0)
		return mat.Diagonal4(f, 1, 1, 1), mat.Vec4{a, 0, 0, 0}
	}
	fr, ar := normalizer(0)
	fg, ag := normalizer(1)
	fb, ab := normalizer(2)
	return mat.Diagonal4(fr, fg, fb, 1), mat.Vec4{ar, ag, ab, 0}
}
