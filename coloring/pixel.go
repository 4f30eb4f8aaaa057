package coloring

import (
	"math"

	"github.com/gogpu/imview/core"
	"github.com/gogpu/imview/internal/mat"
)

// Palette is the CPU view of a colormap.
type Palette interface {
	Len() int
	RGB(i int) [3]float32
	// Interpolated reports whether lookups blend neighboring entries.
	Interpolated() bool
}

// Apply evaluates the transform on raw, unnormalized channel values, exactly
// as the image shader does before clamping. Clip bounds apply to
// single-channel images only.
func (t Transform) Apply(raw [4]float32, channels int) mat.Vec4 {
	v := mat.Vec4(raw)
	if channels == 1 {
		if t.Clip.Min != nil && v[0] < *t.Clip.Min {
			v[0] = *t.Clip.Min
		}
		if t.Clip.Max != nil && v[0] > *t.Clip.Max {
			v[0] = *t.Clip.Max
		}
	}
	return t.Multiplier.MulVec4(v.Div(t.NormalizationFactor)).Add(t.Addition)
}

// PixelColor returns the clamped display color of pv, with RGB inverted
// when invert is set.
func (t Transform) PixelColor(pv core.PixelValue, invert bool) mat.Vec4 {
	c := t.Apply(pv.AsRGBA(), pv.Channels).Clamp(0, 1)
	if invert {
		c = invertRGB(c)
	}
	return c
}

// ColormapColor returns the palette entry selected by the transformed red
// channel of pv. Alpha is always 1.
func ColormapColor(pv core.PixelValue, t Transform, p Palette, invert bool) mat.Vec4 {
	c := t.Apply(pv.AsRGBA(), pv.Channels)
	if invert {
		c = invertRGB(c)
	}
	if p.Len() == 0 {
		return mat.Vec4{0, 0, 0, 1}
	}
	rgb := PaletteColor(c[0], p)
	return mat.Vec4{rgb[0], rgb[1], rgb[2], 1}
}

// PaletteColor looks up v in p the way the image shader does: the nearest
// entry, or for interpolated palettes a clamp-to-edge linear sample with
// entry i centered at (i+0.5)/n. p must not be empty.
func PaletteColor(v float32, p Palette) [3]float32 {
	n := p.Len()
	if !p.Interpolated() {
		return p.RGB(PaletteIndex(v, n))
	}
	if math.IsNaN(float64(v)) {
		v = 0
	}
	t := min(max(v*float32(n)-0.5, 0), float32(n-1))
	i0 := int(t)
	i1 := min(i0+1, n-1)
	f := t - float32(i0)
	a, b := p.RGB(i0), p.RGB(i1)
	return [3]float32{
		a[0] + (b[0]-a[0])*f,
		a[1] + (b[1]-a[1])*f,
		a[2] + (b[2]-a[2])*f,
	}
}

// PaletteIndex maps a sampling value to the nearest of n palette entries.
// NaN maps to entry 0.
func PaletteIndex(v float32, n int) int {
	if math.IsNaN(float64(v)) || v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return int(math.Round(float64(v) * float64(n-1)))
}

// TextColor picks black or white text for a pixel of color c so that the
// label stays readable. Pixels with alpha below one half, or whose
// luminance is NaN, always get black text.
func TextColor(c mat.Vec4, invert bool) mat.Vec4 {
	gray := 0.299*c[0] + 0.587*c[1] + 0.114*c[2]
	if math.IsNaN(float64(gray)) || c[3] < 0.5 {
		return mat.Vec4{0, 0, 0, 1}
	}
	v := 1 - float32(math.Floor(float64(gray)+0.5))
	if invert {
		v = 1 - v
	}
	return mat.Vec4{v, v, v, 1}
}

// LabelColor returns the text color for the value label of pv, following
// the same path as the pixel on screen: the palette color for colormap
// modes, the transformed color otherwise.
func LabelColor(pv core.PixelValue, t Transform, opts *core.DrawingOptions, p Palette) mat.Vec4 {
	if opts.Coloring.UsesColormap() && p != nil {
		return TextColor(ColormapColor(pv, t, p, opts.Invert), false)
	}
	return TextColor(t.Apply(pv.AsRGBA(), pv.Channels), opts.Invert)
}

func invertRGB(c mat.Vec4) mat.Vec4 {
	return mat.Vec4{1 - c[0], 1 - c[1], 1 - c[2], c[3]}
}
