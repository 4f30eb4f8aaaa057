// Package pixeltext draws the numeric value of each visible image pixel
// inside that pixel once the view is zoomed in far enough.
//
// Glyphs for the fixed label alphabet are rasterized once into a single
// channel atlas. Labels are shaped with HarfBuzz and turned into textured
// quads positioned in image pixel coordinates, so one transform per view
// places them on screen.
package pixeltext

import (
	"bytes"
	"errors"
	"fmt"
	"image"

	tsfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/shaping"
	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/imview/gpu"
	"github.com/gogpu/imview/internal/cache"
	"github.com/gogpu/imview/internal/logging"
)

// Alphabet holds every rune a pixel label can contain.
const Alphabet = "0123456789., -+enaif"

// Atlas errors.
var (
	// ErrAtlasFull is returned when the alphabet does not fit the atlas.
	ErrAtlasFull = errors.New("pixeltext: glyph atlas is full")

	// ErrUnknownRune is returned for a label rune outside Alphabet.
	ErrUnknownRune = errors.New("pixeltext: rune not in alphabet")
)

// Defaults for NewAtlas.
const (
	DefaultAtlasSize = 256
	DefaultGlyphSize = 32
	labelCacheSize   = 1024
)

type glyph struct {
	region Region
	// offset of the bitmap's top-left corner from the pen on the baseline.
	offX, offY int
}

// Atlas is the rasterized label alphabet plus the shaper that lays labels
// out against it.
type Atlas struct {
	size      int
	glyphSize float64
	ascent    float32
	lineH     float32

	pixels *image.Alpha
	glyphs map[tsfont.GID]glyph

	face    *tsfont.Face
	shaper  shaping.HarfbuzzShaper
	runs    *cache.Cache[string, run]
	texture gpu.Texture
}

// NewAtlas rasterizes Alphabet from Go Mono at glyphSize pixels into a
// size×size atlas.
func NewAtlas(size int, glyphSize float64) (*Atlas, error) {
	if size <= 0 {
		size = DefaultAtlasSize
	}
	if glyphSize <= 0 {
		glyphSize = DefaultGlyphSize
	}

	parsed, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("pixeltext: parse font: %w", err)
	}
	raster, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    glyphSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("pixeltext: face: %w", err)
	}
	defer raster.Close()

	shapeFace, err := tsfont.ParseTTF(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("pixeltext: parse font for shaping: %w", err)
	}

	m := raster.Metrics()
	a := &Atlas{
		size:      size,
		glyphSize: glyphSize,
		ascent:    fixedToFloat(m.Ascent),
		lineH:     fixedToFloat(m.Ascent + m.Descent),
		pixels:    image.NewAlpha(image.Rect(0, 0, size, size)),
		glyphs:    make(map[tsfont.GID]glyph, len(Alphabet)),
		face:      shapeFace,
		runs:      cache.New[string, run](labelCacheSize),
	}

	alloc := newShelfAllocator(size, size, 1)
	for _, r := range Alphabet {
		gid, ok := shapeFace.NominalGlyph(r)
		if !ok {
			return nil, fmt.Errorf("%w: %q missing from font", ErrUnknownRune, r)
		}
		dr, mask, maskp, _, ok := raster.Glyph(fixed.Point26_6{}, r)
		if !ok {
			return nil, fmt.Errorf("%w: %q has no bitmap", ErrUnknownRune, r)
		}
		g := glyph{offX: dr.Min.X, offY: dr.Min.Y}
		if !dr.Empty() {
			region, ok := alloc.allocate(dr.Dx(), dr.Dy())
			if !ok {
				return nil, fmt.Errorf("%w: %dx%d at glyph size %v", ErrAtlasFull, size, size, glyphSize)
			}
			dst := image.Rect(region.X, region.Y, region.X+region.Width, region.Y+region.Height)
			draw.Draw(a.pixels, dst, mask, maskp, draw.Src)
			g.region = region
		}
		a.glyphs[gid] = g
	}

	logging.Logger().Debug("glyph atlas built", "size", size, "glyphSize", glyphSize,
		"glyphs", len(a.glyphs), "utilization", alloc.utilization())
	return a, nil
}

// Size returns the atlas width and height in pixels.
func (a *Atlas) Size() int { return a.size }

// ShapeStats returns the counters of the shaped line cache.
func (a *Atlas) ShapeStats() cache.Stats { return a.runs.Stats() }

// Pixels returns the coverage bitmap of the atlas.
func (a *Atlas) Pixels() *image.Alpha { return a.pixels }

// Texture uploads the atlas to device on first use and returns it.
func (a *Atlas) Texture(device gpu.Device) (gpu.Texture, error) {
	if a.texture != nil {
		return a.texture, nil
	}
	t, err := device.CreateTexture(&gpu.TextureDescriptor{
		Label:   "pixeltext/atlas",
		Width:   a.size,
		Height:  a.size,
		Format:  gputypes.TextureFormatR8Unorm,
		Filter:  gputypes.FilterModeLinear,
		Address: gputypes.AddressModeClampToEdge,
	}, a.pixels.Pix)
	if err != nil {
		return nil, fmt.Errorf("pixeltext: upload atlas: %w", err)
	}
	a.texture = t
	return t, nil
}

// Release destroys the atlas texture if it was uploaded.
func (a *Atlas) Release(device gpu.Device) {
	if a.texture != nil {
		device.DestroyTexture(a.texture)
		a.texture = nil
	}
}

func fixedToFloat(v fixed.Int26_6) float32 { return float32(v) / 64 }
