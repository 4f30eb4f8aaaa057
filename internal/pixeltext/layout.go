package pixeltext

import (
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/imview/gpu"
	"github.com/gogpu/imview/internal/mat"
)

// Grid is the number of character columns and text rows a pixel cell is
// divided into.
const Grid = 5

// Label is the text drawn inside image pixel (X, Y), one line per channel.
type Label struct {
	X, Y  int
	Lines []string
	Color mat.Vec4
}

type placed struct {
	g    glyph
	penX float32
}

// run is a shaped line in atlas pixels.
type run struct {
	glyphs  []placed
	advance float32
}

func (a *Atlas) shape(line string) (run, error) {
	return a.runs.GetOrCreate(line, func() (run, error) {
		runes := []rune(line)
		out := a.shaper.Shape(shaping.Input{
			Text:      runes,
			RunStart:  0,
			RunEnd:    len(runes),
			Direction: di.DirectionLTR,
			Face:      a.face,
			Size:      fixed.Int26_6(a.glyphSize * 64),
			Script:    language.Latin,
			Language:  language.NewLanguage("en"),
		})
		r := run{glyphs: make([]placed, 0, len(out.Glyphs))}
		var pen float32
		for _, sg := range out.Glyphs {
			g, ok := a.glyphs[sg.GlyphID]
			if !ok {
				return run{}, fmt.Errorf("%w: glyph %d in %q", ErrUnknownRune, sg.GlyphID, line)
			}
			r.glyphs = append(r.glyphs, placed{g: g, penX: pen + fixedToFloat(sg.XOffset)})
			pen += fixedToFloat(sg.Advance)
		}
		r.advance = pen
		return r, nil
	})
}

// AppendQuads appends the quads of l to dst. Vertex positions are in image
// pixel coordinates: each text row is 1/Grid of a pixel tall and the block
// of rows is centered in the pixel.
func (a *Atlas) AppendQuads(dst []gpu.TextVertex, l Label) ([]gpu.TextVertex, error) {
	if len(l.Lines) == 0 {
		return dst, nil
	}
	scale := 1 / (Grid * a.lineH)
	inv := 1 / float32(a.size)
	cx := float32(l.X) + 0.5
	top := float32(l.Y) + 0.5 - float32(len(l.Lines))/(2*Grid)

	for i, line := range l.Lines {
		r, err := a.shape(line)
		if err != nil {
			return dst, err
		}
		x0 := cx - r.advance*scale/2
		baseline := top + float32(i)/Grid + a.ascent*scale
		for _, p := range r.glyphs {
			reg := p.g.region
			if reg.Empty() {
				continue
			}
			px := x0 + (p.penX+float32(p.g.offX))*scale
			py := baseline + float32(p.g.offY)*scale
			w, h := float32(reg.Width)*scale, float32(reg.Height)*scale
			u0, v0 := float32(reg.X)*inv, float32(reg.Y)*inv
			u1, v1 := float32(reg.X+reg.Width)*inv, float32(reg.Y+reg.Height)*inv
			dst = append(dst,
				gpu.TextVertex{Position: mat.Vec2{X: px, Y: py}, UV: mat.Vec2{X: u0, Y: v0}, Color: l.Color},
				gpu.TextVertex{Position: mat.Vec2{X: px + w, Y: py}, UV: mat.Vec2{X: u1, Y: v0}, Color: l.Color},
				gpu.TextVertex{Position: mat.Vec2{X: px + w, Y: py + h}, UV: mat.Vec2{X: u1, Y: v1}, Color: l.Color},
				gpu.TextVertex{Position: mat.Vec2{X: px, Y: py + h}, UV: mat.Vec2{X: u0, Y: v1}, Color: l.Color},
			)
		}
	}
	return dst, nil
}
