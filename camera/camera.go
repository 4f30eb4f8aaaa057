// Package camera holds the per-view pan/zoom state and the projection
// math that places an image inside a view without distorting it.
//
// Three coordinate spaces are involved. Image pixels run from (0, 0) to
// (width, height). View units map the whole image onto ViewSize. Canvas
// pixels are the device pixels of the view's rectangle, origin top-left.
package camera

import (
	"math"

	"github.com/gogpu/imview/internal/mat"
)

// Size is a width and height in any unit.
type Size struct {
	Width, Height float32
}

// Aspect returns Width/Height.
func (s Size) Aspect() float32 { return s.Width / s.Height }

// ViewSize is the logical size an image occupies in view units.
var ViewSize = Size{Width: 1, Height: 1}

// Camera is the pan/zoom state of one view.
type Camera struct {
	Translation mat.Vec2
	Zoom        float32
}

// Default returns the home camera: no translation, zoom 1.
func Default() Camera { return Camera{Zoom: 1} }

// Reset moves c back home.
func (c *Camera) Reset() { *c = Default() }

// Matrix returns translate(Translation) * scale(1/Zoom).
func (c Camera) Matrix() mat.Mat3 {
	s := 1 / c.Zoom
	return mat.ScaleTranslate3(mat.Vec2{X: s, Y: s}, c.Translation)
}

// ViewProjection maps view units to clip space for a view of canvas size
// showing an image with the given aspect ratio. The image is scaled down
// along whichever axis would otherwise stretch it and centered along that
// axis.
func ViewProjection(canvas, view Size, cam Camera, imageAspect float32) mat.Mat3 {
	scale := canvas.Aspect() / imageAspect

	viewMatrix, _ := cam.Matrix().Inverse()

	aspect := mat.Scale3(1, scale)
	if scale > 1 {
		aspect = mat.Scale3(1/scale, 1)
	}

	viewProj := mat.Projection(view.Width, view.Height)
	canvasProj := mat.Projection(canvas.Width, canvas.Height)
	canvasProjInv, _ := canvasProj.Inverse()
	viewToCanvas := canvasProjInv.Mul(viewProj).Mul(aspect)

	extent := viewToCanvas.MulVec3(mat.Vec3{X: view.Width, Y: view.Height, Z: 1})
	center := mat.Translate3(0, (canvas.Height-extent.Y)/2)
	if scale > 1 {
		center = mat.Translate3((canvas.Width-extent.X)/2, 0)
	}

	return canvasProj.Mul(center).Mul(viewToCanvas).Mul(viewMatrix)
}

// ImageToView scales image pixel coordinates into view units.
func ImageToView(image Size) mat.Mat3 {
	return mat.Scale3(ViewSize.Width/image.Width, ViewSize.Height/image.Height)
}

// PixelsInfo is the range of image pixels visible in a view, with one
// pixel of margin on every side, and the on-screen size of one image pixel.
type PixelsInfo struct {
	LowerX, LowerY int
	UpperX, UpperY int // exclusive

	// PixelSizeDevice is the width of one image pixel in device pixels.
	// Pixels are assumed square.
	PixelSizeDevice int
}

// Empty reports whether no pixel is visible.
func (p PixelsInfo) Empty() bool { return p.UpperX <= p.LowerX || p.UpperY <= p.LowerY }

// PixelsInformation computes the visible pixel range by unprojecting the
// clip-space corners through viewProjection.
func PixelsInformation(image Size, viewProjection mat.Mat3, rendered Size) PixelsInfo {
	inv, _ := viewProjection.Mul(ImageToView(image)).Inverse()

	tl := inv.TransformPoint(mat.Vec2{X: -1, Y: 1})
	br := inv.TransformPoint(mat.Vec2{X: 1, Y: -1})

	tlx, brx := min(tl.X, br.X), max(tl.X, br.X)
	tly, bry := min(tl.Y, br.Y), max(tl.Y, br.Y)

	return PixelsInfo{
		LowerX:          max(0, floor(tlx)-1),
		LowerY:          max(0, floor(tly)-1),
		UpperX:          min(int(image.Width), ceil(brx)+1),
		UpperY:          min(int(image.Height), ceil(bry)+1),
		PixelSizeDevice: int(rendered.Width / (brx - tlx)),
	}
}

func floor(v float32) int { return int(math.Floor(float64(v))) }
func ceil(v float32) int  { return int(math.Ceil(float64(v))) }
