package camera

import (
	"math"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/imview/internal/logging"
	"github.com/gogpu/imview/internal/mat"
)

// Limits bounds the zoom reachable by wheel and pinch gestures.
type Limits struct {
	MinZoom, MaxZoom float32
}

// DefaultLimits are the wheel zoom limits of the viewer.
var DefaultLimits = Limits{MinZoom: 0.8, MaxZoom: 10}

func (l Limits) clamp(z float32) float32 {
	return min(max(z, l.MinZoom), l.MaxZoom)
}

// Viewport describes where a view sits on screen and what it shows.
type Viewport struct {
	// Bounds is the view rectangle in logical pixels relative to the window.
	X, Y float32
	Size Size
	// ImageAspect is the width/height ratio of the displayed image.
	ImageAspect float32
}

// toClip converts a window position to the view's clip space.
func (v Viewport) toClip(x, y float32) mat.Vec2 {
	nx := (x - v.X) / v.Size.Width
	ny := (y - v.Y) / v.Size.Height
	return mat.Vec2{X: nx*2 - 1, Y: ny*-2 + 1}
}

// unproject returns the view-space point under the window position (x, y).
func (v Viewport) unproject(cam Camera, x, y float32) mat.Vec2 {
	inv, _ := ViewProjection(v.Size, ViewSize, cam, v.ImageAspect).Inverse()
	return inv.TransformPoint(v.toClip(x, y))
}

// ZoomAt multiplies the camera zoom by factor, clamped to lim, keeping the
// image point under the window position (x, y) fixed on screen.
func ZoomAt(cam Camera, vp Viewport, x, y, factor float32, lim Limits) Camera {
	before := vp.unproject(cam, x, y)
	zoomed := Camera{Translation: cam.Translation, Zoom: lim.clamp(cam.Zoom * factor)}
	after := vp.unproject(zoomed, x, y)
	zoomed.Translation = cam.Translation.Add(before.Sub(after))
	return zoomed
}

// WheelZoom applies a wheel step: zoom' = zoom * 2^(deltaY/100).
func WheelZoom(cam Camera, vp Viewport, x, y, deltaY float32, lim Limits) Camera {
	return ZoomAt(cam, vp, x, y, float32(math.Pow(2, float64(deltaY)/100)), lim)
}

// Pan moves the camera so the image point under (fromX, fromY) ends up
// under (toX, toY).
func Pan(cam Camera, vp Viewport, fromX, fromY, toX, toY float32) Camera {
	from := vp.unproject(cam, fromX, fromY)
	to := vp.unproject(cam, toX, toY)
	cam.Translation = cam.Translation.Add(from.Sub(to))
	return cam
}

// Controller drives one camera from gpucontext input events: wheel to
// zoom around the cursor, left-drag to pan, pinch to zoom around the
// gesture center.
type Controller struct {
	Camera   *Camera
	Viewport Viewport
	Limits   Limits

	dragging  bool
	pointerID int
	lastX     float32
	lastY     float32
}

// NewController returns a controller for cam with the default limits.
func NewController(cam *Camera, vp Viewport) *Controller {
	return &Controller{Camera: cam, Viewport: vp, Limits: DefaultLimits}
}

func (c *Controller) contains(x, y float32) bool {
	v := c.Viewport
	return x >= v.X && y >= v.Y && x < v.X+v.Size.Width && y < v.Y+v.Size.Height
}

// HandleScroll zooms on vertical wheel movement inside the view.
// It reports whether the event was consumed.
func (c *Controller) HandleScroll(ev gpucontext.ScrollEvent) bool {
	x, y := float32(ev.X), float32(ev.Y)
	if ev.DeltaY == 0 || !c.contains(x, y) {
		return false
	}
	*c.Camera = WheelZoom(*c.Camera, c.Viewport, x, y, float32(ev.DeltaY), c.Limits)
	logging.Logger().Debug("wheel zoom", "zoom", c.Camera.Zoom, "deltaY", ev.DeltaY)
	return true
}

// HandlePointer pans while the left button is held. It reports whether
// the event was consumed.
func (c *Controller) HandlePointer(ev gpucontext.PointerEvent) bool {
	x, y := float32(ev.X), float32(ev.Y)
	switch ev.Type {
	case gpucontext.PointerDown:
		if ev.Button != gpucontext.ButtonLeft || !c.contains(x, y) {
			return false
		}
		c.dragging, c.pointerID = true, ev.PointerID
		c.lastX, c.lastY = x, y
		return true
	case gpucontext.PointerMove:
		if !c.dragging || ev.PointerID != c.pointerID {
			return false
		}
		*c.Camera = Pan(*c.Camera, c.Viewport, c.lastX, c.lastY, x, y)
		c.lastX, c.lastY = x, y
		return true
	case gpucontext.PointerUp, gpucontext.PointerCancel:
		if !c.dragging || ev.PointerID != c.pointerID {
			return false
		}
		c.dragging = false
		return true
	}
	return false
}

// HandleGesture applies pinch zoom and two-finger pan.
func (c *Controller) HandleGesture(ev gpucontext.GestureEvent) bool {
	if ev.NumPointers < 2 {
		return false
	}
	cx, cy := float32(ev.Center.X), float32(ev.Center.Y)
	cam := *c.Camera
	if ev.ZoomDelta > 0 && ev.ZoomDelta != 1 {
		cam = ZoomAt(cam, c.Viewport, cx, cy, float32(ev.ZoomDelta), c.Limits)
	}
	if d := ev.TranslationDelta; d.X != 0 || d.Y != 0 {
		cam = Pan(cam, c.Viewport, cx-float32(d.X), cy-float32(d.Y), cx, cy)
	}
	*c.Camera = cam
	return true
}

// Home resets the camera.
func (c *Controller) Home() {
	c.Camera.Reset()
	c.dragging = false
}
