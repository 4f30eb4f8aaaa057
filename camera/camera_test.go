package camera

import (
	"math"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/imview/internal/mat"
)

const eps = 1e-3

func near(a, b float32) bool { return math.Abs(float64(a-b)) < eps }

func TestCameraMatrixInverseIsIdentity(t *testing.T) {
	for _, zoom := range []float32{0.1, 1, 10} {
		for _, tr := range []mat.Vec2{{X: 0, Y: 0}, {X: 5, Y: -3}} {
			cam := Camera{Translation: tr, Zoom: zoom}
			m := cam.Matrix()
			inv, ok := m.Inverse()
			if !ok {
				t.Fatalf("zoom %v translation %v: matrix not invertible", zoom, tr)
			}
			got := m.Mul(inv)
			want := mat.Identity3()
			for i := range got {
				if !near(got[i], want[i]) {
					t.Errorf("zoom %v translation %v: m*inv = %v", zoom, tr, got)
					break
				}
			}
		}
	}
}

func TestCameraDefaultAndReset(t *testing.T) {
	cam := Camera{Translation: mat.Vec2{X: 3, Y: 4}, Zoom: 7}
	cam.Reset()
	if cam != Default() {
		t.Errorf("Reset() = %+v, want %+v", cam, Default())
	}
	if Default().Matrix() != mat.Identity3() {
		t.Errorf("default matrix = %v, want identity", Default().Matrix())
	}
}

// screenExtent returns the on-screen size in canvas pixels of one view unit
// along each axis.
func screenExtent(vp mat.Mat3, canvas Size) (float32, float32) {
	o := vp.TransformPoint(mat.Vec2{})
	x := vp.TransformPoint(mat.Vec2{X: 1})
	y := vp.TransformPoint(mat.Vec2{Y: 1})
	w := float32(math.Abs(float64(x.X-o.X))) * canvas.Width / 2
	h := float32(math.Abs(float64(y.Y-o.Y))) * canvas.Height / 2
	return w, h
}

func TestViewProjectionKeepsAspect(t *testing.T) {
	tests := []struct {
		name   string
		canvas Size
		aspect float32
		cam    Camera
	}{
		{"wide image", Size{800, 600}, 2, Default()},
		{"tall image", Size{800, 600}, 0.5, Default()},
		{"square in wide canvas", Size{1000, 200}, 1, Default()},
		{"zoomed and panned", Size{800, 600}, 2, Camera{Translation: mat.Vec2{X: 0.2, Y: -0.1}, Zoom: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vp := ViewProjection(tt.canvas, ViewSize, tt.cam, tt.aspect)
			w, h := screenExtent(vp, tt.canvas)
			if !near(w/h, tt.aspect) {
				t.Errorf("on-screen aspect = %v (%vx%v), want %v", w/h, w, h, tt.aspect)
			}
		})
	}
}

func TestViewProjectionFitsAndCenters(t *testing.T) {
	canvas := Size{800, 600}
	vp := ViewProjection(canvas, ViewSize, Default(), 2)

	// A 2:1 image in a 4:3 canvas fills the width and is centered vertically.
	tl := vp.TransformPoint(mat.Vec2{X: 0, Y: 0})
	br := vp.TransformPoint(mat.Vec2{X: 1, Y: 1})
	if !near(tl.X, -1) || !near(br.X, 1) {
		t.Errorf("x range = %v..%v, want -1..1", tl.X, br.X)
	}
	if !near(tl.Y, -br.Y) {
		t.Errorf("y range %v..%v not centered", tl.Y, br.Y)
	}
	if !near(tl.Y, 2.0/3) {
		t.Errorf("top = %v, want 2/3", tl.Y)
	}
}

func TestPixelsInformation(t *testing.T) {
	image := Size{128, 64}
	canvas := Size{1024, 512}
	vp := ViewProjection(canvas, ViewSize, Default(), image.Aspect())

	info := PixelsInformation(image, vp, canvas)
	if info.LowerX != 0 || info.LowerY != 0 || info.UpperX != 128 || info.UpperY != 64 {
		t.Errorf("range = %+v, want whole image", info)
	}
	if info.PixelSizeDevice != 8 {
		t.Errorf("PixelSizeDevice = %d, want 8", info.PixelSizeDevice)
	}

	// Zoom 8 centered on the image middle shows image pixels [64,80)x[32,40).
	zoomed := ViewProjection(canvas, ViewSize, Camera{Translation: mat.Vec2{X: 0.5, Y: 0.5}, Zoom: 8}, image.Aspect())
	info = PixelsInformation(image, zoomed, canvas)
	want := PixelsInfo{LowerX: 63, LowerY: 31, UpperX: 81, UpperY: 41, PixelSizeDevice: 64}
	if info != want {
		t.Errorf("zoomed = %+v, want %+v", info, want)
	}
	if info.Empty() {
		t.Error("zoomed range empty")
	}
}

func TestWheelZoomKeepsCursorPoint(t *testing.T) {
	vp := Viewport{X: 10, Y: 20, Size: Size{400, 300}, ImageAspect: 1.5}
	cam := Default()
	x, y := float32(150), float32(100)

	before := vp.unproject(cam, x, y)
	cam = WheelZoom(cam, vp, x, y, 100, DefaultLimits)
	if !near(cam.Zoom, 2) {
		t.Errorf("zoom = %v, want 2", cam.Zoom)
	}
	after := vp.unproject(cam, x, y)
	if !near(before.X, after.X) || !near(before.Y, after.Y) {
		t.Errorf("point under cursor moved from %v to %v", before, after)
	}
}

func TestWheelZoomClamps(t *testing.T) {
	vp := Viewport{Size: Size{100, 100}, ImageAspect: 1}
	cam := WheelZoom(Default(), vp, 50, 50, 10000, DefaultLimits)
	if cam.Zoom != 10 {
		t.Errorf("zoom = %v, want 10", cam.Zoom)
	}
	cam = WheelZoom(Default(), vp, 50, 50, -10000, DefaultLimits)
	if !near(cam.Zoom, 0.8) {
		t.Errorf("zoom = %v, want 0.8", cam.Zoom)
	}
}

func TestPanFollowsPointer(t *testing.T) {
	vp := Viewport{Size: Size{200, 200}, ImageAspect: 1}
	cam := Camera{Zoom: 2}
	grabbed := vp.unproject(cam, 50, 50)
	cam = Pan(cam, vp, 50, 50, 120, 80)
	now := vp.unproject(cam, 120, 80)
	if !near(grabbed.X, now.X) || !near(grabbed.Y, now.Y) {
		t.Errorf("grabbed point %v is now %v", grabbed, now)
	}
}

func TestControllerEvents(t *testing.T) {
	cam := Default()
	c := NewController(&cam, Viewport{Size: Size{200, 200}, ImageAspect: 1})

	if c.HandleScroll(gpucontext.ScrollEvent{X: 500, Y: 500, DeltaY: 100}) {
		t.Error("scroll outside the view consumed")
	}
	if !c.HandleScroll(gpucontext.ScrollEvent{X: 100, Y: 100, DeltaY: 100}) || !near(cam.Zoom, 2) {
		t.Errorf("scroll inside: zoom = %v, want 2", cam.Zoom)
	}

	if c.HandlePointer(gpucontext.PointerEvent{Type: gpucontext.PointerMove, X: 10, Y: 10}) {
		t.Error("move without drag consumed")
	}
	down := gpucontext.PointerEvent{Type: gpucontext.PointerDown, Button: gpucontext.ButtonLeft, PointerID: 1, X: 100, Y: 100}
	if !c.HandlePointer(down) {
		t.Fatal("pointer down not consumed")
	}
	before := cam.Translation
	c.HandlePointer(gpucontext.PointerEvent{Type: gpucontext.PointerMove, PointerID: 1, X: 120, Y: 100})
	if cam.Translation == before {
		t.Error("drag did not pan")
	}
	if cam.Translation.X >= before.X {
		t.Errorf("dragging right moved translation from %v to %v, want smaller X", before.X, cam.Translation.X)
	}
	c.HandlePointer(gpucontext.PointerEvent{Type: gpucontext.PointerUp, PointerID: 1, X: 120, Y: 100})
	moved := cam.Translation
	c.HandlePointer(gpucontext.PointerEvent{Type: gpucontext.PointerMove, PointerID: 1, X: 150, Y: 150})
	if cam.Translation != moved {
		t.Error("move after pointer up still panned")
	}

	if !c.HandleGesture(gpucontext.GestureEvent{NumPointers: 2, ZoomDelta: 1.5, Center: gpucontext.Point{X: 100, Y: 100}}) {
		t.Error("pinch not consumed")
	}
	if !near(cam.Zoom, 3) {
		t.Errorf("zoom after pinch = %v, want 3", cam.Zoom)
	}
	if c.HandleGesture(gpucontext.GestureEvent{NumPointers: 1, ZoomDelta: 2}) {
		t.Error("single-pointer gesture consumed")
	}

	c.Home()
	if cam != Default() {
		t.Errorf("after Home camera = %+v", cam)
	}
}
