package imagecache

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/imview/core"
	"github.com/gogpu/imview/gpu/gputest"
)

func u8Image(t *testing.T, dev *gputest.Device, id core.ImageID, item uint32, channels int, ord core.DataOrdering) *TextureImage {
	t.Helper()
	info := core.ImageInfo{ID: id, Width: 2, Height: 2, Channels: channels, DataType: core.Uint8, Ordering: ord}
	data := make([]byte, info.ItemByteSize())
	for i := range data {
		data[i] = byte(i)
	}
	img, err := NewTextureImage(dev, info, item, data)
	if err != nil {
		t.Fatalf("NewTextureImage: %v", err)
	}
	return img
}

func TestScenarioPendingRoundTrip(t *testing.T) {
	dev := gputest.New()
	c := NewCache()
	id := core.NewImageID("s", "X")

	if got := c.Get(id).State; got != NotAvailable {
		t.Fatalf("initial state = %v, want not_available", got)
	}
	c.SetPending(id)
	if a := c.Get(id); a.State != Pending || a.Image != nil {
		t.Fatalf("after SetPending = %+v, want Pending(nil)", a)
	}

	tex := u8Image(t, dev, id, 0, 1, core.Packed)
	c.SetImage(id, tex)
	if a := c.Get(id); a.State != Available || a.Image != tex {
		t.Fatalf("after SetImage = %+v, want Available(tex)", a)
	}

	c.SetPending(id)
	if a := c.Get(id); a.State != Pending || a.Image != tex {
		t.Fatalf("after second SetPending = %+v, want Pending(tex)", a)
	}
	if img, ok := c.Get(id).Renderable(); !ok || img != tex {
		t.Error("stale texture is not renderable while pending")
	}

	if err := c.TrySetAvailable(id); err != nil {
		t.Fatalf("TrySetAvailable: %v", err)
	}
	if a := c.Get(id); a.State != Available || a.Image != tex {
		t.Fatalf("after TrySetAvailable = %+v, want Available(tex)", a)
	}
	if len(dev.Live()) != 1 {
		t.Errorf("live textures = %d, want 1", len(dev.Live()))
	}
}

func TestSetPendingIdempotent(t *testing.T) {
	c := NewCache()
	id := core.NewImageID("s", "a")
	c.SetPending(id)
	c.SetPending(id)
	if a := c.Get(id); a.State != Pending || a.Image != nil {
		t.Errorf("state = %+v, want Pending(nil)", a)
	}
}

func TestTrySetAvailableWithoutTexture(t *testing.T) {
	c := NewCache()
	id := core.NewImageID("s", "a")
	if err := c.TrySetAvailable(id); !errors.Is(err, ErrNotPending) {
		t.Errorf("not available: err = %v, want ErrNotPending", err)
	}
	c.SetPending(id)
	if err := c.TrySetAvailable(id); !errors.Is(err, ErrNotPending) {
		t.Errorf("pending without texture: err = %v, want ErrNotPending", err)
	}
	if c.Get(id).State != Pending {
		t.Error("failed TrySetAvailable changed the state")
	}
}

func TestSetImageReleasesReplaced(t *testing.T) {
	dev := gputest.New()
	c := NewCache()
	id := core.NewImageID("s", "a")
	first := u8Image(t, dev, id, 0, 1, core.Packed)
	second := u8Image(t, dev, id, 0, 1, core.Packed)
	c.SetImage(id, first)
	c.SetImage(id, second)
	if !dev.Textures[0].Destroyed {
		t.Error("replaced texture not destroyed")
	}
	if dev.Textures[1].Destroyed {
		t.Error("current texture destroyed")
	}
}

func TestUpdateKeepsOtherBatchItems(t *testing.T) {
	dev := gputest.New()
	c := NewCache()
	id := core.NewImageID("s", "batch")

	c.SetImage(id, u8Image(t, dev, id, 0, 1, core.Packed))
	c.SetPending(id)
	c.Update(id, u8Image(t, dev, id, 3, 1, core.Packed))

	a := c.Get(id)
	if a.State != Available {
		t.Fatalf("state = %v, want available", a.State)
	}
	if got := a.Image.Items(); !slices.Equal(got, []uint32{0, 3}) {
		t.Errorf("Items() = %v, want [0 3]", got)
	}

	// Refetching item 0 replaces only item 0.
	c.Update(id, u8Image(t, dev, id, 0, 1, core.Packed))
	if got := a.Image.Items(); !slices.Equal(got, []uint32{0, 3}) {
		t.Errorf("Items() after refetch = %v, want [0 3]", got)
	}
	if !dev.Textures[0].Destroyed {
		t.Error("old item 0 texture not destroyed")
	}
	if len(dev.Live()) != 2 {
		t.Errorf("live textures = %d, want 2", len(dev.Live()))
	}
}

func TestUpdateWithoutExistingBehavesLikeSetImage(t *testing.T) {
	dev := gputest.New()
	c := NewCache()
	id := core.NewImageID("s", "a")
	img := u8Image(t, dev, id, 1, 1, core.Packed)
	c.Update(id, img)
	if a := c.Get(id); a.State != Available || a.Image != img {
		t.Errorf("state = %+v, want Available(img)", a)
	}
}

func TestClearSession(t *testing.T) {
	dev := gputest.New()
	c := NewCache()
	a := core.NewImageID("s1", "a")
	b := core.NewImageID("s2", "b")
	c.SetImage(a, u8Image(t, dev, a, 0, 1, core.Packed))
	c.SetImage(b, u8Image(t, dev, b, 0, 1, core.Packed))

	c.Clear("s1")
	if c.Get(a).State != NotAvailable {
		t.Error("s1 image survived Clear")
	}
	if c.Get(b).State != Available {
		t.Error("s2 image removed by Clear(s1)")
	}
	if !dev.Textures[0].Destroyed || dev.Textures[1].Destroyed {
		t.Error("Clear released the wrong textures")
	}

	c.ClearAll()
	if c.Len() != 0 || len(dev.Live()) != 0 {
		t.Errorf("after ClearAll: len %d, live %d", c.Len(), len(dev.Live()))
	}
}

func TestUploadLayouts(t *testing.T) {
	tests := []struct {
		name     string
		channels int
		ord      core.DataOrdering
		textures int
		format   gputypes.TextureFormat
		bytes    int
	}{
		{"packed gray", 1, core.Packed, 1, gputypes.TextureFormatR8Uint, 4},
		{"packed rgb padded", 3, core.Packed, 1, gputypes.TextureFormatRGBA8Uint, 16},
		{"packed rgba", 4, core.Packed, 1, gputypes.TextureFormatRGBA8Uint, 16},
		{"planar gray", 1, core.Planar, 1, gputypes.TextureFormatR8Uint, 4},
		{"planar rgb", 3, core.Planar, 3, gputypes.TextureFormatR8Uint, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := gputest.New()
			img := u8Image(t, dev, core.NewImageID("s", tt.name), 0, tt.channels, tt.ord)
			g, ok := img.Group(0)
			if !ok {
				t.Fatal("item 0 missing")
			}
			if len(g.Textures) != tt.textures {
				t.Fatalf("textures = %d, want %d", len(g.Textures), tt.textures)
			}
			for _, tex := range dev.Textures {
				if tex.Desc.Format != tt.format {
					t.Errorf("format = %v, want %v", tex.Desc.Format, tt.format)
				}
				if len(tex.Data) != tt.bytes {
					t.Errorf("texture bytes = %d, want %d", len(tex.Data), tt.bytes)
				}
			}
		})
	}
}

func TestPlanarUploadSplitsPlanes(t *testing.T) {
	dev := gputest.New()
	u8Image(t, dev, core.NewImageID("s", "p"), 0, 2, core.Planar)
	if got := dev.Textures[1].Data; !slices.Equal(got, []byte{4, 5, 6, 7}) {
		t.Errorf("second plane = %v, want [4 5 6 7]", got)
	}
}

func TestPlanarUploadFailureReleasesPlanes(t *testing.T) {
	dev := gputest.New()
	id := core.NewImageID("s", "p")
	dev.FailTextures = map[string]bool{"s/p[0]/c2": true}
	info := core.ImageInfo{ID: id, Width: 1, Height: 1, Channels: 3, DataType: core.Uint8, Ordering: core.Planar}
	if _, err := NewTextureImage(dev, info, 0, []byte{1, 2, 3}); err == nil {
		t.Fatal("expected upload error")
	}
	if len(dev.Live()) != 0 {
		t.Errorf("live textures after failure = %d, want 0", len(dev.Live()))
	}
}

func TestNewTextureImageRejectsBadBytes(t *testing.T) {
	info := core.ImageInfo{ID: core.NewImageID("s", "a"), Width: 2, Height: 2, Channels: 1, DataType: core.Uint16}
	if _, err := NewTextureImage(gputest.New(), info, 0, make([]byte, 3)); !errors.Is(err, core.ErrDataSize) {
		t.Errorf("err = %v, want ErrDataSize", err)
	}
}

func TestImagesOrderAndPinning(t *testing.T) {
	s := NewImages()
	a, b, c := core.NewImageID("s", "a"), core.NewImageID("s", "b"), core.NewImageID("t", "c")
	for _, id := range []core.ImageID{a, b, c} {
		s.Insert(core.ImageInfo{ID: id, Width: 1, Height: 1, Channels: 1})
	}
	s.Insert(core.ImageInfo{ID: a, Width: 5, Height: 1, Channels: 1})

	if got := s.IDs(); !slices.Equal(got, []core.ImageID{a, b, c}) {
		t.Fatalf("IDs() = %v", got)
	}
	if info, _ := s.Get(a); info.Width != 5 {
		t.Errorf("reinserted width = %d, want 5", info.Width)
	}

	s.Pin(c)
	if got := s.IDs(); !slices.Equal(got, []core.ImageID{c, a, b}) {
		t.Errorf("IDs() after pin = %v", got)
	}
	if next, _ := s.Next(b); next != c {
		t.Errorf("Next(b) = %v, want wrap to c", next)
	}
	if prev, _ := s.Previous(a); prev != c {
		t.Errorf("Previous(a) = %v, want c", prev)
	}

	removed := s.Clear("t")
	if !slices.Equal(removed, []core.ImageID{c}) || s.IsPinned(c) {
		t.Errorf("Clear(t) removed %v, pinned %v", removed, s.IsPinned(c))
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}

	s.Unpin(a)
	if _, ok := NewImages().Next(a); ok {
		t.Error("Next on empty store returned ok")
	}
}

func TestOptionsUpdates(t *testing.T) {
	s := NewOptionsStore()
	id := core.NewImageID("s", "a")

	if got := s.Get(id); got.Coloring != core.ColoringDefault || got.BatchItem != nil {
		t.Errorf("default options = %+v", got)
	}

	s.Update(id,
		SetColoring(core.ColoringHeatmap),
		SetInvert(true),
		SetClipMin(core.Float32Ptr(-1)),
		SetBatchItem(2),
	)
	got := s.Update(id, ResetOptions())
	if got.Coloring != core.ColoringDefault || got.Invert || got.Clip.Min != nil {
		t.Errorf("Reset kept options: %+v", got)
	}
	if got.BatchItem == nil || *got.BatchItem != 2 {
		t.Errorf("Reset dropped the batch item: %v", got.BatchItem)
	}

	s.Update(id, SetClipMax(core.Float32Ptr(5)), SetClipMax(nil))
	if s.Get(id).Clip.Max != nil {
		t.Error("SetClipMax(nil) did not clear the bound")
	}

	other := core.NewImageID("s", "b")
	if item := s.EnsureBatchItem(other); item != 0 {
		t.Errorf("EnsureBatchItem = %d, want 0", item)
	}
	if item := s.EnsureBatchItem(id); item != 2 {
		t.Errorf("EnsureBatchItem kept = %d, want 2", item)
	}

	s.Clear("s")
	if s.Get(id).BatchItem != nil {
		t.Error("Clear kept options")
	}
	if s.Global.HeatmapColormap != "fire" {
		t.Errorf("global heatmap = %q", s.Global.HeatmapColormap)
	}
}

func TestOverlays(t *testing.T) {
	o := NewOverlays()
	base, top := core.NewImageID("s", "base"), core.NewImageID("t", "mask")

	o.Set("v0", base, top)
	ov, ok := o.Get("v0", base)
	if !ok || ov.Alpha != DefaultOverlayAlpha || !ov.Visible() {
		t.Fatalf("overlay = %+v, %v", ov, ok)
	}

	o.SetAlpha("v0", base, 2)
	o.Set("v0", base, top)
	if ov, _ := o.Get("v0", base); ov.Alpha != 1 {
		t.Errorf("alpha = %v, want clamped 1 kept across Set", ov.Alpha)
	}

	o.SetHidden("v0", base, true)
	if ov, _ := o.Get("v0", base); ov.Visible() {
		t.Error("hidden overlay is visible")
	}
	o.SetAlpha("v0", base, 0)
	o.SetHidden("v0", base, false)
	if ov, _ := o.Get("v0", base); ov.Visible() {
		t.Error("zero-alpha overlay is visible")
	}

	if _, ok := o.Get("v1", base); ok {
		t.Error("overlay leaked into another view")
	}

	o.Clear("t")
	if _, ok := o.Get("v0", base); ok {
		t.Error("Clear kept an overlay of the cleared session")
	}
}
