package imview

import (
	"errors"
	"fmt"
	"slices"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/imview/camera"
	"github.com/gogpu/imview/colormap"
	"github.com/gogpu/imview/core"
	"github.com/gogpu/imview/gpu"
	"github.com/gogpu/imview/imagecache"
	"github.com/gogpu/imview/internal/logging"
	"github.com/gogpu/imview/internal/pixeltext"
	"github.com/gogpu/imview/render"
)

var (
	// ErrNoDevice is returned by New without WithDevice.
	ErrNoDevice = errors.New("imview: no gpu device")

	// ErrUnknownImage is returned when bytes arrive for an image whose
	// metadata was never received.
	ErrUnknownImage = errors.New("imview: unknown image")

	// ErrUnknownView is returned for operations naming a view that does not
	// exist.
	ErrUnknownView = errors.New("imview: unknown view")

	// ErrDuplicateView is returned by AddView for a name already in use.
	ErrDuplicateView = errors.New("imview: view already exists")
)

// Fetcher is the outbound half of the host protocol. RequestNeeded asks the
// host for the pixel data of id. For batched images item is the wanted
// batch item and held lists the items already resident, so the host can
// skip them; both are nil for unbatched images.
//
// RequestNeeded must not block: the answer arrives later through
// Viewer.OnBytes.
type Fetcher interface {
	RequestNeeded(id core.ImageID, item *uint32, held []uint32)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(id core.ImageID, item *uint32, held []uint32)

// RequestNeeded calls f.
func (f FetcherFunc) RequestNeeded(id core.ImageID, item *uint32, held []uint32) { f(id, item, held) }

type viewState struct {
	view       render.View
	controller *camera.Controller
}

// Viewer holds the whole viewer state and draws it. All methods must be
// called from the render thread.
type Viewer struct {
	cfg     *Config
	device  gpu.Device
	fetcher Fetcher

	images   *imagecache.Images
	cache    *imagecache.Cache
	options  *imagecache.OptionsStore
	overlays *imagecache.Overlays

	views []*viewState

	renderer *render.Renderer
	width    int
	height   int

	// requested remembers the batch item of each outstanding fetch.
	requested map[core.ImageID]uint32
}

// New creates a viewer rendering through the device given by WithDevice.
func New(opts ...Option) (*Viewer, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger != nil {
		SetLogger(o.logger)
	}
	if o.device == nil {
		return nil, ErrNoDevice
	}
	if err := o.config.Validate(); err != nil {
		return nil, err
	}

	palettes := colormap.Builtin()
	global := o.config.GlobalOptions()
	for _, name := range []string{global.HeatmapColormap, global.SegmentationColormap} {
		if _, err := palettes.Get(name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}

	var atlas *pixeltext.Atlas
	if size := o.config.Rendering.GlyphAtlasSize; size > 0 {
		a, err := pixeltext.NewAtlas(size, 0)
		if err != nil {
			logging.Logger().Warn("pixel value labels disabled", "err", err)
		} else {
			atlas = a
		}
	}

	r, err := render.New(o.device, palettes, atlas, o.config.Thresholds())
	if err != nil {
		return nil, err
	}

	options := imagecache.NewOptionsStore()
	options.Global = global

	logging.Logger().Info("viewer created",
		"pixelBorder", o.config.Rendering.MinimumSizeToRenderPixelBorder,
		"pixelValues", o.config.Rendering.MinimumSizeToRenderPixelValues,
		"labels", atlas != nil)

	return &Viewer{
		cfg:       o.config,
		device:    o.device,
		fetcher:   o.fetcher,
		images:    imagecache.NewImages(),
		cache:     imagecache.NewCache(),
		options:   options,
		overlays:  imagecache.NewOverlays(),
		renderer:  r,
		requested: make(map[core.ImageID]uint32),
	}, nil
}

// Config returns the configuration the viewer was created with.
func (v *Viewer) Config() *Config { return v.cfg }

// Images returns the image store, for listing, pinning and navigation.
func (v *Viewer) Images() *imagecache.Images { return v.images }

// Release frees every GPU resource the viewer owns.
func (v *Viewer) Release() {
	v.cache.ClearAll()
	v.renderer.Release()
}

// Resize sets the canvas size in device pixels.
func (v *Viewer) Resize(width, height int) {
	v.width, v.height = width, height
}

// AddView adds a view covering rect of the canvas.
func (v *Viewer) AddView(name string, rect gpu.Rect) error {
	if v.view(name) != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateView, name)
	}
	vs := &viewState{view: render.View{Name: name, Rect: rect, Camera: camera.Default()}}
	vs.controller = camera.NewController(&vs.view.Camera, viewport(rect, 1))
	vs.controller.Limits = v.cfg.ZoomLimits()
	v.views = append(v.views, vs)
	return nil
}

// RemoveView removes a view and its overlays.
func (v *Viewer) RemoveView(name string) {
	v.views = slices.DeleteFunc(v.views, func(vs *viewState) bool {
		if vs.view.Name != name {
			return false
		}
		if vs.view.Image != (core.ImageID{}) {
			v.overlays.Remove(name, vs.view.Image)
		}
		return true
	})
}

// SetViewRect moves or resizes a view.
func (v *Viewer) SetViewRect(name string, rect gpu.Rect) error {
	vs := v.view(name)
	if vs == nil {
		return fmt.Errorf("%w: %s", ErrUnknownView, name)
	}
	vs.view.Rect = rect
	vs.controller.Viewport = viewport(rect, vs.controller.Viewport.ImageAspect)
	return nil
}

// View returns the current state of a view.
func (v *Viewer) View(name string) (render.View, bool) {
	vs := v.view(name)
	if vs == nil {
		return render.View{}, false
	}
	return vs.view, true
}

// Home resets the camera of a view.
func (v *Viewer) Home(name string) error {
	vs := v.view(name)
	if vs == nil {
		return fmt.Errorf("%w: %s", ErrUnknownView, name)
	}
	vs.controller.Home()
	return nil
}

// HandleScroll forwards a wheel event to the view under the cursor.
func (v *Viewer) HandleScroll(ev gpucontext.ScrollEvent) bool {
	for _, vs := range v.views {
		if vs.controller.HandleScroll(ev) {
			return true
		}
	}
	return false
}

// HandlePointer forwards a pointer event; a drag stays with the view it
// started in.
func (v *Viewer) HandlePointer(ev gpucontext.PointerEvent) bool {
	for _, vs := range v.views {
		if vs.controller.HandlePointer(ev) {
			return true
		}
	}
	return false
}

// HandleGesture forwards a pinch or two-finger pan to the view under the
// gesture center.
func (v *Viewer) HandleGesture(ev gpucontext.GestureEvent) bool {
	x, y := float32(ev.Center.X), float32(ev.Center.Y)
	for _, vs := range v.views {
		r := vs.view.Rect
		if x >= float32(r.X) && y >= float32(r.Y) && x < float32(r.X+r.Width) && y < float32(r.Y+r.Height) {
			return vs.controller.HandleGesture(ev)
		}
	}
	return false
}

// SetCurrentlyViewing shows image id in a view and fetches it if needed.
// The zero id clears the view.
func (v *Viewer) SetCurrentlyViewing(name string, id core.ImageID) error {
	vs := v.view(name)
	if vs == nil {
		return fmt.Errorf("%w: %s", ErrUnknownView, name)
	}
	vs.view.Image = id
	v.syncAspect(vs)
	v.FetchMissing()
	return nil
}

// ShowNext moves a view to the next image of the store, wrapping around.
func (v *Viewer) ShowNext(name string) error { return v.step(name, v.images.Next) }

// ShowPrevious moves a view to the previous image of the store.
func (v *Viewer) ShowPrevious(name string) error { return v.step(name, v.images.Previous) }

func (v *Viewer) step(name string, next func(core.ImageID) (core.ImageID, bool)) error {
	vs := v.view(name)
	if vs == nil {
		return fmt.Errorf("%w: %s", ErrUnknownView, name)
	}
	id, ok := next(vs.view.Image)
	if !ok {
		return nil
	}
	return v.SetCurrentlyViewing(name, id)
}

// OnMetadata stores new or replaced image metadata. Replacing the
// metadata of a cached image with a different shape drops its textures.
func (v *Viewer) OnMetadata(info core.ImageInfo) error {
	if err := info.Validate(); err != nil {
		return fmt.Errorf("imview: metadata for %s: %w", info.ID, err)
	}
	if old, ok := v.images.Get(info.ID); ok && !sameLayout(&old, &info) {
		logging.Logger().Debug("image layout changed, dropping textures", "image", info.ID.String())
		v.cache.Remove(info.ID)
		delete(v.requested, info.ID)
	}
	v.images.Insert(info)
	for _, vs := range v.views {
		if vs.view.Image == info.ID {
			v.syncAspect(vs)
		}
	}
	v.FetchMissing()
	return nil
}

func sameLayout(a, b *core.ImageInfo) bool {
	return a.Width == b.Width && a.Height == b.Height && a.Channels == b.Channels &&
		a.DataType == b.DataType && a.Ordering == b.Ordering
}

// OnBytes uploads the pixel data of one batch item (nil for unbatched
// images) and makes the image available.
func (v *Viewer) OnBytes(id core.ImageID, item *uint32, data []byte) error {
	info, ok := v.images.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownImage, id)
	}
	var it uint32
	if item != nil {
		it = info.ClampBatchItem(*item)
	}
	img, err := imagecache.NewTextureImage(v.device, info, it, data)
	if err != nil {
		return err
	}
	if item != nil {
		v.options.EnsureBatchItem(id)
	}
	v.cache.Update(id, img)
	if want, ok := v.requested[id]; ok && want == it {
		delete(v.requested, id)
	}
	v.FetchMissing()
	return nil
}

// SetBatchItem selects the displayed batch item of an image, clamped into
// range, and fetches it if it is not resident.
func (v *Viewer) SetBatchItem(id core.ImageID, item uint32) {
	if info, ok := v.images.Get(id); ok {
		item = info.ClampBatchItem(item)
	}
	v.options.Update(id, imagecache.SetBatchItem(item))
	v.FetchMissing()
}

// UpdateOptions applies drawing option updates to an image.
func (v *Viewer) UpdateOptions(id core.ImageID, fns ...imagecache.OptionsUpdate) core.DrawingOptions {
	return v.options.Update(id, fns...)
}

// SetOverlay draws overlay on top of image in a view.
func (v *Viewer) SetOverlay(view string, image, overlay core.ImageID) {
	v.overlays.Set(view, image, overlay)
	v.FetchMissing()
}

// SetOverlayAlpha sets the opacity of an overlay, clamped to [0, 1].
func (v *Viewer) SetOverlayAlpha(view string, image core.ImageID, alpha float32) {
	v.overlays.SetAlpha(view, image, alpha)
}

// SetOverlayHidden hides or shows an overlay without forgetting it.
func (v *Viewer) SetOverlayHidden(view string, image core.ImageID, hidden bool) {
	v.overlays.SetHidden(view, image, hidden)
}

// RemoveOverlay removes the overlay of image in a view.
func (v *Viewer) RemoveOverlay(view string, image core.ImageID) {
	v.overlays.Remove(view, image)
}

// ClearSession forgets every image of a session: metadata, textures,
// drawing options and overlays. Views showing one of them go blank.
func (v *Viewer) ClearSession(session core.SessionID) {
	removed := v.images.Clear(session)
	v.cache.Clear(session)
	v.options.Clear(session)
	v.overlays.Clear(session)
	for _, id := range removed {
		delete(v.requested, id)
	}
	for _, vs := range v.views {
		if vs.view.Image.Session == session {
			vs.view.Image = core.ImageID{}
		}
	}
	logging.Logger().Debug("session cleared", "session", string(session), "images", len(removed))
}

// FetchMissing brings the cache in line with what the views show: images
// that are not resident, and batch items that are not resident, are marked
// pending and requested from the fetcher. At most one request per image is
// outstanding; switching back to a resident batch item makes the image
// available again without a request.
func (v *Viewer) FetchMissing() {
	for _, id := range v.wanted() {
		info, ok := v.images.Get(id)
		if !ok {
			continue
		}
		v.fetch(&info)
	}
}

// wanted lists the images of all views and their visible overlays, once
// each, in view order.
func (v *Viewer) wanted() []core.ImageID {
	var ids []core.ImageID
	add := func(id core.ImageID) {
		if id != (core.ImageID{}) && !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	for _, vs := range v.views {
		add(vs.view.Image)
		if ov, ok := v.overlays.Get(vs.view.Name, vs.view.Image); ok && ov.Visible() {
			add(ov.Image)
		}
	}
	return ids
}

func (v *Viewer) fetch(info *core.ImageInfo) {
	id := info.ID
	avail := v.cache.Get(id)

	if !info.IsBatched() {
		if avail.State == imagecache.NotAvailable {
			v.cache.SetPending(id)
			v.request(id, nil, nil)
		}
		return
	}

	item := info.ClampBatchItem(batchItemOf(v.options.Get(id)))
	if avail.State == imagecache.NotAvailable {
		v.cache.SetPending(id)
		v.request(id, &item, nil)
		return
	}
	img := avail.Image
	if img == nil {
		// Pending with nothing resident: the first request is in flight.
		return
	}
	if img.Has(item) {
		if avail.State == imagecache.Pending {
			if err := v.cache.TrySetAvailable(id); err != nil {
				logging.Logger().Warn("fetch: cannot mark image available", "image", id.String(), "err", err)
			}
		}
		return
	}
	v.cache.SetPending(id)
	if want, ok := v.requested[id]; ok && want == item {
		return
	}
	v.request(id, &item, img.Items())
}

func (v *Viewer) request(id core.ImageID, item *uint32, held []uint32) {
	if item != nil {
		v.requested[id] = *item
	} else {
		v.requested[id] = 0
	}
	logging.Logger().Debug("requesting image data", "image", id.String(), "item", item, "held", held)
	if v.fetcher != nil {
		v.fetcher.RequestNeeded(id, item, held)
	}
}

func batchItemOf(o core.DrawingOptions) uint32 {
	if o.BatchItem == nil {
		return 0
	}
	return *o.BatchItem
}

// Frame draws every view.
func (v *Viewer) Frame() error {
	return v.renderer.Frame(v)
}

// CanvasSize implements render.Scene.
func (v *Viewer) CanvasSize() (width, height int) { return v.width, v.height }

// Views implements render.Scene.
func (v *Viewer) Views() []render.View {
	out := make([]render.View, len(v.views))
	for i, vs := range v.views {
		out[i] = vs.view
	}
	return out
}

// Availability implements render.Scene.
func (v *Viewer) Availability(id core.ImageID) imagecache.Availability { return v.cache.Get(id) }

// DrawingOptions implements render.Scene.
func (v *Viewer) DrawingOptions(id core.ImageID) core.DrawingOptions { return v.options.Get(id) }

// GlobalOptions implements render.Scene.
func (v *Viewer) GlobalOptions() core.GlobalDrawingOptions { return v.options.Global }

// Overlay implements render.Scene.
func (v *Viewer) Overlay(view string, image core.ImageID) (imagecache.Overlay, bool) {
	return v.overlays.Get(view, image)
}

func (v *Viewer) view(name string) *viewState {
	for _, vs := range v.views {
		if vs.view.Name == name {
			return vs
		}
	}
	return nil
}

func (v *Viewer) syncAspect(vs *viewState) {
	aspect := float32(1)
	if info, ok := v.images.Get(vs.view.Image); ok {
		aspect = info.AspectRatio()
	}
	vs.controller.Viewport = viewport(vs.view.Rect, aspect)
}

func viewport(r gpu.Rect, aspect float32) camera.Viewport {
	return camera.Viewport{
		X:           float32(r.X),
		Y:           float32(r.Y),
		Size:        camera.Size{Width: float32(r.Width), Height: float32(r.Height)},
		ImageAspect: aspect,
	}
}

var _ render.Scene = (*Viewer)(nil)
