package imagecache

import "github.com/gogpu/imview/core"

// OptionsUpdate mutates drawing options in place.
type OptionsUpdate func(*core.DrawingOptions)

// SetAll replaces every option.
func SetAll(o core.DrawingOptions) OptionsUpdate {
	return func(d *core.DrawingOptions) { *d = o }
}

// ResetOptions restores defaults, keeping the selected batch item.
func ResetOptions() OptionsUpdate {
	return func(d *core.DrawingOptions) {
		*d = core.DrawingOptions{BatchItem: d.BatchItem}
	}
}

// SetColoring selects the coloring mode.
func SetColoring(c core.Coloring) OptionsUpdate {
	return func(d *core.DrawingOptions) { d.Coloring = c }
}

// SetInvert toggles RGB inversion.
func SetInvert(v bool) OptionsUpdate {
	return func(d *core.DrawingOptions) { d.Invert = v }
}

// SetHighContrast toggles range stretching.
func SetHighContrast(v bool) OptionsUpdate {
	return func(d *core.DrawingOptions) { d.HighContrast = v }
}

// SetIgnoreAlpha toggles alpha replacement.
func SetIgnoreAlpha(v bool) OptionsUpdate {
	return func(d *core.DrawingOptions) { d.IgnoreAlpha = v }
}

// SetZerosAsTransparent toggles discarding all-zero pixels.
func SetZerosAsTransparent(v bool) OptionsUpdate {
	return func(d *core.DrawingOptions) { d.ZerosAsTransparent = v }
}

// SetClipMin sets or, with nil, clears the lower clip bound.
func SetClipMin(v *float32) OptionsUpdate {
	return func(d *core.DrawingOptions) { d.Clip.Min = v }
}

// SetClipMax sets or, with nil, clears the upper clip bound.
func SetClipMax(v *float32) OptionsUpdate {
	return func(d *core.DrawingOptions) { d.Clip.Max = v }
}

// SetBatchItem selects the batch item to display.
func SetBatchItem(item uint32) OptionsUpdate {
	return func(d *core.DrawingOptions) { d.BatchItem = &item }
}

// OptionsStore holds per-image drawing options and the global colormap
// choice. Images without stored options use the zero DrawingOptions.
type OptionsStore struct {
	Global core.GlobalDrawingOptions

	byImage map[core.ImageID]core.DrawingOptions
}

// NewOptionsStore returns a store with the default global options.
func NewOptionsStore() *OptionsStore {
	return &OptionsStore{
		Global:  core.DefaultGlobalDrawingOptions(),
		byImage: make(map[core.ImageID]core.DrawingOptions),
	}
}

// Get returns the options of id.
func (s *OptionsStore) Get(id core.ImageID) core.DrawingOptions {
	return s.byImage[id]
}

// Set replaces the options of id.
func (s *OptionsStore) Set(id core.ImageID, o core.DrawingOptions) {
	s.byImage[id] = o
}

// Update applies fns to the options of id in order and returns the result.
func (s *OptionsStore) Update(id core.ImageID, fns ...OptionsUpdate) core.DrawingOptions {
	o := s.byImage[id]
	for _, fn := range fns {
		fn(&o)
	}
	s.byImage[id] = o
	return o
}

// EnsureBatchItem selects item 0 for id when no batch item is set yet.
func (s *OptionsStore) EnsureBatchItem(id core.ImageID) uint32 {
	o := s.byImage[id]
	if o.BatchItem == nil {
		o.BatchItem = core.Uint32Ptr(0)
		s.byImage[id] = o
	}
	return *o.BatchItem
}

// Clear drops the options of every image in session.
func (s *OptionsStore) Clear(session core.SessionID) {
	for id := range s.byImage {
		if id.Session == session {
			delete(s.byImage, id)
		}
	}
}

// DefaultOverlayAlpha is the opacity of a newly added overlay.
const DefaultOverlayAlpha float32 = 0.4

// Overlay is an image drawn on top of a view's current image.
type Overlay struct {
	Image  core.ImageID
	Alpha  float32
	Hidden bool
}

// Visible reports whether the overlay contributes to the frame.
func (o Overlay) Visible() bool { return !o.Hidden && o.Alpha > 0 }

// Overlays maps a view and its base image to the overlay drawn above it.
type Overlays struct {
	byKey map[overlayKey]Overlay
}

type overlayKey struct {
	view  string
	image core.ImageID
}

// NewOverlays returns an empty overlay map.
func NewOverlays() *Overlays {
	return &Overlays{byKey: make(map[overlayKey]Overlay)}
}

// Set attaches overlay to image in view at the default alpha, keeping the
// previous alpha and visibility if the same overlay was already attached.
func (o *Overlays) Set(view string, image, overlay core.ImageID) {
	k := overlayKey{view, image}
	if cur, ok := o.byKey[k]; ok && cur.Image == overlay {
		return
	}
	o.byKey[k] = Overlay{Image: overlay, Alpha: DefaultOverlayAlpha}
}

// Get returns the overlay of image in view.
func (o *Overlays) Get(view string, image core.ImageID) (Overlay, bool) {
	ov, ok := o.byKey[overlayKey{view, image}]
	return ov, ok
}

// SetAlpha changes the opacity, clamped to [0, 1].
func (o *Overlays) SetAlpha(view string, image core.ImageID, alpha float32) {
	k := overlayKey{view, image}
	ov, ok := o.byKey[k]
	if !ok {
		return
	}
	ov.Alpha = min(max(alpha, 0), 1)
	o.byKey[k] = ov
}

// SetHidden shows or hides the overlay without detaching it.
func (o *Overlays) SetHidden(view string, image core.ImageID, hidden bool) {
	k := overlayKey{view, image}
	if ov, ok := o.byKey[k]; ok {
		ov.Hidden = hidden
		o.byKey[k] = ov
	}
}

// Remove detaches the overlay of image in view.
func (o *Overlays) Remove(view string, image core.ImageID) {
	delete(o.byKey, overlayKey{view, image})
}

// Clear detaches every overlay that involves an image of session.
func (o *Overlays) Clear(session core.SessionID) {
	for k, ov := range o.byKey {
		if k.image.Session == session || ov.Image.Session == session {
			delete(o.byKey, k)
		}
	}
}
