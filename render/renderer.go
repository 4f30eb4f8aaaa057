// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/imview/camera"
	"github.com/gogpu/imview/coloring"
	"github.com/gogpu/imview/colormap"
	"github.com/gogpu/imview/core"
	"github.com/gogpu/imview/gpu"
	"github.com/gogpu/imview/imagecache"
	"github.com/gogpu/imview/internal/logging"
	"github.com/gogpu/imview/internal/mat"
	"github.com/gogpu/imview/internal/pixeltext"
)

// Per-view errors. They are logged, never returned from Frame.
var (
	// ErrMissingTexture is returned when a resident batch item lacks the
	// textures its program samples.
	ErrMissingTexture = errors.New("render: image texture missing")

	// ErrMissingBatchItem is returned when the selected batch item is not
	// resident.
	ErrMissingBatchItem = errors.New("render: batch item not resident")
)

// Renderer draws scenes with a gpu.Device.
//
// Renderer is NOT safe for concurrent use; call it from the render thread.
type Renderer struct {
	device     gpu.Device
	palettes   *colormap.Registry
	colormaps  *colormap.TextureCache
	atlas      *pixeltext.Atlas
	thresholds Thresholds

	// placeholder is bound in the colormap slot when no palette is used.
	placeholder gpu.Texture
	vertices    []gpu.TextVertex
}

// New creates a renderer. palettes names the colormaps the scene may
// select; atlas may be nil, which disables pixel value labels.
func New(device gpu.Device, palettes *colormap.Registry, atlas *pixeltext.Atlas, th Thresholds) (*Renderer, error) {
	if device == nil {
		return nil, errors.New("render: nil device")
	}
	if palettes == nil {
		palettes = colormap.Builtin()
	}
	placeholder, err := device.CreateTexture(&gpu.TextureDescriptor{
		Label:   "colormap/placeholder",
		Width:   1,
		Height:  1,
		Format:  gputypes.TextureFormatRGBA32Float,
		Filter:  gputypes.FilterModeNearest,
		Address: gputypes.AddressModeClampToEdge,
	}, make([]byte, 16))
	if err != nil {
		logging.Logger().Error("placeholder texture", "err", err)
		return nil, fmt.Errorf("render: placeholder texture: %w", err)
	}
	return &Renderer{
		device:      device,
		palettes:    palettes,
		colormaps:   colormap.NewTextureCache(device, palettes),
		atlas:       atlas,
		thresholds:  th,
		placeholder: placeholder,
	}, nil
}

// Frame draws every view of s.
func (r *Renderer) Frame(s Scene) error {
	w, h := s.CanvasSize()
	if err := r.device.BeginFrame(w, h); err != nil {
		return fmt.Errorf("render: begin frame: %w", err)
	}
	for _, v := range s.Views() {
		if err := r.drawView(s, v, w, h); err != nil {
			logging.Logger().Warn("view skipped", "view", v.Name, "image", v.Image.String(), "err", err)
		}
	}
	if err := r.device.EndFrame(); err != nil {
		return fmt.Errorf("render: end frame: %w", err)
	}
	return nil
}

// Release destroys the textures owned by the renderer.
func (r *Renderer) Release() {
	r.colormaps.Release()
	if r.atlas != nil {
		r.atlas.Release(r.device)
	}
	r.device.DestroyTexture(r.placeholder)
}

// layer is one image drawn into a view.
type layer struct {
	img     *imagecache.TextureImage
	item    uint32
	opts    core.DrawingOptions
	overlay *imagecache.Overlay
	borders bool
}

func (r *Renderer) drawView(s Scene, v View, canvasW, canvasH int) error {
	avail := s.Availability(v.Image)
	img, ok := avail.Renderable()
	if !ok {
		return nil
	}
	rect := v.Rect.Intersect(canvasW, canvasH)
	if rect.Empty() {
		return nil
	}
	r.device.SetViewport(rect)

	info := &img.Info
	imageSize := camera.Size{Width: float32(info.Width), Height: float32(info.Height)}
	rendered := camera.Size{Width: float32(rect.Width), Height: float32(rect.Height)}
	vp := camera.ViewProjection(rendered, camera.ViewSize, v.Camera, imageSize.Aspect())
	pixels := camera.PixelsInformation(imageSize, vp, rendered)

	base := layer{
		img:     img,
		opts:    s.DrawingOptions(v.Image),
		borders: pixels.PixelSizeDevice > r.thresholds.PixelBorder,
	}
	base.item = info.ClampBatchItem(batchItem(base.opts))

	transform, err := r.drawLayer(s, base, vp)
	if err != nil {
		if errors.Is(err, ErrMissingBatchItem) && avail.State == imagecache.Pending {
			logging.Logger().Debug("batch item in flight", "view", v.Name, "image", v.Image.String(), "item", base.item)
			return nil
		}
		return err
	}

	if ov, ok := s.Overlay(v.Name, v.Image); ok && ov.Visible() {
		if err := r.drawOverlay(s, v, base, ov, vp); err != nil {
			logging.Logger().Warn("overlay skipped", "view", v.Name, "overlay", ov.Image.String(), "err", err)
		}
	}

	if r.atlas != nil && pixels.PixelSizeDevice > r.thresholds.PixelValues && !pixels.Empty() {
		return r.drawLabels(s, base, transform, vp, imageSize, pixels)
	}
	return nil
}

func (r *Renderer) drawOverlay(s Scene, v View, base layer, ov imagecache.Overlay, vp mat.Mat3) error {
	img, ok := s.Availability(ov.Image).Renderable()
	if !ok {
		return nil
	}
	if img.Info.Width != base.img.Info.Width || img.Info.Height != base.img.Info.Height {
		logging.Logger().Debug("overlay size differs from image", "view", v.Name,
			"overlay", ov.Image.String(), "image", v.Image.String())
	}
	l := layer{
		img:     img,
		opts:    s.DrawingOptions(ov.Image),
		overlay: &ov,
		borders: false,
	}
	l.item = img.Info.ClampBatchItem(base.item)
	_, err := r.drawLayer(s, l, vp)
	if errors.Is(err, ErrMissingBatchItem) {
		return nil
	}
	return err
}

// drawLayer draws one image quad and returns the color transform used.
func (r *Renderer) drawLayer(s Scene, l layer, vp mat.Mat3) (coloring.Transform, error) {
	info := &l.img.Info
	group, ok := l.img.Group(l.item)
	if !ok {
		return coloring.Transform{}, fmt.Errorf("%w: %s item %d", ErrMissingBatchItem, info.ID, l.item)
	}
	computed, _ := l.img.Computed(l.item)
	transform := coloring.Calculate(info, &computed, &l.opts)

	program := gpu.ProgramFor(info.Ordering, info.Channels, info.DataType)
	want := 1
	if program.Planar() {
		want = info.Channels
	}
	if len(group.Textures) != want {
		return transform, fmt.Errorf("%w: %s has %d textures, %s needs %d",
			ErrMissingTexture, info.ID, len(group.Textures), program, want)
	}

	u := gpu.ImageUniforms{
		Projection:          vp,
		Multiplier:          transform.Multiplier,
		Addition:            transform.Addition,
		BufferWidth:         float32(info.Width),
		BufferHeight:        float32(info.Height),
		NormalizationFactor: transform.NormalizationFactor,
		OverlayAlpha:        1,
		ImageType:           uint32(info.Channels), //nolint:gosec // validated to 1..4
	}
	if l.opts.Invert {
		u.Flags |= gpu.FlagInvert
	}
	if info.Channels == 1 {
		if c := l.opts.Clip.Min; c != nil {
			u.Flags |= gpu.FlagClipMin
			u.ClipMin = *c
		}
		if c := l.opts.Clip.Max; c != nil {
			u.Flags |= gpu.FlagClipMax
			u.ClipMax = *c
		}
	}
	if l.borders {
		u.Flags |= gpu.FlagBorders
	}
	if l.overlay != nil {
		u.Flags |= gpu.FlagOverlay
		u.OverlayAlpha = l.overlay.Alpha
		if l.opts.ZerosAsTransparent {
			u.Flags |= gpu.FlagZerosAsTransparent
		}
	}

	var tex gpu.ImageTextures
	copy(tex.Channels[:], group.Textures)
	tex.Colormap = r.placeholder
	if l.opts.Coloring.UsesColormap() {
		name := s.GlobalOptions().ColormapFor(l.opts.Coloring)
		cm, err := r.colormaps.GetOrCreate(name)
		if err != nil {
			return transform, err
		}
		tex.Colormap = cm
		u.Flags |= gpu.FlagColormap
		if m, err := r.palettes.Get(name); err == nil && m.Interpolated() {
			u.Flags |= gpu.FlagColormapLinear
		}
	}

	logging.Logger().Debug("draw image", "image", info.ID.String(), "item", l.item,
		"program", program.String(), "flags", u.Flags)
	if err := r.device.DrawImage(program, &u, &tex); err != nil {
		return transform, fmt.Errorf("render: draw %s: %w", info.ID, err)
	}
	return transform, nil
}

// drawLabels writes the value of every visible pixel inside it.
func (r *Renderer) drawLabels(s Scene, base layer, transform coloring.Transform, vp mat.Mat3, imageSize camera.Size, pixels camera.PixelsInfo) error {
	info := &base.img.Info
	data, ok := base.img.Bytes(base.item)
	if !ok {
		return fmt.Errorf("%w: %s item %d", ErrMissingBatchItem, info.ID, base.item)
	}

	var palette coloring.Palette
	if base.opts.Coloring.UsesColormap() {
		if cm, err := r.palettes.Get(s.GlobalOptions().ColormapFor(base.opts.Coloring)); err == nil {
			palette = cm
		}
	}

	r.vertices = r.vertices[:0]
	for y := pixels.LowerY; y < pixels.UpperY; y++ {
		for x := pixels.LowerX; x < pixels.UpperX; x++ {
			pv, ok := core.PixelAt(info, data, x, y)
			if !ok {
				continue
			}
			var err error
			r.vertices, err = r.atlas.AppendQuads(r.vertices, pixeltext.Label{
				X:     x,
				Y:     y,
				Lines: pv.Labels(),
				Color: coloring.LabelColor(pv, transform, &base.opts, palette),
			})
			if err != nil {
				return err
			}
		}
	}
	if len(r.vertices) == 0 {
		return nil
	}

	atlas, err := r.atlas.Texture(r.device)
	if err != nil {
		return err
	}
	st := r.atlas.ShapeStats()
	logging.Logger().Debug("draw labels", "image", info.ID.String(), "quads", len(r.vertices)/4,
		"shapedLines", st.Len, "shapeHitRate", st.HitRate())

	u := gpu.TextUniforms{Transform: vp.Mul(camera.ImageToView(imageSize))}
	const batch = 4 * gpu.MaxTextQuads
	for start := 0; start < len(r.vertices); start += batch {
		end := min(start+batch, len(r.vertices))
		if err := r.device.DrawText(&u, atlas, r.vertices[start:end]); err != nil {
			return fmt.Errorf("render: draw labels %s: %w", info.ID, err)
		}
	}
	return nil
}

func batchItem(o core.DrawingOptions) uint32 {
	if o.BatchItem == nil {
		return 0
	}
	return *o.BatchItem
}
