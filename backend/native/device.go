// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/imview/gpu"
	"github.com/gogpu/imview/internal/logging"
	"github.com/gogpu/wgpu/hal"
)

var (
	// ErrNilDevice is returned when no HAL device or queue is supplied.
	ErrNilDevice = errors.New("native: nil hal device or queue")

	// ErrForeignTexture is returned when a texture created by another
	// gpu.Device is bound.
	ErrForeignTexture = errors.New("native: texture not created by this device")

	// ErrFrameInProgress is returned by BeginFrame when the previous frame
	// was never ended.
	ErrFrameInProgress = errors.New("native: frame already in progress")
)

// DefaultTargetFormat is the offscreen target format used when the host
// does not name one.
const DefaultTargetFormat = gputypes.TextureFormatRGBA8Unorm

// Device implements gpu.Device on a wgpu HAL device and queue that the host
// owns. Pipelines are created on first use and live until Destroy.
type Device struct {
	device hal.Device
	queue  hal.Queue
	format gputypes.TextureFormat

	images   map[gpu.Program]*pipeline
	text     *pipeline
	samplers map[samplerKey]hal.Sampler

	target   *Texture
	external hal.TextureView

	frame *frame
}

// frame holds what one BeginFrame/EndFrame pair records, plus the
// per-draw buffers and bind groups released once the GPU is done.
type frame struct {
	encoder hal.CommandEncoder
	pass    hal.RenderPassEncoder
	buffers []hal.Buffer
	groups  []hal.BindGroup
}

type samplerKey struct {
	filter  gputypes.FilterMode
	address gputypes.AddressMode
}

// New wraps a HAL device and queue. format is the color format of the
// render target; TextureFormatUndefined selects DefaultTargetFormat.
func New(device hal.Device, queue hal.Queue, format gputypes.TextureFormat) (*Device, error) {
	if device == nil || queue == nil {
		return nil, ErrNilDevice
	}
	if format == gputypes.TextureFormatUndefined {
		format = DefaultTargetFormat
	}
	return &Device{
		device:   device,
		queue:    queue,
		format:   format,
		images:   make(map[gpu.Program]*pipeline),
		samplers: make(map[samplerKey]hal.Sampler),
	}, nil
}

// NewFromProvider takes the device, queue and surface format from a host
// window. The provider must also expose HalDevice() and HalQueue()
// returning the HAL objects behind its WebGPU handles.
func NewFromProvider(provider gpucontext.DeviceProvider) (*Device, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("native: provider %T does not expose HAL handles", provider)
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok {
		return nil, fmt.Errorf("native: provider HalDevice is not hal.Device")
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok {
		return nil, fmt.Errorf("native: provider HalQueue is not hal.Queue")
	}
	return New(device, queue, provider.SurfaceFormat())
}

// Format returns the render target format.
func (d *Device) Format() gputypes.TextureFormat { return d.format }

// SetTarget makes following frames render into view, typically the
// current surface texture. A nil view switches back to the offscreen
// target.
func (d *Device) SetTarget(view hal.TextureView) { d.external = view }

// Target returns the offscreen render target, or nil before the first
// offscreen frame.
func (d *Device) Target() *Texture { return d.target }

// CreateTexture creates a sampled texture and uploads data into it.
func (d *Device) CreateTexture(desc *gpu.TextureDescriptor, data []byte) (gpu.Texture, error) {
	if err := desc.Validate(data); err != nil {
		return nil, err
	}
	t, err := d.newTexture(desc, gputypes.TextureUsageTextureBinding|gputypes.TextureUsageCopyDst)
	if err != nil {
		return nil, err
	}
	err = d.queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: t.texture, Aspect: gputypes.TextureAspectAll},
		data,
		&hal.ImageDataLayout{
			BytesPerRow:  uint32(desc.Width * gpu.BytesPerTexel(desc.Format)), //nolint:gosec // validated above
			RowsPerImage: uint32(desc.Height),                                 //nolint:gosec // validated above
		},
		&hal.Extent3D{Width: uint32(desc.Width), Height: uint32(desc.Height), DepthOrArrayLayers: 1}, //nolint:gosec // validated above
	)
	if err != nil {
		t.destroy(d.device)
		return nil, fmt.Errorf("upload texture %q: %w", desc.Label, err)
	}
	return t, nil
}

// DestroyTexture releases a texture created by this device. Other values
// are ignored.
func (d *Device) DestroyTexture(t gpu.Texture) {
	if tex, ok := t.(*Texture); ok {
		tex.destroy(d.device)
	}
}

func (d *Device) newTexture(desc *gpu.TextureDescriptor, usage gputypes.TextureUsage) (*Texture, error) {
	tex, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label:         desc.Label,
		Size:          hal.Extent3D{Width: uint32(desc.Width), Height: uint32(desc.Height), DepthOrArrayLayers: 1}, //nolint:gosec // positive, checked by callers
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        desc.Format,
		Usage:         usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create texture %q: %w", desc.Label, err)
	}
	view, err := d.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         desc.Label + "/view",
		Format:        desc.Format,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		d.device.DestroyTexture(tex)
		return nil, fmt.Errorf("create texture view %q: %w", desc.Label, err)
	}
	return &Texture{desc: *desc, texture: tex, view: view}, nil
}

// BeginFrame starts recording a frame that clears the target to
// transparent black. The offscreen target is resized to width x height.
func (d *Device) BeginFrame(width, height int) error {
	if d.frame != nil {
		return ErrFrameInProgress
	}
	view := d.external
	if view == nil {
		if err := d.ensureTarget(width, height); err != nil {
			return err
		}
		view = d.target.view
	}

	encoder, err := d.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "imview/frame"})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("imview/frame"); err != nil {
		encoder.Destroy()
		return fmt.Errorf("begin encoding: %w", err)
	}
	pass := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "imview/views",
		ColorAttachments: []hal.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     gputypes.LoadOpClear,
			StoreOp:    gputypes.StoreOpStore,
			ClearValue: gputypes.Color{},
		}},
	})
	d.frame = &frame{encoder: encoder, pass: pass}
	return nil
}

func (d *Device) ensureTarget(width, height int) error {
	if d.target != nil && d.target.Width() == width && d.target.Height() == height {
		return nil
	}
	if d.target != nil {
		d.target.destroy(d.device)
		d.target = nil
	}
	t, err := d.newTexture(&gpu.TextureDescriptor{
		Label:  "imview/target",
		Width:  width,
		Height: height,
		Format: d.format,
	}, gputypes.TextureUsageRenderAttachment|gputypes.TextureUsageCopySrc|gputypes.TextureUsageTextureBinding)
	if err != nil {
		return err
	}
	logging.Logger().Debug("native: render target resized", "width", width, "height", height)
	d.target = t
	return nil
}

// SetViewport restricts following draws to r, both as viewport and
// scissor.
func (d *Device) SetViewport(r gpu.Rect) {
	if d.frame == nil || r.Empty() {
		return
	}
	d.frame.pass.SetViewport(float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 0, 1)
	d.frame.pass.SetScissorRect(uint32(r.X), uint32(r.Y), uint32(r.Width), uint32(r.Height)) //nolint:gosec // clamped to the canvas by the renderer
}

// DrawImage draws the view quad with image program p.
func (d *Device) DrawImage(p gpu.Program, u *gpu.ImageUniforms, tex *gpu.ImageTextures) error {
	if d.frame == nil {
		return gpu.ErrNoFrame
	}
	pl, err := d.imagePipeline(p)
	if err != nil {
		return err
	}
	views, err := imageViews(p, tex)
	if err != nil {
		return err
	}
	uniforms, err := d.uniformBuffer("imview/image_uniforms", u.Bytes())
	if err != nil {
		return err
	}

	entries := []gputypes.BindGroupEntry{{
		Binding:  0,
		Resource: gputypes.BufferBinding{Buffer: uniforms.NativeHandle(), Size: gpu.ImageUniformSize},
	}}
	for i, v := range views {
		entries = append(entries, gputypes.BindGroupEntry{
			Binding:  uint32(i + 1), //nolint:gosec // at most 5 views
			Resource: gputypes.TextureViewBinding{TextureView: v.NativeHandle()},
		})
	}
	group, err := d.bindGroup("imview/image_bind_group/"+p.String(), pl.layout, entries)
	if err != nil {
		return err
	}

	pass := d.frame.pass
	pass.SetPipeline(pl.pipeline)
	pass.SetBindGroup(0, group, nil)
	pass.Draw(6, 1, 0, 0)
	return nil
}

// imageViews orders the five texture bindings of an image program. Unused
// channel slots repeat the first channel texture and the colormap slot
// must always be filled.
func imageViews(p gpu.Program, tex *gpu.ImageTextures) ([]hal.TextureView, error) {
	first, ok := tex.Channels[0].(*Texture)
	if !ok {
		return nil, fmt.Errorf("%w: channel 0 is %T", ErrForeignTexture, tex.Channels[0])
	}
	views := []hal.TextureView{first.view, first.view, first.view, first.view}
	if p.Planar() {
		for i := 1; i < len(tex.Channels); i++ {
			if tex.Channels[i] == nil {
				continue
			}
			t, ok := tex.Channels[i].(*Texture)
			if !ok {
				return nil, fmt.Errorf("%w: channel %d is %T", ErrForeignTexture, i, tex.Channels[i])
			}
			views[i] = t.view
		}
	}
	cm, ok := tex.Colormap.(*Texture)
	if !ok {
		return nil, fmt.Errorf("%w: colormap is %T", ErrForeignTexture, tex.Colormap)
	}
	return append(views, cm.view), nil
}

// DrawText draws glyph quads sampled from atlas.
func (d *Device) DrawText(u *gpu.TextUniforms, atlas gpu.Texture, vertices []gpu.TextVertex) error {
	if d.frame == nil {
		return gpu.ErrNoFrame
	}
	quads := len(vertices) / 4
	if quads == 0 {
		return nil
	}
	if quads > gpu.MaxTextQuads {
		return fmt.Errorf("%w: %d > %d", gpu.ErrTooManyQuads, quads, gpu.MaxTextQuads)
	}
	at, ok := atlas.(*Texture)
	if !ok {
		return fmt.Errorf("%w: atlas is %T", ErrForeignTexture, atlas)
	}
	pl, err := d.textPipeline()
	if err != nil {
		return err
	}
	sampler, err := d.sampler(at.desc.Filter, at.desc.Address)
	if err != nil {
		return err
	}

	uniforms, err := d.uniformBuffer("imview/text_uniforms", u.Bytes())
	if err != nil {
		return err
	}
	vbuf, err := d.frameBuffer("imview/text_vertices", gputypes.BufferUsageVertex, gpu.TextVertexBytes(vertices[:quads*4]))
	if err != nil {
		return err
	}
	ibuf, err := d.frameBuffer("imview/text_indices", gputypes.BufferUsageIndex, indexBytes(gpu.QuadIndices(quads)))
	if err != nil {
		return err
	}
	group, err := d.bindGroup("imview/text_bind_group", pl.layout, []gputypes.BindGroupEntry{
		{Binding: 0, Resource: gputypes.BufferBinding{Buffer: uniforms.NativeHandle(), Size: gpu.TextUniformSize}},
		{Binding: 1, Resource: gputypes.TextureViewBinding{TextureView: at.view.NativeHandle()}},
		{Binding: 2, Resource: gputypes.SamplerBinding{Sampler: sampler.NativeHandle()}},
	})
	if err != nil {
		return err
	}

	pass := d.frame.pass
	pass.SetPipeline(pl.pipeline)
	pass.SetBindGroup(0, group, nil)
	pass.SetVertexBuffer(0, vbuf, 0)
	pass.SetIndexBuffer(ibuf, gputypes.IndexFormatUint16, 0)
	pass.DrawIndexed(uint32(quads*6), 1, 0, 0, 0) //nolint:gosec // quads <= MaxTextQuads
	return nil
}

// EndFrame submits the frame, waits for the GPU and releases the frame's
// transient buffers and bind groups.
func (d *Device) EndFrame() error {
	f := d.frame
	if f == nil {
		return gpu.ErrNoFrame
	}
	d.frame = nil
	defer d.releaseFrame(f)

	f.pass.End()
	cmd, err := f.encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer d.device.FreeCommandBuffer(cmd)

	if _, err := d.queue.Submit([]hal.CommandBuffer{cmd}); err != nil {
		return fmt.Errorf("submit frame: %w", err)
	}
	if err := d.device.WaitIdle(); err != nil {
		return fmt.Errorf("wait for frame: %w", err)
	}
	return nil
}

func (d *Device) releaseFrame(f *frame) {
	for _, g := range f.groups {
		d.device.DestroyBindGroup(g)
	}
	for _, b := range f.buffers {
		d.device.DestroyBuffer(b)
	}
	f.encoder.Destroy()
}

// Destroy releases pipelines, samplers and the offscreen target. Textures
// handed out by CreateTexture stay owned by their callers.
func (d *Device) Destroy() {
	if d.frame != nil {
		d.frame.encoder.DiscardEncoding()
		d.releaseFrame(d.frame)
		d.frame = nil
	}
	for p, pl := range d.images {
		pl.destroy(d.device)
		delete(d.images, p)
	}
	if d.text != nil {
		d.text.destroy(d.device)
		d.text = nil
	}
	for k, s := range d.samplers {
		d.device.DestroySampler(s)
		delete(d.samplers, k)
	}
	if d.target != nil {
		d.target.destroy(d.device)
		d.target = nil
	}
}

func (d *Device) uniformBuffer(label string, data []byte) (hal.Buffer, error) {
	return d.frameBuffer(label, gputypes.BufferUsageUniform, data)
}

// frameBuffer creates a buffer holding data that lives until EndFrame.
func (d *Device) frameBuffer(label string, usage gputypes.BufferUsage, data []byte) (hal.Buffer, error) {
	buf, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return nil, fmt.Errorf("create buffer %s: %w", label, err)
	}
	d.frame.buffers = append(d.frame.buffers, buf)
	if err := d.queue.WriteBuffer(buf, 0, data); err != nil {
		return nil, fmt.Errorf("write buffer %s: %w", label, err)
	}
	return buf, nil
}

func (d *Device) bindGroup(label string, layout hal.BindGroupLayout, entries []gputypes.BindGroupEntry) (hal.BindGroup, error) {
	g, err := d.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:   label,
		Layout:  layout,
		Entries: entries,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	d.frame.groups = append(d.frame.groups, g)
	return g, nil
}

func (d *Device) sampler(filter gputypes.FilterMode, address gputypes.AddressMode) (hal.Sampler, error) {
	if filter == gputypes.FilterModeUndefined {
		filter = gputypes.FilterModeNearest
	}
	if address == gputypes.AddressModeUndefined {
		address = gputypes.AddressModeClampToEdge
	}
	key := samplerKey{filter, address}
	if s, ok := d.samplers[key]; ok {
		return s, nil
	}
	s, err := d.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "imview/sampler",
		AddressModeU: address,
		AddressModeV: address,
		AddressModeW: address,
		MagFilter:    filter,
		MinFilter:    filter,
		MipmapFilter: gputypes.FilterModeNearest,
		LodMaxClamp:  32,
	})
	if err != nil {
		return nil, fmt.Errorf("create sampler: %w", err)
	}
	d.samplers[key] = s
	return s, nil
}

// indexBytes packs 16-bit indices, padded to a multiple of four bytes for
// queue writes.
func indexBytes(indices []uint16) []byte {
	n := len(indices) * 2
	buf := make([]byte, (n+3)&^3)
	for i, v := range indices {
		buf[2*i] = byte(v)
		buf[2*i+1] = byte(v >> 8)
	}
	return buf
}

var _ gpu.Device = (*Device)(nil)
