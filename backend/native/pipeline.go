// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/imview/gpu"
	"github.com/gogpu/imview/internal/logging"
	"github.com/gogpu/wgpu/hal"
)

// pipeline is one compiled render pipeline with the layouts it owns.
type pipeline struct {
	shader     hal.ShaderModule
	layout     hal.BindGroupLayout
	pipeLayout hal.PipelineLayout
	pipeline   hal.RenderPipeline
}

// destroy releases GPU objects in reverse creation order.
func (p *pipeline) destroy(device hal.Device) {
	if p.pipeline != nil {
		device.DestroyRenderPipeline(p.pipeline)
		p.pipeline = nil
	}
	if p.pipeLayout != nil {
		device.DestroyPipelineLayout(p.pipeLayout)
		p.pipeLayout = nil
	}
	if p.layout != nil {
		device.DestroyBindGroupLayout(p.layout)
		p.layout = nil
	}
	if p.shader != nil {
		device.DestroyShaderModule(p.shader)
		p.shader = nil
	}
}

// pipelineDesc is what differs between the image and text pipelines.
type pipelineDesc struct {
	label   string
	source  string
	entries []gputypes.BindGroupLayoutEntry
	buffers []gputypes.VertexBufferLayout
}

func (d *Device) imagePipeline(p gpu.Program) (*pipeline, error) {
	if pl, ok := d.images[p]; ok {
		return pl, nil
	}
	pl, err := d.createPipeline(pipelineDesc{
		label:   "image_" + p.String(),
		source:  ImageShaderSource(p),
		entries: imageLayoutEntries(p.SampleType()),
	})
	if err != nil {
		return nil, err
	}
	d.images[p] = pl
	return pl, nil
}

func (d *Device) textPipeline() (*pipeline, error) {
	if d.text != nil {
		return d.text, nil
	}
	pl, err := d.createPipeline(pipelineDesc{
		label:   "pixel_text",
		source:  TextShaderSource(),
		entries: textLayoutEntries(),
		buffers: textVertexLayout(),
	})
	if err != nil {
		return nil, err
	}
	d.text = pl
	return pl, nil
}

// imageLayoutEntries describes the image bind group:
//
//	binding 0: ImageUniforms (uniform buffer, vertex+fragment)
//	binding 1-4: channel textures (loaded, never sampled)
//	binding 5: colormap texture (RGBA32Float, loaded)
func imageLayoutEntries(sample gputypes.TextureSampleType) []gputypes.BindGroupLayoutEntry {
	entries := []gputypes.BindGroupLayoutEntry{{
		Binding:    0,
		Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
		Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
	}}
	for i := uint32(1); i <= 4; i++ {
		entries = append(entries, gputypes.BindGroupLayoutEntry{
			Binding:    i,
			Visibility: gputypes.ShaderStageFragment,
			Texture: &gputypes.TextureBindingLayout{
				SampleType:    sample,
				ViewDimension: gputypes.TextureViewDimension2D,
			},
		})
	}
	return append(entries, gputypes.BindGroupLayoutEntry{
		Binding:    5,
		Visibility: gputypes.ShaderStageFragment,
		Texture: &gputypes.TextureBindingLayout{
			SampleType:    gputypes.TextureSampleTypeUnfilterableFloat,
			ViewDimension: gputypes.TextureViewDimension2D,
		},
	})
}

func textLayoutEntries() []gputypes.BindGroupLayoutEntry {
	return []gputypes.BindGroupLayoutEntry{
		{
			Binding:    0,
			Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
			Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
		},
		{
			Binding:    1,
			Visibility: gputypes.ShaderStageFragment,
			Texture: &gputypes.TextureBindingLayout{
				SampleType:    gputypes.TextureSampleTypeFloat,
				ViewDimension: gputypes.TextureViewDimension2D,
			},
		},
		{
			Binding:    2,
			Visibility: gputypes.ShaderStageFragment,
			Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
		},
	}
}

// textVertexLayout matches gpu.TextVertex.
func textVertexLayout() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{{
		ArrayStride: gpu.TextVertexStride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0},
			{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1},
			{Format: gputypes.VertexFormatFloat32x4, Offset: 16, ShaderLocation: 2},
		},
	}}
}

// createPipeline compiles the shader through naga and builds the pipeline
// with straight alpha blending into the target format. Partially created
// objects are released on failure.
func (d *Device) createPipeline(desc pipelineDesc) (_ *pipeline, err error) {
	pl := &pipeline{}
	defer func() {
		if err != nil {
			pl.destroy(d.device)
		}
	}()

	spirv, err := compileSPIRV(desc.source)
	if err != nil {
		return nil, fmt.Errorf("compile %s shader: %w", desc.label, err)
	}
	pl.shader, err = d.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  desc.label + "_shader",
		Source: hal.ShaderSource{SPIRV: spirv},
	})
	if err != nil {
		return nil, fmt.Errorf("create %s shader module: %w", desc.label, err)
	}

	pl.layout, err = d.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   desc.label + "_layout",
		Entries: desc.entries,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s bind group layout: %w", desc.label, err)
	}

	pl.pipeLayout, err = d.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            desc.label + "_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{pl.layout},
	})
	if err != nil {
		return nil, fmt.Errorf("create %s pipeline layout: %w", desc.label, err)
	}

	blend := gputypes.BlendStateAlpha()
	pl.pipeline, err = d.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  desc.label + "_pipeline",
		Layout: pl.pipeLayout,
		Vertex: hal.VertexState{
			Module:     pl.shader,
			EntryPoint: "vs_main",
			Buffers:    desc.buffers,
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: gputypes.MultisampleState{Count: 1, Mask: 0xFFFFFFFF},
		Fragment: &hal.FragmentState{
			Module:     pl.shader,
			EntryPoint: "fs_main",
			Targets: []gputypes.ColorTargetState{{
				Format:    d.format,
				Blend:     &blend,
				WriteMask: gputypes.ColorWriteMaskAll,
			}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create %s render pipeline: %w", desc.label, err)
	}
	logging.Logger().Debug("native: pipeline created", "pipeline", desc.label)
	return pl, nil
}
