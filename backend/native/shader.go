// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package native

import (
	_ "embed"
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/imview/gpu"
	"github.com/gogpu/naga"
)

//go:embed shaders/image.wgsl
var imageShaderTemplate string

//go:embed shaders/text.wgsl
var textShaderSource string

const packedLoad = `    return vec4<f32>(textureLoad(channel0, texel, 0));`

const planarLoad = `    var v = vec4<f32>(f32(textureLoad(channel0, texel, 0).x), 0.0, 0.0, 0.0);
    if (u.image_type > 1u) {
        v.y = f32(textureLoad(channel1, texel, 0).x);
    }
    if (u.image_type > 2u) {
        v.z = f32(textureLoad(channel2, texel, 0).x);
    }
    if (u.image_type > 3u) {
        v.w = f32(textureLoad(channel3, texel, 0).x);
    }
    return v;`

// ImageShaderSource returns the WGSL source of an image program.
func ImageShaderSource(p gpu.Program) string {
	scalar := "u32"
	switch p.SampleType() {
	case gputypes.TextureSampleTypeSint:
		scalar = "i32"
	case gputypes.TextureSampleTypeUnfilterableFloat:
		scalar = "f32"
	}
	load := packedLoad
	if p.Planar() {
		load = planarLoad
	}
	return strings.NewReplacer("{{SCALAR}}", scalar, "{{LOAD}}", load).Replace(imageShaderTemplate)
}

// TextShaderSource returns the WGSL source of the pixel text program.
func TextShaderSource() string { return textShaderSource }

// compileSPIRV compiles WGSL to SPIR-V words.
func compileSPIRV(source string) ([]uint32, error) {
	spirv, err := naga.Compile(source)
	if err != nil {
		return nil, err
	}
	if len(spirv)%4 != 0 {
		return nil, fmt.Errorf("spir-v output is %d bytes, not whole words", len(spirv))
	}
	words := make([]uint32, len(spirv)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(spirv[i*4:])
	}
	return words, nil
}
