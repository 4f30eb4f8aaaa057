// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/imview/core"
)

// formats maps a datatype to its texture format per channel count.
// There are no 3-channel formats, so RGB data is uploaded as RGBA.
var formats = map[core.DataType][4]gputypes.TextureFormat{
	core.Uint8: {
		gputypes.TextureFormatR8Uint, gputypes.TextureFormatRG8Uint,
		gputypes.TextureFormatRGBA8Uint, gputypes.TextureFormatRGBA8Uint,
	},
	core.Uint16: {
		gputypes.TextureFormatR16Uint, gputypes.TextureFormatRG16Uint,
		gputypes.TextureFormatRGBA16Uint, gputypes.TextureFormatRGBA16Uint,
	},
	core.Uint32: {
		gputypes.TextureFormatR32Uint, gputypes.TextureFormatRG32Uint,
		gputypes.TextureFormatRGBA32Uint, gputypes.TextureFormatRGBA32Uint,
	},
	core.Int8: {
		gputypes.TextureFormatR8Sint, gputypes.TextureFormatRG8Sint,
		gputypes.TextureFormatRGBA8Sint, gputypes.TextureFormatRGBA8Sint,
	},
	core.Int16: {
		gputypes.TextureFormatR16Sint, gputypes.TextureFormatRG16Sint,
		gputypes.TextureFormatRGBA16Sint, gputypes.TextureFormatRGBA16Sint,
	},
	core.Int32: {
		gputypes.TextureFormatR32Sint, gputypes.TextureFormatRG32Sint,
		gputypes.TextureFormatRGBA32Sint, gputypes.TextureFormatRGBA32Sint,
	},
	core.Float32: {
		gputypes.TextureFormatR32Float, gputypes.TextureFormatRG32Float,
		gputypes.TextureFormatRGBA32Float, gputypes.TextureFormatRGBA32Float,
	},
	core.Bool: {
		gputypes.TextureFormatR8Uint, gputypes.TextureFormatRG8Uint,
		gputypes.TextureFormatRGBA8Uint, gputypes.TextureFormatRGBA8Uint,
	},
}

// TextureFormatFor returns the texture format that holds channels values
// of dt per texel.
func TextureFormatFor(dt core.DataType, channels int) (gputypes.TextureFormat, error) {
	row, ok := formats[dt]
	if !ok || channels < 1 || channels > 4 {
		return gputypes.TextureFormatUndefined, fmt.Errorf("%w: %s with %d channels", ErrUnsupportedFormat, dt, channels)
	}
	return row[channels-1], nil
}

// BytesPerTexel returns the texel size of the formats this package uses,
// or 0 for any other format.
func BytesPerTexel(f gputypes.TextureFormat) int {
	switch f {
	case gputypes.TextureFormatR8Uint, gputypes.TextureFormatR8Sint, gputypes.TextureFormatR8Unorm:
		return 1
	case gputypes.TextureFormatRG8Uint, gputypes.TextureFormatRG8Sint,
		gputypes.TextureFormatR16Uint, gputypes.TextureFormatR16Sint:
		return 2
	case gputypes.TextureFormatRGBA8Uint, gputypes.TextureFormatRGBA8Sint, gputypes.TextureFormatRGBA8Unorm,
		gputypes.TextureFormatRG16Uint, gputypes.TextureFormatRG16Sint,
		gputypes.TextureFormatR32Uint, gputypes.TextureFormatR32Sint, gputypes.TextureFormatR32Float:
		return 4
	case gputypes.TextureFormatRGBA16Uint, gputypes.TextureFormatRGBA16Sint,
		gputypes.TextureFormatRG32Uint, gputypes.TextureFormatRG32Sint, gputypes.TextureFormatRG32Float:
		return 8
	case gputypes.TextureFormatRGBA32Uint, gputypes.TextureFormatRGBA32Sint, gputypes.TextureFormatRGBA32Float:
		return 16
	default:
		return 0
	}
}

// PadRGBToRGBA widens packed 3-channel texels of elemSize bytes per channel
// to 4 channels, filling the extra channel with zero bytes.
func PadRGBToRGBA(src []byte, elemSize int) []byte {
	texel := 3 * elemSize
	n := len(src) / texel
	dst := make([]byte, n*4*elemSize)
	for i := range n {
		copy(dst[i*4*elemSize:], src[i*texel:(i+1)*texel])
	}
	return dst
}
