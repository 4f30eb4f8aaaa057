// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package core

import (
	"encoding/binary"
	"math"
	"strconv"
)

// maxPixelBytes is 4 channels of up to 8 bytes each.
const maxPixelBytes = 32

// PixelValue holds the raw channel values of a single pixel.
// Only the first Channels values are meaningful.
type PixelValue struct {
	Channels int
	DataType DataType
	bytes    [maxPixelBytes]byte
}

// NewPixelValue returns a zeroed pixel of the given shape.
func NewPixelValue(channels int, dt DataType) PixelValue {
	return PixelValue{Channels: channels, DataType: dt}
}

// PixelAt reads pixel (x, y) from one batch item of an image. The boolean is
// false when the coordinates or the buffer are out of range.
func PixelAt(info *ImageInfo, data []byte, x, y int) (PixelValue, bool) {
	if x < 0 || y < 0 || x >= info.Width || y >= info.Height {
		return PixelValue{}, false
	}
	if len(data) < info.ItemByteSize() {
		return PixelValue{}, false
	}

	bpe := info.DataType.BytesPerElement()
	c := info.Channels
	index := y*info.Width + x
	pv := PixelValue{Channels: c, DataType: info.DataType}

	switch info.Ordering {
	case Planar:
		plane := info.Width * info.Height * bpe
		for ch := 0; ch < c; ch++ {
			start := plane*ch + index*bpe
			copy(pv.bytes[ch*bpe:(ch+1)*bpe], data[start:start+bpe])
		}
	default:
		start := index * c * bpe
		copy(pv.bytes[:c*bpe], data[start:start+c*bpe])
	}
	return pv, true
}

// Float returns channel ch as float64. Channels past Channels read as 0.
func (p PixelValue) Float(ch int) float64 {
	if ch < 0 || ch >= p.Channels {
		return 0
	}
	bpe := p.DataType.BytesPerElement()
	b := p.bytes[ch*bpe : (ch+1)*bpe]
	switch p.DataType {
	case Uint8:
		return float64(b[0])
	case Int8:
		return float64(int8(b[0]))
	case Bool:
		if b[0] != 0 {
			return 1
		}
		return 0
	case Uint16:
		return float64(binary.LittleEndian.Uint16(b))
	case Int16:
		return float64(int16(binary.LittleEndian.Uint16(b)))
	case Uint32:
		return float64(binary.LittleEndian.Uint32(b))
	case Int32:
		return float64(int32(binary.LittleEndian.Uint32(b)))
	case Float32:
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
	}
	return 0
}

// AsRGBA returns the raw channel values as float32, unnormalized. Missing
// channels are 0.
func (p PixelValue) AsRGBA() [4]float32 {
	var out [4]float32
	for ch := 0; ch < p.Channels && ch < 4; ch++ {
		out[ch] = float32(p.Float(ch))
	}
	return out
}

// Labels formats each channel for on-image display, one string per channel.
// Integers print in decimal, bool as 0 or 1, float32 with two decimals or in
// scientific notation once the magnitude exceeds 1000.
func (p PixelValue) Labels() []string {
	out := make([]string, p.Channels)
	for ch := range out {
		out[ch] = p.label(ch)
	}
	return out
}

func (p PixelValue) label(ch int) string {
	v := p.Float(ch)
	if p.DataType != Float32 {
		return strconv.FormatInt(int64(v), 10)
	}
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case math.Abs(v) > 1000:
		return strconv.FormatFloat(v, 'e', 2, 32)
	default:
		return strconv.FormatFloat(v, 'f', 2, 32)
	}
}
