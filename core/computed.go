// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package core

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ComputedInfo holds per-channel statistics of an image. Only the first
// Channels entries of Min and Max are meaningful.
type ComputedInfo struct {
	Channels int
	Min      [4]float32
	Max      [4]float32
}

// ComputeInfo scans one batch item and returns its per-channel min and max.
// NaN values are ignored; a channel with no finite samples reports 0..0.
func ComputeInfo(info *ImageInfo, data []byte) (ComputedInfo, error) {
	if err := info.Validate(); err != nil {
		return ComputedInfo{}, err
	}
	if err := info.CheckBytes(data); err != nil {
		return ComputedInfo{}, err
	}

	ci := ComputedInfo{Channels: info.Channels}
	n := info.Width * info.Height
	values := make([]float64, 0, n)
	for ch := 0; ch < info.Channels; ch++ {
		values = channelValues(info, data, ch, values[:0])
		if len(values) == 0 {
			continue
		}
		ci.Min[ch] = float32(floats.Min(values))
		ci.Max[ch] = float32(floats.Max(values))
	}
	return ci, nil
}

// Range returns the min and max of channel ch.
func (c ComputedInfo) Range(ch int) (lo, hi float32) {
	if ch < 0 || ch >= c.Channels || ch >= 4 {
		return 0, 0
	}
	return c.Min[ch], c.Max[ch]
}

func channelValues(info *ImageInfo, data []byte, ch int, dst []float64) []float64 {
	pv := NewPixelValue(1, info.DataType)
	bpe := info.DataType.BytesPerElement()
	n := info.Width * info.Height
	for i := 0; i < n; i++ {
		var off int
		if info.Ordering == Planar {
			off = (ch*n + i) * bpe
		} else {
			off = (i*info.Channels + ch) * bpe
		}
		copy(pv.bytes[:bpe], data[off:off+bpe])
		v := pv.Float(0)
		if math.IsNaN(v) {
			continue
		}
		dst = append(dst, v)
	}
	return dst
}
