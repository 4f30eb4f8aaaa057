// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package core

import (
	"errors"
	"fmt"
	"math"
)

// Image validation errors.
var (
	// ErrInvalidChannels is returned when an image has a channel count outside 1..4.
	ErrInvalidChannels = errors.New("core: channel count must be between 1 and 4")

	// ErrInvalidDimensions is returned when width or height is not positive.
	ErrInvalidDimensions = errors.New("core: image dimensions must be positive")

	// ErrUnknownDataType is returned for a data type outside the supported set.
	ErrUnknownDataType = errors.New("core: unknown data type")

	// ErrDataSize is returned when a byte buffer does not match its ImageInfo.
	ErrDataSize = errors.New("core: byte length does not match image info")
)

// SessionID identifies the host debug session that produced an image.
type SessionID string

// ImageID identifies an image across metadata, bytes and cache entries.
// Every image belongs to exactly one session.
type ImageID struct {
	Session SessionID
	Name    string
}

// NewImageID returns the id of image name in session.
func NewImageID(session SessionID, name string) ImageID {
	return ImageID{Session: session, Name: name}
}

func (id ImageID) String() string {
	if id.Session == "" {
		return id.Name
	}
	return string(id.Session) + "/" + id.Name
}

// DataType is the element type of a raw pixel buffer.
type DataType uint8

// Supported element types.
const (
	Uint8 DataType = iota
	Uint16
	Uint32
	Float32
	Int8
	Int16
	Int32
	Bool
)

// String returns the numpy-style name of the type.
func (d DataType) String() string {
	switch d {
	case Uint8:
		return "uint8"
	case Uint16:
		return "uint16"
	case Uint32:
		return "uint32"
	case Float32:
		return "float32"
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Int32:
		return "int32"
	case Bool:
		return "bool"
	default:
		return fmt.Sprintf("DataType(%d)", uint8(d))
	}
}

// Valid reports whether d is one of the supported types.
func (d DataType) Valid() bool { return d <= Bool }

// BytesPerElement returns the storage size of one channel value.
func (d DataType) BytesPerElement() int {
	switch d {
	case Uint16, Int16:
		return 2
	case Uint32, Int32, Float32:
		return 4
	default:
		return 1
	}
}

// IsInteger reports whether d is an integer type. Bool is not.
func (d DataType) IsInteger() bool {
	switch d {
	case Uint8, Uint16, Uint32, Int8, Int16, Int32:
		return true
	default:
		return false
	}
}

// Max returns the normalization factor for d: the largest representable
// value for integers, 1 for float32 and bool.
func (d DataType) Max() float32 {
	switch d {
	case Uint8:
		return math.MaxUint8
	case Uint16:
		return math.MaxUint16
	case Uint32:
		return math.MaxUint32
	case Int8:
		return math.MaxInt8
	case Int16:
		return math.MaxInt16
	case Int32:
		return math.MaxInt32
	default:
		return 1
	}
}

// Min returns the smallest representable value for d (0 for float32 and bool,
// whose displayable range is [0, 1]).
func (d DataType) Min() float32 {
	switch d {
	case Int8:
		return math.MinInt8
	case Int16:
		return math.MinInt16
	case Int32:
		return math.MinInt32
	default:
		return 0
	}
}

// Family groups data types by the shader program that samples them.
type Family uint8

// Shader families. Bool is sampled as unsigned.
const (
	FamilyUnsigned Family = iota
	FamilySigned
	FamilyFloat
)

// String returns the family name.
func (f Family) String() string {
	switch f {
	case FamilyUnsigned:
		return "uint"
	case FamilySigned:
		return "int"
	case FamilyFloat:
		return "float"
	default:
		return fmt.Sprintf("Family(%d)", uint8(f))
	}
}

// Family returns the shader family of d.
func (d DataType) Family() Family {
	switch d {
	case Int8, Int16, Int32:
		return FamilySigned
	case Float32:
		return FamilyFloat
	default:
		return FamilyUnsigned
	}
}

// DataOrdering is the memory layout of a multi-channel buffer.
type DataOrdering uint8

const (
	// Packed stores the channels of a pixel contiguously (HWC).
	Packed DataOrdering = iota
	// Planar stores each channel as its own contiguous plane (CHW).
	Planar
)

// String returns "HWC" or "CHW".
func (o DataOrdering) String() string {
	if o == Planar {
		return "CHW"
	}
	return "HWC"
}

// BatchInfo describes a multi-frame tensor: BatchSize items along a leading
// dimension, of which the host offers [ItemsStart, ItemsStop).
type BatchInfo struct {
	BatchSize  uint32
	ItemsStart uint32
	ItemsStop  uint32
}

// ImageInfo is the metadata of one image. It is replaced wholesale when the
// host sends new metadata, never mutated in place.
type ImageInfo struct {
	ID       ImageID
	Width    int
	Height   int
	Channels int
	DataType DataType
	Ordering DataOrdering
	Batch    *BatchInfo
}

// Validate checks the invariants of the metadata itself.
func (i *ImageInfo) Validate() error {
	if i.Channels < 1 || i.Channels > 4 {
		return fmt.Errorf("%w: got %d", ErrInvalidChannels, i.Channels)
	}
	if i.Width <= 0 || i.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, i.Width, i.Height)
	}
	if !i.DataType.Valid() {
		return ErrUnknownDataType
	}
	return nil
}

// ItemByteSize returns the byte length of one image (one batch item).
func (i *ImageInfo) ItemByteSize() int {
	return i.Width * i.Height * i.Channels * i.DataType.BytesPerElement()
}

// CheckBytes reports whether data holds exactly one batch item of this image.
func (i *ImageInfo) CheckBytes(data []byte) error {
	if want := i.ItemByteSize(); len(data) != want {
		return fmt.Errorf("%w: %s has %d bytes, want %d", ErrDataSize, i.ID, len(data), want)
	}
	return nil
}

// IsBatched reports whether the image has more than one batch item.
func (i *ImageInfo) IsBatched() bool {
	return i.Batch != nil && i.Batch.BatchSize > 1
}

// ClampBatchItem maps an arbitrary requested batch item into
// [0, BatchSize-1]. Unbatched images always resolve to item 0.
func (i *ImageInfo) ClampBatchItem(item uint32) uint32 {
	if i.Batch == nil || i.Batch.BatchSize == 0 {
		return 0
	}
	if item >= i.Batch.BatchSize {
		return i.Batch.BatchSize - 1
	}
	return item
}

// AspectRatio returns width / height.
func (i *ImageInfo) AspectRatio() float32 {
	return float32(i.Width) / float32(i.Height)
}

// HasAlpha reports whether the last channel is alpha (2 or 4 channels).
func (i *ImageInfo) HasAlpha() bool {
	return i.Channels == 2 || i.Channels == 4
}
