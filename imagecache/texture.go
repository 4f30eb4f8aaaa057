// Package imagecache tracks which images are resident on the GPU.
//
// Each image id moves through NotAvailable, Pending and Available. A
// Pending entry may still hold the previous texture so views keep showing
// stale data while a refetch is in flight. Batched images keep one texture
// group per fetched batch item; fetching more items only adds groups.
package imagecache

import (
	"fmt"
	"maps"
	"slices"

	"github.com/gogpu/imview/core"
	"github.com/gogpu/imview/gpu"
	"github.com/gogpu/imview/internal/logging"
)

// TexturesGroup holds the textures of one batch item: a single texture for
// packed data (and planar data with one channel), one per channel for
// planar data.
type TexturesGroup struct {
	Textures []gpu.Texture
}

func (g *TexturesGroup) release(device gpu.Device) {
	for _, t := range g.Textures {
		device.DestroyTexture(t)
	}
	g.Textures = nil
}

type batchItem struct {
	group    *TexturesGroup
	bytes    []byte
	computed core.ComputedInfo
}

// TextureImage owns the GPU textures and raw bytes of one image, keyed by
// batch item. Unbatched images use item 0.
type TextureImage struct {
	Info core.ImageInfo

	device gpu.Device
	items  map[uint32]*batchItem
}

// NewTextureImage uploads the bytes of one batch item of info to device.
func NewTextureImage(device gpu.Device, info core.ImageInfo, item uint32, data []byte) (*TextureImage, error) {
	if err := info.Validate(); err != nil {
		return nil, fmt.Errorf("imagecache: %s: %w", info.ID, err)
	}
	computed, err := core.ComputeInfo(&info, data)
	if err != nil {
		return nil, fmt.Errorf("imagecache: %s: %w", info.ID, err)
	}
	group, err := upload(device, &info, item, data)
	if err != nil {
		return nil, err
	}
	logging.Logger().Debug("image uploaded", "image", info.ID.String(), "item", item,
		"ordering", info.Ordering.String(), "textures", len(group.Textures))

	return &TextureImage{
		Info:   info,
		device: device,
		items: map[uint32]*batchItem{
			item: {group: group, bytes: data, computed: computed},
		},
	}, nil
}

func upload(device gpu.Device, info *core.ImageInfo, item uint32, data []byte) (*TexturesGroup, error) {
	elem := info.DataType.BytesPerElement()
	label := fmt.Sprintf("%s[%d]", info.ID, item)

	if info.Ordering == core.Packed || info.Channels == 1 {
		format, err := gpu.TextureFormatFor(info.DataType, info.Channels)
		if err != nil {
			return nil, err
		}
		texels := data
		if info.Channels == 3 {
			texels = gpu.PadRGBToRGBA(data, elem)
		}
		t, err := device.CreateTexture(&gpu.TextureDescriptor{
			Label:  label,
			Width:  info.Width,
			Height: info.Height,
			Format: format,
		}, texels)
		if err != nil {
			return nil, fmt.Errorf("imagecache: upload %s: %w", label, err)
		}
		return &TexturesGroup{Textures: []gpu.Texture{t}}, nil
	}

	format, err := gpu.TextureFormatFor(info.DataType, 1)
	if err != nil {
		return nil, err
	}
	plane := info.Width * info.Height * elem
	group := &TexturesGroup{Textures: make([]gpu.Texture, 0, info.Channels)}
	for ch := range info.Channels {
		t, err := device.CreateTexture(&gpu.TextureDescriptor{
			Label:  fmt.Sprintf("%s/c%d", label, ch),
			Width:  info.Width,
			Height: info.Height,
			Format: format,
		}, data[ch*plane:(ch+1)*plane])
		if err != nil {
			group.release(device)
			return nil, fmt.Errorf("imagecache: upload %s channel %d: %w", label, ch, err)
		}
		group.Textures = append(group.Textures, t)
	}
	return group, nil
}

// Group returns the textures of batch item.
func (t *TextureImage) Group(item uint32) (*TexturesGroup, bool) {
	it, ok := t.items[item]
	if !ok {
		return nil, false
	}
	return it.group, true
}

// Bytes returns the raw bytes of batch item.
func (t *TextureImage) Bytes(item uint32) ([]byte, bool) {
	it, ok := t.items[item]
	if !ok {
		return nil, false
	}
	return it.bytes, true
}

// Computed returns the value statistics of batch item.
func (t *TextureImage) Computed(item uint32) (core.ComputedInfo, bool) {
	it, ok := t.items[item]
	if !ok {
		return core.ComputedInfo{}, false
	}
	return it.computed, true
}

// Has reports whether batch item is resident.
func (t *TextureImage) Has(item uint32) bool {
	_, ok := t.items[item]
	return ok
}

// Items returns the resident batch items in ascending order.
func (t *TextureImage) Items() []uint32 {
	return slices.Sorted(maps.Keys(t.items))
}

// Size returns the image width and height in pixels.
func (t *TextureImage) Size() (width, height int) {
	return t.Info.Width, t.Info.Height
}

// merge moves every batch item of other into t, replacing items t already
// holds. other is empty afterwards.
func (t *TextureImage) merge(other *TextureImage) {
	t.Info = other.Info
	for item, it := range other.items {
		if old, ok := t.items[item]; ok {
			old.group.release(t.device)
		}
		t.items[item] = it
		delete(other.items, item)
	}
}

// release destroys every texture of t.
func (t *TextureImage) release() {
	for item, it := range t.items {
		it.group.release(t.device)
		delete(t.items, item)
	}
}
