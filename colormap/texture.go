package colormap

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/imview/gpu"
	"github.com/gogpu/imview/internal/logging"
)

// TextureCache creates one 1xN lookup texture per colormap name on first
// use and keeps it until Release. There is no eviction.
type TextureCache struct {
	device   gpu.Device
	registry *Registry
	textures map[string]gpu.Texture
}

// NewTextureCache returns an empty cache creating textures on device.
func NewTextureCache(device gpu.Device, registry *Registry) *TextureCache {
	return &TextureCache{
		device:   device,
		registry: registry,
		textures: make(map[string]gpu.Texture),
	}
}

// GetOrCreate returns the lookup texture for name, creating it once.
func (c *TextureCache) GetOrCreate(name string) (gpu.Texture, error) {
	if t, ok := c.textures[name]; ok {
		return t, nil
	}
	m, err := c.registry.Get(name)
	if err != nil {
		return nil, err
	}

	desc := &gpu.TextureDescriptor{
		Label:   "colormap/" + name,
		Width:   m.Len(),
		Height:  1,
		Format:  gputypes.TextureFormatRGBA32Float,
		Filter:  Filter(m),
		Address: gputypes.AddressModeClampToEdge,
	}
	t, err := c.device.CreateTexture(desc, m.TextureData())
	if err != nil {
		return nil, fmt.Errorf("colormap: create texture %q: %w", name, err)
	}
	logging.Logger().Info("colormap texture created", "name", name, "entries", m.Len(), "kind", m.Kind.String())
	c.textures[name] = t
	return t, nil
}

// Filter returns the sampling filter of m's lookup texture.
func Filter(m *Colormap) gputypes.FilterMode {
	if m.Interpolated() {
		return gputypes.FilterModeLinear
	}
	return gputypes.FilterModeNearest
}

// Len returns the number of textures created so far.
func (c *TextureCache) Len() int { return len(c.textures) }

// Release destroys every texture. The cache can be reused afterwards.
func (c *TextureCache) Release() {
	for name, t := range c.textures {
		c.device.DestroyTexture(t)
		delete(c.textures, name)
	}
}
