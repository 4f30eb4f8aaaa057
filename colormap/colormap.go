// Package colormap holds the named palettes used by the heatmap and
// segmentation colorings, and their GPU lookup textures.
package colormap

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"slices"
	"sync"
)

// ErrUnknownColormap is returned for names missing from a Registry.
var ErrUnknownColormap = errors.New("colormap: unknown colormap")

// RGB is one palette entry with components in [0, 1].
type RGB [3]float32

// Kind classifies a palette by how it is meant to be read.
type Kind uint8

const (
	Sequential Kind = iota
	Diverging
	Cyclic
	Categorical
)

func (k Kind) String() string {
	switch k {
	case Sequential:
		return "sequential"
	case Diverging:
		return "diverging"
	case Cyclic:
		return "cyclic"
	case Categorical:
		return "categorical"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Colormap is a named, ordered list of colors.
type Colormap struct {
	Name   string
	Kind   Kind
	Colors []RGB
}

// Len returns the number of entries.
func (c *Colormap) Len() int { return len(c.Colors) }

// RGB returns entry i.
func (c *Colormap) RGB(i int) [3]float32 { return c.Colors[i] }

// Interpolated reports whether lookups blend neighboring entries.
// Categorical palettes are read nearest.
func (c *Colormap) Interpolated() bool { return c.Kind != Categorical }

// TextureData returns the palette as a row of RGBA32Float texels with
// opaque alpha.
func (c *Colormap) TextureData() []byte {
	buf := make([]byte, len(c.Colors)*16)
	for i, rgb := range c.Colors {
		off := i * 16
		for ch, v := range [4]float32{rgb[0], rgb[1], rgb[2], 1} {
			binary.LittleEndian.PutUint32(buf[off+ch*4:], math.Float32bits(v))
		}
	}
	return buf
}

// Registry maps names to colormaps. It is immutable once built.
type Registry struct {
	maps map[string]*Colormap
}

// NewRegistry builds a registry from maps. Names must be unique and every
// map must have at least one color.
func NewRegistry(maps ...*Colormap) (*Registry, error) {
	r := &Registry{maps: make(map[string]*Colormap, len(maps))}
	for _, m := range maps {
		if m.Name == "" || len(m.Colors) == 0 {
			return nil, fmt.Errorf("colormap: invalid colormap %q with %d colors", m.Name, len(m.Colors))
		}
		if _, dup := r.maps[m.Name]; dup {
			return nil, fmt.Errorf("colormap: duplicate colormap %q", m.Name)
		}
		r.maps[m.Name] = m
	}
	return r, nil
}

// Get returns the colormap called name.
func (r *Registry) Get(name string) (*Colormap, error) {
	m, ok := r.maps[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColormap, name)
	}
	return m, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.maps))
	for name := range r.maps {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

var builtin = sync.OnceValue(func() *Registry {
	r, err := NewRegistry(
		&Colormap{Name: "coolwarm", Kind: Diverging, Colors: coolwarmTable},
		&Colormap{Name: "fire", Kind: Sequential, Colors: fireTable},
		&Colormap{Name: "rainbow", Kind: Cyclic, Colors: rainbowTable},
		&Colormap{Name: "glasbey", Kind: Categorical, Colors: glasbeyTable},
	)
	if err != nil {
		panic(err)
	}
	return r
})

// Builtin returns the registry of built-in colormaps: "fire", "coolwarm",
// "rainbow" and "glasbey".
func Builtin() *Registry { return builtin() }
