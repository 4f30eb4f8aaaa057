package colormap

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/imview/gpu/gputest"
)

func TestBuiltinRegistry(t *testing.T) {
	r := Builtin()
	tests := []struct {
		name string
		kind Kind
	}{
		{"fire", Sequential},
		{"coolwarm", Diverging},
		{"rainbow", Cyclic},
		{"glasbey", Categorical},
	}
	for _, tt := range tests {
		m, err := r.Get(tt.name)
		if err != nil {
			t.Fatalf("Get(%q): %v", tt.name, err)
		}
		if m.Kind != tt.kind {
			t.Errorf("%s kind = %v, want %v", tt.name, m.Kind, tt.kind)
		}
		if m.Len() < 256 {
			t.Errorf("%s has %d colors, want at least 256", tt.name, m.Len())
		}
		for i, c := range m.Colors {
			for _, v := range c {
				if v < 0 || v > 1 {
					t.Fatalf("%s[%d] = %v out of [0,1]", tt.name, i, c)
				}
			}
		}
	}
	want := []string{"coolwarm", "fire", "glasbey", "rainbow"}
	got := r.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestRegistryUnknown(t *testing.T) {
	if _, err := Builtin().Get("viridis"); !errors.Is(err, ErrUnknownColormap) {
		t.Errorf("Get(viridis) error = %v, want ErrUnknownColormap", err)
	}
}

func TestNewRegistryRejectsDuplicates(t *testing.T) {
	m := &Colormap{Name: "a", Colors: []RGB{{0, 0, 0}}}
	if _, err := NewRegistry(m, m); err == nil {
		t.Error("duplicate names accepted")
	}
	if _, err := NewRegistry(&Colormap{Name: "empty"}); err == nil {
		t.Error("empty colormap accepted")
	}
}

func TestTextureData(t *testing.T) {
	m := &Colormap{Name: "two", Colors: []RGB{{0.25, 0.5, 0.75}, {1, 0, 0}}}
	buf := m.TextureData()
	if len(buf) != 32 {
		t.Fatalf("len = %d, want 32", len(buf))
	}
	f := func(i int) float32 { return math.Float32frombits(binary.LittleEndian.Uint32(buf[i*4:])) }
	want := []float32{0.25, 0.5, 0.75, 1, 1, 0, 0, 1}
	for i, w := range want {
		if f(i) != w {
			t.Errorf("component %d = %v, want %v", i, f(i), w)
		}
	}
}

func TestTextureCacheCreatesOnce(t *testing.T) {
	dev := gputest.New()
	c := NewTextureCache(dev, Builtin())

	first, err := c.GetOrCreate("fire")
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	second, err := c.GetOrCreate("fire")
	if err != nil {
		t.Fatalf("GetOrCreate again: %v", err)
	}
	if first != second {
		t.Error("second call returned a different texture")
	}
	if len(dev.Textures) != 1 {
		t.Fatalf("created %d textures, want 1", len(dev.Textures))
	}
	tex := dev.Textures[0]
	if tex.Desc.Height != 1 || tex.Desc.Width != 256 {
		t.Errorf("texture is %dx%d, want 256x1", tex.Desc.Width, tex.Desc.Height)
	}
	if tex.Desc.Format != gputypes.TextureFormatRGBA32Float {
		t.Errorf("format = %v", tex.Desc.Format)
	}
	if tex.Desc.Address != gputypes.AddressModeClampToEdge {
		t.Errorf("address mode = %v, want clamp-to-edge", tex.Desc.Address)
	}
}

func TestTextureCacheFilterByKind(t *testing.T) {
	dev := gputest.New()
	c := NewTextureCache(dev, Builtin())
	for name, want := range map[string]gputypes.FilterMode{
		"glasbey":  gputypes.FilterModeNearest,
		"fire":     gputypes.FilterModeLinear,
		"coolwarm": gputypes.FilterModeLinear,
		"rainbow":  gputypes.FilterModeLinear,
	} {
		tex, err := c.GetOrCreate(name)
		if err != nil {
			t.Fatalf("GetOrCreate(%q): %v", name, err)
		}
		if got := tex.(*gputest.Texture).Desc.Filter; got != want {
			t.Errorf("%s filter = %v, want %v", name, got, want)
		}
		m, _ := Builtin().Get(name)
		if m.Interpolated() != (want == gputypes.FilterModeLinear) {
			t.Errorf("%s Interpolated() = %v, texture filter %v", name, m.Interpolated(), want)
		}
	}
	if c.Len() != 4 {
		t.Errorf("Len() = %d, want 4", c.Len())
	}
	c.Release()
	if len(dev.Live()) != 0 || c.Len() != 0 {
		t.Errorf("after Release: %d live textures, %d cached", len(dev.Live()), c.Len())
	}
}

func TestTextureCacheErrors(t *testing.T) {
	dev := gputest.New()
	dev.FailTextures = map[string]bool{"colormap/fire": true}
	c := NewTextureCache(dev, Builtin())
	if _, err := c.GetOrCreate("nope"); !errors.Is(err, ErrUnknownColormap) {
		t.Errorf("unknown name error = %v", err)
	}
	if _, err := c.GetOrCreate("fire"); err == nil {
		t.Error("device failure not reported")
	}
	if c.Len() != 0 {
		t.Errorf("failed creation cached: Len() = %d", c.Len())
	}
}
