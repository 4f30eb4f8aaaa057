package imview

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig invalid: %v", err)
	}
	th := cfg.Thresholds()
	if th.PixelBorder != 30 || th.PixelValues != 50 {
		t.Errorf("thresholds = %+v, want 30/50", th)
	}
	g := cfg.GlobalOptions()
	if g.HeatmapColormap != "fire" || g.SegmentationColormap != "glasbey" {
		t.Errorf("colormaps = %+v", g)
	}
	if l := cfg.ZoomLimits(); l.MinZoom != 0.8 || l.MaxZoom != 10 {
		t.Errorf("zoom limits = %+v", l)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		ok     bool
	}{
		{"default", func(*Config) {}, true},
		{"thresholds swapped", func(c *Config) {
			c.Rendering.MinimumSizeToRenderPixelBorder = 80
			c.Rendering.MinimumSizeToRenderPixelValues = 20
		}, true},
		{"zero border", func(c *Config) { c.Rendering.MinimumSizeToRenderPixelBorder = 0 }, false},
		{"negative values", func(c *Config) { c.Rendering.MinimumSizeToRenderPixelValues = -1 }, false},
		{"zero zoom", func(c *Config) { c.Rendering.MinZoom = 0 }, false},
		{"inverted zoom", func(c *Config) { c.Rendering.MinZoom, c.Rendering.MaxZoom = 5, 2 }, false},
		{"negative atlas", func(c *Config) { c.Rendering.GlyphAtlasSize = -1 }, false},
		{"no labels", func(c *Config) { c.Rendering.GlyphAtlasSize = 0 }, true},
		{"empty colormap", func(c *Config) { c.Rendering.HeatmapColormap = "" }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tt.ok && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if *cfg != *DefaultConfig() {
		t.Errorf("missing file config = %+v, want defaults", cfg)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "imview.yaml")
	data := "rendering:\n  minimumSizeToRenderPixelValues: 80\n  heatmapColormap: coolwarm\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Rendering.MinimumSizeToRenderPixelValues != 80 {
		t.Errorf("pixel values threshold = %d, want 80", cfg.Rendering.MinimumSizeToRenderPixelValues)
	}
	if cfg.Rendering.MinimumSizeToRenderPixelBorder != 30 {
		t.Errorf("unset border threshold = %d, want default 30", cfg.Rendering.MinimumSizeToRenderPixelBorder)
	}
	if cfg.Rendering.HeatmapColormap != "coolwarm" {
		t.Errorf("heatmap colormap = %q", cfg.Rendering.HeatmapColormap)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "imview.yaml")
	if err := os.WriteFile(path, []byte("rendering:\n  minZoom: 20\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadConfig = %v, want ErrInvalidConfig", err)
	}

	if err := os.WriteFile(path, []byte("rendering: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig accepted malformed YAML")
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "imview.yaml")
	cfg := DefaultConfig()
	cfg.Rendering.MaxZoom = 40
	cfg.Rendering.SegmentationColormap = "rainbow"
	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if *got != *cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}
