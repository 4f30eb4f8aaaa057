package imview

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/imview/camera"
	"github.com/gogpu/imview/core"
	"github.com/gogpu/imview/render"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("imview: invalid config")

// Config is the viewer configuration, loadable from YAML.
type Config struct {
	Rendering struct {
		// MinimumSizeToRenderPixelBorder is the on-screen size of one image
		// pixel, in device pixels, above which pixel borders are drawn.
		MinimumSizeToRenderPixelBorder int `yaml:"minimumSizeToRenderPixelBorder"`

		// MinimumSizeToRenderPixelValues is the on-screen size above which
		// each pixel is labelled with its value.
		MinimumSizeToRenderPixelValues int `yaml:"minimumSizeToRenderPixelValues"`

		// HeatmapColormap and SegmentationColormap name the palettes of the
		// two colormap coloring modes.
		HeatmapColormap      string `yaml:"heatmapColormap"`
		SegmentationColormap string `yaml:"segmentationColormap"`

		// MinZoom and MaxZoom bound wheel and pinch zoom.
		MinZoom float32 `yaml:"minZoom"`
		MaxZoom float32 `yaml:"maxZoom"`

		// GlyphAtlasSize is the side of the pixel value glyph atlas. Zero
		// disables pixel value labels.
		GlyphAtlasSize int `yaml:"glyphAtlasSize"`
	} `yaml:"rendering"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() *Config {
	cfg := &Config{}

	th := render.DefaultThresholds()
	cfg.Rendering.MinimumSizeToRenderPixelBorder = th.PixelBorder
	cfg.Rendering.MinimumSizeToRenderPixelValues = th.PixelValues

	global := core.DefaultGlobalDrawingOptions()
	cfg.Rendering.HeatmapColormap = global.HeatmapColormap
	cfg.Rendering.SegmentationColormap = global.SegmentationColormap

	cfg.Rendering.MinZoom = camera.DefaultLimits.MinZoom
	cfg.Rendering.MaxZoom = camera.DefaultLimits.MaxZoom
	cfg.Rendering.GlyphAtlasSize = 256
	return cfg
}

// Validate rejects settings the viewer cannot run with. The two size
// thresholds are independent and may come in either order.
func (c *Config) Validate() error {
	r := &c.Rendering
	switch {
	case r.MinimumSizeToRenderPixelBorder <= 0:
		return fmt.Errorf("%w: minimumSizeToRenderPixelBorder must be positive, got %d", ErrInvalidConfig, r.MinimumSizeToRenderPixelBorder)
	case r.MinimumSizeToRenderPixelValues <= 0:
		return fmt.Errorf("%w: minimumSizeToRenderPixelValues must be positive, got %d", ErrInvalidConfig, r.MinimumSizeToRenderPixelValues)
	case r.MinZoom <= 0 || r.MaxZoom <= 0:
		return fmt.Errorf("%w: zoom limits must be positive, got %v..%v", ErrInvalidConfig, r.MinZoom, r.MaxZoom)
	case r.MinZoom > r.MaxZoom:
		return fmt.Errorf("%w: minZoom %v exceeds maxZoom %v", ErrInvalidConfig, r.MinZoom, r.MaxZoom)
	case r.GlyphAtlasSize < 0:
		return fmt.Errorf("%w: glyphAtlasSize must not be negative, got %d", ErrInvalidConfig, r.GlyphAtlasSize)
	case r.HeatmapColormap == "" || r.SegmentationColormap == "":
		return fmt.Errorf("%w: colormap names must not be empty", ErrInvalidConfig)
	}
	return nil
}

// Thresholds returns the renderer thresholds.
func (c *Config) Thresholds() render.Thresholds {
	return render.Thresholds{
		PixelBorder: c.Rendering.MinimumSizeToRenderPixelBorder,
		PixelValues: c.Rendering.MinimumSizeToRenderPixelValues,
	}
}

// ZoomLimits returns the gesture zoom limits.
func (c *Config) ZoomLimits() camera.Limits {
	return camera.Limits{MinZoom: c.Rendering.MinZoom, MaxZoom: c.Rendering.MaxZoom}
}

// GlobalOptions returns the colormap names as global drawing options.
func (c *Config) GlobalOptions() core.GlobalDrawingOptions {
	return core.GlobalDrawingOptions{
		HeatmapColormap:      c.Rendering.HeatmapColormap,
		SegmentationColormap: c.Rendering.SegmentationColormap,
	}
}

// LoadConfig reads a YAML configuration. Keys missing from the file keep
// their defaults, and a missing file yields DefaultConfig.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg as YAML, creating the parent directory if needed.
func SaveConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // config is not secret
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
