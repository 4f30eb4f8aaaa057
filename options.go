package imview

import (
	"log/slog"

	"github.com/gogpu/imview/gpu"
)

// Option configures a Viewer during creation.
//
// Example:
//
//	dev, _ := native.New(halDevice, halQueue, gputypes.TextureFormatUndefined)
//	v, err := imview.New(imview.WithDevice(dev), imview.WithFetcher(host))
type Option func(*viewerOptions)

type viewerOptions struct {
	config  *Config
	device  gpu.Device
	fetcher Fetcher
	logger  *slog.Logger
}

func defaultOptions() viewerOptions {
	return viewerOptions{config: DefaultConfig()}
}

// WithConfig replaces DefaultConfig. A nil config is ignored.
func WithConfig(cfg *Config) Option {
	return func(o *viewerOptions) {
		if cfg != nil {
			o.config = cfg
		}
	}
}

// WithDevice sets the GPU device the viewer renders through. Required.
func WithDevice(d gpu.Device) Option {
	return func(o *viewerOptions) {
		o.device = d
	}
}

// WithFetcher sets the host callback that requests pixel data. Without
// one, missing images are marked pending but never requested.
func WithFetcher(f Fetcher) Option {
	return func(o *viewerOptions) {
		o.fetcher = f
	}
}

// WithLogger installs l as the package logger, like SetLogger.
func WithLogger(l *slog.Logger) Option {
	return func(o *viewerOptions) {
		o.logger = l
	}
}
