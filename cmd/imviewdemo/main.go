// Command imviewdemo drives the viewer headlessly on the noop GPU backend:
// it registers a grayscale gradient and a batched float image, answers the
// viewer's fetch requests from memory, scrubs the batch and renders frames.
package main

import (
	"encoding/binary"
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/imview"
	"github.com/gogpu/imview/backend/native"
	"github.com/gogpu/imview/core"
	"github.com/gogpu/imview/gpu"
	"github.com/gogpu/imview/imagecache"
)

func main() {
	var (
		width       = flag.Int("width", 800, "canvas width")
		height      = flag.Int("height", 400, "canvas height")
		configPath  = flag.String("config", "", "YAML config file")
		writeConfig = flag.String("write-config", "", "write the effective config to this file and exit")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := imview.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = imview.LoadConfig(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *writeConfig != "" {
		if err := imview.SaveConfig(cfg, *writeConfig); err != nil {
			log.Fatalf("Failed to write config: %v", err)
		}
		log.Printf("Config written to %s\n", *writeConfig)
		return
	}

	instance, err := noop.API{}.CreateInstance(nil)
	if err != nil {
		log.Fatalf("Failed to create instance: %v", err)
	}
	defer instance.Destroy()
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		log.Fatal("No adapter available")
	}
	open, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		log.Fatalf("Failed to open device: %v", err)
	}
	defer open.Device.Destroy()

	dev, err := native.New(open.Device, open.Queue, gputypes.TextureFormatUndefined)
	if err != nil {
		log.Fatalf("Failed to create device: %v", err)
	}
	defer dev.Destroy()

	h := newHost()
	v, err := imview.New(
		imview.WithDevice(dev),
		imview.WithConfig(cfg),
		imview.WithFetcher(h),
		imview.WithLogger(logger),
	)
	if err != nil {
		log.Fatalf("Failed to create viewer: %v", err)
	}
	defer v.Release()

	half := *width / 2
	v.Resize(*width, *height)
	mustDo(v.AddView("left", gpu.Rect{Width: half, Height: *height}))
	mustDo(v.AddView("right", gpu.Rect{X: half, Width: *width - half, Height: *height}))

	gradient := h.addGradient(core.NewImageID("demo", "gradient"), 64, 32)
	wave := h.addWave(core.NewImageID("demo", "wave"), 32, 32, 4)

	mustDo(v.SetCurrentlyViewing("left", gradient))
	mustDo(v.SetCurrentlyViewing("right", wave))
	for _, id := range []core.ImageID{gradient, wave} {
		mustDo(v.OnMetadata(h.infos[id]))
	}
	h.serve(v)
	v.UpdateOptions(wave, imagecache.SetColoring(core.ColoringHeatmap))
	mustDo(v.Frame())

	// Scrub through the batch: every item is fetched once, then served
	// from the cache on the way back.
	for _, item := range []uint32{1, 2, 3, 0, 2} {
		v.SetBatchItem(wave, item)
		h.serve(v)
		mustDo(v.Frame())
	}

	// Zoom the left view far enough to draw pixel borders and values.
	for range 4 {
		v.HandleScroll(wheel(float64(half)/2, float64(*height)/2))
	}
	mustDo(v.Frame())

	view, _ := v.View("left")
	log.Printf("Rendered %dx%d, %d requests served, left zoom %.2f\n",
		*width, *height, h.served, view.Camera.Zoom)
}

func wheel(x, y float64) gpucontext.ScrollEvent {
	return gpucontext.ScrollEvent{X: x, Y: y, DeltaY: 100}
}

func mustDo(err error) {
	if err != nil {
		log.Fatalf("demo: %v", err)
	}
}

type request struct {
	id   core.ImageID
	item *uint32
}

// host keeps the demo images in memory and answers requests outside the
// viewer's call stack, the way a real host answers asynchronously.
type host struct {
	infos   map[core.ImageID]core.ImageInfo
	items   map[core.ImageID][][]byte
	pending []request
	served  int
}

func newHost() *host {
	return &host{
		infos: make(map[core.ImageID]core.ImageInfo),
		items: make(map[core.ImageID][][]byte),
	}
}

func (h *host) RequestNeeded(id core.ImageID, item *uint32, _ []uint32) {
	h.pending = append(h.pending, request{id: id, item: item})
}

func (h *host) serve(v *imview.Viewer) {
	for len(h.pending) > 0 {
		r := h.pending[0]
		h.pending = h.pending[1:]
		var i uint32
		if r.item != nil {
			i = *r.item
		}
		if err := v.OnBytes(r.id, r.item, h.items[r.id][i]); err != nil {
			log.Printf("serve %s: %v", r.id, err)
			continue
		}
		h.served++
	}
}

func (h *host) addGradient(id core.ImageID, w, ht int) core.ImageID {
	data := make([]byte, w*ht)
	for y := range ht {
		for x := range w {
			data[y*w+x] = byte((x + y) * 255 / (w + ht - 2))
		}
	}
	h.infos[id] = core.ImageInfo{ID: id, Width: w, Height: ht, Channels: 1, DataType: core.Uint8}
	h.items[id] = [][]byte{data}
	return id
}

func (h *host) addWave(id core.ImageID, w, ht int, batch uint32) core.ImageID {
	items := make([][]byte, batch)
	for b := range items {
		data := make([]byte, 4*w*ht)
		phase := float64(b) * math.Pi / 2
		for y := range ht {
			for x := range w {
				val := math.Sin(float64(x)/4+phase) * math.Cos(float64(y)/4)
				binary.LittleEndian.PutUint32(data[4*(y*w+x):], math.Float32bits(float32(val)))
			}
		}
		items[b] = data
	}
	h.infos[id] = core.ImageInfo{
		ID: id, Width: w, Height: ht, Channels: 1, DataType: core.Float32,
		Batch: &core.BatchInfo{BatchSize: batch, ItemsStop: batch},
	}
	h.items[id] = items
	return id
}
