// Package imview is the core of an image and array viewer: it keeps image
// metadata and GPU textures in sync with what a host can fetch, and draws
// any number of pan/zoom views of them onto one canvas.
//
// # Overview
//
// A Viewer owns the image store, the texture cache, per-image drawing
// options and overlays. The host feeds it through two inbound calls,
// OnMetadata and OnBytes, and answers the outbound Fetcher requests the
// viewer issues when a view needs data that is not resident. Rendering is
// one call per frame:
//
//	dev, _ := native.New(halDevice, halQueue, gputypes.TextureFormatUndefined)
//	v, err := imview.New(imview.WithDevice(dev), imview.WithFetcher(host))
//	if err != nil {
//	    return err
//	}
//	v.Resize(800, 600)
//	v.AddView("main", gpu.Rect{Width: 800, Height: 600})
//	v.SetCurrentlyViewing("main", core.NewImageID("session", "x"))
//	// later, from the host:
//	v.OnMetadata(info)
//	v.OnBytes(info.ID, nil, pixels)
//	v.Frame()
//
// # Packages
//
//   - core: image metadata, pixel access and drawing options
//   - coloring: the affine color transform of every image draw
//   - colormap: palettes and their GPU textures
//   - camera: pan/zoom state, projection and input handling
//   - imagecache: texture cache state machine, image store, option store
//   - render: the per-frame orchestrator
//   - gpu: the GPU interface, with backend/native implementing it on wgpu
//
// # Threading
//
// A Viewer is not safe for concurrent use. Call it from the render thread;
// fetch responses must be handed back to that thread before OnBytes.
package imview
