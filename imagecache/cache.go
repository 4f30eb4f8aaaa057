package imagecache

import (
	"errors"
	"fmt"

	"github.com/gogpu/imview/core"
	"github.com/gogpu/imview/internal/logging"
)

// ErrNotPending is returned by TrySetAvailable for an entry that is neither
// Pending with a texture nor already Available.
var ErrNotPending = errors.New("imagecache: image not pending")

// State is the availability state of a cache entry.
type State uint8

const (
	NotAvailable State = iota
	Pending
	Available
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Available:
		return "available"
	default:
		return "not_available"
	}
}

// Availability is the state of one image. Image is nil for NotAvailable
// and for a Pending entry that never had a texture.
type Availability struct {
	State State
	Image *TextureImage
}

// Renderable returns the texture a view can draw: the current one when
// Available, the stale one when Pending.
func (a Availability) Renderable() (*TextureImage, bool) {
	return a.Image, a.Image != nil && a.State != NotAvailable
}

// Cache maps image ids to their availability. It is mutated only through
// its transition methods and is not safe for concurrent use; the viewer
// drives it from the render thread.
type Cache struct {
	entries map[core.ImageID]Availability
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[core.ImageID]Availability)}
}

// Get returns the availability of id.
func (c *Cache) Get(id core.ImageID) Availability {
	a, ok := c.entries[id]
	if !ok {
		return Availability{State: NotAvailable}
	}
	return a
}

// SetPending marks id as being fetched. An Available texture is kept as
// the stale texture; an entry already Pending is left unchanged.
func (c *Cache) SetPending(id core.ImageID) {
	cur := c.Get(id)
	switch cur.State {
	case Pending:
		return
	case Available:
		c.entries[id] = Availability{State: Pending, Image: cur.Image}
	default:
		c.entries[id] = Availability{State: Pending}
	}
	logging.Logger().Debug("image pending", "image", id.String(), "stale", cur.Image != nil)
}

// TrySetAvailable turns a Pending entry holding a texture back into
// Available, for example when the batch item being waited for turns out
// to be resident already. It is a no-op on an Available entry.
func (c *Cache) TrySetAvailable(id core.ImageID) error {
	cur := c.Get(id)
	switch {
	case cur.State == Available:
		return nil
	case cur.State == Pending && cur.Image != nil:
		c.entries[id] = Availability{State: Available, Image: cur.Image}
		return nil
	default:
		return fmt.Errorf("%w: %s (%s)", ErrNotPending, id, cur.State)
	}
}

// SetImage stores img as the Available texture of id, releasing any
// texture it replaces.
func (c *Cache) SetImage(id core.ImageID, img *TextureImage) {
	if old := c.Get(id).Image; old != nil && old != img {
		old.release()
	}
	c.entries[id] = Availability{State: Available, Image: img}
}

// Update merges the batch items of img into the texture id already holds,
// keeping every other resident item, and marks the entry Available. Without
// an existing texture it behaves like SetImage.
func (c *Cache) Update(id core.ImageID, img *TextureImage) {
	cur := c.Get(id)
	if cur.Image == nil || cur.Image == img {
		c.SetImage(id, img)
		return
	}
	cur.Image.merge(img)
	c.entries[id] = Availability{State: Available, Image: cur.Image}
}

// Remove drops id and releases its textures.
func (c *Cache) Remove(id core.ImageID) {
	if img := c.Get(id).Image; img != nil {
		img.release()
	}
	delete(c.entries, id)
}

// Clear removes every entry owned by session.
func (c *Cache) Clear(session core.SessionID) {
	for id := range c.entries {
		if id.Session == session {
			c.Remove(id)
		}
	}
}

// ClearAll removes every entry.
func (c *Cache) ClearAll() {
	for id := range c.entries {
		c.Remove(id)
	}
}

// Len returns the number of entries in any state other than NotAvailable.
func (c *Cache) Len() int { return len(c.entries) }
